package schema

// ContentAboutSectionTable represents the 'content.aboutsection' table
type ContentAboutSectionTable struct {
	Table     string
	ID        string
	Heading   string
	Body      string
	ImageURL  string
	SortOrder string
	UpdatedAt string
}

// ContentAboutSection is the schema definition for content.aboutsection
var ContentAboutSection = ContentAboutSectionTable{
	Table:     "content.aboutsection",
	ID:        "id",
	Heading:   "heading",
	Body:      "body",
	ImageURL:  "imageurl",
	SortOrder: "sortorder",
	UpdatedAt: "updatedat",
}

// ContentProductFeatureTable represents the 'content.productfeature' table
type ContentProductFeatureTable struct {
	Table       string
	ID          string
	Icon        string
	Title       string
	Description string
	SortOrder   string
	UpdatedAt   string
}

// ContentProductFeature is the schema definition for content.productfeature
var ContentProductFeature = ContentProductFeatureTable{
	Table:       "content.productfeature",
	ID:          "id",
	Icon:        "icon",
	Title:       "title",
	Description: "description",
	SortOrder:   "sortorder",
	UpdatedAt:   "updatedat",
}

// ContentHowItWorksStepTable represents the 'content.howitworksstep' table
type ContentHowItWorksStepTable struct {
	Table       string
	ID          string
	StepNumber  string
	Title       string
	Description string
	UpdatedAt   string
}

// ContentHowItWorksStep is the schema definition for content.howitworksstep
var ContentHowItWorksStep = ContentHowItWorksStepTable{
	Table:       "content.howitworksstep",
	ID:          "id",
	StepNumber:  "stepnumber",
	Title:       "title",
	Description: "description",
	UpdatedAt:   "updatedat",
}

package schema

// ContentSolutionTable represents the 'content.solution' table
type ContentSolutionTable struct {
	Table         string
	ID            string
	Slug          string
	Title         string
	Subtitle      string
	Description   string
	Category      string
	HeroImageURL  string
	HeroVideoURL  string
	Stats         string
	ContentBlocks string
	FAQs          string
	MapEmbedURL   string
	IsPublished   string
	CreatedBy     string
	UpdatedBy     string
	CreatedAt     string
	UpdatedAt     string
}

// ContentSolution is the schema definition for content.solution
var ContentSolution = ContentSolutionTable{
	Table:         "content.solution",
	ID:            "id",
	Slug:          "slug",
	Title:         "title",
	Subtitle:      "subtitle",
	Description:   "description",
	Category:      "category",
	HeroImageURL:  "heroimageurl",
	HeroVideoURL:  "herovideourl",
	Stats:         "stats",
	ContentBlocks: "contentblocks",
	FAQs:          "faqs",
	MapEmbedURL:   "mapembedurl",
	IsPublished:   "ispublished",
	CreatedBy:     "createdby",
	UpdatedBy:     "updatedby",
	CreatedAt:     "createdat",
	UpdatedAt:     "updatedat",
}

func (t ContentSolutionTable) Columns() []string {
	return []string{
		t.ID, t.Slug, t.Title, t.Subtitle, t.Description, t.Category,
		t.HeroImageURL, t.HeroVideoURL, t.Stats, t.ContentBlocks, t.FAQs,
		t.MapEmbedURL, t.IsPublished, t.CreatedBy, t.UpdatedBy,
		t.CreatedAt, t.UpdatedAt,
	}
}

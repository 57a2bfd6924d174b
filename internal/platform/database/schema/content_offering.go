package schema

// ContentOfferingTable represents the 'content.offering' table
type ContentOfferingTable struct {
	Table           string
	ID              string
	Slug            string
	Title           string
	Subtitle        string
	Description     string
	Category        string
	Features        string
	PricingTiers    string
	MediaURL        string
	SortOrder       string
	IsPublished     string
	MetaTitle       string
	MetaDescription string
	CreatedBy       string
	UpdatedBy       string
	CreatedAt       string
	UpdatedAt       string
}

// ContentOffering is the schema definition for content.offering
var ContentOffering = ContentOfferingTable{
	Table:           "content.offering",
	ID:              "id",
	Slug:            "slug",
	Title:           "title",
	Subtitle:        "subtitle",
	Description:     "description",
	Category:        "category",
	Features:        "features",
	PricingTiers:    "pricingtiers",
	MediaURL:        "mediaurl",
	SortOrder:       "sortorder",
	IsPublished:     "ispublished",
	MetaTitle:       "metatitle",
	MetaDescription: "metadescription",
	CreatedBy:       "createdby",
	UpdatedBy:       "updatedby",
	CreatedAt:       "createdat",
	UpdatedAt:       "updatedat",
}

func (t ContentOfferingTable) Columns() []string {
	return []string{
		t.ID, t.Slug, t.Title, t.Subtitle, t.Description, t.Category,
		t.Features, t.PricingTiers, t.MediaURL, t.SortOrder, t.IsPublished,
		t.MetaTitle, t.MetaDescription, t.CreatedBy, t.UpdatedBy,
		t.CreatedAt, t.UpdatedAt,
	}
}

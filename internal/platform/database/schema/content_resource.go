package schema

// ContentResourceTable represents the 'content.resource' table
type ContentResourceTable struct {
	Table         string
	ID            string
	Slug          string
	Title         string
	Category      string
	Summary       string
	CoverImageURL string
	ExternalLink  string
	ContentBlocks string
	IsPublished   string
	PublishedAt   string
	CreatedBy     string
	UpdatedBy     string
	CreatedAt     string
	UpdatedAt     string
}

// ContentResource is the schema definition for content.resource
var ContentResource = ContentResourceTable{
	Table:         "content.resource",
	ID:            "id",
	Slug:          "slug",
	Title:         "title",
	Category:      "category",
	Summary:       "summary",
	CoverImageURL: "coverimageurl",
	ExternalLink:  "externallink",
	ContentBlocks: "contentblocks",
	IsPublished:   "ispublished",
	PublishedAt:   "publishedat",
	CreatedBy:     "createdby",
	UpdatedBy:     "updatedby",
	CreatedAt:     "createdat",
	UpdatedAt:     "updatedat",
}

func (t ContentResourceTable) Columns() []string {
	return []string{
		t.ID, t.Slug, t.Title, t.Category, t.Summary, t.CoverImageURL,
		t.ExternalLink, t.ContentBlocks, t.IsPublished, t.PublishedAt,
		t.CreatedBy, t.UpdatedBy, t.CreatedAt, t.UpdatedAt,
	}
}

package schema

// ContentFAQTable represents the 'content.faq' table
type ContentFAQTable struct {
	Table       string
	ID          string
	Question    string
	Answer      string
	Category    string
	SortOrder   string
	IsPublished string
	CreatedAt   string
	UpdatedAt   string
}

// ContentFAQ is the schema definition for content.faq
var ContentFAQ = ContentFAQTable{
	Table:       "content.faq",
	ID:          "id",
	Question:    "question",
	Answer:      "answer",
	Category:    "category",
	SortOrder:   "sortorder",
	IsPublished: "ispublished",
	CreatedAt:   "createdat",
	UpdatedAt:   "updatedat",
}

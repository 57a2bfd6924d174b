// Copyright (c) 2026 Argus Intelligence. All rights reserved.
// Author: platform@argusintel.io

// Package solution manages the industry and use-case pages shown under the
// public /solutions section.
package solution

import "time"

// Categories a solution page may belong to.
const (
	CategoryIndustry = "industry"
	CategoryUseCase  = "use-case"
)

// Stat is one headline metric rendered in a solution's hero band.
type Stat struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Icon  string `json:"icon,omitempty"`
}

// Block is one ordered content section of a solution page.
type Block struct {
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	ImageURL  string   `json:"image_url,omitempty"`
	Align     string   `json:"align,omitempty"` // "left" or "right"
	ListItems []string `json:"list_items,omitempty"`
}

// FAQItem is a question/answer pair scoped to a single solution page.
type FAQItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Solution represents one /solutions page.
type Solution struct {
	ID          string  `json:"id"`
	Slug        string  `json:"slug"`
	Title       string  `json:"title"`
	Subtitle    *string `json:"subtitle"`
	Description *string `json:"description"`
	Category    string  `json:"category"`

	HeroImageURL *string `json:"hero_image_url"`
	HeroVideoURL *string `json:"hero_video_url"`

	Stats         []Stat    `json:"stats"`
	ContentBlocks []Block   `json:"content_blocks"`
	FAQs          []FAQItem `json:"faqs"`

	MapEmbedURL *string `json:"map_embed_url"`
	IsPublished bool    `json:"is_published"`

	CreatedBy *string   `json:"created_by,omitempty"`
	UpdatedBy *string   `json:"updated_by,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AffectedPaths lists the public site paths whose cached rendering shows
// this solution.
func (s *Solution) AffectedPaths() []string {
	return []string{"/", "/solutions", "/solutions/" + s.Slug}
}

// Filter holds the parameters for a paginated solution search.
type Filter struct {
	Category string
	// Published is tri-state: nil returns every row, true only published
	// rows, false only drafts. Anonymous callers are pinned to true.
	Published *bool
}

// Global field names for validation
const (
	FieldSlug         = "slug"
	FieldTitle        = "title"
	FieldCategory     = "category"
	FieldHeroImageURL = "hero_image_url"
	FieldHeroVideoURL = "hero_video_url"
	FieldBlocks       = "content_blocks"
)

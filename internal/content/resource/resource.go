// Copyright (c) 2026 Argus Intelligence. All rights reserved.
// Author: platform@argusintel.io

// Package resource manages the public /resources library: documentation,
// customer stories, partner pages, and grant write-ups.
package resource

import "time"

// Categories a resource may belong to.
const (
	CategoryDocumentation = "documentation"
	CategoryLibrary       = "library"
	CategoryCustomerStory = "customer-story"
	CategoryPartner       = "partner"
	CategoryGrant         = "grant"
	CategoryAIAgent       = "ai-agent"
)

// Categories lists every valid resource category.
var Categories = []string{
	CategoryDocumentation, CategoryLibrary, CategoryCustomerStory,
	CategoryPartner, CategoryGrant, CategoryAIAgent,
}

// Block content types.
const (
	BlockText  = "text"
	BlockImage = "image"
	BlockFile  = "file"
)

// Block is one ordered body section of a resource. Text blocks carry
// markdown in Content; image and file blocks carry a URL.
type Block struct {
	Type    string `json:"type"`
	Content string `json:"content"`
	Caption string `json:"caption,omitempty"`
}

// Resource represents one entry of the resource library.
type Resource struct {
	ID       string `json:"id"`
	Slug     string `json:"slug"`
	Title    string `json:"title"`
	Category string `json:"category"`
	Summary  *string `json:"summary"`

	CoverImageURL *string `json:"cover_image_url"`

	// ExternalLink turns the resource into a redirect card: the detail
	// response exposes the link and no rendered body.
	ExternalLink *string `json:"external_link"`

	ContentBlocks []Block `json:"content_blocks"`

	IsPublished bool       `json:"is_published"`
	PublishedAt *time.Time `json:"published_at"`

	CreatedBy *string   `json:"created_by,omitempty"`
	UpdatedBy *string   `json:"updated_by,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AffectedPaths lists the public site paths whose cached rendering shows
// this resource.
func (r *Resource) AffectedPaths() []string {
	return []string{"/resources", "/resources/" + r.Slug}
}

// Detail is the public detail representation: the resource plus its body
// rendered to HTML. Body is empty when ExternalLink is set.
type Detail struct {
	Resource
	Body []RenderedBlock `json:"body"`
}

// RenderedBlock is a Block whose text content has been rendered to HTML.
type RenderedBlock struct {
	Type    string `json:"type"`
	HTML    string `json:"html,omitempty"`
	URL     string `json:"url,omitempty"`
	Caption string `json:"caption,omitempty"`
}

// Filter holds the parameters for a paginated resource search. Categories
// is an OR filter: a resource matches when its category is any of them.
type Filter struct {
	Categories []string
	// Published is tri-state: nil returns every row, true only published
	// rows, false only drafts. Anonymous callers are pinned to true.
	Published *bool
}

// Global field names for validation
const (
	FieldSlug          = "slug"
	FieldTitle         = "title"
	FieldCategory      = "category"
	FieldCoverImageURL = "cover_image_url"
	FieldExternalLink  = "external_link"
	FieldBlocks        = "content_blocks"
)

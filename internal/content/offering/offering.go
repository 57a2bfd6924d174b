// Copyright (c) 2026 Argus Intelligence. All rights reserved.
// Author: platform@argusintel.io

// Package offering manages the service catalogue shown on the public
// /services pages: what Argus sells, its feature lists, and its pricing
// tiers.
package offering

import (
	"time"

	"github.com/argusintel/argus/pkg/pricing"
)

// Feature is one entry of an offering's feature grid.
type Feature struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Offering represents a sellable service (e.g. "Perimeter Intelligence").
type Offering struct {
	ID          string  `json:"id"`
	Slug        string  `json:"slug"`
	Title       string  `json:"title"`
	Subtitle    *string `json:"subtitle"`
	Description *string `json:"description"`
	Category    *string `json:"category"`

	Features     []Feature      `json:"features"`
	PricingTiers []pricing.Tier `json:"pricing_tiers"`

	MediaURL    *string `json:"media_url"`
	SortOrder   int     `json:"sort_order"`
	IsPublished bool    `json:"is_published"`

	MetaTitle       *string `json:"meta_title"`
	MetaDescription *string `json:"meta_description"`

	CreatedBy *string   `json:"created_by,omitempty"`
	UpdatedBy *string   `json:"updated_by,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AffectedPaths lists the public site paths whose cached rendering shows
// this offering.
func (o *Offering) AffectedPaths() []string {
	return []string{"/", "/services", "/services/" + o.Slug}
}

// Filter holds the parameters for a paginated offering search.
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
	FieldMediaURL     = "media_url"
	FieldPricingTiers = "pricing_tiers"
	FieldFeatures     = "features"
)

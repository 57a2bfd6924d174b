// Copyright (c) 2026 Argus Intelligence. All rights reserved.
// Author: platform@argusintel.io

// Package faq manages the site-wide frequently-asked-questions list.
package faq

import "time"

// FAQ is one question/answer entry, grouped by category and ordered by
// SortOrder within its group.
type FAQ struct {
	ID          string    `json:"id"`
	Question    string    `json:"question"`
	Answer      string    `json:"answer"`
	Category    *string   `json:"category"`
	SortOrder   int       `json:"sort_order"`
	IsPublished bool      `json:"is_published"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// AffectedPaths lists the public site paths whose cached rendering shows
// this FAQ.
func (f *FAQ) AffectedPaths() []string {
	return []string{"/", "/faqs"}
}

// Global field names for validation
const (
	FieldQuestion = "question"
	FieldAnswer   = "answer"
	FieldOrder    = "order"
)

// Copyright (c) 2026 Argus Intelligence. All rights reserved.
// Author: platform@argusintel.io

// Package page manages the singleton building blocks of the homepage and
// about page: about sections, the product feature grid, and the
// how-it-works walkthrough.
package page

import "time"

// AboutSection is one ordered prose section of the about page.
type AboutSection struct {
	ID        string    `json:"id"`
	Heading   string    `json:"heading"`
	Body      string    `json:"body"`
	ImageURL  *string   `json:"image_url"`
	SortOrder int       `json:"sort_order"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *AboutSection) AffectedPaths() []string {
	return []string{"/about"}
}

// ProductFeature is one cell of the homepage feature grid.
type ProductFeature struct {
	ID          string    `json:"id"`
	Icon        string    `json:"icon"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	SortOrder   int       `json:"sort_order"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (f *ProductFeature) AffectedPaths() []string {
	return []string{"/"}
}

// HowItWorksStep is one numbered step of the homepage walkthrough.
type HowItWorksStep struct {
	ID          string    `json:"id"`
	StepNumber  int       `json:"step_number"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (s *HowItWorksStep) AffectedPaths() []string {
	return []string{"/"}
}

// HomeView aggregates everything the homepage renders from this package.
type HomeView struct {
	Features []ProductFeature `json:"features"`
	Steps    []HowItWorksStep `json:"how_it_works"`
}

// AboutView aggregates the about page sections.
type AboutView struct {
	Sections []AboutSection `json:"sections"`
}

// Global field names for validation
const (
	FieldHeading     = "heading"
	FieldBody        = "body"
	FieldImageURL    = "image_url"
	FieldIcon        = "icon"
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldStepNumber  = "step_number"
)

// Copyright (c) 2026 Argus Intelligence. All rights reserved.
// Author: platform@argusintel.io

// Package team manages the leadership roster shown on the about page.
package team

import "time"

// Member is one person on the public team roster. SocialLinks maps a
// network name ("linkedin", "x") to a profile URL.
type Member struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	RoleTitle   string            `json:"role_title"`
	Bio         *string           `json:"bio"`
	PhotoURL    *string           `json:"photo_url"`
	SocialLinks map[string]string `json:"social_links"`
	SortOrder   int               `json:"sort_order"`
	IsPublished bool              `json:"is_published"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// AffectedPaths lists the public site paths whose cached rendering shows
// this member.
func (m *Member) AffectedPaths() []string {
	return []string{"/about"}
}

// Global field names for validation
const (
	FieldName        = "name"
	FieldRoleTitle   = "role_title"
	FieldPhotoURL    = "photo_url"
	FieldSocialLinks = "social_links"
)

// Copyright (c) 2026 Argus Intelligence. All rights reserved.
// Author: platform@argusintel.io

// Package setting manages site-wide key/value settings: the logo, the
// social link list, and the contact block rendered in the shared layout.
package setting

import "time"

// Known setting keys. Anything else is rejected on write.
const (
	KeyLogoURL     = "logo_url"
	KeySocialLinks = "social_links"
	KeyContactInfo = "contact_info"
	KeySiteTagline = "site_tagline"
)

// KnownKeys lists every writable setting key.
var KnownKeys = []string{KeyLogoURL, KeySocialLinks, KeyContactInfo, KeySiteTagline}

// Setting is one key/value pair. Value holds either a plain string or a
// JSON document, depending on the key.
type Setting struct {
	ID          string    `json:"id"`
	Key         string    `json:"key"`
	Value       string    `json:"value"`
	Description *string   `json:"description"`
	UpdatedBy   *string   `json:"updated_by,omitempty"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// AffectedPaths returns every top-level section: settings render in the
// shared layout, so any change touches every cached page.
func (s *Setting) AffectedPaths() []string {
	return []string{"/", "/services", "/solutions", "/resources", "/faqs", "/about"}
}

// Global field names for validation
const (
	FieldKey   = "key"
	FieldValue = "value"
)

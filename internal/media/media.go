// Copyright (c) 2026 Argus Intelligence. All rights reserved.
// Author: platform@argusintel.io

// Package media manages uploaded files: images, videos, and documents
// referenced by site content. Bytes live in S3-compatible object storage,
// metadata lives in Postgres.
package media

import "time"

// Asset is one uploaded file.
type Asset struct {
	ID          string    `json:"id"`
	Filename    string    `json:"filename"`
	ObjectKey   string    `json:"object_key"`
	URL         string    `json:"url"`
	ContentType string    `json:"content_type"`
	SizeBytes   int64     `json:"size_bytes"`
	UploadedBy  *string   `json:"uploaded_by,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// AllowedContentTypes is the upload allowlist. Anything else is rejected
// before a byte reaches storage.
var AllowedContentTypes = map[string]string{
	"image/jpeg":      ".jpg",
	"image/png":       ".png",
	"image/webp":      ".webp",
	"image/gif":       ".gif",
	"image/svg+xml":   ".svg",
	"video/mp4":       ".mp4",
	"video/webm":      ".webm",
	"application/pdf": ".pdf",
}

// Global field names for validation
const (
	FieldFile        = "file"
	FieldContentType = "content_type"
)

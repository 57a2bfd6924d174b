// Copyright (c) 2026 Argus Intelligence. All rights reserved.
// Author: platform@argusintel.io

/*
Package markdown renders Markdown into HTML for resource content blocks.

Input is restricted to staff-authored text captured through the admin panel
(there is no end-user write path into resource content), so raw HTML
passthrough is deliberately disabled rather than sanitized: unknown HTML in
the source is escaped by the renderer.
*/
package markdown

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// converter is shared across requests; goldmark converters are safe for
// concurrent use.
var converter = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithRendererOptions(
		html.WithHardWraps(),
	),
)

// ToHTML converts a Markdown source string into an HTML fragment.
func ToHTML(source string) (string, error) {
	var buffer bytes.Buffer
	if err := converter.Convert([]byte(source), &buffer); err != nil {
		return "", fmt.Errorf("markdown: conversion failed: %w", err)
	}
	return buffer.String(), nil
}

// Copyright (c) 2026 Argus Intelligence. All rights reserved.
// Author: platform@argusintel.io

package markdown_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/argusintel/argus/pkg/markdown"
)

func TestToHTML(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   string
	}{
		{"heading", "# Threat Report", "<h1>Threat Report</h1>"},
		{"emphasis", "stay **alert**", "<p>stay <strong>alert</strong></p>"},
		{"link", "[docs](https://argusintel.io/docs)", `<a href="https://argusintel.io/docs">docs</a>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := markdown.ToHTML(tt.source)
			require.NoError(t, err)
			assert.Contains(t, got, tt.want)
		})
	}
}

// Raw HTML in the source must be escaped, not passed through.
func TestToHTML_EscapesRawHTML(t *testing.T) {
	got, err := markdown.ToHTML(`before <script>alert(1)</script> after`)
	require.NoError(t, err)

	assert.NotContains(t, got, "<script>")
}

// Copyright (c) 2026 Argus Intelligence. All rights reserved.
// Author: platform@argusintel.io

package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/argusintel/argus/pkg/slug"
)

/*
TestFrom verifies the slug transformation pipeline against representative titles.
*/
func TestFrom(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple_title", "Edge Sensing", "edge-sensing"},
		{"trailing_punctuation", "Cognitive Surveillance!", "cognitive-surveillance"},
		{"mixed_separators", "  A/B   Testing ", "a-b-testing"},
		{"accented_characters", "Résumé Énrichment", "resume-enrichment"},
		{"already_a_slug", "threat-intelligence", "threat-intelligence"},
		{"digits_preserved", "24/7 Monitoring", "24-7-monitoring"},
		{"only_punctuation", "!!!", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slug.From(tt.input))
		})
	}
}

/*
TestFrom_Idempotent checks that slugifying an existing slug is a no-op.
*/
func TestFrom_Idempotent(t *testing.T) {
	inputs := []string{
		"Cognitive Surveillance!",
		"  A/B   Testing ",
		"Ransomware — Playbook (2026)",
	}

	for _, input := range inputs {
		once := slug.From(input)
		assert.Equal(t, once, slug.From(once))
	}
}

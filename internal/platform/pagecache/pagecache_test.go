// Copyright (c) 2026 Argus Intelligence. All rights reserved.
// Author: platform@argusintel.io

package pagecache_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/argusintel/argus/internal/platform/pagecache"
)

/*
TestKey verifies the Redis key layout for cached page renderings.
*/
func TestKey(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected string
	}{
		{"root", "/", "page:/"},
		{"section", "/services", "page:/services"},
		{"detail", "/services/edge-sensing", "page:/services/edge-sensing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, pagecache.Key(tt.path))
		})
	}
}

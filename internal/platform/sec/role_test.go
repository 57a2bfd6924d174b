// Copyright (c) 2026 Argus Intelligence. All rights reserved.
// Author: platform@argusintel.io

package sec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/argusintel/argus/internal/platform/sec"
)

/*
TestUserRole_AtLeast verifies the admin > editor > viewer hierarchy.
*/
func TestUserRole_AtLeast(t *testing.T) {
	tests := []struct {
		name     string
		role     sec.UserRole
		target   sec.UserRole
		expected bool
	}{
		{"admin_meets_admin", sec.RoleAdmin, sec.RoleAdmin, true},
		{"admin_meets_editor", sec.RoleAdmin, sec.RoleEditor, true},
		{"editor_meets_editor", sec.RoleEditor, sec.RoleEditor, true},
		{"editor_fails_admin", sec.RoleEditor, sec.RoleAdmin, false},
		{"viewer_fails_editor", sec.RoleViewer, sec.RoleEditor, false},
		{"unknown_fails_viewer", sec.UserRole("intern"), sec.RoleViewer, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.role.AtLeast(tt.target))
		})
	}
}

// Copyright (c) 2026 Argus Intelligence. All rights reserved.
// Author: platform@argusintel.io

// Package auth implements staff authentication for the admin panel.
//
// # Architecture
//
// Entities in this file represent the account and session state of the
// system. They have no dependencies on outer layers (HTTP, SQL, Redis);
// that keeps the account rules testable in isolation.
package auth

import (
	"time"

	"github.com/argusintel/argus/internal/platform/sec"
)

// User represents a staff account with access to the admin panel.
//
// # Rules
//   - Email is unique and is the login identifier.
//   - PasswordHash is generated via Bcrypt exclusively by this package.
//   - IsVerified ensures the user has confirmed their email address.
//   - Deactivated accounts keep their rows (soft delete) so the
//     created_by/updated_by trail on content stays intact.
type User struct {
	ID           string       `json:"id"`
	Email        string       `json:"email"`
	PasswordHash string       `json:"-"`
	DisplayName  string       `json:"display_name"`
	Role         sec.UserRole `json:"role"`
	IsVerified   bool         `json:"is_verified"`
	IsActive     bool         `json:"is_active"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
	DeletedAt    *time.Time   `json:"-"`
}

// Session represents an active refresh-token session.
//
// # Security Concept
//
// Access tokens (JWT) are stateless and cannot be revoked before expiry.
// Short-lived JWTs are paired with long-lived sessions stored in Postgres;
// when the JWT expires the client presents the refresh token to mint a new
// pair. Revoking a session logs the device out for good.
type Session struct {
	ID        string     `json:"id"`
	UserID    string     `json:"user_id"`
	TokenHash string     `json:"-"`
	UserAgent string     `json:"user_agent"`
	IPAddress string     `json:"ip_address"`
	ExpiresAt time.Time  `json:"expires_at"`
	RevokedAt *time.Time `json:"-"`
	CreatedAt time.Time  `json:"created_at"`
}

// Global field names for validation
const (
	FieldEmail       = "email"
	FieldPassword    = "password"
	FieldDisplayName = "display_name"
	FieldRole        = "role"
	FieldToken       = "token"
)

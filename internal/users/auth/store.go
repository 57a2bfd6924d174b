// Copyright (c) 2026 Argus Intelligence. All rights reserved.
// Author: platform@argusintel.io

package auth

import (
	"context"
	"time"
)

// # User Data Access

// UserRepository defines the data access contract for staff accounts.
type UserRepository interface {
	// FindByID returns the active account with the given ID.
	FindByID(context context.Context, id string) (*User, error)

	// FindByEmail returns the active account with the given email.
	FindByEmail(context context.Context, email string) (*User, error)

	// List returns every active account, newest first.
	List(context context.Context) ([]*User, error)

	// Create persists a brand-new staff account.
	Create(context context.Context, user *User) error

	// Update persists changes to mutable profile fields (DisplayName, Role).
	// Passwords are updated via [UpdatePassword] only, to prevent accidental
	// overwrites during unrelated profile updates.
	Update(context context.Context, user *User) error

	// UpdatePassword replaces only the user's password hash.
	UpdatePassword(context context.Context, userID, newHash string) error

	// MarkVerified flips the account's verified flag.
	MarkVerified(context context.Context, userID string) error

	// SoftDelete deactivates the account without removing the row, so the
	// authorship trail on content remains intact.
	SoftDelete(context context.Context, id string) error
}

// # Session Data Access

// SessionRepository defines the data access contract for refresh-token sessions.
type SessionRepository interface {
	// Create persists a new tracking session for an authenticated login.
	Create(context context.Context, session *Session) error

	// FindByTokenHash returns the active session matching the given token
	// hash. Expired and revoked sessions do not match.
	FindByTokenHash(context context.Context, tokenHash string) (*Session, error)

	// Revoke marks a specific session as permanently invalidated.
	Revoke(context context.Context, sessionID string) error

	// RevokeAll revokes every active session belonging to the userID.
	// Triggered by password changes and account deactivation.
	RevokeAll(context context.Context, userID string) error

	// DeleteExpired physically removes sessions whose ExpiresAt is in the
	// past. Called by a periodic cleanup pass to reclaim storage.
	DeleteExpired(context context.Context) (int64, error)
}

// # Volatile Data Access

// VolatileTokenRepository defines the contract for short-lived one-shot
// tokens (password reset, email verification) stored in Redis.
type VolatileTokenRepository interface {
	// Set stores a token associated with a userID for a limited duration.
	Set(context context.Context, token string, userID string, ttl time.Duration) error

	// Get retrieves the userID associated with a given token.
	Get(context context.Context, token string) (string, error)

	// Delete removes a token after successful use.
	Delete(context context.Context, token string) error
}

// Copyright (c) 2026 Argus Intelligence. All rights reserved.
// Author: platform@argusintel.io

package auth

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/argusintel/argus/internal/platform/apperr"
	"github.com/argusintel/argus/internal/platform/sec"
	"github.com/argusintel/argus/internal/platform/validate"
	"github.com/argusintel/argus/pkg/uuid"
)

// TokenProvider defines the contract for minting signed access tokens.
type TokenProvider interface {
	GenerateAccessToken(userID, email, role string, timeToLive time.Duration) (string, error)
}

// Service implements staff authentication use cases.
//
// # Review Process
//
// This service is critical for security. Any changes to hashing, session,
// or password-reset logic must be reviewed by the security team.
type Service struct {
	userRepository    UserRepository
	sessionRepository SessionRepository
	resetTokens       VolatileTokenRepository
	verifyTokens      VolatileTokenRepository
	tokenProvider     TokenProvider
	siteURL           string
	logger            *slog.Logger
}

// NewService constructs a new [Service] with its dependencies. siteURL is
// the public origin used to build verification and reset links.
func NewService(
	userRepo UserRepository,
	sessionRepo SessionRepository,
	resetTokens VolatileTokenRepository,
	verifyTokens VolatileTokenRepository,
	tokenProvider TokenProvider,
	siteURL string,
	logger *slog.Logger,
) *Service {
	return &Service{
		userRepository:    userRepo,
		sessionRepository: sessionRepo,
		resetTokens:       resetTokens,
		verifyTokens:      verifyTokens,
		tokenProvider:     tokenProvider,
		siteURL:           strings.TrimSuffix(siteURL, "/"),
		logger:            logger,
	}
}

// RegisterInput holds the data required to enroll a staff account.
type RegisterInput struct {
	Email       string
	Password    string
	DisplayName string
	Role        sec.UserRole
}

// Register validates, hashes, and persists a new staff account. Only
// admins reach this code path; the route enforces the role.
func (service *Service) Register(context context.Context, input RegisterInput) (*User, error) {
	// ── 1. Input Validation ───────────────────────────────────────────────

	validator := &validate.Validator{}
	validator.Required(FieldEmail, input.Email).Email(FieldEmail, input.Email)
	validator.MinLen(FieldPassword, input.Password, MinPasswordLength)
	validator.Required(FieldDisplayName, input.DisplayName)
	validator.OneOf(FieldRole, string(input.Role),
		string(sec.RoleAdmin), string(sec.RoleEditor), string(sec.RoleViewer))
	if err := validator.Err(); err != nil {
		return nil, err
	}

	// ── 2. Uniqueness Check ───────────────────────────────────────────────

	if _, err := service.userRepository.FindByEmail(context, input.Email); err == nil {
		return nil, apperr.Conflict("Email is already registered")
	}

	// ── 3. Security ───────────────────────────────────────────────────────

	hashedPassword, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth_service_hash_failed: %w", err)
	}

	// ── 4. Entity Construction & Persistence ──────────────────────────────

	user := &User{
		ID:           uuid.New(), // Time-sortable ID to prevent PG index fragmentation.
		Email:        strings.ToLower(input.Email),
		PasswordHash: hashedPassword,
		DisplayName:  input.DisplayName,
		Role:         input.Role,
		IsVerified:   false,
		IsActive:     true,
	}

	if err := service.userRepository.Create(context, user); err != nil {
		return nil, err
	}

	// ── 5. Verification Kickoff ───────────────────────────────────────────

	if err := service.sendVerification(context, user); err != nil {
		service.logger.Error("verification_dispatch_failed", slog.String("user_id", user.ID), slog.Any("error", err))
	}

	service.logger.Info("user_registered", slog.String("user_id", user.ID), slog.String("role", string(user.Role)))
	return user, nil
}

// LoginInput defines credentials for an authentication attempt.
type LoginInput struct {
	Email     string
	Password  string
	UserAgent string
	IPAddress string
}

// LoginSession represents a successfully established staff session.
type LoginSession struct {
	AccessToken           string
	RefreshToken          string
	RefreshTokenExpiresAt time.Time
	User                  *User
}

// Login validates credentials and issues an access/refresh token pair.
func (service *Service) Login(context context.Context, input LoginInput) (*LoginSession, error) {
	// ── 1. Fetch Account ──────────────────────────────────────────────────

	// Generic unauthorized error regardless of which step fails, to prevent
	// account enumeration.
	user, err := service.userRepository.FindByEmail(context, input.Email)
	if err != nil {
		return nil, apperr.Unauthorized("Invalid login credentials")
	}

	// ── 2. Credential Verification ────────────────────────────────────────

	if !sec.CheckPasswordHash(input.Password, user.PasswordHash) {
		return nil, apperr.Unauthorized("Invalid login credentials")
	}

	// ── 3. Session Establishment ──────────────────────────────────────────

	session, err := service.establishSession(context, user, input.UserAgent, input.IPAddress)
	if err != nil {
		return nil, err
	}

	service.logger.Info("user_logged_in", slog.String("user_id", user.ID))
	return session, nil
}

// Logout permanently revokes the presented refresh session. Unknown or
// already-revoked tokens are treated as success (idempotent operation).
func (service *Service) Logout(context context.Context, refreshToken string) error {
	session, err := service.sessionRepository.FindByTokenHash(context, sec.HashToken(refreshToken))
	if err != nil {
		return nil
	}

	if err := service.sessionRepository.Revoke(context, session.ID); err != nil {
		return fmt.Errorf("auth_service_logout_failed: %w", err)
	}

	service.logger.Info("user_logged_out", slog.String("user_id", session.UserID))
	return nil
}

// RefreshSession implements refresh token rotation: the presented token is
// revoked before a fresh pair is issued, so a replayed token dies on use.
func (service *Service) RefreshSession(context context.Context, refreshToken, userAgent, ipAddress string) (*LoginSession, error) {
	session, err := service.sessionRepository.FindByTokenHash(context, sec.HashToken(refreshToken))
	if err != nil {
		return nil, apperr.Unauthorized("Invalid or expired refresh token")
	}

	if err := service.sessionRepository.Revoke(context, session.ID); err != nil {
		return nil, fmt.Errorf("auth_service_refresh_revoke_failed: %w", err)
	}

	user, err := service.userRepository.FindByID(context, session.UserID)
	if err != nil {
		return nil, apperr.Unauthorized("User not found or deactivated")
	}

	return service.establishSession(context, user, userAgent, ipAddress)
}

// ChangePassword verifies the current password before replacing it, then
// revokes every other session the user holds.
func (service *Service) ChangePassword(context context.Context, userID, currentPassword, newPassword string) error {
	validator := &validate.Validator{}
	validator.MinLen(FieldPassword, newPassword, MinPasswordLength)
	if err := validator.Err(); err != nil {
		return err
	}

	user, err := service.userRepository.FindByID(context, userID)
	if err != nil {
		return err
	}

	if !sec.CheckPasswordHash(currentPassword, user.PasswordHash) {
		return apperr.Unauthorized("Current password is incorrect")
	}

	newHash, err := sec.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("auth_service_hash_failed: %w", err)
	}

	if err := service.userRepository.UpdatePassword(context, userID, newHash); err != nil {
		return err
	}

	// A changed password is a security event: force re-login everywhere.
	if err := service.sessionRepository.RevokeAll(context, userID); err != nil {
		return fmt.Errorf("auth_service_revoke_all_failed: %w", err)
	}

	service.logger.Info("password_changed", slog.String("user_id", userID))
	return nil
}

// ForgotPassword issues a reset token for the given email. The response is
// identical whether or not the account exists.
func (service *Service) ForgotPassword(context context.Context, email string) error {
	user, err := service.userRepository.FindByEmail(context, email)
	if err != nil {
		return nil
	}

	token, err := sec.GenerateSecureToken(ResetTokenLength)
	if err != nil {
		return fmt.Errorf("auth_service_reset_token_failed: %w", err)
	}

	if err := service.resetTokens.Set(context, token, user.ID, ResetTokenTTL); err != nil {
		return err
	}

	// Delivery is handled by the ops mail relay watching this log stream.
	service.logger.Info("password_reset_requested",
		slog.String("user_id", user.ID),
		slog.String("reset_link", service.siteURL+"/admin/reset-password?token="+token))
	return nil
}

// ResetPassword redeems a reset token and replaces the password.
func (service *Service) ResetPassword(context context.Context, token, newPassword string) error {
	validator := &validate.Validator{}
	validator.Required(FieldToken, token)
	validator.MinLen(FieldPassword, newPassword, MinPasswordLength)
	if err := validator.Err(); err != nil {
		return err
	}

	userID, err := service.resetTokens.Get(context, token)
	if err != nil {
		return err
	}

	newHash, err := sec.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("auth_service_hash_failed: %w", err)
	}

	if err := service.userRepository.UpdatePassword(context, userID, newHash); err != nil {
		return err
	}

	// One-shot token: burn it, then revoke everything.
	if err := service.resetTokens.Delete(context, token); err != nil {
		service.logger.Error("reset_token_cleanup_failed", slog.Any("error", err))
	}
	if err := service.sessionRepository.RevokeAll(context, userID); err != nil {
		return fmt.Errorf("auth_service_revoke_all_failed: %w", err)
	}

	service.logger.Info("password_reset_completed", slog.String("user_id", userID))
	return nil
}

// VerifyEmail redeems an email verification token.
func (service *Service) VerifyEmail(context context.Context, token string) error {
	userID, err := service.verifyTokens.Get(context, token)
	if err != nil {
		return err
	}

	if err := service.userRepository.MarkVerified(context, userID); err != nil {
		return err
	}

	if err := service.verifyTokens.Delete(context, token); err != nil {
		service.logger.Error("verify_token_cleanup_failed", slog.Any("error", err))
	}

	service.logger.Info("email_verified", slog.String("user_id", userID))
	return nil
}

// ListUsers returns every active staff account.
func (service *Service) ListUsers(context context.Context) ([]*User, error) {
	return service.userRepository.List(context)
}

// UpdateUser changes mutable profile fields of a staff account.
func (service *Service) UpdateUser(context context.Context, userID string, displayName string, role sec.UserRole) (*User, error) {
	validator := &validate.Validator{}
	validator.Required(FieldDisplayName, displayName)
	validator.OneOf(FieldRole, string(role),
		string(sec.RoleAdmin), string(sec.RoleEditor), string(sec.RoleViewer))
	if err := validator.Err(); err != nil {
		return nil, err
	}

	user, err := service.userRepository.FindByID(context, userID)
	if err != nil {
		return nil, err
	}

	user.DisplayName = displayName
	user.Role = role

	if err := service.userRepository.Update(context, user); err != nil {
		return nil, err
	}

	service.logger.Info("user_updated", slog.String("user_id", userID), slog.String("role", string(role)))
	return user, nil
}

// DeactivateUser soft-deletes an account and kills its sessions.
func (service *Service) DeactivateUser(context context.Context, userID string) error {
	if err := service.userRepository.SoftDelete(context, userID); err != nil {
		return err
	}

	if err := service.sessionRepository.RevokeAll(context, userID); err != nil {
		return fmt.Errorf("auth_service_revoke_all_failed: %w", err)
	}

	service.logger.Warn("user_deactivated", slog.String("user_id", userID))
	return nil
}

// establishSession mints the access token and a rotating refresh session.
func (service *Service) establishSession(context context.Context, user *User, userAgent, ipAddress string) (*LoginSession, error) {
	accessToken, err := service.tokenProvider.GenerateAccessToken(user.ID, user.Email, string(user.Role), AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("auth_service_token_generation_failed: %w", err)
	}

	refreshToken, err := sec.GenerateSecureToken(RefreshTokenLength)
	if err != nil {
		return nil, fmt.Errorf("auth_service_refresh_token_failed: %w", err)
	}

	expiresAt := time.Now().Add(RefreshTokenTTL)
	session := &Session{
		ID:        uuid.New(),
		UserID:    user.ID,
		TokenHash: sec.HashToken(refreshToken),
		UserAgent: userAgent,
		IPAddress: ipAddress,
		ExpiresAt: expiresAt,
	}

	if err := service.sessionRepository.Create(context, session); err != nil {
		return nil, fmt.Errorf("auth_service_session_creation_failed: %w", err)
	}

	return &LoginSession{
		AccessToken:           accessToken,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresAt: expiresAt,
		User:                  user,
	}, nil
}

// sendVerification issues a verification token and logs the link for the
// mail relay.
func (service *Service) sendVerification(context context.Context, user *User) error {
	token, err := sec.GenerateSecureToken(VerificationTokenLength)
	if err != nil {
		return err
	}

	if err := service.verifyTokens.Set(context, token, user.ID, VerificationTokenTTL); err != nil {
		return err
	}

	service.logger.Info("verification_issued",
		slog.String("user_id", user.ID),
		slog.String("verify_link", service.siteURL+"/admin/verify-email?token="+token))
	return nil
}

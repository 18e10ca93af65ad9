package fraudclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/frauddash/go-fraudclient/core"
)

const (
	identityCacheKey = "auth::me"
	identityCacheTTL = 5 * time.Minute
)

// AuthService binds the /auth routes and owns the credential lifecycle:
// the slot is written on login/refresh and destroyed on logout (the 401
// guard handles the involuntary path).
type AuthService struct {
	client *Client
}

func (s *AuthService) Register(ctx context.Context, input RegisterInput) (User, error) {
	var user User
	if err := s.client.postJSON(ctx, "/auth/register", input, &user); err != nil {
		return User{}, err
	}
	return user, nil
}

// Login authenticates and persists the returned access token in the
// credential slot. Every subsequent request carries it until logout or a
// 401 clears it.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (Token, error) {
	var token Token
	if err := s.client.postJSON(ctx, "/auth/login", input, &token); err != nil {
		return Token{}, err
	}
	if err := s.persistToken(ctx, token); err != nil {
		return Token{}, err
	}
	// A fresh session must not see the previous user's cached identity.
	s.client.cache.Clear(identityCacheKey)
	return token, nil
}

// Refresh exchanges the refresh token for a new access token and rotates
// the credential slot.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (Token, error) {
	var token Token
	body := map[string]string{"refresh_token": refreshToken}
	if err := s.client.postJSON(ctx, "/auth/refresh", body, &token); err != nil {
		return Token{}, err
	}
	if err := s.persistToken(ctx, token); err != nil {
		return Token{}, err
	}
	return token, nil
}

// Logout invalidates the server session and destroys the local credential
// and cached identity regardless of whether the server call succeeded.
func (s *AuthService) Logout(ctx context.Context) error {
	requestErr := s.client.postJSON(ctx, "/auth/logout", nil, nil)
	if err := s.client.credentials.Clear(ctx); err != nil {
		return err
	}
	s.client.cache.Clear("auth")
	return requestErr
}

// LogoutAll revokes every server session for the user, then clears local
// state the same way Logout does.
func (s *AuthService) LogoutAll(ctx context.Context) error {
	requestErr := s.client.postJSON(ctx, "/auth/logout-all", nil, nil)
	if err := s.client.credentials.Clear(ctx); err != nil {
		return err
	}
	s.client.cache.Clear("auth")
	return requestErr
}

// Me returns the authenticated user's profile. The record is cached for
// five minutes under the identity key the auth guard flushes on forced
// logout.
func (s *AuthService) Me(ctx context.Context) (User, error) {
	if cached, ok := s.client.cache.Get(identityCacheKey); ok {
		if user, ok := cached.(User); ok {
			return user, nil
		}
	}
	var user User
	if err := s.client.getJSON(ctx, "/auth/me", nil, &user); err != nil {
		return User{}, err
	}
	s.client.cache.Set(identityCacheKey, user, identityCacheTTL)
	return user, nil
}

func (s *AuthService) Setup2FA(ctx context.Context) (TwoFactorSetup, error) {
	var setup TwoFactorSetup
	if err := s.client.postJSON(ctx, "/auth/2fa/setup", nil, &setup); err != nil {
		return TwoFactorSetup{}, err
	}
	return setup, nil
}

func (s *AuthService) Verify2FA(ctx context.Context, totpCode string) error {
	body := map[string]string{"totp_code": totpCode}
	return s.client.postJSON(ctx, "/auth/2fa/verify", body, nil)
}

func (s *AuthService) Disable2FA(ctx context.Context, password string, totpCode string) error {
	body := map[string]string{"password": password, "totp_code": totpCode}
	return s.client.postJSON(ctx, "/auth/2fa/disable", body, nil)
}

func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	return s.client.postJSON(ctx, "/auth/forgot-password", body, nil)
}

func (s *AuthService) ResetPassword(ctx context.Context, resetToken string, newPassword string) error {
	body := map[string]string{"token": resetToken, "new_password": newPassword}
	return s.client.postJSON(ctx, "/auth/reset-password", body, nil)
}

func (s *AuthService) ChangePassword(ctx context.Context, currentPassword string, newPassword string) error {
	body := map[string]string{"current_password": currentPassword, "new_password": newPassword}
	return s.client.postJSON(ctx, "/auth/change-password", body, nil)
}

func (s *AuthService) PasswordStrength(ctx context.Context, password string) (PasswordStrength, error) {
	var strength PasswordStrength
	body := map[string]string{"password": password}
	if err := s.client.postJSON(ctx, "/auth/password-strength", body, &strength); err != nil {
		return PasswordStrength{}, err
	}
	return strength, nil
}

func (s *AuthService) Sessions(ctx context.Context) ([]Session, error) {
	var sessions []Session
	if err := s.client.getJSON(ctx, "/auth/sessions", nil, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

func (s *AuthService) RevokeSession(ctx context.Context, sessionID string) error {
	path := fmt.Sprintf("/auth/sessions/%s", url.PathEscape(sessionID))
	return s.client.deleteJSON(ctx, path, nil)
}

// ExportData downloads the user's GDPR data export as raw JSON.
func (s *AuthService) ExportData(ctx context.Context) ([]byte, error) {
	res, err := s.client.doRaw(ctx, core.TransportRequest{Method: http.MethodGet, Path: "/auth/export-data"})
	if err != nil {
		return nil, err
	}
	return res.Body, nil
}

func (s *AuthService) persistToken(ctx context.Context, token Token) error {
	if token.AccessToken == "" {
		return core.InternalError("fraudclient: auth response carried no access token", nil)
	}
	return s.client.credentials.Set(ctx, token.AccessToken)
}

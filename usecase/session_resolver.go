package usecase

import (
	"context"
	"errors"
	"log"

	"courtsync/model"
	"courtsync/services"
	"courtsync/utils"

	"github.com/pquerna/otp/totp"
)

var (
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrNotAdmin             = errors.New("account is not an administrator")
	ErrTwoFactorInvalid     = errors.New("invalid 2FA code")
	ErrFederatedUnavailable = errors.New("federated sign-in requires a configured identity provider")
)

// DirectoryRepo is the slice of the users collection the resolver needs.
type DirectoryRepo interface {
	FindUserByEmail(ctx context.Context, email string) (*model.User, error)
	FindUser(ctx context.Context, userID string) (*model.User, error)
}

// SessionResolver produces, for any bearer token, exactly one of: no
// session, demo-admin session, verified-admin session. The persisted demo
// record always wins and short-circuits the directory check.
type SessionResolver struct {
	Users DirectoryRepo
	Demo  services.DemoSessionStore

	DemoEmail    string
	DemoPassword string
}

type LoginResult struct {
	Session      *model.AuthSession
	Token        string
	RefreshToken string
	Requires2FA  bool
}

// Login authenticates a credential pair. The demo pair creates a persisted
// demo-admin session without any directory call; everything else is checked
// against the users collection and must carry the admin role.
func (r *SessionResolver) Login(ctx context.Context, email, password, twoFactorCode string) (*LoginResult, error) {
	if email == r.DemoEmail && password == r.DemoPassword {
		session := &model.AuthSession{
			UserID:      "demo-admin-id",
			Email:       r.DemoEmail,
			DisplayName: "Demo Administrator",
			Role:        model.RoleAdmin,
			Origin:      model.OriginDemo,
		}

		token := utils.GenerateID()
		if err := r.Demo.Put(ctx, token, session); err != nil {
			utils.TrackError("auth", "demo_session_persist_failed")
			return nil, err
		}

		utils.TrackAuthAttempt("success", "demo")
		return &LoginResult{Session: session, Token: token}, nil
	}

	user, err := r.Users.FindUserByEmail(ctx, email)
	if err != nil {
		utils.TrackError("auth", "user_lookup")
		return nil, ErrInvalidCredentials
	}
	if user == nil {
		utils.TrackAuthAttempt("failure", "user_not_found")
		return nil, ErrInvalidCredentials
	}

	ok, err := services.VerifyPassword(user.PasswordHash, password)
	if err != nil || !ok {
		utils.TrackAuthAttempt("failure", "invalid_password")
		return nil, ErrInvalidCredentials
	}

	if user.TwoFactorEnabled {
		if twoFactorCode == "" {
			utils.TrackAuthAttempt("pending", "2fa_required")
			return &LoginResult{Requires2FA: true}, nil
		}
		if !totp.Validate(twoFactorCode, user.TwoFactorSecret) {
			utils.TrackAuthAttempt("failure", "invalid_2fa")
			return nil, ErrTwoFactorInvalid
		}
		utils.TrackAuthAttempt("success", "2fa")
	}

	// A non-admin identity must never end up holding a session.
	if user.Role != model.RoleAdmin {
		utils.TrackAuthAttempt("failure", "not_admin")
		return nil, ErrNotAdmin
	}

	token, err := services.GenerateToken(user.UserID)
	if err != nil {
		utils.TrackError("auth", "token_generation")
		return nil, err
	}

	refreshToken, err := services.GenerateRefreshToken(user.UserID)
	if err != nil {
		utils.TrackError("auth", "refresh_token_generation")
		return nil, err
	}

	utils.TrackAuthAttempt("success", "login")
	return &LoginResult{
		Session: &model.AuthSession{
			UserID:      user.UserID,
			Email:       user.Email,
			DisplayName: user.DisplayName,
			Role:        user.Role,
			Origin:      model.OriginVerified,
		},
		Token:        token,
		RefreshToken: refreshToken,
	}, nil
}

// GoogleSignIn mirrors the original dashboard: without a configured
// provider the federated path fails with an inline message pointing at the
// demo login. No provider integration exists yet.
func (r *SessionResolver) GoogleSignIn(ctx context.Context, idToken string) (*LoginResult, error) {
	utils.TrackAuthAttempt("failure", "google")
	return nil, ErrFederatedUnavailable
}

// Resolve maps a bearer token to a session. Order matters: the demo record
// is consulted first and skips the directory entirely. A verified token
// whose profile is missing or non-admin is forcibly signed out.
func (r *SessionResolver) Resolve(ctx context.Context, token string) (*model.AuthSession, error) {
	if token == "" {
		return nil, nil
	}

	if r.Demo != nil {
		session, err := r.Demo.Get(ctx, token)
		if err != nil {
			// Degraded demo store: fall through to the verified path.
			log.Printf("demo session lookup failed: %v", err)
			utils.TrackError("auth", "demo_session_lookup_failed")
		} else if session != nil {
			return session, nil
		}
	}

	if services.IsTokenBlacklisted(token) {
		return nil, nil
	}

	userID, err := services.ParseToken(token)
	if err != nil {
		return nil, nil
	}

	user, err := r.Users.FindUser(ctx, userID)
	if err != nil {
		// Directory unreachable or misconfigured: log, clear, do not crash.
		log.Printf("profile fetch failed for %s: %v", userID, err)
		utils.TrackError("auth", "profile_fetch_failed")
		return nil, err
	}

	if user == nil || user.Role != model.RoleAdmin {
		r.forceSignOut(token)
		return nil, nil
	}

	return &model.AuthSession{
		UserID:      user.UserID,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		Role:        user.Role,
		Origin:      model.OriginVerified,
	}, nil
}

// Logout clears both session sources: the persisted demo record and the
// token pair. Neither failure blocks the other.
func (r *SessionResolver) Logout(ctx context.Context, accessToken, refreshToken string) {
	if r.Demo != nil {
		if err := r.Demo.Delete(ctx, accessToken); err != nil {
			log.Printf("failed to clear demo session: %v", err)
			utils.TrackError("auth", "demo_session_delete_failed")
		}
	}

	if err := services.BlacklistTokens(accessToken, refreshToken); err != nil {
		log.Printf("failed to blacklist tokens: %v", err)
		utils.TrackError("auth", "token_blacklist_failed")
	}
}

func (r *SessionResolver) forceSignOut(token string) {
	utils.TrackAuthAttempt("failure", "not_admin")
	if err := services.BlacklistTokens(token, ""); err != nil {
		log.Printf("forced sign-out: failed to blacklist token: %v", err)
		utils.TrackError("auth", "forced_signout_failed")
	}
}

package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	domain "github.com/BruksfildServices01/table-reservations/internal/domain/auth"
	"github.com/BruksfildServices01/table-reservations/internal/httperr"
	"github.com/BruksfildServices01/table-reservations/internal/models"
)

// ======================================================
// REFRESH
// ======================================================

type Refresh struct {
	issuer
}

func NewRefresh(repo domain.Repository, tokens *Tokens, refreshTTL time.Duration) *Refresh {
	return &Refresh{
		issuer: issuer{repo: repo, tokens: tokens, refreshTTL: refreshTTL, now: time.Now},
	}
}

// Execute rotates the refresh token: the presented one is deleted and a
// new session is opened.
func (uc *Refresh) Execute(ctx context.Context, refreshToken string) (*Session, error) {
	refreshToken = strings.TrimSpace(refreshToken)
	if refreshToken == "" {
		return nil, httperr.ErrBusiness("invalid_refresh_token")
	}

	old, err := uc.repo.GetActiveSession(ctx, refreshToken, uc.now())
	if errors.Is(err, httperr.ErrNotFound) {
		return nil, httperr.ErrBusiness("invalid_refresh_token")
	}
	if err != nil {
		return nil, httperr.Storage("get_session", err)
	}

	if err := uc.repo.DeleteSession(ctx, refreshToken); err != nil {
		return nil, httperr.Storage("delete_session", err)
	}

	user := old.User
	return uc.open(ctx, &user)
}

// ======================================================
// LOGOUT
// ======================================================

type Logout struct {
	repo domain.Repository
}

func NewLogout(repo domain.Repository) *Logout {
	return &Logout{repo: repo}
}

// Execute deletes one refresh token. Unknown tokens are not an error.
func (uc *Logout) Execute(ctx context.Context, refreshToken string) error {
	if err := uc.repo.DeleteSession(ctx, strings.TrimSpace(refreshToken)); err != nil {
		return httperr.Storage("delete_session", err)
	}
	return nil
}

type LogoutAll struct {
	repo domain.Repository
}

func NewLogoutAll(repo domain.Repository) *LogoutAll {
	return &LogoutAll{repo: repo}
}

func (uc *LogoutAll) Execute(ctx context.Context, userID uint) error {
	if err := uc.repo.DeleteUserSessions(ctx, userID); err != nil {
		return httperr.Storage("delete_sessions", err)
	}
	return nil
}

// ======================================================
// MAINTENANCE
// ======================================================

type PruneSessions struct {
	repo domain.Repository
	now  func() time.Time
}

func NewPruneSessions(repo domain.Repository) *PruneSessions {
	return &PruneSessions{repo: repo, now: time.Now}
}

func (uc *PruneSessions) Execute(ctx context.Context) (int64, error) {
	n, err := uc.repo.DeleteExpiredSessions(ctx, uc.now())
	if err != nil {
		return 0, httperr.Storage("prune_sessions", err)
	}
	return n, nil
}

// ======================================================
// CURRENT USER
// ======================================================

type Me struct {
	repo domain.Repository
}

func NewMe(repo domain.Repository) *Me {
	return &Me{repo: repo}
}

func (uc *Me) Execute(ctx context.Context, userID uint) (*models.User, error) {
	u, err := uc.repo.GetUserByID(ctx, userID)
	if errors.Is(err, httperr.ErrNotFound) {
		return nil, httperr.ErrBusiness("user_not_found")
	}
	if err != nil {
		return nil, httperr.Storage("get_user", err)
	}
	return u, nil
}

package auth

import (
	"context"
	"time"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/table-reservations/internal/domain/auth"
	"github.com/BruksfildServices01/table-reservations/internal/httperr"
	"github.com/BruksfildServices01/table-reservations/internal/models"
)

// Session is what a successful login, registration or refresh returns.
type Session struct {
	AccessToken      string
	AccessExpiresAt  time.Time
	RefreshToken     string
	RefreshExpiresAt time.Time
	User             *models.User
}

// issuer opens sessions: one signed access token plus a stored refresh token.
type issuer struct {
	repo       domain.Repository
	tokens     *Tokens
	refreshTTL time.Duration
	now        func() time.Time
}

func (i issuer) open(ctx context.Context, user *models.User) (*Session, error) {
	access, accessExp, err := i.tokens.Issue(user)
	if err != nil {
		return nil, err
	}

	s := &models.Session{
		UserID:       user.ID,
		RefreshToken: uuid.NewString(),
		ExpiresAt:    i.now().Add(i.refreshTTL).UTC(),
	}
	if err := i.repo.CreateSession(ctx, s); err != nil {
		return nil, httperr.Storage("create_session", err)
	}

	return &Session{
		AccessToken:      access,
		AccessExpiresAt:  accessExp,
		RefreshToken:     s.RefreshToken,
		RefreshExpiresAt: s.ExpiresAt,
		User:             user,
	}, nil
}

package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/table-reservations/internal/audit"
	domain "github.com/BruksfildServices01/table-reservations/internal/domain/auth"
	"github.com/BruksfildServices01/table-reservations/internal/httperr"
)

type Login struct {
	issuer
	audit *audit.Dispatcher
}

func NewLogin(
	repo domain.Repository,
	tokens *Tokens,
	refreshTTL time.Duration,
	audit *audit.Dispatcher,
) *Login {
	return &Login{
		issuer: issuer{repo: repo, tokens: tokens, refreshTTL: refreshTTL, now: time.Now},
		audit:  audit,
	}
}

func (uc *Login) Execute(ctx context.Context, username, password string) (*Session, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	if username == "" || password == "" {
		return nil, httperr.ErrBusiness("missing_fields")
	}

	user, err := uc.repo.GetUserByUsername(ctx, username)
	if errors.Is(err, httperr.ErrNotFound) {
		return nil, httperr.ErrBusiness("invalid_credentials")
	}
	if err != nil {
		return nil, httperr.Storage("get_user", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, httperr.ErrBusiness("invalid_credentials")
	}

	s, err := uc.open(ctx, user)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		RestaurantID: user.RestaurantID,
		UserID:       &user.ID,
		Action:       "user_logged_in",
		Entity:       "user",
		EntityID:     &user.ID,
	})
	return s, nil
}

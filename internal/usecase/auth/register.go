package auth

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/table-reservations/internal/audit"
	domain "github.com/BruksfildServices01/table-reservations/internal/domain/auth"
	"github.com/BruksfildServices01/table-reservations/internal/domain/settings"
	"github.com/BruksfildServices01/table-reservations/internal/httperr"
	"github.com/BruksfildServices01/table-reservations/internal/models"
	"github.com/BruksfildServices01/table-reservations/internal/timezone"
	"github.com/BruksfildServices01/table-reservations/internal/validators"
)

const MinPasswordLength = 8

var (
	slugPattern     = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
	usernamePattern = regexp.MustCompile(`^[a-z0-9._-]{3,64}$`)
)

type RegisterInput struct {
	RestaurantName string
	Slug           string
	Phone          string
	Email          string
	Address        string
	Timezone       string

	Username string
	Password string
}

type Register struct {
	issuer
	audit     *audit.Dispatcher
	defaultTZ string
}

func NewRegister(
	repo domain.Repository,
	tokens *Tokens,
	refreshTTL time.Duration,
	audit *audit.Dispatcher,
) *Register {
	return &Register{
		issuer:    issuer{repo: repo, tokens: tokens, refreshTTL: refreshTTL, now: time.Now},
		audit:     audit,
		defaultTZ: timezone.DefaultTimezone,
	}
}

// WithDefaultTimezone sets the timezone of restaurants registered without one.
func (uc *Register) WithDefaultTimezone(tz string) *Register {
	if tz != "" {
		uc.defaultTZ = tz
	}
	return uc
}

// Execute creates a restaurant with its owner, the default slot
// configuration and default hours, then signs the owner in.
func (uc *Register) Execute(ctx context.Context, in RegisterInput) (*Session, *models.Restaurant, error) {
	name := strings.TrimSpace(in.RestaurantName)
	slug := strings.ToLower(strings.TrimSpace(in.Slug))
	username := strings.ToLower(strings.TrimSpace(in.Username))
	email := strings.ToLower(strings.TrimSpace(in.Email))

	if name == "" || slug == "" || username == "" || in.Password == "" {
		return nil, nil, httperr.ErrBusiness("missing_fields")
	}
	if !slugPattern.MatchString(slug) {
		return nil, nil, httperr.ErrBusiness("invalid_slug")
	}
	if !usernamePattern.MatchString(username) {
		return nil, nil, httperr.ErrBusiness("invalid_username")
	}
	if len(in.Password) < MinPasswordLength {
		return nil, nil, httperr.ErrBusiness("weak_password")
	}
	if email != "" && !validators.IsEmailFormatValid(email) {
		return nil, nil, httperr.ErrBusiness("invalid_email")
	}

	tz := strings.TrimSpace(in.Timezone)
	if tz == "" {
		tz = uc.defaultTZ
	}
	if !timezone.IsValid(tz) {
		return nil, nil, httperr.ErrBusiness("invalid_timezone")
	}

	if err := uc.ensureFree(ctx, slug, username); err != nil {
		return nil, nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, err
	}

	rest := &models.Restaurant{
		Name:     name,
		Slug:     slug,
		Phone:    strings.TrimSpace(in.Phone),
		Email:    email,
		Address:  strings.TrimSpace(in.Address),
		Timezone: tz,
	}
	owner := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleOwner,
	}
	cfg := settings.DefaultTimeSlotConfig(0)

	if err := uc.repo.CreateRestaurantWithOwner(ctx, rest, owner, &cfg, settings.DefaultWeek(0)); err != nil {
		if httperr.IsUniqueViolation(err) {
			// lost a race with a concurrent registration
			return nil, nil, httperr.ErrBusiness("slug_already_exists")
		}
		return nil, nil, httperr.Storage("register", err)
	}
	owner.Restaurant = *rest

	s, err := uc.open(ctx, owner)
	if err != nil {
		return nil, nil, err
	}

	uc.audit.Dispatch(audit.Event{
		RestaurantID: rest.ID,
		UserID:       &owner.ID,
		Action:       "restaurant_registered",
		Entity:       "restaurant",
		EntityID:     &rest.ID,
	})

	return s, rest, nil
}

func (uc *Register) ensureFree(ctx context.Context, slug, username string) error {
	_, err := uc.repo.GetRestaurantBySlug(ctx, slug)
	switch {
	case err == nil:
		return httperr.ErrBusiness("slug_already_exists")
	case !errors.Is(err, httperr.ErrNotFound):
		return httperr.Storage("get_restaurant", err)
	}

	_, err = uc.repo.GetUserByUsername(ctx, username)
	switch {
	case err == nil:
		return httperr.ErrBusiness("username_taken")
	case !errors.Is(err, httperr.ErrNotFound):
		return httperr.Storage("get_user", err)
	}
	return nil
}

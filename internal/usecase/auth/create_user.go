package auth

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	domain "github.com/BruksfildServices01/table-reservations/internal/domain/auth"
	"github.com/BruksfildServices01/table-reservations/internal/httperr"
	"github.com/BruksfildServices01/table-reservations/internal/models"
)

type CreateUserInput struct {
	RestaurantSlug string
	Username       string
	Email          string
	Password       string
	Role           string
}

// CreateUser adds a login to an existing restaurant.
type CreateUser struct {
	repo domain.Repository
}

func NewCreateUser(repo domain.Repository) *CreateUser {
	return &CreateUser{repo: repo}
}

func (uc *CreateUser) Execute(ctx context.Context, in CreateUserInput) (*models.User, error) {
	username := strings.ToLower(strings.TrimSpace(in.Username))
	if !usernamePattern.MatchString(username) {
		return nil, httperr.ErrBusiness("invalid_username")
	}
	if len(in.Password) < MinPasswordLength {
		return nil, httperr.ErrBusiness("weak_password")
	}

	role := strings.ToLower(strings.TrimSpace(in.Role))
	if role == "" {
		role = domain.RoleStaff
	}
	if role != domain.RoleOwner && role != domain.RoleStaff {
		return nil, httperr.ErrBusiness("invalid_role")
	}

	rest, err := uc.repo.GetRestaurantBySlug(ctx, strings.ToLower(strings.TrimSpace(in.RestaurantSlug)))
	if errors.Is(err, httperr.ErrNotFound) {
		return nil, httperr.ErrBusiness("restaurant_not_found")
	}
	if err != nil {
		return nil, httperr.Storage("get_restaurant", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &models.User{
		RestaurantID: rest.ID,
		Username:     username,
		Email:        strings.ToLower(strings.TrimSpace(in.Email)),
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := uc.repo.CreateUser(ctx, u); err != nil {
		if httperr.IsUniqueViolation(err) {
			return nil, httperr.ErrBusiness("username_taken")
		}
		return nil, httperr.Storage("create_user", err)
	}
	u.Restaurant = *rest
	return u, nil
}

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/table-reservations/internal/db/dbtest"
	"github.com/BruksfildServices01/table-reservations/internal/domain/settings"
	"github.com/BruksfildServices01/table-reservations/internal/httperr"
	"github.com/BruksfildServices01/table-reservations/internal/models"
)

func TestCreateRestaurantWithOwner(t *testing.T) {
	gdb := dbtest.Open(t)
	repo := NewAuthGormRepository(gdb)
	ctx := context.Background()

	rest := &models.Restaurant{Name: "Trattoria", Slug: "trattoria", Timezone: "Europe/Rome"}
	owner := &models.User{Username: "mario", PasswordHash: "x", Role: "owner"}
	cfg := settings.DefaultTimeSlotConfig(0)

	require.NoError(t, repo.CreateRestaurantWithOwner(ctx, rest, owner, &cfg, settings.DefaultWeek(0)))
	assert.Equal(t, rest.ID, owner.RestaurantID)

	u, err := repo.GetUserByUsername(ctx, "Mario")
	require.NoError(t, err)
	assert.Equal(t, "Trattoria", u.Restaurant.Name)

	var hours int64
	gdb.Model(&models.OperatingHours{}).Where("restaurant_id = ?", rest.ID).Count(&hours)
	assert.Equal(t, int64(7), hours)

	dup := &models.Restaurant{Name: "Copy", Slug: "trattoria"}
	err = repo.CreateRestaurantWithOwner(ctx, dup, &models.User{Username: "luigi", PasswordHash: "x"}, &cfg, nil)
	assert.True(t, httperr.IsUniqueViolation(err))

	_, err = repo.GetUserByUsername(ctx, "luigi")
	assert.ErrorIs(t, err, httperr.ErrNotFound, "failed registration must roll back")
}

func TestSessions(t *testing.T) {
	gdb := dbtest.Open(t)
	rest := dbtest.Restaurant(t, gdb, "bistro", dbtest.DefaultConfig(), "09:00", "21:00")
	repo := NewAuthGormRepository(gdb)
	ctx := context.Background()
	now := time.Now().UTC()

	user := &models.User{RestaurantID: rest.ID, Username: "host", PasswordHash: "x"}
	require.NoError(t, repo.CreateUser(ctx, user))

	live := &models.Session{UserID: user.ID, RefreshToken: uuid.NewString(), ExpiresAt: now.Add(time.Hour)}
	stale := &models.Session{UserID: user.ID, RefreshToken: uuid.NewString(), ExpiresAt: now.Add(-time.Hour)}
	require.NoError(t, repo.CreateSession(ctx, live))
	require.NoError(t, repo.CreateSession(ctx, stale))

	got, err := repo.GetActiveSession(ctx, live.RefreshToken, now)
	require.NoError(t, err)
	assert.Equal(t, "host", got.User.Username)
	assert.Equal(t, rest.ID, got.User.Restaurant.ID)

	_, err = repo.GetActiveSession(ctx, stale.RefreshToken, now)
	assert.ErrorIs(t, err, httperr.ErrNotFound)

	n, err := repo.DeleteExpiredSessions(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	require.NoError(t, repo.DeleteUserSessions(ctx, user.ID))
	_, err = repo.GetActiveSession(ctx, live.RefreshToken, now)
	assert.ErrorIs(t, err, httperr.ErrNotFound)
}

package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/table-reservations/internal/db/dbtest"
	"github.com/BruksfildServices01/table-reservations/internal/httperr"
	"github.com/BruksfildServices01/table-reservations/internal/models"
)

func TestUpsertOperatingHours(t *testing.T) {
	gdb := dbtest.Open(t)
	rest := dbtest.Restaurant(t, gdb, "bistro", dbtest.DefaultConfig(), "09:00", "21:00")
	repo := NewSettingsGormRepository(gdb)
	ctx := context.Background()

	err := repo.UpsertOperatingHours(ctx, rest.ID, []models.OperatingHours{
		{DayOfWeek: 1, OpenTime: "11:00", CloseTime: "15:00"},
		{DayOfWeek: 2, OpenTime: "09:00", CloseTime: "21:00", IsClosed: true},
	})
	require.NoError(t, err)

	hours, err := repo.ListOperatingHours(ctx, rest.ID)
	require.NoError(t, err)
	require.Len(t, hours, 7)
	assert.Equal(t, "11:00", hours[1].OpenTime)
	assert.Equal(t, "15:00", hours[1].CloseTime)
	assert.True(t, hours[2].IsClosed)
	assert.Equal(t, "09:00", hours[0].OpenTime)
}

func TestBlockedDates(t *testing.T) {
	gdb := dbtest.Open(t)
	rest := dbtest.Restaurant(t, gdb, "bistro", dbtest.DefaultConfig(), "09:00", "21:00")
	repo := NewSettingsGormRepository(gdb)
	ctx := context.Background()

	first := &models.BlockedDate{RestaurantID: rest.ID, Date: "2030-01-01", Reason: "New year"}
	require.NoError(t, repo.UpsertBlockedDate(ctx, first))
	require.NotZero(t, first.ID)

	again := &models.BlockedDate{RestaurantID: rest.ID, Date: "2030-01-01", Reason: "Closed for inventory"}
	require.NoError(t, repo.UpsertBlockedDate(ctx, again))
	assert.Equal(t, first.ID, again.ID)
	assert.Equal(t, "Closed for inventory", again.Reason)

	require.NoError(t, repo.UpsertBlockedDate(ctx, &models.BlockedDate{RestaurantID: rest.ID, Date: "2020-01-01"}))

	upcoming, err := repo.ListBlockedDatesFrom(ctx, rest.ID, "2024-01-01")
	require.NoError(t, err)
	require.Len(t, upcoming, 1)
	assert.Equal(t, "2030-01-01", upcoming[0].Date)

	assert.ErrorIs(t, repo.DeleteBlockedDate(ctx, rest.ID+1, first.ID), httperr.ErrNotFound)
	require.NoError(t, repo.DeleteBlockedDate(ctx, rest.ID, first.ID))
}

func TestTimeSlotConfigRoundTrip(t *testing.T) {
	gdb := dbtest.Open(t)
	rest := dbtest.Restaurant(t, gdb, "bistro", dbtest.DefaultConfig(), "09:00", "21:00")
	repo := NewSettingsGormRepository(gdb)
	ctx := context.Background()

	cfg, err := repo.GetTimeSlotConfig(ctx, rest.ID)
	require.NoError(t, err)

	cfg.MaxReservationsPerSlot = 0
	require.NoError(t, repo.SaveTimeSlotConfig(ctx, cfg))

	reloaded, err := repo.GetTimeSlotConfig(ctx, rest.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, reloaded.MaxReservationsPerSlot)

	_, err = repo.GetTimeSlotConfig(ctx, rest.ID+1)
	assert.ErrorIs(t, err, httperr.ErrNotFound)
}

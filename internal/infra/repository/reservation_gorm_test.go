package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/table-reservations/internal/db/dbtest"
	domain "github.com/BruksfildServices01/table-reservations/internal/domain/reservation"
	"github.com/BruksfildServices01/table-reservations/internal/httperr"
	"github.com/BruksfildServices01/table-reservations/internal/models"
)

func seedReservation(t *testing.T, gdb *gorm.DB, restaurantID, customerID uint, date, slot, status string) *models.Reservation {
	t.Helper()
	res := &models.Reservation{
		Reference:    uuid.NewString(),
		RestaurantID: restaurantID,
		CustomerID:   customerID,
		Date:         date,
		TimeSlot:     slot,
		PartySize:    2,
		Status:       status,
	}
	require.NoError(t, gdb.Omit("Customer").Create(res).Error)
	return res
}

func seedCustomer(t *testing.T, gdb *gorm.DB, restaurantID uint, phone string) *models.Customer {
	t.Helper()
	c := &models.Customer{RestaurantID: restaurantID, FirstName: "Ada", LastName: "Lovelace", Phone: phone}
	require.NoError(t, gdb.Create(c).Error)
	return c
}

func TestBookedCounts_ExcludesCancelled(t *testing.T) {
	gdb := dbtest.Open(t)
	rest := dbtest.Restaurant(t, gdb, "bistro", dbtest.DefaultConfig(), "09:00", "21:00")
	other := dbtest.Restaurant(t, gdb, "other", dbtest.DefaultConfig(), "09:00", "21:00")
	cust := seedCustomer(t, gdb, rest.ID, "5550000001")

	for i := 0; i < 10; i++ {
		seedReservation(t, gdb, rest.ID, cust.ID, "2024-06-01", "18:00:00", "confirmed")
	}
	seedReservation(t, gdb, rest.ID, cust.ID, "2024-06-01", "18:00:00", "cancelled")
	seedReservation(t, gdb, rest.ID, cust.ID, "2024-06-01", "18:00:00", "cancelled")
	seedReservation(t, gdb, rest.ID, cust.ID, "2024-06-01", "19:00:00", "no_show")
	seedReservation(t, gdb, rest.ID, cust.ID, "2024-06-02", "18:00:00", "confirmed")
	seedReservation(t, gdb, other.ID, cust.ID, "2024-06-01", "18:00:00", "confirmed")

	repo := NewReservationGormRepository(gdb)
	counts, err := repo.BookedCounts(context.Background(), rest.ID, "2024-06-01")
	require.NoError(t, err)

	assert.Equal(t, domain.BookedCounts{"18:00:00": 10, "19:00:00": 1}, counts)

	slots := domain.NewGenerator(false).Generate(
		&models.OperatingHours{OpenTime: "09:00", CloseTime: "21:00"},
		dbtest.DefaultConfig(),
		false,
		counts,
	)
	var evening *domain.TimeSlot
	for i := range slots {
		if slots[i].Time == "18:00" {
			evening = &slots[i]
		}
	}
	require.NotNil(t, evening, "18:00 slot must be generated")
	assert.False(t, evening.Available)
	assert.Equal(t, 0, evening.RemainingSpots)
}

func TestUpsertCustomer(t *testing.T) {
	gdb := dbtest.Open(t)
	rest := dbtest.Restaurant(t, gdb, "bistro", dbtest.DefaultConfig(), "09:00", "21:00")
	repo := NewReservationGormRepository(gdb)
	ctx := context.Background()

	created, err := repo.UpsertCustomer(ctx, rest.ID, domain.CustomerInput{
		Phone: "555-000-1111", FirstName: "Grace", LastName: "Hopper", Email: "grace@example.com",
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	updated, err := repo.UpsertCustomer(ctx, rest.ID, domain.CustomerInput{
		Phone: "555-000-1111", FirstName: "Grace B.", LastName: "Hopper",
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Grace B.", updated.FirstName)
	assert.Equal(t, "grace@example.com", updated.Email, "missing email keeps the stored one")

	var stored models.Customer
	require.NoError(t, gdb.First(&stored, created.ID).Error)
	assert.Equal(t, "Grace B.", stored.FirstName)

	var count int64
	gdb.Model(&models.Customer{}).Where("restaurant_id = ?", rest.ID).Count(&count)
	assert.Equal(t, int64(1), count)

	customers, err := repo.ListCustomers(ctx, rest.ID, "grace")
	require.NoError(t, err)
	assert.Len(t, customers, 1)
}

func TestWithBookingLock_CommitsAndRollsBack(t *testing.T) {
	gdb := dbtest.Open(t)
	rest := dbtest.Restaurant(t, gdb, "bistro", dbtest.DefaultConfig(), "09:00", "21:00")
	repo := NewReservationGormRepository(gdb)
	ctx := context.Background()

	err := repo.WithBookingLock(ctx, rest.ID, func(tx domain.Repository) error {
		c, err := tx.UpsertCustomer(ctx, rest.ID, domain.CustomerInput{Phone: "5551112222", FirstName: "A", LastName: "B"})
		if err != nil {
			return err
		}
		return tx.InsertReservation(ctx, &models.Reservation{
			Reference: uuid.NewString(), RestaurantID: rest.ID, CustomerID: c.ID,
			Date: "2024-06-01", TimeSlot: "18:00:00", PartySize: 2, Status: "confirmed",
		})
	})
	require.NoError(t, err)

	boom := errors.New("boom")
	err = repo.WithBookingLock(ctx, rest.ID, func(tx domain.Repository) error {
		c, err := tx.UpsertCustomer(ctx, rest.ID, domain.CustomerInput{Phone: "5559998888", FirstName: "C", LastName: "D"})
		if err != nil {
			return err
		}
		if err := tx.InsertReservation(ctx, &models.Reservation{
			Reference: uuid.NewString(), RestaurantID: rest.ID, CustomerID: c.ID,
			Date: "2024-06-01", TimeSlot: "18:00:00", PartySize: 2, Status: "confirmed",
		}); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	counts, err := repo.BookedCounts(ctx, rest.ID, "2024-06-01")
	require.NoError(t, err)
	assert.Equal(t, 1, counts["18:00:00"])

	var customers int64
	gdb.Model(&models.Customer{}).Count(&customers)
	assert.Equal(t, int64(1), customers)
}

func TestBookingLockQuery_SelectsForUpdate(t *testing.T) {
	pg, err := gorm.Open(
		postgres.New(postgres.Config{DSN: "host=localhost user=tables_user dbname=tables_db sslmode=disable"}),
		&gorm.Config{DryRun: true, DisableAutomaticPing: true},
	)
	require.NoError(t, err)

	sql := pg.ToSQL(func(tx *gorm.DB) *gorm.DB {
		var cfg models.TimeSlotConfig
		return lockSlotConfig(tx, 7).First(&cfg)
	})

	assert.Contains(t, sql, "restaurant_id = 7")
	assert.Contains(t, sql, "FOR UPDATE")
}

func TestInsertCustomerIfAbsent(t *testing.T) {
	gdb := dbtest.Open(t)
	rest := dbtest.Restaurant(t, gdb, "bistro", dbtest.DefaultConfig(), "09:00", "21:00")
	existing := seedCustomer(t, gdb, rest.ID, "5550001234")

	err := gdb.Transaction(func(tx *gorm.DB) error {
		dup := &models.Customer{RestaurantID: rest.ID, Phone: "5550001234", FirstName: "Other", LastName: "Guest"}
		inserted, err := insertCustomerIfAbsent(tx, dup)
		require.NoError(t, err)
		assert.False(t, inserted)

		// the transaction keeps working after the conflict
		var found models.Customer
		require.NoError(t, tx.Where("restaurant_id = ? AND phone = ?", rest.ID, "5550001234").First(&found).Error)
		assert.Equal(t, existing.ID, found.ID)

		fresh := &models.Customer{RestaurantID: rest.ID, Phone: "5550009999", FirstName: "New", LastName: "Guest"}
		inserted, err = insertCustomerIfAbsent(tx, fresh)
		require.NoError(t, err)
		assert.True(t, inserted)
		assert.NotZero(t, fresh.ID)
		return nil
	})
	require.NoError(t, err)

	var count int64
	gdb.Model(&models.Customer{}).Where("restaurant_id = ?", rest.ID).Count(&count)
	assert.Equal(t, int64(2), count)

	var kept models.Customer
	require.NoError(t, gdb.First(&kept, existing.ID).Error)
	assert.Equal(t, "Ada", kept.FirstName)
}

func TestReservationLookups(t *testing.T) {
	gdb := dbtest.Open(t)
	rest := dbtest.Restaurant(t, gdb, "bistro", dbtest.DefaultConfig(), "09:00", "21:00")
	other := dbtest.Restaurant(t, gdb, "other", dbtest.DefaultConfig(), "09:00", "21:00")
	cust := seedCustomer(t, gdb, rest.ID, "5550000001")
	repo := NewReservationGormRepository(gdb)
	ctx := context.Background()

	late := seedReservation(t, gdb, rest.ID, cust.ID, "2024-06-01", "20:00:00", "confirmed")
	early := seedReservation(t, gdb, rest.ID, cust.ID, "2024-06-01", "12:00:00", "completed")
	cancelled := seedReservation(t, gdb, rest.ID, cust.ID, "2024-06-01", "13:00:00", "cancelled")
	seedReservation(t, gdb, rest.ID, cust.ID, "2024-06-15", "13:00:00", "confirmed")
	seedReservation(t, gdb, rest.ID, cust.ID, "2024-07-01", "13:00:00", "confirmed")

	list, err := repo.ListReservationsByDate(ctx, rest.ID, "2024-06-01", false)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, early.ID, list[0].ID)
	assert.Equal(t, late.ID, list[1].ID)
	assert.Equal(t, "Ada", list[0].Customer.FirstName)

	all, err := repo.ListReservationsByDate(ctx, rest.ID, "2024-06-01", true)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	month, err := repo.ListReservationsBetween(ctx, rest.ID, "2024-06-01", "2024-07-01")
	require.NoError(t, err)
	assert.Len(t, month, 3)

	got, err := repo.GetReservation(ctx, rest.ID, cancelled.ID)
	require.NoError(t, err)
	assert.Equal(t, "cancelled", got.Status)

	_, err = repo.GetReservation(ctx, other.ID, cancelled.ID)
	assert.ErrorIs(t, err, httperr.ErrNotFound)

	assert.ErrorIs(t, repo.DeleteReservation(ctx, other.ID, late.ID), httperr.ErrNotFound)
	require.NoError(t, repo.DeleteReservation(ctx, rest.ID, late.ID))
	_, err = repo.GetReservation(ctx, rest.ID, late.ID)
	assert.ErrorIs(t, err, httperr.ErrNotFound)

	_, err = repo.GetRestaurantBySlug(ctx, "nowhere")
	assert.ErrorIs(t, err, httperr.ErrNotFound)

	found, err := repo.GetRestaurantBySlug(ctx, " Bistro ")
	require.NoError(t, err)
	assert.Equal(t, rest.ID, found.ID)
}

func TestAvailabilityInputs(t *testing.T) {
	gdb := dbtest.Open(t)
	rest := dbtest.Restaurant(t, gdb, "bistro", dbtest.DefaultConfig(), "09:00", "21:00")
	repo := NewReservationGormRepository(gdb)
	ctx := context.Background()

	require.NoError(t, gdb.Create(&models.BlockedDate{RestaurantID: rest.ID, Date: "2024-12-25", Reason: "Holiday"}).Error)

	blocked, err := repo.IsDateBlocked(ctx, rest.ID, "2024-12-25")
	require.NoError(t, err)
	assert.True(t, blocked)

	blocked, err = repo.IsDateBlocked(ctx, rest.ID, "2024-12-24")
	require.NoError(t, err)
	assert.False(t, blocked)

	oh, err := repo.GetOperatingHours(ctx, rest.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, "09:00", oh.OpenTime)

	_, err = repo.GetOperatingHours(ctx, rest.ID+100, 3)
	assert.ErrorIs(t, err, httperr.ErrNotFound)

	cfg, err := repo.GetTimeSlotConfig(ctx, rest.ID)
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.SlotDurationMinutes)

	upcoming, err := repo.ListBlockedDatesFrom(ctx, rest.ID, "2025-01-01")
	require.NoError(t, err)
	assert.Empty(t, upcoming)
}

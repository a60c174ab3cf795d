// Package dbtest opens throwaway SQLite databases for tests.
package dbtest

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/BruksfildServices01/table-reservations/internal/db"
	"github.com/BruksfildServices01/table-reservations/internal/models"
)

// Open returns a migrated in-memory database private to t.
func Open(t testing.TB) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(uuid.NewString(), "-", "")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=1", name)

	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("sql.DB: %v", err)
	}
	// one connection keeps the in-memory database alive and serialises writers
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return gdb
}

// Restaurant seeds a restaurant with a slot config and the same hours every day.
func Restaurant(t testing.TB, gdb *gorm.DB, slug string, cfg models.TimeSlotConfig, open, close string) *models.Restaurant {
	t.Helper()

	r := &models.Restaurant{Name: strings.ToUpper(slug), Slug: slug, Timezone: "UTC"}
	must(t, gdb.Create(r).Error)

	cfg.RestaurantID = r.ID
	must(t, gdb.Create(&cfg).Error)

	for day := 0; day < 7; day++ {
		must(t, gdb.Create(&models.OperatingHours{
			RestaurantID: r.ID,
			DayOfWeek:    day,
			OpenTime:     open,
			CloseTime:    close,
		}).Error)
	}
	return r
}

// DefaultConfig is 30-minute slots for up to 10 parties.
func DefaultConfig() models.TimeSlotConfig {
	return models.TimeSlotConfig{
		SlotDurationMinutes:    30,
		MaxReservationsPerSlot: 10,
		DefaultPartySize:       2,
		MaxPartySize:           10,
		AdvanceBookingDays:     30,
	}
}

func must(t testing.TB, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
}

package reservation

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/table-reservations/internal/domain/reservation"
	"github.com/BruksfildServices01/table-reservations/internal/httperr"
	"github.com/BruksfildServices01/table-reservations/internal/metrics"
	"github.com/BruksfildServices01/table-reservations/internal/models"
	"github.com/BruksfildServices01/table-reservations/internal/timezone"
)

type AvailabilityResult struct {
	Restaurant   *models.Restaurant
	Availability domain.Availability

	// Config is nil when the restaurant is not configured.
	Config *models.TimeSlotConfig

	MinDate      string
	MaxDate      string
	BlockedDates []models.BlockedDate
}

type GetAvailability struct {
	repo domain.Repository
	gen  domain.Generator
	now  func() time.Time
}

func NewGetAvailability(
	repo domain.Repository,
	gen domain.Generator,
) *GetAvailability {
	return &GetAvailability{
		repo: repo,
		gen:  gen,
		now:  time.Now,
	}
}

// Execute computes the slots of one date. An empty date means today in the
// restaurant's timezone.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	restaurantID uint,
	date string,
) (*AvailabilityResult, error) {

	rest, err := loadRestaurant(ctx, uc.repo, restaurantID)
	if err != nil {
		return nil, err
	}

	today := uc.now().In(timezone.Location(rest.Timezone))

	day, err := parseDay(date, today)
	if err != nil {
		return nil, err
	}

	out := &AvailabilityResult{
		Restaurant: rest,
		MinDate:    timezone.DateOf(today),
		Availability: domain.Availability{
			Date:      timezone.DateOf(day),
			DayOfWeek: domain.DayOfWeek(day),
			Slots:     []domain.TimeSlot{},
		},
		BlockedDates: []models.BlockedDate{},
	}

	cfg, err := loadConfig(ctx, uc.repo, restaurantID)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		out.Availability.Status = domain.AvailabilityNotConfigured
		metrics.IncAvailabilityQuery(string(out.Availability.Status))
		return out, nil
	}

	out.Config = cfg
	out.MaxDate = timezone.DateOf(today.AddDate(0, 0, cfg.AdvanceBookingDays))

	slots, status, err := loadDay(ctx, uc.repo, uc.gen, cfg, restaurantID, day)
	if err != nil {
		return nil, err
	}
	out.Availability.Slots = slots
	out.Availability.Status = status

	blocked, err := uc.repo.ListBlockedDatesFrom(ctx, restaurantID, out.MinDate)
	if err != nil {
		return nil, httperr.Storage("list_blocked_dates", err)
	}
	if blocked != nil {
		out.BlockedDates = blocked
	}

	metrics.IncAvailabilityQuery(string(status))
	return out, nil
}

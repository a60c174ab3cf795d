package reservation

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/table-reservations/internal/audit"
	domain "github.com/BruksfildServices01/table-reservations/internal/domain/reservation"
	"github.com/BruksfildServices01/table-reservations/internal/events"
	"github.com/BruksfildServices01/table-reservations/internal/httperr"
	"github.com/BruksfildServices01/table-reservations/internal/metrics"
	"github.com/BruksfildServices01/table-reservations/internal/models"
	"github.com/BruksfildServices01/table-reservations/internal/timezone"
	"github.com/BruksfildServices01/table-reservations/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type Source string

const (
	SourcePublic Source = "public"
	SourceStaff  Source = "staff"
)

type CreateReservationInput struct {
	RestaurantID uint
	UserID       *uint
	Source       Source

	FirstName string
	LastName  string
	Email     string
	Phone     string

	Date      string
	Time      string
	PartySize int
	Notes     string
}

func (in *CreateReservationInput) normalize() {
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Phone = strings.TrimSpace(in.Phone)
	in.Date = strings.TrimSpace(in.Date)
	in.Time = strings.TrimSpace(in.Time)
	in.Notes = strings.TrimSpace(in.Notes)
}

// validate checks the guest's contact details. Public bookings require an
// email; staff may omit it.
func (in *CreateReservationInput) validate() error {
	if in.FirstName == "" || in.LastName == "" || in.Phone == "" || in.Date == "" || in.Time == "" {
		return httperr.ErrBusiness("missing_fields")
	}
	if in.Source == SourcePublic && in.Email == "" {
		return httperr.ErrBusiness("missing_fields")
	}
	if in.Email != "" && !validators.IsEmailFormatValid(in.Email) {
		return httperr.ErrBusiness("invalid_email")
	}
	if !validators.IsPhoneValid(in.Phone) {
		return httperr.ErrBusiness("invalid_phone")
	}
	return nil
}

// ======================================================
// USE CASE
// ======================================================

// CreateReservation is the admission-guarded booking path shared by the
// public page and staff.
type CreateReservation struct {
	repo  domain.Repository
	gen   domain.Generator
	hooks Hooks
	now   func() time.Time

	// checkEmailDomain enables the MX lookup for public bookings.
	checkEmailDomain bool
}

func NewCreateReservation(
	repo domain.Repository,
	gen domain.Generator,
	hooks Hooks,
) *CreateReservation {
	return &CreateReservation{
		repo:  repo,
		gen:   gen,
		hooks: hooks,
		now:   time.Now,
	}
}

func (uc *CreateReservation) WithEmailDomainCheck(enabled bool) *CreateReservation {
	uc.checkEmailDomain = enabled
	return uc
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateReservation) Execute(
	ctx context.Context,
	in CreateReservationInput,
) (*models.Reservation, error) {

	// --------------------------------------------------
	// 1. Input
	// --------------------------------------------------
	if in.Source == "" {
		in.Source = SourceStaff
	}
	in.normalize()
	if err := in.validate(); err != nil {
		return nil, err
	}
	if uc.checkEmailDomain && in.Source == SourcePublic && !validators.IsEmailDomainValid(in.Email) {
		return nil, httperr.ErrBusiness("invalid_email")
	}

	requested, err := domain.NormalizeClock(in.Time)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_time")
	}

	// --------------------------------------------------
	// 2. Restaurant and date in its timezone
	// --------------------------------------------------
	rest, err := loadRestaurant(ctx, uc.repo, in.RestaurantID)
	if err != nil {
		return nil, err
	}

	today := timezone.Midnight(uc.now().In(timezone.Location(rest.Timezone)))
	day, err := domain.ParseDate(in.Date, today.Location())
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}
	dateStr := timezone.DateOf(day)

	// --------------------------------------------------
	// 3. Admission and write under the booking lock
	// --------------------------------------------------
	var created *models.Reservation

	err = uc.repo.WithBookingLock(ctx, in.RestaurantID, func(tx domain.Repository) error {
		cfg, err := loadConfig(ctx, tx, in.RestaurantID)
		if err != nil {
			return err
		}
		if cfg == nil {
			return httperr.ErrBusiness("booking_not_configured")
		}

		partySize := in.PartySize
		if partySize == 0 {
			partySize = cfg.DefaultPartySize
		}
		if partySize < 1 || partySize > cfg.MaxPartySize {
			return httperr.ErrBusiness("party_size_out_of_range")
		}

		if in.Source == SourcePublic {
			last := today.AddDate(0, 0, cfg.AdvanceBookingDays)
			if day.Before(today) || day.After(last) {
				return httperr.ErrBusiness("date_out_of_range")
			}
		}

		slots, _, err := loadDay(ctx, tx, uc.gen, cfg, in.RestaurantID, day)
		if err != nil {
			return err
		}
		if err := domain.Admit(dateStr, slots, requested); err != nil {
			return err
		}

		customer, err := tx.UpsertCustomer(ctx, in.RestaurantID, domain.CustomerInput{
			Phone:     in.Phone,
			FirstName: in.FirstName,
			LastName:  in.LastName,
			Email:     in.Email,
		})
		if err != nil {
			return httperr.Storage("upsert_customer", err)
		}

		res := &models.Reservation{
			Reference:    uuid.NewString(),
			RestaurantID: in.RestaurantID,
			CustomerID:   customer.ID,
			Date:         dateStr,
			TimeSlot:     domain.SlotKey(requested),
			PartySize:    partySize,
			Notes:        in.Notes,
			Status:       string(domain.InitialStatus()),
		}
		if err := tx.InsertReservation(ctx, res); err != nil {
			return httperr.Storage("insert_reservation", err)
		}

		res.Customer = *customer
		created = res
		return nil
	})

	if err != nil {
		if su, ok := domain.AsSlotUnavailable(err); ok {
			metrics.IncAdmissionRejected(su.Reason)
			uc.hooks.Audit.Dispatch(audit.Event{
				RestaurantID: in.RestaurantID,
				UserID:       in.UserID,
				Action:       "reservation_rejected",
				Entity:       "reservation",
				Metadata: map[string]any{
					"date":   su.Date,
					"time":   su.Time,
					"reason": su.Reason,
					"source": string(in.Source),
				},
			})
			return nil, su
		}
		return nil, httperr.Storage("create_reservation", err)
	}

	// --------------------------------------------------
	// 4. Side effects
	// --------------------------------------------------
	metrics.IncReservationCreated(string(in.Source))

	uc.hooks.Audit.Dispatch(audit.Event{
		RestaurantID: in.RestaurantID,
		UserID:       in.UserID,
		Action:       "reservation_created",
		Entity:       "reservation",
		EntityID:     &created.ID,
		Metadata: map[string]any{
			"date":       created.Date,
			"time":       requested,
			"party_size": created.PartySize,
			"source":     string(in.Source),
		},
	})

	ev := reservationEvent(events.TypeReservationCreated, created)
	ev.Source = string(in.Source)
	uc.hooks.emit(ev)

	return created, nil
}

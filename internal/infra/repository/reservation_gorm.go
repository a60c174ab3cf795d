package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/table-reservations/internal/domain/reservation"
	"github.com/BruksfildServices01/table-reservations/internal/httperr"
	"github.com/BruksfildServices01/table-reservations/internal/models"
)

type ReservationGormRepository struct {
	db *gorm.DB
}

func NewReservationGormRepository(db *gorm.DB) *ReservationGormRepository {
	return &ReservationGormRepository{db: db}
}

// --------------------------------------------------
// Restaurant
// --------------------------------------------------

func (r *ReservationGormRepository) GetRestaurantByID(
	ctx context.Context,
	id uint,
) (*models.Restaurant, error) {

	var rest models.Restaurant
	if err := r.db.WithContext(ctx).First(&rest, id).Error; err != nil {
		return nil, translate(err)
	}
	return &rest, nil
}

func (r *ReservationGormRepository) GetRestaurantBySlug(
	ctx context.Context,
	slug string,
) (*models.Restaurant, error) {

	var rest models.Restaurant
	if err := r.db.WithContext(ctx).
		Where("slug = ?", strings.ToLower(strings.TrimSpace(slug))).
		First(&rest).Error; err != nil {
		return nil, translate(err)
	}
	return &rest, nil
}

// --------------------------------------------------
// Availability inputs
// --------------------------------------------------

func (r *ReservationGormRepository) GetTimeSlotConfig(
	ctx context.Context,
	restaurantID uint,
) (*models.TimeSlotConfig, error) {

	var cfg models.TimeSlotConfig
	if err := r.db.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID).
		First(&cfg).Error; err != nil {
		return nil, translate(err)
	}
	return &cfg, nil
}

func (r *ReservationGormRepository) GetOperatingHours(
	ctx context.Context,
	restaurantID uint,
	dayOfWeek int,
) (*models.OperatingHours, error) {

	var oh models.OperatingHours
	if err := r.db.WithContext(ctx).
		Where("restaurant_id = ? AND day_of_week = ?", restaurantID, dayOfWeek).
		First(&oh).Error; err != nil {
		return nil, translate(err)
	}
	return &oh, nil
}

func (r *ReservationGormRepository) IsDateBlocked(
	ctx context.Context,
	restaurantID uint,
	date string,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.BlockedDate{}).
		Where("restaurant_id = ? AND date = ?", restaurantID, date).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *ReservationGormRepository) ListBlockedDatesFrom(
	ctx context.Context,
	restaurantID uint,
	from string,
) ([]models.BlockedDate, error) {

	var dates []models.BlockedDate
	if err := r.db.WithContext(ctx).
		Where("restaurant_id = ? AND date >= ?", restaurantID, from).
		Order("date ASC").
		Find(&dates).Error; err != nil {
		return nil, err
	}
	return dates, nil
}

func (r *ReservationGormRepository) BookedCounts(
	ctx context.Context,
	restaurantID uint,
	date string,
) (domain.BookedCounts, error) {

	var rows []struct {
		TimeSlot string
		Count    int
	}

	if err := r.db.WithContext(ctx).
		Model(&models.Reservation{}).
		Select("time_slot, COUNT(*) AS count").
		Where(
			"restaurant_id = ? AND date = ? AND status <> ?",
			restaurantID, date, string(domain.StatusCancelled),
		).
		Group("time_slot").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(domain.BookedCounts, len(rows))
	for _, row := range rows {
		counts[row.TimeSlot] = row.Count
	}
	return counts, nil
}

// --------------------------------------------------
// Customer
// --------------------------------------------------

// UpsertCustomer matches on phone within the restaurant. A found customer
// gets the latest name, and the email when one is given.
func (r *ReservationGormRepository) UpsertCustomer(
	ctx context.Context,
	restaurantID uint,
	in domain.CustomerInput,
) (*models.Customer, error) {

	db := r.db.WithContext(ctx)

	var c models.Customer
	err := db.
		Where("restaurant_id = ? AND phone = ?", restaurantID, in.Phone).
		First(&c).Error

	switch {
	case err == nil:
		return r.refreshCustomer(db, &c, in)

	case errors.Is(err, gorm.ErrRecordNotFound):
		c = models.Customer{
			RestaurantID: restaurantID,
			Phone:        in.Phone,
			FirstName:    in.FirstName,
			LastName:     in.LastName,
			Email:        in.Email,
		}

		inserted, err := insertCustomerIfAbsent(db, &c)
		if err != nil {
			return nil, err
		}
		if inserted {
			return &c, nil
		}

		c = models.Customer{}
		if err := db.
			Where("restaurant_id = ? AND phone = ?", restaurantID, in.Phone).
			First(&c).Error; err != nil {
			return nil, err
		}
		return r.refreshCustomer(db, &c, in)

	default:
		return nil, err
	}
}

// insertCustomerIfAbsent reports false when a concurrent insert already took
// the phone. ON CONFLICT DO NOTHING leaves an enclosing transaction usable,
// where a failed INSERT would abort it on Postgres.
func insertCustomerIfAbsent(db *gorm.DB, c *models.Customer) (bool, error) {
	result := db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "restaurant_id"}, {Name: "phone"}},
			DoNothing: true,
		}).
		Create(c)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *ReservationGormRepository) refreshCustomer(
	db *gorm.DB,
	c *models.Customer,
	in domain.CustomerInput,
) (*models.Customer, error) {

	updates := map[string]any{
		"first_name": in.FirstName,
		"last_name":  in.LastName,
	}
	if in.Email != "" {
		updates["email"] = in.Email
	}

	if err := db.Model(c).Updates(updates).Error; err != nil {
		return nil, err
	}

	c.FirstName = in.FirstName
	c.LastName = in.LastName
	if in.Email != "" {
		c.Email = in.Email
	}
	return c, nil
}

func (r *ReservationGormRepository) ListCustomers(
	ctx context.Context,
	restaurantID uint,
	query string,
) ([]models.Customer, error) {

	q := r.db.WithContext(ctx).Where("restaurant_id = ?", restaurantID)

	if query = strings.ToLower(strings.TrimSpace(query)); query != "" {
		like := "%" + query + "%"
		q = q.Where(
			"LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR phone LIKE ? OR LOWER(email) LIKE ?",
			like, like, like, like,
		)
	}

	var customers []models.Customer
	if err := q.
		Order("last_name ASC, first_name ASC").
		Limit(200).
		Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}

// --------------------------------------------------
// Reservation
// --------------------------------------------------

func (r *ReservationGormRepository) InsertReservation(
	ctx context.Context,
	res *models.Reservation,
) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(res).Error
}

func (r *ReservationGormRepository) GetReservation(
	ctx context.Context,
	restaurantID uint,
	id uint,
) (*models.Reservation, error) {

	var res models.Reservation
	if err := r.db.WithContext(ctx).
		Preload("Customer").
		Where("id = ? AND restaurant_id = ?", id, restaurantID).
		First(&res).Error; err != nil {
		return nil, translate(err)
	}
	return &res, nil
}

func (r *ReservationGormRepository) UpdateReservation(
	ctx context.Context,
	res *models.Reservation,
) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(res).Error
}

func (r *ReservationGormRepository) DeleteReservation(
	ctx context.Context,
	restaurantID uint,
	id uint,
) error {

	result := r.db.WithContext(ctx).
		Where("id = ? AND restaurant_id = ?", id, restaurantID).
		Delete(&models.Reservation{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return httperr.ErrNotFound
	}
	return nil
}

func (r *ReservationGormRepository) ListReservationsByDate(
	ctx context.Context,
	restaurantID uint,
	date string,
	includeCancelled bool,
) ([]models.Reservation, error) {

	q := r.db.WithContext(ctx).
		Preload("Customer").
		Where("restaurant_id = ? AND date = ?", restaurantID, date)

	if !includeCancelled {
		q = q.Where("status <> ?", string(domain.StatusCancelled))
	}

	var out []models.Reservation
	if err := q.Order("time_slot ASC, id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ReservationGormRepository) ListReservationsBetween(
	ctx context.Context,
	restaurantID uint,
	from string,
	to string,
) ([]models.Reservation, error) {

	var out []models.Reservation
	if err := r.db.WithContext(ctx).
		Preload("Customer").
		Where(
			"restaurant_id = ? AND date >= ? AND date < ? AND status <> ?",
			restaurantID, from, to, string(domain.StatusCancelled),
		).
		Order("date ASC, time_slot ASC, id ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// --------------------------------------------------
// Transactions
// --------------------------------------------------

// WithBookingLock locks the restaurant's slot configuration row with
// SELECT ... FOR UPDATE for the lifetime of the transaction. Every booking
// path takes the same lock first, so the admission check and the insert
// behave as one conditional write.
func (r *ReservationGormRepository) WithBookingLock(
	ctx context.Context,
	restaurantID uint,
	fn func(tx domain.Repository) error,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cfg models.TimeSlotConfig
		err := lockSlotConfig(tx, restaurantID).First(&cfg).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		return fn(&ReservationGormRepository{db: tx})
	})
}

func lockSlotConfig(tx *gorm.DB, restaurantID uint) *gorm.DB {
	return tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("restaurant_id = ?", restaurantID)
}

// Compile-time check
var _ domain.Repository = (*ReservationGormRepository)(nil)

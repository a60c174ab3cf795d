package dto

import (
	"time"

	"github.com/BruksfildServices01/table-reservations/internal/models"
)

type ReservationListDTO struct {
	ID            uint   `json:"id"`
	Reference     string `json:"reference"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	PartySize     int    `json:"party_size"`
	Status        string `json:"status"`
	Notes         string `json:"notes,omitempty"`
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
	CustomerEmail string `json:"customer_email,omitempty"`
}

// BookingConfirmationDTO is returned to a guest after a successful booking.
type BookingConfirmationDTO struct {
	ID        uint   `json:"id"`
	Reference string `json:"reference"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	PartySize int    `json:"party_size"`
	Name      string `json:"name"`
}

type ReservationDetailDTO struct {
	ReservationListDTO
	CustomerID  uint       `json:"customer_id"`
	CreatedAt   time.Time  `json:"created_at"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	NoShowAt    *time.Time `json:"no_show_at,omitempty"`
}

func displayTime(slot string) string {
	if len(slot) > 5 {
		return slot[:5]
	}
	return slot
}

func ToReservationList(r models.Reservation) ReservationListDTO {
	return ReservationListDTO{
		ID:            r.ID,
		Reference:     r.Reference,
		Date:          r.Date,
		Time:          displayTime(r.TimeSlot),
		PartySize:     r.PartySize,
		Status:        r.Status,
		Notes:         r.Notes,
		CustomerName:  r.Customer.FullName(),
		CustomerPhone: r.Customer.Phone,
		CustomerEmail: r.Customer.Email,
	}
}

func ToReservationLists(rs []models.Reservation) []ReservationListDTO {
	out := make([]ReservationListDTO, 0, len(rs))
	for _, r := range rs {
		out = append(out, ToReservationList(r))
	}
	return out
}

func ToReservationDetail(r *models.Reservation) ReservationDetailDTO {
	return ReservationDetailDTO{
		ReservationListDTO: ToReservationList(*r),
		CustomerID:         r.CustomerID,
		CreatedAt:          r.CreatedAt,
		CancelledAt:        r.CancelledAt,
		CompletedAt:        r.CompletedAt,
		NoShowAt:           r.NoShowAt,
	}
}

func ToBookingConfirmation(r *models.Reservation) BookingConfirmationDTO {
	return BookingConfirmationDTO{
		ID:        r.ID,
		Reference: r.Reference,
		Date:      r.Date,
		Time:      displayTime(r.TimeSlot),
		PartySize: r.PartySize,
		Name:      r.Customer.FullName(),
	}
}

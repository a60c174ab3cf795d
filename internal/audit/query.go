package audit

import (
	"context"
	"time"

	"github.com/BruksfildServices01/table-reservations/internal/httperr"
	"github.com/BruksfildServices01/table-reservations/internal/models"
)

const (
	DefaultPageSize = 50
	MaxPageSize     = 200
)

// Filter narrows an audit log listing. Zero values are ignored.
type Filter struct {
	Action string
	Entity string
	From   time.Time
	To     time.Time // exclusive

	Page  int
	Limit int
}

func (f *Filter) normalize() {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.Limit <= 0 || f.Limit > MaxPageSize {
		f.Limit = DefaultPageSize
	}
}

type Page struct {
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
	Total int64             `json:"total"`
	Logs  []models.AuditLog `json:"logs"`
}

// List returns the restaurant's audit entries, newest first.
func (l *Logger) List(ctx context.Context, restaurantID uint, f Filter) (*Page, error) {
	f.normalize()

	q := l.db.WithContext(ctx).
		Model(&models.AuditLog{}).
		Where("restaurant_id = ?", restaurantID)

	if f.Action != "" {
		q = q.Where("action = ?", f.Action)
	}
	if f.Entity != "" {
		q = q.Where("entity = ?", f.Entity)
	}
	if !f.From.IsZero() {
		q = q.Where("created_at >= ?", f.From)
	}
	if !f.To.IsZero() {
		q = q.Where("created_at < ?", f.To)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, httperr.Storage("count_audit_logs", err)
	}

	logs := []models.AuditLog{}
	if err := q.
		Order("created_at DESC").
		Order("id DESC").
		Limit(f.Limit).
		Offset((f.Page - 1) * f.Limit).
		Find(&logs).Error; err != nil {
		return nil, httperr.Storage("list_audit_logs", err)
	}

	return &Page{
		Page:  f.Page,
		Limit: f.Limit,
		Total: total,
		Logs:  logs,
	}, nil
}

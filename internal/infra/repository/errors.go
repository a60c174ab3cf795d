package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/table-reservations/internal/httperr"
)

// translate maps gorm's not-found error onto the shared sentinel.
func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return httperr.ErrNotFound
	}
	return err
}

// Package repository holds every database statement the service runs.
// Values are always bound as parameters; no caller input is ever formatted
// into SQL text. Each function takes the request context so the pooled
// connection is released when the request ends.
package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	// ErrNotFound means a read matched no rows or a write affected none.
	ErrNotFound = errors.New("record not found")
	// ErrDiseaseNotFound means the disease referenced by an association does not exist.
	ErrDiseaseNotFound = errors.New("disease not found")
	// ErrQuery wraps every database-side failure.
	ErrQuery = errors.New("query failed")
)

func queryError(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrQuery, err)
}

// readError maps gorm's no-rows error to ErrNotFound.
func readError(op string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return queryError(op, err)
}

// writeResult maps a write outcome: zero affected rows is ErrNotFound.
func writeResult(op string, res *gorm.DB) error {
	if res.Error != nil {
		return queryError(op, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

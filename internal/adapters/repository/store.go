// Package repository defines the assessment history store and errors.
package repository

import (
	"context"

	"github.com/okian/sentia/internal/domain/model"
)

// Store provides append and read access to assessment history.
type Store interface {
	// Append adds a completed assessment to the history.
	Append(ctx context.Context, a model.Assessment) error

	// Recent returns up to n of the most recent assessments, oldest first.
	// Returns ErrInvalidLimit when n < 1.
	Recent(ctx context.Context, n int) ([]model.Assessment, error)

	// Count returns the number of assessments currently held.
	Count(ctx context.Context) int
}

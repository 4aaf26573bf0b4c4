// Package store is the data access layer. Every mutating operation runs in
// its own transaction that commits on success and rolls back entirely on any
// validation or constraint failure, and cascade deletes are issued as
// explicit ordered child-first statements rather than left to the schema.
package store

import (
	"errors"

	"github.com/caregivers-platform/backend/apperr"
	"gorm.io/gorm"
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// notFoundOr converts a record-not-found into a typed NotFoundError carrying
// entity context; anything else goes through the usual classification.
func notFoundOr(err error, entity string, key any) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound(entity, key)
	}
	return apperr.Classify(err)
}

// Package apperr classifies every failure the data and reporting layers can
// surface so that callers never see an opaque error.
package apperr

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ValidationError reports a required field missing, an enumerated value out
// of range, or malformed date/time/decimal input.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func Validationf(format string, args ...any) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// NotFoundError reports a requested id that does not exist.
type NotFoundError struct {
	Entity string
	Key    any
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %v not found", e.Entity, e.Key)
}

func NotFound(entity string, key any) *NotFoundError {
	return &NotFoundError{Entity: entity, Key: key}
}

// ConstraintViolationError reports a uniqueness or check-constraint failure
// raised by the store.
type ConstraintViolationError struct {
	Msg string
	Err error
}

func (e *ConstraintViolationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *ConstraintViolationError) Unwrap() error { return e.Err }

func Constraint(msg string, err error) *ConstraintViolationError {
	return &ConstraintViolationError{Msg: msg, Err: err}
}

// StoreConnectivityError reports that the backing store is unreachable or
// failed outside of any constraint. The request is abandoned, never retried.
type StoreConnectivityError struct {
	Err error
}

func (e *StoreConnectivityError) Error() string {
	return fmt.Sprintf("store unavailable: %v", e.Err)
}

func (e *StoreConnectivityError) Unwrap() error { return e.Err }

// Classify maps a raw store error onto the taxonomy. Taxonomy errors pass
// through unchanged. Postgres integrity errors (SQLSTATE class 23) become
// constraint violations; everything else is treated as connectivity.
func Classify(err error) error {
	if err == nil {
		return nil
	}

	var (
		ve *ValidationError
		nf *NotFoundError
		cv *ConstraintViolationError
		sc *StoreConnectivityError
	)
	if errors.As(err, &ve) || errors.As(err, &nf) || errors.As(err, &cv) || errors.As(err, &sc) {
		return err
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NotFound("record", "")
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return Constraint("uniqueness violation", err)
		case "23514":
			return Constraint("check constraint violation", err)
		case "23503":
			return Constraint("foreign key violation", err)
		}
		if len(pgErr.Code) >= 2 && pgErr.Code[:2] == "23" {
			return Constraint("integrity constraint violation", err)
		}
	}

	return &StoreConnectivityError{Err: err}
}

func IsValidation(err error) bool {
	var e *ValidationError
	return errors.As(err, &e)
}

func IsNotFound(err error) bool {
	var e *NotFoundError
	return errors.As(err, &e)
}

func IsConstraint(err error) bool {
	var e *ConstraintViolationError
	return errors.As(err, &e)
}

func IsConnectivity(err error) bool {
	var e *StoreConnectivityError
	return errors.As(err, &e)
}

package db

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrEntityNotFound = errors.New("entity not found")
	ErrEntityDeleted  = errors.New("entity is deleted")
	ErrInvalidInput   = errors.New("invalid input")
)

// Kind classifies a failed store operation.
type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindDeleted
	KindInvalid
	KindConflict
	NumKinds
)

var kindNames = [NumKinds]string{
	KindInternal: "internal",
	KindNotFound: "not-found",
	KindDeleted:  "deleted",
	KindInvalid:  "invalid",
	KindConflict: "conflict",
}

func (k Kind) String() string {
	if k < 0 || k >= NumKinds {
		return "unknown"
	}
	return kindNames[k]
}

const entPost = "post"

// OpError describes which operation failed, on which entity and why.
type OpError struct {
	Op       string
	Kind     Kind
	Entity   string
	EntityID int64
	Err      error
}

func (e *OpError) Error() string {
	if e.EntityID != 0 {
		return fmt.Sprintf("%s: %s %d: %v", e.Op, e.Entity, e.EntityID, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Entity, e.Err)
}

func (e *OpError) Unwrap() error {
	return e.Err
}

// Is lets callers match an OpError against the package sentinels.
func (e *OpError) Is(target error) bool {
	switch target {
	case ErrEntityNotFound:
		return e.Kind == KindNotFound
	case ErrEntityDeleted:
		return e.Kind == KindDeleted
	case ErrInvalidInput:
		return e.Kind == KindInvalid
	}
	return false
}

type opOption func(*OpError)

func withEntityID(id int64) opOption {
	return func(e *OpError) {
		e.EntityID = id
	}
}

func newOpError(op string, kind Kind, entity string, err error, opts ...opOption) *OpError {
	e := &OpError{
		Op:     op,
		Kind:   kind,
		Entity: entity,
		Err:    err,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func notFoundError(op, entity string, id int64) *OpError {
	return newOpError(
		op,
		KindNotFound,
		entity,
		fmt.Errorf("%s with id %d not found", entity, id),
		withEntityID(id),
	)
}

func deletedError(op, entity string, id int64) *OpError {
	return newOpError(
		op,
		KindDeleted,
		entity,
		fmt.Errorf("%s with id %d is deleted", entity, id),
		withEntityID(id),
	)
}

// Postgres error codes the store maps onto kinds.
const (
	pgCheckViolation  = "23514"
	pgUniqueViolation = "23505"
	pgStringTooLong   = "22001"
)

// sqlError classifies a driver error.
func sqlError(op, entity string, id int64, err error) *OpError {
	kind := KindInternal

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgCheckViolation, pgStringTooLong:
			kind = KindInvalid
		case pgUniqueViolation:
			kind = KindConflict
		}
	}

	return newOpError(op, kind, entity, err, withEntityID(id))
}

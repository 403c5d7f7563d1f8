package op

import (
	"time"

	"github.com/google/uuid"
)

// Outcome is the result of a pipeline operator hook. A hook that does not
// handle its operands returns NotApplicable so the other operand can try;
// it never reports that as an error.
type Outcome[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       error
	applied   bool
}

func Applied[T any](v T) Outcome[T] {
	return Outcome[T]{
		value:     v,
		applied:   true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func NotApplicable[T any]() Outcome[T] {
	return Outcome[T]{
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Failed[T any](err error) Outcome[T] {
	return Outcome[T]{
		err:       err,
		applied:   true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// FromPair turns a (value, error) pair into an applied outcome.
func FromPair[T any](v T, err error) Outcome[T] {
	if err != nil {
		return Failed[T](err)
	}
	return Applied(v)
}

func (o Outcome[T]) Value() T {
	return o.value
}

func (o Outcome[T]) Err() error {
	return o.err
}

func (o Outcome[T]) IsApplied() bool {
	return o.applied && o.err == nil
}

func (o Outcome[T]) IsFailure() bool {
	return o.applied && o.err != nil
}

func (o Outcome[T]) IsNotApplicable() bool {
	return !o.applied
}

func (o Outcome[T]) Unpack() (T, error) {
	return o.value, o.err
}

func (o Outcome[T]) CreatedAt() time.Time {
	return o.createdAt
}

func (o Outcome[T]) Id() uuid.UUID {
	return o.id
}

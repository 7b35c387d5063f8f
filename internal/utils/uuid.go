package utils

import "github.com/google/uuid"

// IDFunc turns a plain function into a mutation id generator.
type IDFunc func() string

func (f IDFunc) Generate() string {
	return f()
}

// NewUUIDGenerator issues time-ordered mutation ids, so sorting log lines by
// mutation_id follows submission order.
func NewUUIDGenerator() IDFunc {
	return NewMutationID
}

// NewMutationID returns a UUIDv7 string. A random v4 is used if the
// clock-based generator fails.
func NewMutationID() string {
	if v7, err := uuid.NewV7(); err == nil {
		return v7.String()
	}
	return uuid.NewString()
}

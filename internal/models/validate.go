package models

import (
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func structValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
	})
	return validate
}

// Validate checks the query against its field constraints.
func (q PlaceQuery) Validate() error {
	return structValidator().Struct(q)
}

// Validate checks the request against its field constraints.
func (r DirectionsRequest) Validate() error {
	return structValidator().Struct(r)
}

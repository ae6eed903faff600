package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Domain errors raised by the resource services. The boundary layer maps
// them to response codes; services never speak HTTP.
var (
	ErrNotFound         = errors.New("not found")
	ErrInvalidReference = errors.New("invalid reference")
	ErrDuplicateKey     = errors.New("already exists")
	ErrValidation       = errors.New("validation failed")
)

// translate reclassifies store errors so that a constraint violation
// surfacing at commit time behaves exactly like a pre-check failure.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicateKey
	}
	return err
}

func notFound(entity string) error {
	return fmt.Errorf("%s %w", entity, ErrNotFound)
}

func duplicate(what string) error {
	return fmt.Errorf("%s %w", what, ErrDuplicateKey)
}

func invalidRef(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidReference, fmt.Sprintf(format, args...))
}

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

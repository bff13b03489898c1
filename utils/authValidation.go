package utils

import (
	"log"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// ValidateCredentials validates a login payload before the directory lookup.
func ValidateCredentials(email, password string) error {
	err := validation.Errors{
		"email":    validation.Validate(email, validation.Required, is.Email),
		"password": validation.Validate(password, validation.Required),
	}.Filter()
	if err != nil {
		log.Printf("Validation error: %v\n", err)
	}
	return err
}

// ValidateRecoveryEmail validates a password-recovery payload.
func ValidateRecoveryEmail(email string) error {
	err := validation.Errors{
		"email": validation.Validate(email, validation.Required, is.Email),
	}.Filter()
	if err != nil {
		log.Printf("Validation error: %v\n", err)
	}
	return err
}

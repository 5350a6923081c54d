package models

import (
	"sync"

	"github.com/go-playground/validator/v10"

	srvErrors "github.com/jogos-org/jogos/pkg/errors"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func gameValidator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		_ = v.RegisterValidation("platform", func(fl validator.FieldLevel) bool {
			return IsValidPlatform(PlatformID(fl.Field().String()))
		})
		_ = v.RegisterValidation("certification", func(fl validator.FieldLevel) bool {
			return IsValidCertification(CertificationID(fl.Field().String()))
		})
		_ = v.RegisterValidation("storage_media", func(fl validator.FieldLevel) bool {
			return IsValidStorageMedia(StorageMediaID(fl.Field().String()))
		})
		_ = v.RegisterValidation("condition", func(fl validator.FieldLevel) bool {
			return IsValidCondition(ConditionID(fl.Field().String()))
		})
		validate = v
	})
	return validate
}

// Validate checks the form-level rules: required text fields, barcode shape,
// currency code, non-negative price, and catalog membership of every code.
// The store never calls it.
func (g Game) Validate() error {
	if err := gameValidator().Struct(g); err != nil {
		return srvErrors.NewInvalidGameError(err)
	}
	return nil
}

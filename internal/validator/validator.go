// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("payer", validatePayer)
		_ = v.RegisterValidation("sync_op", validateSyncOp)
	}
}

func validatePayer(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "me", "her":
		return true
	}
	return false
}

// validateSyncOp accepts the empty string so that op may be omitted and
// defaulted to "upsert" by the reconciler.
func validateSyncOp(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "", "upsert", "delete":
		return true
	}
	return false
}

package handlers

import (
	"github.com/gamepay/wallet-service/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterMoneyValidator installs the "money" binding tag on Gin's validator
// engine. It accepts any parseable amount; sign and business rules are the
// engine's job.
func RegisterMoneyValidator() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("money", func(fl validator.FieldLevel) bool {
			_, err := domain.NewMoneyFromString(fl.Field().String())
			return err == nil
		})
	}
}

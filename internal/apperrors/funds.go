package apperrors

import (
	"fmt"

	"github.com/gamepay/wallet-service/internal/core/domain"
)

// InsufficientFundsError is returned when a movement would take the source
// wallet below zero. It carries the observed balance and the required amount
// so the HTTP adapter can expose both to the caller.
type InsufficientFundsError struct {
	Balance  domain.Money
	Required domain.Money
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds: balance %s, required %s", e.Balance, e.Required)
}

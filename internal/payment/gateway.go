// AngelaMos | 2026
// gateway.go

package payment

import (
	"context"

	"github.com/carterperez-dev/creatorcash/internal/core"
)

const (
	MethodCard   = "card"
	MethodPayPal = "paypal"
	MethodBank   = "bank"

	DefaultCurrency = "USD"
)

type Request struct {
	Amount   float64
	Currency string
	Method   string
}

type Result struct {
	TransactionID string
}

// Gateway is the seam where a real payment processor integration would be
// substituted. Charges are not idempotent: two identical requests are two
// independent attempts.
type Gateway interface {
	Charge(ctx context.Context, req Request) (*Result, error)
}

// DeclinedError carries the user-facing decline message. It matches
// core.ErrPaymentDeclined under errors.Is.
type DeclinedError struct {
	Reason string
}

func (e *DeclinedError) Error() string {
	return e.Reason
}

func (e *DeclinedError) Is(target error) bool {
	return target == core.ErrPaymentDeclined
}

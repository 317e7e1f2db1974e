// AngelaMos | 2026
// errors.go

package core

import (
	"errors"
)

var (
	ErrNotFound        = errors.New("resource not found")
	ErrInvalidInput    = errors.New("invalid input")
	ErrDuplicateKey    = errors.New("duplicate key")
	ErrFeatureDisabled = errors.New("feature disabled")

	// ErrPaymentDeclined covers every gateway failure; the demo gateway
	// has no finer classification.
	ErrPaymentDeclined = errors.New("payment declined")

	// ErrRecordingFailed marks the append-after-successful-charge failure
	// path. The caller already paid, so handlers surface a contact-support
	// message instead of a generic 500.
	ErrRecordingFailed = errors.New("transaction recording failed")
)

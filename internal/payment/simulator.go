// AngelaMos | 2026
// simulator.go

package payment

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/carterperez-dev/creatorcash/internal/core"
)

// declineReason is the only failure message the simulator produces; there
// is no finer error classification.
const declineReason = "Payment processing failed. Please try again."

// Simulator stands in for a real payment gateway. Every charge waits the
// configured latency, then succeeds with the configured probability.
// SuccessRate 1.0 or 0.0 with zero latency makes it a deterministic test
// double.
type Simulator struct {
	successRate float64
	latency     time.Duration

	mu  sync.Mutex
	rng *rand.Rand
}

func NewSimulator(successRate float64, latency time.Duration) *Simulator {
	return &Simulator{
		successRate: successRate,
		latency:     latency,
		//nolint:gosec // G404: simulated payment outcomes, not security
		rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
}

// WithSource replaces the random source, for reproducible tests.
func (s *Simulator) WithSource(src rand.Source) *Simulator {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rng = rand.New(src)
	return s
}

func (s *Simulator) Charge(ctx context.Context, req Request) (*Result, error) {
	if req.Amount <= 0 {
		return nil, fmt.Errorf(
			"charge: amount must be positive: %w",
			core.ErrInvalidInput,
		)
	}

	if req.Currency == "" {
		req.Currency = DefaultCurrency
	}
	if req.Method == "" {
		req.Method = MethodCard
	}

	// Simulated processor round trip. Once this starts there is no
	// cancellation beyond the context itself ("do not close this window").
	if s.latency > 0 {
		timer := time.NewTimer(s.latency)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, fmt.Errorf("charge: %w", ctx.Err())
		case <-timer.C:
		}
	}

	if s.roll() >= s.successRate {
		return nil, &DeclinedError{Reason: declineReason}
	}

	token, err := core.GenerateSecureToken(9)
	if err != nil {
		return nil, fmt.Errorf("charge: generate reference: %w", err)
	}

	return &Result{
		TransactionID: "txn_" + strings.ToLower(token),
	}, nil
}

func (s *Simulator) roll() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()
}

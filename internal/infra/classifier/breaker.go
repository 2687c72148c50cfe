package classifier

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"campus-parking/internal/pkg/errs"

	"github.com/sony/gobreaker"
)

// BreakerModel stops calling a failing backend for openTimeout after
// `failures` consecutive errors.
type BreakerModel struct {
	next Model
	cb   *gobreaker.CircuitBreaker
}

func NewBreakerModel(next Model, failures uint32, openTimeout time.Duration) *BreakerModel {
	if failures == 0 {
		failures = 1
	}
	settings := gobreaker.Settings{
		Name:    "classifier",
		Timeout: openTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			slog.Warn("circuit breaker state changed",
				"breaker", name,
				"from", from.String(),
				"to", to.String())
		},
		// A client hanging up says nothing about backend health.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
	}
	return &BreakerModel{next: next, cb: gobreaker.NewCircuitBreaker(settings)}
}

func (b *BreakerModel) Predict(ctx context.Context, in Input) (float64, error) {
	out, err := b.cb.Execute(func() (interface{}, error) {
		return b.next.Predict(ctx, in)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return 0, errs.Wrap(errs.ErrModelUnavailable, err.Error())
		}
		return 0, err
	}
	return out.(float64), nil
}

func (b *BreakerModel) State() gobreaker.State {
	return b.cb.State()
}

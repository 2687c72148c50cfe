package classifier

import (
	"context"
	"fmt"
	"net/http"

	"campus-parking/internal/pkg/config"
)

const (
	BackendNone        = "none"
	BackendTFServing   = "tfserving"
	BackendRekognition = "rekognition"
)

// Model scores a preprocessed image. The score is the probability that the
// spot is occupied.
type Model interface {
	Predict(ctx context.Context, in Input) (float64, error)
}

type ModelFunc func(ctx context.Context, in Input) (float64, error)

func (f ModelFunc) Predict(ctx context.Context, in Input) (float64, error) {
	return f(ctx, in)
}

// NewModel builds the configured backend behind a circuit breaker. The
// "none" backend yields a nil Model, which the Adapter reports as
// unavailable.
func NewModel(ctx context.Context, cfg config.ClassifierConfig, httpClient *http.Client) (Model, error) {
	var m Model
	switch cfg.Backend {
	case BackendNone, "":
		return nil, nil
	case BackendTFServing:
		m = NewTFServingModel(cfg.TFServingURL, httpClient)
	case BackendRekognition:
		rek, err := NewRekognitionModelFromConfig(ctx, cfg)
		if err != nil {
			return nil, err
		}
		m = rek
	default:
		return nil, fmt.Errorf("unknown classifier backend %q", cfg.Backend)
	}
	return NewBreakerModel(m, cfg.BreakerFailures, cfg.BreakerOpenTimeout), nil
}

package bootstrap

import (
	"context"
	"log/slog"
	"net/http"

	"campus-parking/internal/infra/classifier"
	"campus-parking/internal/pkg/config"
	"campus-parking/internal/usecase/shared"

	"go.uber.org/fx"
)

var ClassifierModule = fx.Module("classifier",
	fx.Provide(
		NewSpotClassifier,
	),
)

// NewSpotClassifier builds the configured backend. With CLASSIFIER_BACKEND=none
// every request reports the model as unavailable without decoding the image.
func NewSpotClassifier(cfg config.Config, logger *slog.Logger) (shared.SpotClassifier, error) {
	httpClient := &http.Client{Timeout: cfg.Classifier.Timeout}

	model, err := classifier.NewModel(context.Background(), cfg.Classifier, httpClient)
	if err != nil {
		return nil, err
	}
	if model == nil {
		logger.Warn("No classifier backend configured, detections will return 503")
	} else {
		logger.Info("Classifier ready", "backend", cfg.Classifier.Backend)
	}
	return classifier.NewAdapter(model), nil
}

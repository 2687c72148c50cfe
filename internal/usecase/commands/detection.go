package commands

import (
	"context"
	"log/slog"
	"time"

	"campus-parking/internal/usecase/shared"
)

type DetectionResult struct {
	Label      string
	Confidence float64
}

type DetectionCommands interface {
	Detect(ctx context.Context, image []byte) (*DetectionResult, error)
}

type detectionUseCaseImpl struct {
	classifier shared.SpotClassifier
	timeout    time.Duration
}

func NewDetectionUseCase(classifier shared.SpotClassifier, timeout time.Duration) DetectionCommands {
	return &detectionUseCaseImpl{
		classifier: classifier,
		timeout:    timeout,
	}
}

// Detect bounds inference by the configured timeout. The request context
// still cancels it early when the client goes away.
func (uc *detectionUseCaseImpl) Detect(ctx context.Context, image []byte) (*DetectionResult, error) {
	if uc.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, uc.timeout)
		defer cancel()
	}

	d, err := uc.classifier.Classify(ctx, image)
	if err != nil {
		slog.Warn("spot classification failed", "error", err.Error())
		return nil, err
	}

	slog.Debug("spot classified",
		"occupied", d.IsOccupied(),
		"confidence", d.Confidence())

	return &DetectionResult{
		Label:      d.Label().String(),
		Confidence: d.Confidence(),
	}, nil
}

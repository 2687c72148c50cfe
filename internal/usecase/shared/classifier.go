package shared

import (
	"context"

	"campus-parking/internal/domain/detection"
)

// SpotClassifier labels a single parking spot photo. Failures carry the
// classification error category.
type SpotClassifier interface {
	Classify(ctx context.Context, image []byte) (detection.Detection, error)
}

package classifier

import (
	"context"

	"campus-parking/internal/domain/detection"
	"campus-parking/internal/pkg/errs"
)

// Adapter turns raw image bytes into a Detection. Every failure it returns
// carries the classification error category.
type Adapter struct {
	model Model
}

func NewAdapter(model Model) *Adapter {
	return &Adapter{model: model}
}

type prediction struct {
	score float64
	err   error
}

func (a *Adapter) Classify(ctx context.Context, data []byte) (detection.Detection, error) {
	if a.model == nil {
		return detection.Detection{}, errs.ErrModelUnavailable
	}

	in, err := Preprocess(data)
	if err != nil {
		return detection.Detection{}, err
	}

	// Inference may ignore ctx; run it aside so cancellation returns at once.
	done := make(chan prediction, 1)
	go func() {
		score, err := a.model.Predict(ctx, in)
		done <- prediction{score: score, err: err}
	}()

	select {
	case <-ctx.Done():
		return detection.Detection{}, errs.Wrap(errs.ErrModelUnavailable, ctx.Err().Error())
	case p := <-done:
		if p.err != nil {
			if errs.Is(p.err, errs.ErrClassification) {
				return detection.Detection{}, p.err
			}
			return detection.Detection{}, errs.Wrap(errs.ErrModelUnavailable, p.err.Error())
		}
		d, err := detection.FromScore(p.score)
		if err != nil {
			return detection.Detection{}, errs.Wrap(errs.ErrModelUnavailable, err.Error())
		}
		return d, nil
	}
}

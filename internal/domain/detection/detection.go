package detection

import "errors"

var ErrScoreOutOfRange = errors.New("score must be between 0 and 1")

type Label string

const (
	LabelOccupied Label = "Occupied"
	LabelEmpty    Label = "Empty"
)

// OccupiedThreshold is exclusive: a score of exactly 0.5 is Empty.
const OccupiedThreshold = 0.5

func (l Label) String() string {
	return string(l)
}

// Detection is the outcome of classifying one spot image.
type Detection struct {
	label      Label
	confidence float64
}

func FromScore(score float64) (Detection, error) {
	if score < 0 || score > 1 {
		return Detection{}, ErrScoreOutOfRange
	}
	label := LabelEmpty
	if score > OccupiedThreshold {
		label = LabelOccupied
	}
	return Detection{label: label, confidence: score}, nil
}

func (d Detection) Label() Label { return d.label }
func (d Detection) Confidence() float64 { return d.confidence }
func (d Detection) IsOccupied() bool { return d.label == LabelOccupied }

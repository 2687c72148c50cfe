package response

import "campus-parking/internal/usecase/commands"

type DetectionResponse struct {
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
}

func FromDetectionResult(r *commands.DetectionResult) *DetectionResponse {
	return &DetectionResponse{Label: r.Label, Confidence: r.Confidence}
}

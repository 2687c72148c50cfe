package classifier

import (
	"bytes"
	"context"
	"fmt"
	"image/jpeg"

	"campus-parking/internal/pkg/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/aws/aws-sdk-go-v2/service/rekognition/types"
)

const jpegQuality = 90

type RekognitionAPI interface {
	DetectCustomLabels(ctx context.Context, params *rekognition.DetectCustomLabelsInput, optFns ...func(*rekognition.Options)) (*rekognition.DetectCustomLabelsOutput, error)
}

// RekognitionModel scores an image with a Rekognition Custom Labels project
// trained on occupied/empty spots.
type RekognitionModel struct {
	client            RekognitionAPI
	projectVersionARN string
	occupiedLabel     string
	minConfidence     float32
}

func NewRekognitionModel(client RekognitionAPI, projectVersionARN, occupiedLabel string, minConfidence float32) *RekognitionModel {
	return &RekognitionModel{
		client:            client,
		projectVersionARN: projectVersionARN,
		occupiedLabel:     occupiedLabel,
		minConfidence:     minConfidence,
	}
}

func NewRekognitionModelFromConfig(ctx context.Context, cfg config.ClassifierConfig) (*RekognitionModel, error) {
	if cfg.ProjectVersionARN == "" {
		return nil, fmt.Errorf("REKOGNITION_PROJECT_VERSION_ARN is required for the rekognition backend")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWSRegion))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return NewRekognitionModel(rekognition.NewFromConfig(awsCfg), cfg.ProjectVersionARN, cfg.OccupiedLabel, cfg.MinConfidence), nil
}

// Predict maps label confidence (0-100) to an occupied score. When only the
// opposite label comes back its confidence is inverted.
func (m *RekognitionModel) Predict(ctx context.Context, in Input) (float64, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, in.Image, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return 0, fmt.Errorf("failed to encode image: %w", err)
	}

	out, err := m.client.DetectCustomLabels(ctx, &rekognition.DetectCustomLabelsInput{
		Image:             &types.Image{Bytes: buf.Bytes()},
		ProjectVersionArn: aws.String(m.projectVersionARN),
		MinConfidence:     aws.Float32(m.minConfidence),
	})
	if err != nil {
		return 0, fmt.Errorf("rekognition DetectCustomLabels failed: %w", err)
	}

	var other float32
	for _, label := range out.CustomLabels {
		if label.Name == nil || label.Confidence == nil {
			continue
		}
		if *label.Name == m.occupiedLabel {
			return float64(*label.Confidence) / 100, nil
		}
		other = max(other, *label.Confidence)
	}
	if other > 0 {
		return 1 - float64(other)/100, nil
	}
	return 0, nil
}

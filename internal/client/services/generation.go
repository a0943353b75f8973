package services

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/videogenius/internal/client/client"
	"github.com/dmitrijs2005/videogenius/internal/client/models"
	"github.com/dmitrijs2005/videogenius/internal/logging"
)

// GenerationService submits video-generation jobs.
type GenerationService interface {
	// Submit checks the credential and the request locally, then sends the
	// request. The result's balance figures come from the server verbatim.
	Submit(ctx context.Context, credential string, req models.GenerationRequest) (*models.GenerationResult, error)
}

type generationService struct {
	client client.Client
	log    logging.Logger
}

func NewGenerationService(c client.Client, log logging.Logger) GenerationService {
	return &generationService{client: c, log: log.With("component", "generation")}
}

func (g *generationService) Submit(ctx context.Context, credential string, req models.GenerationRequest) (*models.GenerationResult, error) {
	if credential == "" {
		return nil, client.Unauthorized("log in to generate videos")
	}
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	mode := req.Mode()
	res, err := g.client.GenerateVideo(ctx, credential, req)
	if err != nil {
		g.log.Warn(ctx, "generation failed", "mode", mode, "error", err)
		return nil, err
	}

	g.log.Info(ctx, "generation submitted", "mode", mode, "job_id", res.JobID,
		"points_consumed", res.PointsConsumed, "remaining_points", res.RemainingPoints)
	return res, nil
}

// validateRequest rejects requests the server would have to default or
// refuse. No field is ever filled in on the caller's behalf.
func validateRequest(req models.GenerationRequest) error {
	switch r := req.(type) {
	case models.TextRequest:
		return validateText(r)
	case *models.TextRequest:
		if r == nil {
			return client.Validationf("missing generation request")
		}
		return validateText(*r)
	case models.ImageRequest:
		return validateImage(r)
	case *models.ImageRequest:
		if r == nil {
			return client.Validationf("missing generation request")
		}
		return validateImage(*r)
	case nil:
		return client.Validationf("missing generation request")
	default:
		return client.Validationf("unsupported generation request %T", req)
	}
}

func validateText(r models.TextRequest) error {
	if strings.TrimSpace(r.Prompt) == "" {
		return client.Validationf("prompt is required")
	}
	if strings.TrimSpace(r.Style) == "" {
		return client.Validationf("style is required")
	}
	return validateDimensions(r.Width, r.Height, r.Length, r.FPS)
}

func validateImage(r models.ImageRequest) error {
	if _, _, err := models.DetectImage(r.Image); err != nil {
		return client.Validationf("%s", err.Error())
	}
	return validateDimensions(r.Width, r.Height, r.Length, r.FPS)
}

func validateDimensions(width, height, length, fps int) error {
	for _, f := range []struct {
		name  string
		value int
	}{
		{"width", width},
		{"height", height},
		{"length", length},
		{"fps", fps},
	} {
		if f.value <= 0 {
			return client.Validationf("%s must be a positive number, got %d", f.name, f.value)
		}
	}
	return nil
}

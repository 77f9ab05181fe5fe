package app

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/fleet-dispatch/internal/domain/content"
	"github.com/jsamuelsen11/fleet-dispatch/internal/platform/telemetry"
	"github.com/jsamuelsen11/fleet-dispatch/internal/ports"
)

// Compile-time check that ContentService implements ports.ContentService.
var _ ports.ContentService = (*ContentService)(nil)

// ContentService implements ports.ContentService over a registry of models.
type ContentService struct {
	dispatch *dispatcher[content.ModelFactory]
	logger   *slog.Logger
}

// NewContentService creates a ContentService over reg. metrics may be nil.
func NewContentService(
	reg Registry[content.ModelFactory],
	metrics *telemetry.Metrics,
	logger *slog.Logger,
) *ContentService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &ContentService{
		dispatch: newDispatcher(reg, "content", "model", "model", metrics),
		logger:   logger,
	}
}

// GenerateText generates text from req.Input.
func (s *ContentService) GenerateText(ctx context.Context, req content.Request) (*ports.Generation, error) {
	return s.generate(ctx, "GenerateText", "prompt", req, content.ModelFactory.TextGenerator)
}

// GenerateImage generates an image link from req.Input.
func (s *ContentService) GenerateImage(ctx context.Context, req content.Request) (*ports.Generation, error) {
	return s.generate(ctx, "GenerateImage", "description", req, content.ModelFactory.ImageGenerator)
}

func (s *ContentService) generate(
	ctx context.Context,
	op, field string,
	req content.Request,
	generator func(content.ModelFactory) content.Generator,
) (*ports.Generation, error) {
	model := req.ModelOrDefault()
	s.logger.InfoContext(ctx, "generating content",
		slog.String("operation", op),
		slog.String("model", model),
	)

	if err := req.Validate(field); err != nil {
		return nil, err
	}

	factory, err := s.dispatch.resolve(ctx, model)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to resolve model",
			slog.String("operation", op),
			slog.String("model", model),
			slog.Any("error", err),
		)
		return nil, err
	}

	return &ports.Generation{
		Model:  model,
		Result: generator(factory).Generate(req.Input),
	}, nil
}

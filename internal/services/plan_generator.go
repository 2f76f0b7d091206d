package services

import (
	"context"
	"fmt"
	"time"

	"vivuplan/internal/models/itinerary_models"
	"vivuplan/pkg/logger"
	"vivuplan/pkg/utils"
)

// AIErrorPrefix starts every error the plan generator returns.
const AIErrorPrefix = "Lỗi từ Gemini API"

type PlanGeneratorInterface interface {
	GeneratePlan(ctx context.Context, req itinerary_models.PlanRequest) (itinerary_models.ItineraryData, error)
}

type AIPlanGenerator struct {
	client  utils.AIClientInterface
	timeout time.Duration
	log     *logger.Logger
}

func NewAIPlanGenerator(client utils.AIClientInterface, timeout time.Duration, log *logger.Logger) PlanGeneratorInterface {
	return &AIPlanGenerator{
		client:  client,
		timeout: timeout,
		log:     log.With("service", "AIPlanGenerator"),
	}
}

func (g *AIPlanGenerator) GeneratePlan(ctx context.Context, req itinerary_models.PlanRequest) (itinerary_models.ItineraryData, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	start := time.Now()
	raw, err := g.client.GenerateItineraryJSON(ctx, BuildItineraryPrompt(req))
	if err != nil {
		g.log.Error("itinerary generation failed", "destinations", req.Destinations, "error", err)
		return itinerary_models.ItineraryData{}, fmt.Errorf("%s: %w", AIErrorPrefix, err)
	}

	doc, err := DecodeItinerary([]byte(raw))
	if err != nil {
		g.log.Warn("AI returned an unusable itinerary", "error", err, "raw", utils.Truncate(raw, 200))
		return itinerary_models.ItineraryData{}, fmt.Errorf("%s: %w", AIErrorPrefix, err)
	}

	g.log.Info("itinerary generated",
		"title", doc.Title,
		"days", len(doc.Days),
		"elapsed", time.Since(start).String(),
	)
	return doc, nil
}

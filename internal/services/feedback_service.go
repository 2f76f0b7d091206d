package services

import (
	"context"
	"strings"
	"time"

	"vivuplan/internal/models/itinerary_models"
	"vivuplan/internal/repositories"
	"vivuplan/pkg/utils"
)

type FeedbackServiceInterface interface {
	AddFeedback(ctx context.Context, itineraryTitle, comments string, rating int) (itinerary_models.FeedbackRecord, error)
	GetFeedback(ctx context.Context) ([]itinerary_models.FeedbackRecord, error)
}

type FeedbackService struct {
	feedbackRepo repositories.FeedbackRepositoryInterface
	now          func() time.Time
}

func NewFeedbackService(feedbackRepo repositories.FeedbackRepositoryInterface) FeedbackServiceInterface {
	return &FeedbackService{feedbackRepo: feedbackRepo, now: time.Now}
}

func NewFeedbackServiceWithClock(feedbackRepo repositories.FeedbackRepositoryInterface, now func() time.Time) FeedbackServiceInterface {
	return &FeedbackService{feedbackRepo: feedbackRepo, now: now}
}

func (s *FeedbackService) AddFeedback(ctx context.Context, itineraryTitle, comments string, rating int) (itinerary_models.FeedbackRecord, error) {
	if rating < 1 || rating > 5 {
		return itinerary_models.FeedbackRecord{}, utils.ErrInvalidRating
	}

	feedback := itinerary_models.FeedbackRecord{
		Rating:         rating,
		Comments:       strings.TrimSpace(comments),
		ItineraryTitle: itineraryTitle,
		Timestamp:      s.now(),
	}

	if err := s.feedbackRepo.CreateFeedback(ctx, feedback); err != nil {
		return itinerary_models.FeedbackRecord{}, err
	}
	return feedback, nil
}

func (s *FeedbackService) GetFeedback(ctx context.Context) ([]itinerary_models.FeedbackRecord, error) {
	return s.feedbackRepo.ListFeedback(ctx)
}

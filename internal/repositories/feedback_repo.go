package repositories

import (
	"context"
	"sync"

	"vivuplan/internal/models/itinerary_models"
	"vivuplan/pkg/logger"
)

const MaxFeedbackItems = 50

type FeedbackRepositoryInterface interface {
	CreateFeedback(ctx context.Context, feedback itinerary_models.FeedbackRecord) error
	ListFeedback(ctx context.Context) ([]itinerary_models.FeedbackRecord, error)
}

type FeedbackRepository struct {
	mu    sync.Mutex
	store KeyValueStore
	log   *logger.Logger
}

func NewFeedbackRepository(store KeyValueStore, log *logger.Logger) FeedbackRepositoryInterface {
	return &FeedbackRepository{store: store, log: log.With("repository", "FeedbackRepository")}
}

// CreateFeedback prepends feedback, keeping the newest MaxFeedbackItems.
func (r *FeedbackRepository) CreateFeedback(ctx context.Context, feedback itinerary_models.FeedbackRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.ListFeedback(ctx)
	if err != nil {
		return err
	}

	records = append([]itinerary_models.FeedbackRecord{feedback}, records...)
	if len(records) > MaxFeedbackItems {
		records = records[:MaxFeedbackItems]
	}
	return saveList(ctx, r.store, FeedbackStorageKey, records)
}

func (r *FeedbackRepository) ListFeedback(ctx context.Context) ([]itinerary_models.FeedbackRecord, error) {
	return loadList[itinerary_models.FeedbackRecord](ctx, r.store, r.log, FeedbackStorageKey)
}

package repositories

import (
	"context"
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"vivuplan/internal/models/itinerary_models"
	"vivuplan/internal/processing"
	"vivuplan/pkg/logger"
	"vivuplan/pkg/utils"
)

const (
	MaxHistoryItems  = 20
	UntitledPlanName = "Kế hoạch không tên"
)

type HistoryRepositoryInterface interface {
	List(ctx context.Context) ([]itinerary_models.StoredPlan, error)
	Get(ctx context.Context, planID string) (itinerary_models.StoredPlan, error)
	Upsert(ctx context.Context, doc itinerary_models.ItineraryData) (itinerary_models.StoredPlan, error)
	Remove(ctx context.Context, planID string) (itinerary_models.StoredPlan, bool, error)
}

type HistoryRepository struct {
	mu    sync.Mutex
	store KeyValueStore
	log   *logger.Logger
	now   func() time.Time
	newID func() string
}

type HistoryOption func(*HistoryRepository)

func WithHistoryClock(now func() time.Time) HistoryOption {
	return func(r *HistoryRepository) { r.now = now }
}

func WithPlanIDGenerator(newID func() string) HistoryOption {
	return func(r *HistoryRepository) { r.newID = newID }
}

func NewHistoryRepository(store KeyValueStore, log *logger.Logger, opts ...HistoryOption) HistoryRepositoryInterface {
	r := &HistoryRepository{
		store: store,
		log:   log.With("repository", "HistoryRepository"),
		now:   time.Now,
	}
	r.newID = func() string { return NewPlanID(r.now()) }
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// NewPlanID returns "<ISO timestamp>_<7 base36 chars>".
func NewPlanID(at time.Time) string {
	u := uuid.New()
	suffix := strconv.FormatUint(binary.BigEndian.Uint64(u[:8]), 36)
	if len(suffix) < 7 {
		suffix = strings.Repeat("0", 7-len(suffix)) + suffix
	}
	return at.UTC().Format("2006-01-02T15:04:05.000Z") + "_" + suffix[len(suffix)-7:]
}

func (r *HistoryRepository) List(ctx context.Context) ([]itinerary_models.StoredPlan, error) {
	return loadList[itinerary_models.StoredPlan](ctx, r.store, r.log, HistoryStorageKey)
}

func (r *HistoryRepository) Get(ctx context.Context, planID string) (itinerary_models.StoredPlan, error) {
	plans, err := r.List(ctx)
	if err != nil {
		return itinerary_models.StoredPlan{}, err
	}
	for _, p := range plans {
		if p.ID == planID {
			return p, nil
		}
	}
	return itinerary_models.StoredPlan{}, fmt.Errorf("%w: %s", utils.ErrPlanNotFound, planID)
}

// Upsert reprocesses doc and stores it under its title. An existing plan whose
// document has the same title keeps its id and position; otherwise the plan is prepended and
// the list is cut to MaxHistoryItems.
func (r *HistoryRepository) Upsert(ctx context.Context, doc itinerary_models.ItineraryData) (itinerary_models.StoredPlan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	plans, err := r.List(ctx)
	if err != nil {
		return itinerary_models.StoredPlan{}, err
	}

	data := processing.Reprocess(doc)
	now := r.now()

	var saved itinerary_models.StoredPlan
	matched := false
	for i := range plans {
		if plans[i].ItineraryData.Title == doc.Title {
			plans[i].ItineraryData = data
			plans[i].CreatedAt = now
			saved = plans[i]
			matched = true
			break
		}
	}

	if !matched {
		name := doc.Title
		if name == "" {
			name = UntitledPlanName
		}
		saved = itinerary_models.StoredPlan{
			ID:            r.newID(),
			Name:          name,
			CreatedAt:     now,
			ItineraryData: data,
		}
		plans = append([]itinerary_models.StoredPlan{saved}, plans...)
		if len(plans) > MaxHistoryItems {
			plans = plans[:MaxHistoryItems]
		}
	}

	if err := saveList(ctx, r.store, HistoryStorageKey, plans); err != nil {
		return itinerary_models.StoredPlan{}, err
	}
	return saved, nil
}

// Remove drops the plan with planID and persists the remaining list. found is
// false when no plan had that id.
func (r *HistoryRepository) Remove(ctx context.Context, planID string) (itinerary_models.StoredPlan, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	plans, err := r.List(ctx)
	if err != nil {
		return itinerary_models.StoredPlan{}, false, err
	}

	var removed itinerary_models.StoredPlan
	found := false
	kept := make([]itinerary_models.StoredPlan, 0, len(plans))
	for _, p := range plans {
		if p.ID == planID {
			removed = p
			found = true
			continue
		}
		kept = append(kept, p)
	}

	if err := saveList(ctx, r.store, HistoryStorageKey, kept); err != nil {
		return itinerary_models.StoredPlan{}, false, err
	}
	return removed, found, nil
}

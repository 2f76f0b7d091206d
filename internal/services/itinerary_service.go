package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"vivuplan/internal/models/itinerary_models"
	"vivuplan/internal/models/response_models"
	"vivuplan/internal/repositories"
	"vivuplan/pkg/logger"
	"vivuplan/pkg/utils"
)

// GenerationErrorPrefix starts the session error recorded for a failed
// generation.
const GenerationErrorPrefix = "Đã xảy ra lỗi khi tạo lịch trình: "

type ItineraryServiceInterface interface {
	GeneratePlan(ctx context.Context, req itinerary_models.PlanRequest) (itinerary_models.ItineraryData, error)
	State() response_models.SessionStateResponse
	ToggleEditMode() (bool, error)

	AddActivity(ctx context.Context, dayIndex, sectionIndex int, input itinerary_models.ActivityItemInput) (itinerary_models.ItineraryData, error)
	EditActivity(ctx context.Context, dayIndex, sectionIndex int, activityID string, input itinerary_models.ActivityItemInput) (itinerary_models.ItineraryData, error)
	DeleteActivity(ctx context.Context, dayIndex, sectionIndex int, activityID string) (itinerary_models.ItineraryData, error)
	DaySummary(dayIndex int) (response_models.DayCostSummaryResponse, error)

	ListHistory(ctx context.Context) ([]response_models.HistoryItemResponse, error)
	LoadFromHistory(ctx context.Context, planID string) (itinerary_models.ItineraryData, error)
	DeleteFromHistory(ctx context.Context, planID string) error

	SubmitFeedback(ctx context.Context, rating int, comments string) (itinerary_models.FeedbackRecord, error)
}

// ItineraryService owns the planner session: the current document, the last
// generation error and the edit-mode and feedback flags.
type ItineraryService struct {
	store       *ItineraryStore
	generator   PlanGeneratorInterface
	historyRepo repositories.HistoryRepositoryInterface
	feedback    FeedbackServiceInterface
	log         *logger.Logger

	// historyMu pairs every change of the current document with its history
	// write, so history sees the changes in store order. Taken before mu.
	historyMu sync.Mutex

	mu                sync.Mutex
	seq               uint64
	loading           bool
	lastError         string
	editMode          bool
	feedbackSubmitted bool
}

func NewItineraryService(
	store *ItineraryStore,
	generator PlanGeneratorInterface,
	historyRepo repositories.HistoryRepositoryInterface,
	feedback FeedbackServiceInterface,
	log *logger.Logger,
) ItineraryServiceInterface {
	return &ItineraryService{
		store:       store,
		generator:   generator,
		historyRepo: historyRepo,
		feedback:    feedback,
		log:         log.With("service", "ItineraryService"),
	}
}

// GeneratePlan replaces the session with a freshly generated itinerary. Only
// the most recent call may apply its result; an older call that finishes later
// gets ErrSupersededRequest and changes nothing.
func (s *ItineraryService) GeneratePlan(ctx context.Context, req itinerary_models.PlanRequest) (itinerary_models.ItineraryData, error) {
	if strings.TrimSpace(req.Destinations) == "" || req.Duration <= 0 {
		return itinerary_models.ItineraryData{}, fmt.Errorf("%w: destinations and a positive duration are required", utils.ErrInvalidInput)
	}

	s.mu.Lock()
	s.seq++
	seq := s.seq
	s.store.Clear()
	s.lastError = ""
	s.loading = true
	s.editMode = false
	s.feedbackSubmitted = false
	s.mu.Unlock()

	doc, genErr := s.generator.GeneratePlan(ctx, req)

	s.historyMu.Lock()
	defer s.historyMu.Unlock()

	s.mu.Lock()
	if seq != s.seq {
		s.mu.Unlock()
		s.log.Info("discarding superseded generation result", "seq", seq)
		return itinerary_models.ItineraryData{}, utils.ErrSupersededRequest
	}
	s.loading = false
	if genErr != nil {
		s.lastError = GenerationErrorPrefix + genErr.Error()
		s.mu.Unlock()
		return itinerary_models.ItineraryData{}, genErr
	}
	loaded := s.store.Load(doc)
	s.mu.Unlock()

	s.saveToHistory(ctx, loaded)
	return loaded, nil
}

func (s *ItineraryService) State() response_models.SessionStateResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := response_models.SessionStateResponse{
		Error:             s.lastError,
		IsLoading:         s.loading,
		IsEditMode:        s.editMode,
		FeedbackSubmitted: s.feedbackSubmitted,
	}
	if doc, ok := s.store.Current(); ok {
		state.Itinerary = &doc
	}
	return state
}

func (s *ItineraryService) ToggleEditMode() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.store.Current(); !ok {
		return false, utils.ErrNoCurrentItinerary
	}
	s.editMode = !s.editMode
	return s.editMode, nil
}

func (s *ItineraryService) AddActivity(ctx context.Context, dayIndex, sectionIndex int, input itinerary_models.ActivityItemInput) (itinerary_models.ItineraryData, error) {
	s.historyMu.Lock()
	defer s.historyMu.Unlock()

	doc, err := s.store.AddActivity(dayIndex, sectionIndex, input)
	if err != nil {
		return itinerary_models.ItineraryData{}, err
	}
	s.saveToHistory(ctx, doc)
	return doc, nil
}

func (s *ItineraryService) EditActivity(ctx context.Context, dayIndex, sectionIndex int, activityID string, input itinerary_models.ActivityItemInput) (itinerary_models.ItineraryData, error) {
	s.historyMu.Lock()
	defer s.historyMu.Unlock()

	doc, err := s.store.EditActivity(dayIndex, sectionIndex, activityID, input)
	if err != nil {
		return itinerary_models.ItineraryData{}, err
	}
	s.saveToHistory(ctx, doc)
	return doc, nil
}

func (s *ItineraryService) DeleteActivity(ctx context.Context, dayIndex, sectionIndex int, activityID string) (itinerary_models.ItineraryData, error) {
	s.historyMu.Lock()
	defer s.historyMu.Unlock()

	doc, err := s.store.DeleteActivity(dayIndex, sectionIndex, activityID)
	if err != nil {
		return itinerary_models.ItineraryData{}, err
	}
	s.saveToHistory(ctx, doc)
	return doc, nil
}

func (s *ItineraryService) DaySummary(dayIndex int) (response_models.DayCostSummaryResponse, error) {
	doc, ok := s.store.Current()
	if !ok {
		return response_models.DayCostSummaryResponse{}, utils.ErrNoCurrentItinerary
	}
	if dayIndex < 0 || dayIndex >= len(doc.Days) {
		return response_models.DayCostSummaryResponse{}, fmt.Errorf("%w: day %d of %d", utils.ErrIndexOutOfRange, dayIndex, len(doc.Days))
	}

	day := doc.Days[dayIndex]
	count := 0
	for _, section := range day.Sections {
		count += len(section.Items)
	}

	summary := response_models.DayCostSummaryResponse{
		DayIndex:               dayIndex,
		DayNumber:              day.DayNumber,
		Title:                  day.Title,
		ActivityCount:          count,
		EstimatedDailyCost:     day.EstimatedDailyCost,
		FormattedDailyCost:     utils.FormatCurrency(day.EstimatedDailyCost, day.DailyCostCurrency),
		TripTotalCost:          doc.EstimatedTotalCost,
		FormattedTripTotalCost: utils.FormatCurrency(doc.EstimatedTotalCost, doc.TotalCostCurrency),
	}
	if acc := day.AccommodationSuggestion; acc != nil && acc.MinPrice != nil {
		summary.AccommodationPriceText = utils.FormatCurrency(acc.MinPrice, acc.PriceCurrency)
		if acc.MaxPrice != nil {
			summary.AccommodationPriceText += " - " + utils.FormatCurrency(acc.MaxPrice, acc.PriceCurrency)
		}
	}
	return summary, nil
}

func (s *ItineraryService) ListHistory(ctx context.Context) ([]response_models.HistoryItemResponse, error) {
	plans, err := s.historyRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]response_models.HistoryItemResponse, 0, len(plans))
	for _, p := range plans {
		items = append(items, response_models.HistoryItemResponse{
			ID:            p.ID,
			Name:          p.Name,
			CreatedAt:     utils.FormatRFC3339VN(p.CreatedAt),
			CreatedAtText: utils.FormatDisplayVN(p.CreatedAt),
			Days:          len(p.ItineraryData.Days),
			ActivityCount: p.ItineraryData.ActivityCount(),
			EstimatedCost: p.ItineraryData.EstimatedTotalCost,
			FormattedCost: utils.FormatCurrency(p.ItineraryData.EstimatedTotalCost, p.ItineraryData.TotalCostCurrency),
		})
	}
	return items, nil
}

// LoadFromHistory makes a stored plan current and starts a clean session
// around it.
func (s *ItineraryService) LoadFromHistory(ctx context.Context, planID string) (itinerary_models.ItineraryData, error) {
	plan, err := s.historyRepo.Get(ctx, planID)
	if err != nil {
		return itinerary_models.ItineraryData{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// A pending generation must not overwrite the plan picked here.
	s.seq++
	s.loading = false
	s.lastError = ""
	s.editMode = false
	s.feedbackSubmitted = false
	return s.store.Load(plan.ItineraryData), nil
}

// DeleteFromHistory removes a stored plan. When it is the plan on screen the
// session is cleared as well.
func (s *ItineraryService) DeleteFromHistory(ctx context.Context, planID string) error {
	s.historyMu.Lock()
	defer s.historyMu.Unlock()

	removed, found, err := s.historyRepo.Remove(ctx, planID)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("%w: %s", utils.ErrPlanNotFound, planID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.store.Current()
	if ok && sameDocument(current, removed.ItineraryData) {
		s.store.Clear()
		s.editMode = false
	}
	return nil
}

func (s *ItineraryService) SubmitFeedback(ctx context.Context, rating int, comments string) (itinerary_models.FeedbackRecord, error) {
	doc, ok := s.store.Current()
	if !ok {
		return itinerary_models.FeedbackRecord{}, utils.ErrNoCurrentItinerary
	}

	record, err := s.feedback.AddFeedback(ctx, doc.Title, comments, rating)
	if err != nil {
		return itinerary_models.FeedbackRecord{}, err
	}

	s.mu.Lock()
	s.feedbackSubmitted = true
	s.mu.Unlock()
	return record, nil
}

func (s *ItineraryService) saveToHistory(ctx context.Context, doc itinerary_models.ItineraryData) {
	if _, err := s.historyRepo.Upsert(ctx, doc); err != nil {
		s.log.Error("failed to save itinerary to history", "title", doc.Title, "error", err)
	}
}

// sameDocument compares the canonical JSON encodings of a and b.
func sameDocument(a, b itinerary_models.ItineraryData) bool {
	ja, errA := json.Marshal(a)
	jb, errB := json.Marshal(b)
	return errA == nil && errB == nil && string(ja) == string(jb)
}

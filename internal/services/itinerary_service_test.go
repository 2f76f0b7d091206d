package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vivuplan/internal/models/itinerary_models"
	"vivuplan/internal/repositories"
	"vivuplan/internal/testutil"
	"vivuplan/pkg/logger"
	"vivuplan/pkg/utils"
)

type generatorResult struct {
	doc itinerary_models.ItineraryData
	err error
}

// scriptedGenerator answers each GeneratePlan call with whatever is sent on
// the channel registered for the request's destination.
type scriptedGenerator struct {
	mu      sync.Mutex
	replies map[string]chan generatorResult
	started chan string
}

func newScriptedGenerator() *scriptedGenerator {
	return &scriptedGenerator{replies: map[string]chan generatorResult{}, started: make(chan string, 8)}
}

func (g *scriptedGenerator) reply(destination string) chan generatorResult {
	g.mu.Lock()
	defer g.mu.Unlock()
	ch, ok := g.replies[destination]
	if !ok {
		ch = make(chan generatorResult, 1)
		g.replies[destination] = ch
	}
	return ch
}

func (g *scriptedGenerator) GeneratePlan(ctx context.Context, req itinerary_models.PlanRequest) (itinerary_models.ItineraryData, error) {
	ch := g.reply(req.Destinations)
	g.started <- req.Destinations
	select {
	case r := <-ch:
		return r.doc, r.err
	case <-ctx.Done():
		return itinerary_models.ItineraryData{}, ctx.Err()
	}
}

type serviceFixture struct {
	svc       ItineraryServiceInterface
	generator *scriptedGenerator
	history   repositories.HistoryRepositoryInterface
}

func newServiceFixture() serviceFixture {
	return newServiceFixtureWithHistory(func(h repositories.HistoryRepositoryInterface) repositories.HistoryRepositoryInterface {
		return h
	})
}

// newServiceFixtureWithHistory lets a test wrap the history repository the
// service writes to. f.history stays the unwrapped repository.
func newServiceFixtureWithHistory(wrap func(repositories.HistoryRepositoryInterface) repositories.HistoryRepositoryInterface) serviceFixture {
	log := logger.NewNop()
	kv := repositories.NewMemoryKeyValueStore()
	history := repositories.NewHistoryRepository(kv, log,
		repositories.WithHistoryClock(testutil.SteppingClock(time.Date(2026, 10, 14, 8, 0, 0, 0, time.UTC), time.Minute)),
		repositories.WithPlanIDGenerator(testutil.SequentialIDs("plan")),
	)
	feedback := NewFeedbackService(repositories.NewFeedbackRepository(kv, log))
	gen := newScriptedGenerator()
	svc := NewItineraryService(NewItineraryStoreWithIDs(testutil.SequentialIDs("act")), gen, wrap(history), feedback, log)
	return serviceFixture{svc: svc, generator: gen, history: history}
}

// gatedHistory holds the first Upsert after arm() until release is closed.
type gatedHistory struct {
	repositories.HistoryRepositoryInterface

	mu      sync.Mutex
	armed   bool
	entered chan struct{}
	release chan struct{}
}

func (g *gatedHistory) arm() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.armed = true
	g.entered = make(chan struct{})
	g.release = make(chan struct{})
}

func (g *gatedHistory) Upsert(ctx context.Context, doc itinerary_models.ItineraryData) (itinerary_models.StoredPlan, error) {
	g.mu.Lock()
	hold := g.armed
	g.armed = false
	entered, release := g.entered, g.release
	g.mu.Unlock()

	if hold {
		close(entered)
		<-release
	}
	return g.HistoryRepositoryInterface.Upsert(ctx, doc)
}

func (f serviceFixture) generate(t *testing.T, destination string, doc itinerary_models.ItineraryData) itinerary_models.ItineraryData {
	t.Helper()
	f.generator.reply(destination) <- generatorResult{doc: doc}
	out, err := f.svc.GeneratePlan(context.Background(), itinerary_models.PlanRequest{Destinations: destination, Duration: len(doc.Days)})
	<-f.generator.started
	require.NoError(t, err)
	return out
}

func TestItineraryService_GeneratePlan(t *testing.T) {
	f := newServiceFixture()

	doc := f.generate(t, "Hà Nội", testutil.NewHanoiItinerary())
	assert.Equal(t, 410000.0, *doc.EstimatedTotalCost)

	state := f.svc.State()
	require.NotNil(t, state.Itinerary)
	assert.Equal(t, doc, *state.Itinerary)
	assert.False(t, state.IsLoading)
	assert.Empty(t, state.Error)

	plans, err := f.history.List(context.Background())
	require.NoError(t, err)
	require.Len(t, plans, 1)
	assert.Equal(t, "Hà Nội 2 ngày", plans[0].Name)
}

func TestItineraryService_GeneratePlanValidation(t *testing.T) {
	f := newServiceFixture()

	_, err := f.svc.GeneratePlan(context.Background(), itinerary_models.PlanRequest{Destinations: " ", Duration: 2})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
	_, err = f.svc.GeneratePlan(context.Background(), itinerary_models.PlanRequest{Destinations: "Huế", Duration: 0})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestItineraryService_GeneratePlanFailure(t *testing.T) {
	f := newServiceFixture()
	f.generate(t, "Hà Nội", testutil.NewHanoiItinerary())
	_, err := f.svc.ToggleEditMode()
	require.NoError(t, err)

	f.generator.reply("Huế") <- generatorResult{err: fmt.Errorf("%s: %w", AIErrorPrefix, utils.ErrUnexpectedBehaviorOfAI)}
	_, err = f.svc.GeneratePlan(context.Background(), itinerary_models.PlanRequest{Destinations: "Huế", Duration: 1})
	<-f.generator.started
	assert.ErrorIs(t, err, utils.ErrUnexpectedBehaviorOfAI)

	state := f.svc.State()
	assert.Nil(t, state.Itinerary)
	assert.False(t, state.IsEditMode)
	assert.True(t, strings.HasPrefix(state.Error, GenerationErrorPrefix+AIErrorPrefix))
}

func TestItineraryService_LastRequestWins(t *testing.T) {
	f := newServiceFixture()
	ctx := context.Background()

	firstDone := make(chan error, 1)
	go func() {
		_, err := f.svc.GeneratePlan(ctx, itinerary_models.PlanRequest{Destinations: "Chậm", Duration: 1})
		firstDone <- err
	}()
	require.Equal(t, "Chậm", <-f.generator.started)
	assert.True(t, f.svc.State().IsLoading)

	f.generator.reply("Nhanh") <- generatorResult{doc: testutil.NewTestItinerary("Nhanh", testutil.NewTestDay(1))}
	_, err := f.svc.GeneratePlan(ctx, itinerary_models.PlanRequest{Destinations: "Nhanh", Duration: 1})
	<-f.generator.started
	require.NoError(t, err)

	f.generator.reply("Chậm") <- generatorResult{doc: testutil.NewTestItinerary("Chậm", testutil.NewTestDay(1))}
	assert.ErrorIs(t, <-firstDone, utils.ErrSupersededRequest)

	state := f.svc.State()
	require.NotNil(t, state.Itinerary)
	assert.Equal(t, "Nhanh", state.Itinerary.Title)
	assert.False(t, state.IsLoading)

	plans, err := f.history.List(ctx)
	require.NoError(t, err)
	require.Len(t, plans, 1)
	assert.Equal(t, "Nhanh", plans[0].Name)
}

func TestItineraryService_SupersededFailureIsIgnored(t *testing.T) {
	f := newServiceFixture()
	ctx := context.Background()

	firstDone := make(chan error, 1)
	go func() {
		_, err := f.svc.GeneratePlan(ctx, itinerary_models.PlanRequest{Destinations: "Chậm", Duration: 1})
		firstDone <- err
	}()
	<-f.generator.started

	f.generate(t, "Nhanh", testutil.NewTestItinerary("Nhanh", testutil.NewTestDay(1)))
	f.generator.reply("Chậm") <- generatorResult{err: errors.New("timeout")}
	assert.ErrorIs(t, <-firstDone, utils.ErrSupersededRequest)
	assert.Empty(t, f.svc.State().Error)
}

func TestItineraryService_MutationsUpdateHistory(t *testing.T) {
	f := newServiceFixture()
	ctx := context.Background()
	f.generate(t, "Hà Nội", testutil.NewHanoiItinerary())

	input := itinerary_models.ActivityItemInput{Type: itinerary_models.ActivityTypeFood, Description: "Chè", EstimatedCost: testutil.Float(20000), Currency: "VND"}
	doc, err := f.svc.AddActivity(ctx, 1, 1, input)
	require.NoError(t, err)
	assert.Equal(t, 430000.0, *doc.EstimatedTotalCost)

	plans, err := f.history.List(ctx)
	require.NoError(t, err)
	require.Len(t, plans, 1)
	assert.Equal(t, 430000.0, *plans[0].ItineraryData.EstimatedTotalCost)
	assert.Equal(t, "plan-1", plans[0].ID)

	doc, err = f.svc.DeleteActivity(ctx, 0, 0, "act-1")
	require.NoError(t, err)
	assert.Equal(t, 380000.0, *doc.EstimatedTotalCost)

	doc, err = f.svc.EditActivity(ctx, 0, 1, "act-3", itinerary_models.ActivityItemInput{Type: itinerary_models.ActivityTypeFood, Description: "Bún chả Hương Liên"})
	require.NoError(t, err)
	assert.Equal(t, 350000.0, *doc.EstimatedTotalCost)

	_, err = f.svc.AddActivity(ctx, 5, 0, input)
	assert.ErrorIs(t, err, utils.ErrIndexOutOfRange)
}

func TestItineraryService_ToggleEditMode(t *testing.T) {
	f := newServiceFixture()

	_, err := f.svc.ToggleEditMode()
	assert.ErrorIs(t, err, utils.ErrNoCurrentItinerary)

	f.generate(t, "Hà Nội", testutil.NewHanoiItinerary())
	on, err := f.svc.ToggleEditMode()
	require.NoError(t, err)
	assert.True(t, on)
	assert.True(t, f.svc.State().IsEditMode)

	off, err := f.svc.ToggleEditMode()
	require.NoError(t, err)
	assert.False(t, off)
}

func TestItineraryService_LoadFromHistory(t *testing.T) {
	f := newServiceFixture()
	ctx := context.Background()
	hanoi := f.generate(t, "Hà Nội", testutil.NewHanoiItinerary())
	f.generate(t, "Huế", testutil.NewTestItinerary("Huế", testutil.NewTestDay(1)))
	_, err := f.svc.ToggleEditMode()
	require.NoError(t, err)

	items, err := f.svc.ListHistory(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Huế", items[0].Name)
	assert.Equal(t, "plan-1", items[1].ID)
	assert.Equal(t, 5, items[1].ActivityCount)
	assert.Equal(t, "410.000 ₫", items[1].FormattedCost)
	assert.Equal(t, "14/10/2026 15:00", items[1].CreatedAtText)

	loaded, err := f.svc.LoadFromHistory(ctx, "plan-1")
	require.NoError(t, err)
	assert.Equal(t, hanoi, loaded)

	state := f.svc.State()
	assert.False(t, state.IsEditMode)
	assert.False(t, state.FeedbackSubmitted)
	assert.Equal(t, "Hà Nội 2 ngày", state.Itinerary.Title)

	_, err = f.svc.LoadFromHistory(ctx, "missing")
	assert.ErrorIs(t, err, utils.ErrPlanNotFound)
}

func TestItineraryService_DeleteFromHistory(t *testing.T) {
	f := newServiceFixture()
	ctx := context.Background()
	f.generate(t, "Hà Nội", testutil.NewHanoiItinerary())
	f.generate(t, "Huế", testutil.NewTestItinerary("Huế", testutil.NewTestDay(1)))

	// Deleting a plan that is not on screen leaves the session alone.
	require.NoError(t, f.svc.DeleteFromHistory(ctx, "plan-1"))
	require.NotNil(t, f.svc.State().Itinerary)

	_, err := f.svc.ToggleEditMode()
	require.NoError(t, err)
	require.NoError(t, f.svc.DeleteFromHistory(ctx, "plan-2"))

	state := f.svc.State()
	assert.Nil(t, state.Itinerary)
	assert.False(t, state.IsEditMode)

	assert.ErrorIs(t, f.svc.DeleteFromHistory(ctx, "plan-2"), utils.ErrPlanNotFound)
}

func TestItineraryService_SubmitFeedback(t *testing.T) {
	f := newServiceFixture()
	ctx := context.Background()

	_, err := f.svc.SubmitFeedback(ctx, 5, "")
	assert.ErrorIs(t, err, utils.ErrNoCurrentItinerary)

	f.generate(t, "Hà Nội", testutil.NewHanoiItinerary())
	_, err = f.svc.SubmitFeedback(ctx, 9, "")
	assert.ErrorIs(t, err, utils.ErrInvalidRating)
	assert.False(t, f.svc.State().FeedbackSubmitted)

	record, err := f.svc.SubmitFeedback(ctx, 4, "Tuyệt vời")
	require.NoError(t, err)
	assert.Equal(t, "Hà Nội 2 ngày", record.ItineraryTitle)
	assert.True(t, f.svc.State().FeedbackSubmitted)

	// A new generation resets the flag.
	f.generate(t, "Huế", testutil.NewTestItinerary("Huế", testutil.NewTestDay(1)))
	assert.False(t, f.svc.State().FeedbackSubmitted)
}

func TestItineraryService_DaySummary(t *testing.T) {
	f := newServiceFixture()

	_, err := f.svc.DaySummary(0)
	assert.ErrorIs(t, err, utils.ErrNoCurrentItinerary)

	f.generate(t, "Hà Nội", testutil.NewHanoiItinerary())
	summary, err := f.svc.DaySummary(1)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.DayNumber)
	assert.Equal(t, 2, summary.ActivityCount)
	assert.Equal(t, "330.000 ₫", summary.FormattedDailyCost)
	assert.Equal(t, "200.000 ₫ - 400.000 ₫", summary.AccommodationPriceText)
	assert.Equal(t, "410.000 ₫", summary.FormattedTripTotalCost)

	_, err = f.svc.DaySummary(2)
	assert.ErrorIs(t, err, utils.ErrIndexOutOfRange)
}

func TestItineraryService_ConcurrentEditsKeepHistoryInStep(t *testing.T) {
	gate := &gatedHistory{}
	f := newServiceFixtureWithHistory(func(h repositories.HistoryRepositoryInterface) repositories.HistoryRepositoryInterface {
		gate.HistoryRepositoryInterface = h
		return gate
	})
	ctx := context.Background()
	f.generate(t, "Hà Nội", testutil.NewHanoiItinerary())

	gate.arm()
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, err := f.svc.AddActivity(ctx, 0, 0, coffeeInput(1000))
		assert.NoError(t, err)
	}()
	<-gate.entered

	go func() {
		defer wg.Done()
		_, err := f.svc.AddActivity(ctx, 0, 0, coffeeInput(2000))
		assert.NoError(t, err)
	}()
	// Give the second edit a chance to run ahead of the held history write.
	time.Sleep(20 * time.Millisecond)
	close(gate.release)
	wg.Wait()

	state := f.svc.State()
	require.NotNil(t, state.Itinerary)
	assert.Equal(t, 413000.0, *state.Itinerary.EstimatedTotalCost)

	plans, err := f.history.List(ctx)
	require.NoError(t, err)
	require.Len(t, plans, 1)
	assert.Equal(t, state.Itinerary.ActivityCount(), plans[0].ItineraryData.ActivityCount())
	assert.Equal(t, *state.Itinerary.EstimatedTotalCost, *plans[0].ItineraryData.EstimatedTotalCost)
	assert.True(t, sameDocument(*state.Itinerary, plans[0].ItineraryData))
}

package services

import (
	"fmt"
	"sync"

	"vivuplan/internal/models/itinerary_models"
	"vivuplan/internal/processing"
	"vivuplan/pkg/utils"
)

// AddActivity appends input, under a fresh id, to the addressed section.
// The input document is not modified.
func AddActivity(doc itinerary_models.ItineraryData, dayIndex, sectionIndex int, input itinerary_models.ActivityItemInput, newID processing.IDGenerator) (itinerary_models.ItineraryData, error) {
	out, section, err := targetSection(doc, dayIndex, sectionIndex)
	if err != nil {
		return itinerary_models.ItineraryData{}, err
	}
	section.Items = append(section.Items, input.ToActivityItem(newID()))
	return processing.Reprocess(out), nil
}

// EditActivity replaces every field of the activity with activityID except
// its id. An unknown id leaves the items as they are.
func EditActivity(doc itinerary_models.ItineraryData, dayIndex, sectionIndex int, activityID string, input itinerary_models.ActivityItemInput) (itinerary_models.ItineraryData, error) {
	out, section, err := targetSection(doc, dayIndex, sectionIndex)
	if err != nil {
		return itinerary_models.ItineraryData{}, err
	}
	for i := range section.Items {
		if section.Items[i].ID == activityID {
			section.Items[i] = input.ToActivityItem(activityID)
		}
	}
	return processing.Reprocess(out), nil
}

func DeleteActivity(doc itinerary_models.ItineraryData, dayIndex, sectionIndex int, activityID string) (itinerary_models.ItineraryData, error) {
	out, section, err := targetSection(doc, dayIndex, sectionIndex)
	if err != nil {
		return itinerary_models.ItineraryData{}, err
	}
	kept := make([]itinerary_models.ActivityItem, 0, len(section.Items))
	for _, item := range section.Items {
		if item.ID != activityID {
			kept = append(kept, item)
		}
	}
	section.Items = kept
	return processing.Reprocess(out), nil
}

// targetSection returns a copy of doc and a pointer to the addressed section
// inside that copy.
func targetSection(doc itinerary_models.ItineraryData, dayIndex, sectionIndex int) (itinerary_models.ItineraryData, *itinerary_models.SectionDetail, error) {
	if dayIndex < 0 || dayIndex >= len(doc.Days) {
		return itinerary_models.ItineraryData{}, nil, fmt.Errorf("%w: day %d of %d", utils.ErrIndexOutOfRange, dayIndex, len(doc.Days))
	}
	if sectionIndex < 0 || sectionIndex >= len(doc.Days[dayIndex].Sections) {
		return itinerary_models.ItineraryData{}, nil, fmt.Errorf("%w: section %d of %d in day %d",
			utils.ErrIndexOutOfRange, sectionIndex, len(doc.Days[dayIndex].Sections), dayIndex)
	}
	out := doc.Clone()
	return out, &out.Days[dayIndex].Sections[sectionIndex], nil
}

// ItineraryStore holds the current itinerary. Every document it hands out is
// a copy.
type ItineraryStore struct {
	mu      sync.RWMutex
	current *itinerary_models.ItineraryData
	newID   processing.IDGenerator
}

func NewItineraryStore() *ItineraryStore {
	return &ItineraryStore{newID: processing.NewActivityID}
}

// NewItineraryStoreWithIDs is NewItineraryStore with a custom id source.
func NewItineraryStoreWithIDs(newID processing.IDGenerator) *ItineraryStore {
	return &ItineraryStore{newID: newID}
}

// Load normalizes and aggregates doc and makes it current.
func (s *ItineraryStore) Load(doc itinerary_models.ItineraryData) itinerary_models.ItineraryData {
	processed := processing.AggregateCosts(processing.NormalizeActivityIDsWith(doc, s.newID))

	s.mu.Lock()
	defer s.mu.Unlock()
	s.set(processed)
	return processed.Clone()
}

func (s *ItineraryStore) Current() (itinerary_models.ItineraryData, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return itinerary_models.ItineraryData{}, false
	}
	return s.current.Clone(), true
}

func (s *ItineraryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
}

func (s *ItineraryStore) AddActivity(dayIndex, sectionIndex int, input itinerary_models.ActivityItemInput) (itinerary_models.ItineraryData, error) {
	return s.mutate(func(doc itinerary_models.ItineraryData) (itinerary_models.ItineraryData, error) {
		return AddActivity(doc, dayIndex, sectionIndex, input, s.newID)
	})
}

func (s *ItineraryStore) EditActivity(dayIndex, sectionIndex int, activityID string, input itinerary_models.ActivityItemInput) (itinerary_models.ItineraryData, error) {
	return s.mutate(func(doc itinerary_models.ItineraryData) (itinerary_models.ItineraryData, error) {
		return EditActivity(doc, dayIndex, sectionIndex, activityID, input)
	})
}

func (s *ItineraryStore) DeleteActivity(dayIndex, sectionIndex int, activityID string) (itinerary_models.ItineraryData, error) {
	return s.mutate(func(doc itinerary_models.ItineraryData) (itinerary_models.ItineraryData, error) {
		return DeleteActivity(doc, dayIndex, sectionIndex, activityID)
	})
}

func (s *ItineraryStore) mutate(fn func(itinerary_models.ItineraryData) (itinerary_models.ItineraryData, error)) (itinerary_models.ItineraryData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return itinerary_models.ItineraryData{}, utils.ErrNoCurrentItinerary
	}
	next, err := fn(*s.current)
	if err != nil {
		return itinerary_models.ItineraryData{}, err
	}
	s.set(next)
	return next.Clone(), nil
}

func (s *ItineraryStore) set(doc itinerary_models.ItineraryData) {
	s.current = &doc
}

package itinerary_models

import "time"

// PlanRequest carries the trip parameters sent to the AI planner.
type PlanRequest struct {
	Destinations      string
	Duration          int
	Interests         string
	DeparturePoint    string
	NumberOfTravelers *int
	HotelPreference   string
	TripPurpose       string
}

// ActivityItemInput is an ActivityItem without its id, as submitted by the
// activity form. It is validated before it reaches the store.
type ActivityItemInput struct {
	Type          ActivityType
	Description   string
	Icon          string
	Details       string
	EstimatedCost *float64
	Currency      string
}

func (in ActivityItemInput) ToActivityItem(id string) ActivityItem {
	return ActivityItem{
		ID:            id,
		Type:          in.Type,
		Description:   in.Description,
		Icon:          in.Icon,
		Details:       in.Details,
		EstimatedCost: copyFloat(in.EstimatedCost),
		Currency:      in.Currency,
	}
}

// StoredPlan is the persisted history envelope.
type StoredPlan struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	CreatedAt     time.Time     `json:"createdAt"`
	ItineraryData ItineraryData `json:"itineraryData"`
}

type FeedbackRecord struct {
	Rating         int       `json:"rating"`
	Comments       string    `json:"comments,omitempty"`
	ItineraryTitle string    `json:"itineraryTitle"`
	Timestamp      time.Time `json:"timestamp"`
}

func copyFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

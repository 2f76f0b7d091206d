package response_models

import "vivuplan/internal/models/itinerary_models"

type SessionStateResponse struct {
	Itinerary         *itinerary_models.ItineraryData `json:"itinerary,omitempty"`
	Error             string                          `json:"error,omitempty"`
	IsLoading         bool                            `json:"is_loading"`
	IsEditMode        bool                            `json:"is_edit_mode"`
	FeedbackSubmitted bool                            `json:"feedback_submitted"`
}

type HistoryItemResponse struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	CreatedAt     string   `json:"created_at"`
	CreatedAtText string   `json:"created_at_text"`
	Days          int      `json:"days"`
	ActivityCount int      `json:"activity_count"`
	EstimatedCost *float64 `json:"estimated_cost,omitempty"`
	FormattedCost string   `json:"formatted_cost,omitempty"`
}

type DayCostSummaryResponse struct {
	DayIndex               int      `json:"day_index"`
	DayNumber              int      `json:"day_number"`
	Title                  string   `json:"title"`
	ActivityCount          int      `json:"activity_count"`
	EstimatedDailyCost     *float64 `json:"estimated_daily_cost,omitempty"`
	FormattedDailyCost     string   `json:"formatted_daily_cost,omitempty"`
	AccommodationPriceText string   `json:"accommodation_price_text,omitempty"`
	TripTotalCost          *float64 `json:"trip_total_cost,omitempty"`
	FormattedTripTotalCost string   `json:"formatted_trip_total_cost,omitempty"`
}

type ToggleEditModeResponse struct {
	IsEditMode bool `json:"is_edit_mode"`
}

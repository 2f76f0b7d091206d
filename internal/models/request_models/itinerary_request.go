package request_models

import (
	"fmt"
	"strings"
	"unicode"

	"vivuplan/internal/models/itinerary_models"
	"vivuplan/pkg/utils"
)

// UnspecifiedTripPurpose is the form's "no purpose" choice.
const UnspecifiedTripPurpose = "Không xác định"

type GeneratePlanRequest struct {
	Destinations      string `json:"destinations" binding:"required"`
	Duration          int    `json:"duration" binding:"required"`
	Interests         string `json:"interests"`
	DeparturePoint    string `json:"departure_point"`
	NumberOfTravelers *int   `json:"number_of_travelers"`
	HotelPreference   string `json:"hotel_preference"`
	TripPurpose       string `json:"trip_purpose"`
}

// ToPlanRequest trims the form values and joins comma separated lists back
// together without empty entries.
func (r GeneratePlanRequest) ToPlanRequest() (itinerary_models.PlanRequest, error) {
	destinations := cleanList(r.Destinations)
	if destinations == "" {
		return itinerary_models.PlanRequest{}, fmt.Errorf("%w: destinations are required", utils.ErrInvalidInput)
	}
	if r.Duration <= 0 {
		return itinerary_models.PlanRequest{}, fmt.Errorf("%w: duration must be a positive number of days", utils.ErrInvalidInput)
	}
	if r.NumberOfTravelers != nil && *r.NumberOfTravelers <= 0 {
		return itinerary_models.PlanRequest{}, fmt.Errorf("%w: number of travelers must be positive", utils.ErrInvalidInput)
	}

	purpose := strings.TrimSpace(r.TripPurpose)
	if purpose == UnspecifiedTripPurpose {
		purpose = ""
	}

	return itinerary_models.PlanRequest{
		Destinations:      destinations,
		Duration:          r.Duration,
		Interests:         cleanList(r.Interests),
		DeparturePoint:    strings.TrimSpace(r.DeparturePoint),
		NumberOfTravelers: r.NumberOfTravelers,
		HotelPreference:   strings.TrimSpace(r.HotelPreference),
		TripPurpose:       purpose,
	}, nil
}

func cleanList(raw string) string {
	var parts []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

type ActivityRequest struct {
	Type          string   `json:"type"`
	Description   string   `json:"description" binding:"required"`
	Icon          string   `json:"icon"`
	Details       string   `json:"details"`
	EstimatedCost *float64 `json:"estimated_cost"`
	Currency      string   `json:"currency"`
}

// ToActivityInput validates the activity form. The currency is kept only
// together with a cost and defaults to VND.
func (r ActivityRequest) ToActivityInput() (itinerary_models.ActivityItemInput, error) {
	description := strings.TrimSpace(r.Description)
	if description == "" {
		return itinerary_models.ActivityItemInput{}, fmt.Errorf("%w: description is required", utils.ErrInvalidInput)
	}

	kind := itinerary_models.ActivityType(strings.TrimSpace(r.Type))
	if kind == "" {
		kind = itinerary_models.ActivityTypeActivity
	}
	if !kind.IsValid() {
		return itinerary_models.ActivityItemInput{}, fmt.Errorf("%w: unknown activity type %q", utils.ErrInvalidInput, r.Type)
	}

	input := itinerary_models.ActivityItemInput{
		Type:        kind,
		Description: description,
		Icon:        strings.TrimSpace(r.Icon),
		Details:     strings.TrimSpace(r.Details),
	}

	if r.EstimatedCost != nil {
		if *r.EstimatedCost < 0 {
			return itinerary_models.ActivityItemInput{}, fmt.Errorf("%w: estimated cost cannot be negative", utils.ErrInvalidInput)
		}
		currency := strings.ToUpper(strings.TrimSpace(r.Currency))
		if currency == "" {
			currency = itinerary_models.DefaultCurrency
		}
		if runes := []rune(currency); len(runes) > 3 {
			currency = string(runes[:3])
		}
		for _, ch := range currency {
			if !unicode.IsLetter(ch) {
				return itinerary_models.ActivityItemInput{}, fmt.Errorf("%w: invalid currency code %q", utils.ErrInvalidInput, r.Currency)
			}
		}
		cost := *r.EstimatedCost
		input.EstimatedCost = &cost
		input.Currency = currency
	}
	return input, nil
}

type FeedbackRequest struct {
	Rating   int    `json:"rating" binding:"required,min=1,max=5"`
	Comments string `json:"comments"`
}

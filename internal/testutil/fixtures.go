package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"vivuplan/internal/models/itinerary_models"
)

// Float returns a pointer to v.
func Float(v float64) *float64 {
	return &v
}

type ItemOption func(*itinerary_models.ActivityItem)

func WithCost(cost float64, currency string) ItemOption {
	return func(i *itinerary_models.ActivityItem) {
		i.EstimatedCost = Float(cost)
		i.Currency = currency
	}
}

func WithItemID(id string) ItemOption {
	return func(i *itinerary_models.ActivityItem) {
		i.ID = id
	}
}

func WithItemType(t itinerary_models.ActivityType) ItemOption {
	return func(i *itinerary_models.ActivityItem) {
		i.Type = t
	}
}

// NewTestItem builds an activity item without an id unless WithItemID is given.
func NewTestItem(description string, opts ...ItemOption) itinerary_models.ActivityItem {
	item := itinerary_models.ActivityItem{
		Type:        itinerary_models.ActivityTypeActivity,
		Description: description,
		Icon:        "📍",
	}
	for _, opt := range opts {
		opt(&item)
	}
	return item
}

func NewTestSection(title string, items ...itinerary_models.ActivityItem) itinerary_models.SectionDetail {
	if items == nil {
		items = []itinerary_models.ActivityItem{}
	}
	return itinerary_models.SectionDetail{Title: title, Items: items}
}

func NewTestDay(number int, sections ...itinerary_models.SectionDetail) itinerary_models.DayPlan {
	if sections == nil {
		sections = []itinerary_models.SectionDetail{}
	}
	return itinerary_models.DayPlan{
		DayNumber: number,
		Date:      fmt.Sprintf("Ngày %d", number),
		Title:     fmt.Sprintf("Khám phá ngày %d", number),
		Sections:  sections,
	}
}

func NewTestAccommodation(minPrice, maxPrice *float64, currency string) *itinerary_models.AccommodationSuggestion {
	return &itinerary_models.AccommodationSuggestion{
		Type:          "Homestay",
		Details:       "Khu phố cổ",
		MinPrice:      minPrice,
		MaxPrice:      maxPrice,
		PriceCurrency: currency,
	}
}

func NewTestItinerary(title string, days ...itinerary_models.DayPlan) itinerary_models.ItineraryData {
	if days == nil {
		days = []itinerary_models.DayPlan{}
	}
	return itinerary_models.ItineraryData{
		Title:    title,
		Overview: "Chuyến đi thử nghiệm",
		Days:     days,
		MapData: &itinerary_models.MapData{
			Points: []itinerary_models.MapPoint{
				{Name: "Hồ Hoàn Kiếm", Latitude: 21.0285, Longitude: 105.8542},
				{Name: "Văn Miếu", Latitude: 21.0293, Longitude: 105.8355},
			},
			Routes: []itinerary_models.MapRoute{
				{Name: "Hồ Gươm - Văn Miếu", StartPointName: "Hồ Hoàn Kiếm", EndPointName: "Văn Miếu", TransportMode: "Xe máy"},
			},
		},
	}
}

// NewHanoiItinerary is a two-day trip with costed food items on day 1 and an
// accommodation range on day 2.
func NewHanoiItinerary() itinerary_models.ItineraryData {
	day1 := NewTestDay(1,
		NewTestSection("Buổi sáng ☀️",
			NewTestItem("Ăn sáng: Phở bò", WithItemType(itinerary_models.ActivityTypeFood), WithCost(50000, "VND")),
			NewTestItem("Dạo Hồ Gươm"),
		),
		NewTestSection("Buổi tối 🌙",
			NewTestItem("Bún chả", WithItemType(itinerary_models.ActivityTypeFood), WithCost(30000, "")),
		),
	)
	day2 := NewTestDay(2,
		NewTestSection("Buổi sáng ☀️",
			NewTestItem("Thăm Văn Miếu", WithCost(30000, "VND")),
		),
		NewTestSection("Buổi chiều",
			NewTestItem("Cà phê trứng"),
		),
	)
	day2.AccommodationSuggestion = NewTestAccommodation(Float(200000), Float(400000), "VND")
	return NewTestItinerary("Hà Nội 2 ngày", day1, day2)
}

// FixedClock always returns t.
func FixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// SteppingClock starts at start and advances by step on every call.
func SteppingClock(start time.Time, step time.Duration) func() time.Time {
	var n atomic.Int64
	return func() time.Time {
		i := n.Add(1) - 1
		return start.Add(time.Duration(i) * step)
	}
}

// SequentialIDs returns prefix-1, prefix-2, ...
func SequentialIDs(prefix string) func() string {
	var n atomic.Int64
	return func() string {
		return fmt.Sprintf("%s-%d", prefix, n.Add(1))
	}
}

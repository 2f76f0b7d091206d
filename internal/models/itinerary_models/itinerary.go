package itinerary_models

// DefaultCurrency is the only currency the cost aggregation sums.
const DefaultCurrency = "VND"

type ActivityType string

const (
	ActivityTypeActivity    ActivityType = "activity"
	ActivityTypeFood        ActivityType = "food"
	ActivityTypeTransport   ActivityType = "transport"
	ActivityTypeNote        ActivityType = "note"
	ActivityTypeInteraction ActivityType = "interaction"
)

func (t ActivityType) IsValid() bool {
	switch t {
	case ActivityTypeActivity, ActivityTypeFood, ActivityTypeTransport, ActivityTypeNote, ActivityTypeInteraction:
		return true
	}
	return false
}

// ActivityItem is one line entry inside a day's section.
type ActivityItem struct {
	ID            string       `json:"id,omitempty"`
	Type          ActivityType `json:"type"`
	Description   string       `json:"description"`
	Icon          string       `json:"icon,omitempty"`
	Details       string       `json:"details,omitempty"`
	EstimatedCost *float64     `json:"estimatedCost,omitempty"`
	Currency      string       `json:"currency,omitempty"` // only meaningful with EstimatedCost
}

type SectionDetail struct {
	Title string         `json:"title"`
	Items []ActivityItem `json:"items"`
}

type TrendySuggestion struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon,omitempty"`
}

type AccommodationSuggestion struct {
	Type          string   `json:"type"`
	Details       string   `json:"details"`
	MinPrice      *float64 `json:"minPrice,omitempty"`
	MaxPrice      *float64 `json:"maxPrice,omitempty"`
	PriceCurrency string   `json:"priceCurrency,omitempty"`
}

type DailyNote struct {
	Content string `json:"content"`
	Icon    string `json:"icon,omitempty"`
}

type MapPoint struct {
	Name        string  `json:"name"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Description string  `json:"description,omitempty"`
	Icon        string  `json:"icon,omitempty"`
}

// MapRoute endpoints refer to MapPoint names.
type MapRoute struct {
	Name           string `json:"name"`
	StartPointName string `json:"startPointName"`
	EndPointName   string `json:"endPointName"`
	TransportMode  string `json:"transportMode,omitempty"`
	TravelTime     string `json:"travelTime,omitempty"`
	Notes          string `json:"notes,omitempty"`
}

type GeoPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// MapData is handed to the map widget as-is.
type MapData struct {
	Points        []MapPoint `json:"points"`
	Routes        []MapRoute `json:"routes"`
	InitialCenter *GeoPoint  `json:"initialCenter,omitempty"`
	InitialZoom   *float64   `json:"initialZoom,omitempty"`
}

// DayPlan is one calendar day of the trip. EstimatedDailyCost and
// DailyCostCurrency are owned by the cost aggregation.
type DayPlan struct {
	DayNumber               int                      `json:"dayNumber"`
	Date                    string                   `json:"date"`
	Title                   string                   `json:"title"`
	Summary                 string                   `json:"summary,omitempty"`
	Sections                []SectionDetail          `json:"sections"`
	DailyNotes              []DailyNote              `json:"dailyNotes,omitempty"`
	TrendySuggestion        *TrendySuggestion        `json:"trendySuggestion,omitempty"`
	AccommodationSuggestion *AccommodationSuggestion `json:"accommodationSuggestion,omitempty"`
	EstimatedDailyCost      *float64                 `json:"estimatedDailyCost,omitempty"`
	DailyCostCurrency       string                   `json:"dailyCostCurrency,omitempty"`
}

type GeneralNoteType string

const (
	GeneralNoteImportant GeneralNoteType = "important"
	GeneralNoteTip       GeneralNoteType = "tip"
	GeneralNoteInfo      GeneralNoteType = "info"
)

type GeneralNote struct {
	Type    GeneralNoteType `json:"type"`
	Content string          `json:"content"`
	Icon    string          `json:"icon,omitempty"`
}

type FinalThoughtItem struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Icon    string `json:"icon,omitempty"`
}

type FinalThoughts struct {
	TravelTips       []FinalThoughtItem `json:"travelTips,omitempty"`
	BookingAdvice    string             `json:"bookingAdvice,omitempty"`
	CulturalInsights []FinalThoughtItem `json:"culturalInsights,omitempty"`
}

// ItineraryData is the whole trip document. Title doubles as the history key.
type ItineraryData struct {
	Title              string         `json:"title"`
	Overview           string         `json:"overview,omitempty"`
	GeneralNotes       []GeneralNote  `json:"generalNotes,omitempty"`
	Days               []DayPlan      `json:"days"`
	FinalThoughts      *FinalThoughts `json:"finalThoughts,omitempty"`
	MapData            *MapData       `json:"mapData,omitempty"`
	FeasibilityWarning string         `json:"feasibilityWarning,omitempty"`
	EstimatedTotalCost *float64       `json:"estimatedTotalCost,omitempty"`
	TotalCostCurrency  string         `json:"totalCostCurrency,omitempty"`
	CostDisclaimer     string         `json:"costDisclaimer,omitempty"`
}

// ActivityCount returns the number of activity items across all days.
func (d ItineraryData) ActivityCount() int {
	n := 0
	for _, day := range d.Days {
		for _, section := range day.Sections {
			n += len(section.Items)
		}
	}
	return n
}

package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"vivuplan/internal/models/itinerary_models"
	"vivuplan/pkg/utils"
)

// DecodeItinerary validates an untrusted AI document. It must be a JSON object
// with a non-blank title and at least one day. Missing sections and items
// become empty lists, unknown activity types become notes and negative costs
// are dropped.
func DecodeItinerary(raw []byte) (itinerary_models.ItineraryData, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return itinerary_models.ItineraryData{}, fmt.Errorf("%w: expected a JSON object", utils.ErrInvalidDocument)
	}

	var doc itinerary_models.ItineraryData
	if err := json.Unmarshal(trimmed, &doc); err != nil {
		return itinerary_models.ItineraryData{}, fmt.Errorf("%w: %v", utils.ErrInvalidDocument, err)
	}

	doc.Title = strings.TrimSpace(doc.Title)
	if doc.Title == "" {
		return itinerary_models.ItineraryData{}, fmt.Errorf("%w: missing title", utils.ErrInvalidDocument)
	}
	if len(doc.Days) == 0 {
		return itinerary_models.ItineraryData{}, fmt.Errorf("%w: no days", utils.ErrInvalidDocument)
	}

	for d := range doc.Days {
		day := &doc.Days[d]
		if day.Sections == nil {
			day.Sections = []itinerary_models.SectionDetail{}
		}
		if day.DayNumber == 0 {
			day.DayNumber = d + 1
		}
		for s := range day.Sections {
			section := &day.Sections[s]
			if section.Items == nil {
				section.Items = []itinerary_models.ActivityItem{}
			}
			for i := range section.Items {
				item := &section.Items[i]
				if !item.Type.IsValid() {
					item.Type = itinerary_models.ActivityTypeNote
				}
				if item.EstimatedCost != nil && *item.EstimatedCost < 0 {
					item.EstimatedCost = nil
					item.Currency = ""
				}
			}
		}
	}
	return doc, nil
}

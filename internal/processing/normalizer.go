package processing

import (
	"github.com/google/uuid"
	"vivuplan/internal/models/itinerary_models"
)

// IDGenerator returns a fresh, globally unique activity id.
type IDGenerator func() string

// NewActivityID is the default IDGenerator.
func NewActivityID() string {
	return uuid.NewString()
}

// NormalizeActivityIDs assigns an id to every activity item that has none.
// Existing ids, ordering and all other fields are left as they are, so a
// second pass over the result changes nothing.
func NormalizeActivityIDs(doc itinerary_models.ItineraryData) itinerary_models.ItineraryData {
	return NormalizeActivityIDsWith(doc, NewActivityID)
}

func NormalizeActivityIDsWith(doc itinerary_models.ItineraryData, newID IDGenerator) itinerary_models.ItineraryData {
	out := doc.Clone()
	for d := range out.Days {
		for s := range out.Days[d].Sections {
			items := out.Days[d].Sections[s].Items
			for i := range items {
				if items[i].ID == "" {
					items[i].ID = newID()
				}
			}
		}
	}
	return out
}

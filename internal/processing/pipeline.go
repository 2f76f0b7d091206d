package processing

import "vivuplan/internal/models/itinerary_models"

// Reprocess runs the normalize then aggregate pipeline every document goes
// through when it becomes current or is written to history.
func Reprocess(doc itinerary_models.ItineraryData) itinerary_models.ItineraryData {
	return AggregateCosts(NormalizeActivityIDs(doc))
}

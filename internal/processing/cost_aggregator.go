package processing

import (
	"vivuplan/internal/models/itinerary_models"
)

// AggregateCosts recomputes the derived cost fields of every day and of the
// trip. Only amounts in the default currency (or without a currency) are
// summed; other currencies are skipped. Previously derived values are never
// read. A day or trip whose sum is not positive reports no cost at all.
func AggregateCosts(doc itinerary_models.ItineraryData) itinerary_models.ItineraryData {
	out := doc.Clone()
	total := 0.0

	for i := range out.Days {
		daily := DailyCost(out.Days[i])
		out.Days[i].EstimatedDailyCost, out.Days[i].DailyCostCurrency = costFields(daily)
		total += daily
	}

	out.EstimatedTotalCost, out.TotalCostCurrency = costFields(total)
	return out
}

// DailyCost sums the default-currency item costs of a day plus its
// accommodation estimate.
func DailyCost(day itinerary_models.DayPlan) float64 {
	cost := 0.0
	for _, section := range day.Sections {
		for _, item := range section.Items {
			if item.EstimatedCost != nil && isDefaultCurrency(item.Currency) {
				cost += *item.EstimatedCost
			}
		}
	}
	return cost + AccommodationEstimate(day.AccommodationSuggestion)
}

// AccommodationEstimate is the midpoint of the price range, or the minimum
// price when no maximum is given.
func AccommodationEstimate(acc *itinerary_models.AccommodationSuggestion) float64 {
	if acc == nil || !isDefaultCurrency(acc.PriceCurrency) {
		return 0
	}
	switch {
	case acc.MinPrice != nil && acc.MaxPrice != nil:
		return (*acc.MinPrice + *acc.MaxPrice) / 2
	case acc.MinPrice != nil:
		return *acc.MinPrice
	}
	return 0
}

func isDefaultCurrency(code string) bool {
	return code == "" || code == itinerary_models.DefaultCurrency
}

func costFields(cost float64) (*float64, string) {
	if cost > 0 {
		return &cost, itinerary_models.DefaultCurrency
	}
	return nil, ""
}

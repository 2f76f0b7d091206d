package itinerary_models

// Clone copies the day/section/item tree so that the result can be changed
// without touching the receiver. Nil slices stay nil. Pass-through metadata
// (notes, map data, final thoughts) is shared because nothing mutates it.
func (d ItineraryData) Clone() ItineraryData {
	out := d
	out.EstimatedTotalCost = copyFloat(d.EstimatedTotalCost)
	if d.Days == nil {
		return out
	}
	out.Days = make([]DayPlan, len(d.Days))
	for i, day := range d.Days {
		out.Days[i] = day.Clone()
	}
	return out
}

func (d DayPlan) Clone() DayPlan {
	out := d
	out.EstimatedDailyCost = copyFloat(d.EstimatedDailyCost)
	if d.AccommodationSuggestion != nil {
		acc := d.AccommodationSuggestion.Clone()
		out.AccommodationSuggestion = &acc
	}
	if d.Sections == nil {
		return out
	}
	out.Sections = make([]SectionDetail, len(d.Sections))
	for i, section := range d.Sections {
		out.Sections[i] = section.Clone()
	}
	return out
}

func (s SectionDetail) Clone() SectionDetail {
	out := s
	if s.Items == nil {
		return out
	}
	out.Items = make([]ActivityItem, len(s.Items))
	for i, item := range s.Items {
		out.Items[i] = item.Clone()
	}
	return out
}

func (a ActivityItem) Clone() ActivityItem {
	out := a
	out.EstimatedCost = copyFloat(a.EstimatedCost)
	return out
}

func (a AccommodationSuggestion) Clone() AccommodationSuggestion {
	out := a
	out.MinPrice = copyFloat(a.MinPrice)
	out.MaxPrice = copyFloat(a.MaxPrice)
	return out
}

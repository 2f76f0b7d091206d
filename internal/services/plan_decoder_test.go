package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vivuplan/internal/models/itinerary_models"
	"vivuplan/pkg/utils"
)

func TestDecodeItinerary_Valid(t *testing.T) {
	raw := `{
	  "title": "  Đà Nẵng 3 ngày ",
	  "days": [
	    {"dayNumber": 1, "date": "Ngày 1", "title": "Biển Mỹ Khê", "sections": [
	      {"title": "Buổi sáng", "items": [
	        {"type": "food", "description": "Mì Quảng", "estimatedCost": 40000, "currency": "VND"},
	        {"type": "sightseeing", "description": "Cầu Rồng"},
	        {"type": "activity", "description": "Lặn", "estimatedCost": -5, "currency": "VND"}
	      ]},
	      {"title": "Buổi chiều"}
	    ]},
	    {"date": "Ngày 2", "title": "Bà Nà"}
	  ],
	  "mapData": {"points": [], "routes": []}
	}`

	doc, err := DecodeItinerary([]byte(raw))
	require.NoError(t, err)

	assert.Equal(t, "Đà Nẵng 3 ngày", doc.Title)
	require.Len(t, doc.Days, 2)

	items := doc.Days[0].Sections[0].Items
	assert.Equal(t, itinerary_models.ActivityTypeFood, items[0].Type)
	assert.Equal(t, itinerary_models.ActivityTypeNote, items[1].Type)
	assert.Nil(t, items[2].EstimatedCost)
	assert.Empty(t, items[2].Currency)

	assert.NotNil(t, doc.Days[0].Sections[1].Items)
	assert.Empty(t, doc.Days[0].Sections[1].Items)
	assert.NotNil(t, doc.Days[1].Sections)
	assert.Equal(t, 2, doc.Days[1].DayNumber)
	require.NotNil(t, doc.MapData)
}

func TestDecodeItinerary_Rejects(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty", ``},
		{"array", `[{"title":"x","days":[{}]}]`},
		{"not json", `Xin lỗi, tôi không thể`},
		{"blank title", `{"title":"   ","days":[{"title":"d"}]}`},
		{"missing days", `{"title":"Huế"}`},
		{"empty days", `{"title":"Huế","days":[]}`},
		{"wrong type", `{"title":"Huế","days":"một ngày"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeItinerary([]byte(tt.raw))
			assert.ErrorIs(t, err, utils.ErrInvalidDocument)
		})
	}
}

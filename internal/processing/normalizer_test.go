package processing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"vivuplan/internal/models/itinerary_models"
	"vivuplan/internal/testutil"
)

func collectIDs(doc itinerary_models.ItineraryData) []string {
	var ids []string
	for _, day := range doc.Days {
		for _, section := range day.Sections {
			for _, item := range section.Items {
				ids = append(ids, item.ID)
			}
		}
	}
	return ids
}

func TestNormalizeActivityIDs_AssignsUniqueIDs(t *testing.T) {
	doc := testutil.NewHanoiItinerary()

	out := NormalizeActivityIDs(doc)

	ids := collectIDs(out)
	require.Len(t, ids, 5)
	seen := make(map[string]bool)
	for _, id := range ids {
		assert.NotEmpty(t, id)
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestNormalizeActivityIDs_Idempotent(t *testing.T) {
	once := NormalizeActivityIDs(testutil.NewHanoiItinerary())
	twice := NormalizeActivityIDs(once)
	assert.Equal(t, once, twice)
}

func TestNormalizeActivityIDs_KeepsExistingIDs(t *testing.T) {
	doc := testutil.NewTestItinerary("Huế",
		testutil.NewTestDay(1, testutil.NewTestSection("Sáng",
			testutil.NewTestItem("Đại Nội", testutil.WithItemID("keep-me")),
			testutil.NewTestItem("Chùa Thiên Mụ"),
		)),
	)

	out := NormalizeActivityIDsWith(doc, testutil.SequentialIDs("gen"))

	items := out.Days[0].Sections[0].Items
	assert.Equal(t, "keep-me", items[0].ID)
	assert.Equal(t, "gen-1", items[1].ID)
	assert.Equal(t, "Đại Nội", items[0].Description)
	assert.Equal(t, "Chùa Thiên Mụ", items[1].Description)
}

func TestNormalizeActivityIDs_DoesNotMutateInput(t *testing.T) {
	doc := testutil.NewHanoiItinerary()

	_ = NormalizeActivityIDs(doc)

	for _, id := range collectIDs(doc) {
		assert.Empty(t, id)
	}
}

func TestNormalizeActivityIDs_PreservesOtherFields(t *testing.T) {
	doc := testutil.NewHanoiItinerary()
	doc.FeasibilityWarning = "Lịch trình khá dày"

	out := NormalizeActivityIDsWith(doc, testutil.SequentialIDs("x"))

	for d := range out.Days {
		for s := range out.Days[d].Sections {
			for i := range out.Days[d].Sections[s].Items {
				out.Days[d].Sections[s].Items[i].ID = ""
			}
		}
	}
	assert.Equal(t, doc, out)
}

func TestNormalizeActivityIDs_EmptyDocument(t *testing.T) {
	doc := itinerary_models.ItineraryData{Title: "Trống"}
	assert.Equal(t, doc, NormalizeActivityIDs(doc))
}

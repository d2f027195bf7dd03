package normalize

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewFullPayload(t *testing.T) {
	raw := decode(t, `{
		"id": 1, "universityId": 3, "rating": 5, "content": "x",
		"pros": "A, B", "date": "2023-04-10"
	}`)

	r := Review(raw)
	assert.Equal(t, 1, r.ID)
	assert.Equal(t, 3, r.UniversityID)
	assert.Equal(t, 5.0, r.Rating)
	assert.Equal(t, "x", r.Content)
	assert.Equal(t, []string{"A", "B"}, r.Pros)
	assert.Equal(t, []string{}, r.Cons)
	assert.Equal(t, time.Date(2023, 4, 10, 0, 0, 0, 0, time.UTC), r.Date)
}

func TestReviewCommaJoinedProsConsTokenized(t *testing.T) {
	raw := decode(t, `{"id": 2, "pros": "Good food, Great library,, ", "cons": " , "}`)

	r := Review(raw)
	assert.Equal(t, []string{"Good food", "Great library"}, r.Pros)
	assert.Equal(t, []string{}, r.Cons)
}

func TestReviewProsConsAlreadyArrays(t *testing.T) {
	raw := decode(t, `{"pros": ["a", " b ", ""], "cons": ["c"]}`)

	r := Review(raw)
	assert.Equal(t, []string{"a", "b"}, r.Pros)
	assert.Equal(t, []string{"c"}, r.Cons)
}

func TestReviewDateKeyFallbacks(t *testing.T) {
	tests := []struct {
		name string
		body string
		want time.Time
	}{
		{"date RFC3339", `{"date": "2023-05-15T10:30:00Z"}`, time.Date(2023, 5, 15, 10, 30, 0, 0, time.UTC)},
		{"createdAt", `{"createdAt": "2023-06-20"}`, time.Date(2023, 6, 20, 0, 0, 0, 0, time.UTC)},
		{"created_at", `{"created_at": "2023-04-10T08:00:00"}`, time.Date(2023, 4, 10, 8, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Review(decode(t, tt.body))
			assert.True(t, tt.want.Equal(r.Date), "got %v, want %v", r.Date, tt.want)
		})
	}
}

func TestReviewUnparseableDateDefaultsToNow(t *testing.T) {
	before := time.Now()
	r := Review(decode(t, `{"date": "not a date"}`))
	after := time.Now()

	assert.False(t, r.Date.Before(before))
	assert.False(t, r.Date.After(after))
}

func TestReviewSnakeCaseKeys(t *testing.T) {
	raw := decode(t, `{
		"university_id": 4, "author_name": "Jin", "is_international": true,
		"program_studied": "Physics", "year_of_study": "2021-2025"
	}`)

	r := Review(raw)
	assert.Equal(t, 4, r.UniversityID)
	assert.Equal(t, "Jin", r.Author)
	assert.True(t, r.IsInternational)
	assert.Equal(t, "Physics", r.ProgramStudied)
	assert.Equal(t, "2021-2025", r.YearOfStudy)
}

func TestReviewNilPayloadNeverPanics(t *testing.T) {
	r := Review(nil)
	require.NotNil(t, r.Pros)
	require.NotNil(t, r.Cons)
	assert.Zero(t, r.ID)
	assert.False(t, r.Date.IsZero())
}

func TestReviewSlice(t *testing.T) {
	items := []map[string]any{
		decode(t, `{"id": 1, "universityId": 1, "rating": 5}`),
		decode(t, `{"id": 2, "universityId": 1, "rating": 4}`),
	}
	out := ReviewSlice(items)
	require.Len(t, out, 2)
	assert.Equal(t, 2, out[1].ID)
}

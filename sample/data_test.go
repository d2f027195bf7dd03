package sample

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUniversitiesIsNeverEmptyAndComplete(t *testing.T) {
	list := Universities()
	require.GreaterOrEqual(t, len(list), 5)
	for _, u := range list {
		assert.NotZero(t, u.ID)
		assert.NotEmpty(t, u.Name)
		assert.NotEmpty(t, u.Location)
		assert.NotEmpty(t, u.Description)
		assert.NotEmpty(t, u.Images)
		assert.Equal(t, u.Images[0], u.ImageURL)
	}
}

func TestFindKnownAndUnknown(t *testing.T) {
	u, ok := Find(1)
	require.True(t, ok)
	assert.Equal(t, "Seoul National University", u.Name)

	_, ok = Find(999)
	assert.False(t, ok)
}

func TestAccessorsReturnCopies(t *testing.T) {
	first := Universities()
	first[0].Name = "mutated"
	first[0].Images[0] = "mutated"
	first[0].TuitionFees.Currency = "USD"

	fresh := Universities()
	assert.Equal(t, "Seoul National University", fresh[0].Name)
	assert.NotEqual(t, "mutated", fresh[0].Images[0])
	assert.Equal(t, "KRW", fresh[0].TuitionFees.Currency)
}

func TestReviewsForFiltersAndCopies(t *testing.T) {
	reviews := ReviewsFor(1)
	require.Len(t, reviews, 1)
	assert.Equal(t, "David Kim", reviews[0].Author)

	reviews[0].Pros[0] = "mutated"
	assert.Equal(t, "Excellent faculty", ReviewsFor(1)[0].Pros[0])

	assert.Empty(t, ReviewsFor(999))
}

func TestFilter(t *testing.T) {
	assert.Len(t, Filter("", "Seoul", ""), 4)
	assert.Len(t, Filter("", "", "Public"), 2)

	matched := Filter("yonsei", "", "")
	require.Len(t, matched, 1)
	assert.Equal(t, 3, matched[0].ID)

	assert.Empty(t, Filter("no such university", "", ""))
}

func TestLocationsAndTypesDistinctSorted(t *testing.T) {
	assert.Equal(t, []string{"Daejeon", "Pohang", "Seoul"}, Locations())
	assert.Equal(t, []string{"Private", "Public"}, Types())
}

func TestTopRated(t *testing.T) {
	top := TopRated(2)
	require.Len(t, top, 2)
	assert.Equal(t, "KAIST", top[0].Name)
	assert.Equal(t, "Seoul National University", top[1].Name)

	assert.Len(t, TopRated(0), len(Universities()))
}

package normalize

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// decode mimics the path production payloads take: through encoding/json
// into a map.
func decode(t *testing.T, body string) map[string]any {
	t.Helper()
	var raw map[string]any
	require.NoError(t, json.Unmarshal([]byte(body), &raw))
	return raw
}

func TestUniversityNilPayload(t *testing.T) {
	_, err := University(nil)
	require.Error(t, err)

	var normErr *NormalizationError
	assert.ErrorAs(t, err, &normErr)
}

func TestUniversityCamelCaseFields(t *testing.T) {
	raw := decode(t, `{
		"id": 1, "name": "Seoul National University", "nameKorean": "서울대학교",
		"location": "Seoul", "established": 1946, "type": "Public",
		"website": "https://en.snu.ac.kr/", "description": "desc",
		"ranking": 1, "studentCount": 27000, "facultyCount": 2500,
		"hasInternationalPrograms": true, "averageRating": 4.7, "reviewCount": 12
	}`)

	u, err := University(raw)
	require.NoError(t, err)
	assert.Equal(t, 1, u.ID)
	assert.Equal(t, "Seoul National University", u.Name)
	assert.Equal(t, "서울대학교", u.NameKorean)
	assert.Equal(t, 1946, u.Established)
	assert.Equal(t, 27000, u.StudentCount)
	assert.True(t, u.HasInternationalPrograms)
	assert.Equal(t, 4.7, u.AverageRating)
	assert.Equal(t, 12, u.ReviewCount)
}

func TestUniversitySnakeCaseFields(t *testing.T) {
	raw := decode(t, `{
		"id": 2, "name": "Korea University", "name_korean": "고려대학교",
		"location": "Seoul", "established_year": 1905,
		"student_count": 25000, "faculty_count": 2200,
		"has_international_programs": true,
		"average_rating": 4.5, "review_count": 3,
		"admission_requirements": "TOPIK Level 3"
	}`)

	u, err := University(raw)
	require.NoError(t, err)
	assert.Equal(t, "고려대학교", u.NameKorean)
	assert.Equal(t, 1905, u.Established)
	assert.Equal(t, 25000, u.StudentCount)
	assert.Equal(t, 2200, u.FacultyCount)
	assert.True(t, u.HasInternationalPrograms)
	assert.Equal(t, 4.5, u.AverageRating)
	assert.Equal(t, "TOPIK Level 3", u.AdmissionRequirements)
}

func TestUniversityCamelCaseWinsOverSnakeCase(t *testing.T) {
	raw := decode(t, `{"id": 3, "studentCount": 100, "student_count": 200}`)

	u, err := University(raw)
	require.NoError(t, err)
	assert.Equal(t, 100, u.StudentCount)
}

func TestUniversityMissingFieldsDefaultSafely(t *testing.T) {
	u, err := University(decode(t, `{"id": 9}`))
	require.NoError(t, err)
	assert.Equal(t, "", u.Name)
	assert.Equal(t, 0, u.Established)
	assert.False(t, u.HasInternationalPrograms)
	assert.NotNil(t, u.Images)
	assert.Empty(t, u.Images)
	assert.NotNil(t, u.Departments)
	assert.NotNil(t, u.CampusFacilities)
	assert.Nil(t, u.TuitionFees)
}

func TestUniversityImagesStringArray(t *testing.T) {
	raw := decode(t, `{"id": 1, "images": ["https://a.png", "https://b.png"]}`)

	u, err := University(raw)
	require.NoError(t, err)
	assert.Equal(t, []string{"https://a.png", "https://b.png"}, u.Images)
	assert.Equal(t, "https://a.png", u.ImageURL)
}

func TestUniversityImagesObjectArray(t *testing.T) {
	raw := decode(t, `{"id": 1, "images": [
		{"imageUrl": "https://a.png"},
		{"image_url": "https://b.png"},
		{"url": "https://c.png"},
		{"path": "https://d.png"}
	]}`)

	u, err := University(raw)
	require.NoError(t, err)
	assert.Equal(t, []string{"https://a.png", "https://b.png", "https://c.png", "https://d.png"}, u.Images)
	assert.Equal(t, "https://a.png", u.ImageURL)
}

func TestUniversityImagesSpaceSeparatedString(t *testing.T) {
	raw := decode(t, `{"id": 1, "images": "https://a.png https://b.png"}`)

	u, err := University(raw)
	require.NoError(t, err)
	assert.Equal(t, []string{"https://a.png", "https://b.png"}, u.Images)
}

func TestUniversityImageURLScalarOnly(t *testing.T) {
	raw := decode(t, `{"id": 1, "image_url": "https://only.png"}`)

	u, err := University(raw)
	require.NoError(t, err)
	assert.Equal(t, []string{"https://only.png"}, u.Images)
	assert.Equal(t, "https://only.png", u.ImageURL)
}

func TestUniversityUniversityImagesArray(t *testing.T) {
	raw := decode(t, `{"id": 1, "university_images": [
		{"url": "https://x.png"}, {"image_url": "https://y.png"}
	]}`)

	u, err := University(raw)
	require.NoError(t, err)
	assert.Equal(t, []string{"https://x.png", "https://y.png"}, u.Images)
}

func TestUniversityImagesMergedAndDeduplicated(t *testing.T) {
	raw := decode(t, `{
		"id": 1,
		"images": ["https://a.png", "https://b.png", "https://a.png"],
		"imageUrl": "https://a.png",
		"university_images": [{"url": "https://c.png"}, {"url": "https://b.png"}]
	}`)

	u, err := University(raw)
	require.NoError(t, err)
	assert.Equal(t, []string{"https://a.png", "https://b.png", "https://c.png"}, u.Images)
	assert.Equal(t, "https://a.png", u.ImageURL)
}

func TestUniversityDepartmentsShapes(t *testing.T) {
	tests := []struct {
		name string
		body string
		want []string
	}{
		{"string array", `{"departments": ["Engineering", "Medicine"]}`, []string{"Engineering", "Medicine"}},
		{"space delimited", `{"departments": "Engineering Medicine"}`, []string{"Engineering", "Medicine"}},
		{"object array", `{"departments": [{"name": "Engineering"}, {"name": "Medicine"}]}`, []string{"Engineering", "Medicine"}},
		{"absent", `{}`, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := University(decode(t, tt.body))
			require.NoError(t, err)
			assert.Equal(t, tt.want, u.Departments)
		})
	}
}

func TestUniversityFacilitiesAlternateKey(t *testing.T) {
	u, err := University(decode(t, `{"facilities": ["Library", "Dormitories"]}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"Library", "Dormitories"}, u.CampusFacilities)
}

func TestUniversityTuitionFees(t *testing.T) {
	raw := decode(t, `{"id": 1, "tuition_fees": {
		"undergraduate": {"domestic": 5000000, "international": 7000000},
		"graduate": {"domestic": 6000000, "international": 8000000},
		"currency": "KRW"
	}}`)

	u, err := University(raw)
	require.NoError(t, err)
	require.NotNil(t, u.TuitionFees)
	assert.Equal(t, "KRW", u.TuitionFees.Currency)
	require.NotNil(t, u.TuitionFees.Undergraduate)
	assert.Equal(t, 5000000, u.TuitionFees.Undergraduate.Domestic)
	assert.Equal(t, 8000000, u.TuitionFees.Graduate.International)
}

func TestUniversitySliceRejectsNonObjectElement(t *testing.T) {
	items := []map[string]any{
		decode(t, `{"id": 1}`),
		nil, // a non-object element in the raw array
	}
	_, err := UniversitySlice(items)
	var normErr *NormalizationError
	assert.ErrorAs(t, err, &normErr)
}

func TestUniversityNumericStringsAccepted(t *testing.T) {
	u, err := University(decode(t, `{"id": "7", "established": "1905", "averageRating": "4.5"}`))
	require.NoError(t, err)
	assert.Equal(t, 7, u.ID)
	assert.Equal(t, 1905, u.Established)
	assert.Equal(t, 4.5, u.AverageRating)
}

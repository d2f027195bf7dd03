package normalize

import (
	"strings"

	"github.com/studykorea/uniclient/model"
)

// University maps one raw backend record into the canonical shape. The only
// failure mode is a nil map (the payload was not an object); every missing
// or oddly-typed field degrades to its zero value instead.
func University(raw map[string]any) (model.University, error) {
	if raw == nil {
		return model.University{}, &NormalizationError{Reason: "university payload is not an object"}
	}

	u := model.University{
		ID:          intAt(raw, "id"),
		Name:        stringAt(raw, "name"),
		NameKorean:  stringAt(raw, "nameKorean", "name_korean", "koreanName", "korean_name"),
		Location:    stringAt(raw, "location", "city"),
		Established: intAt(raw, "established", "established_year", "establishedYear"),
		Type:        stringAt(raw, "type", "university_type", "universityType"),
		Website:     stringAt(raw, "website", "website_url", "websiteUrl"),
		Description: stringAt(raw, "description"),

		Ranking:               intAt(raw, "ranking", "rank"),
		StudentCount:          intAt(raw, "studentCount", "student_count"),
		FacultyCount:          intAt(raw, "facultyCount", "faculty_count"),
		AdmissionRequirements: stringAt(raw, "admissionRequirements", "admission_requirements"),
		TuitionFees:           tuitionFees(raw),

		HasInternationalPrograms: boolAt(raw, "hasInternationalPrograms", "has_international_programs"),
		Departments:              listAt(raw, "departments", "university_departments"),
		CampusFacilities:         listAt(raw, "campusFacilities", "campus_facilities", "facilities"),

		AverageRating: floatAt(raw, "averageRating", "average_rating", "avgRating", "avg_rating"),
		ReviewCount:   intAt(raw, "reviewCount", "review_count"),
	}

	u.Images = extractImages(raw)
	if len(u.Images) > 0 {
		u.ImageURL = u.Images[0]
	}

	return u, nil
}

// UniversitySlice normalizes a list payload. A non-object element fails the
// whole slice; lists are fetched atomically and a half-normalized page is
// worse than an error the caller can fall back from.
func UniversitySlice(items []map[string]any) ([]model.University, error) {
	out := make([]model.University, 0, len(items))
	for _, raw := range items {
		u, err := University(raw)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, nil
}

// imageURLKeys are the fields an image object may carry its URL under.
var imageURLKeys = []string{"imageUrl", "image_url", "url", "path"}

// extractImages merges every image source the backend is known to use into
// one ordered, de-duplicated URL list. Priority:
//  1. "images" as an array of URL strings
//  2. "images" as an array of objects with a URL-bearing field
//  3. "images" as a single (possibly space-separated) string
//  4. a top-level imageUrl/image_url scalar, appended if new
//  5. a "university_images" object array, handled like (2)
func extractImages(raw map[string]any) []string {
	urls := []string{}
	seen := map[string]bool{}
	add := func(candidate string) {
		candidate = strings.TrimSpace(candidate)
		if candidate == "" || seen[candidate] {
			return
		}
		seen[candidate] = true
		urls = append(urls, candidate)
	}
	addAny := func(item any) {
		switch entry := item.(type) {
		case string:
			add(entry)
		case map[string]any:
			add(stringAt(entry, imageURLKeys...))
		}
	}

	switch images := raw["images"].(type) {
	case []any:
		for _, item := range images {
			addAny(item)
		}
	case string:
		for _, token := range strings.Fields(images) {
			add(token)
		}
	}

	add(stringAt(raw, "imageUrl", "image_url"))

	if extra, ok := raw["university_images"].([]any); ok {
		for _, item := range extra {
			addAny(item)
		}
	}

	return urls
}

// tuitionFees parses the optional nested fee object, tolerating both key
// conventions at every level. Returns nil when no fee data is present.
func tuitionFees(raw map[string]any) *model.TuitionFees {
	var obj map[string]any
	for _, k := range []string{"tuitionFees", "tuition_fees"} {
		if m, ok := raw[k].(map[string]any); ok {
			obj = m
			break
		}
	}
	if obj == nil {
		return nil
	}

	fees := &model.TuitionFees{Currency: stringAt(obj, "currency")}
	fees.Undergraduate = feePair(obj, "undergraduate", "under_graduate")
	fees.Graduate = feePair(obj, "graduate", "post_graduate")
	if fees.Undergraduate == nil && fees.Graduate == nil && fees.Currency == "" {
		return nil
	}
	return fees
}

func feePair(obj map[string]any, keys ...string) *model.FeePair {
	for _, k := range keys {
		if m, ok := obj[k].(map[string]any); ok {
			return &model.FeePair{
				Domestic:      intAt(m, "domestic", "domestic_fee"),
				International: intAt(m, "international", "international_fee"),
			}
		}
	}
	return nil
}

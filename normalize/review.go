package normalize

import (
	"time"

	"github.com/studykorea/uniclient/model"
)

// reviewDateLayouts are tried in order when parsing review timestamps.
var reviewDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Review maps one raw review record into the canonical shape. Unlike
// University it never fails: a nil or junk payload yields a zero-valued
// review, since reviews are always fetched in a degrade-to-empty path.
func Review(raw map[string]any) model.Review {
	if raw == nil {
		return model.Review{Pros: []string{}, Cons: []string{}, Date: time.Now()}
	}

	r := model.Review{
		ID:           intAt(raw, "id"),
		UniversityID: intAt(raw, "universityId", "university_id"),
		Author:       stringAt(raw, "author", "author_name", "authorName"),
		Rating:       floatAt(raw, "rating"),
		Content:      stringAt(raw, "content", "comment"),

		ProgramStudied:  stringAt(raw, "programStudied", "program_studied"),
		YearOfStudy:     stringAt(raw, "yearOfStudy", "year_of_study"),
		IsInternational: boolAt(raw, "isInternational", "is_international"),

		Pros: tokens(raw["pros"]),
		Cons: tokens(raw["cons"]),
	}

	r.Date = reviewDate(raw)
	return r
}

// ReviewSlice normalizes a list of raw reviews.
func ReviewSlice(items []map[string]any) []model.Review {
	out := make([]model.Review, 0, len(items))
	for _, raw := range items {
		out = append(out, Review(raw))
	}
	return out
}

// reviewDate parses the first parseable timestamp among the date keys the
// backend uses, defaulting to now when none parse.
func reviewDate(raw map[string]any) time.Time {
	for _, key := range []string{"date", "createdAt", "created_at"} {
		s := stringAt(raw, key)
		if s == "" {
			continue
		}
		for _, layout := range reviewDateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t
			}
		}
	}
	return time.Now()
}

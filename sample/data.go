// Package sample is the embedded last-resort dataset. Whenever the backend
// is unreachable or returns an unusable payload, the data layer answers
// from here so the UI always has something to render. The dev mock API
// serves the same records over the real wire contract.
package sample

import (
	"sort"
	"strings"
	"time"

	"github.com/studykorea/uniclient/model"
)

var universities = []model.University{
	{
		ID: 1, Name: "Seoul National University", NameKorean: "서울대학교",
		Location: "Seoul", Established: 1946, Type: model.TypePublic,
		Website:     "https://en.snu.ac.kr/",
		Description: "Seoul National University is a national research university located in Seoul, South Korea. It is widely considered to be the most prestigious university in the country, with 16 colleges and 9 professional schools.",
		Ranking:     1, StudentCount: 27000, FacultyCount: 2500,
		HasInternationalPrograms: true,
		Images: []string{
			"https://placehold.co/600x400/3f51b5/ffffff?text=Seoul+National+University",
			"https://placehold.co/600x400/3f51b5/ffffff?text=SNU+Campus",
		},
		ImageURL:    "https://placehold.co/600x400/3f51b5/ffffff?text=Seoul+National+University",
		Departments: []string{"Liberal Arts", "Social Sciences", "Natural Sciences", "Engineering", "Medicine", "Agriculture", "Fine Arts", "Education", "Law", "Business Administration"},
		AdmissionRequirements: "TOPIK Level 4 or higher, Academic transcripts, Statement of purpose, Letters of recommendation",
		TuitionFees: &model.TuitionFees{
			Undergraduate: &model.FeePair{Domestic: 5000000, International: 7000000},
			Graduate:      &model.FeePair{Domestic: 6000000, International: 8000000},
			Currency:      "KRW",
		},
		CampusFacilities: []string{"Library", "Sports Center", "Student Union", "Dormitories", "Research Labs"},
		AverageRating:    4.7, ReviewCount: 1,
	},
	{
		ID: 2, Name: "Korea University", NameKorean: "고려대학교",
		Location: "Seoul", Established: 1905, Type: model.TypePrivate,
		Website:     "https://www.korea.edu/",
		Description: "Korea University is a private research university in Seoul, one of the oldest and most prestigious in the country, notable for its emphasis on legal education and research in international law.",
		Ranking:     3, StudentCount: 25000, FacultyCount: 2200,
		HasInternationalPrograms: true,
		Images: []string{
			"https://placehold.co/600x400/8e24aa/ffffff?text=Korea+University",
			"https://placehold.co/600x400/8e24aa/ffffff?text=KU+Campus",
		},
		ImageURL:    "https://placehold.co/600x400/8e24aa/ffffff?text=Korea+University",
		Departments: []string{"Liberal Arts", "Social Sciences", "Natural Sciences", "Engineering", "Medicine", "Business Administration", "Education", "International Studies"},
		AdmissionRequirements: "TOPIK Level 3 or higher, Academic transcripts, Statement of purpose, Letters of recommendation",
		TuitionFees: &model.TuitionFees{
			Undergraduate: &model.FeePair{Domestic: 5500000, International: 7500000},
			Graduate:      &model.FeePair{Domestic: 6500000, International: 8500000},
			Currency:      "KRW",
		},
		CampusFacilities: []string{"Library", "Sports Center", "Student Union", "Dormitories", "Research Labs", "Medical Center"},
		AverageRating:    4.5, ReviewCount: 1,
	},
	{
		ID: 3, Name: "Yonsei University", NameKorean: "연세대학교",
		Location: "Seoul", Established: 1885, Type: model.TypePrivate,
		Website:     "https://www.yonsei.ac.kr/en_sc/",
		Description: "Yonsei University is a private research university in Seoul, established in 1885 and part of the prestigious SKY universities.",
		Ranking:     2, StudentCount: 26000, FacultyCount: 2300,
		HasInternationalPrograms: true,
		Images: []string{
			"https://placehold.co/600x400/00897b/ffffff?text=Yonsei+University",
			"https://placehold.co/600x400/00897b/ffffff?text=Yonsei+Campus",
		},
		ImageURL:    "https://placehold.co/600x400/00897b/ffffff?text=Yonsei+University",
		Departments: []string{"Liberal Arts", "Social Sciences", "Natural Sciences", "Engineering", "Medicine", "Business Administration", "Theology", "Music"},
		AdmissionRequirements: "TOPIK Level 3 or higher, Academic transcripts, Statement of purpose, Letters of recommendation",
		TuitionFees: &model.TuitionFees{
			Undergraduate: &model.FeePair{Domestic: 5500000, International: 7500000},
			Graduate:      &model.FeePair{Domestic: 6500000, International: 8500000},
			Currency:      "KRW",
		},
		CampusFacilities: []string{"Library", "Sports Center", "Student Union", "Dormitories", "Research Labs", "Medical Center"},
		AverageRating:    4.6, ReviewCount: 1,
	},
	{
		ID: 4, Name: "KAIST", NameKorean: "한국과학기술원",
		Location: "Daejeon", Established: 1971, Type: model.TypePublic,
		Website:     "https://www.kaist.ac.kr/en/",
		Description: "The Korea Advanced Institute of Science and Technology is a national research university in Daejeon focused on science and engineering, regularly ranked among Asia's top technical institutions.",
		Ranking:     4, StudentCount: 10500, FacultyCount: 1300,
		HasInternationalPrograms: true,
		Images: []string{
			"https://placehold.co/600x400/e53935/ffffff?text=KAIST",
			"https://placehold.co/600x400/e53935/ffffff?text=KAIST+Campus",
		},
		ImageURL:    "https://placehold.co/600x400/e53935/ffffff?text=KAIST",
		Departments: []string{"Natural Sciences", "Engineering", "Computing", "Business and Technology Management", "Life Science"},
		AdmissionRequirements: "Academic transcripts, Statement of purpose, Letters of recommendation, English proficiency (TOEFL/IELTS)",
		TuitionFees: &model.TuitionFees{
			Undergraduate: &model.FeePair{Domestic: 3500000, International: 4500000},
			Graduate:      &model.FeePair{Domestic: 4000000, International: 5000000},
			Currency:      "KRW",
		},
		CampusFacilities: []string{"Library", "Sports Complex", "Dormitories", "Research Labs", "Startup Incubator"},
		AverageRating:    4.8,
	},
	{
		ID: 5, Name: "POSTECH", NameKorean: "포항공과대학교",
		Location: "Pohang", Established: 1986, Type: model.TypePrivate,
		Website:     "https://www.postech.ac.kr/eng/",
		Description: "Pohang University of Science and Technology is a private research university in Pohang dedicated to science and engineering, known for its small cohorts and research output per faculty member.",
		Ranking:     5, StudentCount: 3200, FacultyCount: 650,
		HasInternationalPrograms: true,
		Images: []string{
			"https://placehold.co/600x400/fb8c00/ffffff?text=POSTECH",
		},
		ImageURL:    "https://placehold.co/600x400/fb8c00/ffffff?text=POSTECH",
		Departments: []string{"Mathematics", "Physics", "Chemistry", "Life Sciences", "Materials Science", "Mechanical Engineering", "Electrical Engineering", "Computer Science"},
		AdmissionRequirements: "Academic transcripts, Statement of purpose, Letters of recommendation, English proficiency (TOEFL/IELTS)",
		TuitionFees: &model.TuitionFees{
			Undergraduate: &model.FeePair{Domestic: 2800000, International: 3600000},
			Graduate:      &model.FeePair{Domestic: 3200000, International: 4000000},
			Currency:      "KRW",
		},
		CampusFacilities: []string{"Library", "Sports Center", "Dormitories", "Research Labs", "Accelerator Laboratory"},
		AverageRating:    4.4,
	},
	{
		ID: 6, Name: "Hanyang University", NameKorean: "한양대학교",
		Location: "Seoul", Established: 1939, Type: model.TypePrivate,
		Website:     "https://www.hanyang.ac.kr/web/eng",
		Description: "Hanyang University is a private research university with campuses in Seoul and Ansan, historically strong in engineering and well connected to Korean industry.",
		Ranking:     7, StudentCount: 24000, FacultyCount: 1800,
		HasInternationalPrograms: true,
		Images: []string{
			"https://placehold.co/600x400/1e88e5/ffffff?text=Hanyang+University",
			"https://placehold.co/600x400/1e88e5/ffffff?text=Hanyang+Campus",
		},
		ImageURL:    "https://placehold.co/600x400/1e88e5/ffffff?text=Hanyang+University",
		Departments: []string{"Engineering", "Medicine", "Humanities", "Social Sciences", "Natural Sciences", "Business", "Music", "Nursing"},
		AdmissionRequirements: "TOPIK Level 3 or higher, Academic transcripts, Statement of purpose",
		TuitionFees: &model.TuitionFees{
			Undergraduate: &model.FeePair{Domestic: 5200000, International: 7200000},
			Graduate:      &model.FeePair{Domestic: 6200000, International: 8200000},
			Currency:      "KRW",
		},
		CampusFacilities: []string{"Library", "Sports Center", "Student Union", "Dormitories", "Research Labs", "Hospital"},
		AverageRating:    4.3,
	},
}

var reviews = []model.Review{
	{
		ID: 1, UniversityID: 1, Author: "David Kim",
		Date: time.Date(2023, 5, 15, 0, 0, 0, 0, time.UTC), Rating: 5,
		Content:        "My experience at Seoul National University was exceptional. The professors are world-class and the facilities are top-notch. I particularly enjoyed the international atmosphere and the various opportunities for research.",
		ProgramStudied: "Computer Science", YearOfStudy: "2020-2023", IsInternational: true,
		Pros: []string{"Excellent faculty", "Great research opportunities", "Beautiful campus"},
		Cons: []string{"Competitive environment", "High cost of living in Seoul"},
	},
	{
		ID: 2, UniversityID: 2, Author: "Jessica Park",
		Date: time.Date(2023, 6, 20, 0, 0, 0, 0, time.UTC), Rating: 4,
		Content:        "Korea University provided me with a well-rounded education. The business program is particularly strong, with good connections to industry. Campus life is vibrant with many clubs and activities.",
		ProgramStudied: "Business Administration", YearOfStudy: "2019-2023",
		Pros: []string{"Strong industry connections", "Active campus life", "Good career services"},
		Cons: []string{"Large class sizes", "Some outdated facilities"},
	},
	{
		ID: 3, UniversityID: 3, Author: "Michael Chen",
		Date: time.Date(2023, 4, 10, 0, 0, 0, 0, time.UTC), Rating: 5,
		Content:        "Yonsei University offers an excellent environment for international students. The Global Village program helped me adjust quickly. The curriculum is challenging but rewarding.",
		ProgramStudied: "International Studies", YearOfStudy: "2020-2024", IsInternational: true,
		Pros: []string{"Great support for international students", "Modern facilities", "Strong alumni network"},
		Cons: []string{"Heavy workload", "Expensive dormitories"},
	},
}

// Universities returns a fresh copy of the full sample set.
func Universities() []model.University {
	out := make([]model.University, 0, len(universities))
	for _, u := range universities {
		out = append(out, clone(u))
	}
	return out
}

// Find returns the sample record with the given id.
func Find(id int) (model.University, bool) {
	for _, u := range universities {
		if u.ID == id {
			return clone(u), true
		}
	}
	return model.University{}, false
}

// Reviews returns a fresh copy of every seed review.
func Reviews() []model.Review {
	out := make([]model.Review, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, cloneReview(r))
	}
	return out
}

// ReviewsFor returns the seed reviews for one university, possibly empty.
func ReviewsFor(universityID int) []model.Review {
	out := []model.Review{}
	for _, r := range reviews {
		if r.UniversityID == universityID {
			out = append(out, cloneReview(r))
		}
	}
	return out
}

// Locations returns the distinct locations across the sample set, sorted.
func Locations() []string {
	return distinct(func(u model.University) string { return u.Location })
}

// Types returns the distinct university types across the sample set, sorted.
func Types() []string {
	return distinct(func(u model.University) string { return u.Type })
}

// Filter applies the list filters client-side over the sample set. Empty
// arguments match everything; search is a case-insensitive substring match
// over name, Korean name, location and description.
func Filter(search, location, uniType string) []model.University {
	search = strings.ToLower(strings.TrimSpace(search))
	out := []model.University{}
	for _, u := range universities {
		if location != "" && !strings.EqualFold(u.Location, location) {
			continue
		}
		if uniType != "" && !strings.EqualFold(u.Type, uniType) {
			continue
		}
		if search != "" && !matches(u, search) {
			continue
		}
		out = append(out, clone(u))
	}
	return out
}

// TopRated returns up to limit sample universities sorted by rating
// descending.
func TopRated(limit int) []model.University {
	out := Universities()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].AverageRating > out[j].AverageRating
	})
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out
}

func matches(u model.University, search string) bool {
	for _, field := range []string{u.Name, u.NameKorean, u.Location, u.Description} {
		if strings.Contains(strings.ToLower(field), search) {
			return true
		}
	}
	return false
}

func distinct(field func(model.University) string) []string {
	seen := map[string]bool{}
	out := []string{}
	for _, u := range universities {
		v := field(u)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// clone deep-copies a record so callers can never mutate the sample set.
func clone(u model.University) model.University {
	out := u
	out.Images = append([]string(nil), u.Images...)
	out.Departments = append([]string(nil), u.Departments...)
	out.CampusFacilities = append([]string(nil), u.CampusFacilities...)
	if u.TuitionFees != nil {
		fees := *u.TuitionFees
		if u.TuitionFees.Undergraduate != nil {
			pair := *u.TuitionFees.Undergraduate
			fees.Undergraduate = &pair
		}
		if u.TuitionFees.Graduate != nil {
			pair := *u.TuitionFees.Graduate
			fees.Graduate = &pair
		}
		out.TuitionFees = &fees
	}
	return out
}

func cloneReview(r model.Review) model.Review {
	out := r
	out.Pros = append([]string(nil), r.Pros...)
	out.Cons = append([]string(nil), r.Cons...)
	return out
}

package model

// University is the canonical record every view component consumes. The
// backend is inconsistent about field naming and image shapes; raw payloads
// are reconciled into this shape by the normalize package and nothing
// downstream ever sees a raw payload.
type University struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	NameKorean  string `json:"nameKorean,omitempty"`
	Location    string `json:"location"`
	Established int    `json:"established"`
	Type        string `json:"type"` // "Public" or "Private"
	Website     string `json:"website"`
	Description string `json:"description"`

	Ranking               int          `json:"ranking,omitempty"`
	StudentCount          int          `json:"studentCount,omitempty"`
	FacultyCount          int          `json:"facultyCount,omitempty"`
	AdmissionRequirements string       `json:"admissionRequirements,omitempty"`
	TuitionFees           *TuitionFees `json:"tuitionFees,omitempty"`

	HasInternationalPrograms bool     `json:"hasInternationalPrograms"`
	Departments              []string `json:"departments"`
	CampusFacilities         []string `json:"campusFacilities"`

	// Images is never nil after normalization; ImageURL is the first entry
	// when there is one. Insertion order is display order.
	Images   []string `json:"images"`
	ImageURL string   `json:"imageUrl,omitempty"`

	AverageRating float64 `json:"averageRating,omitempty"`
	ReviewCount   int     `json:"reviewCount,omitempty"`
}

// TuitionFees groups fee amounts by study level and student origin.
type TuitionFees struct {
	Undergraduate *FeePair `json:"undergraduate,omitempty"`
	Graduate      *FeePair `json:"graduate,omitempty"`
	Currency      string   `json:"currency"`
}

// FeePair holds the domestic and international amounts for one study level.
type FeePair struct {
	Domestic      int `json:"domestic"`
	International int `json:"international"`
}

// PagedUniversities mirrors the backend's page object after normalization.
type PagedUniversities struct {
	Content       []University `json:"content"`
	Page          int          `json:"page"`
	Size          int          `json:"size"`
	TotalElements int          `json:"totalElements"`
	TotalPages    int          `json:"totalPages"`
}

// Accepted values for the type filter.
const (
	TypePublic  = "Public"
	TypePrivate = "Private"
)

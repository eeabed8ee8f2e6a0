package site

// ProjectCategory is the lifecycle bucket a development project is
// presented under on the public site.
type ProjectCategory string

const (
	CategoryOngoing   ProjectCategory = "ongoing"
	CategoryCompleted ProjectCategory = "completed"
	CategoryUpcoming  ProjectCategory = "upcoming"
)

func (c ProjectCategory) IsValid() bool {
	switch c {
	case CategoryOngoing, CategoryCompleted, CategoryUpcoming:
		return true
	default:
		return false
	}
}

type Project struct {
	ProjectID           string          `json:"projectID"`
	Title               string          `json:"title"`
	Location            string          `json:"location"`
	Category            ProjectCategory `json:"category"`
	CoverImage          string          `json:"coverImage"`
	Images              []string        `json:"images"`
	Description         string          `json:"description"`
	Features            []string        `json:"features"`
	Amenities           []string        `json:"amenities"`
	FloorPlans          []string        `json:"floorPlans,omitempty"`
	EstimatedCompletion string          `json:"estimatedCompletion,omitempty"`
	Price               string          `json:"price"`
}

type OfferedService struct {
	ServiceID   string `json:"serviceID"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type TeamMember struct {
	MemberID string `json:"memberID"`
	Name     string `json:"name"`
	Position string `json:"position"`
	Image    string `json:"image"`
	Bio      string `json:"bio"`
}

type Testimonial struct {
	TestimonialID string `json:"testimonialID"`
	Name          string `json:"name"`
	Position      string `json:"position"`
	Company       string `json:"company"`
	Image         string `json:"image"`
	Testimonial   string `json:"testimonial"`
}

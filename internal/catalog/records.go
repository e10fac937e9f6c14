package catalog

import (
	"time"
)

// Field names addressable through GetStringField and GetNumberField.
const (
	FieldID          = "id"
	FieldTitle       = "title"
	FieldName        = "name"
	FieldDescription = "description"
	FieldCompany     = "company"
	FieldCategory    = "category"
	FieldRegion      = "region"
	FieldLocation    = "location"
	FieldStream      = "stream"
	FieldExam        = "exam"
	FieldBio         = "bio"
	FieldUserID      = "user_id"

	FieldAmount  = "amount"
	FieldStipend = "stipend"
	FieldFees    = "fees"
	FieldRank    = "rank"
	FieldRating  = "rating"
)

// Search fields used by the listing commands for each record kind.
var (
	ScholarshipSearchFields    = []string{FieldTitle, FieldDescription}
	InternshipSearchFields     = []string{FieldTitle, FieldCompany, FieldDescription}
	CollegeSearchFields        = []string{FieldName, FieldDescription}
	CoachingCenterSearchFields = []string{FieldName, FieldExam, FieldDescription}
	ProfileSearchFields        = []string{FieldName, FieldBio}
)

type Scholarship struct {
	ID             string    `json:"id" mapstructure:"id"`
	Title          string    `json:"title" mapstructure:"title"`
	Description    string    `json:"description" mapstructure:"description"`
	Amount         int       `json:"amount" mapstructure:"amount"`
	Deadline       time.Time `json:"deadline" mapstructure:"deadline"`
	Category       string    `json:"category" mapstructure:"category"`
	Region         string    `json:"region" mapstructure:"region"`
	Eligibility    []string  `json:"eligibility,omitempty" mapstructure:"eligibility"`
	ApplicationURL string    `json:"application_url,omitempty" mapstructure:"application_url"`
	IsActive       bool      `json:"is_active" mapstructure:"is_active"`
}

type Internship struct {
	ID             string   `json:"id" mapstructure:"id"`
	Title          string   `json:"title" mapstructure:"title"`
	Company        string   `json:"company" mapstructure:"company"`
	Description    string   `json:"description" mapstructure:"description"`
	Location       string   `json:"location" mapstructure:"location"`
	Stipend        int      `json:"stipend" mapstructure:"stipend"`
	Duration       string   `json:"duration" mapstructure:"duration"`
	Requirements   []string `json:"requirements,omitempty" mapstructure:"requirements"`
	ApplicationURL string   `json:"application_url,omitempty" mapstructure:"application_url"`
	IsActive       bool     `json:"is_active" mapstructure:"is_active"`
}

type College struct {
	ID          string  `json:"id" mapstructure:"id"`
	Name        string  `json:"name" mapstructure:"name"`
	Location    string  `json:"location" mapstructure:"location"`
	Stream      string  `json:"stream" mapstructure:"stream"`
	Fees        int     `json:"fees" mapstructure:"fees"`
	Rank        int     `json:"rank" mapstructure:"rank"`
	Rating      float64 `json:"rating" mapstructure:"rating"`
	Description string  `json:"description" mapstructure:"description"`
	Website     string  `json:"website,omitempty" mapstructure:"website"`
	IsActive    bool    `json:"is_active" mapstructure:"is_active"`
}

type CoachingCenter struct {
	ID          string  `json:"id" mapstructure:"id"`
	Name        string  `json:"name" mapstructure:"name"`
	Location    string  `json:"location" mapstructure:"location"`
	Exam        string  `json:"exam" mapstructure:"exam"`
	Fees        int     `json:"fees" mapstructure:"fees"`
	Rating      float64 `json:"rating" mapstructure:"rating"`
	Description string  `json:"description" mapstructure:"description"`
	Website     string  `json:"website,omitempty" mapstructure:"website"`
	IsActive    bool    `json:"is_active" mapstructure:"is_active"`
}

type Badge struct {
	ID          string `json:"id" mapstructure:"id"`
	Name        string `json:"name" mapstructure:"name"`
	Icon        string `json:"icon,omitempty" mapstructure:"icon"`
	Color       string `json:"color,omitempty" mapstructure:"color"`
	Description string `json:"description,omitempty" mapstructure:"description"`
}

// Profile is an EduSwipe card of a user looking for peers.
type Profile struct {
	ID             string    `json:"id" mapstructure:"id"`
	UserID         string    `json:"user_id" mapstructure:"user_id"`
	Name           string    `json:"name" mapstructure:"name"`
	Avatar         string    `json:"avatar,omitempty" mapstructure:"avatar"`
	Skills         []string  `json:"skills,omitempty" mapstructure:"skills"`
	VerifiedSkills []string  `json:"verified_skills,omitempty" mapstructure:"verified_skills"`
	Location       string    `json:"location" mapstructure:"location"`
	Goals          []string  `json:"goals,omitempty" mapstructure:"goals"`
	Stream         string    `json:"stream" mapstructure:"stream"`
	Badges         []Badge   `json:"badges,omitempty" mapstructure:"badges"`
	Bio            string    `json:"bio,omitempty" mapstructure:"bio"`
	IsActive       bool      `json:"is_active" mapstructure:"is_active"`
	CreatedAt      time.Time `json:"created_at" mapstructure:"created_at"`
}

type Role string

const (
	RoleSchool  Role = "school"
	RoleCollege Role = "college"
)

// User is the account behind a session. Rank and Budget are optional: nil
// means the user never provided them.
type User struct {
	ID       string   `json:"id" mapstructure:"id"`
	Email    string   `json:"email" mapstructure:"email"`
	Name     string   `json:"name" mapstructure:"name"`
	Role     Role     `json:"role" mapstructure:"role"`
	Rank     *int     `json:"rank,omitempty" mapstructure:"rank"`
	Budget   *int     `json:"budget,omitempty" mapstructure:"budget"`
	Language string   `json:"language" mapstructure:"language"`
	Goals    []string `json:"goals,omitempty" mapstructure:"goals"`
	Stream   string   `json:"stream,omitempty" mapstructure:"stream"`
	Location string   `json:"location,omitempty" mapstructure:"location"`
}

type MatchStatus string

const (
	MatchPending  MatchStatus = "pending"
	MatchAccepted MatchStatus = "accepted"
	MatchRejected MatchStatus = "rejected"
)

type Match struct {
	ID        string      `json:"id"`
	User1ID   string      `json:"user1_id"`
	User2ID   string      `json:"user2_id"`
	Status    MatchStatus `json:"status"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// Traits is the part of a profile the compatibility score looks at.
type Traits struct {
	Location string
	Stream   string
	Goals    []string
	Skills   []string
}

func (p *Profile) Traits() Traits {
	return Traits{
		Location: p.Location,
		Stream:   p.Stream,
		Goals:    p.Goals,
		Skills:   p.Skills,
	}
}

// Traits of a user carry no skills: only EduSwipe profiles list them.
func (u *User) Traits() Traits {
	return Traits{
		Location: u.Location,
		Stream:   u.Stream,
		Goals:    u.Goals,
	}
}

// EduCoin is one entry of a user's reward ledger.
type EduCoin struct {
	ID          string    `json:"id" mapstructure:"id"`
	UserID      string    `json:"user_id" mapstructure:"user_id"`
	Amount      int       `json:"amount" mapstructure:"amount"`
	Source      string    `json:"source" mapstructure:"source"`
	Description string    `json:"description,omitempty" mapstructure:"description"`
	CreatedAt   time.Time `json:"created_at" mapstructure:"created_at"`
}

type RoadmapStep struct {
	ID          string     `json:"id" mapstructure:"id"`
	Title       string     `json:"title" mapstructure:"title"`
	Description string     `json:"description,omitempty" mapstructure:"description"`
	Completed   bool       `json:"completed" mapstructure:"completed"`
	DueDate     *time.Time `json:"due_date,omitempty" mapstructure:"due_date"`
	CompletedAt *time.Time `json:"completed_at,omitempty" mapstructure:"completed_at"`
}

// Roadmap is a user's admission plan. Progress is a stored percentage and is
// not derived from the steps.
type Roadmap struct {
	ID        string        `json:"id" mapstructure:"id"`
	UserID    string        `json:"user_id" mapstructure:"user_id"`
	Title     string        `json:"title" mapstructure:"title"`
	Steps     []RoadmapStep `json:"steps" mapstructure:"steps"`
	Progress  int           `json:"progress" mapstructure:"progress"`
	CreatedAt time.Time     `json:"created_at" mapstructure:"created_at"`
	UpdatedAt time.Time     `json:"updated_at" mapstructure:"updated_at"`
}

// CompletedSteps returns how many steps are done.
func (r *Roadmap) CompletedSteps() int {
	done := 0
	for _, step := range r.Steps {
		if step.Completed {
			done++
		}
	}
	return done
}

package api

import "github.com/s-stratton/simplyjobs/internal/core/filter"

// Job is a posted listing. Display-only from the engine's perspective.
type Job struct {
	ID          int    `json:"id"`
	Company     string `json:"company"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Salary      int    `json:"salary"`
	JobType     string `json:"job_type"`
	CreatedAt   string `json:"created_at"`
}

// Education is one schooling entry on a jobseeker profile.
type Education struct {
	School       string `json:"school"`
	Degree       string `json:"degree"`
	FieldOfStudy string `json:"field_of_study"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
}

// Experience is one employment entry on a jobseeker profile.
type Experience struct {
	Title       string `json:"title"`
	JobType     string `json:"job_type"`
	Company     string `json:"company"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Description string `json:"description"`
}

// Profile is a jobseeker profile as served by /api/profile/{username}/.
type Profile struct {
	FirstName   string       `json:"first_name"`
	LastName    string       `json:"last_name"`
	Email       string       `json:"email"`
	PhoneNumber string       `json:"phone_number"`
	Bio         string       `json:"bio"`
	Resume      string       `json:"resume"`
	City        string       `json:"city"`
	Country     string       `json:"country"`
	Educations  []Education  `json:"educations"`
	Experiences []Experience `json:"experiences"`
}

// Complete reports whether the mandatory fields the profile gate
// requires are present.
func (p Profile) Complete() bool {
	return p.FirstName != "" && p.LastName != "" && p.Email != "" && p.Resume != ""
}

// DisplayName joins the profile name fields.
func (p Profile) DisplayName() string {
	switch {
	case p.FirstName == "":
		return p.LastName
	case p.LastName == "":
		return p.FirstName
	default:
		return p.FirstName + " " + p.LastName
	}
}

// Applicant is one application to a job, with the applicant's profile
// nested, as served by /api/jobs/{id}/applicants/.
type Applicant struct {
	ID        int           `json:"id"`
	JobSeeker Profile       `json:"jobseeker"`
	Status    filter.Status `json:"status"`
	AppliedAt string        `json:"applied_at"`
}

// ItemID implements filter.Item.
func (a Applicant) ItemID() int { return a.ID }

// ItemStatus implements filter.Item.
func (a Applicant) ItemStatus() filter.Status { return a.Status }

// Application is one of the jobseeker's own applications, with the job
// nested, as served by /api/applied/.
type Application struct {
	ID        int           `json:"id"`
	Job       Job           `json:"job"`
	Status    filter.Status `json:"status"`
	AppliedAt string        `json:"applied_at"`
}

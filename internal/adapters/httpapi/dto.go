package httpapi

import (
	"time"

	"regportal/internal/domain/entities"
)

type registrationRequest struct {
	Email       string `json:"email"`
	StudentName string `json:"student_name"`
	CollegeName string `json:"college_name"`
	Department  string `json:"department"`
	Year        int    `json:"year"`
	Phone       string `json:"phone"`
	TeamMember1 string `json:"team_member1"`
	TeamMember2 string `json:"team_member2"`
	TeamMember3 string `json:"team_member3"`
	EventName   string `json:"event_name"`
}

func (r registrationRequest) toDomain() entities.Registration {
	return entities.Registration{
		Email:       r.Email,
		StudentName: r.StudentName,
		CollegeName: r.CollegeName,
		Department:  r.Department,
		Year:        r.Year,
		Phone:       r.Phone,
		TeamMember1: r.TeamMember1,
		TeamMember2: r.TeamMember2,
		TeamMember3: r.TeamMember3,
		EventName:   r.EventName,
	}
}

type registrationResponse struct {
	ID               uint      `json:"id"`
	Email            string    `json:"email"`
	StudentName      string    `json:"student_name"`
	CollegeName      string    `json:"college_name"`
	Department       string    `json:"department"`
	Year             int       `json:"year"`
	Phone            string    `json:"phone,omitempty"`
	TeamMember1      string    `json:"team_member1"`
	TeamMember2      string    `json:"team_member2,omitempty"`
	TeamMember3      string    `json:"team_member3,omitempty"`
	EventName        string    `json:"event_name"`
	UploadedFilePath string    `json:"uploaded_file_path,omitempty"`
	DownloadLink     string    `json:"download_link,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

func toResponse(reg entities.Registration) registrationResponse {
	return registrationResponse{
		ID:               reg.ID,
		Email:            reg.Email,
		StudentName:      reg.StudentName,
		CollegeName:      reg.CollegeName,
		Department:       reg.Department,
		Year:             reg.Year,
		Phone:            reg.Phone,
		TeamMember1:      reg.TeamMember1,
		TeamMember2:      reg.TeamMember2,
		TeamMember3:      reg.TeamMember3,
		EventName:        reg.EventName,
		UploadedFilePath: reg.UploadedFilePath,
		CreatedAt:        reg.CreatedAt,
	}
}

type eventResponse struct {
	Name           string `json:"name"`
	Category       string `json:"category"`
	MaxTeamMembers int    `json:"max_team_members"`
	RequiresFile   bool   `json:"requires_file"`
	Description    string `json:"description,omitempty"`
	Open           bool   `json:"open"`
}

type statsResponse struct {
	Total       int            `json:"total"`
	Ceiling     int            `json:"ceiling_per_category"`
	PerCategory map[string]int `json:"per_category"`
	PerEvent    map[string]int `json:"per_event"`
	Degraded    bool           `json:"degraded,omitempty"`
}

package entities

import "time"

// Registration is one participant/team submission for a catalog event.
// A registration is created once by a successful submit and never updated
// or deleted; ID and CreatedAt are assigned by the store on insert.
type Registration struct {
	ID               uint
	Email            string
	StudentName      string
	CollegeName      string
	Department       string
	Year             int
	Phone            string // optional, exactly 10 digits when present
	TeamMember1      string
	TeamMember2      string
	TeamMember3      string
	EventName        string
	UploadedFilePath string // optional, set only for events requiring a file
	CreatedAt        time.Time
}

// TeamSize counts the non-empty team member fields.
func (r *Registration) TeamSize() int {
	n := 0
	for _, m := range []string{r.TeamMember1, r.TeamMember2, r.TeamMember3} {
		if m != "" {
			n++
		}
	}
	return n
}

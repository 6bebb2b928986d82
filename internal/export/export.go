// Package export renders the admin view of the registration ledger as a
// spreadsheet or a paginated PDF table. Pure presentation over a loaded
// sequence; nothing here touches the store.
package export

import (
	"strconv"
	"time"

	"regportal/internal/domain/entities"
)

// Headers is the column set of both export formats, matching the admin table.
var Headers = []string{
	"Email", "Student Name", "College", "Department", "Year", "Phone",
	"Team Member 1", "Team Member 2", "Team Member 3",
	"Event Name", "Event Category", "Uploaded File", "Created At",
}

func row(reg entities.Registration, catalog entities.Catalog) []string {
	category := ""
	if cfg := catalog.Get(reg.EventName); cfg != nil {
		category = string(cfg.Category)
	}
	return []string{
		reg.Email, reg.StudentName, reg.CollegeName, reg.Department,
		strconv.Itoa(reg.Year), reg.Phone,
		reg.TeamMember1, reg.TeamMember2, reg.TeamMember3,
		reg.EventName, category, reg.UploadedFilePath,
		reg.CreatedAt.Format(time.RFC3339),
	}
}

package database

import (
	"regportal/internal/domain/entities"
)

// registrationColumns is the select list shared by every registration query.
const registrationColumns = `id, email, student_name, college_name, department, year,
	phone, team_member1, team_member2, team_member3, event_name, uploaded_file_path, created_at`

// scanRegistration scans one row in registrationColumns order.
func scanRegistration(scanner interface{ Scan(...any) error }) (entities.Registration, error) {
	var (
		id  int64
		reg entities.Registration
	)
	err := scanner.Scan(
		&id, &reg.Email, &reg.StudentName, &reg.CollegeName, &reg.Department, &reg.Year,
		&reg.Phone, &reg.TeamMember1, &reg.TeamMember2, &reg.TeamMember3,
		&reg.EventName, &reg.UploadedFilePath, &reg.CreatedAt,
	)
	reg.ID = uint(id)
	return reg, err
}

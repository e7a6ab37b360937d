package models

import "time"

// EnrollmentStatusInProgress is the initial academic status of a new
// enrollment. No other transitions exist in this scope.
const EnrollmentStatusInProgress = "Cursando"

// Enrollment ("matrícula") links one student to one class group for one
// academic year. Records are immutable once created.
type Enrollment struct {
	ID           int       `json:"id"`
	StudentID    int       `json:"student_id"`
	ClassGroupID int       `json:"class_group_id"`
	// ClassCode duplicates the class group's code for display.
	ClassCode    string    `json:"class_code"`
	AcademicYear int       `json:"academic_year"`
	EnrolledAt   time.Time `json:"enrolled_at"`
	Status       string    `json:"status"`
}

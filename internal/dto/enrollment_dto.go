package dto

import (
	"time"

	"github.com/sgde-edu/sgde-api/internal/models"
)

// EnrollmentCreateRequest is the payload for enrolling a student into a
// class group ("enturmação").
type EnrollmentCreateRequest struct {
	StudentID    int `form:"student_id" json:"student_id" validate:"required,gt=0"`
	ClassGroupID int `form:"class_group_id" json:"class_group_id" validate:"required,gt=0"`
}

// EnrollmentResponse is the serialized enrollment record.
type EnrollmentResponse struct {
	ID           int       `json:"id"`
	StudentID    int       `json:"student_id"`
	ClassGroupID int       `json:"class_group_id"`
	ClassCode    string    `json:"class_code"`
	AcademicYear int       `json:"academic_year"`
	EnrolledAt   time.Time `json:"enrolled_at"`
	Status       string    `json:"status"`
}

// NewEnrollmentResponse converts a model into a DTO.
func NewEnrollmentResponse(model models.Enrollment) EnrollmentResponse {
	return EnrollmentResponse{
		ID:           model.ID,
		StudentID:    model.StudentID,
		ClassGroupID: model.ClassGroupID,
		ClassCode:    model.ClassCode,
		AcademicYear: model.AcademicYear,
		EnrolledAt:   model.EnrolledAt,
		Status:       model.Status,
	}
}

// NewEnrollmentResponseSlice converts a slice of models into DTOs.
func NewEnrollmentResponseSlice(enrollments []models.Enrollment) []EnrollmentResponse {
	responses := make([]EnrollmentResponse, 0, len(enrollments))
	for _, enrollment := range enrollments {
		responses = append(responses, NewEnrollmentResponse(enrollment))
	}
	return responses
}

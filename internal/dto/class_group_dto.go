package dto

import "github.com/sgde-edu/sgde-api/internal/models"

// ClassGroupCreateRequest is the payload for creating a class group. The
// room must already exist; its capacity is snapshotted as the class limit.
type ClassGroupCreateRequest struct {
	AcademicYear int    `form:"academic_year" json:"academic_year" validate:"required"`
	LevelCode    int    `form:"level_code" json:"level_code" validate:"required"`
	Shift        string `form:"shift" json:"shift" validate:"required,oneof=Manhã Tarde Noite Integral"`
	RoomID       int    `form:"room_id" json:"room_id" validate:"required,gt=0"`
}

// ClassGroupResponse is the serialized class group record.
type ClassGroupResponse struct {
	ID             int    `json:"id"`
	Code           string `json:"code"`
	AcademicYear   int    `json:"academic_year"`
	LevelCode      int    `json:"level_code"`
	LevelLabel     string `json:"level_label"`
	Shift          string `json:"shift"`
	RoomID         int    `json:"room_id"`
	MaxCapacity    int    `json:"max_capacity"`
	EnrolledCount  int    `json:"enrolled_count"`
	AvailableSeats int    `json:"available_seats"`
}

// NewClassGroupResponse converts a model into a DTO.
func NewClassGroupResponse(model models.ClassGroup) ClassGroupResponse {
	return ClassGroupResponse{
		ID:             model.ID,
		Code:           model.Code,
		AcademicYear:   model.AcademicYear,
		LevelCode:      model.LevelCode,
		LevelLabel:     model.LevelLabel,
		Shift:          model.Shift,
		RoomID:         model.RoomID,
		MaxCapacity:    model.MaxCapacity,
		EnrolledCount:  model.EnrolledCount,
		AvailableSeats: model.AvailableSeats(),
	}
}

// NewClassGroupResponseSlice converts a slice of models into DTOs.
func NewClassGroupResponseSlice(classes []models.ClassGroup) []ClassGroupResponse {
	responses := make([]ClassGroupResponse, 0, len(classes))
	for _, class := range classes {
		responses = append(responses, NewClassGroupResponse(class))
	}
	return responses
}

// LevelResponse is a curriculum stage option offered by the class form.
type LevelResponse struct {
	Code  int    `json:"code"`
	Label string `json:"label"`
}

// NewLevelResponseSlice converts the level table into DTOs.
func NewLevelResponseSlice(levels []models.Level) []LevelResponse {
	responses := make([]LevelResponse, 0, len(levels))
	for _, level := range levels {
		responses = append(responses, LevelResponse{Code: level.Code, Label: level.Label})
	}
	return responses
}

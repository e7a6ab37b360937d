package dto

import "github.com/sgde-edu/sgde-api/internal/models"

// RoomCreateRequest is the payload for registering a physical room. When
// Capacity is omitted the suggested value derived from the floor area is
// used; an explicit value overrides the suggestion.
type RoomCreateRequest struct {
	Name           string  `form:"name" json:"name" validate:"required"`
	Number         int     `form:"number" json:"number" validate:"gte=0,lte=999"`
	ClimateControl bool    `form:"climate_control" json:"climate_control"`
	FloorArea      float64 `form:"floor_area" json:"floor_area" validate:"required,gt=0"`
	Capacity       *int    `form:"capacity" json:"capacity" validate:"omitempty,gte=0"`
	AttachmentName string  `form:"attachment_name" json:"attachment_name"`
}

// RoomResponse is the serialized room record.
type RoomResponse struct {
	ID             int     `json:"id"`
	Name           string  `json:"name"`
	Number         int     `json:"number"`
	ClimateControl bool    `json:"climate_control"`
	FloorArea      float64 `json:"floor_area"`
	Capacity       int     `json:"capacity"`
	AttachmentName string  `json:"attachment_name,omitempty"`
}

// NewRoomResponse converts a model into a DTO.
func NewRoomResponse(model models.Room) RoomResponse {
	return RoomResponse{
		ID:             model.ID,
		Name:           model.Name,
		Number:         model.Number,
		ClimateControl: model.ClimateControl,
		FloorArea:      model.FloorArea,
		Capacity:       model.Capacity,
		AttachmentName: model.AttachmentName,
	}
}

// NewRoomResponseSlice converts a slice of models into DTOs.
func NewRoomResponseSlice(rooms []models.Room) []RoomResponse {
	responses := make([]RoomResponse, 0, len(rooms))
	for _, room := range rooms {
		responses = append(responses, NewRoomResponse(room))
	}
	return responses
}

// CapacitySuggestionResponse carries the derived capacity for a floor area,
// shown next to the capacity field while the operator fills the form.
type CapacitySuggestionResponse struct {
	FloorArea         float64 `json:"floor_area"`
	SuggestedCapacity int     `json:"suggested_capacity"`
}

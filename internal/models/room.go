package models

// Room represents a physical school space ("dependência") with a floor area
// and a derived occupant capacity. Rooms are append-only in this scope.
type Room struct {
	ID             int     `json:"id"`
	Name           string  `json:"name"`
	Number         int     `json:"number"`
	ClimateControl bool    `json:"climate_control"`
	FloorArea      float64 `json:"floor_area"`
	Capacity       int     `json:"capacity"`
	// AttachmentName keeps only the original filename of an uploaded photo
	// or floor plan. File content is never stored or read.
	AttachmentName string `json:"attachment_name,omitempty"`
}

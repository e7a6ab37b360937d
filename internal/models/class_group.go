package models

// Shift values accepted for a class group's offering schedule.
const (
	ShiftMorning   = "Manhã"
	ShiftAfternoon = "Tarde"
	ShiftEvening   = "Noite"
	ShiftFullTime  = "Integral"
)

// Shifts returns the accepted offering schedules.
func Shifts() []string {
	return []string{ShiftMorning, ShiftAfternoon, ShiftEvening, ShiftFullTime}
}

// ClassGroup represents a cohort ("turma") bound to one academic year, level,
// shift and room. MaxCapacity is a snapshot of the room's capacity taken at
// creation time, not a live reference.
type ClassGroup struct {
	ID            int    `json:"id"`
	Code          string `json:"code"`
	AcademicYear  int    `json:"academic_year"`
	LevelCode     int    `json:"level_code"`
	LevelLabel    string `json:"level_label"`
	Shift         string `json:"shift"`
	RoomID        int    `json:"room_id"`
	MaxCapacity   int    `json:"max_capacity"`
	EnrolledCount int    `json:"enrolled_count"`
}

// AvailableSeats reports how many students can still be enrolled.
func (c ClassGroup) AvailableSeats() int {
	seats := c.MaxCapacity - c.EnrolledCount
	if seats < 0 {
		return 0
	}
	return seats
}

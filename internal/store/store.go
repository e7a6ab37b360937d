// Package store implements the session-scoped in-memory store backing the
// repositories. One Store is constructed per running session and discarded on
// shutdown; there is no durable persistence layer.
package store

import (
	"errors"
	"sync"

	"github.com/sgde-edu/sgde-api/internal/models"
)

// ErrNotFound indicates a referenced record does not exist in the store.
var ErrNotFound = errors.New("record not found")

// ErrClassGroupFull indicates the class group is at maximum capacity.
var ErrClassGroupFull = errors.New("class group at maximum capacity")

// ErrDuplicateClassCode indicates a class group with the same code exists.
var ErrDuplicateClassCode = errors.New("class group code already exists")

// ErrDuplicateEnrollment indicates the student is already enrolled in the
// class group.
var ErrDuplicateEnrollment = errors.New("student already enrolled in class group")

// Store owns every collection of the session. A single mutex serializes all
// top-level operations so the capacity and counter invariants hold even when
// the store is shared across concurrent requests. Collections are
// append-only; ids are sequential, 1-based and never reused.
type Store struct {
	mu sync.Mutex

	school    *models.SchoolInfo
	rooms     []models.Room
	students  []models.Student
	classes   []models.ClassGroup
	enrolls   []models.Enrollment

	nextRoomID    int
	nextStudentID int
	nextClassID   int
	nextEnrollID  int
}

// New constructs an empty session store.
func New() *Store {
	return &Store{
		nextRoomID:    1,
		nextStudentID: 1,
		nextClassID:   1,
		nextEnrollID:  1,
	}
}

// SaveSchool replaces the institutional singleton wholesale.
func (s *Store) SaveSchool(info models.SchoolInfo) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.school = &info
}

// School returns the institutional record, if one has been saved.
func (s *Store) School() (models.SchoolInfo, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.school == nil {
		return models.SchoolInfo{}, false
	}
	return *s.school, true
}

// AddRoom appends a room, assigning its identity.
func (s *Store) AddRoom(room models.Room) models.Room {
	s.mu.Lock()
	defer s.mu.Unlock()

	room.ID = s.nextRoomID
	s.nextRoomID++
	s.rooms = append(s.rooms, room)
	return room
}

// Rooms returns every room in insertion order.
func (s *Store) Rooms() []models.Room {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Room, len(s.rooms))
	copy(out, s.rooms)
	return out
}

// RoomByID resolves a room by identity.
func (s *Store) RoomByID(id int) (models.Room, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, room := range s.rooms {
		if room.ID == id {
			return room, true
		}
	}
	return models.Room{}, false
}

// AddStudent appends a student, assigning their identity.
func (s *Store) AddStudent(student models.Student) models.Student {
	s.mu.Lock()
	defer s.mu.Unlock()

	student.ID = s.nextStudentID
	s.nextStudentID++
	s.students = append(s.students, student)
	return student
}

// Students returns every student in insertion order.
func (s *Store) Students() []models.Student {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Student, len(s.students))
	copy(out, s.students)
	return out
}

// StudentByID resolves a student by identity.
func (s *Store) StudentByID(id int) (models.Student, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.studentIndex(id); i >= 0 {
		return s.students[i], true
	}
	return models.Student{}, false
}

// SetRegistrationNumber assigns the student's registration number (NRA).
// Regenerating overwrites the previous value; this is the only mutable
// student field.
func (s *Store) SetRegistrationNumber(studentID int, nra string) (models.Student, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.studentIndex(studentID)
	if i < 0 {
		return models.Student{}, ErrNotFound
	}
	s.students[i].RegistrationNumber = nra
	return s.students[i], nil
}

func (s *Store) studentIndex(id int) int {
	for i := range s.students {
		if s.students[i].ID == id {
			return i
		}
	}
	return -1
}

// NextClassSequence returns the sequence number the next class group will
// receive, used when deriving its code.
func (s *Store) NextClassSequence() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.classes) + 1
}

// AddClassGroup appends a class group, assigning its identity. A duplicate
// code is rejected with ErrDuplicateClassCode.
func (s *Store) AddClassGroup(class models.ClassGroup) (models.ClassGroup, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.classes {
		if existing.Code == class.Code {
			return models.ClassGroup{}, ErrDuplicateClassCode
		}
	}

	class.ID = s.nextClassID
	s.nextClassID++
	class.EnrolledCount = 0
	s.classes = append(s.classes, class)
	return class, nil
}

// ClassGroups returns every class group in insertion order.
func (s *Store) ClassGroups() []models.ClassGroup {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.ClassGroup, len(s.classes))
	copy(out, s.classes)
	return out
}

// ClassGroupByID resolves a class group by identity.
func (s *Store) ClassGroupByID(id int) (models.ClassGroup, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.classIndex(id); i >= 0 {
		return s.classes[i], true
	}
	return models.ClassGroup{}, false
}

func (s *Store) classIndex(id int) int {
	for i := range s.classes {
		if s.classes[i].ID == id {
			return i
		}
	}
	return -1
}

// CreateEnrollment commits an enrollment. The capacity gate, the duplicate
// (student, class) check, the record append and the enrolled-count increment
// all happen under one critical section, so no observer can see the record
// without the counter or the counter past the class capacity. The class code
// and academic year are copied from the class group at commit time.
func (s *Store) CreateEnrollment(enrollment models.Enrollment) (models.Enrollment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.classIndex(enrollment.ClassGroupID)
	if i < 0 {
		return models.Enrollment{}, ErrNotFound
	}
	class := &s.classes[i]

	for _, existing := range s.enrolls {
		if existing.StudentID == enrollment.StudentID && existing.ClassGroupID == class.ID {
			return models.Enrollment{}, ErrDuplicateEnrollment
		}
	}
	if class.EnrolledCount >= class.MaxCapacity {
		return models.Enrollment{}, ErrClassGroupFull
	}

	enrollment.ID = s.nextEnrollID
	s.nextEnrollID++
	enrollment.ClassCode = class.Code
	enrollment.AcademicYear = class.AcademicYear
	s.enrolls = append(s.enrolls, enrollment)
	class.EnrolledCount++
	return enrollment, nil
}

// Enrollments returns every enrollment in insertion order.
func (s *Store) Enrollments() []models.Enrollment {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Enrollment, len(s.enrolls))
	copy(out, s.enrolls)
	return out
}

// EnrollmentByID resolves an enrollment by identity.
func (s *Store) EnrollmentByID(id int) (models.Enrollment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, enrollment := range s.enrolls {
		if enrollment.ID == id {
			return enrollment, true
		}
	}
	return models.Enrollment{}, false
}

// EnrollmentsByStudent returns the student's enrollment history in
// insertion order.
func (s *Store) EnrollmentsByStudent(studentID int) []models.Enrollment {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Enrollment
	for _, enrollment := range s.enrolls {
		if enrollment.StudentID == studentID {
			out = append(out, enrollment)
		}
	}
	return out
}

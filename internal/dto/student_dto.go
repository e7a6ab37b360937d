package dto

import (
	"time"

	"github.com/sgde-edu/sgde-api/internal/models"
)

const dateLayout = "2006-01-02"

// StudentCreateRequest is the full registration form ("ficha cadastral").
// Only the name and birth date are required; everything else is descriptive
// and not used by any business rule.
type StudentCreateRequest struct {
	FullName  string `form:"full_name" json:"full_name" validate:"required"`
	BirthDate string `form:"birth_date" json:"birth_date" validate:"required,datetime=2006-01-02"`

	SocialName        string `form:"social_name" json:"social_name"`
	AffectiveName     string `form:"affective_name" json:"affective_name"`
	Sex               string `form:"sex" json:"sex" validate:"omitempty,oneof=Masculino Feminino"`
	Race              string `form:"race" json:"race" validate:"omitempty,oneof='Não declarado' Branca Preta Parda Amarela Indígena"`
	Nationality       string `form:"nationality" json:"nationality"`
	BirthMunicipality string `form:"birth_municipality" json:"birth_municipality"`

	RA           string `form:"ra" json:"ra"`
	EducacensoID string `form:"educacenso_id" json:"educacenso_id"`
	RGNumber     string `form:"rg_number" json:"rg_number"`
	RGDigit      string `form:"rg_digit" json:"rg_digit"`
	RGIssueDate  string `form:"rg_issue_date" json:"rg_issue_date" validate:"omitempty,datetime=2006-01-02"`
	RGState      string `form:"rg_state" json:"rg_state" validate:"omitempty,len=2"`
	CertRecord   string `form:"cert_record" json:"cert_record"`
	CertBook     string `form:"cert_book" json:"cert_book"`
	CertPage     string `form:"cert_page" json:"cert_page"`
	CertDistrict string `form:"cert_district" json:"cert_district"`
	CertJudicial string `form:"cert_judicial_district" json:"cert_judicial_district"`
	CPF          string `form:"cpf" json:"cpf"`
	NIS          string `form:"nis" json:"nis"`
	SUSCard      string `form:"sus_card" json:"sus_card"`

	Filiation1   string `form:"filiation_1" json:"filiation_1"`
	Filiation2   string `form:"filiation_2" json:"filiation_2"`
	BolsaFamilia bool   `form:"bolsa_familia" json:"bolsa_familia"`
	Street       string `form:"street" json:"street"`
	HouseNumber  string `form:"house_number" json:"house_number"`
	Neighborhood string `form:"neighborhood" json:"neighborhood"`
	PostalCode   string `form:"postal_code" json:"postal_code"`
	City         string `form:"city" json:"city"`
	Phones       string `form:"phones" json:"phones"`
	Email        string `form:"email" json:"email" validate:"omitempty,email"`

	HasDisability      bool   `form:"has_disability" json:"has_disability"`
	DisabilityType     string `form:"disability_type" json:"disability_type"`
	TGDTEA             string `form:"tgd_tea" json:"tgd_tea"`
	SupportLevel       string `form:"support_level" json:"support_level" validate:"omitempty,oneof='Nível 1' 'Nível 2' 'Nível 3'"`
	HasMedicalReport   bool   `form:"has_medical_report" json:"has_medical_report"`
	NeedsSupportWorker bool   `form:"needs_support_worker" json:"needs_support_worker"`
	ReducedMobility    bool   `form:"reduced_mobility" json:"reduced_mobility"`
}

// BirthDateValue parses the birth date field. Validation has already
// guaranteed the layout.
func (r StudentCreateRequest) BirthDateValue() (time.Time, error) {
	return time.Parse(dateLayout, r.BirthDate)
}

// StudentResponse is the serialized student record.
type StudentResponse struct {
	ID                 int       `json:"id"`
	FullName           string    `json:"full_name"`
	BirthDate          time.Time `json:"birth_date"`
	RegistrationNumber string    `json:"registration_number,omitempty"`
	SocialName         string    `json:"social_name,omitempty"`
	RA                 string    `json:"ra,omitempty"`
	CPF                string    `json:"cpf,omitempty"`
	Filiation1         string    `json:"filiation_1,omitempty"`
	Filiation2         string    `json:"filiation_2,omitempty"`
	City               string    `json:"city,omitempty"`
	Phones             string    `json:"phones,omitempty"`
	Email              string    `json:"email,omitempty"`
	HasDisability      bool      `json:"has_disability"`
}

// NewStudentResponse converts a model into a DTO.
func NewStudentResponse(model models.Student) StudentResponse {
	return StudentResponse{
		ID:                 model.ID,
		FullName:           model.FullName,
		BirthDate:          model.BirthDate,
		RegistrationNumber: model.RegistrationNumber,
		SocialName:         model.SocialName,
		RA:                 model.RA,
		CPF:                model.CPF,
		Filiation1:         model.Filiation1,
		Filiation2:         model.Filiation2,
		City:               model.City,
		Phones:             model.Phones,
		Email:              model.Email,
		HasDisability:      model.HasDisability,
	}
}

// NewStudentResponseSlice converts a slice of models into DTOs.
func NewStudentResponseSlice(students []models.Student) []StudentResponse {
	responses := make([]StudentResponse, 0, len(students))
	for _, student := range students {
		responses = append(responses, NewStudentResponse(student))
	}
	return responses
}

// RegistrationNumberResponse carries a freshly generated NRA.
type RegistrationNumberResponse struct {
	StudentID          int    `json:"student_id"`
	RegistrationNumber string `json:"registration_number"`
}

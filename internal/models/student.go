package models

import "time"

// Student is the full enrollment record ("ficha cadastral") of a learner.
// Only FullName and BirthDate participate in business rules; the remaining
// fields are captured from the registration form for record keeping.
type Student struct {
	ID        int       `json:"id"`
	FullName  string    `json:"full_name"`
	BirthDate time.Time `json:"birth_date"`

	// RegistrationNumber (NRA) is assigned on demand by a separate
	// operation; regenerating overwrites the previous value.
	RegistrationNumber string `json:"registration_number,omitempty"`

	SocialName        string `json:"social_name,omitempty"`
	AffectiveName     string `json:"affective_name,omitempty"`
	Sex               string `json:"sex,omitempty"`
	Race              string `json:"race,omitempty"`
	Nationality       string `json:"nationality,omitempty"`
	BirthMunicipality string `json:"birth_municipality,omitempty"`

	// Civil documentation.
	RA            string     `json:"ra,omitempty"`
	EducacensoID  string     `json:"educacenso_id,omitempty"`
	RGNumber      string     `json:"rg_number,omitempty"`
	RGDigit       string     `json:"rg_digit,omitempty"`
	RGIssueDate   *time.Time `json:"rg_issue_date,omitempty"`
	RGState       string     `json:"rg_state,omitempty"`
	CertRecord    string     `json:"cert_record,omitempty"`
	CertBook      string     `json:"cert_book,omitempty"`
	CertPage      string     `json:"cert_page,omitempty"`
	CertDistrict  string     `json:"cert_district,omitempty"`
	CertJudicial  string     `json:"cert_judicial_district,omitempty"`
	CPF           string     `json:"cpf,omitempty"`
	NIS           string     `json:"nis,omitempty"`
	SUSCard       string     `json:"sus_card,omitempty"`

	// Family and contact.
	Filiation1   string `json:"filiation_1,omitempty"`
	Filiation2   string `json:"filiation_2,omitempty"`
	BolsaFamilia bool   `json:"bolsa_familia"`
	Street       string `json:"street,omitempty"`
	HouseNumber  string `json:"house_number,omitempty"`
	Neighborhood string `json:"neighborhood,omitempty"`
	PostalCode   string `json:"postal_code,omitempty"`
	City         string `json:"city,omitempty"`
	Phones       string `json:"phones,omitempty"`
	Email        string `json:"email,omitempty"`

	// Accessibility and health.
	HasDisability       bool   `json:"has_disability"`
	DisabilityType      string `json:"disability_type,omitempty"`
	TGDTEA              string `json:"tgd_tea,omitempty"`
	SupportLevel        string `json:"support_level,omitempty"`
	HasMedicalReport    bool   `json:"has_medical_report"`
	NeedsSupportWorker  bool   `json:"needs_support_worker"`
	ReducedMobility     bool   `json:"reduced_mobility"`
}

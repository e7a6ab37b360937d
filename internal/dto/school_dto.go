package dto

import "github.com/sgde-edu/sgde-api/internal/models"

// SchoolSaveRequest is the institutional form payload. Saving replaces the
// whole record; there is no partial update.
type SchoolSaveRequest struct {
	Manager   string `form:"manager" json:"manager"`
	Name      string `form:"name" json:"name" validate:"required"`
	LegalName string `form:"legal_name" json:"legal_name"`
	CNPJ      string `form:"cnpj" json:"cnpj"`
	Address   string `form:"address" json:"address"`
	Region    string `form:"region" json:"region" validate:"omitempty,oneof=Norte Sul Leste Oeste Centro"`
	INEPCode  int    `form:"inep_code" json:"inep_code" validate:"gte=0"`
}

// SchoolResponse is the serialized institutional record.
type SchoolResponse struct {
	Manager   string `json:"manager"`
	Name      string `json:"name"`
	LegalName string `json:"legal_name"`
	CNPJ      string `json:"cnpj"`
	Address   string `json:"address"`
	Region    string `json:"region"`
	INEPCode  int    `json:"inep_code"`
}

// NewSchoolResponse converts a model into a DTO.
func NewSchoolResponse(model models.SchoolInfo) SchoolResponse {
	return SchoolResponse{
		Manager:   model.Manager,
		Name:      model.Name,
		LegalName: model.LegalName,
		CNPJ:      model.CNPJ,
		Address:   model.Address,
		Region:    model.Region,
		INEPCode:  model.INEPCode,
	}
}

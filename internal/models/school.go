package models

// SchoolInfo holds the institutional record for the school. The system is
// single-tenant, so at most one instance exists per session and every save
// replaces it wholesale.
type SchoolInfo struct {
	Manager   string `json:"manager"`
	Name      string `json:"name"`
	LegalName string `json:"legal_name"`
	CNPJ      string `json:"cnpj"`
	Address   string `json:"address"`
	Region    string `json:"region"`
	INEPCode  int    `json:"inep_code"`
}

// Regions returns the regional units an institution can belong to.
func Regions() []string {
	return []string{"Norte", "Sul", "Leste", "Oeste", "Centro"}
}

package patient

import (
	"time"

	"github.com/google/uuid"
)

// Insurance scheme names as printed on CNAM forms.
const (
	AssuranceCNSS       = "CNSS"
	AssuranceCNRPS      = "CNRPS"
	AssuranceConvention = "Convention bilatérale"
)

// ValidAssuranceTypes enumerates the accepted typeAssurance values.
var ValidAssuranceTypes = map[string]bool{
	AssuranceCNSS:       true,
	AssuranceCNRPS:      true,
	AssuranceConvention: true,
}

// SocialSecurity is a patient's national-insurance enrollment. The insured
// party may differ from the patient (a parent covering a child), hence the
// separate name and address fields.
type SocialSecurity struct {
	IDAssurance   string `json:"id_assurance"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Address       string `json:"address"`
	CodePostal    string `json:"code_postal"`
	TypeAssurance string `json:"type_assurance"`
}

// Empty reports whether no enrollment field is set.
func (ss *SocialSecurity) Empty() bool {
	if ss == nil {
		return true
	}
	return ss.IDAssurance == "" && ss.FirstName == "" && ss.LastName == "" &&
		ss.Address == "" && ss.CodePostal == "" && ss.TypeAssurance == ""
}

type Patient struct {
	ID             uuid.UUID       `json:"id"`
	FirstName      string          `json:"first_name"`
	LastName       string          `json:"last_name"`
	Phone          string          `json:"phone"`
	DOB            time.Time       `json:"dob"`
	Address        string          `json:"address"`
	PatientHistory string          `json:"patient_history"`
	SocialSecurity *SocialSecurity `json:"social_security,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// FullName is "last first", the order CNAM forms use.
func (p *Patient) FullName() string {
	return p.LastName + " " + p.FirstName
}

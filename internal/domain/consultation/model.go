package consultation

import (
	"time"

	"github.com/google/uuid"
)

// Consultation statuses. Transitions are free; the clinic corrects scheduling
// mistakes by moving records back and forth.
const (
	StatusScheduled = "Scheduled"
	StatusCompleted = "Completed"
	StatusCancelled = "Cancelled"
)

var ValidStatuses = map[string]bool{
	StatusScheduled: true,
	StatusCompleted: true,
	StatusCancelled: true,
}

type Consultation struct {
	ID              uuid.UUID `json:"id"`
	PatientID       uuid.UUID `json:"patient_id"`
	Date            time.Time `json:"date"`
	Time            string    `json:"time"` // HH:MM, 24h
	Reason          string    `json:"reason"`
	Price           float64   `json:"price"`
	Status          string    `json:"status"`
	TreatmentPlan   string    `json:"treatment_plan"`
	FollowUpActions string    `json:"follow_up_actions"`
	Acts            []string  `json:"acts"` // catalog act codes
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Detail pairs a consultation with the display name of its patient. The name
// falls back to "Unknown" when the patient record cannot be resolved.
type Detail struct {
	Consultation
	PatientName string `json:"patient_name"`
}

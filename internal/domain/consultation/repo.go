package consultation

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, cons *Consultation) error
	GetByID(ctx context.Context, id uuid.UUID) (*Consultation, error)
	Update(ctx context.Context, cons *Consultation) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*Consultation, int, error)
	ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Consultation, int, error)

	// DeleteByPatient backs the patient delete cascade; it joins an
	// in-flight transaction when the context carries one.
	DeleteByPatient(ctx context.Context, patientID uuid.UUID) (int, error)
	// ActCodeInUse backs the catalog's referential-integrity check.
	ActCodeInUse(ctx context.Context, code string) (bool, error)
}

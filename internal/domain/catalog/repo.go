package catalog

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the persistence boundary for the act catalog.
type Repository interface {
	// InTx runs fn with a transaction carried in the context; repository
	// calls made inside fn join it.
	InTx(ctx context.Context, fn func(ctx context.Context) error) error

	UpsertChapter(ctx context.Context, ch *ActChapter) error
	UpsertSection(ctx context.Context, s *ActSection) error

	ListChapters(ctx context.Context) ([]*ActChapter, error)
	GetSection(ctx context.Context, id string) (*ActSection, error)

	GetGroup(ctx context.Context, sectionID, title string) (*ActGroup, error)
	// GetGroupForUpdate locks the group row for the remainder of the
	// surrounding transaction.
	GetGroupForUpdate(ctx context.Context, sectionID, title string) (*ActGroup, error)
	CreateGroup(ctx context.Context, g *ActGroup) error
	UpdateGroupActs(ctx context.Context, id uuid.UUID, acts []Act) error
	DeleteGroup(ctx context.Context, id uuid.UUID) error

	FindActByCode(ctx context.Context, code string) (*ActRef, error)
	CountActs(ctx context.Context) (int, error)
}

package catalog

import (
	"context"

	"github.com/dencare/dencare/internal/platform/apperror"
)

// ReferenceChecker reports whether any consultation still references an act
// code. Wired to the consultation repository at startup.
type ReferenceChecker interface {
	ActCodeInUse(ctx context.Context, code string) (bool, error)
}

type Service struct {
	repo Repository
	refs ReferenceChecker
}

func NewService(repo Repository, refs ReferenceChecker) *Service {
	return &Service{repo: repo, refs: refs}
}

// Catalog returns the full chapter tree. The catalog is reference data of a
// fixed size, so it is never paginated.
func (s *Service) Catalog(ctx context.Context) ([]*ActChapter, error) {
	return s.repo.ListChapters(ctx)
}

// ResolveAct locates an act anywhere in the catalog by its code.
func (s *Service) ResolveAct(ctx context.Context, code string) (*ActRef, error) {
	if code == "" {
		return nil, apperror.Validation("act code is required")
	}
	return s.repo.FindActByCode(ctx, code)
}

func validateAct(a Act) error {
	if a.Code == "" {
		return apperror.Validation("act code is required")
	}
	if a.Designation == "" {
		return apperror.Validation("act designation is required")
	}
	if a.Honoraire != nil && *a.Honoraire < 0 {
		return apperror.Validation("honoraire must not be negative")
	}
	return nil
}

// AddAct inserts an act into the group identified by (sectionID, groupTitle),
// creating the group when it does not exist yet. Act codes are unique across
// the whole catalog.
func (s *Service) AddAct(ctx context.Context, chapterID, sectionID, groupTitle string, act Act) error {
	if err := validateAct(act); err != nil {
		return err
	}

	return s.repo.InTx(ctx, func(ctx context.Context) error {
		section, err := s.repo.GetSection(ctx, sectionID)
		if err != nil {
			return err
		}
		if section.ChapterID != chapterID {
			return apperror.NotFound("section %s not found in chapter %s", sectionID, chapterID)
		}

		if _, err := s.repo.FindActByCode(ctx, act.Code); err == nil {
			return apperror.Integrity("act code %s already exists in the catalog", act.Code)
		} else if !apperror.IsNotFound(err) {
			return err
		}

		group, err := s.repo.GetGroupForUpdate(ctx, sectionID, groupTitle)
		if apperror.IsNotFound(err) {
			return s.repo.CreateGroup(ctx, &ActGroup{
				SectionID: sectionID,
				Title:     groupTitle,
				Acts:      []Act{act},
			})
		}
		if err != nil {
			return err
		}
		return s.repo.UpdateGroupActs(ctx, group.ID, append(group.Acts, act))
	})
}

// UpdateAct replaces the designation, cotation and honoraire of an existing
// act. The code itself is the act's identity and cannot change.
func (s *Service) UpdateAct(ctx context.Context, chapterID, sectionID, groupTitle string, act Act) error {
	if err := validateAct(act); err != nil {
		return err
	}

	return s.repo.InTx(ctx, func(ctx context.Context) error {
		section, err := s.repo.GetSection(ctx, sectionID)
		if err != nil {
			return err
		}
		if section.ChapterID != chapterID {
			return apperror.NotFound("section %s not found in chapter %s", sectionID, chapterID)
		}

		group, err := s.repo.GetGroupForUpdate(ctx, sectionID, groupTitle)
		if err != nil {
			return err
		}
		i := group.FindAct(act.Code)
		if i < 0 {
			return apperror.NotFound("act %s not found in group %q", act.Code, groupTitle)
		}
		group.Acts[i] = act
		return s.repo.UpdateGroupActs(ctx, group.ID, group.Acts)
	})
}

// RemoveAct deletes an act from its group; the group row itself is removed
// when its last act goes. Acts still referenced by consultations cannot be
// removed. Claims are unaffected either way since they carry snapshots.
func (s *Service) RemoveAct(ctx context.Context, chapterID, sectionID, groupTitle, code string) error {
	if code == "" {
		return apperror.Validation("act code is required")
	}

	if s.refs != nil {
		inUse, err := s.refs.ActCodeInUse(ctx, code)
		if err != nil {
			return err
		}
		if inUse {
			return apperror.Integrity("act %s is referenced by existing consultations", code)
		}
	}

	return s.repo.InTx(ctx, func(ctx context.Context) error {
		section, err := s.repo.GetSection(ctx, sectionID)
		if err != nil {
			return err
		}
		if section.ChapterID != chapterID {
			return apperror.NotFound("section %s not found in chapter %s", sectionID, chapterID)
		}

		group, err := s.repo.GetGroupForUpdate(ctx, sectionID, groupTitle)
		if err != nil {
			return err
		}
		i := group.FindAct(code)
		if i < 0 {
			return apperror.NotFound("act %s not found in group %q", code, groupTitle)
		}

		acts := append(group.Acts[:i], group.Acts[i+1:]...)
		if len(acts) == 0 {
			return s.repo.DeleteGroup(ctx, group.ID)
		}
		return s.repo.UpdateGroupActs(ctx, group.ID, acts)
	})
}

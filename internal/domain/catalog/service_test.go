package catalog

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/dencare/dencare/internal/platform/apperror"
)

type mockRepo struct {
	chapters map[string]*ActChapter
	sections map[string]*ActSection
	groups   map[string]*ActGroup
}

func newMockRepo() *mockRepo {
	return &mockRepo{
		chapters: make(map[string]*ActChapter),
		sections: make(map[string]*ActSection),
		groups:   make(map[string]*ActGroup),
	}
}

func groupKey(sectionID, title string) string { return sectionID + "|" + title }

func (m *mockRepo) InTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (m *mockRepo) UpsertChapter(_ context.Context, ch *ActChapter) error {
	m.chapters[ch.ID] = ch
	return nil
}

func (m *mockRepo) UpsertSection(_ context.Context, s *ActSection) error {
	m.sections[s.ID] = s
	return nil
}

func (m *mockRepo) ListChapters(_ context.Context) ([]*ActChapter, error) {
	var out []*ActChapter
	for _, ch := range m.chapters {
		out = append(out, ch)
	}
	return out, nil
}

func (m *mockRepo) GetSection(_ context.Context, id string) (*ActSection, error) {
	s, ok := m.sections[id]
	if !ok {
		return nil, apperror.NotFound("section %s not found", id)
	}
	return s, nil
}

func (m *mockRepo) GetGroup(_ context.Context, sectionID, title string) (*ActGroup, error) {
	g, ok := m.groups[groupKey(sectionID, title)]
	if !ok {
		return nil, apperror.NotFound("group %q in section %s not found", title, sectionID)
	}
	cp := *g
	cp.Acts = append([]Act(nil), g.Acts...)
	return &cp, nil
}

func (m *mockRepo) GetGroupForUpdate(ctx context.Context, sectionID, title string) (*ActGroup, error) {
	return m.GetGroup(ctx, sectionID, title)
}

func (m *mockRepo) CreateGroup(_ context.Context, g *ActGroup) error {
	g.ID = uuid.New()
	m.groups[groupKey(g.SectionID, g.Title)] = g
	return nil
}

func (m *mockRepo) UpdateGroupActs(_ context.Context, id uuid.UUID, acts []Act) error {
	for _, g := range m.groups {
		if g.ID == id {
			g.Acts = acts
			return nil
		}
	}
	return apperror.NotFound("group %s not found", id)
}

func (m *mockRepo) DeleteGroup(_ context.Context, id uuid.UUID) error {
	for k, g := range m.groups {
		if g.ID == id {
			delete(m.groups, k)
			return nil
		}
	}
	return nil
}

func (m *mockRepo) FindActByCode(_ context.Context, code string) (*ActRef, error) {
	for _, g := range m.groups {
		for _, a := range g.Acts {
			if a.Code == code {
				sec := m.sections[g.SectionID]
				ref := &ActRef{Act: a, SectionID: g.SectionID, GroupTitle: g.Title}
				if sec != nil {
					ref.ChapterID = sec.ChapterID
					ref.SectionTitle = sec.Title
				}
				return ref, nil
			}
		}
	}
	return nil, apperror.NotFound("act %s not found", code)
}

func (m *mockRepo) CountActs(_ context.Context) (int, error) {
	n := 0
	for _, g := range m.groups {
		n += len(g.Acts)
	}
	return n, nil
}

type mockRefs struct {
	inUse map[string]bool
}

func (m *mockRefs) ActCodeInUse(_ context.Context, code string) (bool, error) {
	return m.inUse[code], nil
}

func fixtureRepo() *mockRepo {
	repo := newMockRepo()
	repo.chapters["chapter-1"] = &ActChapter{ID: "chapter-1", Title: "DENTS ET GENCIVES"}
	repo.sections["section-1"] = &ActSection{ID: "section-1", ChapterID: "chapter-1", Title: "SOINS CONSERVATEURS"}
	return repo
}

func TestAddAct_CreatesGroupWhenAbsent(t *testing.T) {
	repo := fixtureRepo()
	svc := NewService(repo, &mockRefs{})

	err := svc.AddAct(context.Background(), "chapter-1", "section-1", "Cavité simple",
		Act{Code: "DCH010010", Designation: "Traitement global", Cotation: "D15", Honoraire: fee(45.0)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	g, err := repo.GetGroup(context.Background(), "section-1", "Cavité simple")
	if err != nil {
		t.Fatalf("group was not created: %v", err)
	}
	if len(g.Acts) != 1 || g.Acts[0].Code != "DCH010010" {
		t.Errorf("unexpected group contents: %+v", g.Acts)
	}
}

func TestAddAct_AppendsToExistingGroup(t *testing.T) {
	repo := fixtureRepo()
	svc := NewService(repo, &mockRefs{})
	ctx := context.Background()

	if err := svc.AddAct(ctx, "chapter-1", "section-1", "g", Act{Code: "A1", Designation: "one"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.AddAct(ctx, "chapter-1", "section-1", "g", Act{Code: "A2", Designation: "two"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	g, _ := repo.GetGroup(ctx, "section-1", "g")
	if len(g.Acts) != 2 {
		t.Fatalf("expected 2 acts, got %d", len(g.Acts))
	}
	if g.Acts[0].Code != "A1" || g.Acts[1].Code != "A2" {
		t.Errorf("act order not preserved: %+v", g.Acts)
	}
}

func TestAddAct_DuplicateCodeRejected(t *testing.T) {
	repo := fixtureRepo()
	svc := NewService(repo, &mockRefs{})
	ctx := context.Background()

	if err := svc.AddAct(ctx, "chapter-1", "section-1", "g1", Act{Code: "A1", Designation: "one"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err := svc.AddAct(ctx, "chapter-1", "section-1", "g2", Act{Code: "A1", Designation: "again"})
	if !apperror.IsIntegrity(err) {
		t.Errorf("expected integrity violation for duplicate code, got %v", err)
	}
}

func TestAddAct_UnknownSection(t *testing.T) {
	svc := NewService(fixtureRepo(), &mockRefs{})
	err := svc.AddAct(context.Background(), "chapter-1", "section-99", "g", Act{Code: "A1", Designation: "x"})
	if !apperror.IsNotFound(err) {
		t.Errorf("expected not found, got %v", err)
	}
}

func TestAddAct_SectionInWrongChapter(t *testing.T) {
	svc := NewService(fixtureRepo(), &mockRefs{})
	err := svc.AddAct(context.Background(), "isolated", "section-1", "g", Act{Code: "A1", Designation: "x"})
	if !apperror.IsNotFound(err) {
		t.Errorf("expected not found, got %v", err)
	}
}

func TestAddAct_Validation(t *testing.T) {
	svc := NewService(fixtureRepo(), &mockRefs{})
	ctx := context.Background()

	if err := svc.AddAct(ctx, "chapter-1", "section-1", "g", Act{Designation: "no code"}); !apperror.IsValidation(err) {
		t.Errorf("expected validation error for missing code, got %v", err)
	}
	if err := svc.AddAct(ctx, "chapter-1", "section-1", "g", Act{Code: "A1"}); !apperror.IsValidation(err) {
		t.Errorf("expected validation error for missing designation, got %v", err)
	}
	neg := -1.0
	if err := svc.AddAct(ctx, "chapter-1", "section-1", "g", Act{Code: "A1", Designation: "x", Honoraire: &neg}); !apperror.IsValidation(err) {
		t.Errorf("expected validation error for negative honoraire, got %v", err)
	}
}

func TestUpdateAct_ReplacesInPlace(t *testing.T) {
	repo := fixtureRepo()
	svc := NewService(repo, &mockRefs{})
	ctx := context.Background()

	if err := svc.AddAct(ctx, "chapter-1", "section-1", "g", Act{Code: "A1", Designation: "old", Cotation: "D10"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.UpdateAct(ctx, "chapter-1", "section-1", "g", Act{Code: "A1", Designation: "new", Cotation: "D20", Honoraire: fee(60.0)}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	g, _ := repo.GetGroup(ctx, "section-1", "g")
	if g.Acts[0].Designation != "new" || g.Acts[0].Cotation != "D20" {
		t.Errorf("act not updated: %+v", g.Acts[0])
	}
}

func TestUpdateAct_NotFoundInGroup(t *testing.T) {
	repo := fixtureRepo()
	svc := NewService(repo, &mockRefs{})
	ctx := context.Background()

	if err := svc.AddAct(ctx, "chapter-1", "section-1", "g", Act{Code: "A1", Designation: "x"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err := svc.UpdateAct(ctx, "chapter-1", "section-1", "g", Act{Code: "A2", Designation: "y"})
	if !apperror.IsNotFound(err) {
		t.Errorf("expected not found, got %v", err)
	}
}

func TestRemoveAct_LastActDeletesGroup(t *testing.T) {
	repo := fixtureRepo()
	svc := NewService(repo, &mockRefs{})
	ctx := context.Background()

	if err := svc.AddAct(ctx, "chapter-1", "section-1", "g", Act{Code: "A1", Designation: "x"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.RemoveAct(ctx, "chapter-1", "section-1", "g", "A1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := repo.GetGroup(ctx, "section-1", "g"); !apperror.IsNotFound(err) {
		t.Error("expected empty group to be deleted")
	}
}

func TestRemoveAct_KeepsGroupWithRemainingActs(t *testing.T) {
	repo := fixtureRepo()
	svc := NewService(repo, &mockRefs{})
	ctx := context.Background()

	if err := svc.AddAct(ctx, "chapter-1", "section-1", "g", Act{Code: "A1", Designation: "x"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.AddAct(ctx, "chapter-1", "section-1", "g", Act{Code: "A2", Designation: "y"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.RemoveAct(ctx, "chapter-1", "section-1", "g", "A1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	g, err := repo.GetGroup(ctx, "section-1", "g")
	if err != nil {
		t.Fatalf("group should survive: %v", err)
	}
	if len(g.Acts) != 1 || g.Acts[0].Code != "A2" {
		t.Errorf("unexpected remaining acts: %+v", g.Acts)
	}
}

func TestRemoveAct_BlockedWhileReferenced(t *testing.T) {
	repo := fixtureRepo()
	svc := NewService(repo, &mockRefs{inUse: map[string]bool{"A1": true}})
	ctx := context.Background()

	if err := svc.AddAct(ctx, "chapter-1", "section-1", "g", Act{Code: "A1", Designation: "x"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err := svc.RemoveAct(ctx, "chapter-1", "section-1", "g", "A1")
	if !apperror.IsIntegrity(err) {
		t.Errorf("expected integrity violation while referenced, got %v", err)
	}

	g, _ := repo.GetGroup(ctx, "section-1", "g")
	if len(g.Acts) != 1 {
		t.Error("act must remain after blocked delete")
	}
}

func TestSeed_Idempotent(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo, &mockRefs{})
	ctx := context.Background()

	first, err := svc.Seed(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	count1, _ := repo.CountActs(ctx)

	second, err := svc.Seed(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	count2, _ := repo.CountActs(ctx)

	if count1 != count2 {
		t.Errorf("re-seeding changed act count: %d vs %d", count1, count2)
	}
	if *first != *second {
		t.Errorf("seed summaries differ: %+v vs %+v", first, second)
	}
	if first.Chapters != 2 {
		t.Errorf("expected 2 chapters, got %d", first.Chapters)
	}
	if first.Acts != count1 {
		t.Errorf("summary act count %d does not match repo %d", first.Acts, count1)
	}
}

func TestResolveAct(t *testing.T) {
	repo := fixtureRepo()
	svc := NewService(repo, &mockRefs{})
	ctx := context.Background()

	if err := svc.AddAct(ctx, "chapter-1", "section-1", "g", Act{Code: "A1", Designation: "x", Cotation: "D15"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ref, err := svc.ResolveAct(ctx, "A1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ref.SectionID != "section-1" || ref.GroupTitle != "g" || ref.SectionTitle != "SOINS CONSERVATEURS" {
		t.Errorf("unexpected resolution: %+v", ref)
	}

	if _, err := svc.ResolveAct(ctx, "ZZZ"); !apperror.IsNotFound(err) {
		t.Errorf("expected not found for unknown code, got %v", err)
	}
}

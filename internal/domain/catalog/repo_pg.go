package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dencare/dencare/internal/platform/apperror"
	"github.com/dencare/dencare/internal/platform/db"
)

type repoPG struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

type querier interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

func (r *repoPG) conn(ctx context.Context) querier {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

func (r *repoPG) InTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return db.WithTx(ctx, r.pool, fn)
}

func (r *repoPG) UpsertChapter(ctx context.Context, ch *ActChapter) error {
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO act_chapter (id, title, position)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET title = $2, position = $3, updated_at = NOW()`,
		ch.ID, ch.Title, ch.Position,
	)
	return err
}

func (r *repoPG) UpsertSection(ctx context.Context, s *ActSection) error {
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO act_section (id, chapter_id, title, position)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET chapter_id = $2, title = $3, position = $4, updated_at = NOW()`,
		s.ID, s.ChapterID, s.Title, s.Position,
	)
	return err
}

func (r *repoPG) ListChapters(ctx context.Context) ([]*ActChapter, error) {
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT id, title, position FROM act_chapter ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var chapters []*ActChapter
	byChapter := make(map[string]*ActChapter)
	for rows.Next() {
		var ch ActChapter
		if err := rows.Scan(&ch.ID, &ch.Title, &ch.Position); err != nil {
			return nil, err
		}
		ch.Sections = []*ActSection{}
		chapters = append(chapters, &ch)
		byChapter[ch.ID] = &ch
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	srows, err := r.conn(ctx).Query(ctx,
		`SELECT id, chapter_id, title, position FROM act_section ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer srows.Close()

	bySection := make(map[string]*ActSection)
	for srows.Next() {
		var s ActSection
		if err := srows.Scan(&s.ID, &s.ChapterID, &s.Title, &s.Position); err != nil {
			return nil, err
		}
		s.Groups = []*ActGroup{}
		bySection[s.ID] = &s
		if ch, ok := byChapter[s.ChapterID]; ok {
			ch.Sections = append(ch.Sections, &s)
		}
	}
	if err := srows.Err(); err != nil {
		return nil, err
	}

	grows, err := r.conn(ctx).Query(ctx, `
		SELECT id, section_id, title, acts, created_at, updated_at
		FROM act_group ORDER BY section_id, created_at`)
	if err != nil {
		return nil, err
	}
	defer grows.Close()

	for grows.Next() {
		g, err := scanGroupFrom(grows)
		if err != nil {
			return nil, err
		}
		if s, ok := bySection[g.SectionID]; ok {
			s.Groups = append(s.Groups, g)
		}
	}
	if err := grows.Err(); err != nil {
		return nil, err
	}

	return chapters, nil
}

func (r *repoPG) GetSection(ctx context.Context, id string) (*ActSection, error) {
	var s ActSection
	err := r.conn(ctx).QueryRow(ctx,
		`SELECT id, chapter_id, title, position FROM act_section WHERE id = $1`, id).
		Scan(&s.ID, &s.ChapterID, &s.Title, &s.Position)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperror.NotFound("section %s not found", id)
	}
	if err != nil {
		return nil, err
	}

	rows, err := r.conn(ctx).Query(ctx, `
		SELECT id, section_id, title, acts, created_at, updated_at
		FROM act_group WHERE section_id = $1 ORDER BY created_at`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		g, err := scanGroupFrom(rows)
		if err != nil {
			return nil, err
		}
		s.Groups = append(s.Groups, g)
	}
	return &s, rows.Err()
}

const groupCols = `id, section_id, title, acts, created_at, updated_at`

func (r *repoPG) GetGroup(ctx context.Context, sectionID, title string) (*ActGroup, error) {
	return scanGroup(r.conn(ctx).QueryRow(ctx,
		`SELECT `+groupCols+` FROM act_group WHERE section_id = $1 AND title = $2`,
		sectionID, title), sectionID, title)
}

func (r *repoPG) GetGroupForUpdate(ctx context.Context, sectionID, title string) (*ActGroup, error) {
	return scanGroup(r.conn(ctx).QueryRow(ctx,
		`SELECT `+groupCols+` FROM act_group WHERE section_id = $1 AND title = $2 FOR UPDATE`,
		sectionID, title), sectionID, title)
}

func (r *repoPG) CreateGroup(ctx context.Context, g *ActGroup) error {
	g.ID = uuid.New()
	if g.Acts == nil {
		g.Acts = []Act{}
	}
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO act_group (id, section_id, title, acts)
		VALUES ($1, $2, $3, $4)`,
		g.ID, g.SectionID, g.Title, g.Acts,
	)
	return err
}

func (r *repoPG) UpdateGroupActs(ctx context.Context, id uuid.UUID, acts []Act) error {
	if acts == nil {
		acts = []Act{}
	}
	_, err := r.conn(ctx).Exec(ctx,
		`UPDATE act_group SET acts = $2, updated_at = NOW() WHERE id = $1`, id, acts)
	return err
}

func (r *repoPG) DeleteGroup(ctx context.Context, id uuid.UUID) error {
	_, err := r.conn(ctx).Exec(ctx, `DELETE FROM act_group WHERE id = $1`, id)
	return err
}

func (r *repoPG) FindActByCode(ctx context.Context, code string) (*ActRef, error) {
	var ref ActRef
	err := r.conn(ctx).QueryRow(ctx, `
		SELECT s.chapter_id, s.id, s.title, g.title, a.act
		FROM act_group g
		JOIN act_section s ON s.id = g.section_id
		CROSS JOIN LATERAL jsonb_array_elements(g.acts) AS a(act)
		WHERE a.act->>'code' = $1`, code).
		Scan(&ref.ChapterID, &ref.SectionID, &ref.SectionTitle, &ref.GroupTitle, &ref.Act)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperror.NotFound("act %s not found", code)
	}
	if err != nil {
		return nil, err
	}
	return &ref, nil
}

func (r *repoPG) CountActs(ctx context.Context) (int, error) {
	var n int
	err := r.conn(ctx).QueryRow(ctx,
		`SELECT COALESCE(SUM(jsonb_array_length(acts)), 0) FROM act_group`).Scan(&n)
	return n, err
}

func scanGroup(row pgx.Row, sectionID, title string) (*ActGroup, error) {
	var g ActGroup
	err := row.Scan(&g.ID, &g.SectionID, &g.Title, &g.Acts, &g.CreatedAt, &g.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperror.NotFound("group %q in section %s not found", title, sectionID)
	}
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func scanGroupFrom(rows pgx.Rows) (*ActGroup, error) {
	var g ActGroup
	if err := rows.Scan(&g.ID, &g.SectionID, &g.Title, &g.Acts, &g.CreatedAt, &g.UpdatedAt); err != nil {
		return nil, err
	}
	return &g, nil
}

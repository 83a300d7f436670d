package patient

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

const patientCols = `id, first_name, last_name, phone, dob, address, patient_history,
	ss_id_assurance, ss_first_name, ss_last_name, ss_address, ss_code_postal, ss_type_assurance,
	created_at, updated_at`

func (r *repoPG) Create(ctx context.Context, p *Patient) error {
	p.ID = uuid.New()
	var ss SocialSecurity
	if p.SocialSecurity != nil {
		ss = *p.SocialSecurity
	}
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO patient (
			id, first_name, last_name, phone, dob, address, patient_history,
			ss_id_assurance, ss_first_name, ss_last_name, ss_address, ss_code_postal, ss_type_assurance,
			created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)`,
		p.ID, p.FirstName, p.LastName, p.Phone, p.DOB, p.Address, p.PatientHistory,
		nullable(ss.IDAssurance), nullable(ss.FirstName), nullable(ss.LastName),
		nullable(ss.Address), nullable(ss.CodePostal), nullable(ss.TypeAssurance),
		p.CreatedAt,
	)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Patient, error) {
	p, err := scanPatient(r.conn(ctx).QueryRow(ctx,
		`SELECT `+patientCols+` FROM patient WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperror.NotFound("patient %s not found", id)
	}
	return p, err
}

// Update replaces all mutable fields; created_at is never touched.
func (r *repoPG) Update(ctx context.Context, p *Patient) error {
	var ss SocialSecurity
	if p.SocialSecurity != nil {
		ss = *p.SocialSecurity
	}
	tag, err := r.conn(ctx).Exec(ctx, `
		UPDATE patient SET
			first_name=$2, last_name=$3, phone=$4, dob=$5, address=$6, patient_history=$7,
			ss_id_assurance=$8, ss_first_name=$9, ss_last_name=$10,
			ss_address=$11, ss_code_postal=$12, ss_type_assurance=$13,
			updated_at=NOW()
		WHERE id = $1`,
		p.ID, p.FirstName, p.LastName, p.Phone, p.DOB, p.Address, p.PatientHistory,
		nullable(ss.IDAssurance), nullable(ss.FirstName), nullable(ss.LastName),
		nullable(ss.Address), nullable(ss.CodePostal), nullable(ss.TypeAssurance),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperror.NotFound("patient %s not found", p.ID)
	}
	return nil
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.conn(ctx).Exec(ctx, `DELETE FROM patient WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperror.NotFound("patient %s not found", id)
	}
	return nil
}

func (r *repoPG) List(ctx context.Context, limit, offset int) ([]*Patient, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM patient`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+patientCols+` FROM patient ORDER BY last_name, first_name LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	return collectPatients(rows, total)
}

func (r *repoPG) Search(ctx context.Context, query string, limit, offset int) ([]*Patient, int, error) {
	pattern := "%" + query + "%"
	var total int
	if err := r.conn(ctx).QueryRow(ctx, `
		SELECT COUNT(*) FROM patient
		WHERE first_name ILIKE $1 OR last_name ILIKE $1 OR phone ILIKE $1`,
		pattern).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT `+patientCols+` FROM patient
		WHERE first_name ILIKE $1 OR last_name ILIKE $1 OR phone ILIKE $1
		ORDER BY last_name, first_name LIMIT $2 OFFSET $3`,
		pattern, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	return collectPatients(rows, total)
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func scanFields(p *Patient) (dst []interface{}, ss *[6]*string) {
	ss = new([6]*string)
	dst = []interface{}{
		&p.ID, &p.FirstName, &p.LastName, &p.Phone, &p.DOB, &p.Address, &p.PatientHistory,
		&ss[0], &ss[1], &ss[2], &ss[3], &ss[4], &ss[5],
		&p.CreatedAt, &p.UpdatedAt,
	}
	return dst, ss
}

func applySS(p *Patient, ss *[6]*string) {
	sec := SocialSecurity{
		IDAssurance:   deref(ss[0]),
		FirstName:     deref(ss[1]),
		LastName:      deref(ss[2]),
		Address:       deref(ss[3]),
		CodePostal:    deref(ss[4]),
		TypeAssurance: deref(ss[5]),
	}
	if !sec.Empty() {
		p.SocialSecurity = &sec
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func scanPatient(row pgx.Row) (*Patient, error) {
	var p Patient
	dst, ss := scanFields(&p)
	if err := row.Scan(dst...); err != nil {
		return nil, err
	}
	applySS(&p, ss)
	return &p, nil
}

func collectPatients(rows pgx.Rows, total int) ([]*Patient, int, error) {
	var patients []*Patient
	for rows.Next() {
		var p Patient
		dst, ss := scanFields(&p)
		if err := rows.Scan(dst...); err != nil {
			return nil, 0, err
		}
		applySS(&p, ss)
		patients = append(patients, &p)
	}
	return patients, total, rows.Err()
}

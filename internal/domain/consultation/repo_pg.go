package consultation

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

const consCols = `id, patient_id, date, time, reason, price, status,
	treatment_plan, follow_up_actions, acts, created_at, updated_at`

func (r *repoPG) Create(ctx context.Context, cons *Consultation) error {
	cons.ID = uuid.New()
	if cons.Acts == nil {
		cons.Acts = []string{}
	}
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO consultation (
			id, patient_id, date, time, reason, price, status,
			treatment_plan, follow_up_actions, acts
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`,
		cons.ID, cons.PatientID, cons.Date, cons.Time, cons.Reason, cons.Price, cons.Status,
		cons.TreatmentPlan, cons.FollowUpActions, cons.Acts,
	)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Consultation, error) {
	cons, err := scanCons(r.conn(ctx).QueryRow(ctx,
		`SELECT `+consCols+` FROM consultation WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperror.NotFound("consultation %s not found", id)
	}
	return cons, err
}

func (r *repoPG) Update(ctx context.Context, cons *Consultation) error {
	if cons.Acts == nil {
		cons.Acts = []string{}
	}
	tag, err := r.conn(ctx).Exec(ctx, `
		UPDATE consultation SET
			date=$2, time=$3, reason=$4, price=$5, status=$6,
			treatment_plan=$7, follow_up_actions=$8, acts=$9, updated_at=NOW()
		WHERE id = $1`,
		cons.ID, cons.Date, cons.Time, cons.Reason, cons.Price, cons.Status,
		cons.TreatmentPlan, cons.FollowUpActions, cons.Acts,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperror.NotFound("consultation %s not found", cons.ID)
	}
	return nil
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.conn(ctx).Exec(ctx, `DELETE FROM consultation WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperror.NotFound("consultation %s not found", id)
	}
	return nil
}

func (r *repoPG) List(ctx context.Context, limit, offset int) ([]*Consultation, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM consultation`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+consCols+` FROM consultation ORDER BY date DESC, time DESC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	return collectCons(rows, total)
}

func (r *repoPG) ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Consultation, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx,
		`SELECT COUNT(*) FROM consultation WHERE patient_id = $1`, patientID).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+consCols+` FROM consultation WHERE patient_id = $1 ORDER BY date DESC, time DESC LIMIT $2 OFFSET $3`,
		patientID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	return collectCons(rows, total)
}

func (r *repoPG) DeleteByPatient(ctx context.Context, patientID uuid.UUID) (int, error) {
	tag, err := r.conn(ctx).Exec(ctx,
		`DELETE FROM consultation WHERE patient_id = $1`, patientID)
	if err != nil {
		return 0, err
	}
	return int(tag.RowsAffected()), nil
}

func (r *repoPG) ActCodeInUse(ctx context.Context, code string) (bool, error) {
	var inUse bool
	err := r.conn(ctx).QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM consultation WHERE $1 = ANY(acts))`, code).Scan(&inUse)
	return inUse, err
}

func scanCons(row pgx.Row) (*Consultation, error) {
	var c Consultation
	err := row.Scan(
		&c.ID, &c.PatientID, &c.Date, &c.Time, &c.Reason, &c.Price, &c.Status,
		&c.TreatmentPlan, &c.FollowUpActions, &c.Acts, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func collectCons(rows pgx.Rows, total int) ([]*Consultation, int, error) {
	var cons []*Consultation
	for rows.Next() {
		c, err := scanCons(rows)
		if err != nil {
			return nil, 0, err
		}
		cons = append(cons, c)
	}
	return cons, total, rows.Err()
}

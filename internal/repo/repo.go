package repo

import (
	"context"
	"database/sql"
	"time"
)

// Calculation is one saved evaluator run: the input echoed in its native
// units plus the result in display units. History is bookkeeping only;
// saved rows are never fed back into a computation.
type Calculation struct {
	ID              int       `json:"id"`
	Units           string    `json:"units"`
	Span            float64   `json:"span"`
	EMod            float64   `json:"e_mod"`
	Inertia         float64   `json:"inertia"`
	LoadKind        string    `json:"load_kind"`
	Magnitude       float64   `json:"magnitude"`
	ReactionKN      float64   `json:"reaction_kn"`
	PeakShearKN     float64   `json:"peak_shear_kn"`
	PeakMomentKNM   float64   `json:"peak_moment_knm"`
	MaxDeflectionMM float64   `json:"max_deflection_mm"`
	CreatedAt       time.Time `json:"created_at"`
}

type Repository interface {
	CreateUser(ctx context.Context, login, email, password string) (int, error)
	GetByLogin(ctx context.Context, login string) (int, string, error)
	SaveCalculation(ctx context.Context, userID int, c Calculation) (int, error)
	ListCalculations(ctx context.Context, userID int) ([]Calculation, error)
	GetCalculation(ctx context.Context, userID, id int) (Calculation, error)
}

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresDB(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) CreateUser(ctx context.Context, login, email, password string) (int, error) {
	var id int
	query := "INSERT INTO users (login, email, password) VALUES ($1, $2, $3) RETURNING id"
	err := r.db.QueryRowContext(ctx, query, login, email, password).Scan(&id)
	return id, err
}

func (r *PostgresRepository) GetByLogin(ctx context.Context, login string) (int, string, error) {
	var id int
	var hash string

	query := "SELECT id, password FROM users WHERE login=$1"

	err := r.db.QueryRowContext(ctx, query, login).Scan(&id, &hash)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, "", nil
		}
		return 0, "", err
	}
	return id, hash, nil
}

func (r *PostgresRepository) SaveCalculation(ctx context.Context, userID int, c Calculation) (int, error) {
	var id int
	query := `INSERT INTO calculations
		(user_id, units, span, e_mod, inertia, load_kind, magnitude,
		 reaction_kn, peak_shear_kn, peak_moment_knm, max_deflection_mm)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`
	err := r.db.QueryRowContext(ctx, query,
		userID, c.Units, c.Span, c.EMod, c.Inertia, c.LoadKind, c.Magnitude,
		c.ReactionKN, c.PeakShearKN, c.PeakMomentKNM, c.MaxDeflectionMM).Scan(&id)
	return id, err
}

func (r *PostgresRepository) ListCalculations(ctx context.Context, userID int) ([]Calculation, error) {
	query := `SELECT id, units, span, e_mod, inertia, load_kind, magnitude,
		reaction_kn, peak_shear_kn, peak_moment_knm, max_deflection_mm, created_at
		FROM calculations WHERE user_id=$1 ORDER BY created_at DESC LIMIT 100`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Calculation
	for rows.Next() {
		var c Calculation
		if err := rows.Scan(&c.ID, &c.Units, &c.Span, &c.EMod, &c.Inertia,
			&c.LoadKind, &c.Magnitude, &c.ReactionKN, &c.PeakShearKN,
			&c.PeakMomentKNM, &c.MaxDeflectionMM, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) GetCalculation(ctx context.Context, userID, id int) (Calculation, error) {
	query := `SELECT id, units, span, e_mod, inertia, load_kind, magnitude,
		reaction_kn, peak_shear_kn, peak_moment_knm, max_deflection_mm, created_at
		FROM calculations WHERE user_id=$1 AND id=$2`
	var c Calculation
	err := r.db.QueryRowContext(ctx, query, userID, id).Scan(&c.ID, &c.Units,
		&c.Span, &c.EMod, &c.Inertia, &c.LoadKind, &c.Magnitude,
		&c.ReactionKN, &c.PeakShearKN, &c.PeakMomentKNM, &c.MaxDeflectionMM, &c.CreatedAt)
	return c, err
}

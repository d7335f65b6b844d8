package experience

import (
	"database/sql"

	"github.com/lib/pq"
)

type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(e *Experience) error {
	query := `INSERT INTO experiences (id, company, role, period, description, technologies, logo, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.Exec(query,
		e.ID, e.Company, e.Role, e.Period, e.Description, pq.Array(e.Technologies),
		e.Logo, e.CreatedAt, e.UpdatedAt,
	)
	return err
}

func (r *Repository) GetByID(id string) (*Experience, error) {
	query := `SELECT id, company, role, period, description, technologies, logo, created_at, updated_at
			  FROM experiences WHERE id = $1`

	e := &Experience{}
	var logo sql.NullString
	err := r.db.QueryRow(query, id).Scan(
		&e.ID, &e.Company, &e.Role, &e.Period, &e.Description, pq.Array(&e.Technologies),
		&logo, &e.CreatedAt, &e.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if logo.Valid {
		e.Logo = &logo.String
	}
	return e, nil
}

func (r *Repository) GetAll() ([]*Experience, error) {
	query := `SELECT id, company, role, period, description, technologies, logo, created_at, updated_at
			  FROM experiences ORDER BY created_at DESC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var experiences []*Experience
	for rows.Next() {
		e := &Experience{}
		var logo sql.NullString
		err := rows.Scan(
			&e.ID, &e.Company, &e.Role, &e.Period, &e.Description, pq.Array(&e.Technologies),
			&logo, &e.CreatedAt, &e.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		if logo.Valid {
			e.Logo = &logo.String
		}
		experiences = append(experiences, e)
	}
	return experiences, rows.Err()
}

func (r *Repository) Update(e *Experience) error {
	query := `UPDATE experiences SET company = $1, role = $2, period = $3, description = $4,
			  technologies = $5, logo = $6, updated_at = $7 WHERE id = $8`

	result, err := r.db.Exec(query,
		e.Company, e.Role, e.Period, e.Description, pq.Array(e.Technologies),
		e.Logo, e.UpdatedAt, e.ID,
	)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Repository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM experiences WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

var _ ExperienceRepository = (*Repository)(nil)

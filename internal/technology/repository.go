package technology

import (
	"database/sql"
)

type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(t *Technology) error {
	query := `INSERT INTO technologies (id, name, icon, category, proficiency, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.Exec(query,
		t.ID, t.Name, t.Icon, t.Category, t.Proficiency, t.CreatedAt, t.UpdatedAt,
	)
	return err
}

func (r *Repository) GetByID(id string) (*Technology, error) {
	query := `SELECT id, name, icon, category, proficiency, created_at, updated_at
			  FROM technologies WHERE id = $1`

	t := &Technology{}
	err := r.db.QueryRow(query, id).Scan(
		&t.ID, &t.Name, &t.Icon, &t.Category, &t.Proficiency, &t.CreatedAt, &t.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (r *Repository) GetAll() ([]*Technology, error) {
	query := `SELECT id, name, icon, category, proficiency, created_at, updated_at
			  FROM technologies ORDER BY proficiency DESC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var technologies []*Technology
	for rows.Next() {
		t := &Technology{}
		err := rows.Scan(
			&t.ID, &t.Name, &t.Icon, &t.Category, &t.Proficiency, &t.CreatedAt, &t.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		technologies = append(technologies, t)
	}
	return technologies, rows.Err()
}

func (r *Repository) Update(t *Technology) error {
	query := `UPDATE technologies SET name = $1, icon = $2, category = $3, proficiency = $4,
			  updated_at = $5 WHERE id = $6`

	result, err := r.db.Exec(query,
		t.Name, t.Icon, t.Category, t.Proficiency, t.UpdatedAt, t.ID,
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
	result, err := r.db.Exec(`DELETE FROM technologies WHERE id = $1`, id)
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

var _ TechnologyRepository = (*Repository)(nil)

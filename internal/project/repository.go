package project

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

func (r *Repository) Create(p *Project) error {
	query := `INSERT INTO projects (id, title, description, image, technologies, live_url, github_url, featured, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.db.Exec(query,
		p.ID, p.Title, p.Description, p.Image, pq.Array(p.Technologies),
		p.LiveURL, p.GithubURL, p.Featured, p.CreatedAt, p.UpdatedAt,
	)
	return err
}

func (r *Repository) GetByID(id string) (*Project, error) {
	query := `SELECT id, title, description, image, technologies, live_url, github_url, featured, created_at, updated_at
			  FROM projects WHERE id = $1`

	p := &Project{}
	var liveURL, githubURL sql.NullString
	err := r.db.QueryRow(query, id).Scan(
		&p.ID, &p.Title, &p.Description, &p.Image, pq.Array(&p.Technologies),
		&liveURL, &githubURL, &p.Featured, &p.CreatedAt, &p.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if liveURL.Valid {
		p.LiveURL = &liveURL.String
	}
	if githubURL.Valid {
		p.GithubURL = &githubURL.String
	}
	return p, nil
}

func (r *Repository) GetAll() ([]*Project, error) {
	query := `SELECT id, title, description, image, technologies, live_url, github_url, featured, created_at, updated_at
			  FROM projects ORDER BY created_at DESC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []*Project
	for rows.Next() {
		p := &Project{}
		var liveURL, githubURL sql.NullString
		err := rows.Scan(
			&p.ID, &p.Title, &p.Description, &p.Image, pq.Array(&p.Technologies),
			&liveURL, &githubURL, &p.Featured, &p.CreatedAt, &p.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		if liveURL.Valid {
			p.LiveURL = &liveURL.String
		}
		if githubURL.Valid {
			p.GithubURL = &githubURL.String
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

func (r *Repository) Update(p *Project) error {
	query := `UPDATE projects SET title = $1, description = $2, image = $3, technologies = $4,
			  live_url = $5, github_url = $6, featured = $7, updated_at = $8 WHERE id = $9`

	result, err := r.db.Exec(query,
		p.Title, p.Description, p.Image, pq.Array(p.Technologies),
		p.LiveURL, p.GithubURL, p.Featured, p.UpdatedAt, p.ID,
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
	result, err := r.db.Exec(`DELETE FROM projects WHERE id = $1`, id)
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

var _ ProjectRepository = (*Repository)(nil)

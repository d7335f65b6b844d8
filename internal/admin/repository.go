package admin

import (
	"database/sql"
)

type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(a *Admin) error {
	query := `INSERT INTO admin_users (id, email, password_hash, created_at) VALUES ($1, $2, $3, $4)`

	_, err := r.db.Exec(query, a.ID, a.Email, a.PasswordHash, a.CreatedAt)
	return err
}

func (r *Repository) GetByEmail(email string) (*Admin, error) {
	query := `SELECT id, email, password_hash, created_at FROM admin_users WHERE email = $1`

	a := &Admin{}
	err := r.db.QueryRow(query, email).Scan(&a.ID, &a.Email, &a.PasswordHash, &a.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *Repository) GetByID(id string) (*Admin, error) {
	query := `SELECT id, email, password_hash, created_at FROM admin_users WHERE id = $1`

	a := &Admin{}
	err := r.db.QueryRow(query, id).Scan(&a.ID, &a.Email, &a.PasswordHash, &a.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *Repository) Count() (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM admin_users`).Scan(&count)
	return count, err
}

var _ AdminRepository = (*Repository)(nil)

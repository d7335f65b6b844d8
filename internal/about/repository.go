package about

import (
	"database/sql"
)

type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Get() (*About, error) {
	query := `SELECT id, name, title, bio, avatar, location, email, phone, cv_url, created_at, updated_at
			  FROM about LIMIT 1`

	a := &About{}
	var avatar, phone, cvURL sql.NullString
	err := r.db.QueryRow(query).Scan(
		&a.ID, &a.Name, &a.Title, &a.Bio, &avatar, &a.Location, &a.Email,
		&phone, &cvURL, &a.CreatedAt, &a.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if avatar.Valid {
		a.Avatar = &avatar.String
	}
	if phone.Valid {
		a.Phone = &phone.String
	}
	if cvURL.Valid {
		a.CVURL = &cvURL.String
	}
	return a, nil
}

func (r *Repository) Create(a *About) error {
	query := `INSERT INTO about (id, name, title, bio, avatar, location, email, phone, cv_url, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.db.Exec(query,
		a.ID, a.Name, a.Title, a.Bio, a.Avatar, a.Location, a.Email,
		a.Phone, a.CVURL, a.CreatedAt, a.UpdatedAt,
	)
	return err
}

func (r *Repository) Update(a *About) error {
	query := `UPDATE about SET name = $1, title = $2, bio = $3, avatar = $4, location = $5,
			  email = $6, phone = $7, cv_url = $8, updated_at = $9 WHERE id = $10`

	result, err := r.db.Exec(query,
		a.Name, a.Title, a.Bio, a.Avatar, a.Location, a.Email,
		a.Phone, a.CVURL, a.UpdatedAt, a.ID,
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

func (r *Repository) GetSocials(aboutID string) ([]*Social, error) {
	rows, err := r.db.Query(`SELECT id, about_id, name, url, icon FROM socials WHERE about_id = $1`, aboutID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var socials []*Social
	for rows.Next() {
		s := &Social{}
		if err := rows.Scan(&s.ID, &s.AboutID, &s.Name, &s.URL, &s.Icon); err != nil {
			return nil, err
		}
		socials = append(socials, s)
	}
	return socials, rows.Err()
}

func (r *Repository) AddSocial(s *Social) error {
	query := `INSERT INTO socials (id, about_id, name, url, icon) VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.Exec(query, s.ID, s.AboutID, s.Name, s.URL, s.Icon)
	return err
}

func (r *Repository) DeleteSocial(id string) error {
	result, err := r.db.Exec(`DELETE FROM socials WHERE id = $1`, id)
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

var _ AboutRepository = (*Repository)(nil)

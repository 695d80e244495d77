package repos

import (
	"neotech/internal/domain"

	"github.com/jmoiron/sqlx"
)

type CategoryRepo struct{ db *sqlx.DB }

func NewCategoryRepo(db *sqlx.DB) *CategoryRepo { return &CategoryRepo{db: db} }

func (r *CategoryRepo) List() ([]domain.Category, error) {
	var out []domain.Category
	err := r.db.Select(&out, `SELECT id, name FROM categories ORDER BY id`)
	return out, err
}

func (r *CategoryRepo) Get(id int64) (domain.Category, error) {
	var c domain.Category
	err := r.db.Get(&c, `SELECT id, name FROM categories WHERE id=?`, id)
	return c, err
}

func (r *CategoryRepo) Create(name string) error {
	_, err := r.db.Exec(`INSERT INTO categories(name) VALUES(?)`, name)
	return err
}

func (r *CategoryRepo) Update(id int64, name string) error {
	_, err := r.db.Exec(`UPDATE categories SET name=? WHERE id=?`, name, id)
	return err
}

// Delete removes the category row only. Products keep their category_id;
// dangling references are tolerated by the storefront queries.
func (r *CategoryRepo) Delete(id int64) error {
	_, err := r.db.Exec(`DELETE FROM categories WHERE id=?`, id)
	return err
}

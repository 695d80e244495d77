package repos

import (
	"neotech/internal/domain"

	"github.com/jmoiron/sqlx"
)

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

const productCols = `id, name, price, COALESCE(category_id,0) AS category_id,
  description, image, active, created_at`

func (r *ProductRepo) Get(id int64) (domain.Product, error) {
	var p domain.Product
	err := r.db.Get(&p, `SELECT `+productCols+` FROM products WHERE id=?`, id)
	return p, err
}

// ListActive returns the storefront landing set, newest first.
func (r *ProductRepo) ListActive(limit int) ([]domain.Product, error) {
	var out []domain.Product
	err := r.db.Select(&out, `
	  SELECT `+productCols+` FROM products
	  WHERE active=1 ORDER BY id DESC LIMIT ?
	`, limit)
	return out, err
}

func (r *ProductRepo) ListByCategory(catID int64) ([]domain.Product, error) {
	var out []domain.Product
	err := r.db.Select(&out, `
	  SELECT `+productCols+` FROM products
	  WHERE category_id=? AND active=1
	`, catID)
	return out, err
}

// Recommendations returns up to limit other active products for the
// product detail page.
func (r *ProductRepo) Recommendations(excludeID int64, limit int) ([]domain.Product, error) {
	var out []domain.Product
	err := r.db.Select(&out, `
	  SELECT `+productCols+` FROM products
	  WHERE id != ? AND active=1 LIMIT ?
	`, excludeID, limit)
	return out, err
}

// ListAll includes inactive products (admin dashboard).
func (r *ProductRepo) ListAll() ([]domain.Product, error) {
	var out []domain.Product
	err := r.db.Select(&out, `SELECT `+productCols+` FROM products`)
	return out, err
}

func (r *ProductRepo) Create(name string, price int64, categoryID int64, image, description string) error {
	_, err := r.db.Exec(`
	  INSERT INTO products(name,price,category_id,image,description)
	  VALUES(?,?,NULLIF(?,0),?,?)
	`, name, price, categoryID, image, description)
	return err
}

func (r *ProductRepo) Update(id int64, name string, price int64, categoryID int64, image, description string, active bool) error {
	_, err := r.db.Exec(`
	  UPDATE products SET name=?, price=?, category_id=NULLIF(?,0), image=?, description=?, active=?
	  WHERE id=?
	`, name, price, categoryID, image, description, active, id)
	return err
}

func (r *ProductRepo) Delete(id int64) error {
	_, err := r.db.Exec(`DELETE FROM products WHERE id=?`, id)
	return err
}

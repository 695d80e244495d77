package repos

import (
	"neotech/internal/domain"

	"github.com/jmoiron/sqlx"
)

type OrderRepo struct{ db *sqlx.DB }

func NewOrderRepo(db *sqlx.DB) *OrderRepo { return &OrderRepo{db: db} }

// CreateWithItems writes the order header and its line items in a single
// transaction so a crash can never leave a PAID order with no items.
func (r *OrderRepo) CreateWithItems(userID *int64, total int64, status, reference string, lines domain.Cart) (int64, error) {
	tx, err := r.db.Beginx()
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.Exec(`INSERT INTO orders(user_id,total,status,reference) VALUES(?,?,?,?)`,
		userID, total, status, reference)
	if err != nil {
		return 0, err
	}
	orderID, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	for _, l := range lines {
		if _, err := tx.Exec(`INSERT INTO order_items(order_id,product_id,qty,price) VALUES(?,?,?,?)`,
			orderID, l.ProductID, l.Qty, l.Price); err != nil {
			return 0, err
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return orderID, nil
}

func (r *OrderRepo) Get(id int64) (domain.Order, []domain.OrderItem, error) {
	var o domain.Order
	if err := r.db.Get(&o, `
	  SELECT id, user_id, total, status, COALESCE(reference,'') AS reference, created_at
	  FROM orders WHERE id=?
	`, id); err != nil {
		return domain.Order{}, nil, err
	}
	var items []domain.OrderItem
	if err := r.db.Select(&items, `
	  SELECT id, order_id, COALESCE(product_id,0) AS product_id, qty, price
	  FROM order_items WHERE order_id=?
	`, id); err != nil {
		return domain.Order{}, nil, err
	}
	return o, items, nil
}

func (r *OrderRepo) ListLatest(limit int) ([]domain.Order, error) {
	if limit <= 0 {
		limit = 30
	}
	var out []domain.Order
	err := r.db.Select(&out, `
	  SELECT id, user_id, total, status, COALESCE(reference,'') AS reference, created_at
	  FROM orders ORDER BY id DESC LIMIT ?
	`, limit)
	return out, err
}

func (r *OrderRepo) ListByUser(userID int64) ([]domain.Order, error) {
	var out []domain.Order
	err := r.db.Select(&out, `
	  SELECT id, user_id, total, status, COALESCE(reference,'') AS reference, created_at
	  FROM orders WHERE user_id=? ORDER BY id DESC
	`, userID)
	return out, err
}

// UpdateStatus overwrites the status column with whatever the admin form
// submitted; no state machine is enforced here.
func (r *OrderRepo) UpdateStatus(id int64, status string) error {
	_, err := r.db.Exec(`UPDATE orders SET status=? WHERE id=?`, status, id)
	return err
}

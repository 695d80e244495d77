package domain

type Category struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}

// Product prices are integer minor currency units (kobo/cents).
type Product struct {
	ID          int64  `db:"id"`
	Name        string `db:"name"`
	Price       int64  `db:"price"`
	CategoryID  int64  `db:"category_id"`
	Description string `db:"description"`
	Image       string `db:"image"`
	Active      bool   `db:"active"`
	CreatedAt   string `db:"created_at"`
}

type Order struct {
	ID        int64  `db:"id"`
	UserID    *int64 `db:"user_id"` // nil for guest orders
	Total     int64  `db:"total"`
	Status    string `db:"status"` // PENDING | PAID
	Reference string `db:"reference"`
	CreatedAt string `db:"created_at"`
}

// OrderItem is a snapshot taken at order creation; later product edits
// never alter historical orders.
type OrderItem struct {
	ID        int64 `db:"id"`
	OrderID   int64 `db:"order_id"`
	ProductID int64 `db:"product_id"`
	Qty       int   `db:"qty"`
	Price     int64 `db:"price"`
}

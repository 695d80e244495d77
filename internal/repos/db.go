package repos

import (
	"log"

	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"
	_ "modernc.org/sqlite"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// One connection total: keeps :memory: databases coherent and matches
	// the single-writer model SQLite gives us anyway.
	db.SetMaxOpenConns(1)
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	if err := seedAdmin(db); err != nil {
		return nil, err
	}
	if err := seedCatalog(db); err != nil {
		return nil, err
	}
	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	// products.category_id deliberately carries no foreign key: deleting a
	// category leaves the reference dangling, matching the storefront's
	// observed behavior.
	schema := `
CREATE TABLE IF NOT EXISTS users(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  email TEXT NOT NULL UNIQUE,
  password_hash TEXT NOT NULL,
  role TEXT NOT NULL DEFAULT 'customer',
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email_nocase ON users(LOWER(email));

CREATE TABLE IF NOT EXISTS categories(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS products(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL,
  price INTEGER NOT NULL CHECK (price >= 0),
  category_id INTEGER,
  description TEXT NOT NULL DEFAULT '',
  image TEXT NOT NULL DEFAULT '',
  active INTEGER NOT NULL DEFAULT 1,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_products_category ON products(category_id);
CREATE INDEX IF NOT EXISTS idx_products_active   ON products(active);

CREATE TABLE IF NOT EXISTS orders(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  user_id INTEGER,
  total INTEGER NOT NULL,
  status TEXT NOT NULL DEFAULT 'PENDING',
  reference TEXT,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_orders_created_at ON orders(created_at);

CREATE TABLE IF NOT EXISTS order_items(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  order_id INTEGER NOT NULL,
  product_id INTEGER,
  qty INTEGER NOT NULL,
  price INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_order_items_order ON order_items(order_id);

CREATE TABLE IF NOT EXISTS sessions(
  id TEXT PRIMARY KEY,
  user_id INTEGER,
  cart_json TEXT NOT NULL DEFAULT '[]',
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  expires_at TEXT
);
CREATE INDEX IF NOT EXISTS idx_sessions_user ON sessions(user_id);
`
	_, err := db.Exec(schema)
	return err
}

// seedAdmin ensures the bootstrap admin account exists (idempotent).
func seedAdmin(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM users WHERE email=?`, "admin@neotech.local"); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), 10)
	if err != nil {
		return err
	}
	log.Println("[seed] creating admin user admin@neotech.local")
	_, err = db.Exec(`INSERT INTO users(email,password_hash,role) VALUES(?,?,'admin')`,
		"admin@neotech.local", string(hash))
	return err
}

// seedCatalog inserts demo categories and products when the catalog is empty.
// Safe to run on every startup.
func seedCatalog(db *sqlx.DB) error {
	tx := db.MustBegin()
	defer func() { _ = tx.Rollback() }()

	for _, name := range []string{"Phones & Tablets", "Computers", "Audio", "Gaming", "Wearables"} {
		if _, err := tx.Exec(`
			INSERT INTO categories(name)
			SELECT ? WHERE NOT EXISTS (SELECT 1 FROM categories WHERE name=?)
		`, name, name); err != nil {
			return err
		}
	}

	var n int
	if err := tx.Get(&n, `SELECT COUNT(*) FROM products`); err != nil {
		return err
	}
	if n == 0 {
		log.Println("[seed] inserting demo products")
		tx.MustExec(`INSERT INTO products(name,price,category_id,description,image) VALUES
		  ('NeoPhone X1',      250000, 1, '6.7" AMOLED, 5G, 128GB',    '/img/phone.png'),
		  ('Tab Pro 11',       310000, 1, '11" IPS, 8GB/256GB',        '/img/tablet.png'),
		  ('UltraBook 14',     890000, 2, 'Core i7, 16GB/512GB SSD',   '/img/laptop.png'),
		  ('BassPods Wireless', 68000, 3, 'ANC earbuds, 24h battery',  '/img/earbuds.png'),
		  ('GameBox One S',    420000, 4, '4K HDR console',            '/img/console.png'),
		  ('NeoWatch S',        95000, 5, 'AMOLED, GPS, SpO2',         '/img/watch.png')`)
	}

	return tx.Commit()
}

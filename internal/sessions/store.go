// Package sessions keeps browser sessions in SQLite: the sid cookie maps to
// one row holding the (nullable) logged-in user and the cart as JSON. The
// cart itself is a domain.Cart value; this package only loads and saves it.
package sessions

import (
	"database/sql"
	"encoding/json"
	"time"

	"neotech/internal/domain"

	"github.com/jmoiron/sqlx"
)

const TTL = 24 * time.Hour

type Store struct{ db *sqlx.DB }

func NewStore(db *sqlx.DB) *Store { return &Store{db: db} }

type row struct {
	ID        string        `db:"id"`
	UserID    sql.NullInt64 `db:"user_id"`
	CartJSON  string        `db:"cart_json"`
	ExpiresAt string        `db:"expires_at"`
}

// Session is a point-in-time view of one browser session.
type Session struct {
	ID     string
	UserID *int64
	Cart   domain.Cart
}

// ensure inserts a fresh row for sid, or resets an expired one.
func (s *Store) ensure(sid string) error {
	_, err := s.db.Exec(`
	  INSERT INTO sessions(id, cart_json, expires_at) VALUES(?, '[]', ?)
	  ON CONFLICT(id) DO NOTHING
	`, sid, time.Now().UTC().Add(TTL).Format(time.RFC3339))
	return err
}

// Get loads the session for sid, creating it on first sight. An expired
// session is replaced with an empty one under the same id.
func (s *Store) Get(sid string) (Session, error) {
	if err := s.ensure(sid); err != nil {
		return Session{}, err
	}
	var r row
	if err := s.db.Get(&r, `
	  SELECT id, user_id, cart_json, COALESCE(expires_at,'') AS expires_at
	  FROM sessions WHERE id=?
	`, sid); err != nil {
		return Session{}, err
	}
	if exp, err := time.Parse(time.RFC3339, r.ExpiresAt); err == nil && time.Now().UTC().After(exp) {
		if err := s.reset(sid); err != nil {
			return Session{}, err
		}
		return Session{ID: sid, Cart: domain.Cart{}}, nil
	}
	sess := Session{ID: sid, Cart: domain.Cart{}}
	if r.UserID.Valid {
		uid := r.UserID.Int64
		sess.UserID = &uid
	}
	if r.CartJSON != "" {
		_ = json.Unmarshal([]byte(r.CartJSON), &sess.Cart)
	}
	return sess, nil
}

func (s *Store) reset(sid string) error {
	_, err := s.db.Exec(`
	  UPDATE sessions SET user_id=NULL, cart_json='[]', expires_at=? WHERE id=?
	`, time.Now().UTC().Add(TTL).Format(time.RFC3339), sid)
	return err
}

// SaveCart persists the cart value back onto the session row.
func (s *Store) SaveCart(sid string, cart domain.Cart) error {
	if cart == nil {
		cart = domain.Cart{}
	}
	b, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	if err := s.ensure(sid); err != nil {
		return err
	}
	_, err = s.db.Exec(`UPDATE sessions SET cart_json=? WHERE id=?`, string(b), sid)
	return err
}

func (s *Store) BindUser(sid string, userID int64) error {
	if err := s.ensure(sid); err != nil {
		return err
	}
	_, err := s.db.Exec(`UPDATE sessions SET user_id=? WHERE id=?`, userID, sid)
	return err
}

func (s *Store) UnbindUser(sid string) error {
	_, err := s.db.Exec(`UPDATE sessions SET user_id=NULL WHERE id=?`, sid)
	return err
}

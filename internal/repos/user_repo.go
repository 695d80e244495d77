package repos

import (
	"neotech/internal/domain"

	"github.com/jmoiron/sqlx"
)

type UserRepo struct{ DB *sqlx.DB }

func NewUserRepo(db *sqlx.DB) *UserRepo { return &UserRepo{DB: db} }

func (r *UserRepo) ByEmail(email string) (*domain.User, error) {
	var u domain.User
	err := r.DB.Get(&u, `SELECT id,email,password_hash,role FROM users WHERE LOWER(email)=LOWER(?)`, email)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) ByID(id int64) (*domain.User, error) {
	var u domain.User
	err := r.DB.Get(&u, `SELECT id,email,password_hash,role FROM users WHERE id=?`, id)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Create inserts a customer account. The role column is never taken from
// request input; registration cannot self-escalate.
func (r *UserRepo) Create(email, hash string) (int64, error) {
	res, err := r.DB.Exec(`INSERT INTO users(email,password_hash,role) VALUES(?,?,'customer')`, email, hash)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

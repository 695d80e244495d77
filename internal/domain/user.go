package domain

type User struct {
	ID    int64  `db:"id"`
	Email string `db:"email"`
	Hash  string `db:"password_hash"`
	Role  string `db:"role"` // customer | admin
}

func (u *User) IsAdmin() bool { return u != nil && u.Role == "admin" }

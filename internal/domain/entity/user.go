package entity

import "time"

// User representa un usuario que puede iniciar sesión.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt
	Name         string
	CreatedAt    time.Time
}

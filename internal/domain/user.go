package domain

import "time"

// User учетная запись оператора
type User struct {
	Name         string
	Surname      string
	Email        string
	Username     string
	PasswordHash string
	RegisteredAt time.Time
}

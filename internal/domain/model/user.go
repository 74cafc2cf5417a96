package model

type User struct {
	ID             int    `json:"id"`
	Username       string `json:"username"`
	HashedPassword string `json:"-"` // Not exposed
	IsAdmin        bool   `json:"isAdmin"`
}

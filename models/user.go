package models

import "time"

type User struct {
	ID        string    `json:"id" bson:"_id"`
	Nama      string    `json:"nama" bson:"nama"`
	Username  string    `json:"username" bson:"username"`
	Password  string    `json:"-" bson:"password"`
	Role      string    `json:"role" bson:"role"` // admin / kasir
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

type LoginInput struct {
	Username string `json:"username" example:"kasir1"`
	Password string `json:"password" example:"rahasia"`
}

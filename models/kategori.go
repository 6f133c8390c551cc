package models

import "time"

type Kategori struct {
	ID        string    `json:"id" bson:"_id"`
	Nama      string    `json:"nama" bson:"nama"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

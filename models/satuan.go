package models

import "time"

// Satuan jual produk (pcs, kg, dus, dst).
type Satuan struct {
	ID        string    `json:"id" bson:"_id"`
	Nama      string    `json:"nama" bson:"nama"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

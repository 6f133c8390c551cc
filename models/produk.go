package models

import (
	"time"
)

// Harga disimpan sebagai Rupiah utuh (tanpa sen), mengikuti data toko.
type Produk struct {
	ID        string    `json:"id" bson:"_id"`
	Nama      string    `json:"nama" bson:"nama"`
	Harga     int64     `json:"harga" bson:"harga"`
	Kategori  string    `json:"kategori" bson:"kategori"`
	Satuan    string    `json:"satuan,omitempty" bson:"satuan,omitempty"`
	Gambar    string    `json:"gambar,omitempty" bson:"gambar,omitempty"`
	Stok      int       `json:"stok" bson:"stok"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// ProdukInput adalah struct untuk input data produk (tanpa ID dan CreatedAt)
type ProdukInput struct {
	Nama     string `json:"nama" example:"Kopi Kapal Api"`
	Harga    int64  `json:"harga" example:"1500"`
	Kategori string `json:"kategori" example:"Minuman"`
	Satuan   string `json:"satuan" example:"pcs"`
	Gambar   string `json:"gambar" example:"https://example.com/kopi.png"`
	Stok     int    `json:"stok" example:"100"`
}

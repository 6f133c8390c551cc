package models

import "time"

// StokMutasi adalah catatan pergerakan stok: restock (masuk) atau penjualan
// (keluar). Saldo berjalan tetap dipegang field Stok di Produk; mutasi hanya
// jejak audit.
type StokMutasi struct {
	ID         string    `json:"id" bson:"_id"`
	ProdukID   string    `json:"produk_id" bson:"produk_id"`
	Jenis      string    `json:"jenis" bson:"jenis"` // masuk / keluar
	Jumlah     int       `json:"jumlah" bson:"jumlah"`
	RefID      string    `json:"ref_id,omitempty" bson:"ref_id,omitempty"`
	Keterangan string    `json:"keterangan,omitempty" bson:"keterangan,omitempty"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at"`
}

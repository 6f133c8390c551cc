package models

import "time"

// GrupPelanggan adalah tingkatan harga (pengecer, warung, tetangga, dst).
// Grup kosong berarti harga umum/eceran.
type GrupPelanggan struct {
	ID        string    `json:"id" bson:"_id"`
	Nama      string    `json:"nama" bson:"nama"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// HargaGrosir adalah harga khusus satu produk untuk satu grup pelanggan.
// Pasangan (produk_id, grup_id) unik, dijaga index di repository.
type HargaGrosir struct {
	ID        string    `json:"id" bson:"_id"`
	ProdukID  string    `json:"produk_id" bson:"produk_id"`
	GrupID    string    `json:"grup_id" bson:"grup_id"`
	Harga     int64     `json:"harga" bson:"harga"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

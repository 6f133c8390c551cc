package models

import "time"

type KeranjangItem struct {
	ProdukID    string `json:"produk_id" bson:"produk_id"`
	Nama        string `json:"nama" bson:"nama"`
	Harga       int64  `json:"harga" bson:"harga"`
	Jumlah      int    `json:"jumlah" bson:"jumlah"`
	HargaGrosir bool   `json:"harga_grosir" bson:"harga_grosir"`
}

// Keranjang milik satu kasir. Satu dokumen per kasir, _id = kasir_id.
type Keranjang struct {
	KasirID   string          `json:"kasir_id" bson:"_id"`
	Items     []KeranjangItem `json:"items" bson:"items"`
	UpdatedAt time.Time       `json:"updated_at" bson:"updated_at"`
}

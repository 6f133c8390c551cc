package models

import "time"

// Metode pembayaran yang dikenal kasir.
const (
	MetodeCash     = "Cash"
	MetodeQRIS     = "QRIS"
	MetodeTransfer = "Transfer"
)

// TransaksiItem adalah snapshot barang saat dibeli. Tag json mengikuti format
// lama di spreadsheet (name/price/qty) agar data impor tetap terbaca.
type TransaksiItem struct {
	Nama   string `json:"name" bson:"name"`
	Harga  int64  `json:"price" bson:"price"`
	Jumlah int    `json:"qty" bson:"qty"`
}

// Transaksi dibuat sekali saat checkout dan tidak pernah diubah.
// Total adalah nominal yang benar-benar dibayar; subtotal/diskon pada data
// lama bisa kosong dan dihitung ulang lewat service.RebuildStruk.
type Transaksi struct {
	ID          string          `json:"id" bson:"_id"`
	Tanggal     string          `json:"tanggal" bson:"tanggal"`
	Items       []TransaksiItem `json:"items,omitempty" bson:"items,omitempty"`
	LegacyItems string          `json:"legacy_items,omitempty" bson:"legacy_items,omitempty"`
	Subtotal    int64           `json:"subtotal" bson:"subtotal"`
	Diskon      int64           `json:"diskon" bson:"diskon"`
	Total       int64           `json:"total" bson:"total"`
	Metode      string          `json:"metode" bson:"metode"`
	Tunai       int64           `json:"tunai" bson:"tunai"`
	Kembalian   int64           `json:"kembalian" bson:"kembalian"`
	BuktiURL    string          `json:"bukti_url,omitempty" bson:"bukti_url,omitempty"`
	KasirID     string          `json:"kasir_id" bson:"kasir_id"`
	CreatedAt   time.Time       `json:"created_at" bson:"created_at"`
}

// Struk adalah tampilan transaksi yang sudah direkonsiliasi: item sudah
// di-parse, subtotal/diskon dihitung ulang dari item, tanggal sudah normal.
type Struk struct {
	ID        string          `json:"id"`
	Tanggal   time.Time       `json:"tanggal"`
	Items     []TransaksiItem `json:"items"`
	Subtotal  int64           `json:"subtotal"`
	Diskon    int64           `json:"diskon"`
	Total     int64           `json:"total"`
	Metode    string          `json:"metode"`
	Tunai     int64           `json:"tunai"`
	Kembalian int64           `json:"kembalian"`
	BuktiURL  string          `json:"bukti_url,omitempty"`
}

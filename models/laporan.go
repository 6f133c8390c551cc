package models

// PendapatanHarian adalah satu bucket grafik 7 hari terakhir.
type PendapatanHarian struct {
	Tanggal string `json:"tanggal"` // YYYY-MM-DD, zona waktu toko
	Label   string `json:"label"`   // "26 Jan"
	Total   int64  `json:"total"`
}

type ProdukTerjual struct {
	Nama   string `json:"nama"`
	Jumlah int    `json:"jumlah"`
}

type MetodeCount struct {
	Metode string `json:"metode"`
	Jumlah int    `json:"jumlah"`
}

// Laporan adalah agregat dashboard dari seluruh riwayat transaksi.
type Laporan struct {
	TotalPendapatan  int64              `json:"total_pendapatan"`
	TotalTransaksi   int                `json:"total_transaksi"`
	RataRataOrder    int64              `json:"rata_rata_order"`
	TotalItemTerjual int                `json:"total_item_terjual"`
	Harian           []PendapatanHarian `json:"harian"`
	ProdukTerlaris   []ProdukTerjual    `json:"produk_terlaris"`
	MetodePembayaran []MetodeCount      `json:"metode_pembayaran"`
	StokMenipis      []Produk           `json:"stok_menipis"`
}

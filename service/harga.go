package service

import (
	"github.com/farhandwk/toko-luwes/models"
)

// GrupUmum adalah nilai grup untuk pelanggan eceran biasa: selalu pakai
// harga katalog.
const GrupUmum = ""

type HasilHarga struct {
	Harga  int64
	Grosir bool
}

// ResolveHarga menentukan harga satuan produk untuk grup pelanggan tertentu.
// Grup umum langsung memakai harga katalog. Selain itu dicari baris harga
// grosir yang cocok produk+grup; kalau tidak ada, jatuh ke harga katalog.
// Kalau entah bagaimana ada lebih dari satu baris yang cocok, baris pertama
// pada urutan daftar yang menang (urutan daftar stabil dari repository).
func ResolveHarga(p models.Produk, grupID string, daftar []models.HargaGrosir) HasilHarga {
	if grupID == GrupUmum {
		return HasilHarga{Harga: p.Harga}
	}
	for _, hg := range daftar {
		if hg.ProdukID == p.ID && hg.GrupID == grupID {
			return HasilHarga{Harga: hg.Harga, Grosir: true}
		}
	}
	return HasilHarga{Harga: p.Harga}
}

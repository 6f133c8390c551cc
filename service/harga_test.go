package service

import (
	"testing"

	"github.com/farhandwk/toko-luwes/models"

	"github.com/stretchr/testify/assert"
)

func TestResolveHargaGrupUmum(t *testing.T) {
	p := models.Produk{ID: "PRD001", Harga: 1500}
	daftar := []models.HargaGrosir{
		{ID: "HRG001", ProdukID: "PRD001", GrupID: "GRP001", Harga: 1200},
	}

	h := ResolveHarga(p, GrupUmum, daftar)
	assert.Equal(t, int64(1500), h.Harga)
	assert.False(t, h.Grosir)
}

func TestResolveHargaGrupCocok(t *testing.T) {
	p := models.Produk{ID: "PRD001", Harga: 1500}
	daftar := []models.HargaGrosir{
		{ID: "HRG001", ProdukID: "PRD001", GrupID: "GRP001", Harga: 1200},
		{ID: "HRG002", ProdukID: "PRD001", GrupID: "GRP002", Harga: 1300},
	}

	h := ResolveHarga(p, "GRP002", daftar)
	assert.Equal(t, int64(1300), h.Harga)
	assert.True(t, h.Grosir)
}

func TestResolveHargaGrupTanpaHargaKhusus(t *testing.T) {
	p := models.Produk{ID: "PRD002", Harga: 14000}
	daftar := []models.HargaGrosir{
		{ID: "HRG001", ProdukID: "PRD001", GrupID: "GRP001", Harga: 1200},
	}

	// Grup valid tapi produk ini tidak punya baris harga, jatuh ke katalog
	h := ResolveHarga(p, "GRP001", daftar)
	assert.Equal(t, int64(14000), h.Harga)
	assert.False(t, h.Grosir)
}

func TestResolveHargaDuplikatBarisPertamaMenang(t *testing.T) {
	p := models.Produk{ID: "PRD001", Harga: 1500}
	daftar := []models.HargaGrosir{
		{ID: "HRG001", ProdukID: "PRD001", GrupID: "GRP001", Harga: 1200},
		{ID: "HRG002", ProdukID: "PRD001", GrupID: "GRP001", Harga: 1100},
	}

	h := ResolveHarga(p, "GRP001", daftar)
	assert.Equal(t, int64(1200), h.Harga)
}

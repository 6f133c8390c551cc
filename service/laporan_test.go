package service

import (
	"testing"
	"time"

	"github.com/farhandwk/toko-luwes/models"
	"github.com/farhandwk/toko-luwes/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildLaporanKosong(t *testing.T) {
	now := time.Date(2026, 1, 26, 10, 0, 0, 0, utils.WIB)
	l := BuildLaporan(nil, nil, now)

	assert.Equal(t, int64(0), l.TotalPendapatan)
	assert.Equal(t, 0, l.TotalTransaksi)
	assert.Equal(t, int64(0), l.RataRataOrder)
	require.Len(t, l.Harian, 7)
	assert.Equal(t, "2026-01-20", l.Harian[0].Tanggal)
	assert.Equal(t, "2026-01-26", l.Harian[6].Tanggal)
	assert.Equal(t, "20 Jan", l.Harian[0].Label)
	for _, h := range l.Harian {
		assert.Equal(t, int64(0), h.Total)
	}
}

func TestBuildLaporanAgregat(t *testing.T) {
	now := time.Date(2026, 1, 26, 10, 0, 0, 0, utils.WIB)
	transaksi := []models.Transaksi{
		{
			ID: "TRX-1", Total: 90000, Metode: models.MetodeCash,
			Items:     []models.TransaksiItem{{Nama: "Beras 5kg", Harga: 45000, Jumlah: 2}},
			CreatedAt: time.Date(2026, 1, 26, 8, 0, 0, 0, utils.WIB),
		},
		{
			ID: "TRX-2", Total: 10000, Metode: models.MetodeQRIS,
			Items:     []models.TransaksiItem{{Nama: "Kopi Kapal Api", Harga: 1500, Jumlah: 4}},
			CreatedAt: time.Date(2026, 1, 25, 19, 30, 0, 0, utils.WIB),
		},
		{
			ID: "TRX-3", Total: 3000, Metode: models.MetodeCash,
			Items:   []models.TransaksiItem{{Nama: " Kopi Kapal Api ", Harga: 1500, Jumlah: 2}},
			Tanggal: "25/01/2026, 9:15:00",
		},
	}

	l := BuildLaporan(transaksi, nil, now)

	assert.Equal(t, int64(103000), l.TotalPendapatan)
	assert.Equal(t, 3, l.TotalTransaksi)
	assert.Equal(t, int64(34333), l.RataRataOrder)
	assert.Equal(t, 8, l.TotalItemTerjual)

	require.Len(t, l.Harian, 7)
	assert.Equal(t, int64(90000), l.Harian[6].Total) // 26 Jan
	assert.Equal(t, int64(13000), l.Harian[5].Total) // 25 Jan, dua transaksi

	// Nama produk di-trim sebelum diagregasi
	require.NotEmpty(t, l.ProdukTerlaris)
	assert.Equal(t, "Kopi Kapal Api", l.ProdukTerlaris[0].Nama)
	assert.Equal(t, 6, l.ProdukTerlaris[0].Jumlah)

	require.Len(t, l.MetodePembayaran, 2)
	assert.Equal(t, models.MetodeCash, l.MetodePembayaran[0].Metode)
	assert.Equal(t, 2, l.MetodePembayaran[0].Jumlah)
}

func TestBuildLaporanTanggalRusakTetapDihitung(t *testing.T) {
	now := time.Date(2026, 1, 26, 10, 0, 0, 0, utils.WIB)
	transaksi := []models.Transaksi{
		{ID: "TRX-1", Total: 5000, Metode: models.MetodeCash, Tanggal: "entah"},
	}

	l := BuildLaporan(transaksi, nil, now)

	// Pendapatan tetap masuk, cuma keluar dari grafik harian
	assert.Equal(t, int64(5000), l.TotalPendapatan)
	for _, h := range l.Harian {
		assert.Equal(t, int64(0), h.Total)
	}
}

func TestBuildLaporanTopProdukDibatasi(t *testing.T) {
	now := time.Date(2026, 1, 26, 10, 0, 0, 0, utils.WIB)
	var items []models.TransaksiItem
	namas := []string{"A", "B", "C", "D", "E", "F", "G"}
	for i, n := range namas {
		items = append(items, models.TransaksiItem{Nama: n, Harga: 1000, Jumlah: i + 1})
	}
	transaksi := []models.Transaksi{
		{ID: "TRX-1", Total: 28000, Metode: models.MetodeCash, Items: items,
			CreatedAt: now},
	}

	l := BuildLaporan(transaksi, nil, now)

	require.Len(t, l.ProdukTerlaris, TopProdukLimit)
	assert.Equal(t, "G", l.ProdukTerlaris[0].Nama)
	assert.Equal(t, 7, l.ProdukTerlaris[0].Jumlah)
	assert.Equal(t, "C", l.ProdukTerlaris[4].Nama)
}

func TestBuildLaporanMetodeKosongJadiCash(t *testing.T) {
	now := time.Date(2026, 1, 26, 10, 0, 0, 0, utils.WIB)
	transaksi := []models.Transaksi{
		{ID: "TRX-1", Total: 5000, CreatedAt: now},
	}

	l := BuildLaporan(transaksi, nil, now)
	require.Len(t, l.MetodePembayaran, 1)
	assert.Equal(t, models.MetodeCash, l.MetodePembayaran[0].Metode)
}

func TestBuildLaporanStokMenipis(t *testing.T) {
	now := time.Date(2026, 1, 26, 10, 0, 0, 0, utils.WIB)
	produk := []models.Produk{
		{ID: "PRD001", Nama: "Habis", Stok: 0},
		{ID: "PRD002", Nama: "Menipis", Stok: 4},
		{ID: "PRD003", Nama: "Pas Batas", Stok: 5},
		{ID: "PRD004", Nama: "Aman", Stok: 100},
		{ID: "PRD005", Nama: "Sisa Satu", Stok: 1},
	}

	l := BuildLaporan(nil, produk, now)

	require.Len(t, l.StokMenipis, 2)
	assert.Equal(t, "Menipis", l.StokMenipis[0].Nama)
	assert.Equal(t, "Sisa Satu", l.StokMenipis[1].Nama)
}

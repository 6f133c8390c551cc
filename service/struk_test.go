package service

import (
	"testing"
	"time"

	"github.com/farhandwk/toko-luwes/models"
	"github.com/farhandwk/toko-luwes/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseItemsTerstruktur(t *testing.T) {
	trx := models.Transaksi{
		Items: []models.TransaksiItem{{Nama: "Kopi", Harga: 1500, Jumlah: 2}},
	}
	items := ParseItems(trx)
	require.Len(t, items, 1)
	assert.Equal(t, "Kopi", items[0].Nama)
}

func TestParseItemsLegacyJSON(t *testing.T) {
	trx := models.Transaksi{
		LegacyItems: `[{"name":"Kopi Kapal Api","price":1500,"qty":2},{"name":"Gula Pasir 1kg","price":14000,"qty":1}]`,
	}
	items := ParseItems(trx)
	require.Len(t, items, 2)
	assert.Equal(t, "Gula Pasir 1kg", items[1].Nama)
	assert.Equal(t, int64(14000), items[1].Harga)
	assert.Equal(t, 1, items[1].Jumlah)
}

func TestParseItemsJSONRusak(t *testing.T) {
	assert.Empty(t, ParseItems(models.Transaksi{LegacyItems: `{"name":"bukan array"}`}))
	assert.Empty(t, ParseItems(models.Transaksi{LegacyItems: `[{"name":`}))
	assert.Empty(t, ParseItems(models.Transaksi{LegacyItems: "  "}))
}

func TestEncodeItemsRoundTrip(t *testing.T) {
	orig := []models.TransaksiItem{{Nama: "Kopi", Harga: 1500, Jumlah: 2}}
	encoded := EncodeItems(orig)
	back := ParseItems(models.Transaksi{LegacyItems: encoded})
	assert.Equal(t, orig, back)
}

func TestRebuildStrukDiskonTurunan(t *testing.T) {
	// Item 91200, total bayar 90000: diskon turunan 1200
	trx := models.Transaksi{
		ID:    "TRX-1700000000000",
		Items: []models.TransaksiItem{{Nama: "Beras 5kg", Harga: 45600, Jumlah: 2}},
		Total: 90000, Metode: models.MetodeCash, Tunai: 100000, Kembalian: 10000,
		CreatedAt: time.Date(2026, 1, 26, 8, 2, 47, 0, utils.WIB),
	}
	s, err := RebuildStruk(trx)
	require.NoError(t, err)
	assert.Equal(t, int64(91200), s.Subtotal)
	assert.Equal(t, int64(1200), s.Diskon)
	assert.Equal(t, int64(90000), s.Total)
	assert.Equal(t, int64(100000), s.Tunai)
	assert.Equal(t, int64(10000), s.Kembalian)
}

func TestRebuildStrukAnomaliItemLebihKecil(t *testing.T) {
	// Item 80000 tapi total bayar 90000: subtotal dinaikkan, diskon nol
	trx := models.Transaksi{
		ID:    "TRX-1700000000001",
		Items: []models.TransaksiItem{{Nama: "Beras 5kg", Harga: 40000, Jumlah: 2}},
		Total: 90000, Metode: models.MetodeQRIS,
		CreatedAt: time.Date(2026, 1, 26, 9, 0, 0, 0, utils.WIB),
	}
	s, err := RebuildStruk(trx)
	require.NoError(t, err)
	assert.Equal(t, int64(90000), s.Subtotal)
	assert.Equal(t, int64(0), s.Diskon)
}

func TestRebuildStrukCashTanpaTunaiAnggapUangPas(t *testing.T) {
	trx := models.Transaksi{
		ID:      "TRX-1700000000002",
		Tanggal: "26/01/2026, 8:02:47",
		Items:   []models.TransaksiItem{{Nama: "Kopi", Harga: 1500, Jumlah: 2}},
		Total:   3000, Metode: models.MetodeCash,
	}
	s, err := RebuildStruk(trx)
	require.NoError(t, err)
	assert.Equal(t, int64(3000), s.Tunai)
	assert.Equal(t, int64(0), s.Kembalian)
}

func TestRebuildStrukTanggalLamaDipakai(t *testing.T) {
	trx := models.Transaksi{
		ID:      "TRX-1700000000003",
		Tanggal: "26/01/2026, 8:02:47",
		Total:   3000, Metode: models.MetodeCash,
	}
	s, err := RebuildStruk(trx)
	require.NoError(t, err)
	assert.Equal(t, 2026, s.Tanggal.Year())
	assert.Equal(t, time.January, s.Tanggal.Month())
	assert.Equal(t, 26, s.Tanggal.Day())
	assert.Equal(t, 8, s.Tanggal.Hour())
}

func TestRebuildStrukTanggalRusakTetapJadi(t *testing.T) {
	trx := models.Transaksi{
		ID:      "TRX-1700000000004",
		Tanggal: "kapan-kapan",
		Total:   3000, Metode: models.MetodeQRIS,
	}
	s, err := RebuildStruk(trx)
	assert.ErrorIs(t, err, ErrTanggalTidakValid)
	// Struk tetap terpakai, tanggal diisi waktu sekarang
	assert.Equal(t, int64(3000), s.Total)
	assert.False(t, s.Tanggal.IsZero())
}

func TestParseTanggalFormatLama(t *testing.T) {
	tgl, err := ParseTanggal("28/12/2025, 14:30:45")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 12, 28, 14, 30, 45, 0, utils.WIB).Unix(), tgl.Unix())
}

func TestParseTanggalJamSatuDigit(t *testing.T) {
	tgl, err := ParseTanggal("26/01/2026, 8:02:47")
	require.NoError(t, err)
	assert.Equal(t, 8, tgl.Hour())
	assert.Equal(t, 2, tgl.Minute())
	assert.Equal(t, 47, tgl.Second())
}

func TestParseTanggalTanpaJam(t *testing.T) {
	tgl, err := ParseTanggal("28/12/2025")
	require.NoError(t, err)
	assert.Equal(t, 0, tgl.Hour())
	assert.Equal(t, 28, tgl.Day())
}

func TestParseTanggalRFC3339(t *testing.T) {
	tgl, err := ParseTanggal("2025-12-28T07:30:45Z")
	require.NoError(t, err)
	// Dikonversi ke zona toko
	assert.Equal(t, 14, tgl.In(utils.WIB).Hour())
}

func TestParseTanggalTidakValid(t *testing.T) {
	for _, s := range []string{"", "besok", "32/13/2025", "28-12-2025", "1/2", "aa/bb/cccc"} {
		_, err := ParseTanggal(s)
		assert.ErrorIs(t, err, ErrTanggalTidakValid, "input %q", s)
	}
}

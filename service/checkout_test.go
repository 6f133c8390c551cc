package service

import (
	"testing"

	"github.com/farhandwk/toko-luwes/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var itemsCheckout = []models.KeranjangItem{
	{ProdukID: "PRD001", Nama: "Kopi Kapal Api", Harga: 1500, Jumlah: 40},
	{ProdukID: "PRD002", Nama: "Gula Pasir 1kg", Harga: 14000, Jumlah: 1},
	{ProdukID: "PRD003", Nama: "Minyak Goreng 2L", Harga: 26000, Jumlah: 1},
}

// subtotal = 40*1500 + 14000 + 26000 = 100000

func TestHitungCheckoutCashPas(t *testing.T) {
	r, err := HitungCheckout(itemsCheckout, Pembayaran{
		Metode: models.MetodeCash, Diskon: 15000, Tunai: 85000,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(100000), r.Subtotal)
	assert.Equal(t, int64(15000), r.Diskon)
	assert.Equal(t, int64(85000), r.Total)
	assert.Equal(t, int64(85000), r.Tunai)
	assert.Equal(t, int64(0), r.Kembalian)
}

func TestHitungCheckoutCashKembalian(t *testing.T) {
	r, err := HitungCheckout(itemsCheckout, Pembayaran{
		Metode: models.MetodeCash, Diskon: 15000, Tunai: 90000,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5000), r.Kembalian)
}

func TestHitungCheckoutCashKurang(t *testing.T) {
	_, err := HitungCheckout(itemsCheckout, Pembayaran{
		Metode: models.MetodeCash, Diskon: 15000, Tunai: 80000,
	})
	assert.ErrorIs(t, err, ErrTunaiKurang)
}

func TestHitungCheckoutNonCashAbaikanTunai(t *testing.T) {
	r, err := HitungCheckout(itemsCheckout, Pembayaran{
		Metode: models.MetodeQRIS, Diskon: 0, Tunai: 5,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(100000), r.Total)
	assert.Equal(t, int64(0), r.Tunai)
	assert.Equal(t, int64(0), r.Kembalian)
}

func TestHitungCheckoutKeranjangKosong(t *testing.T) {
	_, err := HitungCheckout(nil, Pembayaran{Metode: models.MetodeCash})
	assert.ErrorIs(t, err, ErrKeranjangKosong)
}

func TestHitungCheckoutDiskonMelebihiSubtotal(t *testing.T) {
	_, err := HitungCheckout(itemsCheckout, Pembayaran{
		Metode: models.MetodeTransfer, Diskon: 100001,
	})
	assert.ErrorIs(t, err, ErrDiskonMelebihiSubtotal)
}

func TestHitungCheckoutDiskonNegatifJadiNol(t *testing.T) {
	r, err := HitungCheckout(itemsCheckout, Pembayaran{
		Metode: models.MetodeTransfer, Diskon: -5000,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), r.Diskon)
	assert.Equal(t, int64(100000), r.Total)
}

func TestHitungCheckoutMetodeTidakDikenal(t *testing.T) {
	_, err := HitungCheckout(itemsCheckout, Pembayaran{Metode: "Cek"})
	assert.ErrorIs(t, err, ErrMetodeTidakDikenal)
}

func TestItemsTransaksiSnapshot(t *testing.T) {
	out := ItemsTransaksi(itemsCheckout)
	require.Len(t, out, 3)
	assert.Equal(t, "Kopi Kapal Api", out[0].Nama)
	assert.Equal(t, int64(1500), out[0].Harga)
	assert.Equal(t, 40, out[0].Jumlah)
}

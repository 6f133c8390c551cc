package service

import (
	"errors"

	"github.com/farhandwk/toko-luwes/models"
)

// Kesalahan validasi checkout. Semuanya ketahuan sebelum ada yang ditulis
// ke database.
var (
	ErrKeranjangKosong        = errors.New("keranjang kosong")
	ErrDiskonMelebihiSubtotal = errors.New("diskon melebihi subtotal")
	ErrTunaiKurang            = errors.New("uang tunai kurang dari total")
	ErrMetodeTidakDikenal     = errors.New("metode pembayaran tidak dikenal")
)

type Pembayaran struct {
	Metode string
	Diskon int64
	Tunai  int64
}

type RincianCheckout struct {
	Subtotal  int64
	Diskon    int64
	Total     int64
	Tunai     int64
	Kembalian int64
}

// HitungCheckout merekonsiliasi isi keranjang dengan pembayaran:
// subtotal dari baris keranjang, total = subtotal - diskon, lalu validasi
// tunai untuk pembayaran Cash. Diskon yang melebihi subtotal ditolak, jadi
// total tidak pernah negatif.
func HitungCheckout(items []models.KeranjangItem, p Pembayaran) (RincianCheckout, error) {
	if len(items) == 0 {
		return RincianCheckout{}, ErrKeranjangKosong
	}
	switch p.Metode {
	case models.MetodeCash, models.MetodeQRIS, models.MetodeTransfer:
	default:
		return RincianCheckout{}, ErrMetodeTidakDikenal
	}
	if p.Diskon < 0 {
		p.Diskon = 0
	}

	subtotal := TotalHarga(items)
	if p.Diskon > subtotal {
		return RincianCheckout{}, ErrDiskonMelebihiSubtotal
	}
	total := subtotal - p.Diskon

	r := RincianCheckout{
		Subtotal: subtotal,
		Diskon:   p.Diskon,
		Total:    total,
	}
	if p.Metode == models.MetodeCash {
		if p.Tunai < total {
			return RincianCheckout{}, ErrTunaiKurang
		}
		r.Tunai = p.Tunai
		r.Kembalian = p.Tunai - total
	}
	return r, nil
}

// ItemsTransaksi membekukan baris keranjang jadi snapshot item transaksi.
// Transaksi menyimpan nama+harga, bukan id produk, supaya riwayat tetap benar
// walau produknya nanti diubah atau dihapus.
func ItemsTransaksi(items []models.KeranjangItem) []models.TransaksiItem {
	out := make([]models.TransaksiItem, 0, len(items))
	for _, it := range items {
		out = append(out, models.TransaksiItem{
			Nama:   it.Nama,
			Harga:  it.Harga,
			Jumlah: it.Jumlah,
		})
	}
	return out
}

package service

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/farhandwk/toko-luwes/models"
	"github.com/farhandwk/toko-luwes/utils"
)

// BatasStokMenipis: produk dengan 0 < stok < batas masuk peringatan dashboard.
// Stok 0 bukan "menipis" tapi "habis", jadi tidak ikut.
const BatasStokMenipis = 5

// TopProdukLimit membatasi daftar produk terlaris di dashboard.
const TopProdukLimit = 5

var bulanPendek = [...]string{
	"Jan", "Feb", "Mar", "Apr", "Mei", "Jun",
	"Jul", "Agu", "Sep", "Okt", "Nov", "Des",
}

// BuildLaporan melipat seluruh riwayat transaksi jadi agregat dashboard.
// Tidak ada kondisi error: data kosong menghasilkan angka nol dan grafik
// 7 hari tetap berisi tepat 7 bucket.
func BuildLaporan(transaksi []models.Transaksi, produk []models.Produk, now time.Time) models.Laporan {
	var totalPendapatan int64
	totalItem := 0
	perTanggal := map[string]int64{}
	perProduk := map[string]int{}
	perMetode := map[string]int{}

	for _, t := range transaksi {
		totalPendapatan += t.Total

		if tgl, ok := tanggalTransaksi(t); ok {
			key := tgl.In(utils.WIB).Format("2006-01-02")
			perTanggal[key] += t.Total
		}

		metode := t.Metode
		if metode == "" {
			metode = models.MetodeCash
		}
		perMetode[metode]++

		for _, it := range ParseItems(t) {
			nama := strings.TrimSpace(it.Nama)
			perProduk[nama] += it.Jumlah
			totalItem += it.Jumlah
		}
	}

	// Grafik 7 hari terakhir: hari ini plus 6 hari ke belakang, selalu penuh.
	harian := make([]models.PendapatanHarian, 0, 7)
	nowWIB := now.In(utils.WIB)
	for i := 6; i >= 0; i-- {
		d := nowWIB.AddDate(0, 0, -i)
		key := d.Format("2006-01-02")
		harian = append(harian, models.PendapatanHarian{
			Tanggal: key,
			Label:   fmt.Sprintf("%d %s", d.Day(), bulanPendek[int(d.Month())-1]),
			Total:   perTanggal[key],
		})
	}

	terlaris := make([]models.ProdukTerjual, 0, len(perProduk))
	for nama, jumlah := range perProduk {
		terlaris = append(terlaris, models.ProdukTerjual{Nama: nama, Jumlah: jumlah})
	}
	sort.Slice(terlaris, func(i, j int) bool {
		if terlaris[i].Jumlah != terlaris[j].Jumlah {
			return terlaris[i].Jumlah > terlaris[j].Jumlah
		}
		return terlaris[i].Nama < terlaris[j].Nama
	})
	if len(terlaris) > TopProdukLimit {
		terlaris = terlaris[:TopProdukLimit]
	}

	metode := make([]models.MetodeCount, 0, len(perMetode))
	for m, n := range perMetode {
		metode = append(metode, models.MetodeCount{Metode: m, Jumlah: n})
	}
	sort.Slice(metode, func(i, j int) bool {
		if metode[i].Jumlah != metode[j].Jumlah {
			return metode[i].Jumlah > metode[j].Jumlah
		}
		return metode[i].Metode < metode[j].Metode
	})

	var menipis []models.Produk
	for _, p := range produk {
		if p.Stok > 0 && p.Stok < BatasStokMenipis {
			menipis = append(menipis, p)
		}
	}

	var rataRata int64
	if len(transaksi) > 0 {
		rataRata = totalPendapatan / int64(len(transaksi))
	}

	return models.Laporan{
		TotalPendapatan:  totalPendapatan,
		TotalTransaksi:   len(transaksi),
		RataRataOrder:    rataRata,
		TotalItemTerjual: totalItem,
		Harian:           harian,
		ProdukTerlaris:   terlaris,
		MetodePembayaran: metode,
		StokMenipis:      menipis,
	}
}

// tanggalTransaksi memilih sumber tanggal: created_at untuk transaksi baru,
// string tanggal lama untuk data impor. Tanggal yang tidak bisa di-parse
// membuat transaksi keluar dari grafik harian, tapi pendapatannya tetap
// dihitung.
func tanggalTransaksi(t models.Transaksi) (time.Time, bool) {
	if !t.CreatedAt.IsZero() {
		return t.CreatedAt, true
	}
	tgl, err := ParseTanggal(t.Tanggal)
	if err != nil {
		return time.Time{}, false
	}
	return tgl, true
}

package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/farhandwk/toko-luwes/models"
	"github.com/farhandwk/toko-luwes/utils"
)

// ErrTanggalTidakValid dikembalikan kalau string tanggal tidak cocok dengan
// format apapun yang dikenal. Pemanggil boleh jatuh ke time.Now(), tapi
// kegagalan parse tidak lagi diam-diam.
var ErrTanggalTidakValid = errors.New("format tanggal tidak dikenal")

// ParseItems membaca item transaksi apa adanya. Transaksi baru menyimpan
// slice terstruktur; baris impor dari spreadsheet lama menyimpan JSON string
// di LegacyItems. JSON rusak atau bukan array dianggap kosong supaya satu
// record korup tidak merusak seluruh daftar riwayat.
func ParseItems(t models.Transaksi) []models.TransaksiItem {
	if len(t.Items) > 0 {
		return t.Items
	}
	raw := strings.TrimSpace(t.LegacyItems)
	if raw == "" {
		return []models.TransaksiItem{}
	}
	var items []models.TransaksiItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return []models.TransaksiItem{}
	}
	return items
}

// EncodeItems adalah kebalikan ParseItems, dipakai ekspor/impor data lama.
func EncodeItems(items []models.TransaksiItem) string {
	b, err := json.Marshal(items)
	if err != nil {
		return "[]"
	}
	return string(b)
}

// RebuildStruk menyusun ulang struk dari record transaksi tanpa mempercayai
// field turunan yang tersimpan. Total adalah satu-satunya yang dipercaya
// (itu nominal yang benar-benar dibayar); subtotal dihitung ulang dari item
// dan diskon diturunkan dari selisihnya.
//
// Error yang dikembalikan hanya soal tanggal: struk hasilnya tetap bisa
// dipakai, tanggal diisi waktu sekarang.
func RebuildStruk(t models.Transaksi) (models.Struk, error) {
	items := ParseItems(t)

	var calcSubtotal int64
	for _, it := range items {
		calcSubtotal += it.Harga * int64(it.Jumlah)
	}

	subtotal := calcSubtotal
	var diskon int64
	if calcSubtotal > t.Total {
		diskon = calcSubtotal - t.Total
	} else if calcSubtotal < t.Total {
		// Anomali data: item lebih kecil dari total bayar. Naikkan subtotal
		// ke total dan laporkan diskon nol, jangan tampilkan diskon negatif.
		subtotal = t.Total
	}

	tunai := t.Tunai
	kembalian := t.Kembalian
	if tunai == 0 && t.Metode == models.MetodeCash {
		// Data lama tidak mencatat uang diterima; anggap uang pas.
		tunai = t.Total
		kembalian = 0
	}
	if kembalian < 0 {
		kembalian = 0
	}

	s := models.Struk{
		ID:        t.ID,
		Items:     items,
		Subtotal:  subtotal,
		Diskon:    diskon,
		Total:     t.Total,
		Metode:    t.Metode,
		Tunai:     tunai,
		Kembalian: kembalian,
		BuktiURL:  t.BuktiURL,
	}

	if !t.CreatedAt.IsZero() {
		s.Tanggal = t.CreatedAt
		return s, nil
	}
	tgl, err := ParseTanggal(t.Tanggal)
	if err != nil {
		s.Tanggal = time.Now()
		return s, fmt.Errorf("transaksi %s: %w", t.ID, err)
	}
	s.Tanggal = tgl
	return s, nil
}

// ParseTanggal menerima dua format tanggal yang pernah dipakai di data:
// RFC 3339 dan bentuk lokal "DD/MM/YYYY[, HH:mm:ss]" (jam boleh satu digit,
// contoh "26/01/2026, 8:02:47"). Hasil selalu di zona toko.
func ParseTanggal(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrTanggalTidakValid
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.In(utils.WIB), nil
	}

	datePart := s
	timePart := ""
	if i := strings.Index(s, ","); i >= 0 {
		datePart = strings.TrimSpace(s[:i])
		timePart = strings.TrimSpace(s[i+1:])
	}

	d := strings.Split(datePart, "/")
	if len(d) != 3 {
		return time.Time{}, ErrTanggalTidakValid
	}
	day, err1 := strconv.Atoi(d[0])
	month, err2 := strconv.Atoi(d[1])
	year, err3 := strconv.Atoi(d[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return time.Time{}, ErrTanggalTidakValid
	}
	if month < 1 || month > 12 || day < 1 || day > 31 || year < 1970 {
		return time.Time{}, ErrTanggalTidakValid
	}

	var hour, min, sec int
	if timePart != "" {
		h := strings.Split(timePart, ":")
		if len(h) > 0 {
			hour, _ = strconv.Atoi(h[0])
		}
		if len(h) > 1 {
			min, _ = strconv.Atoi(h[1])
		}
		if len(h) > 2 {
			sec, _ = strconv.Atoi(h[2])
		}
	}

	return time.Date(year, time.Month(month), day, hour, min, sec, 0, utils.WIB), nil
}

package utils

import (
	"fmt"
	"strconv"
	"time"
)

// WIB adalah zona waktu toko. Fallback ke offset tetap +7 kalau tzdata
// tidak tersedia di image deployment.
var WIB = func() *time.Location {
	loc, err := time.LoadLocation("Asia/Jakarta")
	if err != nil {
		return time.FixedZone("WIB", 7*60*60)
	}
	return loc
}()

// FormatRupiah menulis nominal Rupiah utuh dengan pemisah ribuan titik,
// contoh: 1500000 -> "Rp 1.500.000".
func FormatRupiah(n int64) string {
	neg := n < 0
	if neg {
		n = -n
	}
	s := strconv.FormatInt(n, 10)
	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, '.')
		}
		out = append(out, c)
	}
	if neg {
		return "Rp -" + string(out)
	}
	return "Rp " + string(out)
}

// FormatTanggalWIB menghasilkan format tanggal lama di struk:
// "28/12/2025, 14:30:45" dalam waktu Jakarta.
func FormatTanggalWIB(t time.Time) string {
	return t.In(WIB).Format("02/01/2006, 15:04:05")
}

// WIBNow mengembalikan waktu sekarang di zona toko.
func WIBNow() time.Time {
	return time.Now().In(WIB)
}

// TransaksiID membuat id transaksi dari timestamp, gaya lama "TRX-<ms>".
func TransaksiID(t time.Time) string {
	return fmt.Sprintf("TRX-%d", t.UnixMilli())
}

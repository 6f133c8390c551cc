package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatRupiah(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "Rp 0"},
		{500, "Rp 500"},
		{1500, "Rp 1.500"},
		{14000, "Rp 14.000"},
		{100000, "Rp 100.000"},
		{1500000, "Rp 1.500.000"},
		{1234567890, "Rp 1.234.567.890"},
		{-5000, "Rp -5.000"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, FormatRupiah(c.in), "input %d", c.in)
	}
}

func TestFormatTanggalWIB(t *testing.T) {
	// 07:30:45 UTC = 14:30:45 WIB
	tgl := time.Date(2025, 12, 28, 7, 30, 45, 0, time.UTC)
	assert.Equal(t, "28/12/2025, 14:30:45", FormatTanggalWIB(tgl))
}

func TestTransaksiID(t *testing.T) {
	tgl := time.UnixMilli(1767000000000)
	assert.Equal(t, "TRX-1767000000000", TransaksiID(tgl))
}

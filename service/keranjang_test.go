package service

import (
	"testing"

	"github.com/farhandwk/toko-luwes/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestKeranjang() *KeranjangService {
	return NewKeranjangService(NewMemoryKeranjang())
}

func TestAddItemBaruMulaiSatu(t *testing.T) {
	svc := newTestKeranjang()

	items, err := svc.AddItem("USR001", models.KeranjangItem{
		ProdukID: "PRD001", Nama: "Kopi Kapal Api", Harga: 1500, Jumlah: 99,
	})
	require.NoError(t, err)
	require.Len(t, items, 1)
	// Jumlah kiriman diabaikan, selalu mulai dari 1
	assert.Equal(t, 1, items[0].Jumlah)
	assert.Equal(t, int64(1500), items[0].Harga)
}

func TestAddItemSamaMenambahJumlah(t *testing.T) {
	svc := newTestKeranjang()

	_, err := svc.AddItem("USR001", models.KeranjangItem{ProdukID: "PRD001", Nama: "Kopi", Harga: 1500})
	require.NoError(t, err)
	items, err := svc.AddItem("USR001", models.KeranjangItem{ProdukID: "PRD001", Nama: "Kopi", Harga: 1500})
	require.NoError(t, err)

	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Jumlah)
}

func TestAddItemMenimpaHargaGrosir(t *testing.T) {
	svc := newTestKeranjang()

	_, err := svc.AddItem("USR001", models.KeranjangItem{ProdukID: "PRD001", Nama: "Kopi", Harga: 1500})
	require.NoError(t, err)

	// Kasir ganti grup pelanggan, harga baris lama ikut berubah
	items, err := svc.AddItem("USR001", models.KeranjangItem{
		ProdukID: "PRD001", Nama: "Kopi", Harga: 1200, HargaGrosir: true,
	})
	require.NoError(t, err)

	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Jumlah)
	assert.Equal(t, int64(1200), items[0].Harga)
	assert.True(t, items[0].HargaGrosir)
}

func TestDecreaseQtyHapusDiSatu(t *testing.T) {
	svc := newTestKeranjang()

	_, err := svc.AddItem("USR001", models.KeranjangItem{ProdukID: "PRD001", Nama: "Kopi", Harga: 1500})
	require.NoError(t, err)
	_, err = svc.AddItem("USR001", models.KeranjangItem{ProdukID: "PRD001", Nama: "Kopi", Harga: 1500})
	require.NoError(t, err)

	items, err := svc.DecreaseQty("USR001", "PRD001")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Jumlah)

	items, err = svc.DecreaseQty("USR001", "PRD001")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestDecreaseQtyProdukTidakAda(t *testing.T) {
	svc := newTestKeranjang()

	_, err := svc.AddItem("USR001", models.KeranjangItem{ProdukID: "PRD001", Nama: "Kopi", Harga: 1500})
	require.NoError(t, err)

	items, err := svc.DecreaseQty("USR001", "PRD999")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Jumlah)
}

func TestRemoveItemLangsungHapus(t *testing.T) {
	svc := newTestKeranjang()

	for i := 0; i < 3; i++ {
		_, err := svc.AddItem("USR001", models.KeranjangItem{ProdukID: "PRD001", Nama: "Kopi", Harga: 1500})
		require.NoError(t, err)
	}
	_, err := svc.AddItem("USR001", models.KeranjangItem{ProdukID: "PRD002", Nama: "Gula", Harga: 14000})
	require.NoError(t, err)

	items, err := svc.RemoveItem("USR001", "PRD001")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "PRD002", items[0].ProdukID)
}

func TestKeranjangTerpisahPerKasir(t *testing.T) {
	svc := newTestKeranjang()

	_, err := svc.AddItem("USR001", models.KeranjangItem{ProdukID: "PRD001", Nama: "Kopi", Harga: 1500})
	require.NoError(t, err)

	items, err := svc.Items("USR002")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestClearMengosongkanKeranjang(t *testing.T) {
	svc := newTestKeranjang()

	_, err := svc.AddItem("USR001", models.KeranjangItem{ProdukID: "PRD001", Nama: "Kopi", Harga: 1500})
	require.NoError(t, err)
	require.NoError(t, svc.Clear("USR001"))

	items, err := svc.Items("USR001")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestTotalHarga(t *testing.T) {
	items := []models.KeranjangItem{
		{ProdukID: "PRD001", Harga: 1500, Jumlah: 2},
		{ProdukID: "PRD002", Harga: 14000, Jumlah: 1},
	}
	assert.Equal(t, int64(17000), TotalHarga(items))
	assert.Equal(t, int64(0), TotalHarga(nil))
}

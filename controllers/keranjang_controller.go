package controllers

import (
	"github.com/farhandwk/toko-luwes/models"
	"github.com/farhandwk/toko-luwes/repository"
	"github.com/farhandwk/toko-luwes/service"

	"github.com/gofiber/fiber/v2"
)

// Keranjang hidup per kasir di server (pengganti localStorage di UI lama).
var keranjang = service.NewKeranjangService(repository.NewKeranjangStore())

func kasirID(c *fiber.Ctx) string {
	id, _ := c.Locals("userID").(string)
	return id
}

func keranjangJSON(c *fiber.Ctx, items []models.KeranjangItem) error {
	if items == nil {
		items = []models.KeranjangItem{}
	}
	return c.JSON(fiber.Map{
		"items": items,
		"total": service.TotalHarga(items),
	})
}

// GET /keranjang
func GetKeranjang(c *fiber.Ctx) error {
	items, err := keranjang.Items(kasirID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Gagal mengambil keranjang"})
	}
	return keranjangJSON(c, items)
}

// POST /keranjang {produk_id, grup_id}
// Harga satuan ditentukan server: harga grosir kalau grup pelanggan punya
// harga khusus untuk produk ini, selain itu harga katalog. Menambah produk
// yang sudah ada menaikkan jumlah 1 dan menimpa harganya, jadi ganti grup
// di tengah transaksi terbawa ke baris lama lewat penambahan berikutnya.
func AddKeranjangItem(c *fiber.Ctx) error {
	var body struct {
		ProdukID string `json:"produk_id"`
		GrupID   string `json:"grup_id"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Data tidak valid"})
	}
	if body.ProdukID == "" {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"message": "produk_id wajib diisi"})
	}

	produk, err := repository.GetProdukByID(body.ProdukID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Produk tidak ditemukan"})
	}

	daftar, err := repository.GetAllHargaGrosir()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Gagal membaca harga grosir"})
	}
	harga := service.ResolveHarga(*produk, body.GrupID, daftar)

	items, err := keranjang.AddItem(kasirID(c), models.KeranjangItem{
		ProdukID:    produk.ID,
		Nama:        produk.Nama,
		Harga:       harga.Harga,
		HargaGrosir: harga.Grosir,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Gagal menyimpan keranjang"})
	}
	return keranjangJSON(c, items)
}

// PATCH /keranjang/:produk_id/kurang
func DecreaseKeranjangItem(c *fiber.Ctx) error {
	items, err := keranjang.DecreaseQty(kasirID(c), c.Params("produk_id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Gagal menyimpan keranjang"})
	}
	return keranjangJSON(c, items)
}

// DELETE /keranjang/:produk_id
func RemoveKeranjangItem(c *fiber.Ctx) error {
	items, err := keranjang.RemoveItem(kasirID(c), c.Params("produk_id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Gagal menyimpan keranjang"})
	}
	return keranjangJSON(c, items)
}

// DELETE /keranjang
func ClearKeranjang(c *fiber.Ctx) error {
	if err := keranjang.Clear(kasirID(c)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Gagal mengosongkan keranjang"})
	}
	return keranjangJSON(c, nil)
}

package controllers

import (
	"time"

	"github.com/farhandwk/toko-luwes/models"
	"github.com/farhandwk/toko-luwes/repository"

	"github.com/gofiber/fiber/v2"
)

// GET /grosir - grup pelanggan dan daftar harga khusus sekaligus,
// format yang sama dengan yang dipakai halaman kasir.
func GetGrosir(c *fiber.Ctx) error {
	groups, err := repository.GetAllGrup()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Gagal mengambil grup pelanggan"})
	}
	prices, err := repository.GetAllHargaGrosir()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Gagal mengambil harga grosir"})
	}
	if groups == nil {
		groups = []models.GrupPelanggan{}
	}
	if prices == nil {
		prices = []models.HargaGrosir{}
	}
	return c.JSON(fiber.Map{"groups": groups, "prices": prices})
}

// POST /grosir/grup (admin only)
func CreateGrup(c *fiber.Ctx) error {
	var input models.GrupPelanggan
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Data tidak valid"})
	}
	if input.Nama == "" {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"message": "nama grup wajib diisi"})
	}

	id, err := repository.GenerateID("grup")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Gagal generate ID"})
	}
	input.ID = id
	input.CreatedAt = time.Now()

	if _, err := repository.CreateGrup(&input); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Gagal membuat grup"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Grup pelanggan berhasil dibuat", "id": input.ID})
}

// DELETE /grosir/grup/:id (admin only) - ikut menghapus harga khusus grup itu.
func DeleteGrup(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := repository.DeleteGrup(id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Gagal menghapus grup"})
	}
	return c.JSON(fiber.Map{"message": "Grup berhasil dihapus"})
}

// POST /grosir/harga (admin only) - set atau timpa harga khusus untuk
// pasangan (produk, grup).
func SetHargaGrosir(c *fiber.Ctx) error {
	var body struct {
		ProdukID string `json:"produk_id"`
		GrupID   string `json:"grup_id"`
		Harga    int64  `json:"harga"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Data tidak valid"})
	}
	if body.ProdukID == "" || body.GrupID == "" || body.Harga <= 0 {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"message": "produk_id, grup_id, harga (>0) wajib diisi"})
	}
	if _, err := repository.GetProdukByID(body.ProdukID); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"message": "Produk tidak ditemukan"})
	}

	id, err := repository.GenerateID("harga")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Gagal generate ID"})
	}
	h := models.HargaGrosir{
		ID:        id,
		ProdukID:  body.ProdukID,
		GrupID:    body.GrupID,
		Harga:     body.Harga,
		CreatedAt: time.Now(),
	}
	if err := repository.UpsertHargaGrosir(h); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Gagal menyimpan harga grosir"})
	}
	return c.JSON(fiber.Map{"message": "Harga khusus disimpan"})
}

// DELETE /grosir/harga/:id (admin only)
func DeleteHargaGrosir(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := repository.DeleteHargaGrosir(id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Gagal menghapus harga grosir"})
	}
	return c.JSON(fiber.Map{"message": "Harga grosir berhasil dihapus"})
}

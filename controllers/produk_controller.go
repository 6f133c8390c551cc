package controllers

import (
	"log/slog"
	"time"

	"github.com/farhandwk/toko-luwes/models"
	"github.com/farhandwk/toko-luwes/repository"

	"github.com/gofiber/fiber/v2"
)

// GetAllProduk godoc
//
//	@Summary		Get all products
//	@Description	Mengambil semua data produk katalog
//	@Tags			Produk
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		models.Produk
//	@Failure		500	{object}	map[string]interface{}	"Internal Server Error"
//	@Router			/produk [get]
func GetAllProduk(c *fiber.Ctx) error {
	produks, err := repository.GetAllProduk()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Gagal mengambil data produk",
			"error":   err.Error(),
		})
	}
	return c.JSON(produks)
}

// GetProdukByID godoc
//
//	@Summary		Get product by ID
//	@Tags			Produk
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Product ID"
//	@Success		200	{object}	models.Produk
//	@Failure		404	{object}	map[string]interface{}	"Produk tidak ditemukan"
//	@Router			/produk/{id} [get]
func GetProdukByID(c *fiber.Ctx) error {
	id := c.Params("id")
	produk, err := repository.GetProdukByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Produk tidak ditemukan",
			"error":   err.Error(),
		})
	}
	return c.JSON(produk)
}

// CreateProduk godoc
//
//	@Summary		Create product
//	@Tags			Produk
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			produk	body		models.ProdukInput		true	"Product data"
//	@Success		201		{object}	map[string]interface{}	"Produk berhasil ditambahkan"
//	@Failure		422		{object}	map[string]interface{}	"Validasi gagal"
//	@Router			/produk [post]
func CreateProduk(c *fiber.Ctx) error {
	var input models.ProdukInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Request tidak valid",
			"error":   err.Error(),
		})
	}
	if input.Nama == "" || input.Kategori == "" || input.Harga <= 0 || input.Stok < 0 {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"message": "Validasi gagal",
			"error":   "nama, kategori, harga (>0), stok (>=0) wajib diisi",
		})
	}

	newID, err := repository.GenerateID("produk")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Gagal generate ID produk",
			"error":   err.Error(),
		})
	}

	produk := models.Produk{
		ID:        newID,
		Nama:      input.Nama,
		Harga:     input.Harga,
		Kategori:  input.Kategori,
		Satuan:    input.Satuan,
		Gambar:    input.Gambar,
		Stok:      input.Stok,
		CreatedAt: time.Now(),
	}
	if _, err := repository.CreateProduk(produk); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Gagal menambahkan produk",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Produk berhasil ditambahkan",
		"id":      produk.ID,
	})
}

// PUT /produk/:id
func UpdateProduk(c *fiber.Ctx) error {
	id := c.Params("id")
	var input models.ProdukInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Request tidak valid",
			"error":   err.Error(),
		})
	}
	if input.Nama == "" || input.Kategori == "" || input.Harga <= 0 || input.Stok < 0 {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"message": "Validasi gagal",
			"error":   "nama, kategori, harga (>0), stok (>=0) wajib diisi",
		})
	}

	if _, err := repository.UpdateProduk(id, input); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Gagal update produk",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"message": "Produk berhasil diupdate"})
}

// DELETE /produk/:id
func DeleteProduk(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := repository.DeleteProduk(id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Gagal hapus produk",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"message": "Produk berhasil dihapus"})
}

// POST /produk/:id/restock - tambah stok, dicatat sebagai mutasi masuk.
func RestockProduk(c *fiber.Ctx) error {
	id := c.Params("id")
	var body struct {
		Jumlah int `json:"jumlah"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Request tidak valid"})
	}
	if body.Jumlah <= 0 {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"message": "jumlah harus lebih dari 0"})
	}

	if err := repository.TambahStok(id, body.Jumlah); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Produk tidak ditemukan"})
	}

	mutasiID, err := repository.GenerateID("stok")
	if err == nil {
		m := models.StokMutasi{
			ID:         mutasiID,
			ProdukID:   id,
			Jenis:      "masuk",
			Jumlah:     body.Jumlah,
			Keterangan: "restock",
			CreatedAt:  time.Now(),
		}
		if _, err := repository.CreateMutasi(&m); err != nil {
			slog.Warn("gagal mencatat mutasi restock", "produk_id", id, "error", err)
		}
	}

	return c.JSON(fiber.Map{"message": "Stok berhasil ditambah"})
}

// GET /produk/:id/mutasi - riwayat pergerakan stok satu produk.
func GetMutasiProduk(c *fiber.Ctx) error {
	id := c.Params("id")
	list, err := repository.GetMutasiByProduk(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Gagal mengambil mutasi"})
	}
	return c.JSON(list)
}

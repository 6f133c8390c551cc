package controllers

import (
	"time"

	"github.com/farhandwk/toko-luwes/models"
	"github.com/farhandwk/toko-luwes/repository"

	"github.com/gofiber/fiber/v2"
)

// GET /kategori
func GetAllKategori(c *fiber.Ctx) error {
	list, err := repository.GetAllKategori()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Gagal mengambil kategori"})
	}
	return c.JSON(list)
}

// POST /kategori (admin only)
func CreateKategori(c *fiber.Ctx) error {
	var input models.Kategori
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Data tidak valid"})
	}
	if input.Nama == "" {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"message": "nama wajib diisi"})
	}

	id, err := repository.GenerateID("kategori")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Gagal generate ID"})
	}
	input.ID = id
	input.CreatedAt = time.Now()

	if _, err := repository.CreateKategori(&input); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Gagal membuat kategori"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Kategori berhasil dibuat", "id": input.ID})
}

// DELETE /kategori/:id (admin only)
func DeleteKategori(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := repository.DeleteKategori(id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Gagal menghapus kategori"})
	}
	return c.JSON(fiber.Map{"message": "Kategori berhasil dihapus"})
}

package controllers

import (
	"time"

	"github.com/farhandwk/toko-luwes/models"
	"github.com/farhandwk/toko-luwes/repository"

	"github.com/gofiber/fiber/v2"
)

// GET /satuan
func GetAllSatuan(c *fiber.Ctx) error {
	list, err := repository.GetAllSatuan()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Gagal mengambil satuan"})
	}
	return c.JSON(list)
}

// POST /satuan (admin only)
func CreateSatuan(c *fiber.Ctx) error {
	var input models.Satuan
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Data tidak valid"})
	}
	if input.Nama == "" {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"message": "nama wajib diisi"})
	}

	id, err := repository.GenerateID("satuan")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Gagal generate ID"})
	}
	input.ID = id
	input.CreatedAt = time.Now()

	if _, err := repository.CreateSatuan(&input); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Gagal membuat satuan"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Satuan berhasil dibuat", "id": input.ID})
}

// DELETE /satuan/:id (admin only)
func DeleteSatuan(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := repository.DeleteSatuan(id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Gagal menghapus satuan"})
	}
	return c.JSON(fiber.Map{"message": "Satuan berhasil dihapus"})
}

package controllers

import (
	"time"

	"github.com/farhandwk/toko-luwes/models"
	"github.com/farhandwk/toko-luwes/repository"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// GET /users (admin only)
func GetAllUsers(c *fiber.Ctx) error {
	users, err := repository.GetAllUsers()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Gagal mengambil data user",
			"error":   err.Error(),
		})
	}
	return c.JSON(users)
}

// POST /users (admin only) - buat akun kasir/admin baru
func CreateUser(c *fiber.Ctx) error {
	var body struct {
		Nama     string `json:"nama"`
		Username string `json:"username"`
		Password string `json:"password"`
		Role     string `json:"role"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Request tidak valid"})
	}
	if body.Nama == "" || body.Username == "" || body.Password == "" {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"message": "nama, username, password wajib diisi"})
	}
	if body.Role != "admin" && body.Role != "kasir" {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"message": "Role harus admin atau kasir"})
	}

	id, err := repository.GenerateID("user")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Gagal generate ID"})
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(body.Password), 12)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Gagal hash password"})
	}

	user := models.User{
		ID:        id,
		Nama:      body.Nama,
		Username:  body.Username,
		Password:  string(hashed),
		Role:      body.Role,
		CreatedAt: time.Now(),
	}
	if _, err := repository.CreateUser(&user); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Gagal menambah user"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "User berhasil ditambah", "id": user.ID})
}

// DELETE /users/:id (admin only)
func DeleteUser(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == c.Locals("userID") {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Tidak bisa menghapus akun sendiri"})
	}
	if _, err := repository.DeleteUser(id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Gagal menghapus user"})
	}
	return c.JSON(fiber.Map{"message": "User berhasil dihapus"})
}

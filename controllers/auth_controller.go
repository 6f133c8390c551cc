package controllers

import (
	"github.com/farhandwk/toko-luwes/models"
	"github.com/farhandwk/toko-luwes/repository"
	"github.com/farhandwk/toko-luwes/utils"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// Login godoc
//
//	@Summary		Login kasir/admin
//	@Description	Menukar username+password dengan token JWT
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			login	body		models.LoginInput		true	"Kredensial"
//	@Success		200		{object}	map[string]interface{}	"Login berhasil"
//	@Failure		401		{object}	map[string]interface{}	"Username atau password salah"
//	@Router			/auth/login [post]
func Login(c *fiber.Ctx) error {
	var input models.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Request tidak valid"})
	}
	if input.Username == "" || input.Password == "" {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"message": "username dan password wajib diisi"})
	}

	user, err := repository.GetUserByUsername(input.Username)
	if err != nil {
		// Jangan bocorkan apakah username-nya yang salah.
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Username atau password salah"})
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Username atau password salah"})
	}

	token, err := utils.GenerateToken(user.ID, user.Nama, user.Role)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Gagal membuat token"})
	}

	return c.JSON(fiber.Map{
		"message": "Login berhasil",
		"token":   token,
		"user": fiber.Map{
			"id":   user.ID,
			"nama": user.Nama,
			"role": user.Role,
		},
	})
}

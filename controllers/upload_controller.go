package controllers

import (
	"context"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/farhandwk/toko-luwes/utils"

	"github.com/gofiber/fiber/v2"
)

const maxUkuranBukti = 5 << 20 // 5MB

// POST /upload/bukti - terima gambar struk (multipart "file"), taruh di repo
// GitHub, balikan URL-nya untuk disimpan sebagai bukti_url transaksi.
func UploadBukti(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "File tidak ditemukan di form"})
	}
	if fileHeader.Size > maxUkuranBukti {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "File terlalu besar (maksimal 5MB)"})
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	switch ext {
	case ".jpg", ".jpeg", ".png":
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Format file tidak didukung (hanya .jpg, .jpeg, .png)"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Gagal membuka file"})
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Gagal membaca file"})
	}

	// Nama file dari hash isi: upload ulang struk yang sama tidak menumpuk.
	path := "struk/" + utils.CalculateHash(content) + ext

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	url, err := utils.GithubUpload(ctx, content, path)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Gagal mengupload bukti struk",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{"success": true, "file_url": url})
}

package routes

import (
	"github.com/farhandwk/toko-luwes/controllers"
	"github.com/farhandwk/toko-luwes/middleware"

	"github.com/gofiber/fiber/v2"
)

func GrupRoutes(app *fiber.App) {
	grosir := app.Group("/grosir")

	// Kasir perlu daftar grup + harga untuk memilih harga di kasir
	grosir.Get("/", middleware.RoleGuard("admin", "kasir"), controllers.GetGrosir)

	grosir.Post("/grup", middleware.RoleGuard("admin"), controllers.CreateGrup)
	grosir.Delete("/grup/:id", middleware.RoleGuard("admin"), controllers.DeleteGrup)
	grosir.Post("/harga", middleware.RoleGuard("admin"), controllers.SetHargaGrosir)
	grosir.Delete("/harga/:id", middleware.RoleGuard("admin"), controllers.DeleteHargaGrosir)
}

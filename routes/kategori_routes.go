package routes

import (
	"github.com/farhandwk/toko-luwes/controllers"
	"github.com/farhandwk/toko-luwes/middleware"

	"github.com/gofiber/fiber/v2"
)

func KategoriRoutes(app *fiber.App) {
	kategori := app.Group("/kategori")

	kategori.Get("/", middleware.RoleGuard("admin", "kasir"), controllers.GetAllKategori)
	kategori.Post("/", middleware.RoleGuard("admin"), controllers.CreateKategori)
	kategori.Delete("/:id", middleware.RoleGuard("admin"), controllers.DeleteKategori)
}

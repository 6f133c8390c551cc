package routes

import (
	"github.com/farhandwk/toko-luwes/controllers"
	"github.com/farhandwk/toko-luwes/middleware"

	"github.com/gofiber/fiber/v2"
)

func SatuanRoutes(app *fiber.App) {
	satuan := app.Group("/satuan")

	satuan.Get("/", middleware.RoleGuard("admin", "kasir"), controllers.GetAllSatuan)
	satuan.Post("/", middleware.RoleGuard("admin"), controllers.CreateSatuan)
	satuan.Delete("/:id", middleware.RoleGuard("admin"), controllers.DeleteSatuan)
}

package routes

import (
	"github.com/farhandwk/toko-luwes/controllers"
	"github.com/farhandwk/toko-luwes/middleware"

	"github.com/gofiber/fiber/v2"
)

func KeranjangRoutes(app *fiber.App) {
	keranjang := app.Group("/keranjang", middleware.RoleGuard("admin", "kasir"))

	keranjang.Get("/", controllers.GetKeranjang)
	keranjang.Post("/", controllers.AddKeranjangItem)
	keranjang.Patch("/:produk_id/kurang", controllers.DecreaseKeranjangItem)
	keranjang.Delete("/:produk_id", controllers.RemoveKeranjangItem)
	keranjang.Delete("/", controllers.ClearKeranjang)
}

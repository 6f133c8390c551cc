package routes

import (
	"github.com/farhandwk/toko-luwes/controllers"
	"github.com/farhandwk/toko-luwes/middleware"

	"github.com/gofiber/fiber/v2"
)

func TransaksiRoutes(app *fiber.App) {
	r := app.Group("/transaksi")

	// View: admin semua; kasir hanya miliknya (dicek di controller)
	r.Get("/", middleware.RoleGuard("admin", "kasir"), controllers.ListTransaksi)
	r.Get("/:id", middleware.RoleGuard("admin", "kasir"), controllers.GetTransaksiByID)
	r.Get("/:id/struk", middleware.RoleGuard("admin", "kasir"), controllers.GetStruk)

	app.Post("/checkout", middleware.RoleGuard("admin", "kasir"), controllers.Checkout)
}

package routes

import (
	"github.com/farhandwk/toko-luwes/controllers"
	"github.com/farhandwk/toko-luwes/middleware"

	"github.com/gofiber/fiber/v2"
)

func LaporanRoutes(app *fiber.App) {
	app.Get("/laporan/dashboard", middleware.RoleGuard("admin", "kasir"), controllers.Dashboard)

	// Export dibuka lewat window.open, token ikut di query string
	app.Get(
		"/laporan/export/excel",
		middleware.JWTMiddlewareForExport,
		middleware.RoleGuard("admin"),
		controllers.ExportExcel,
	)
}

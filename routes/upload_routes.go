package routes

import (
	"github.com/farhandwk/toko-luwes/controllers"
	"github.com/farhandwk/toko-luwes/middleware"

	"github.com/gofiber/fiber/v2"
)

func UploadRoutes(app *fiber.App) {
	app.Post("/upload/bukti", middleware.RoleGuard("admin", "kasir"), controllers.UploadBukti)
}

package routes

import (
	"github.com/farhandwk/toko-luwes/controllers"
	"github.com/farhandwk/toko-luwes/middleware"

	"github.com/gofiber/fiber/v2"
)

func UserRoutes(app *fiber.App) {
	user := app.Group("/users", middleware.RoleGuard("admin"))

	user.Get("/", controllers.GetAllUsers)
	user.Post("/", controllers.CreateUser)
	user.Delete("/:id", controllers.DeleteUser)
}

package routes

import (
	"github.com/farhandwk/toko-luwes/controllers"
	"github.com/farhandwk/toko-luwes/middleware"

	"github.com/gofiber/fiber/v2"
)

func ProdukRoutes(app *fiber.App) {
	produk := app.Group("/produk")

	// GET bisa diakses admin dan kasir
	produk.Get("/", middleware.RoleGuard("admin", "kasir"), controllers.GetAllProduk)
	produk.Get("/:id", middleware.RoleGuard("admin", "kasir"), controllers.GetProdukByID)
	produk.Get("/:id/mutasi", middleware.RoleGuard("admin"), controllers.GetMutasiProduk)

	// Tulis hanya admin
	produk.Post("/", middleware.RoleGuard("admin"), controllers.CreateProduk)
	produk.Put("/:id", middleware.RoleGuard("admin"), controllers.UpdateProduk)
	produk.Delete("/:id", middleware.RoleGuard("admin"), controllers.DeleteProduk)
	produk.Post("/:id/restock", middleware.RoleGuard("admin"), controllers.RestockProduk)
}

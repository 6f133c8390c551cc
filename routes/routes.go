package routes

import (
	"github.com/gofiber/fiber/v2"
)

func SetupRoutes(app *fiber.App) {
	AuthRoutes(app)
	ProdukRoutes(app)
	KategoriRoutes(app)
	SatuanRoutes(app)
	GrupRoutes(app)
	KeranjangRoutes(app)
	TransaksiRoutes(app)
	LaporanRoutes(app)
	UploadRoutes(app)
	UserRoutes(app)
}

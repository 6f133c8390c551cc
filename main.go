package main

import (
	"log"
	"os"
	"strings"

	"github.com/farhandwk/toko-luwes/config"
	_ "github.com/farhandwk/toko-luwes/docs" // Import docs for swagger
	"github.com/farhandwk/toko-luwes/middleware"
	"github.com/farhandwk/toko-luwes/repository"
	"github.com/farhandwk/toko-luwes/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/joho/godotenv"
	fiberSwagger "github.com/swaggo/fiber-swagger"
)

//	@title			Toko Luwes API
//	@version		1.0
//	@description	API kasir dan manajemen stok Toko Luwes
//	@description
//	@description	**Authentication:**
//	@description	- Semua endpoint (kecuali login) memerlukan Bearer Token
//	@description	- Token didapat dari endpoint /auth/login
//	@description	- Format: Authorization: Bearer {token}
//	@description
//	@description	**Role Permissions:**
//	@description	- Admin: Akses penuh ke semua fitur
//	@description	- Kasir: Keranjang, checkout, struk, dan riwayat transaksinya sendiri
//	@termsOfService	http://swagger.io/terms/

//	@contact.name	API Support
//	@contact.url	http://www.swagger.io/support
//	@contact.email	support@swagger.io

//	@license.name	Apache 2.0
//	@license.url	http://www.apache.org/licenses/LICENSE-2.0.html

//	@host		localhost:5000
//	@BasePath	/
//	@schemes	http

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.

func main() {
	// Load file .env (tidak fatal jika gagal, agar bisa jalan di Railway)
	_ = godotenv.Load()

	// Ensure JWT_SECRET in production; allow safe default in development
	appEnv := strings.ToLower(os.Getenv("APP_ENV"))
	if os.Getenv("JWT_SECRET") == "" {
		if appEnv == "production" {
			log.Fatal("❌ JWT_SECRET harus diset di environment production")
		}
		os.Setenv("JWT_SECRET", "dev_secret_key_change_me")
		log.Println("⚠️ JWT_SECRET tidak diset, menggunakan default untuk development")
	}

	// Koneksi ke MongoDB
	config.ConnectDB()

	// Inisialisasi counters yang diperlukan
	if err := repository.InitializeCounters(); err != nil {
		log.Printf("⚠️ Peringatan: %v", err)
	} else {
		log.Println("✅ Counters berhasil diinisialisasi")
	}

	// Pastikan index kategori (unique nama)
	if err := repository.EnsureKategoriIndexes(); err != nil {
		log.Printf("⚠️ Gagal membuat index kategori: %v", err)
	}

	// Pastikan index satuan (unique nama)
	if err := repository.EnsureSatuanIndexes(); err != nil {
		log.Printf("⚠️ Gagal membuat index satuan: %v", err)
	}

	// Pastikan index produk
	if err := repository.EnsureProdukIndexes(); err != nil {
		log.Printf("⚠️ Gagal membuat index produk: %v", err)
	}

	// Pastikan index grup & harga grosir
	if err := repository.EnsureGrupIndexes(); err != nil {
		log.Printf("⚠️ Gagal membuat index grup: %v", err)
	}

	// Pastikan index stok
	if err := repository.EnsureStokIndexes(); err != nil {
		log.Printf("⚠️ Gagal membuat index stok: %v", err)
	}

	// Pastikan index transaksi
	if err := repository.EnsureTransaksiIndexes(); err != nil {
		log.Printf("⚠️ Gagal membuat index transaksi: %v", err)
	}

	// Pastikan index user (unique username)
	if err := repository.EnsureUserIndexes(); err != nil {
		log.Printf("⚠️ Gagal membuat index user: %v", err)
	}

	// Inisialisasi Fiber
	app := fiber.New()

	// Middleware global
	app.Use(requestid.New())
	app.Use(middleware.LoggerMiddleware())
	app.Use(middleware.CorsMiddleware())

	// JWTMiddleware global, kecuali untuk /auth/login
	app.Use(func(c *fiber.Ctx) error {
		path := c.Path()
		// NOTE: export endpoint is opened via window.open and may pass token via query.
		// It is protected at route-level via JWTMiddlewareForExport + RoleGuard.
		if path == "/laporan/export/excel" {
			return c.Next()
		}
		if path == "/auth/login" || strings.HasPrefix(path, "/swagger") {
			return c.Next()
		}
		return middleware.JWTMiddleware(c)
	})

	// Swagger route
	app.Get("/swagger/*", fiberSwagger.WrapHandler)

	// Semua route (termasuk auth/login)
	routes.SetupRoutes(app)

	// Port server (default ke 5000 agar konsisten dengan frontend & docs)
	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	log.Println("🚀 Server jalan di http://localhost:" + port)
	log.Fatal(app.Listen(":" + port))
}

package controllers

import (
	"errors"
	"log/slog"
	"time"

	"github.com/farhandwk/toko-luwes/models"
	"github.com/farhandwk/toko-luwes/repository"
	"github.com/farhandwk/toko-luwes/service"
	"github.com/farhandwk/toko-luwes/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
)

// Checkout godoc
//
//	@Summary		Checkout keranjang
//	@Description	Validasi pembayaran, simpan transaksi, potong stok, kosongkan keranjang
//	@Tags			Transaksi
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Success		201	{object}	map[string]interface{}	"Transaksi berhasil dibuat"
//	@Failure		422	{object}	map[string]interface{}	"Validasi gagal"
//	@Router			/checkout [post]
//
// POST /checkout
//
// Urutannya dua langkah dan tidak atomik: transaksi dulu, baru potong stok.
// Kalau simpan transaksi gagal, keranjang TIDAK dikosongkan supaya kasir bisa
// ulang. Kalau potong stok gagal setelah transaksi tersimpan, transaksi tetap
// dianggap selesai dan selisih stok dicatat di log untuk dibereskan manual.
func Checkout(c *fiber.Ctx) error {
	userID := kasirID(c)

	var body struct {
		Diskon   int64  `json:"diskon"`
		Metode   string `json:"metode"`
		Tunai    int64  `json:"tunai"`
		BuktiURL string `json:"bukti_url"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Data tidak valid"})
	}
	if body.Metode == "" {
		body.Metode = models.MetodeCash
	}

	items, err := keranjang.Items(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Gagal membaca keranjang"})
	}

	rincian, err := service.HitungCheckout(items, service.Pembayaran{
		Metode: body.Metode,
		Diskon: body.Diskon,
		Tunai:  body.Tunai,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrKeranjangKosong),
			errors.Is(err, service.ErrDiskonMelebihiSubtotal),
			errors.Is(err, service.ErrTunaiKurang),
			errors.Is(err, service.ErrMetodeTidakDikenal):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"message": err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Gagal menghitung checkout"})
		}
	}

	now := time.Now()
	t := models.Transaksi{
		ID:        utils.TransaksiID(now),
		Tanggal:   utils.FormatTanggalWIB(now),
		Items:     service.ItemsTransaksi(items),
		Subtotal:  rincian.Subtotal,
		Diskon:    rincian.Diskon,
		Total:     rincian.Total,
		Metode:    body.Metode,
		Tunai:     rincian.Tunai,
		Kembalian: rincian.Kembalian,
		BuktiURL:  body.BuktiURL,
		KasirID:   userID,
		CreatedAt: now,
	}
	if _, err := repository.CreateTransaksi(&t); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Gagal menyimpan transaksi"})
	}

	// Potong stok per item, best-effort. Transaksi sudah tercatat; kegagalan
	// di sini tinggal jadi selisih stok yang ketahuan dari log + mutasi.
	for _, it := range items {
		if err := repository.KurangiStok(it.ProdukID, it.Jumlah); err != nil {
			slog.Warn("gagal memotong stok setelah checkout",
				"transaksi_id", t.ID, "produk_id", it.ProdukID, "jumlah", it.Jumlah, "error", err)
			continue
		}
		if mutasiID, err := repository.GenerateID("stok"); err == nil {
			m := models.StokMutasi{
				ID:         mutasiID,
				ProdukID:   it.ProdukID,
				Jenis:      "keluar",
				Jumlah:     it.Jumlah,
				RefID:      t.ID,
				Keterangan: "penjualan",
				CreatedAt:  now,
			}
			_, _ = repository.CreateMutasi(&m)
		}
	}

	if err := keranjang.Clear(userID); err != nil {
		slog.Warn("gagal mengosongkan keranjang setelah checkout", "kasir_id", userID, "error", err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":   "Transaksi berhasil",
		"id":        t.ID,
		"total":     t.Total,
		"kembalian": t.Kembalian,
	})
}

// GET /transaksi (admin semua; kasir hanya miliknya)
func ListTransaksi(c *fiber.Ctx) error {
	role, _ := c.Locals("userRole").(string)
	filter := bson.M{}
	if role != "admin" {
		filter["kasir_id"] = kasirID(c)
	}
	list, err := repository.ListTransaksi(filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Gagal mengambil transaksi"})
	}
	if list == nil {
		list = []models.Transaksi{}
	}
	return c.JSON(list)
}

// GET /transaksi/:id
func GetTransaksiByID(c *fiber.Ctx) error {
	t, err := repository.GetTransaksiByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Transaksi tidak ditemukan"})
	}
	role, _ := c.Locals("userRole").(string)
	if role != "admin" && t.KasirID != kasirID(c) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "Akses ditolak"})
	}
	return c.JSON(t)
}

// GET /transaksi/:id/struk - struk yang sudah direkonsiliasi, siap cetak.
func GetStruk(c *fiber.Ctx) error {
	t, err := repository.GetTransaksiByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Transaksi tidak ditemukan"})
	}

	struk, err := service.RebuildStruk(*t)
	if err != nil {
		// Struk tetap terpakai; tanggalnya saja yang tidak bisa dipastikan.
		slog.Warn("tanggal transaksi tidak bisa di-parse", "transaksi_id", t.ID, "tanggal", t.Tanggal, "error", err)
	}
	return c.JSON(fiber.Map{
		"struk":           struk,
		"tanggal_display": utils.FormatTanggalWIB(struk.Tanggal),
		"total_display":   utils.FormatRupiah(struk.Total),
	})
}

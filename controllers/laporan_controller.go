package controllers

import (
	"log/slog"
	"time"

	"github.com/farhandwk/toko-luwes/repository"
	"github.com/farhandwk/toko-luwes/service"
	"github.com/farhandwk/toko-luwes/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"go.mongodb.org/mongo-driver/bson"
)

// GET /laporan/dashboard
//
// Kasir melihat agregat transaksinya sendiri, admin melihat seluruh toko.
func Dashboard(c *fiber.Ctx) error {
	role, _ := c.Locals("userRole").(string)
	filter := bson.M{}
	if role != "admin" {
		filter["kasir_id"] = kasirID(c)
	}

	transaksi, err := repository.ListTransaksi(filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Gagal mengambil transaksi"})
	}
	produk, err := repository.GetAllProduk()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Gagal mengambil produk"})
	}

	return c.JSON(service.BuildLaporan(transaksi, produk, time.Now()))
}

// GET /laporan/export/excel
//
// Ekspor riwayat transaksi ke Excel: satu sheet ringkasan per transaksi,
// satu sheet detail per item. Baris transaksi memakai angka hasil
// rekonsiliasi struk, bukan field tersimpan mentah.
func ExportExcel(c *fiber.Ctx) error {
	transaksi, err := repository.ListTransaksi(bson.M{})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Gagal mengambil transaksi"})
	}

	f := excelize.NewFile()
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})

	writeHeaders := func(sheet string, headers []string) {
		for i, h := range headers {
			cell, _ := excelize.CoordinatesToCellName(i+1, 1)
			f.SetCellValue(sheet, cell, h)
			f.SetCellStyle(sheet, cell, cell, headerStyle)
		}
	}

	sheetRingkas := "Riwayat Transaksi"
	f.SetSheetName("Sheet1", sheetRingkas)
	writeHeaders(sheetRingkas, []string{
		"ID Transaksi", "Tanggal", "Subtotal", "Diskon", "Total",
		"Metode", "Tunai", "Kembalian", "Kasir",
	})

	sheetDetail := "Detail Item"
	f.NewSheet(sheetDetail)
	writeHeaders(sheetDetail, []string{
		"ID Transaksi", "Tanggal", "Nama Produk", "Jumlah", "Harga", "Subtotal Item",
	})

	rowR := 2
	rowD := 2
	var totalSemua int64
	for _, t := range transaksi {
		struk, err := service.RebuildStruk(t)
		if err != nil {
			slog.Warn("tanggal transaksi tidak bisa di-parse saat ekspor", "transaksi_id", t.ID, "error", err)
		}
		tanggal := struk.Tanggal.In(utils.WIB).Format("02-01-2006 15:04")
		totalSemua += struk.Total

		values := []interface{}{
			struk.ID, tanggal, struk.Subtotal, struk.Diskon, struk.Total,
			struk.Metode, struk.Tunai, struk.Kembalian, t.KasirID,
		}
		for i, v := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, rowR)
			f.SetCellValue(sheetRingkas, cell, v)
		}
		rowR++

		for _, it := range struk.Items {
			values := []interface{}{
				struk.ID, tanggal, it.Nama, it.Jumlah, it.Harga, it.Harga * int64(it.Jumlah),
			}
			for i, v := range values {
				cell, _ := excelize.CoordinatesToCellName(i+1, rowD)
				f.SetCellValue(sheetDetail, cell, v)
			}
			rowD++
		}
	}

	// Baris total di bawah ringkasan
	sumCell, _ := excelize.CoordinatesToCellName(4, rowR+1)
	f.SetCellValue(sheetRingkas, sumCell, "TOTAL")
	sumCell, _ = excelize.CoordinatesToCellName(5, rowR+1)
	f.SetCellValue(sheetRingkas, sumCell, totalSemua)

	f.AutoFilter(sheetRingkas, "A1:I1", []excelize.AutoFilterOptions{})
	f.SetPanes(sheetRingkas, &excelize.Panes{Freeze: true, Split: true, YSplit: 1})
	f.AutoFilter(sheetDetail, "A1:F1", []excelize.AutoFilterOptions{})
	f.SetPanes(sheetDetail, &excelize.Panes{Freeze: true, Split: true, YSplit: 1})

	f.SetActiveSheet(0)
	c.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set("Content-Disposition", "attachment; filename=laporan_toko_luwes.xlsx")
	buf, err := f.WriteToBuffer()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Gagal membuat file excel"})
	}
	return c.Send(buf.Bytes())
}

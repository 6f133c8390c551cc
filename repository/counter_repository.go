package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/farhandwk/toko-luwes/config"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func counterCol() *mongo.Collection { return config.CounterCollection }

// Prefix ID per jenis dokumen. Transaksi tidak lewat counter: id-nya
// diturunkan dari timestamp checkout (TRX-<ms>).
var counterPrefix = map[string]string{
	"produk":   "PRD",
	"kategori": "KTG",
	"satuan":   "STN",
	"grup":     "GRP",
	"harga":    "HRG",
	"stok":     "MTS",
	"user":     "USR",
}

// InitializeCounters memastikan dokumen counter ada untuk setiap jenis,
// tanpa mengubah nilai yang sudah berjalan.
func InitializeCounters() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	for name := range counterPrefix {
		_, err := counterCol().UpdateOne(ctx,
			bson.M{"_id": name},
			bson.M{"$setOnInsert": bson.M{"seq": 0}},
			options.Update().SetUpsert(true),
		)
		if err != nil {
			return fmt.Errorf("gagal inisialisasi counter %s: %w", name, err)
		}
	}
	return nil
}

// GenerateID mengambil nomor urut berikutnya secara atomik dan memformatnya
// jadi ID pendek, contoh: PRD001, KTG012.
func GenerateID(name string) (string, error) {
	prefix, ok := counterPrefix[name]
	if !ok {
		return "", fmt.Errorf("counter %s tidak dikenal", name)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var doc struct {
		Seq int64 `bson:"seq"`
	}
	err := counterCol().FindOneAndUpdate(ctx,
		bson.M{"_id": name},
		bson.M{"$inc": bson.M{"seq": 1}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%03d", prefix, doc.Seq), nil
}

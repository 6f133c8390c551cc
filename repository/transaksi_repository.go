package repository

import (
	"context"
	"time"

	"github.com/farhandwk/toko-luwes/config"
	"github.com/farhandwk/toko-luwes/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func transaksiCol() *mongo.Collection { return config.TransaksiCollection }

// Transaksi append-only: hanya Create dan baca. Tidak ada update/delete,
// riwayat penjualan tidak boleh berubah.

func EnsureTransaksiIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, err := transaksiCol().Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "kasir_id", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	})
	return err
}

func CreateTransaksi(t *models.Transaksi) (*mongo.InsertOneResult, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return transaksiCol().InsertOne(ctx, t)
}

// ListTransaksi mengambil seluruh riwayat, terbaru dulu. Tidak ada paging:
// riwayat toko kecil dan UI lama memang selalu menarik semuanya.
func ListTransaksi(filter bson.M) ([]models.Transaksi, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if filter == nil {
		filter = bson.M{}
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := transaksiCol().Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var list []models.Transaksi
	for cur.Next(ctx) {
		var t models.Transaksi
		if err := cur.Decode(&t); err != nil {
			return nil, err
		}
		list = append(list, t)
	}
	return list, cur.Err()
}

func GetTransaksiByID(id string) (*models.Transaksi, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var t models.Transaksi
	if err := transaksiCol().FindOne(ctx, bson.M{"_id": id}).Decode(&t); err != nil {
		return nil, err
	}
	return &t, nil
}

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

func stokCol() *mongo.Collection { return config.StokCollection }

func EnsureStokIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, err := stokCol().Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "produk_id", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	})
	return err
}

func CreateMutasi(m *models.StokMutasi) (*mongo.InsertOneResult, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return stokCol().InsertOne(ctx, m)
}

func GetMutasiByProduk(produkID string) ([]models.StokMutasi, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := stokCol().Find(ctx, bson.M{"produk_id": produkID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var list []models.StokMutasi
	for cur.Next(ctx) {
		var m models.StokMutasi
		if err := cur.Decode(&m); err != nil {
			return nil, err
		}
		list = append(list, m)
	}
	return list, cur.Err()
}

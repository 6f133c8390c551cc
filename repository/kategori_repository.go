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

func kategoriCol() *mongo.Collection { return config.KategoriCollection }

func EnsureKategoriIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Unique index on nama
	model := mongo.IndexModel{
		Keys:    bson.D{{Key: "nama", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	_, err := kategoriCol().Indexes().CreateOne(ctx, model)
	return err
}

func GetAllKategori() ([]models.Kategori, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cur, err := kategoriCol().Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var list []models.Kategori
	for cur.Next(ctx) {
		var k models.Kategori
		if err := cur.Decode(&k); err != nil {
			return nil, err
		}
		list = append(list, k)
	}
	return list, cur.Err()
}

func CreateKategori(k *models.Kategori) (*mongo.InsertOneResult, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return kategoriCol().InsertOne(ctx, k)
}

func DeleteKategori(id string) (*mongo.DeleteResult, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return kategoriCol().DeleteOne(ctx, bson.M{"_id": id})
}

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

func satuanCol() *mongo.Collection { return config.SatuanCollection }

func EnsureSatuanIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	model := mongo.IndexModel{
		Keys:    bson.D{{Key: "nama", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	_, err := satuanCol().Indexes().CreateOne(ctx, model)
	return err
}

func GetAllSatuan() ([]models.Satuan, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cur, err := satuanCol().Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var list []models.Satuan
	for cur.Next(ctx) {
		var s models.Satuan
		if err := cur.Decode(&s); err != nil {
			return nil, err
		}
		list = append(list, s)
	}
	return list, cur.Err()
}

func CreateSatuan(s *models.Satuan) (*mongo.InsertOneResult, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return satuanCol().InsertOne(ctx, s)
}

func DeleteSatuan(id string) (*mongo.DeleteResult, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return satuanCol().DeleteOne(ctx, bson.M{"_id": id})
}

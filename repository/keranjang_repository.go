package repository

import (
	"context"
	"errors"
	"time"

	"github.com/farhandwk/toko-luwes/config"
	"github.com/farhandwk/toko-luwes/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func keranjangCol() *mongo.Collection { return config.KeranjangCollection }

// KeranjangStore adalah implementasi Mongo dari service.KeranjangStorage.
// Satu dokumen per kasir; keranjang yang belum pernah dipakai dibaca sebagai
// kosong, bukan error.
type KeranjangStore struct{}

func NewKeranjangStore() *KeranjangStore { return &KeranjangStore{} }

func (KeranjangStore) Load(kasirID string) ([]models.KeranjangItem, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var k models.Keranjang
	err := keranjangCol().FindOne(ctx, bson.M{"_id": kasirID}).Decode(&k)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return k.Items, nil
}

func (KeranjangStore) Save(kasirID string, items []models.KeranjangItem) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if items == nil {
		items = []models.KeranjangItem{}
	}
	k := models.Keranjang{KasirID: kasirID, Items: items, UpdatedAt: time.Now()}
	_, err := keranjangCol().ReplaceOne(ctx, bson.M{"_id": kasirID}, k, options.Replace().SetUpsert(true))
	return err
}

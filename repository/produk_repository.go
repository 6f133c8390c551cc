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

func produkCol() *mongo.Collection { return config.ProdukCollection }

var ErrStokKurang = errors.New("stok tidak mencukupi")

func EnsureProdukIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, err := produkCol().Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "kategori", Value: 1}}},
		{Keys: bson.D{{Key: "nama", Value: 1}}},
	})
	return err
}

func GetAllProduk() ([]models.Produk, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := produkCol().Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var produks []models.Produk
	for cursor.Next(ctx) {
		var p models.Produk
		if err := cursor.Decode(&p); err != nil {
			return nil, err
		}
		produks = append(produks, p)
	}
	return produks, cursor.Err()
}

func GetProdukByID(id string) (*models.Produk, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var produk models.Produk
	if err := produkCol().FindOne(ctx, bson.M{"_id": id}).Decode(&produk); err != nil {
		return nil, err
	}
	return &produk, nil
}

func CreateProduk(p models.Produk) (*mongo.InsertOneResult, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return produkCol().InsertOne(ctx, p)
}

func UpdateProduk(id string, p models.ProdukInput) (*mongo.UpdateResult, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	set := bson.M{}
	if p.Nama != "" {
		set["nama"] = p.Nama
	}
	if p.Kategori != "" {
		set["kategori"] = p.Kategori
	}
	if p.Satuan != "" {
		set["satuan"] = p.Satuan
	}
	if p.Gambar != "" {
		set["gambar"] = p.Gambar
	}
	if p.Harga > 0 {
		set["harga"] = p.Harga
	}
	if p.Stok >= 0 {
		set["stok"] = p.Stok
	}
	return produkCol().UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
}

func DeleteProduk(id string) (*mongo.DeleteResult, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return produkCol().DeleteOne(ctx, bson.M{"_id": id})
}

// TambahStok menaikkan stok (restock). Jumlah harus positif.
func TambahStok(id string, jumlah int) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	res, err := produkCol().UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$inc": bson.M{"stok": jumlah}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// KurangiStok memotong stok satu produk dengan syarat stok cukup
// (compare-and-decrement dalam satu UpdateOne, jadi dua kasir yang checkout
// bersamaan tidak bisa membuat stok minus).
func KurangiStok(id string, jumlah int) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	res, err := produkCol().UpdateOne(ctx,
		bson.M{"_id": id, "stok": bson.M{"$gte": jumlah}},
		bson.M{"$inc": bson.M{"stok": -jumlah}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrStokKurang
	}
	return nil
}

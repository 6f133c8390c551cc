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

func grupCol() *mongo.Collection        { return config.GrupCollection }
func hargaGrosirCol() *mongo.Collection { return config.HargaGrosirCollection }

// Index unik (produk_id, grup_id) menutup kemungkinan baris harga grosir
// ganda untuk pasangan yang sama; upsert di bawah mengandalkannya.
func EnsureGrupIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := grupCol().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "nama", Value: 1}},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return err
	}

	_, err := hargaGrosirCol().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "produk_id", Value: 1}, {Key: "grup_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func GetAllGrup() ([]models.GrupPelanggan, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cur, err := grupCol().Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var list []models.GrupPelanggan
	for cur.Next(ctx) {
		var g models.GrupPelanggan
		if err := cur.Decode(&g); err != nil {
			return nil, err
		}
		list = append(list, g)
	}
	return list, cur.Err()
}

func CreateGrup(g *models.GrupPelanggan) (*mongo.InsertOneResult, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return grupCol().InsertOne(ctx, g)
}

// DeleteGrup menghapus grup sekaligus semua harga khusus miliknya.
func DeleteGrup(id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := grupCol().DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return err
	}
	_, err := hargaGrosirCol().DeleteMany(ctx, bson.M{"grup_id": id})
	return err
}

// GetAllHargaGrosir mengembalikan daftar harga khusus dalam urutan stabil
// (created_at naik), jadi pemilihan "baris pertama yang cocok" di resolver
// deterministik.
func GetAllHargaGrosir() ([]models.HargaGrosir, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}})
	cur, err := hargaGrosirCol().Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var list []models.HargaGrosir
	for cur.Next(ctx) {
		var h models.HargaGrosir
		if err := cur.Decode(&h); err != nil {
			return nil, err
		}
		list = append(list, h)
	}
	return list, cur.Err()
}

// UpsertHargaGrosir menimpa harga khusus untuk pasangan (produk, grup) kalau
// sudah ada, atau membuat baris baru kalau belum.
func UpsertHargaGrosir(h models.HargaGrosir) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	filter := bson.M{"produk_id": h.ProdukID, "grup_id": h.GrupID}
	update := bson.M{
		"$set":         bson.M{"harga": h.Harga},
		"$setOnInsert": bson.M{"_id": h.ID, "produk_id": h.ProdukID, "grup_id": h.GrupID, "created_at": h.CreatedAt},
	}
	_, err := hargaGrosirCol().UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

func DeleteHargaGrosir(id string) (*mongo.DeleteResult, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return hargaGrosirCol().DeleteOne(ctx, bson.M{"_id": id})
}

package config

import (
	"context"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Global variabel untuk koleksi
var (
	DB                    *mongo.Database
	ProdukCollection      *mongo.Collection
	KategoriCollection    *mongo.Collection
	SatuanCollection      *mongo.Collection
	GrupCollection        *mongo.Collection
	HargaGrosirCollection *mongo.Collection
	KeranjangCollection   *mongo.Collection
	TransaksiCollection   *mongo.Collection
	StokCollection        *mongo.Collection
	CounterCollection     *mongo.Collection
	UserCollection        *mongo.Collection
)

func ConnectDB() {
	mongoURI := os.Getenv("MONGO_URI")
	dbName := os.Getenv("DB_NAME")

	// Defaults for local development if env not set
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017"
	}
	if dbName == "" {
		dbName = "tokoluwes"
	}

	clientOptions := options.Client().ApplyURI(mongoURI)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		log.Fatal("Gagal connect ke MongoDB:", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		log.Fatal("MongoDB tidak bisa diakses:", err)
	}

	DB = client.Database(dbName)

	// Inisialisasi semua koleksi
	ProdukCollection = DB.Collection("produk")
	KategoriCollection = DB.Collection("kategori")
	SatuanCollection = DB.Collection("satuan")
	GrupCollection = DB.Collection("grup_pelanggan")
	HargaGrosirCollection = DB.Collection("harga_grosir")
	KeranjangCollection = DB.Collection("keranjang")
	TransaksiCollection = DB.Collection("transaksi")
	StokCollection = DB.Collection("stok")
	CounterCollection = DB.Collection("counters")
	UserCollection = DB.Collection("user")
}

func GetCollection(name string) *mongo.Collection {
	return DB.Collection(name)
}

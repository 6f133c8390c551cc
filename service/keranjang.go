package service

import (
	"github.com/farhandwk/toko-luwes/models"
)

// KeranjangStorage memisahkan penyimpanan keranjang dari logikanya, supaya
// logika keranjang bisa diuji tanpa MongoDB. Implementasi Mongo ada di
// repository, implementasi memory ada di bawah.
type KeranjangStorage interface {
	Load(kasirID string) ([]models.KeranjangItem, error)
	Save(kasirID string, items []models.KeranjangItem) error
}

type KeranjangService struct {
	storage KeranjangStorage
}

func NewKeranjangService(storage KeranjangStorage) *KeranjangService {
	return &KeranjangService{storage: storage}
}

func (s *KeranjangService) Items(kasirID string) ([]models.KeranjangItem, error) {
	return s.storage.Load(kasirID)
}

// AddItem menambah satu unit produk ke keranjang. Kalau produk sudah ada,
// jumlah naik 1 dan harga/flag grosir DITIMPA dengan nilai yang dikirim,
// supaya pergantian grup pelanggan ikut terbawa ke baris yang sudah ada.
func (s *KeranjangService) AddItem(kasirID string, item models.KeranjangItem) ([]models.KeranjangItem, error) {
	items, err := s.storage.Load(kasirID)
	if err != nil {
		return nil, err
	}
	found := false
	for i := range items {
		if items[i].ProdukID == item.ProdukID {
			items[i].Jumlah++
			items[i].Nama = item.Nama
			items[i].Harga = item.Harga
			items[i].HargaGrosir = item.HargaGrosir
			found = true
			break
		}
	}
	if !found {
		item.Jumlah = 1
		items = append(items, item)
	}
	if err := s.storage.Save(kasirID, items); err != nil {
		return nil, err
	}
	return items, nil
}

// DecreaseQty mengurangi jumlah 1; baris yang jumlahnya habis dihapus.
// ProdukID yang tidak ada di keranjang diabaikan.
func (s *KeranjangService) DecreaseQty(kasirID, produkID string) ([]models.KeranjangItem, error) {
	items, err := s.storage.Load(kasirID)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ProdukID != produkID {
			continue
		}
		if items[i].Jumlah > 1 {
			items[i].Jumlah--
		} else {
			items = append(items[:i], items[i+1:]...)
		}
		break
	}
	if err := s.storage.Save(kasirID, items); err != nil {
		return nil, err
	}
	return items, nil
}

// RemoveItem menghapus baris tanpa melihat jumlahnya.
func (s *KeranjangService) RemoveItem(kasirID, produkID string) ([]models.KeranjangItem, error) {
	items, err := s.storage.Load(kasirID)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ProdukID == produkID {
			items = append(items[:i], items[i+1:]...)
			break
		}
	}
	if err := s.storage.Save(kasirID, items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *KeranjangService) Clear(kasirID string) error {
	return s.storage.Save(kasirID, nil)
}

// TotalHarga dihitung ulang setiap dipanggil, tidak ada cache.
func TotalHarga(items []models.KeranjangItem) int64 {
	var total int64
	for _, it := range items {
		total += it.Harga * int64(it.Jumlah)
	}
	return total
}

// MemoryKeranjang menyimpan keranjang di map, dipakai di test dan sebagai
// fallback saat storage belum dikonfigurasi.
type MemoryKeranjang struct {
	data map[string][]models.KeranjangItem
}

func NewMemoryKeranjang() *MemoryKeranjang {
	return &MemoryKeranjang{data: make(map[string][]models.KeranjangItem)}
}

func (m *MemoryKeranjang) Load(kasirID string) ([]models.KeranjangItem, error) {
	items := m.data[kasirID]
	out := make([]models.KeranjangItem, len(items))
	copy(out, items)
	return out, nil
}

func (m *MemoryKeranjang) Save(kasirID string, items []models.KeranjangItem) error {
	out := make([]models.KeranjangItem, len(items))
	copy(out, items)
	m.data[kasirID] = out
	return nil
}

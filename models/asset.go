package models

// Bentuk record untuk pencatatan aset tetap. Nama koleksi = nama tipe dalam
// huruf kecil (AssetCategory -> "assetcategory").
//
// Tag `validate` hanya dipakai pada mode strict; endpoint generik tidak
// memeriksa bentuk ini kecuali STRICT_SCHEMA aktif.

type AssetCategory struct {
	Name        string  `json:"name" bson:"name" validate:"required" description:"Nama kategori aset" example:"Elektronik"`
	Description *string `json:"description,omitempty" bson:"description,omitempty" description:"Deskripsi kategori" example:"Peralatan elektronik kantor"`
}

type Location struct {
	Name    string  `json:"name" bson:"name" validate:"required" description:"Nama lokasi/ruangan" example:"Ruang Rapat Utama"`
	Address *string `json:"address,omitempty" bson:"address,omitempty" description:"Alamat lokasi" example:"Jl. Merdeka No. 1"`
	Floor   *string `json:"floor,omitempty" bson:"floor,omitempty" description:"Lantai/ruang detail" example:"Lantai 2"`
}

type Department struct {
	Name          string  `json:"name" bson:"name" validate:"required" description:"Nama Bagian/Bidang" example:"Bagian Umum"`
	ContactPerson *string `json:"contact_person,omitempty" bson:"contact_person,omitempty" description:"Kontak penanggung jawab" example:"Budi (0812-0000-0000)"`
}

type Asset struct {
	Code         string   `json:"code" bson:"code" validate:"required" description:"Kode inventaris/nomor register unik" example:"INV-2024-0001"`
	Name         string   `json:"name" bson:"name" validate:"required" description:"Nama aset" example:"Laptop Dinas"`
	CategoryID   string   `json:"category_id" bson:"category_id" validate:"required" description:"ID kategori aset" example:"6650f1c2a4b9e3d2f1a0b7c4"`
	LocationID   string   `json:"location_id" bson:"location_id" validate:"required" description:"ID lokasi aset" example:"6650f1c2a4b9e3d2f1a0b7c5"`
	DepartmentID *string  `json:"department_id,omitempty" bson:"department_id,omitempty" description:"ID bagian/bidang pemilik" example:"6650f1c2a4b9e3d2f1a0b7c6"`
	Status       string   `json:"status" bson:"status" default:"aktif" enum:"aktif,perbaikan,rusak,dihapus" description:"Status aset" example:"aktif"`
	Condition    string   `json:"condition" bson:"condition" default:"baik" enum:"baru,baik,sedang,rusak" description:"Kondisi aset" example:"baik"`
	PurchaseDate *string  `json:"purchase_date,omitempty" bson:"purchase_date,omitempty" validate:"omitempty,datetime=2006-01-02" format:"date" description:"Tanggal perolehan" example:"2024-01-15"`
	Value        *float64 `json:"value,omitempty" bson:"value,omitempty" validate:"omitempty,gte=0" description:"Nilai perolehan (Rp)" example:"15000000"`
	Description  *string  `json:"description,omitempty" bson:"description,omitempty" description:"Keterangan tambahan" example:"Dipakai oleh staf keuangan"`
}

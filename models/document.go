package models

// CreateRequest adalah body POST /api/create.
type CreateRequest struct {
	Collection string `json:"collection" validate:"required" example:"assetcategory"`
	Data       Fields `json:"data" validate:"required" swaggertype:"object"`
}

// CreateResponse dikembalikan setelah dokumen berhasil disimpan.
type CreateResponse struct {
	InsertedID string `json:"inserted_id" example:"6650f1c2a4b9e3d2f1a0b7c4"`
}

type ListResponse struct {
	Items []Fields `json:"items"`
}

type CollectionsResponse struct {
	Collections []string `json:"collections"`
}

// Banner adalah respons statis GET /.
type Banner struct {
	Name    string `json:"name" example:"SiMATA"`
	Version string `json:"version" example:"0.1"`
	Message string `json:"message" example:"Backend berjalan"`
}

// ErrorResponse adalah bentuk umum respons gagal.
type ErrorResponse struct {
	Message string            `json:"message" example:"Gagal membuat dokumen"`
	Detail  string            `json:"detail,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

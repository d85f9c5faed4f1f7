package controllers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"simata/models"
	"simata/repository"
	"simata/schemas"
)

// DocumentController adalah gateway generik: daftar koleksi, create, list.
type DocumentController struct {
	Store *repository.Handle
	Log   *zap.Logger
	// Strict mengaktifkan pemeriksaan katalog skema pada Create.
	Strict bool
}

func NewDocumentController(store *repository.Handle, log *zap.Logger, strict bool) *DocumentController {
	return &DocumentController{Store: store, Log: log, Strict: strict}
}

// ListCollections godoc
//
//	@Summary		List collections
//	@Description	Semua nama koleksi di database; kosong jika database belum diinisialisasi
//	@Tags			Gateway
//	@Produce		json
//	@Success		200	{object}	models.CollectionsResponse
//	@Failure		500	{object}	models.ErrorResponse
//	@Router			/api/collections [get]
func (dc *DocumentController) ListCollections(c *fiber.Ctx) error {
	names, err := dc.Store.Collections(c.UserContext())
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, "Gagal mengambil daftar koleksi", err)
	}
	return c.JSON(models.CollectionsResponse{Collections: names})
}

// Create godoc
//
//	@Summary		Create document
//	@Description	Menyimpan data sebagai dokumen baru di koleksi yang disebut
//	@Tags			Gateway
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		models.CreateRequest	true	"Koleksi dan data"
//	@Success		200		{object}	models.CreateResponse
//	@Failure		400		{object}	models.ErrorResponse
//	@Router			/api/create [post]
func (dc *DocumentController) Create(c *fiber.Ctx) error {
	var req models.CreateRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Request tidak valid", err)
	}
	if err := validate.Struct(req); err != nil {
		return failValidation(c, "Validasi gagal", err)
	}

	data := req.Data
	if dc.Strict {
		data = schemas.ApplyDefaults(req.Collection, data)
		if err := schemas.Validate(req.Collection, data); err != nil {
			return failValidation(c, "Data tidak sesuai skema", err)
		}
	}

	id, err := dc.Store.Create(c.UserContext(), req.Collection, data)
	if err != nil {
		dc.Log.Warn("create dokumen gagal",
			zap.String("collection", req.Collection),
			zap.Error(err),
		)
		return fail(c, fiber.StatusBadRequest, "Gagal membuat dokumen", err)
	}
	return c.JSON(models.CreateResponse{InsertedID: id})
}

// List godoc
//
//	@Summary		List documents
//	@Description	Maksimal `limit` dokumen dari koleksi, urutan bawaan store; _id dikembalikan sebagai teks
//	@Tags			Gateway
//	@Produce		json
//	@Param			collection	path		string	true	"Nama koleksi"
//	@Param			limit		query		int		false	"Jumlah maksimum dokumen"	default(50)
//	@Success		200			{object}	models.ListResponse
//	@Failure		400			{object}	models.ErrorResponse
//	@Router			/api/list/{collection} [get]
func (dc *DocumentController) List(c *fiber.Ctx) error {
	collection := c.Params("collection")
	limit, err := parseLimit(c)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Query limit tidak valid", err)
	}

	items, err := dc.Store.List(c.UserContext(), collection, limit)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Gagal mengambil dokumen", err)
	}
	return c.JSON(models.ListResponse{Items: items})
}

// parseLimit reads ?limit=, defaulting to repository.DefaultLimit.
func parseLimit(c *fiber.Ctx) (int, error) {
	raw := c.Query("limit")
	if raw == "" {
		return repository.DefaultLimit, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.New("limit harus berupa bilangan bulat")
	}
	if n <= 0 {
		return 0, repository.ErrInvalidLimit
	}
	return n, nil
}

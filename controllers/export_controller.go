package controllers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"

	"simata/models"
	"simata/repository"
)

const exportSheet = "Data"

type ExportController struct {
	Store *repository.Handle
}

func NewExportController(store *repository.Handle) *ExportController {
	return &ExportController{Store: store}
}

// ExportExcel godoc
//
//	@Summary		Export collection to Excel
//	@Description	Unduh maksimal `limit` dokumen koleksi sebagai file .xlsx; kolom = gabungan semua field
//	@Tags			Gateway
//	@Produce		application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
//	@Param			collection	path	string	true	"Nama koleksi"
//	@Param			limit		query	int		false	"Jumlah maksimum dokumen"	default(50)
//	@Success		200			{file}	file
//	@Failure		400			{object}	models.ErrorResponse
//	@Router			/api/export/{collection} [get]
func (ec *ExportController) ExportExcel(c *fiber.Ctx) error {
	collection := c.Params("collection")
	limit, err := parseLimit(c)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Query limit tidak valid", err)
	}

	items, err := ec.Store.List(c.UserContext(), collection, limit)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Gagal mengambil dokumen", err)
	}

	f, err := buildWorkbook(items)
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, "Gagal membuat file excel", err)
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, "Gagal membuat file excel", err)
	}

	c.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", collection+".xlsx"))
	return c.Send(buf.Bytes())
}

// columns returns the union of field names, identifier first, then sorted.
func columns(items []models.Fields) []string {
	union := models.Fields{}
	for _, it := range items {
		for k := range it {
			union[k] = models.Null()
		}
	}
	return union.Keys()
}

func buildWorkbook(items []models.Fields) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, err
	}

	cols := columns(items)
	for i, h := range cols {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(exportSheet, cell, h); err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(exportSheet, cell, cell, headerStyle); err != nil {
			return nil, err
		}
	}

	for r, it := range items {
		for i, k := range cols {
			v, ok := it[k]
			if !ok || v.IsNull() {
				continue
			}
			cell, _ := excelize.CoordinatesToCellName(i+1, r+2)
			if err := f.SetCellValue(exportSheet, cell, cellValue(v)); err != nil {
				return nil, err
			}
		}
	}

	if len(cols) > 0 {
		last, _ := excelize.CoordinatesToCellName(len(cols), 1)
		if err := f.AutoFilter(exportSheet, "A1:"+last, []excelize.AutoFilterOptions{}); err != nil {
			return nil, err
		}
		if err := f.SetPanes(exportSheet, &excelize.Panes{Freeze: true, Split: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"}); err != nil {
			return nil, err
		}
	}
	return f, nil
}

func cellValue(v models.Value) any {
	switch v.Kind() {
	case models.KindInt:
		i, _ := v.Int()
		return i
	case models.KindFloat:
		n, _ := v.Number()
		return n
	case models.KindBool:
		b, _ := v.Bool()
		return b
	case models.KindTime:
		t, _ := v.Time()
		return t
	}
	return v.String()
}

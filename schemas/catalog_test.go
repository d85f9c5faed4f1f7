package schemas_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"simata/models"
	"simata/schemas"
)

func TestCatalog_DeclaresFourShapes(t *testing.T) {
	cat := schemas.Catalog()
	require.Len(t, cat, 4)

	want := map[string]string{
		"AssetCategory": "assetcategory",
		"Location":      "location",
		"Department":    "department",
		"Asset":         "asset",
	}
	for _, s := range cat {
		assert.Equal(t, want[s.Name], s.Collection, s.Name)
	}
}

func TestCatalog_AssetFields(t *testing.T) {
	s, ok := schemas.Lookup("asset")
	require.True(t, ok)

	tests := []struct {
		field    string
		typ      string
		required bool
		def      string
	}{
		{"code", "text", true, ""},
		{"name", "text", true, ""},
		{"category_id", "text", true, ""},
		{"location_id", "text", true, ""},
		{"department_id", "text", false, ""},
		{"status", "text", false, "aktif"},
		{"condition", "text", false, "baik"},
		{"purchase_date", "date", false, ""},
		{"value", "number", false, ""},
		{"description", "text", false, ""},
	}
	require.Len(t, s.Fields, len(tests))

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			f, ok := s.Field(tt.field)
			require.True(t, ok)
			assert.Equal(t, tt.typ, f.Type)
			assert.Equal(t, tt.required, f.Required)
			if tt.def == "" {
				assert.Nil(t, f.Default)
			} else {
				require.NotNil(t, f.Default)
				assert.Equal(t, tt.def, *f.Default)
			}
		})
	}

	value, _ := s.Field("value")
	require.NotNil(t, value.Min)
	assert.Equal(t, 0.0, *value.Min)

	status, _ := s.Field("status")
	assert.Equal(t, []string{"aktif", "perbaikan", "rusak", "dihapus"}, status.Enum)
}

func TestLookup(t *testing.T) {
	_, ok := schemas.Lookup("AssetCategory")
	assert.True(t, ok)
	_, ok = schemas.Lookup("Location")
	assert.True(t, ok)
	_, ok = schemas.Lookup("vehicles")
	assert.False(t, ok)
}

func TestCatalog_ReturnsCopy(t *testing.T) {
	cat := schemas.Catalog()
	cat[0].Name = "changed"
	assert.Equal(t, "AssetCategory", schemas.Catalog()[0].Name)
}

func validAsset() models.Fields {
	return models.Fields{
		"code":        models.String("INV-001"),
		"name":        models.String("Laptop"),
		"category_id": models.String("c1"),
		"location_id": models.String("l1"),
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name       string
		collection string
		data       models.Fields
		wantFields []string
	}{
		{name: "valid asset", collection: "asset", data: validAsset()},
		{
			name:       "missing required",
			collection: "asset",
			data:       models.Fields{"name": models.String("Laptop")},
			wantFields: []string{"code", "category_id", "location_id"},
		},
		{
			name:       "negative value",
			collection: "asset",
			data: func() models.Fields {
				f := validAsset()
				f["value"] = models.Int(-1)
				return f
			}(),
			wantFields: []string{"value"},
		},
		{
			name:       "bad purchase date",
			collection: "asset",
			data: func() models.Fields {
				f := validAsset()
				f["purchase_date"] = models.String("15/01/2024")
				return f
			}(),
			wantFields: []string{"purchase_date"},
		},
		{
			name:       "unenforced status value",
			collection: "asset",
			data: func() models.Fields {
				f := validAsset()
				f["status"] = models.String("hilang")
				f["value"] = models.Float(0)
				return f
			}(),
		},
		{name: "unknown collection", collection: "vehicles", data: models.Fields{}},
		{
			name:       "category without name",
			collection: "assetcategory",
			data:       models.Fields{"description": models.String("x")},
			wantFields: []string{"name"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := schemas.Validate(tt.collection, tt.data)
			if len(tt.wantFields) == 0 {
				assert.NoError(t, err)
				return
			}
			var ve *schemas.ValidationError
			require.True(t, errors.As(err, &ve), "got %v", err)
			for _, f := range tt.wantFields {
				assert.Contains(t, ve.Fields, f)
			}
		})
	}
}

func TestValidate_TypeMismatch(t *testing.T) {
	err := schemas.Validate("location", models.Fields{"name": models.Int(5)})
	require.Error(t, err)
	var ve *schemas.ValidationError
	assert.False(t, errors.As(err, &ve))
}

func TestApplyDefaults(t *testing.T) {
	in := validAsset()
	out := schemas.ApplyDefaults("asset", in)

	status, _ := out["status"].Text()
	condition, _ := out["condition"].Text()
	assert.Equal(t, "aktif", status)
	assert.Equal(t, "baik", condition)
	_, touched := in["status"]
	assert.False(t, touched, "input must not be modified")

	in["status"] = models.String("rusak")
	out = schemas.ApplyDefaults("asset", in)
	status, _ = out["status"].Text()
	assert.Equal(t, "rusak", status)

	in["condition"] = models.Null()
	out = schemas.ApplyDefaults("asset", in)
	condition, ok := out["condition"].Text()
	require.True(t, ok, "explicit null falls back to the default")
	assert.Equal(t, "baik", condition)

	other := models.Fields{"x": models.Int(1)}
	assert.Equal(t, other, schemas.ApplyDefaults("vehicles", other))
}

func TestStrictChecks_MatchCollectionExactly(t *testing.T) {
	data := models.Fields{"x": models.Int(1)}

	assert.Error(t, schemas.Validate("asset", data))
	assert.NoError(t, schemas.Validate("ASSET", data))
	assert.NoError(t, schemas.Validate("Asset", data))
	assert.Equal(t, data, schemas.ApplyDefaults("ASSET", data))

	_, ok := schemas.Lookup("ASSET")
	assert.True(t, ok, "catalog lookup stays case-insensitive")
}

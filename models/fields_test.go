package models_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"simata/models"
)

func TestFieldsUnmarshalJSON_KeepsIntegers(t *testing.T) {
	var f models.Fields
	err := json.Unmarshal([]byte(`{"name":"Laptop","qty":3,"value":1500000.5,"ok":true,"note":null,
		"tags":["a",1],"meta":{"floor":2}}`), &f)
	require.NoError(t, err)

	qty, ok := f["qty"].Int()
	require.True(t, ok)
	assert.Equal(t, int64(3), qty)

	assert.Equal(t, models.KindFloat, f["value"].Kind())
	assert.Equal(t, models.KindBool, f["ok"].Kind())
	assert.True(t, f["note"].IsNull())

	tags, ok := f["tags"].Array()
	require.True(t, ok)
	require.Len(t, tags, 2)
	assert.Equal(t, models.KindString, tags[0].Kind())
	assert.Equal(t, models.KindInt, tags[1].Kind())

	meta, ok := f["meta"].Object()
	require.True(t, ok)
	floor, _ := meta["floor"].Int()
	assert.Equal(t, int64(2), floor)
}

func TestFieldsUnmarshalJSON_RejectsNonObject(t *testing.T) {
	for _, body := range []string{`[1,2]`, `"text"`, `42`} {
		var f models.Fields
		err := json.Unmarshal([]byte(body), &f)
		assert.ErrorIs(t, err, models.ErrNotObject, body)
	}

	var f models.Fields
	require.NoError(t, json.Unmarshal([]byte(`null`), &f))
	assert.Nil(t, f)
}

func TestFieldsBSON(t *testing.T) {
	f := models.Fields{
		"name":  models.String("Kursi"),
		"count": models.Int(4),
		"price": models.Float(12.5),
		"meta":  models.Object(models.Fields{"floor": models.String("2")}),
		"list":  models.Array(models.Int(1), models.Null()),
	}
	doc := f.BSON()

	assert.Equal(t, "Kursi", doc["name"])
	assert.Equal(t, int64(4), doc["count"])
	assert.Equal(t, 12.5, doc["price"])
	assert.Equal(t, bson.M{"floor": "2"}, doc["meta"])
	assert.Equal(t, bson.A{int64(1), nil}, doc["list"])
}

func TestDocumentFromBSON_NormalizesIdentifiers(t *testing.T) {
	oid := primitive.NewObjectID()
	ref := primitive.NewObjectID()
	when := time.Date(2024, 1, 15, 8, 30, 0, 0, time.UTC)

	doc := models.DocumentFromBSON(bson.M{
		"_id":       oid,
		"name":      "Proyektor",
		"count":     int32(2),
		"bought_at": primitive.NewDateTimeFromTime(when),
		"refs":      bson.A{ref},
		"owner":     bson.D{{Key: "department_id", Value: ref}},
	})

	id, ok := doc["_id"].Text()
	require.True(t, ok)
	assert.Equal(t, oid.Hex(), id)

	count, _ := doc["count"].Int()
	assert.Equal(t, int64(2), count)

	ts, ok := doc["bought_at"].Time()
	require.True(t, ok)
	assert.True(t, when.Equal(ts))

	refs, _ := doc["refs"].Array()
	require.Len(t, refs, 1)
	refText, _ := refs[0].Text()
	assert.Equal(t, ref.Hex(), refText)

	owner, ok := doc["owner"].Object()
	require.True(t, ok)
	dept, _ := owner["department_id"].Text()
	assert.Equal(t, ref.Hex(), dept)
}

func TestFieldsMarshalJSON(t *testing.T) {
	oid := primitive.NewObjectID()
	doc := models.DocumentFromBSON(bson.M{
		"_id":   oid,
		"name":  "Electronics",
		"at":    primitive.NewDateTimeFromTime(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)),
		"count": int64(7),
	})

	b, err := json.Marshal(doc)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(b, &out))
	assert.Equal(t, oid.Hex(), out["_id"])
	assert.Equal(t, "Electronics", out["name"])
	assert.Equal(t, "2024-05-01T00:00:00Z", out["at"])
	assert.Equal(t, float64(7), out["count"])
}

func TestFieldsKeys_IdentifierFirst(t *testing.T) {
	f := models.Fields{"name": models.Null(), "_id": models.Null(), "code": models.Null()}
	assert.Equal(t, []string{"_id", "code", "name"}, f.Keys())
}

func TestIDText(t *testing.T) {
	oid := primitive.NewObjectID()
	assert.Equal(t, oid.Hex(), models.IDText(oid))
	assert.Equal(t, "custom-id", models.IDText("custom-id"))
	assert.Equal(t, "42", models.IDText(int64(42)))
}

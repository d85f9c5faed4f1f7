// Package docs holds the Swagger 2.0 document served at /swagger/*. Keep it
// in step with the godoc annotations in controllers/.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/": {
            "get": {
                "description": "Banner statis, tidak bergantung pada database",
                "produces": ["application/json"],
                "tags": ["System"],
                "summary": "Liveness banner",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Banner"}}
                }
            }
        },
        "/test": {
            "get": {
                "description": "Status database best-effort; endpoint ini tidak pernah gagal",
                "produces": ["application/json"],
                "tags": ["System"],
                "summary": "Database diagnostics",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/repository.Diagnostics"}}
                }
            }
        },
        "/api/collections": {
            "get": {
                "description": "Semua nama koleksi di database; kosong jika database belum diinisialisasi",
                "produces": ["application/json"],
                "tags": ["Gateway"],
                "summary": "List collections",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.CollectionsResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/api/create": {
            "post": {
                "description": "Menyimpan data sebagai dokumen baru di koleksi yang disebut",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Gateway"],
                "summary": "Create document",
                "parameters": [
                    {
                        "description": "Koleksi dan data",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/models.CreateRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.CreateResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/api/list/{collection}": {
            "get": {
                "description": "Maksimal ` + "`" + `limit` + "`" + ` dokumen dari koleksi, urutan bawaan store; _id dikembalikan sebagai teks",
                "produces": ["application/json"],
                "tags": ["Gateway"],
                "summary": "List documents",
                "parameters": [
                    {"type": "string", "description": "Nama koleksi", "name": "collection", "in": "path", "required": true},
                    {"type": "integer", "default": 50, "description": "Jumlah maksimum dokumen", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.ListResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/api/export/{collection}": {
            "get": {
                "description": "Unduh maksimal ` + "`" + `limit` + "`" + ` dokumen koleksi sebagai file .xlsx; kolom = gabungan semua field",
                "produces": ["application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"],
                "tags": ["Gateway"],
                "summary": "Export collection to Excel",
                "parameters": [
                    {"type": "string", "description": "Nama koleksi", "name": "collection", "in": "path", "required": true},
                    {"type": "integer", "default": 50, "description": "Jumlah maksimum dokumen", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "file"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/api/schemas": {
            "get": {
                "description": "Bentuk record AssetCategory, Location, Department, Asset (referensi, tidak ditegakkan kecuali mode strict)",
                "produces": ["application/json"],
                "tags": ["Schema"],
                "summary": "Schema catalog",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/api/schemas/{name}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Schema"],
                "summary": "Schema by collection",
                "parameters": [
                    {"type": "string", "description": "Nama koleksi atau tipe", "name": "name", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/schemas.Schema"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "models.Banner": {
            "type": "object",
            "properties": {
                "message": {"type": "string", "example": "Backend berjalan"},
                "name": {"type": "string", "example": "SiMATA"},
                "version": {"type": "string", "example": "0.1"}
            }
        },
        "models.CollectionsResponse": {
            "type": "object",
            "properties": {
                "collections": {"type": "array", "items": {"type": "string"}}
            }
        },
        "models.CreateRequest": {
            "type": "object",
            "required": ["collection", "data"],
            "properties": {
                "collection": {"type": "string", "example": "assetcategory"},
                "data": {"type": "object"}
            }
        },
        "models.CreateResponse": {
            "type": "object",
            "properties": {
                "inserted_id": {"type": "string", "example": "6650f1c2a4b9e3d2f1a0b7c4"}
            }
        },
        "models.ErrorResponse": {
            "type": "object",
            "properties": {
                "detail": {"type": "string"},
                "errors": {"type": "object", "additionalProperties": {"type": "string"}},
                "message": {"type": "string", "example": "Gagal membuat dokumen"}
            }
        },
        "models.ListResponse": {
            "type": "object",
            "properties": {
                "items": {"type": "array", "items": {"type": "object"}}
            }
        },
        "repository.Diagnostics": {
            "type": "object",
            "properties": {
                "backend": {"type": "string"},
                "collections": {"type": "array", "items": {"type": "string"}},
                "connection_status": {"type": "string"},
                "database": {"type": "string"},
                "database_name": {"type": "string"},
                "database_url": {"type": "string"}
            }
        },
        "schemas.FieldSpec": {
            "type": "object",
            "properties": {
                "default": {"type": "string"},
                "description": {"type": "string"},
                "enum": {"type": "array", "items": {"type": "string"}},
                "min": {"type": "number"},
                "name": {"type": "string"},
                "required": {"type": "boolean"},
                "type": {"type": "string"}
            }
        },
        "schemas.Schema": {
            "type": "object",
            "properties": {
                "collection": {"type": "string"},
                "fields": {"type": "array", "items": {"$ref": "#/definitions/schemas.FieldSpec"}},
                "name": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "0.1",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "SiMATA API",
	Description:      "Sistem Informasi Manajemen Aset & Tata Kelola: gateway dokumen generik dan katalog skema aset.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

// Package docs registers the OpenAPI document served at /swagger/doc.json.
// Regenerate with: swag init -g cmd/api/main.go
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "securityDefinitions": {
        "AdminKey": {"type": "apiKey", "name": "X-Admin-Key", "in": "header"}
    },
    "paths": {
        "/health": {"get": {"tags": ["Health"], "summary": "Health Check", "responses": {"200": {"description": "API is healthy"}}}},
        "/ready": {"get": {"tags": ["Health"], "summary": "Readiness Check", "responses": {"200": {"description": "API is ready"}, "503": {"description": "Database unreachable"}}}},
        "/live": {"get": {"tags": ["Health"], "summary": "Liveness Check", "responses": {"200": {"description": "API is alive"}}}},
        "/api/v1/menu": {
            "get": {
                "tags": ["Menu"],
                "summary": "Customer menu",
                "parameters": [{"type": "string", "default": "all", "description": "Filter key", "name": "filter", "in": "query"}],
                "responses": {"200": {"description": "OK"}, "429": {"description": "Too Many Requests"}}
            }
        },
        "/api/v1/menu/filters": {
            "get": {"tags": ["Menu"], "summary": "Customer filter bar", "responses": {"200": {"description": "OK"}, "429": {"description": "Too Many Requests"}}}
        },
        "/api/v1/admin/menu/preview": {
            "post": {
                "security": [{"AdminKey": []}],
                "tags": ["Admin Menu"],
                "summary": "Preview the menu with unsaved items",
                "parameters": [{"description": "Filter and draft items", "name": "body", "in": "body", "required": true, "schema": {"type": "object"}}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/api/v1/admin/items": {
            "get": {"security": [{"AdminKey": []}], "tags": ["Admin Items"], "summary": "List items", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"AdminKey": []}], "tags": ["Admin Items"], "summary": "Create an item", "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}}
        },
        "/api/v1/admin/items/{id}": {
            "get": {"security": [{"AdminKey": []}], "tags": ["Admin Items"], "summary": "Item detail", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "put": {"security": [{"AdminKey": []}], "tags": ["Admin Items"], "summary": "Update an item", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "delete": {"security": [{"AdminKey": []}], "tags": ["Admin Items"], "summary": "Delete an item", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        },
        "/api/v1/admin/categories": {
            "get": {"security": [{"AdminKey": []}], "tags": ["Admin Categories"], "summary": "List categories", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"AdminKey": []}], "tags": ["Admin Categories"], "summary": "Create a category", "responses": {"201": {"description": "Created"}}}
        },
        "/api/v1/admin/categories/{id}": {
            "put": {"security": [{"AdminKey": []}], "tags": ["Admin Categories"], "summary": "Update a category", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}},
            "delete": {"security": [{"AdminKey": []}], "tags": ["Admin Categories"], "summary": "Delete a category", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "409": {"description": "Category still has items"}}}
        },
        "/api/v1/admin/tags": {
            "get": {"security": [{"AdminKey": []}], "tags": ["Admin Tags"], "summary": "List tags", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"AdminKey": []}], "tags": ["Admin Tags"], "summary": "Create a tag", "responses": {"201": {"description": "Created"}, "409": {"description": "Duplicate key"}}}
        },
        "/api/v1/admin/tags/{id}": {
            "put": {"security": [{"AdminKey": []}], "tags": ["Admin Tags"], "summary": "Update a tag", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}},
            "delete": {"security": [{"AdminKey": []}], "tags": ["Admin Tags"], "summary": "Delete a tag", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}
        },
        "/api/v1/admin/filters": {
            "get": {"security": [{"AdminKey": []}], "tags": ["Admin Filters"], "summary": "List filters", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"AdminKey": []}], "tags": ["Admin Filters"], "summary": "Create a customer filter", "responses": {"201": {"description": "Created"}, "409": {"description": "Key already exists or reserved"}, "422": {"description": "Invalid predicate"}}}
        },
        "/api/v1/admin/filters/order": {
            "put": {"security": [{"AdminKey": []}], "tags": ["Admin Filters"], "summary": "Reorder filters", "responses": {"200": {"description": "OK"}, "400": {"description": "Not a permutation of every filter"}}}
        },
        "/api/v1/admin/filters/{id}": {
            "put": {"security": [{"AdminKey": []}], "tags": ["Admin Filters"], "summary": "Update a filter", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "422": {"description": "Invalid predicate"}}},
            "delete": {"security": [{"AdminKey": []}], "tags": ["Admin Filters"], "summary": "Delete a filter", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1",
	Host:             "localhost:8080",
	BasePath:         "",
	Schemes:          []string{"http"},
	Title:            "QR Menu API",
	Description:      "Restaurant QR menu: public filtered menu and admin catalog management.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

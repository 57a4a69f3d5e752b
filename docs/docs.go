// Package docs registra la especificación Swagger de la API JSON.
// Se mantiene en sync con las anotaciones de internal/domain/cats/handler.go
// (regenerar con `swag init -g cmd/api/main.go`).
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
        "/api/cats": {
            "get": {
                "description": "Filtra la galería. ` + "`" + `q` + "`" + ` busca (sin distinguir mayúsculas) dentro del nombre, color o raza; ` + "`" + `trait` + "`" + ` exige un rasgo exacto de personalidad. Ambos son opcionales y se combinan con AND. Cero resultados no es un error: responde 200 con ` + "`" + `empty=true` + "`" + `.",
                "produces": ["application/json"],
                "tags": ["cats"],
                "summary": "Buscar gatos",
                "parameters": [
                    {"type": "string", "description": "Texto libre: nombre, color o raza", "name": "q", "in": "query"},
                    {"type": "string", "description": "Rasgo exacto (case-sensitive)", "name": "trait", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/cats.searchResponse"}}
                }
            }
        },
        "/api/cats/{catID}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["cats"],
                "summary": "Perfil de un gato",
                "parameters": [
                    {"type": "integer", "description": "ID del gato", "name": "catID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/cats.catResponse"}},
                    "400": {"description": "invalid id", "schema": {"type": "string"}},
                    "404": {"description": "cat not found", "schema": {"type": "string"}}
                }
            }
        },
        "/api/traits": {
            "get": {
                "description": "Todos los rasgos de personalidad distintos, cada uno una vez, en orden de primera aparición.",
                "produces": ["application/json"],
                "tags": ["cats"],
                "summary": "Listar rasgos",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"type": "string"}}}
                }
            }
        }
    },
    "definitions": {
        "cats.catResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "image": {"type": "string"},
                "age": {"type": "string"},
                "personality": {"type": "array", "items": {"type": "string"}},
                "color": {"type": "string"},
                "breed": {"type": "string"}
            }
        },
        "cats.searchResponse": {
            "type": "object",
            "properties": {
                "query": {"type": "string"},
                "trait": {"type": "string"},
                "count": {"type": "integer"},
                "empty": {"type": "boolean"},
                "cats": {"type": "array", "items": {"$ref": "#/definitions/cats.catResponse"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Cat Gallery API",
	Description:      "Galería de gatos con búsqueda por texto y filtro por rasgo.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

// Package docs registers the OpenAPI document for the HTTP API with swag so
// that the Swagger UI route can serve it. Keep it in step with the handler
// annotations in package api.
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
        "/launches": {
            "get": {
                "produces": ["application/json"],
                "tags": ["launches"],
                "summary": "List launches",
                "parameters": [
                    {"type": "integer", "description": "page number, starting at 1", "name": "page", "in": "query"},
                    {"type": "integer", "description": "page size, 0 for all", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Launch"}}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["launches"],
                "summary": "Schedule a launch",
                "parameters": [
                    {"description": "launch to schedule", "name": "launch", "in": "body", "required": true, "schema": {"$ref": "#/definitions/api.scheduleLaunchRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.Launch"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/launches/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["launches"],
                "summary": "Get a launch by flight number",
                "parameters": [
                    {"type": "integer", "description": "flight number", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Launch"}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["launches"],
                "summary": "Abort a launch",
                "parameters": [
                    {"type": "integer", "description": "flight number", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "boolean"}}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/planets": {
            "get": {
                "produces": ["application/json"],
                "tags": ["planets"],
                "summary": "List habitable planets",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Planet"}}}
                }
            }
        }
    },
    "definitions": {
        "api.scheduleLaunchRequest": {
            "type": "object",
            "properties": {
                "launchDate": {"type": "string"},
                "mission": {"type": "string"},
                "rocket": {"type": "string"},
                "target": {"type": "string"}
            }
        },
        "domain.Launch": {
            "type": "object",
            "properties": {
                "customers": {"type": "array", "items": {"type": "string"}},
                "flightNumber": {"type": "integer"},
                "launchDate": {"type": "string"},
                "mission": {"type": "string"},
                "rocket": {"type": "string"},
                "success": {"type": "boolean"},
                "target": {"type": "string"},
                "upcoming": {"type": "boolean"}
            }
        },
        "domain.Planet": {
            "type": "object",
            "properties": {
                "disposition": {"type": "string"},
                "insolationFlux": {"type": "number"},
                "keplerName": {"type": "string"},
                "planetRadius": {"type": "number"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/v1",
	Schemes:          []string{},
	Title:            "Mission Control API",
	Description:      "Launch scheduling against the habitable planets catalog.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

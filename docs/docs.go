// Package docs registers the console API's OpenAPI document with swag.
// Regenerate with: swag init -g cmd/api/main.go -o docs
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
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Meta"],
                "summary": "Liveness and database health",
                "responses": {
                    "200": {"description": "OK"},
                    "503": {"description": "Service Unavailable"}
                }
            }
        },
        "/api/v1/campaigns/transitions": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Meta"],
                "summary": "Campaign status table with the actions each status offers",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/v1/pricing/quote": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Meta"],
                "summary": "Duration, driver earnings and total cost of a campaign draft",
                "parameters": [
                    {"type": "string", "name": "payment", "in": "query", "required": true},
                    {"type": "string", "name": "start", "in": "query", "required": true},
                    {"type": "string", "name": "end", "in": "query", "required": true},
                    {"type": "integer", "name": "drivers", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "422": {"description": "Unprocessable Entity"}
                }
            }
        },
        "/api/v1/auth/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Sign in through the marketplace and open a session",
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "Unauthorized"},
                    "422": {"description": "Unprocessable Entity"}
                }
            }
        },
        "/api/v1/advertiser/campaigns/{id}/status": {
            "patch": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Advertiser"],
                "summary": "Apply an offered action (or target status) to a campaign",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "409": {"description": "Conflict"},
                    "422": {"description": "Unprocessable Entity"}
                }
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "wrapads console API",
	Description:      "Role consoles for the wrap-advertising marketplace.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

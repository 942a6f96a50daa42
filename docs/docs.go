// Package docs registers the OpenAPI description served under /swagger.
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
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    },
    "paths": {
        "/catalog": {
            "get": {"tags": ["tickets"], "summary": "Ticket products with day and price rules", "responses": {"200": {"description": "OK"}}}
        },
        "/days": {
            "get": {"tags": ["days"], "summary": "Active festival days", "responses": {"200": {"description": "OK"}}}
        },
        "/vip/availability": {
            "get": {
                "tags": ["vip"],
                "summary": "Per-zone VIP table availability for one day",
                "parameters": [{"name": "day", "in": "query", "required": true, "type": "string", "enum": ["FRI", "SAT", "SUN", "MON"]}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Invalid day"}, "404": {"description": "Unknown day"}}
            }
        },
        "/checkout": {
            "post": {
                "tags": ["orders"],
                "summary": "Validate, price and open a payment session",
                "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CheckoutRequest"}}],
                "responses": {"201": {"description": "Created"}, "400": {"description": "Rejected selection"}, "502": {"description": "Payment gateway unavailable"}}
            }
        },
        "/orders/{id}": {
            "get": {
                "tags": ["orders"],
                "summary": "Order with items and tickets",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "format": "uuid"}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}
            }
        },
        "/payments/webhook": {
            "post": {"tags": ["payments"], "summary": "Stripe webhook receiver", "responses": {"200": {"description": "Acknowledged"}, "400": {"description": "Bad signature"}}}
        },
        "/auth/login": {
            "post": {
                "tags": ["auth"],
                "summary": "Staff login",
                "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}],
                "responses": {"200": {"description": "OK"}, "401": {"description": "Invalid credentials"}}
            }
        },
        "/scanner/scan": {
            "post": {
                "tags": ["checkin"],
                "summary": "Check a ticket in for a day",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ScanRequest"}}],
                "responses": {"200": {"description": "Scan outcome"}}
            }
        },
        "/admin/orders": {
            "get": {"tags": ["admin"], "summary": "Paginated orders", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}
        },
        "/admin/overview": {
            "get": {"tags": ["admin"], "summary": "Sales and check-in overview", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}
        }
    },
    "definitions": {
        "CheckoutItem": {
            "type": "object",
            "required": ["product_code", "quantity"],
            "properties": {
                "product_code": {"type": "string", "example": "GENERAL_2_DAY"},
                "days": {"type": "array", "items": {"type": "string"}, "example": ["FRI", "SAT"]},
                "quantity": {"type": "integer", "minimum": 1}
            }
        },
        "CheckoutRequest": {
            "type": "object",
            "required": ["email", "full_name", "items"],
            "properties": {
                "email": {"type": "string"},
                "full_name": {"type": "string"},
                "items": {"type": "array", "items": {"$ref": "#/definitions/CheckoutItem"}},
                "metadata": {"type": "object", "additionalProperties": {"type": "string"}}
            }
        },
        "LoginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {"email": {"type": "string"}, "password": {"type": "string"}}
        },
        "ScanRequest": {
            "type": "object",
            "required": ["code", "day"],
            "properties": {"code": {"type": "string"}, "day": {"type": "string"}}
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "festtix API",
	Description:      "Festival ticket storefront, VIP tables, payments and door scanning.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

// Package docs holds the OpenAPI document served under /swagger.
// Regenerate with: swag init -g cmd/api/main.go -o internal/docs
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
                "tags": ["health"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "Service is healthy", "schema": {"$ref": "#/definitions/response.Envelope"}},
                    "503": {"description": "Store unreachable", "schema": {"$ref": "#/definitions/response.Envelope"}}
                }
            }
        },
        "/categories": {
            "get": {
                "description": "List categories, newest first, with current-month expenses, expense count and budget usage",
                "produces": ["application/json"],
                "tags": ["categories"],
                "summary": "List categories",
                "responses": {
                    "200": {"description": "Categories", "schema": {"$ref": "#/definitions/response.Envelope"}},
                    "500": {"description": "Server error", "schema": {"$ref": "#/definitions/response.Envelope"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["categories"],
                "summary": "Create a category",
                "parameters": [
                    {"description": "Category details", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.CreateCategoryRequest"}}
                ],
                "responses": {
                    "201": {"description": "Category created", "schema": {"$ref": "#/definitions/response.Envelope"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/response.Envelope"}}
                }
            }
        },
        "/categories/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["categories"],
                "summary": "Get a category",
                "parameters": [{"type": "string", "description": "Category ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "Category", "schema": {"$ref": "#/definitions/response.Envelope"}},
                    "404": {"description": "Category not found", "schema": {"$ref": "#/definitions/response.Envelope"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["categories"],
                "summary": "Update a category",
                "parameters": [
                    {"type": "string", "description": "Category ID", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.UpdateCategoryRequest"}}
                ],
                "responses": {
                    "200": {"description": "Category updated", "schema": {"$ref": "#/definitions/response.Envelope"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/response.Envelope"}},
                    "404": {"description": "Category not found", "schema": {"$ref": "#/definitions/response.Envelope"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["categories"],
                "summary": "Delete a category",
                "parameters": [{"type": "string", "description": "Category ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "Category deleted", "schema": {"$ref": "#/definitions/response.Envelope"}},
                    "404": {"description": "Category not found", "schema": {"$ref": "#/definitions/response.Envelope"}},
                    "409": {"description": "Category has expenses", "schema": {"$ref": "#/definitions/response.Envelope"}}
                }
            }
        },
        "/expenses": {
            "get": {
                "produces": ["application/json"],
                "tags": ["expenses"],
                "summary": "List expenses",
                "parameters": [
                    {"type": "integer", "description": "Month 1-12 (default current)", "name": "month", "in": "query"},
                    {"type": "integer", "description": "Year (default current)", "name": "year", "in": "query"},
                    {"type": "string", "description": "Only expenses of this category", "name": "category_id", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Expenses", "schema": {"$ref": "#/definitions/response.Envelope"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/response.Envelope"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["expenses"],
                "summary": "Create an expense",
                "parameters": [
                    {"description": "Expense details", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.CreateExpenseRequest"}}
                ],
                "responses": {
                    "201": {"description": "Expense created", "schema": {"$ref": "#/definitions/response.Envelope"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/response.Envelope"}},
                    "404": {"description": "Category not found", "schema": {"$ref": "#/definitions/response.Envelope"}}
                }
            }
        },
        "/expenses/stats": {
            "get": {
                "produces": ["application/json"],
                "tags": ["expenses"],
                "summary": "Monthly statistics",
                "parameters": [
                    {"type": "integer", "description": "Month 1-12 (default current)", "name": "month", "in": "query"},
                    {"type": "integer", "description": "Year (default current)", "name": "year", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Statistics", "schema": {"$ref": "#/definitions/response.Envelope"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/response.Envelope"}}
                }
            }
        },
        "/expenses/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["expenses"],
                "summary": "Get an expense",
                "parameters": [{"type": "string", "description": "Expense ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "Expense", "schema": {"$ref": "#/definitions/response.Envelope"}},
                    "404": {"description": "Expense not found", "schema": {"$ref": "#/definitions/response.Envelope"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["expenses"],
                "summary": "Update an expense",
                "parameters": [
                    {"type": "string", "description": "Expense ID", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.UpdateExpenseRequest"}}
                ],
                "responses": {
                    "200": {"description": "Expense updated", "schema": {"$ref": "#/definitions/response.Envelope"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/response.Envelope"}},
                    "404": {"description": "Expense or category not found", "schema": {"$ref": "#/definitions/response.Envelope"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["expenses"],
                "summary": "Delete an expense",
                "parameters": [{"type": "string", "description": "Expense ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "Expense deleted", "schema": {"$ref": "#/definitions/response.Envelope"}},
                    "404": {"description": "Expense not found", "schema": {"$ref": "#/definitions/response.Envelope"}}
                }
            }
        },
        "/settings": {
            "get": {
                "produces": ["application/json"],
                "tags": ["settings"],
                "summary": "Get settings",
                "responses": {
                    "200": {"description": "Settings", "schema": {"$ref": "#/definitions/response.Envelope"}},
                    "404": {"description": "Settings were never saved", "schema": {"$ref": "#/definitions/response.Envelope"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["settings"],
                "summary": "Create settings",
                "parameters": [
                    {"description": "Settings values", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.SettingsRequest"}}
                ],
                "responses": {
                    "201": {"description": "Settings created", "schema": {"$ref": "#/definitions/response.Envelope"}},
                    "409": {"description": "Settings already exist", "schema": {"$ref": "#/definitions/response.Envelope"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["settings"],
                "summary": "Update settings",
                "parameters": [
                    {"description": "Settings values", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.SettingsRequest"}}
                ],
                "responses": {
                    "200": {"description": "Settings updated", "schema": {"$ref": "#/definitions/response.Envelope"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/response.Envelope"}}
                }
            }
        },
        "/settings/cycle": {
            "get": {
                "produces": ["application/json"],
                "tags": ["settings"],
                "summary": "Current budgeting cycle",
                "responses": {
                    "200": {"description": "Cycle", "schema": {"$ref": "#/definitions/response.Envelope"}}
                }
            }
        },
        "/reports/monthly": {
            "get": {
                "produces": ["application/json"],
                "tags": ["reports"],
                "summary": "Monthly report",
                "parameters": [
                    {"type": "integer", "description": "Month 1-12 (default current)", "name": "month", "in": "query"},
                    {"type": "integer", "description": "Year (default current)", "name": "year", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Report", "schema": {"$ref": "#/definitions/response.Envelope"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/response.Envelope"}}
                }
            }
        }
    },
    "definitions": {
        "handlers.CreateCategoryRequest": {
            "type": "object",
            "required": ["name"],
            "properties": {
                "name": {"type": "string", "maxLength": 100, "example": "Groceries"},
                "description": {"type": "string", "maxLength": 500},
                "color": {"type": "string", "example": "#3B82F6"},
                "icon": {"type": "string", "maxLength": 32},
                "budget": {"type": "number", "example": 250}
            }
        },
        "handlers.UpdateCategoryRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "description": {"type": "string"},
                "color": {"type": "string"},
                "icon": {"type": "string"},
                "budget": {"type": "number"},
                "clear_budget": {"type": "boolean"}
            }
        },
        "handlers.CreateExpenseRequest": {
            "type": "object",
            "required": ["amount", "category_id", "date", "description"],
            "properties": {
                "amount": {"type": "number", "example": 12.5},
                "description": {"type": "string", "maxLength": 255},
                "date": {"type": "string", "example": "2025-03-14"},
                "category_id": {"type": "string"}
            }
        },
        "handlers.UpdateExpenseRequest": {
            "type": "object",
            "properties": {
                "amount": {"type": "number"},
                "description": {"type": "string"},
                "date": {"type": "string"},
                "category_id": {"type": "string"}
            }
        },
        "handlers.SettingsRequest": {
            "type": "object",
            "properties": {
                "cycle_start_day": {"type": "integer", "maximum": 28, "minimum": 1, "example": 1},
                "monthly_budget": {"type": "number"},
                "clear_monthly_budget": {"type": "boolean"},
                "currency": {"type": "string", "example": "USD"}
            }
        },
        "response.ErrorBody": {
            "type": "object",
            "properties": {
                "code": {"type": "string", "example": "CATEGORY_NOT_FOUND"},
                "message": {"type": "string", "example": "Category not found"}
            }
        },
        "response.Envelope": {
            "type": "object",
            "properties": {
                "result": {},
                "error": {"$ref": "#/definitions/response.ErrorBody"},
                "status": {"type": "integer", "example": 200},
                "message": {"type": "string", "example": "Categories fetched successfully"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Expenso API",
	Description:      "Expenso tracks personal expenses by category against monthly budgets.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

// Package api contains the OpenAPI documentation of the backend.
//
// The document is built from the handler annotations. Run
// "swag init --output api" after changing them.
package api

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
                "summary": "API root",
                "description": "Entrypoint for the API, listing all endpoints",
                "tags": [
                    "General"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/root.Response"
                        }
                    }
                }
            },
            "delete": {
                "summary": "Delete everything",
                "description": "Permanently deletes all resources",
                "tags": [
                    "General"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Confirmation to delete all resources. Must have the value 'yes-please-delete-everything'",
                        "name": "confirm",
                        "in": "query"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/controllers.httpError"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/controllers.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/controllers.httpError"
                        }
                    }
                }
            },
            "options": {
                "summary": "Allowed HTTP verbs",
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "General"
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/categories": {
            "get": {
                "summary": "List categories",
                "description": "Returns all categories ordered by name",
                "tags": [
                    "Categories"
                ],
                "produces": [
                    "json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/controllers.CategoryListResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/controllers.CategoryListResponse"
                        }
                    }
                }
            },
            "post": {
                "summary": "Create category",
                "description": "Creates a new category",
                "tags": [
                    "Categories"
                ],
                "produces": [
                    "json"
                ],
                "parameters": [
                    {
                        "description": "Category",
                        "name": "category",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/controllers.CategoryEditable"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/controllers.CategoryResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/controllers.CategoryResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/controllers.CategoryResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/controllers.CategoryResponse"
                        }
                    }
                }
            },
            "options": {
                "summary": "Allowed HTTP verbs",
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Categories"
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/categories/{id}": {
            "get": {
                "summary": "Get category",
                "description": "Returns a specific category",
                "tags": [
                    "Categories"
                ],
                "produces": [
                    "json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "format": "uuid",
                        "description": "ID of the resource",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/controllers.CategoryResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/controllers.CategoryResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/controllers.CategoryResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/controllers.CategoryResponse"
                        }
                    }
                }
            },
            "put": {
                "summary": "Update category",
                "description": "Replaces the editable fields of a category",
                "tags": [
                    "Categories"
                ],
                "produces": [
                    "json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "format": "uuid",
                        "description": "ID of the resource",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Category",
                        "name": "category",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/controllers.CategoryEditable"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/controllers.CategoryResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/controllers.CategoryResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/controllers.CategoryResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/controllers.CategoryResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/controllers.CategoryResponse"
                        }
                    }
                }
            },
            "delete": {
                "summary": "Delete category",
                "description": "Deletes a category. Categories of sources cannot be deleted.",
                "tags": [
                    "Categories"
                ],
                "produces": [
                    "json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "format": "uuid",
                        "description": "ID of the resource",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/controllers.httpError"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/controllers.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/controllers.httpError"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/controllers.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/controllers.httpError"
                        }
                    }
                }
            },
            "options": {
                "summary": "Allowed HTTP verbs",
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Categories"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "format": "uuid",
                        "description": "ID of the resource",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/controllers.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/controllers.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/controllers.httpError"
                        }
                    }
                }
            }
        },
        "/deposits": {
            "get": {
                "summary": "List deposits",
                "description": "Returns the deposits visible to the caller ordered by year, month and creation",
                "tags": [
                    "Deposits"
                ],
                "produces": [
                    "json"
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Filter by month",
                        "name": "month",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Filter by year",
                        "name": "year",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Filter by source ID",
                        "name": "source",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "The offset of the first Deposit returned. Defaults to 0.",
                        "name": "offset",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Maximum number of Deposits to return. Defaults to 50.",
                        "name": "limit",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/controllers.DepositListResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/controllers.DepositListResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/controllers.DepositListResponse"
                        }
                    }
                }
            },
            "post": {
                "summary": "Create deposit",
                "description": "Creates a new deposit. Deposits of scoped callers are always created for their source.",
                "tags": [
                    "Deposits"
                ],
                "produces": [
                    "json"
                ],
                "parameters": [
                    {
                        "description": "Deposit",
                        "name": "deposit",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/controllers.DepositEditable"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/controllers.DepositResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/controllers.DepositResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/controllers.DepositResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/controllers.DepositResponse"
                        }
                    }
                }
            },
            "options": {
                "summary": "Allowed HTTP verbs",
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Deposits"
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/deposits/export": {
            "get": {
                "summary": "Export deposits",
                "description": "Exports the deposit report as a file. The last row contains the total amount.",
                "tags": [
                    "Reports"
                ],
                "produces": [
                    "json",
                    "text/csv",
                    "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Month to export",
                        "name": "month",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Year to export",
                        "name": "year",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "xlsx, csv or json. Defaults to xlsx",
                        "name": "format",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/controllers.ExportResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/controllers.ExportResponse"
                        }
                    }
                }
            },
            "options": {
                "summary": "Allowed HTTP verbs",
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Reports"
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/deposits/report": {
            "get": {
                "summary": "Deposit report",
                "description": "Returns the deposits visible to the caller with the amounts every region receives",
                "tags": [
                    "Reports"
                ],
                "produces": [
                    "json"
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Month to report on",
                        "name": "month",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Year to report on",
                        "name": "year",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/controllers.ReportResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/controllers.ReportResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/controllers.ReportResponse"
                        }
                    }
                }
            },
            "options": {
                "summary": "Allowed HTTP verbs",
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Reports"
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/deposits/summary": {
            "get": {
                "summary": "Monthly summary",
                "description": "Returns the sum of the deposits the caller can see for every month of a year",
                "tags": [
                    "Reports"
                ],
                "produces": [
                    "json"
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Year",
                        "name": "year",
                        "in": "query",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/controllers.SummaryResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/controllers.SummaryResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/controllers.SummaryResponse"
                        }
                    }
                }
            },
            "options": {
                "summary": "Allowed HTTP verbs",
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Reports"
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/deposits/years": {
            "get": {
                "summary": "Deposit years",
                "description": "Returns all years the caller can see deposits for",
                "tags": [
                    "Reports"
                ],
                "produces": [
                    "json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/controllers.YearsResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/controllers.YearsResponse"
                        }
                    }
                }
            },
            "options": {
                "summary": "Allowed HTTP verbs",
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Reports"
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/deposits/{id}": {
            "get": {
                "summary": "Get deposit",
                "description": "Returns a specific deposit",
                "tags": [
                    "Deposits"
                ],
                "produces": [
                    "json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "format": "uuid",
                        "description": "ID of the resource",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/controllers.DepositResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/controllers.DepositResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/controllers.DepositResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/controllers.DepositResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/controllers.DepositResponse"
                        }
                    }
                }
            },
            "put": {
                "summary": "Update deposit",
                "description": "Replaces month, year, amount and note of a deposit. The source cannot be changed.",
                "tags": [
                    "Deposits"
                ],
                "produces": [
                    "json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "format": "uuid",
                        "description": "ID of the resource",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Deposit",
                        "name": "deposit",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/controllers.DepositEditable"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/controllers.DepositResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/controllers.DepositResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/controllers.DepositResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/controllers.DepositResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/controllers.DepositResponse"
                        }
                    }
                }
            },
            "delete": {
                "summary": "Delete deposit",
                "description": "Deletes a deposit",
                "tags": [
                    "Deposits"
                ],
                "produces": [
                    "json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "format": "uuid",
                        "description": "ID of the resource",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/controllers.httpError"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/controllers.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/controllers.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/controllers.httpError"
                        }
                    }
                }
            },
            "options": {
                "summary": "Allowed HTTP verbs",
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Deposits"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "format": "uuid",
                        "description": "ID of the resource",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/controllers.httpError"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/controllers.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/controllers.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/controllers.httpError"
                        }
                    }
                }
            }
        },
        "/healthz": {
            "get": {
                "summary": "Get health",
                "description": "Returns the application health and, if not healthy, an error",
                "tags": [
                    "General"
                ],
                "produces": [
                    "json"
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/healthz.httpError"
                        }
                    }
                }
            },
            "options": {
                "summary": "Allowed HTTP verbs",
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "General"
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/regions": {
            "get": {
                "summary": "List regions",
                "description": "Returns all regions ordered by name",
                "tags": [
                    "Regions"
                ],
                "produces": [
                    "json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/controllers.RegionListResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/controllers.RegionListResponse"
                        }
                    }
                }
            },
            "post": {
                "summary": "Create region",
                "description": "Creates a new region",
                "tags": [
                    "Regions"
                ],
                "produces": [
                    "json"
                ],
                "parameters": [
                    {
                        "description": "Region",
                        "name": "region",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/controllers.RegionEditable"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/controllers.RegionResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/controllers.RegionResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/controllers.RegionResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/controllers.RegionResponse"
                        }
                    }
                }
            },
            "options": {
                "summary": "Allowed HTTP verbs",
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Regions"
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/regions/{id}": {
            "get": {
                "summary": "Get region",
                "description": "Returns a specific region",
                "tags": [
                    "Regions"
                ],
                "produces": [
                    "json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "format": "uuid",
                        "description": "ID of the resource",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/controllers.RegionResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/controllers.RegionResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/controllers.RegionResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/controllers.RegionResponse"
                        }
                    }
                }
            },
            "put": {
                "summary": "Update region",
                "description": "Replaces the editable fields of a region",
                "tags": [
                    "Regions"
                ],
                "produces": [
                    "json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "format": "uuid",
                        "description": "ID of the resource",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Region",
                        "name": "region",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/controllers.RegionEditable"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/controllers.RegionResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/controllers.RegionResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/controllers.RegionResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/controllers.RegionResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/controllers.RegionResponse"
                        }
                    }
                }
            },
            "delete": {
                "summary": "Delete region",
                "description": "Deletes a region. Regions that allocations use cannot be deleted.",
                "tags": [
                    "Regions"
                ],
                "produces": [
                    "json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "format": "uuid",
                        "description": "ID of the resource",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/controllers.httpError"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/controllers.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/controllers.httpError"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/controllers.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/controllers.httpError"
                        }
                    }
                }
            },
            "options": {
                "summary": "Allowed HTTP verbs",
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Regions"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "format": "uuid",
                        "description": "ID of the resource",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/controllers.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/controllers.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/controllers.httpError"
                        }
                    }
                }
            }
        },
        "/roles": {
            "get": {
                "summary": "List roles",
                "description": "Returns the roles visible to the caller ordered by name. Scoped callers only see the roles of their source.",
                "tags": [
                    "Roles"
                ],
                "produces": [
                    "json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/controllers.RoleListResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/controllers.RoleListResponse"
                        }
                    }
                }
            },
            "post": {
                "summary": "Create role",
                "description": "Creates a new role",
                "tags": [
                    "Roles"
                ],
                "produces": [
                    "json"
                ],
                "parameters": [
                    {
                        "description": "Role",
                        "name": "role",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/controllers.RoleEditable"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/controllers.RoleResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/controllers.RoleResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/controllers.RoleResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/controllers.RoleResponse"
                        }
                    }
                }
            },
            "options": {
                "summary": "Allowed HTTP verbs",
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Roles"
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/roles/{id}": {
            "get": {
                "summary": "Get role",
                "description": "Returns a specific role",
                "tags": [
                    "Roles"
                ],
                "produces": [
                    "json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "format": "uuid",
                        "description": "ID of the resource",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/controllers.RoleResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/controllers.RoleResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/controllers.RoleResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/controllers.RoleResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/controllers.RoleResponse"
                        }
                    }
                }
            },
            "put": {
                "summary": "Update role",
                "description": "Replaces the editable fields of a role",
                "tags": [
                    "Roles"
                ],
                "produces": [
                    "json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "format": "uuid",
                        "description": "ID of the resource",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Role",
                        "name": "role",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/controllers.RoleEditable"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/controllers.RoleResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/controllers.RoleResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/controllers.RoleResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/controllers.RoleResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/controllers.RoleResponse"
                        }
                    }
                }
            },
            "delete": {
                "summary": "Delete role",
                "description": "Deletes a role. Roles that users have cannot be deleted.",
                "tags": [
                    "Roles"
                ],
                "produces": [
                    "json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "format": "uuid",
                        "description": "ID of the resource",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/controllers.httpError"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/controllers.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/controllers.httpError"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/controllers.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/controllers.httpError"
                        }
                    }
                }
            },
            "options": {
                "summary": "Allowed HTTP verbs",
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Roles"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "format": "uuid",
                        "description": "ID of the resource",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/controllers.httpError"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/controllers.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/controllers.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/controllers.httpError"
                        }
                    }
                }
            }
        },
        "/sources": {
            "get": {
                "summary": "List sources",
                "description": "Returns the sources visible to the caller ordered by name",
                "tags": [
                    "Sources"
                ],
                "produces": [
                    "json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Filter by name with a shell style glob, e.g. 'Pajak*'",
                        "name": "name",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/controllers.SourceListResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/controllers.SourceListResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/controllers.SourceListResponse"
                        }
                    }
                }
            },
            "post": {
                "summary": "Create source",
                "description": "Creates a new source together with its allocations",
                "tags": [
                    "Sources"
                ],
                "produces": [
                    "json"
                ],
                "parameters": [
                    {
                        "description": "Source",
                        "name": "source",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/controllers.SourceEditable"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/controllers.SourceResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/controllers.SourceResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/controllers.SourceResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/controllers.SourceResponse"
                        }
                    }
                }
            },
            "options": {
                "summary": "Allowed HTTP verbs",
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Sources"
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/sources/{id}": {
            "get": {
                "summary": "Get source",
                "description": "Returns a specific source",
                "tags": [
                    "Sources"
                ],
                "produces": [
                    "json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "format": "uuid",
                        "description": "ID of the resource",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/controllers.SourceResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/controllers.SourceResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/controllers.SourceResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/controllers.SourceResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/controllers.SourceResponse"
                        }
                    }
                }
            },
            "put": {
                "summary": "Update source",
                "description": "Replaces a source and its allocations. Allocations that are not part of the request are removed.",
                "tags": [
                    "Sources"
                ],
                "produces": [
                    "json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "format": "uuid",
                        "description": "ID of the resource",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Source",
                        "name": "source",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/controllers.SourceEditable"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/controllers.SourceResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/controllers.SourceResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/controllers.SourceResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/controllers.SourceResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/controllers.SourceResponse"
                        }
                    }
                }
            },
            "delete": {
                "summary": "Delete source",
                "description": "Deletes a source and its allocations. Sources that deposits or roles use cannot be deleted.",
                "tags": [
                    "Sources"
                ],
                "produces": [
                    "json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "format": "uuid",
                        "description": "ID of the resource",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/controllers.httpError"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/controllers.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/controllers.httpError"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/controllers.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/controllers.httpError"
                        }
                    }
                }
            },
            "options": {
                "summary": "Allowed HTTP verbs",
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Sources"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "format": "uuid",
                        "description": "ID of the resource",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/controllers.httpError"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/controllers.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/controllers.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/controllers.httpError"
                        }
                    }
                }
            }
        },
        "/users": {
            "get": {
                "summary": "List users",
                "description": "Returns all users ordered by username",
                "tags": [
                    "Users"
                ],
                "produces": [
                    "json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/controllers.UserListResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/controllers.UserListResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/controllers.UserListResponse"
                        }
                    }
                }
            },
            "post": {
                "summary": "Create user",
                "description": "Creates a new user",
                "tags": [
                    "Users"
                ],
                "produces": [
                    "json"
                ],
                "parameters": [
                    {
                        "description": "User",
                        "name": "user",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/controllers.UserEditable"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/controllers.UserResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/controllers.UserResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/controllers.UserResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/controllers.UserResponse"
                        }
                    }
                }
            },
            "options": {
                "summary": "Allowed HTTP verbs",
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Users"
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/users/{id}": {
            "get": {
                "summary": "Get user",
                "description": "Returns a specific user",
                "tags": [
                    "Users"
                ],
                "produces": [
                    "json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "format": "uuid",
                        "description": "ID of the resource",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/controllers.UserResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/controllers.UserResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/controllers.UserResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/controllers.UserResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/controllers.UserResponse"
                        }
                    }
                }
            },
            "put": {
                "summary": "Update user",
                "description": "Replaces the editable fields of a user. The password is only changed when one is sent.",
                "tags": [
                    "Users"
                ],
                "produces": [
                    "json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "format": "uuid",
                        "description": "ID of the resource",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "User",
                        "name": "user",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/controllers.UserEditable"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/controllers.UserResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/controllers.UserResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/controllers.UserResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/controllers.UserResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/controllers.UserResponse"
                        }
                    }
                }
            },
            "delete": {
                "summary": "Delete user",
                "description": "Deletes a user",
                "tags": [
                    "Users"
                ],
                "produces": [
                    "json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "format": "uuid",
                        "description": "ID of the resource",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/controllers.httpError"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/controllers.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/controllers.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/controllers.httpError"
                        }
                    }
                }
            },
            "options": {
                "summary": "Allowed HTTP verbs",
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Users"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "format": "uuid",
                        "description": "ID of the resource",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/controllers.httpError"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/controllers.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/controllers.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/controllers.httpError"
                        }
                    }
                }
            }
        },
        "/version": {
            "get": {
                "summary": "API version",
                "description": "Returns the software version of the API and the database engine it runs on",
                "tags": [
                    "General"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/root.VersionResponse"
                        }
                    }
                }
            },
            "options": {
                "summary": "Allowed HTTP verbs",
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "General"
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        }
    },
    "definitions": {
        "controllers.Allocation": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string",
                    "format": "uuid",
                    "description": "ID of the allocation",
                    "example": "e5a3dd8b-9d52-4c0d-9e80-5b1b12b7c3a1"
                },
                "percentage": {
                    "type": "number",
                    "description": "Share of the source revenue the region receives",
                    "example": 40
                },
                "region": {
                    "description": "The region receiving the share",
                    "allOf": [
                        {
                            "$ref": "#/definitions/controllers.RegionReference"
                        }
                    ]
                }
            }
        },
        "controllers.AllocationEditable": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string",
                    "format": "uuid",
                    "description": "ID of an existing allocation of the source",
                    "example": "e5a3dd8b-9d52-4c0d-9e80-5b1b12b7c3a1"
                },
                "percentage": {
                    "type": "number",
                    "description": "Share of the source revenue the region receives",
                    "example": 40,
                    "minimum": 0.00000001,
                    "maximum": 100,
                    "multipleOf": 0.00000001
                },
                "region": {
                    "description": "The region receiving the share",
                    "allOf": [
                        {
                            "$ref": "#/definitions/controllers.Reference"
                        }
                    ]
                }
            }
        },
        "controllers.Category": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string",
                    "format": "uuid",
                    "description": "UUID for the resource",
                    "example": "65392deb-5e92-4268-b114-297faad6cdce"
                },
                "createdAt": {
                    "type": "string",
                    "description": "Time the resource was created",
                    "example": "2024-04-02T19:28:44.491514Z"
                },
                "updatedAt": {
                    "type": "string",
                    "description": "Last time the resource was updated",
                    "example": "2024-04-17T20:14:01.048145Z"
                },
                "categoryName": {
                    "type": "string",
                    "description": "Name of the category",
                    "example": "Pajak Daerah"
                },
                "links": {
                    "$ref": "#/definitions/controllers.CategoryLinks"
                }
            }
        },
        "controllers.CategoryEditable": {
            "type": "object",
            "properties": {
                "categoryName": {
                    "type": "string",
                    "description": "Name of the category",
                    "example": "Pajak Daerah"
                }
            }
        },
        "controllers.CategoryLinks": {
            "type": "object",
            "properties": {}
        },
        "controllers.CategoryListResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/controllers.Category"
                    },
                    "description": "List of categories"
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "controllers.CategoryReference": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string",
                    "format": "uuid",
                    "description": "ID of the category",
                    "example": "a0909e84-e8f9-4cb6-82a5-025dff105ff2"
                },
                "categoryName": {
                    "type": "string",
                    "description": "Name of the category",
                    "example": "Pajak Daerah"
                }
            }
        },
        "controllers.CategoryResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "Data for the category",
                    "allOf": [
                        {
                            "$ref": "#/definitions/controllers.Category"
                        }
                    ]
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "controllers.Deposit": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string",
                    "format": "uuid",
                    "description": "UUID for the resource",
                    "example": "65392deb-5e92-4268-b114-297faad6cdce"
                },
                "createdAt": {
                    "type": "string",
                    "description": "Time the resource was created",
                    "example": "2024-04-02T19:28:44.491514Z"
                },
                "updatedAt": {
                    "type": "string",
                    "description": "Last time the resource was updated",
                    "example": "2024-04-17T20:14:01.048145Z"
                },
                "month": {
                    "type": "integer",
                    "description": "Month of the deposit",
                    "example": 3
                },
                "year": {
                    "type": "integer",
                    "description": "Year of the deposit",
                    "example": 2024
                },
                "amount": {
                    "type": "number",
                    "description": "Amount received",
                    "example": 1000
                },
                "source": {
                    "description": "Source of the deposit",
                    "allOf": [
                        {
                            "$ref": "#/definitions/controllers.SourceReference"
                        }
                    ]
                },
                "note": {
                    "type": "string",
                    "description": "A note for the deposit",
                    "example": "Transfer from the customs office"
                },
                "breakdown": {
                    "type": "string",
                    "description": "Amounts the regions receive",
                    "example": "Jawa Barat: 40% = 400.00, Bali: 60% = 600.00"
                },
                "links": {
                    "$ref": "#/definitions/controllers.DepositLinks"
                }
            }
        },
        "controllers.DepositEditable": {
            "type": "object",
            "properties": {
                "month": {
                    "type": "integer",
                    "description": "Month of the deposit",
                    "example": 3,
                    "minimum": 1,
                    "maximum": 12
                },
                "year": {
                    "type": "integer",
                    "description": "Year of the deposit",
                    "example": 2024,
                    "minimum": 2000
                },
                "amount": {
                    "type": "number",
                    "description": "Amount received",
                    "example": 1000,
                    "minimum": 0.00000001,
                    "maximum": 999999999999.99999999,
                    "multipleOf": 0.00000001
                },
                "source": {
                    "description": "Source of the deposit. Scoped callers can omit it. Cannot be changed after creation",
                    "allOf": [
                        {
                            "$ref": "#/definitions/controllers.Reference"
                        }
                    ]
                },
                "note": {
                    "type": "string",
                    "description": "A note for the deposit",
                    "example": "Transfer from the customs office",
                    "default": ""
                }
            }
        },
        "controllers.DepositLinks": {
            "type": "object",
            "properties": {}
        },
        "controllers.DepositListResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/controllers.Deposit"
                    },
                    "description": "List of deposits"
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "the specified resource ID is not a valid UUID"
                },
                "pagination": {
                    "description": "Pagination information",
                    "allOf": [
                        {
                            "$ref": "#/definitions/controllers.Pagination"
                        }
                    ]
                }
            }
        },
        "controllers.DepositResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "Data for the deposit",
                    "allOf": [
                        {
                            "$ref": "#/definitions/controllers.Deposit"
                        }
                    ]
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "controllers.ExportData": {
            "type": "object",
            "properties": {
                "header": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    },
                    "description": "Column names",
                    "example": [
                        "No",
                        "Month",
                        "Year",
                        "Source",
                        "Allocations",
                        "Amount"
                    ]
                },
                "rows": {
                    "type": "array",
                    "items": {
                        "type": "array",
                        "items": {}
                    },
                    "description": "Rows, the last row contains the total amount"
                }
            }
        },
        "controllers.ExportResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "The export",
                    "allOf": [
                        {
                            "$ref": "#/definitions/controllers.ExportData"
                        }
                    ]
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "the export format must be one of xlsx, csv or json"
                }
            }
        },
        "controllers.MonthTotal": {
            "type": "object",
            "properties": {
                "month": {
                    "type": "integer",
                    "description": "The month",
                    "example": 3
                },
                "amount": {
                    "type": "number",
                    "description": "Sum of the deposit amounts",
                    "example": 1000
                }
            }
        },
        "controllers.Pagination": {
            "type": "object",
            "properties": {
                "count": {
                    "type": "integer",
                    "description": "The amount of records returned in this response",
                    "example": 25
                },
                "offset": {
                    "type": "integer",
                    "description": "The offset for the first record returned",
                    "example": 50
                },
                "limit": {
                    "type": "integer",
                    "description": "The maximum amount of resources to return for this request",
                    "example": 25
                },
                "total": {
                    "type": "integer",
                    "description": "The total number of resources matching the query",
                    "example": 827
                }
            }
        },
        "controllers.Reference": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string",
                    "format": "uuid",
                    "description": "ID of the referenced resource",
                    "example": "65392deb-5e92-4268-b114-297faad6cdce"
                }
            }
        },
        "controllers.Region": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string",
                    "format": "uuid",
                    "description": "UUID for the resource",
                    "example": "65392deb-5e92-4268-b114-297faad6cdce"
                },
                "createdAt": {
                    "type": "string",
                    "description": "Time the resource was created",
                    "example": "2024-04-02T19:28:44.491514Z"
                },
                "updatedAt": {
                    "type": "string",
                    "description": "Last time the resource was updated",
                    "example": "2024-04-17T20:14:01.048145Z"
                },
                "regionName": {
                    "type": "string",
                    "description": "Name of the region",
                    "example": "Jawa Barat"
                },
                "links": {
                    "$ref": "#/definitions/controllers.RegionLinks"
                }
            }
        },
        "controllers.RegionEditable": {
            "type": "object",
            "properties": {
                "regionName": {
                    "type": "string",
                    "description": "Name of the region",
                    "example": "Jawa Barat"
                }
            }
        },
        "controllers.RegionLinks": {
            "type": "object",
            "properties": {}
        },
        "controllers.RegionListResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/controllers.Region"
                    },
                    "description": "List of regions"
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "controllers.RegionReference": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string",
                    "format": "uuid",
                    "description": "ID of the region",
                    "example": "3b1ea324-d438-4419-882a-2fc91d71772f"
                },
                "regionName": {
                    "type": "string",
                    "description": "Name of the region",
                    "example": "Jawa Barat"
                }
            }
        },
        "controllers.RegionResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "Data for the region",
                    "allOf": [
                        {
                            "$ref": "#/definitions/controllers.Region"
                        }
                    ]
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "controllers.RegionShare": {
            "type": "object",
            "properties": {
                "region": {
                    "description": "The region",
                    "allOf": [
                        {
                            "$ref": "#/definitions/controllers.RegionReference"
                        }
                    ]
                },
                "percentage": {
                    "type": "number",
                    "description": "Share of the region",
                    "example": 40
                },
                "amount": {
                    "type": "number",
                    "description": "Amount of the region, rounded half up to two decimal places",
                    "example": 400
                }
            }
        },
        "controllers.RegionTotal": {
            "type": "object",
            "properties": {
                "region": {
                    "description": "The region",
                    "allOf": [
                        {
                            "$ref": "#/definitions/controllers.RegionReference"
                        }
                    ]
                },
                "amount": {
                    "type": "number",
                    "description": "Sum of the rounded amounts",
                    "example": 1200
                }
            }
        },
        "controllers.Report": {
            "type": "object",
            "properties": {
                "month": {
                    "type": "integer",
                    "description": "Month the report is filtered on",
                    "example": 3
                },
                "year": {
                    "type": "integer",
                    "description": "Year the report is filtered on",
                    "example": 2024
                },
                "lines": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/controllers.ReportLine"
                    },
                    "description": "One line per deposit"
                },
                "regionTotals": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/controllers.RegionTotal"
                    },
                    "description": "Totals per region"
                },
                "totalAmount": {
                    "type": "number",
                    "description": "Sum of the deposit amounts",
                    "example": 3000
                }
            }
        },
        "controllers.ReportLine": {
            "type": "object",
            "properties": {
                "depositId": {
                    "type": "string",
                    "format": "uuid",
                    "description": "ID of the deposit",
                    "example": "7e2f3b8a-51c4-4b46-a1c5-0f0d1e2c3b4a"
                },
                "month": {
                    "type": "integer",
                    "description": "Month of the deposit",
                    "example": 3
                },
                "year": {
                    "type": "integer",
                    "description": "Year of the deposit",
                    "example": 2024
                },
                "source": {
                    "description": "Source of the deposit",
                    "allOf": [
                        {
                            "$ref": "#/definitions/controllers.SourceReference"
                        }
                    ]
                },
                "shares": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/controllers.RegionShare"
                    },
                    "description": "Amounts per region"
                },
                "breakdown": {
                    "type": "string",
                    "description": "The shares as text, N/A for sources without allocations",
                    "example": "Jawa Barat: 40% = 400.00, Bali: 60% = 600.00"
                },
                "amount": {
                    "type": "number",
                    "description": "Amount of the deposit",
                    "example": 1000
                }
            }
        },
        "controllers.ReportResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "The report",
                    "allOf": [
                        {
                            "$ref": "#/definitions/controllers.Report"
                        }
                    ]
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "the month must be a number between 1 and 12"
                }
            }
        },
        "controllers.Role": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string",
                    "format": "uuid",
                    "description": "UUID for the resource",
                    "example": "65392deb-5e92-4268-b114-297faad6cdce"
                },
                "createdAt": {
                    "type": "string",
                    "description": "Time the resource was created",
                    "example": "2024-04-02T19:28:44.491514Z"
                },
                "updatedAt": {
                    "type": "string",
                    "description": "Last time the resource was updated",
                    "example": "2024-04-17T20:14:01.048145Z"
                },
                "roleName": {
                    "type": "string",
                    "description": "Name of the role",
                    "example": "Operator Bea Cukai"
                },
                "source": {
                    "description": "Source the role is bound to, null for the unrestricted role",
                    "allOf": [
                        {
                            "$ref": "#/definitions/controllers.SourceReference"
                        }
                    ]
                },
                "unrestricted": {
                    "type": "boolean",
                    "description": "Can the role see and manage everything?",
                    "example": false
                },
                "links": {
                    "$ref": "#/definitions/controllers.RoleLinks"
                }
            }
        },
        "controllers.RoleEditable": {
            "type": "object",
            "properties": {
                "roleName": {
                    "type": "string",
                    "description": "Name of the role. The role \"AM PPN\" is unrestricted",
                    "example": "Operator Bea Cukai"
                },
                "source": {
                    "description": "Source the role is bound to. Must be empty for the unrestricted role",
                    "allOf": [
                        {
                            "$ref": "#/definitions/controllers.Reference"
                        }
                    ]
                }
            }
        },
        "controllers.RoleLinks": {
            "type": "object",
            "properties": {}
        },
        "controllers.RoleListResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/controllers.Role"
                    },
                    "description": "List of roles"
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "controllers.RoleReference": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string",
                    "format": "uuid",
                    "description": "ID of the role",
                    "example": "0c7d6b0f-5f1a-4b1e-9d3b-2a4b3f7f8e11"
                },
                "roleName": {
                    "type": "string",
                    "description": "Name of the role",
                    "example": "Operator Bea Cukai"
                }
            }
        },
        "controllers.RoleResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "Data for the role",
                    "allOf": [
                        {
                            "$ref": "#/definitions/controllers.Role"
                        }
                    ]
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "controllers.Source": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string",
                    "format": "uuid",
                    "description": "UUID for the resource",
                    "example": "65392deb-5e92-4268-b114-297faad6cdce"
                },
                "createdAt": {
                    "type": "string",
                    "description": "Time the resource was created",
                    "example": "2024-04-02T19:28:44.491514Z"
                },
                "updatedAt": {
                    "type": "string",
                    "description": "Last time the resource was updated",
                    "example": "2024-04-17T20:14:01.048145Z"
                },
                "sourceName": {
                    "type": "string",
                    "description": "Name of the source",
                    "example": "Bea Cukai"
                },
                "category": {
                    "description": "Category of the source",
                    "allOf": [
                        {
                            "$ref": "#/definitions/controllers.CategoryReference"
                        }
                    ]
                },
                "allocations": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/controllers.Allocation"
                    },
                    "description": "Allocations in their order"
                },
                "complete": {
                    "type": "boolean",
                    "description": "Do the allocations sum up to 100? Only complete sources can be used by deposits and roles",
                    "example": true
                },
                "links": {
                    "$ref": "#/definitions/controllers.SourceLinks"
                }
            }
        },
        "controllers.SourceEditable": {
            "type": "object",
            "properties": {
                "sourceName": {
                    "type": "string",
                    "description": "Name of the source",
                    "example": "Bea Cukai"
                },
                "categoryId": {
                    "type": "string",
                    "format": "uuid",
                    "description": "ID of the category of the source",
                    "example": "a0909e84-e8f9-4cb6-82a5-025dff105ff2"
                },
                "allocations": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/controllers.AllocationEditable"
                    },
                    "description": "Regions the revenue is split across. Percentages must sum up to 100"
                }
            }
        },
        "controllers.SourceLinks": {
            "type": "object",
            "properties": {}
        },
        "controllers.SourceListResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/controllers.Source"
                    },
                    "description": "List of sources"
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "controllers.SourceReference": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string",
                    "format": "uuid",
                    "description": "ID of the source",
                    "example": "1a9ae8e6-0b0f-4d9f-b5b8-3d3c1bd4c6c4"
                },
                "sourceName": {
                    "type": "string",
                    "description": "Name of the source",
                    "example": "Bea Cukai"
                }
            }
        },
        "controllers.SourceResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "Data for the source",
                    "allOf": [
                        {
                            "$ref": "#/definitions/controllers.Source"
                        }
                    ]
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "controllers.SummaryResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/controllers.MonthTotal"
                    },
                    "description": "Totals for all twelve months"
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "the year query parameter must be set"
                }
            }
        },
        "controllers.User": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string",
                    "format": "uuid",
                    "description": "UUID for the resource",
                    "example": "65392deb-5e92-4268-b114-297faad6cdce"
                },
                "createdAt": {
                    "type": "string",
                    "description": "Time the resource was created",
                    "example": "2024-04-02T19:28:44.491514Z"
                },
                "updatedAt": {
                    "type": "string",
                    "description": "Last time the resource was updated",
                    "example": "2024-04-17T20:14:01.048145Z"
                },
                "fullName": {
                    "type": "string",
                    "description": "Full name of the user",
                    "example": "Siti Rahmawati"
                },
                "username": {
                    "type": "string",
                    "description": "Username",
                    "example": "srahmawati"
                },
                "role": {
                    "description": "Role of the user",
                    "allOf": [
                        {
                            "$ref": "#/definitions/controllers.RoleReference"
                        }
                    ]
                },
                "links": {
                    "$ref": "#/definitions/controllers.UserLinks"
                }
            }
        },
        "controllers.UserEditable": {
            "type": "object",
            "properties": {
                "fullName": {
                    "type": "string",
                    "description": "Full name of the user",
                    "example": "Siti Rahmawati"
                },
                "username": {
                    "type": "string",
                    "description": "Username, exactly 10 characters",
                    "example": "srahmawati"
                },
                "password": {
                    "type": "string",
                    "description": "Password. Required on creation, an empty password on update keeps the current one",
                    "example": "correct horse battery"
                },
                "role": {
                    "description": "Role of the user",
                    "allOf": [
                        {
                            "$ref": "#/definitions/controllers.Reference"
                        }
                    ]
                }
            }
        },
        "controllers.UserLinks": {
            "type": "object",
            "properties": {}
        },
        "controllers.UserListResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/controllers.User"
                    },
                    "description": "List of users"
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "controllers.UserResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "Data for the user",
                    "allOf": [
                        {
                            "$ref": "#/definitions/controllers.User"
                        }
                    ]
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "controllers.YearsResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "array",
                    "items": {
                        "type": "integer"
                    },
                    "description": "Years with deposits, ascending",
                    "example": [
                        2023,
                        2024
                    ]
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "an error occurred on the server during your request"
                }
            }
        },
        "controllers.httpError": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "healthz.httpError": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string",
                    "example": "an error occurred on the server during your request"
                }
            }
        },
        "root.Links": {
            "type": "object",
            "properties": {}
        },
        "root.Response": {
            "type": "object",
            "properties": {
                "links": {
                    "$ref": "#/definitions/root.Links"
                }
            }
        },
        "root.VersionObject": {
            "type": "object",
            "properties": {
                "version": {
                    "type": "string",
                    "description": "The running version of the backend",
                    "example": "1.4.0"
                },
                "database": {
                    "type": "string",
                    "description": "The database engine in use, sqlite or postgres",
                    "example": "sqlite"
                }
            }
        },
        "root.VersionResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/root.VersionObject"
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
	Version:          "",
	Host:             "",
	BasePath:         "",
	Schemes:          []string{},
	Title:            "",
	Description:      "",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

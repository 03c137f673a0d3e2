// Package docs holds the OpenAPI description served at /swagger/.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "API Support"
        },
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/analyze": {
            "post": {
                "tags": [
                    "analysis"
                ],
                "summary": "Count characters per Unicode block",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "in": "body",
                        "name": "request",
                        "description": "Text to analyze",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/analysis.AnalyzeRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/analysis.DTO"
                        }
                    },
                    "400": {
                        "description": "Missing text, unknown block or profile",
                        "schema": {
                            "$ref": "#/definitions/respond.ErrorResponse"
                        }
                    },
                    "413": {
                        "description": "Text too long",
                        "schema": {
                            "$ref": "#/definitions/respond.ErrorResponse"
                        }
                    },
                    "429": {
                        "description": "Rate limit exceeded",
                        "schema": {
                            "$ref": "#/definitions/respond.ErrorResponse"
                        }
                    },
                    "503": {
                        "description": "Archive disabled",
                        "schema": {
                            "$ref": "#/definitions/respond.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/analyze/batch": {
            "post": {
                "tags": [
                    "analysis"
                ],
                "summary": "Analyze a batch of texts",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "in": "body",
                        "name": "request",
                        "description": "Texts to analyze",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/analysis.BatchRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/analysis.BatchResponse"
                        }
                    },
                    "400": {
                        "description": "Empty batch",
                        "schema": {
                            "$ref": "#/definitions/respond.ErrorResponse"
                        }
                    },
                    "413": {
                        "description": "Batch too large",
                        "schema": {
                            "$ref": "#/definitions/respond.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/analyze/url": {
            "post": {
                "tags": [
                    "analysis"
                ],
                "summary": "Analyze the readable text of a web page",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "in": "body",
                        "name": "request",
                        "description": "Page URL",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/analysis.URLRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/analysis.DTO"
                        }
                    },
                    "400": {
                        "description": "Invalid URL",
                        "schema": {
                            "$ref": "#/definitions/respond.ErrorResponse"
                        }
                    },
                    "502": {
                        "description": "Upstream fetch failed",
                        "schema": {
                            "$ref": "#/definitions/respond.ErrorResponse"
                        }
                    },
                    "503": {
                        "description": "Fetching disabled",
                        "schema": {
                            "$ref": "#/definitions/respond.ErrorResponse"
                        }
                    },
                    "504": {
                        "description": "Upstream timeout",
                        "schema": {
                            "$ref": "#/definitions/respond.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/analyze/feed": {
            "post": {
                "tags": [
                    "analysis"
                ],
                "summary": "Analyze the entries of an RSS or Atom feed",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "in": "body",
                        "name": "request",
                        "description": "Feed URL",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/analysis.URLRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/analysis.FeedResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid URL",
                        "schema": {
                            "$ref": "#/definitions/respond.ErrorResponse"
                        }
                    },
                    "502": {
                        "description": "Upstream fetch failed",
                        "schema": {
                            "$ref": "#/definitions/respond.ErrorResponse"
                        }
                    },
                    "503": {
                        "description": "Fetching disabled",
                        "schema": {
                            "$ref": "#/definitions/respond.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/analyses": {
            "get": {
                "tags": [
                    "archive"
                ],
                "summary": "List archived analyses",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "default": 1,
                        "minimum": 1,
                        "description": "Page number (1-based)",
                        "name": "page",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "default": 20,
                        "minimum": 1,
                        "maximum": 100,
                        "description": "Items per page",
                        "name": "limit",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "text, url, feed or batch",
                        "name": "source",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Block name the report must contain",
                        "name": "block",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/pagination.Response-analysis_DTO"
                        }
                    },
                    "400": {
                        "description": "Invalid query parameters",
                        "schema": {
                            "$ref": "#/definitions/respond.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Missing or invalid token",
                        "schema": {
                            "$ref": "#/definitions/respond.ErrorResponse"
                        }
                    },
                    "503": {
                        "description": "Archive disabled",
                        "schema": {
                            "$ref": "#/definitions/respond.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/analyses/{id}": {
            "get": {
                "tags": [
                    "archive"
                ],
                "summary": "Get an archived analysis",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "format": "uuid",
                        "description": "Analysis ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/analysis.DTO"
                        }
                    },
                    "400": {
                        "description": "Invalid ID",
                        "schema": {
                            "$ref": "#/definitions/respond.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Missing or invalid token",
                        "schema": {
                            "$ref": "#/definitions/respond.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/respond.ErrorResponse"
                        }
                    }
                }
            },
            "delete": {
                "tags": [
                    "archive"
                ],
                "summary": "Delete an archived analysis",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "type": "string",
                        "format": "uuid",
                        "description": "Analysis ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "Deleted"
                    },
                    "400": {
                        "description": "Invalid ID",
                        "schema": {
                            "$ref": "#/definitions/respond.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Missing or invalid token",
                        "schema": {
                            "$ref": "#/definitions/respond.ErrorResponse"
                        }
                    },
                    "403": {
                        "description": "Admin role required",
                        "schema": {
                            "$ref": "#/definitions/respond.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/respond.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/blocks": {
            "get": {
                "tags": [
                    "catalog"
                ],
                "summary": "List the Unicode block catalog",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Profile name",
                        "name": "profile",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/catalog.BlocksResponse"
                        }
                    },
                    "400": {
                        "description": "Unknown profile",
                        "schema": {
                            "$ref": "#/definitions/respond.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/blocks/{name}": {
            "get": {
                "tags": [
                    "catalog"
                ],
                "summary": "Get one block",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Block name",
                        "name": "name",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/catalog.BlockDTO"
                        }
                    },
                    "404": {
                        "description": "Unknown block",
                        "schema": {
                            "$ref": "#/definitions/respond.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/blocks/{name}/count": {
            "post": {
                "tags": [
                    "catalog"
                ],
                "summary": "Count the characters of one block",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Block name",
                        "name": "name",
                        "in": "path",
                        "required": true
                    },
                    {
                        "in": "body",
                        "name": "request",
                        "description": "Text to count",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/catalog.CountRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/catalog.CountResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid body",
                        "schema": {
                            "$ref": "#/definitions/respond.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Unknown block",
                        "schema": {
                            "$ref": "#/definitions/respond.ErrorResponse"
                        }
                    },
                    "413": {
                        "description": "Text too long",
                        "schema": {
                            "$ref": "#/definitions/respond.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/profiles": {
            "get": {
                "tags": [
                    "catalog"
                ],
                "summary": "List block profiles",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/catalog.ProfileDTO"
                            }
                        }
                    }
                }
            }
        },
        "/auth/token": {
            "post": {
                "tags": [
                    "auth"
                ],
                "summary": "Issue an access token",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "in": "body",
                        "name": "credentials",
                        "description": "Login credentials",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/auth.loginRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/auth.TokenResponse"
                        }
                    },
                    "400": {
                        "description": "Malformed request",
                        "schema": {
                            "$ref": "#/definitions/respond.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Invalid credentials",
                        "schema": {
                            "$ref": "#/definitions/respond.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/health": {
            "get": {
                "tags": [
                    "health"
                ],
                "summary": "Health check",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/http.HealthResponse"
                        }
                    },
                    "503": {
                        "description": "Unhealthy",
                        "schema": {
                            "$ref": "#/definitions/http.HealthResponse"
                        }
                    }
                }
            }
        },
        "/ready": {
            "get": {
                "tags": [
                    "health"
                ],
                "summary": "Readiness probe",
                "produces": [
                    "text/plain"
                ],
                "responses": {
                    "200": {
                        "description": "ready"
                    },
                    "503": {
                        "description": "not ready"
                    }
                }
            }
        },
        "/live": {
            "get": {
                "tags": [
                    "health"
                ],
                "summary": "Liveness probe",
                "produces": [
                    "text/plain"
                ],
                "responses": {
                    "200": {
                        "description": "alive"
                    }
                }
            }
        }
    },
    "definitions": {
        "respond.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string",
                    "example": "text is required"
                }
            }
        },
        "analysis.DTO": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string",
                    "example": "0b0f5d39-5a0e-4b7e-9d43-0d7b2f1d8c11"
                },
                "source": {
                    "type": "string",
                    "example": "text"
                },
                "origin": {
                    "type": "string",
                    "example": "https://example.com/post"
                },
                "code_points": {
                    "type": "integer",
                    "example": 3
                },
                "report": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "integer"
                    },
                    "example": {
                        "basicLatin": 2,
                        "cjkUnifiedIdeographs": 1
                    }
                },
                "created_at": {
                    "type": "string",
                    "example": "2026-03-01T12:00:00Z"
                }
            }
        },
        "analysis.AnalyzeRequest": {
            "type": "object",
            "properties": {
                "text": {
                    "type": "string",
                    "example": "Aa文"
                },
                "utf16le": {
                    "type": "string",
                    "format": "base64"
                },
                "surrogates": {
                    "type": "string",
                    "example": "replace"
                },
                "blocks": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    },
                    "example": [
                        "basicLatin",
                        "hiragana"
                    ]
                },
                "profile": {
                    "type": "string",
                    "example": "cjk"
                },
                "persist": {
                    "type": "boolean",
                    "example": false
                }
            }
        },
        "analysis.BatchRequest": {
            "type": "object",
            "properties": {
                "texts": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    },
                    "example": [
                        "A",
                        "文"
                    ]
                },
                "blocks": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    },
                    "example": [
                        "basicLatin",
                        "hiragana"
                    ]
                },
                "profile": {
                    "type": "string",
                    "example": "cjk"
                },
                "persist": {
                    "type": "boolean",
                    "example": false
                }
            }
        },
        "analysis.BatchResponse": {
            "type": "object",
            "properties": {
                "results": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/analysis.DTO"
                    }
                }
            }
        },
        "analysis.URLRequest": {
            "type": "object",
            "properties": {
                "url": {
                    "type": "string",
                    "example": "https://example.com/feed.xml"
                },
                "blocks": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    },
                    "example": [
                        "basicLatin",
                        "hiragana"
                    ]
                },
                "profile": {
                    "type": "string",
                    "example": "cjk"
                },
                "persist": {
                    "type": "boolean",
                    "example": false
                }
            }
        },
        "analysis.FeedItemDTO": {
            "type": "object",
            "properties": {
                "title": {
                    "type": "string",
                    "example": "Release notes"
                },
                "url": {
                    "type": "string",
                    "example": "https://example.com/post/1"
                },
                "published_at": {
                    "type": "string",
                    "example": "2026-03-01T10:00:00Z"
                },
                "analysis": {
                    "$ref": "#/definitions/analysis.DTO"
                }
            }
        },
        "analysis.FeedResponse": {
            "type": "object",
            "properties": {
                "items": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/analysis.FeedItemDTO"
                    }
                },
                "merged": {
                    "$ref": "#/definitions/analysis.DTO"
                }
            }
        },
        "pagination.Metadata": {
            "type": "object",
            "properties": {
                "total": {
                    "type": "integer"
                },
                "page": {
                    "type": "integer"
                },
                "limit": {
                    "type": "integer"
                },
                "total_pages": {
                    "type": "integer"
                }
            }
        },
        "pagination.Response-analysis_DTO": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/analysis.DTO"
                    }
                },
                "pagination": {
                    "$ref": "#/definitions/pagination.Metadata"
                }
            }
        },
        "catalog.BlockDTO": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string",
                    "example": "basicLatin"
                },
                "low": {
                    "type": "string",
                    "example": "U+0000"
                },
                "high": {
                    "type": "string",
                    "example": "U+007F"
                },
                "size": {
                    "type": "integer",
                    "example": 128
                }
            }
        },
        "catalog.BlocksResponse": {
            "type": "object",
            "properties": {
                "unicode_version": {
                    "type": "string",
                    "example": "15.1.0"
                },
                "count": {
                    "type": "integer",
                    "example": 328
                },
                "blocks": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/catalog.BlockDTO"
                    }
                }
            }
        },
        "catalog.CountRequest": {
            "type": "object",
            "properties": {
                "text": {
                    "type": "string",
                    "example": "Aa文"
                }
            }
        },
        "catalog.CountResponse": {
            "type": "object",
            "properties": {
                "block": {
                    "type": "string",
                    "example": "basicLatin"
                },
                "count": {
                    "type": "integer",
                    "example": 2
                }
            }
        },
        "catalog.ProfileDTO": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string",
                    "example": "cjk"
                },
                "description": {
                    "type": "string"
                },
                "blocks": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "auth.loginRequest": {
            "type": "object",
            "properties": {
                "username": {
                    "type": "string",
                    "example": "admin"
                },
                "password": {
                    "type": "string"
                }
            }
        },
        "auth.TokenResponse": {
            "type": "object",
            "properties": {
                "token": {
                    "type": "string"
                },
                "expires_at": {
                    "type": "string"
                }
            }
        },
        "http.HealthResponse": {
            "type": "object",
            "properties": {
                "status": {
                    "type": "string",
                    "example": "healthy"
                },
                "timestamp": {
                    "type": "string"
                },
                "version": {
                    "type": "string"
                },
                "checks": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "object"
                    }
                }
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "JWT issued by POST /auth/token, sent as \"Bearer {token}\".",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "stringlang API",
	Description:      "Counts the characters of a text per Unicode block and returns a sparse report in catalog order.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

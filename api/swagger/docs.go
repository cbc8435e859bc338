// Package swagger registers the API documentation served under /swagger.
package swagger

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
    "paths": {
        "/register": {
            "post": {
                "tags": ["auth"],
                "summary": "Register account",
                "responses": {"201": {"description": "Created"}, "409": {"description": "Email already exists"}}
            }
        },
        "/verify-email": {
            "get": {
                "tags": ["auth"],
                "summary": "Pending verification",
                "responses": {"200": {"description": "OK"}, "404": {"description": "Nothing pending"}}
            },
            "post": {
                "tags": ["auth"],
                "summary": "Verify email",
                "responses": {"200": {"description": "OK"}, "404": {"description": "Account not found"}}
            }
        },
        "/login": {
            "post": {
                "tags": ["auth"],
                "summary": "Login",
                "responses": {"200": {"description": "OK"}, "401": {"description": "Invalid credentials or unverified"}}
            }
        },
        "/logout": {
            "post": {
                "tags": ["auth"],
                "summary": "Logout",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/me": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["auth"],
                "summary": "Current profile",
                "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}
            }
        },
        "/accounts": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["accounts"],
                "summary": "List accounts",
                "responses": {"200": {"description": "OK"}, "403": {"description": "Admin only"}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["accounts"],
                "summary": "Create account",
                "responses": {"201": {"description": "Created"}, "409": {"description": "Email already exists"}}
            }
        },
        "/accounts/{id}": {
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["accounts"],
                "summary": "Update account",
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["accounts"],
                "summary": "Delete account",
                "responses": {"200": {"description": "OK"}, "403": {"description": "Cannot delete own account"}}
            }
        },
        "/accounts/{id}/reset-password": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["accounts"],
                "summary": "Reset password",
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}
            }
        },
        "/departments": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["departments"],
                "summary": "List departments",
                "responses": {"200": {"description": "OK"}, "403": {"description": "Admin only"}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["departments"],
                "summary": "Create department",
                "responses": {"201": {"description": "Created"}, "400": {"description": "Name is required"}}
            }
        },
        "/departments/{id}": {
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["departments"],
                "summary": "Update department",
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["departments"],
                "summary": "Delete department",
                "responses": {"200": {"description": "OK"}, "409": {"description": "Department has employees"}}
            }
        },
        "/employees": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["employees"],
                "summary": "List employees",
                "responses": {"200": {"description": "OK"}, "403": {"description": "Admin only"}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["employees"],
                "summary": "Create employee",
                "responses": {"201": {"description": "Created"}, "400": {"description": "Unknown account email"}}
            }
        },
        "/employees/{id}": {
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["employees"],
                "summary": "Update employee",
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}
            }
        },
        "/requests": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["requests"],
                "summary": "List own requests",
                "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["requests"],
                "summary": "Submit request",
                "responses": {"201": {"description": "Created"}, "400": {"description": "At least one item required"}}
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
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Staff Desk API",
	Description:      "Accounts, departments, employees and requests over a single persisted state blob.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

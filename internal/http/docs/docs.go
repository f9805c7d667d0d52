// Package docs регистрирует OpenAPI-описание шлюза консоли в swag,
// откуда его читает Swagger UI на /docs/*.
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
    "paths": {
        "/actions": {
            "get": {
                "produces": ["application/json"],
                "tags": ["State"],
                "summary": "Список операций",
                "responses": {
                    "200": {"description": "Имена операций вида slice/op", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/state": {
            "get": {
                "produces": ["application/json"],
                "tags": ["State"],
                "summary": "Снимок состояния",
                "responses": {
                    "200": {"description": "Снимок состояния", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/state/{slice}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["State"],
                "summary": "Слайс состояния",
                "parameters": [
                    {"type": "string", "description": "Ключ слайса", "name": "slice", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Состояние слайса", "schema": {"$ref": "#/definitions/response.Response"}},
                    "404": {"description": "Неизвестный слайс", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        },
        "/dispatch/{slice}/{op}": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["State"],
                "summary": "Выполнить операцию над состоянием",
                "parameters": [
                    {"type": "string", "description": "Ключ слайса", "name": "slice", "in": "path", "required": true},
                    {"type": "string", "description": "Имя операции", "name": "op", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Снимок состояния", "schema": {"$ref": "#/definitions/response.Response"}},
                    "400": {"description": "Неизвестная операция или некорректный JSON", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "401": {"description": "Нет активной сессии", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "422": {"description": "Ошибка валидации", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "429": {"description": "Слишком много запросов", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "response.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string", "example": "invalid request body"},
                "status": {"type": "string", "example": "Error"}
            }
        },
        "response.Response": {
            "type": "object",
            "properties": {
                "data": {},
                "error": {"type": "string"},
                "status": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo метаданные документа, Host и BasePath можно поменять до старта сервера.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Payroll Admin Console",
	Description:      "Шлюз к состоянию админ-консоли payroll-платформы.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

// Package docs регистрирует swagger описание API, собранное из каталога маршрутов
package docs

import (
	"api-transferegov/internal/app/handler"

	"github.com/swaggo/swag"
)

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "API Transferegov Discricionárias",
	Description:      "API de consulta aos dados de transferências discricionárias e legais da União.",
	InfoInstanceName: "swagger",
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	SwaggerInfo.SwaggerTemplate = Build(handler.Routes())
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

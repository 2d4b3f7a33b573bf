package docs

import (
	"api-transferegov/internal/app/ds"
	"api-transferegov/internal/app/filter"
	"api-transferegov/internal/app/handler"
	"encoding/json"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/go-openapi/spec"
)

const schemesPlaceholder = `"schemes":["{{schemes}}"]`

var (
	dateType = reflect.TypeOf(ds.Date{})
	timeType = reflect.TypeOf(time.Time{})
)

// Build собирает swagger 2.0 шаблон: по пути на каждый маршрут каталога
// и по схеме на каждую форму ответа
func Build(routes []handler.Route) string {
	paths := &spec.Paths{Paths: map[string]spec.PathItem{}}
	definitions := spec.Definitions{}

	for _, route := range routes {
		info := route.Info()
		name := definition(reflect.TypeOf(info.Response).Elem(), definitions)

		op := spec.NewOperation("").
			WithTags(info.Tag).
			WithSummary(info.Description).
			WithDescription(info.Description).
			WithProduces("application/json").
			RespondsWith(http.StatusOK, spec.NewResponse().WithDescription("Página de resultados").WithSchema(pageSchema(name))).
			RespondsWith(http.StatusNotModified, spec.NewResponse().WithDescription("Not Modified")).
			RespondsWith(http.StatusBadRequest, spec.NewResponse().WithDescription("Nenhum parâmetro ou parâmetro inválido").WithSchema(detailSchema())).
			RespondsWith(http.StatusInternalServerError, spec.NewResponse().WithDescription("Erro interno").WithSchema(detailSchema()))
		for _, p := range parameters(info.Fields) {
			op.AddParam(p)
		}

		paths.Paths[info.Path] = spec.PathItem{PathItemProps: spec.PathItemProps{Get: op}}
	}

	doc := spec.Swagger{SwaggerProps: spec.SwaggerProps{
		Swagger: "2.0",
		Info: &spec.Info{InfoProps: spec.InfoProps{
			Title:       "{{.Title}}",
			Description: "{{escape .Description}}",
			Version:     "{{.Version}}",
		}},
		Host:        "{{.Host}}",
		BasePath:    "{{.BasePath}}",
		Schemes:     []string{"{{schemes}}"},
		Paths:       paths,
		Definitions: definitions,
		SecurityDefinitions: spec.SecurityDefinitions{
			"BasicAuth": spec.BasicAuth(),
		},
	}}

	raw, err := json.Marshal(doc)
	if err != nil {
		panic(err)
	}
	// schemes подставляется шаблоном swag
	return strings.Replace(string(raw), schemesPlaceholder, `"schemes":{{ marshal .Schemes }}`, 1)
}

func parameters(fields []filter.Field) []*spec.Parameter {
	params := make([]*spec.Parameter, 0, len(fields)+2)
	for _, f := range fields {
		p := spec.QueryParam(f.Param).AsOptional().WithDescription(strings.TrimSpace(f.Description))
		switch f.Type {
		case filter.Int:
			p.Typed("integer", "")
		case filter.Float:
			p.Typed("number", "")
		case filter.Date:
			p.Typed("string", "date")
		default:
			p.Typed("string", "")
		}
		if len(f.Enum) > 0 {
			enum := make([]interface{}, len(f.Enum))
			for i, v := range f.Enum {
				enum[i] = v
			}
			p.WithEnum(enum...)
		}
		if f.Min != nil {
			p.WithMinimum(f.Min.Value, f.Min.Exclusive)
		}
		if f.Max != nil {
			p.WithMaximum(f.Max.Value, f.Max.Exclusive)
		}
		params = append(params, p)
	}

	params = append(params,
		spec.QueryParam(filter.PageParam).Typed("integer", "").WithMinimum(1, false).WithDefault(1).WithDescription("Número da página"),
		spec.QueryParam(filter.PageSizeParam).Typed("integer", "").WithMinimum(1, false).WithDescription("Quantidade de registros por página"),
	)
	return params
}

func pageSchema(name string) *spec.Schema {
	return new(spec.Schema).Typed("object", "").
		SetProperty("data", *spec.ArrayProperty(spec.RefSchema("#/definitions/" + name))).
		SetProperty("total_pages", *integer()).
		SetProperty("total_items", *integer()).
		SetProperty("page_number", *integer()).
		SetProperty("page_size", *integer())
}

func detailSchema() *spec.Schema {
	return new(spec.Schema).Typed("object", "").SetProperty("detail", *spec.StringProperty())
}

func integer() *spec.Schema {
	return new(spec.Schema).Typed("integer", "")
}

// definition описывает структуру по json тегам и возвращает ее имя в definitions
func definition(t reflect.Type, definitions spec.Definitions) string {
	name := "ds." + t.Name()
	if _, ok := definitions[name]; ok {
		return name
	}
	// резерв имени на случай рекурсивных ссылок
	definitions[name] = spec.Schema{}

	s := new(spec.Schema).Typed("object", "")
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := strings.Split(field.Tag.Get("json"), ",")[0]
		if tag == "-" || !field.IsExported() {
			continue
		}
		if tag == "" {
			tag = field.Name
		}
		s.SetProperty(tag, *schema(field.Type, definitions))
	}
	definitions[name] = *s
	return name
}

func schema(t reflect.Type, definitions spec.Definitions) *spec.Schema {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch {
	case t == dateType:
		return spec.DateProperty()
	case t == timeType:
		return spec.DateTimeProperty()
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return integer()
	case reflect.Float32, reflect.Float64:
		return new(spec.Schema).Typed("number", "")
	case reflect.Bool:
		return spec.BoolProperty()
	case reflect.Slice:
		return spec.ArrayProperty(schema(t.Elem(), definitions))
	case reflect.Struct:
		return spec.RefSchema("#/definitions/" + definition(t, definitions))
	default:
		return spec.StringProperty()
	}
}

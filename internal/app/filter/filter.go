package filter

import (
	"errors"
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"
)

var (
	// ErrNoParams запрос не содержит ни одного фильтра сущности
	ErrNoParams = errors.New("no query parameters supplied")
	// ErrInvalidParam значение параметра не прошло проверку
	ErrInvalidParam = errors.New("invalid query parameter")
)

const DateLayout = "2006-01-02"

// Type тип значения параметра запроса
type Type int

const (
	String Type = iota
	Int
	Float
	Date
)

// Match способ сравнения с колонкой
type Match int

const (
	Exact Match = iota
	Contains
	OnDate
	AtLeast
	AtMost
)

// Bound граница допустимого значения параметра
type Bound struct {
	Value     float64
	Exclusive bool
}

func GT(v float64) *Bound { return &Bound{Value: v, Exclusive: true} }
func GE(v float64) *Bound { return &Bound{Value: v} }
func LT(v float64) *Bound { return &Bound{Value: v, Exclusive: true} }
func LE(v float64) *Bound { return &Bound{Value: v} }

// Field описывает один фильтр сущности: параметр запроса, колонку и способ сравнения.
// Column по умолчанию совпадает с Param. Text заставляет сравнивать число как строку.
type Field struct {
	Param       string
	Column      string
	Type        Type
	Match       Match
	Min         *Bound
	Max         *Bound
	Enum        []string
	Text        bool
	Description string
}

func (f Field) ColumnName() string {
	if f.Column != "" {
		return f.Column
	}
	return f.Param
}

// Condition разобранный фильтр, готовый к компиляции в WHERE
type Condition struct {
	Field Field
	Value any
}

// ParamError описывает, какой параметр не прошел проверку
type ParamError struct {
	Param  string
	Value  string
	Reason string
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("parameter %q value %q: %s", e.Param, e.Value, e.Reason)
}

func (e *ParamError) Unwrap() error { return ErrInvalidParam }

// Parse разбирает присутствующие в запросе параметры по таблице фильтров.
// Неизвестные параметры игнорируются, пустые значения считаются отсутствующими.
func Parse(fields []Field, query url.Values) ([]Condition, error) {
	values := make([]any, 0, len(fields))
	conds := make([]Condition, 0, len(fields))

	for _, f := range fields {
		raw := strings.TrimSpace(query.Get(f.Param))
		if raw == "" {
			values = append(values, nil)
			continue
		}

		v, err := f.parse(raw)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
		conds = append(conds, Condition{Field: f, Value: v})
	}

	if err := RequireAtLeastOne(values); err != nil {
		return nil, err
	}
	return conds, nil
}

// RequireAtLeastOne возвращает ErrNoParams, если все значения фильтров отсутствуют
func RequireAtLeastOne(values []any) error {
	for _, v := range values {
		if v != nil {
			return nil
		}
	}
	return ErrNoParams
}

func (f Field) parse(raw string) (any, error) {
	switch f.Type {
	case Int:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, &ParamError{Param: f.Param, Value: raw, Reason: "expected integer"}
		}
		if err := f.checkBounds(float64(n), raw); err != nil {
			return nil, err
		}
		if f.Text {
			return strconv.FormatInt(n, 10), nil
		}
		return n, nil

	case Float:
		x, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, &ParamError{Param: f.Param, Value: raw, Reason: "expected number"}
		}
		if err := f.checkBounds(x, raw); err != nil {
			return nil, err
		}
		return x, nil

	case Date:
		t, err := time.Parse(DateLayout, raw)
		if err != nil {
			return nil, &ParamError{Param: f.Param, Value: raw, Reason: "expected date YYYY-MM-DD"}
		}
		return t.Format(DateLayout), nil

	default:
		if len(f.Enum) > 0 && !contains(f.Enum, raw) {
			return nil, &ParamError{Param: f.Param, Value: raw, Reason: "expected one of " + strings.Join(f.Enum, ", ")}
		}
		return raw, nil
	}
}

func (f Field) checkBounds(x float64, raw string) error {
	if b := f.Min; b != nil {
		if x < b.Value || (b.Exclusive && x == b.Value) {
			return &ParamError{Param: f.Param, Value: raw, Reason: "below minimum " + b.describe(">")}
		}
	}
	if b := f.Max; b != nil {
		if x > b.Value || (b.Exclusive && x == b.Value) {
			return &ParamError{Param: f.Param, Value: raw, Reason: "above maximum " + b.describe("<")}
		}
	}
	return nil
}

func (b *Bound) describe(op string) string {
	if !b.Exclusive {
		op += "="
	}
	return op + " " + strconv.FormatFloat(b.Value, 'f', -1, 64)
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

// Compile превращает условия в gorm scope. Условия объединяются через AND.
func Compile(conds []Condition) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		for _, c := range conds {
			db = c.apply(db)
		}
		return db
	}
}

func (c Condition) apply(db *gorm.DB) *gorm.DB {
	col := c.Field.ColumnName()
	switch c.Field.Match {
	case Contains:
		return db.Where(fmt.Sprintf("LOWER(%s) LIKE LOWER(?)", col), fmt.Sprintf("%%%v%%", c.Value))
	case OnDate:
		return db.Where(fmt.Sprintf("DATE(%s) = ?", col), c.Value)
	case AtLeast:
		return db.Where(fmt.Sprintf("%s >= ?", col), c.Value)
	case AtMost:
		return db.Where(fmt.Sprintf("%s <= ?", col), c.Value)
	default:
		return db.Where(fmt.Sprintf("%s = ?", col), c.Value)
	}
}

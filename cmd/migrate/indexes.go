package main

import (
	"api-transferegov/internal/app/filter"
	"api-transferegov/internal/app/handler"
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
	"gorm.io/gorm"
)

// postgres обрезает имена длиннее 63 байт
const maxIdentifier = 63

type index struct {
	Name  string
	Table string
	SQL   string
}

// planIndexes строит индексы под фильтры и сортировку каждого маршрута:
// триграммы для поиска подстроки, btree для точных совпадений и порядка страниц
func planIndexes(db *gorm.DB, routes []handler.Route) ([]index, error) {
	var plan []index
	seen := map[string]bool{}
	add := func(idx index) {
		if seen[idx.Name] {
			return
		}
		seen[idx.Name] = true
		plan = append(plan, idx)
	}

	for _, route := range routes {
		info := route.Info()

		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(info.Model); err != nil {
			return nil, fmt.Errorf("parse model for %s: %w", info.Path, err)
		}
		table := stmt.Schema.Table

		if info.Order != "" {
			name := indexName(table, "order")
			add(index{
				Name:  name,
				Table: table,
				SQL:   fmt.Sprintf("CREATE INDEX IF NOT EXISTS %s ON %s (%s)", name, table, info.Order),
			})
		}

		for _, f := range info.Fields {
			column := f.ColumnName()
			switch f.Match {
			case filter.Contains:
				name := indexName(table, column, "trgm")
				add(index{
					Name:  name,
					Table: table,
					SQL:   fmt.Sprintf("CREATE INDEX IF NOT EXISTS %s ON %s USING gin (lower(%s) gin_trgm_ops)", name, table, column),
				})
			case filter.Exact, filter.AtLeast, filter.AtMost:
				name := indexName(table, column)
				add(index{
					Name:  name,
					Table: table,
					SQL:   fmt.Sprintf("CREATE INDEX IF NOT EXISTS %s ON %s (%s)", name, table, column),
				})
			case filter.OnDate:
				name := indexName(table, column, "date")
				add(index{
					Name:  name,
					Table: table,
					SQL:   fmt.Sprintf("CREATE INDEX IF NOT EXISTS %s ON %s ((DATE(%s)))", name, table, column),
				})
			}
		}
	}
	return plan, nil
}

func indexName(table string, parts ...string) string {
	name := "idx_" + table + "_" + strings.Join(parts, "_")
	if len(name) <= maxIdentifier {
		return name
	}
	suffix := fmt.Sprintf("_%08x", uint32(xxhash.Sum64String(name)))
	return name[:maxIdentifier-len(suffix)] + suffix
}

// tables уникальные таблицы плана в порядке появления
func tables(plan []index) []string {
	var out []string
	seen := map[string]bool{}
	for _, idx := range plan {
		if !seen[idx.Table] {
			seen[idx.Table] = true
			out = append(out, idx.Table)
		}
	}
	return out
}

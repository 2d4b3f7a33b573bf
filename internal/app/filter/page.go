package filter

import (
	"net/url"
	"strconv"
	"strings"
)

const (
	PageParam     = "pagina"
	PageSizeParam = "tamanho_da_pagina"
)

// ParsePage читает номер и размер страницы. Номер страницы начинается с 1,
// размер ограничен сверху maxSize.
func ParsePage(query url.Values, defaultSize, maxSize int) (int, int, error) {
	page, err := intParam(query, PageParam, 1)
	if err != nil {
		return 0, 0, err
	}
	if page < 1 {
		return 0, 0, &ParamError{Param: PageParam, Value: query.Get(PageParam), Reason: "must be >= 1"}
	}

	size, err := intParam(query, PageSizeParam, defaultSize)
	if err != nil {
		return 0, 0, err
	}
	if size < 1 || size > maxSize {
		return 0, 0, &ParamError{
			Param:  PageSizeParam,
			Value:  query.Get(PageSizeParam),
			Reason: "must be between 1 and " + strconv.Itoa(maxSize),
		}
	}
	return page, size, nil
}

func intParam(query url.Values, name string, def int) (int, error) {
	raw := strings.TrimSpace(query.Get(name))
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &ParamError{Param: name, Value: raw, Reason: "expected integer"}
	}
	return n, nil
}

package cache

import (
	"net/http"
	"net/url"
	"sort"
	"strings"
)

// Key строит детерминированный ключ: метод, путь, параметры запроса
// и значения заголовков из vary. Имена параметров сортируются,
// повторы одного параметра сохраняют порядок запроса.
func Key(method, path string, query url.Values, header http.Header, vary ...string) string {
	var b strings.Builder
	b.WriteString(method)
	b.WriteByte(':')
	b.WriteString(path)

	names := make([]string, 0, len(query))
	for name := range query {
		names = append(names, name)
	}
	sort.Strings(names)

	sep := byte('?')
	for _, name := range names {
		for _, v := range query[name] {
			b.WriteByte(sep)
			b.WriteString(url.QueryEscape(name))
			b.WriteByte('=')
			b.WriteString(url.QueryEscape(v))
			sep = '&'
		}
	}

	for _, name := range vary {
		b.WriteByte('|')
		b.WriteString(strings.ToLower(name))
		b.WriteByte('=')
		b.WriteString(header.Get(name))
	}

	return b.String()
}

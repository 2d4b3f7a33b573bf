package cache

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyIgnoresParameterOrder(t *testing.T) {
	a, _ := url.ParseQuery("nr_convenio=700001&pagina=2&tamanho_da_pagina=10")
	b, _ := url.ParseQuery("tamanho_da_pagina=10&nr_convenio=700001&pagina=2")

	assert.Equal(t, Key("GET", "/convenio", a, nil), Key("GET", "/convenio", b, nil))
	assert.Equal(t, "GET:/convenio?nr_convenio=700001&pagina=2&tamanho_da_pagina=10", Key("GET", "/convenio", a, nil))
}

func TestKeyKeepsRepeatedValueOrder(t *testing.T) {
	a, _ := url.ParseQuery("nr_convenio=700001&nr_convenio=700002")
	b, _ := url.ParseQuery("nr_convenio=700002&nr_convenio=700001")

	assert.NotEqual(t, Key("GET", "/convenio", a, nil), Key("GET", "/convenio", b, nil))
	assert.Equal(t, "GET:/convenio?nr_convenio=700001&nr_convenio=700002", Key("GET", "/convenio", a, nil))
}

func TestKeyKeepsEmptyValues(t *testing.T) {
	// пустое первое значение фильтр считает отсутствием, второе он не читает
	a, _ := url.ParseQuery("nr_convenio=&nr_convenio=700001")
	b, _ := url.ParseQuery("nr_convenio=700001")

	assert.NotEqual(t, Key("GET", "/convenio", a, nil), Key("GET", "/convenio", b, nil))
}

func TestKeyDistinguishesRequests(t *testing.T) {
	q1, _ := url.ParseQuery("nr_convenio=700001")
	q2, _ := url.ParseQuery("nr_convenio=700002")
	page2, _ := url.ParseQuery("nr_convenio=700001&pagina=2")

	keys := map[string]bool{
		Key("GET", "/convenio", q1, nil):    true,
		Key("GET", "/convenio", q2, nil):    true,
		Key("GET", "/convenio", page2, nil): true,
		Key("HEAD", "/convenio", q1, nil):   true,
		Key("GET", "/empenho", q1, nil):     true,
	}
	assert.Len(t, keys, 5)
}

func TestKeyEscapesSeparators(t *testing.T) {
	q1 := url.Values{"objeto": {"a&b=c"}}
	q2 := url.Values{"objeto": {"a"}, "b": {"c"}}

	assert.NotEqual(t, Key("GET", "/proposta", q1, nil), Key("GET", "/proposta", q2, nil))
}

func TestKeyVaryHeaders(t *testing.T) {
	q := url.Values{"id_proposta": {"1"}}
	gzip := http.Header{"Accept-Encoding": {"gzip"}}
	plain := http.Header{}

	assert.NotEqual(t,
		Key("GET", "/proposta", q, gzip, "Accept-Encoding"),
		Key("GET", "/proposta", q, plain, "Accept-Encoding"))
	assert.Equal(t,
		Key("GET", "/proposta", q, gzip),
		Key("GET", "/proposta", q, plain))
}

package filter

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePage(t *testing.T) {
	page, size, err := ParsePage(url.Values{}, 100, 1000)
	require.NoError(t, err)
	assert.Equal(t, 1, page)
	assert.Equal(t, 100, size)

	page, size, err = ParsePage(url.Values{"pagina": {"4"}, "tamanho_da_pagina": {"1000"}}, 100, 1000)
	require.NoError(t, err)
	assert.Equal(t, 4, page)
	assert.Equal(t, 1000, size)
}

func TestParsePageInvalid(t *testing.T) {
	for _, q := range []url.Values{
		{"pagina": {"0"}},
		{"pagina": {"-1"}},
		{"pagina": {"um"}},
		{"tamanho_da_pagina": {"0"}},
		{"tamanho_da_pagina": {"1001"}},
		{"tamanho_da_pagina": {"1.5"}},
	} {
		_, _, err := ParsePage(q, 100, 1000)
		assert.ErrorIs(t, err, ErrInvalidParam, "query %v", q)
	}
}

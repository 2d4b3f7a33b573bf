package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestETag(t *testing.T) {
	a := ETag([]byte(`{"data":[1]}`))

	assert.Equal(t, a, ETag([]byte(`{"data":[1]}`)))
	assert.NotEqual(t, a, ETag([]byte(`{"data":[2]}`)))
	assert.Regexp(t, `^"[0-9a-f]+"$`, a)
}

func TestMatchesETag(t *testing.T) {
	etag := `"abc123"`

	tests := []struct {
		header string
		want   bool
	}{
		{`"abc123"`, true},
		{`W/"abc123"`, true},
		{`"zzz", "abc123"`, true},
		{`*`, true},
		{`"zzz"`, false},
		{``, false},
		{`abc123`, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MatchesETag(tt.header, etag), "If-None-Match: %s", tt.header)
	}
	assert.False(t, MatchesETag("*", ""))
}

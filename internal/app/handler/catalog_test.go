package handler

import (
	"api-transferegov/internal/app/filter"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog(t *testing.T) {
	routes := Routes()
	require.Len(t, routes, 43)

	paths := map[string]bool{}
	for _, route := range routes {
		info := route.Info()
		t.Run(info.Path, func(t *testing.T) {
			assert.True(t, strings.HasPrefix(info.Path, "/"))
			assert.False(t, paths[info.Path], "duplicate path")
			paths[info.Path] = true

			assert.NotEmpty(t, info.Tag)
			assert.NotEmpty(t, info.Description)
			assert.NotEmpty(t, info.Order)
			require.NotEmpty(t, info.Fields)
			assert.NotNil(t, info.Model)
			assert.NotNil(t, info.Response)

			params := map[string]bool{}
			for _, f := range info.Fields {
				assert.False(t, params[f.Param], "duplicate param %s", f.Param)
				params[f.Param] = true
				assert.NotEqual(t, filter.PageParam, f.Param)
				assert.NotEqual(t, filter.PageSizeParam, f.Param)
				if f.Type == filter.Date {
					assert.Equal(t, filter.OnDate, f.Match, f.Param)
				}
			}
		})
	}
}

func TestCatalogMappersResolve(t *testing.T) {
	router := gin.New()
	for _, route := range Routes() {
		info := route.Info()
		t.Run(info.Path, func(t *testing.T) {
			assert.NotPanicsf(t, func() {
				route.Register(router, nil)
			}, "route %s (tag %s): response mapper does not resolve", info.Path, info.Tag)
		})
	}
	assert.Len(t, router.Routes(), 2*len(Routes()))
}

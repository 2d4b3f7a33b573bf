package handler

import (
	"api-transferegov/internal/app/cache"
	"api-transferegov/internal/app/config"
	"api-transferegov/internal/app/ds"
	"api-transferegov/internal/app/repository"
	"api-transferegov/internal/app/stats"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testEnv struct {
	router   *gin.Engine
	db       *gorm.DB
	registry *stats.Registry
	conf     *config.Config
}

func testConfig() *config.Config {
	return &config.Config{
		DefaultPageSize:           100,
		MaxPageSize:               1000,
		CacheTTL:                  30 * time.Minute,
		CacheComputeTimeout:       5 * time.Second,
		CacheBackend:              config.CacheBackendMemory,
		CacheCapacity:             100,
		ErrorMessageNoParams:      "Nenhum parâmetro de consulta foi informado.",
		ErrorMessageInternal:      "Erro Interno Inesperado.",
		ErrorMessageInvalidParams: "Parâmetro de consulta inválido.",
		StatsUser:                 "admin",
		StatsPassword:             "secret",
		StatsExcludedPaths:        []string{"/", "/stats", "/health", "/metrics"},
		DBRetryAttempts:           1,
	}
}

func setupEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&ds.Convenio{}, &ds.Empenho{}, &ds.EmpenhoDesembolso{},
		&ds.Programa{}, &ds.ProgramaProponente{}, &ds.ProgramaProposta{},
	))

	store, err := cache.NewMemoryStore(100)
	require.NoError(t, err)

	conf := testConfig()
	registry := stats.NewRegistry()
	router := gin.New()
	RegisterHandlers(router, conf, repository.New(db), cache.New(store), registry, registry)

	return &testEnv{router: router, db: db, registry: registry, conf: conf}
}

func ptr[T any](v T) *T { return &v }

func (e *testEnv) seedConvenios(t *testing.T, n int) {
	t.Helper()
	for i := 1; i <= n; i++ {
		sit := "EM EXECUÇÃO"
		if i%3 == 0 {
			sit = "PRESTAÇÃO DE CONTAS APROVADA"
		}
		require.NoError(t, e.db.Create(&ds.Convenio{
			NrConvenio:   ptr(int64(700000 + i)),
			IDProposta:   ptr(int64(i)),
			SitConvenio:  ptr(sit),
			DiaAssinConv: ds.NewDate(2024, 1, i),
		}).Error)
	}
}

func (e *testEnv) get(target string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for name, values := range header {
		req.Header[name] = values
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func detail(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body["detail"]
}

func TestEntityRejectsMissingFilters(t *testing.T) {
	env := setupEnv(t)

	for _, target := range []string{
		"/convenio",
		"/convenio?pagina=2&tamanho_da_pagina=10",
		"/convenio?nr_convenio=",
		"/empenho?unknown=1",
	} {
		w := env.get(target, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, target)
		assert.Equal(t, env.conf.ErrorMessageNoParams, detail(t, w), target)
	}
}

func TestEntityRejectsInvalidParams(t *testing.T) {
	env := setupEnv(t)

	for _, target := range []string{
		"/convenio?nr_convenio=abc",
		"/convenio?nr_convenio=0",
		"/convenio?dia_assin_conv=01/02/2024",
		"/convenio?instrumento_ativo=TALVEZ",
		"/convenio?nr_convenio=700001&pagina=0",
		"/convenio?nr_convenio=700001&tamanho_da_pagina=1001",
	} {
		w := env.get(target, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, target)
		assert.Equal(t, env.conf.ErrorMessageInvalidParams, detail(t, w), target)
	}
}

func TestEntityReturnsPage(t *testing.T) {
	env := setupEnv(t)
	env.seedConvenios(t, 25)

	w := env.get("/convenio?sit_convenio=execu&pagina=2&tamanho_da_pagina=10", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var page ds.Page[ds.Convenio]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	assert.Equal(t, int64(17), page.TotalItems)
	assert.Equal(t, 2, page.TotalPages)
	assert.Equal(t, 2, page.PageNumber)
	assert.Equal(t, 10, page.PageSize)
	require.Len(t, page.Data, 7)
	assert.Equal(t, int64(700016), *page.Data[0].NrConvenio)
}

func TestEntityDateFilter(t *testing.T) {
	env := setupEnv(t)
	env.seedConvenios(t, 5)

	w := env.get("/convenio?dia_assin_conv=2024-01-03", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var page ds.Page[ds.Convenio]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	require.Len(t, page.Data, 1)
	assert.Equal(t, int64(700003), *page.Data[0].NrConvenio)
	assert.Equal(t, "2024-01-03", page.Data[0].DiaAssinConv.String())
}

func TestEntityPageBeyondLast(t *testing.T) {
	env := setupEnv(t)
	env.seedConvenios(t, 3)

	w := env.get("/convenio?id_proposta=1&pagina=5", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"data":[],"total_pages":1,"total_items":1,"page_number":5,"page_size":100}`, w.Body.String())
}

func TestEntityStoreFailureIsGeneric(t *testing.T) {
	env := setupEnv(t)

	// таблицы proposta в тестовой базе нет
	w := env.get("/proposta?id_proposta=1", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, env.conf.ErrorMessageInternal, detail(t, w))
	assert.NotContains(t, w.Body.String(), "no such table")

	again := env.get("/proposta?id_proposta=1", nil)
	assert.Equal(t, http.StatusInternalServerError, again.Code)
	assert.Equal(t, "no-store", again.Header().Get("Cache-Control"))
}

func TestEntityResponsesAreCached(t *testing.T) {
	env := setupEnv(t)
	env.seedConvenios(t, 2)

	first := env.get("/convenio?nr_convenio=700001", nil)
	require.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "MISS", first.Header().Get("X-Cache"))

	// новая строка не видна, пока запись в кэше жива
	require.NoError(t, env.db.Model(&ds.Convenio{}).Where("nr_convenio = ?", 700001).Update("sit_convenio", "ALTERADO").Error)

	second := env.get("/convenio?nr_convenio=700001", nil)
	assert.Equal(t, "HIT", second.Header().Get("X-Cache"))
	assert.Equal(t, first.Body.String(), second.Body.String())

	etag := first.Header().Get("ETag")
	notModified := env.get("/convenio?nr_convenio=700001", http.Header{"If-None-Match": {etag}})
	assert.Equal(t, http.StatusNotModified, notModified.Code)
	assert.Empty(t, notModified.Body.String())
}

func TestEntityRepeatedParamsDoNotShareCache(t *testing.T) {
	env := setupEnv(t)
	env.seedConvenios(t, 3)

	first := env.get("/convenio?nr_convenio=700001&nr_convenio=700002", nil)
	second := env.get("/convenio?nr_convenio=700002&nr_convenio=700001", nil)
	require.Equal(t, http.StatusOK, first.Code)
	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, "MISS", second.Header().Get("X-Cache"))

	var a, b ds.Page[ds.Convenio]
	require.NoError(t, json.Unmarshal(first.Body.Bytes(), &a))
	require.NoError(t, json.Unmarshal(second.Body.Bytes(), &b))
	require.Len(t, a.Data, 1)
	require.Len(t, b.Data, 1)
	assert.Equal(t, int64(700001), *a.Data[0].NrConvenio)
	assert.Equal(t, int64(700002), *b.Data[0].NrConvenio)
}

func TestProgramaResponse(t *testing.T) {
	env := setupEnv(t)
	require.NoError(t, env.db.Create(&ds.Programa{
		IDPrograma:   ptr(int64(10)),
		NomePrograma: ptr("Programa de Saneamento"),
	}).Error)
	require.NoError(t, env.db.Create(&[]ds.ProgramaProponente{
		{IDPrograma: 10, IDProponente: 1},
		{IDPrograma: 10, IDProponente: 2},
	}).Error)
	require.NoError(t, env.db.Create(&ds.ProgramaProposta{IDPrograma: 10, IDProposta: 99}).Error)

	w := env.get("/programa?nome_programa=saneamento", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var page ds.Page[ds.ProgramaResponse]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	require.Len(t, page.Data, 1)
	assert.Len(t, page.Data[0].Proponentes, 2)
	require.Len(t, page.Data[0].Propostas, 1)
	assert.Equal(t, int64(99), *page.Data[0].Propostas[0].IDProposta)
}

func TestEmpenhoIncludesDesembolsos(t *testing.T) {
	env := setupEnv(t)
	require.NoError(t, env.db.Create(&ds.Empenho{IDEmpenho: ptr(int64(5)), NrConvenio: ptr(int64(700005))}).Error)
	require.NoError(t, env.db.Create(&ds.EmpenhoDesembolso{IDEmpenho: ptr(int64(5)), IDDesembolso: ptr(int64(50)), ValorGrupo: ptr(1000.5)}).Error)

	w := env.get("/empenho?nr_convenio=700005", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"desembolsos":[{"id_desembolso":50,"valor_grupo":1000.5}]`)
}

func TestStatsEndpoint(t *testing.T) {
	env := setupEnv(t)
	env.seedConvenios(t, 1)

	env.get("/convenio?nr_convenio=700001", nil)
	env.get("/convenio?nr_convenio=700001", nil)
	env.get("/health", nil)

	unauthorized := env.get("/stats", nil)
	assert.Equal(t, http.StatusUnauthorized, unauthorized.Code)

	req := httptest.NewRequest(http.MethodGet, "/stats", nil)
	req.SetBasicAuth("admin", "secret")
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var snap stats.Snapshot
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snap))
	require.Len(t, snap.Endpoints, 1)
	assert.Equal(t, "/convenio", snap.Endpoints[0].Path)
	assert.Equal(t, int64(2), snap.Endpoints[0].Count)
}

func TestHealth(t *testing.T) {
	env := setupEnv(t)

	w := env.get("/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestRootRedirectsToDocs(t *testing.T) {
	env := setupEnv(t)

	w := env.get("/", nil)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/docs/index.html", w.Header().Get("Location"))
}

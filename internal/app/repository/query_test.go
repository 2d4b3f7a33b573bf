package repository

import (
	"api-transferegov/internal/app/ds"
	"api-transferegov/internal/app/filter"
	"context"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&ds.Empenho{}, &ds.EmpenhoDesembolso{}, &ds.Programa{}, &ds.ProgramaProponente{}, &ds.ProgramaProposta{}))
	return db
}

func ptr[T any](v T) *T { return &v }

func seedEmpenhos(t *testing.T, db *gorm.DB, n int) {
	t.Helper()

	for i := 1; i <= n; i++ {
		ug := "UG-NORTE"
		if i%2 == 0 {
			ug = "UG-SUL"
		}
		require.NoError(t, db.Create(&ds.Empenho{
			IDEmpenho:   ptr(int64(i)),
			NrConvenio:  ptr(int64(700000 + i)),
			UGEmitente:  ptr(ug),
			DataEmissao: ds.NewDate(2024, 3, i),
		}).Error)
	}
}

func TestGormQueryPaginatesFilteredRows(t *testing.T) {
	db := setupTestDB(t)
	seedEmpenhos(t, db, 7)

	fields := []filter.Field{{Param: "ug_emitente", Type: filter.String, Match: filter.Contains}}
	conds, err := filter.Parse(fields, url.Values{"ug_emitente": {"norte"}})
	require.NoError(t, err)

	q := NewGormQuery[ds.Empenho](db, filter.Compile(conds), "id_empenho")
	page, err := Paginate(context.Background(), q, 2, 3, ValidateRow[ds.Empenho])
	require.NoError(t, err)

	assert.Equal(t, int64(4), page.TotalItems)
	assert.Equal(t, 2, page.TotalPages)
	require.Len(t, page.Data, 1)
	assert.Equal(t, int64(7), *page.Data[0].IDEmpenho)
	assert.Equal(t, "2024-03-07", page.Data[0].DataEmissao.String())
}

func TestGormQueryPreloadsRelations(t *testing.T) {
	db := setupTestDB(t)
	seedEmpenhos(t, db, 2)
	require.NoError(t, db.Create(&[]ds.EmpenhoDesembolso{
		{IDEmpenho: ptr(int64(1)), IDDesembolso: ptr(int64(10)), ValorGrupo: ptr(150.0)},
		{IDEmpenho: ptr(int64(1)), IDDesembolso: ptr(int64(11)), ValorGrupo: ptr(50.0)},
	}).Error)

	q := NewGormQuery[ds.Empenho](db, nil, "id_empenho", "Desembolsos")
	rows, err := q.Fetch(context.Background(), 0, 10)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Len(t, rows[0].Desembolsos, 2)
	assert.Empty(t, rows[1].Desembolsos)

	total, err := q.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
}

func TestProgramaResponseFromLinkTables(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, db.Create(&ds.Programa{ID: ptr(int64(1)), IDPrograma: ptr(int64(3600020240001)), NomePrograma: ptr("Saneamento")}).Error)
	require.NoError(t, db.Create(&[]ds.ProgramaProponente{{IDPrograma: 3600020240001, IDProponente: 55}}).Error)
	require.NoError(t, db.Create(&[]ds.ProgramaProposta{{IDPrograma: 3600020240001, IDProposta: 900}, {IDPrograma: 3600020240001, IDProposta: 901}}).Error)

	q := NewGormQuery[ds.Programa](db, nil, "id_programa", "Proponentes", "Propostas")
	page, err := Paginate(context.Background(), q, 1, 10, Validated(ds.Programa.ToResponse))
	require.NoError(t, err)
	require.Len(t, page.Data, 1)

	got := page.Data[0]
	assert.Equal(t, "Saneamento", *got.NomePrograma)
	require.Len(t, got.Proponentes, 1)
	assert.Equal(t, int64(55), *got.Proponentes[0].IDProponente)
	assert.Len(t, got.Propostas, 2)
}

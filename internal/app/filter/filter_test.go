package filter

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var convenioFields = []Field{
	{Param: "nr_convenio", Type: Int, Match: Exact, Min: GT(0)},
	{Param: "sit_convenio", Type: String, Match: Contains},
	{Param: "ind_assinado", Type: String, Match: Exact, Enum: []string{"SIM", "NÃO"}},
	{Param: "dia_assin_conv", Type: Date, Match: OnDate},
	{Param: "vl_global_conv", Type: Float, Match: Exact, Min: GT(0)},
	{Param: "mes", Type: Int, Match: Exact, Min: GE(1), Max: LE(12)},
	{Param: "ano", Type: Int, Match: Exact, Text: true},
	{Param: "vl_min", Column: "vl_global_conv", Type: Float, Match: AtLeast},
	{Param: "vl_max", Column: "vl_global_conv", Type: Float, Match: AtMost},
}

func TestParseRejectsPaginationOnly(t *testing.T) {
	queries := []url.Values{
		{},
		{"pagina": {"2"}},
		{"pagina": {"1"}, "tamanho_da_pagina": {"10"}},
		{"sit_convenio": {""}},
		{"desconhecido": {"x"}},
	}
	for _, q := range queries {
		_, err := Parse(convenioFields, q)
		assert.ErrorIs(t, err, ErrNoParams, "query %v", q)
	}
}

func TestParseValues(t *testing.T) {
	conds, err := Parse(convenioFields, url.Values{
		"nr_convenio":    {"700001"},
		"sit_convenio":   {"Em execução"},
		"dia_assin_conv": {"2023-05-10"},
		"vl_global_conv": {"1500.50"},
		"ano":            {"2020"},
		"pagina":         {"3"},
	})
	require.NoError(t, err)
	require.Len(t, conds, 5)

	assert.Equal(t, int64(700001), conds[0].Value)
	assert.Equal(t, "Em execução", conds[1].Value)
	assert.Equal(t, "2023-05-10", conds[2].Value)
	assert.Equal(t, 1500.50, conds[3].Value)
	assert.Equal(t, "2020", conds[4].Value)
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name  string
		query url.Values
		param string
	}{
		{"not an integer", url.Values{"nr_convenio": {"abc"}}, "nr_convenio"},
		{"exclusive minimum", url.Values{"nr_convenio": {"0"}}, "nr_convenio"},
		{"inclusive maximum", url.Values{"mes": {"13"}}, "mes"},
		{"inclusive minimum", url.Values{"mes": {"0"}}, "mes"},
		{"enum", url.Values{"ind_assinado": {"TALVEZ"}}, "ind_assinado"},
		{"date format", url.Values{"dia_assin_conv": {"10/05/2023"}}, "dia_assin_conv"},
		{"impossible date", url.Values{"dia_assin_conv": {"2023-02-30"}}, "dia_assin_conv"},
		{"not a number", url.Values{"vl_global_conv": {"NaN"}}, "vl_global_conv"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(convenioFields, tt.query)
			require.ErrorIs(t, err, ErrInvalidParam)

			var perr *ParamError
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, tt.param, perr.Param)
		})
	}
}

func TestParseBoundaryValuesAccepted(t *testing.T) {
	_, err := Parse(convenioFields, url.Values{"mes": {"12"}})
	assert.NoError(t, err)
	_, err = Parse(convenioFields, url.Values{"mes": {"1"}})
	assert.NoError(t, err)
}

func TestRequireAtLeastOne(t *testing.T) {
	assert.ErrorIs(t, RequireAtLeastOne(nil), ErrNoParams)
	assert.ErrorIs(t, RequireAtLeastOne([]any{nil, nil}), ErrNoParams)
	assert.NoError(t, RequireAtLeastOne([]any{nil, int64(0)}))
	assert.NoError(t, RequireAtLeastOne([]any{""}))
}

type convenioRow struct {
	NrConvenio   int64     `gorm:"column:nr_convenio;primaryKey;autoIncrement:false"`
	SitConvenio  string    `gorm:"column:sit_convenio"`
	IndAssinado  string    `gorm:"column:ind_assinado"`
	DiaAssinConv time.Time `gorm:"column:dia_assin_conv"`
	VlGlobalConv float64   `gorm:"column:vl_global_conv"`
	Ano          string    `gorm:"column:ano"`
}

func (convenioRow) TableName() string { return "convenio" }

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&convenioRow{}))

	rows := []convenioRow{
		{NrConvenio: 700001, SitConvenio: "Em execucao", IndAssinado: "SIM", DiaAssinConv: time.Date(2023, 5, 10, 14, 30, 0, 0, time.UTC), VlGlobalConv: 1000, Ano: "2023"},
		{NrConvenio: 700002, SitConvenio: "EM EXECUCAO", IndAssinado: "NÃO", DiaAssinConv: time.Date(2023, 5, 11, 0, 0, 0, 0, time.UTC), VlGlobalConv: 2500, Ano: "2023"},
		{NrConvenio: 700003, SitConvenio: "Prestacao de contas", IndAssinado: "SIM", DiaAssinConv: time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC), VlGlobalConv: 5000, Ano: "2022"},
	}
	require.NoError(t, db.Create(&rows).Error)
	return db
}

func find(t *testing.T, db *gorm.DB, q url.Values) []int64 {
	t.Helper()

	conds, err := Parse(convenioFields, q)
	require.NoError(t, err)

	var ids []int64
	require.NoError(t, db.Model(&convenioRow{}).Scopes(Compile(conds)).Order("nr_convenio").Pluck("nr_convenio", &ids).Error)
	return ids
}

func TestCompile(t *testing.T) {
	db := setupDB(t)

	assert.Equal(t, []int64{700002}, find(t, db, url.Values{"nr_convenio": {"700002"}}))
	assert.Equal(t, []int64{700001, 700002}, find(t, db, url.Values{"sit_convenio": {"execucao"}}))
	assert.Equal(t, []int64{700001}, find(t, db, url.Values{"dia_assin_conv": {"2023-05-10"}}))
	assert.Equal(t, []int64{700001, 700003}, find(t, db, url.Values{"ind_assinado": {"SIM"}}))
	assert.Equal(t, []int64{700003}, find(t, db, url.Values{"ano": {"2022"}}))
	assert.Equal(t, []int64{700002, 700003}, find(t, db, url.Values{"vl_min": {"2500"}}))
	assert.Equal(t, []int64{700001, 700002}, find(t, db, url.Values{"vl_max": {"2500"}}))
	assert.Empty(t, find(t, db, url.Values{"sit_convenio": {"execucao"}, "ind_assinado": {"SIM"}, "vl_min": {"2000"}}))
}

package ds

// EtapaCronoFisico maps etapa_crono_fisico.
type EtapaCronoFisico struct {
	IDEtapa         *int64  `gorm:"column:id_etapa;primaryKey" json:"id_etapa" binding:"required"`
	IDMeta          *int64  `gorm:"column:id_meta" json:"id_meta"`
	NrEtapa         *int64  `gorm:"column:nr_etapa" json:"nr_etapa"`
	DescEtapa       *string `gorm:"column:desc_etapa" json:"desc_etapa"`
	DataInicioEtapa Date    `gorm:"column:data_inicio_etapa" json:"data_inicio_etapa"`
	DataFimEtapa    Date    `gorm:"column:data_fim_etapa" json:"data_fim_etapa"`
	UFEtapa         *string `gorm:"column:uf_etapa" json:"uf_etapa"`
	MunicipioEtapa  *string `gorm:"column:municipio_etapa" json:"municipio_etapa"`
}

func (EtapaCronoFisico) TableName() string { return "etapa_crono_fisico" }

// MetaCronoFisico maps meta_crono_fisico.
type MetaCronoFisico struct {
	IDMeta         *int64  `gorm:"column:id_meta;primaryKey" json:"id_meta" binding:"required"`
	IDProposta     *int64  `gorm:"column:id_proposta" json:"id_proposta"`
	NrConvenio     *int64  `gorm:"column:nr_convenio" json:"nr_convenio"`
	CodPrograma    *string `gorm:"column:cod_programa" json:"cod_programa"`
	NomePrograma   *string `gorm:"column:nome_programa" json:"nome_programa"`
	NrMeta         *string `gorm:"column:nr_meta" json:"nr_meta"`
	TipoMeta       *string `gorm:"column:tipo_meta" json:"tipo_meta"`
	DescMeta       *string `gorm:"column:desc_meta" json:"desc_meta"`
	DataInicioMeta Date    `gorm:"column:data_inicio_meta" json:"data_inicio_meta"`
	DataFimMeta    Date    `gorm:"column:data_fim_meta" json:"data_fim_meta"`
	UFMeta         *string `gorm:"column:uf_meta" json:"uf_meta"`
	MunicipioMeta  *string `gorm:"column:municipio_meta" json:"municipio_meta"`
}

func (MetaCronoFisico) TableName() string { return "meta_crono_fisico" }

// PlanoAplicacaoDetalhado maps plano_aplicacao_detalhado.
type PlanoAplicacaoDetalhado struct {
	IDProposta         *int64   `gorm:"column:id_proposta" json:"id_proposta"`
	Sigla              *string  `gorm:"column:sigla" json:"sigla"`
	Municipio          *string  `gorm:"column:municipio" json:"municipio"`
	NaturezaAquisicao  *int64   `gorm:"column:natureza_aquisicao" json:"natureza_aquisicao"`
	DescricaoItem      *string  `gorm:"column:descricao_item" json:"descricao_item"`
	CEPItem            *string  `gorm:"column:cep_item" json:"cep_item"`
	EnderecoItem       *string  `gorm:"column:endereco_item" json:"endereco_item"`
	TipoDespesaItem    *string  `gorm:"column:tipo_despesa_item" json:"tipo_despesa_item"`
	NaturezaDespesa    *string  `gorm:"column:natureza_despesa" json:"natureza_despesa"`
	SitItem            *string  `gorm:"column:sit_item" json:"sit_item"`
	CodNaturezaDespesa *string  `gorm:"column:cod_natureza_despesa" json:"cod_natureza_despesa"`
	QtdItem            *int64   `gorm:"column:qtd_item" json:"qtd_item"`
	ValorUnitarioItem  *float64 `gorm:"column:valor_unitario_item" json:"valor_unitario_item"`
	ValorTotalItem     *float64 `gorm:"column:valor_total_item" json:"valor_total_item"`
	IDItemPad          *int64   `gorm:"column:id_item_pad;primaryKey" json:"id_item_pad" binding:"required"`
}

func (PlanoAplicacaoDetalhado) TableName() string { return "plano_aplicacao_detalhado" }

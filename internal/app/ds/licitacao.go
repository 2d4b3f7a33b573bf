package ds

// Contrato maps contrato.
type Contrato struct {
	IDLicitacao                *int64   `gorm:"column:id_licitacao;primaryKey" json:"id_licitacao" binding:"required"`
	NrContrato                 *int64   `gorm:"column:nr_contrato;primaryKey" json:"nr_contrato"`
	DataPublicacaoContrato     *string  `gorm:"column:data_publicacao_contrato" json:"data_publicacao_contrato"`
	DataAssinaturaContrato     Date     `gorm:"column:data_assinatura_contrato" json:"data_assinatura_contrato"`
	DataInicioVigenciaContrato Date     `gorm:"column:data_inicio_vigencia_contrato" json:"data_inicio_vigencia_contrato"`
	DataFimVigenciaContrato    Date     `gorm:"column:data_fim_vigencia_contrato" json:"data_fim_vigencia_contrato"`
	ObjetoContrato             *string  `gorm:"column:objeto_contrato" json:"objeto_contrato"`
	TipoAquisicaoContrato      *string  `gorm:"column:tipo_aquisicao_contrato" json:"tipo_aquisicao_contrato"`
	ValorGlobalContrato        *float64 `gorm:"column:valor_global_contrato" json:"valor_global_contrato"`
	IDFornecedorContrato       *string  `gorm:"column:id_fornecedor_contrato" json:"id_fornecedor_contrato"`
	NomeFornecedorContrato     *string  `gorm:"column:nome_fornecedor_contrato" json:"nome_fornecedor_contrato"`
}

func (Contrato) TableName() string { return "contrato" }

// Licitacao maps licitacao.
type Licitacao struct {
	IDLicitacao                 *int64   `gorm:"column:id_licitacao;primaryKey" json:"id_licitacao" binding:"required"`
	NrConvenio                  *int64   `gorm:"column:nr_convenio" json:"nr_convenio"`
	NrLicitacao                 *string  `gorm:"column:nr_licitacao" json:"nr_licitacao"`
	ModalidadeLicitacao         *string  `gorm:"column:modalidade_licitacao" json:"modalidade_licitacao"`
	TpProcessoCompra            *string  `gorm:"column:tp_processo_compra" json:"tp_processo_compra"`
	TipoLicitacao               *string  `gorm:"column:tipo_licitacao" json:"tipo_licitacao"`
	NrProcessoLicitacao         *string  `gorm:"column:nr_processo_licitacao" json:"nr_processo_licitacao"`
	DataPublicacaoLicitacao     Date     `gorm:"column:data_publicacao_licitacao" json:"data_publicacao_licitacao"`
	DataAberturaLicitacao       Date     `gorm:"column:data_abertura_licitacao" json:"data_abertura_licitacao"`
	DataEncerramentoLicitacao   Date     `gorm:"column:data_encerramento_licitacao" json:"data_encerramento_licitacao"`
	DataHomologacaoLicitacao    Date     `gorm:"column:data_homologacao_licitacao" json:"data_homologacao_licitacao"`
	StatusLicitacao             *string  `gorm:"column:status_licitacao" json:"status_licitacao"`
	SituacaoAceiteProcessoExecu *string  `gorm:"column:situacao_aceite_processo_execu" json:"situacao_aceite_processo_execu"`
	SistemaOrigem               *string  `gorm:"column:sistema_origem" json:"sistema_origem"`
	SituacaoSistema             *string  `gorm:"column:situacao_sistema" json:"situacao_sistema"`
	ValorLicitacao              *float64 `gorm:"column:valor_licitacao" json:"valor_licitacao"`
}

func (Licitacao) TableName() string { return "licitacao" }

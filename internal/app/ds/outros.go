package ds

// CoordenadasObra maps coordenadas_obra.
type CoordenadasObra struct {
	IDProposta              *int64   `gorm:"column:id_proposta;primaryKey" json:"id_proposta" binding:"required"`
	NomeProjetoCadastroObra *string  `gorm:"column:nome_projeto_cadastro_obra" json:"nome_projeto_cadastro_obra"`
	LatitudeCadastroObra    *float64 `gorm:"column:latitude_cadastro_obra" json:"latitude_cadastro_obra"`
	LongitudeCadastroObra   *float64 `gorm:"column:longitude_cadastro_obra" json:"longitude_cadastro_obra"`
}

func (CoordenadasObra) TableName() string { return "coordenadas_obra" }

// HistoricoProjetoBasico maps historico_projeto_basico.
type HistoricoProjetoBasico struct {
	IDProposta       *int64  `gorm:"column:id_proposta;primaryKey" json:"id_proposta" binding:"required"`
	DataHistPBTR     Date    `gorm:"column:data_hist_pb_tr;primaryKey" json:"data_hist_pb_tr"`
	SituacaoHistPBTR *string `gorm:"column:situacao_hist_pb_tr" json:"situacao_hist_pb_tr"`
	EventoHistPBTR   *string `gorm:"column:evento_hist_pb_tr" json:"evento_hist_pb_tr"`
	VersaoDocPBTR    *int64  `gorm:"column:versao_doc_pb_tr" json:"versao_doc_pb_tr"`
}

func (HistoricoProjetoBasico) TableName() string { return "historico_projeto_basico" }

// ResumoFisicoFinanceiro maps resumo_fisico_financeiro.
type ResumoFisicoFinanceiro struct {
	IDProposta                               *int64   `gorm:"column:id_proposta;primaryKey" json:"id_proposta" binding:"required"`
	ValorTotalResumoFisicoFinanceiro         *float64 `gorm:"column:valor_total_resumo_fisico_financeiro" json:"valor_total_resumo_fisico_financeiro"`
	ValorRealizadoResumoFisicoFinanceiro     *float64 `gorm:"column:valor_realizado_resumo_fisico_financeiro" json:"valor_realizado_resumo_fisico_financeiro"`
	PercentualExecucaoResumoFisicoFinanceiro *float64 `gorm:"column:percentual_execucao_resumo_fisico_financeiro" json:"percentual_execucao_resumo_fisico_financeiro"`
}

func (ResumoFisicoFinanceiro) TableName() string { return "resumo_fisico_financeiro" }

// SolicitacaoAjustePt maps solicitacao_ajuste_pt.
type SolicitacaoAjustePt struct {
	IDAjustePT                  *int64  `gorm:"column:id_ajuste_pt;primaryKey" json:"id_ajuste_pt" binding:"required"`
	IDProposta                  *int64  `gorm:"column:id_proposta" json:"id_proposta"`
	NrAjustePT                  *string `gorm:"column:nr_ajuste_pt" json:"nr_ajuste_pt"`
	DataSolicitacaoAjustePT     Date    `gorm:"column:data_solicitacao_ajuste_pt" json:"data_solicitacao_ajuste_pt"`
	SituacaoSolicitacaoAjustePT *string `gorm:"column:situacao_solicitacao_ajuste_pt" json:"situacao_solicitacao_ajuste_pt"`
}

func (SolicitacaoAjustePt) TableName() string { return "solicitacao_ajuste_pt" }

// SolicitacaoRendimentoAplicacao maps solicitacao_rendimento_aplicacao.
type SolicitacaoRendimentoAplicacao struct {
	IDSolicitacaoRendAplicacao            *int64   `gorm:"column:id_solicitacao_rend_aplicacao;primaryKey" json:"id_solicitacao_rend_aplicacao" binding:"required"`
	NrConvenio                            *int64   `gorm:"column:nr_convenio" json:"nr_convenio"`
	NrSolicitacaoRendAplicacao            *int64   `gorm:"column:nr_solicitacao_rend_aplicacao" json:"nr_solicitacao_rend_aplicacao"`
	StatusSolicitacaoRendAplicacao        *string  `gorm:"column:status_solicitacao_rend_aplicacao" json:"status_solicitacao_rend_aplicacao"`
	DataSolicitacaoRendAplicacao          Date     `gorm:"column:data_solicitacao_rend_aplicacao" json:"data_solicitacao_rend_aplicacao"`
	ValorSolicitacaoRendAplicacao         *float64 `gorm:"column:valor_solicitacao_rend_aplicacao" json:"valor_solicitacao_rend_aplicacao"`
	ValorAprovadoSolicitacaoRendAplicacao *float64 `gorm:"column:valor_aprovado_solicitacao_rend_aplicacao" json:"valor_aprovado_solicitacao_rend_aplicacao"`
}

func (SolicitacaoRendimentoAplicacao) TableName() string { return "solicitacao_rendimento_aplicacao" }

// SolicitacaoAlteracao maps solicitacao_alteracao.
type SolicitacaoAlteracao struct {
	IDSolicitacao       *int64  `gorm:"column:id_solicitacao;primaryKey" json:"id_solicitacao" binding:"required"`
	NrConvenio          *int64  `gorm:"column:nr_convenio" json:"nr_convenio"`
	NrSolicitacao       *string `gorm:"column:nr_solicitacao" json:"nr_solicitacao"`
	SituacaoSolicitacao *string `gorm:"column:situacao_solicitacao" json:"situacao_solicitacao"`
	ObjetoSolicitacao   *string `gorm:"column:objeto_solicitacao" json:"objeto_solicitacao"`
	DataSolicitacao     Date    `gorm:"column:data_solicitacao" json:"data_solicitacao"`
}

func (SolicitacaoAlteracao) TableName() string { return "solicitacao_alteracao" }

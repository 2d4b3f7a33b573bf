package ds

// CronogramaDesembolso maps cronograma_desembolso.
type CronogramaDesembolso struct {
	IDProposta               *int64  `gorm:"column:id_proposta;primaryKey" json:"id_proposta" binding:"required"`
	NrConvenio               *int64  `gorm:"column:nr_convenio" json:"nr_convenio"`
	NrParcelaCronoDesembolso *int64  `gorm:"column:nr_parcela_crono_desembolso;primaryKey" json:"nr_parcela_crono_desembolso"`
	MesCronoDesembolso       *int64  `gorm:"column:mes_crono_desembolso" json:"mes_crono_desembolso"`
	AnoCronoDesembolso       *int64  `gorm:"column:ano_crono_desembolso" json:"ano_crono_desembolso"`
	TipoRespCronoDesembolso  *string `gorm:"column:tipo_resp_crono_desembolso" json:"tipo_resp_crono_desembolso"`
}

func (CronogramaDesembolso) TableName() string { return "cronograma_desembolso" }

// DesbloqueioCr maps desbloqueio_cr.
type DesbloqueioCr struct {
	NrConvenio             *int64   `gorm:"column:nr_convenio;primaryKey" json:"nr_convenio" binding:"required"`
	NrOB                   *string  `gorm:"column:nr_ob;primaryKey" json:"nr_ob"`
	DataCadastro           Date     `gorm:"column:data_cadastro" json:"data_cadastro"`
	DataEnvio              Date     `gorm:"column:data_envio" json:"data_envio"`
	TipoRecursoDesbloqueio *string  `gorm:"column:tipo_recurso_desbloqueio" json:"tipo_recurso_desbloqueio"`
	VlTotalDesbloqueio     *float64 `gorm:"column:vl_total_desbloqueio" json:"vl_total_desbloqueio"`
	VlDesbloqueado         *float64 `gorm:"column:vl_desbloqueado" json:"vl_desbloqueado"`
	VlBloqueado            *float64 `gorm:"column:vl_bloqueado" json:"vl_bloqueado"`
}

func (DesbloqueioCr) TableName() string { return "desbloqueio_cr" }

// Desembolso maps desembolso.
type Desembolso struct {
	IDDesembolso         *int64   `gorm:"column:id_desembolso;primaryKey" json:"id_desembolso" binding:"required"`
	NrConvenio           *int64   `gorm:"column:nr_convenio" json:"nr_convenio"`
	DtUltDesembolso      Date     `gorm:"column:dt_ult_desembolso" json:"dt_ult_desembolso"`
	QtdDiasSemDesembolso *int64   `gorm:"column:qtd_dias_sem_desembolso" json:"qtd_dias_sem_desembolso"`
	DataDesembolso       Date     `gorm:"column:data_desembolso" json:"data_desembolso"`
	AnoDesembolso        *int64   `gorm:"column:ano_desembolso" json:"ano_desembolso"`
	MesDesembolso        *int64   `gorm:"column:mes_desembolso" json:"mes_desembolso"`
	NrSIAFI              *string  `gorm:"column:nr_siafi" json:"nr_siafi"`
	UGEmitenteDH         *string  `gorm:"column:ug_emitente_dh" json:"ug_emitente_dh"`
	ObservacaoDH         *string  `gorm:"column:observacao_dh" json:"observacao_dh"`
	VlDesembolsado       *float64 `gorm:"column:vl_desembolsado" json:"vl_desembolsado"`
}

func (Desembolso) TableName() string { return "desembolso" }

// Empenho maps empenho.
type Empenho struct {
	IDEmpenho           *int64   `gorm:"column:id_empenho;primaryKey" json:"id_empenho" binding:"required"`
	NrConvenio          *int64   `gorm:"column:nr_convenio" json:"nr_convenio"`
	NrEmpenho           *string  `gorm:"column:nr_empenho" json:"nr_empenho"`
	TipoNota            *string  `gorm:"column:tipo_nota" json:"tipo_nota"`
	DescTipoNota        *string  `gorm:"column:desc_tipo_nota" json:"desc_tipo_nota"`
	DataEmissao         Date     `gorm:"column:data_emissao" json:"data_emissao"`
	CodSituacaoEmpenho  *string  `gorm:"column:cod_situacao_empenho" json:"cod_situacao_empenho"`
	DescSituacaoEmpenho *string  `gorm:"column:desc_situacao_empenho" json:"desc_situacao_empenho"`
	UGEmitente          *string  `gorm:"column:ug_emitente" json:"ug_emitente"`
	UGResponsavel       *string  `gorm:"column:ug_responsavel" json:"ug_responsavel"`
	FonteRecurso        *string  `gorm:"column:fonte_recurso" json:"fonte_recurso"`
	NaturezaDespesa     *string  `gorm:"column:natureza_despesa" json:"natureza_despesa"`
	PlanoInterno        *string  `gorm:"column:plano_interno" json:"plano_interno"`
	Ptres               *string  `gorm:"column:ptres" json:"ptres"`
	ValorEmpenho        *float64 `gorm:"column:valor_empenho" json:"valor_empenho"`

	Desembolsos []EmpenhoDesembolso `gorm:"foreignKey:IDEmpenho;references:IDEmpenho" json:"desembolsos"`
}

func (Empenho) TableName() string { return "empenho" }

// EmpenhoDesembolso maps empenho_desembolso.
type EmpenhoDesembolso struct {
	IDEmpenho    *int64   `gorm:"column:id_empenho;primaryKey;autoIncrement:false" json:"-"`
	IDDesembolso *int64   `gorm:"column:id_desembolso;primaryKey;autoIncrement:false" json:"id_desembolso"`
	ValorGrupo   *float64 `gorm:"column:valor_grupo" json:"valor_grupo"`
}

func (EmpenhoDesembolso) TableName() string { return "empenho_desembolso" }

// IngressoContrapartida maps ingresso_contrapartida.
type IngressoContrapartida struct {
	NrConvenio              *int64   `gorm:"column:nr_convenio;primaryKey" json:"nr_convenio" binding:"required"`
	DtIngressoContrapartida Date     `gorm:"column:dt_ingresso_contrapartida;primaryKey" json:"dt_ingresso_contrapartida"`
	VlIngressoContrapartida *float64 `gorm:"column:vl_ingresso_contrapartida" json:"vl_ingresso_contrapartida"`
}

func (IngressoContrapartida) TableName() string { return "ingresso_contrapartida" }

// ObtvConvenente maps obtv_convenente.
type ObtvConvenente struct {
	NrMovFin                  *int64   `gorm:"column:nr_mov_fin;primaryKey" json:"nr_mov_fin" binding:"required"`
	IdentifFavorecidoOBTVConv *string  `gorm:"column:identif_favorecido_obtv_conv" json:"identif_favorecido_obtv_conv"`
	NmFavorecidoOBTVConv      *string  `gorm:"column:nm_favorecido_obtv_conv" json:"nm_favorecido_obtv_conv"`
	TpAquisicao               *string  `gorm:"column:tp_aquisicao" json:"tp_aquisicao"`
	VlPagoOBTVConv            *float64 `gorm:"column:vl_pago_obtv_conv" json:"vl_pago_obtv_conv"`
}

func (ObtvConvenente) TableName() string { return "obtv_convenente" }

// Pagamento maps pagamento.
type Pagamento struct {
	NrMovFin          *int64   `gorm:"column:nr_mov_fin;primaryKey" json:"nr_mov_fin" binding:"required"`
	NrConvenio        *int64   `gorm:"column:nr_convenio" json:"nr_convenio"`
	IdentifFornecedor *string  `gorm:"column:identif_fornecedor" json:"identif_fornecedor"`
	NomeFornecedor    *string  `gorm:"column:nome_fornecedor" json:"nome_fornecedor"`
	TpMovFinanceira   *string  `gorm:"column:tp_mov_financeira" json:"tp_mov_financeira"`
	DataPag           Date     `gorm:"column:data_pag" json:"data_pag"`
	NrDL              *string  `gorm:"column:nr_dl" json:"nr_dl"`
	DescDL            *string  `gorm:"column:desc_dl" json:"desc_dl"`
	VlPago            *float64 `gorm:"column:vl_pago" json:"vl_pago"`
}

func (Pagamento) TableName() string { return "pagamento" }

// PagamentoTributo maps pagamento_tributo.
type PagamentoTributo struct {
	NrConvenio    *int64   `gorm:"column:nr_convenio;primaryKey" json:"nr_convenio" binding:"required"`
	DataTributo   Date     `gorm:"column:data_tributo;primaryKey" json:"data_tributo"`
	VlPagTributos *float64 `gorm:"column:vl_pag_tributos" json:"vl_pag_tributos"`
}

func (PagamentoTributo) TableName() string { return "pagamento_tributo" }

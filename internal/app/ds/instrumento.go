package ds

import "time"

// Convenio maps convenio.
type Convenio struct {
	NrConvenio               *int64   `gorm:"column:nr_convenio;primaryKey" json:"nr_convenio" binding:"required"`
	IDProposta               *int64   `gorm:"column:id_proposta" json:"id_proposta"`
	Dia                      *int64   `gorm:"column:dia" json:"dia"`
	Mes                      *int64   `gorm:"column:mes" json:"mes"`
	Ano                      *int64   `gorm:"column:ano" json:"ano"`
	DiaAssinConv             Date     `gorm:"column:dia_assin_conv" json:"dia_assin_conv"`
	SitConvenio              *string  `gorm:"column:sit_convenio" json:"sit_convenio"`
	SubsituacaoConv          *string  `gorm:"column:subsituacao_conv" json:"subsituacao_conv"`
	SituacaoPublicacao       *string  `gorm:"column:situacao_publicacao" json:"situacao_publicacao"`
	InstrumentoAtivo         *string  `gorm:"column:instrumento_ativo" json:"instrumento_ativo"`
	IndOperaOBTV             *string  `gorm:"column:ind_opera_obtv" json:"ind_opera_obtv"`
	NrProcesso               *string  `gorm:"column:nr_processo" json:"nr_processo"`
	UGEmitente               *string  `gorm:"column:ug_emitente" json:"ug_emitente"`
	DiaPublConv              Date     `gorm:"column:dia_publ_conv" json:"dia_publ_conv"`
	DiaInicVigencConv        Date     `gorm:"column:dia_inic_vigenc_conv" json:"dia_inic_vigenc_conv"`
	DiaFimVigencConv         Date     `gorm:"column:dia_fim_vigenc_conv" json:"dia_fim_vigenc_conv"`
	DiaFimVigencOriginalConv Date     `gorm:"column:dia_fim_vigenc_original_conv" json:"dia_fim_vigenc_original_conv"`
	DiaLimitePrestContas     Date     `gorm:"column:dia_limite_prest_contas" json:"dia_limite_prest_contas"`
	DataSuspensiva           Date     `gorm:"column:data_suspensiva" json:"data_suspensiva"`
	DataRetiradaSuspensiva   Date     `gorm:"column:data_retirada_suspensiva" json:"data_retirada_suspensiva"`
	SituacaoContratacao      *string  `gorm:"column:situacao_contratacao" json:"situacao_contratacao"`
	IndAssinado              *string  `gorm:"column:ind_assinado" json:"ind_assinado"`
	MotivoSuspensao          *string  `gorm:"column:motivo_suspensao" json:"motivo_suspensao"`
	QtdeConvenios            *int64   `gorm:"column:qtde_convenios" json:"qtde_convenios"`
	QtdTA                    *int64   `gorm:"column:qtd_ta" json:"qtd_ta"`
	QtdProroga               *int64   `gorm:"column:qtd_proroga" json:"qtd_proroga"`
	IndFoto                  *string  `gorm:"column:ind_foto" json:"ind_foto"`
	VlGlobalConv             *float64 `gorm:"column:vl_global_conv" json:"vl_global_conv"`
	VlRepasseConv            *float64 `gorm:"column:vl_repasse_conv" json:"vl_repasse_conv"`
	VlContrapartidaConv      *float64 `gorm:"column:vl_contrapartida_conv" json:"vl_contrapartida_conv"`
	ValorGlobalOriginalConv  *float64 `gorm:"column:valor_global_original_conv" json:"valor_global_original_conv"`
}

func (Convenio) TableName() string { return "convenio" }

// HistoricoSituacao maps historico_situacao.
type HistoricoSituacao struct {
	IDProposta       *int64     `gorm:"column:id_proposta" json:"id_proposta" binding:"required"`
	NrConvenio       *int64     `gorm:"column:nr_convenio" json:"nr_convenio"`
	DiaHistoricoSit  *time.Time `gorm:"column:dia_historico_sit" json:"dia_historico_sit"`
	HistoricoSit     *string    `gorm:"column:historico_sit" json:"historico_sit"`
	DiasHistoricoSit *int64     `gorm:"column:dias_historico_sit" json:"dias_historico_sit"`
	CodHistoricoSit  *int64     `gorm:"column:cod_historico_sit" json:"cod_historico_sit"`
}

func (HistoricoSituacao) TableName() string { return "historico_situacao" }

// ProrrogaOficio maps prorroga_oficio.
type ProrrogaOficio struct {
	NrConvenio           *int64  `gorm:"column:nr_convenio;primaryKey" json:"nr_convenio" binding:"required"`
	NrProrroga           *string `gorm:"column:nr_prorroga;primaryKey" json:"nr_prorroga"`
	DtInicioProrroga     Date    `gorm:"column:dt_inicio_prorroga" json:"dt_inicio_prorroga"`
	DtFimProrroga        Date    `gorm:"column:dt_fim_prorroga" json:"dt_fim_prorroga"`
	DiasProrroga         *int64  `gorm:"column:dias_prorroga" json:"dias_prorroga"`
	DtAssinaturaProrroga Date    `gorm:"column:dt_assinatura_prorroga" json:"dt_assinatura_prorroga"`
	SitProrroga          *string `gorm:"column:sit_prorroga" json:"sit_prorroga"`
}

func (ProrrogaOficio) TableName() string { return "prorroga_oficio" }

// TermoAditivo maps termo_aditivo.
type TermoAditivo struct {
	NrConvenio      *int64  `gorm:"column:nr_convenio;primaryKey" json:"nr_convenio" binding:"required"`
	IDSolicitacao   *int64  `gorm:"column:id_solicitacao" json:"id_solicitacao"`
	NumeroTA        *string `gorm:"column:numero_ta;primaryKey" json:"numero_ta"`
	TipoTA          *string `gorm:"column:tipo_ta" json:"tipo_ta"`
	DtAssinaturaTA  Date    `gorm:"column:dt_assinatura_ta" json:"dt_assinatura_ta"`
	DtInicioTA      Date    `gorm:"column:dt_inicio_ta" json:"dt_inicio_ta"`
	DtFimTA         Date    `gorm:"column:dt_fim_ta" json:"dt_fim_ta"`
	JustificativaTA *string `gorm:"column:justificativa_ta" json:"justificativa_ta"`
}

func (TermoAditivo) TableName() string { return "termo_aditivo" }

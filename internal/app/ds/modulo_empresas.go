package ds

// AcompObrasContratosMedicoesModuloEmpresas maps acomp_obras_contratos_medicoes_modulo_empresas.
type AcompObrasContratosMedicoesModuloEmpresas struct {
	IDProposta                                *int64  `gorm:"column:id_proposta" json:"id_proposta"`
	IDContratoMedicaoAcompanhamentoObra       *int64  `gorm:"column:id_contrato_medicao_acompanhamento_obra" json:"id_contrato_medicao_acompanhamento_obra"`
	IDMedicaoAcompanhamentoObra               *int64  `gorm:"column:id_medicao_acompanhamento_obra;primaryKey" json:"id_medicao_acompanhamento_obra" binding:"required"`
	DataInicioObraContratoAcompanhamentoObra  Date    `gorm:"column:data_inicio_obra_contrato_acompanhamento_obra" json:"data_inicio_obra_contrato_acompanhamento_obra"`
	CNPJFornecedorContratoAcompanhamentoObra  *string `gorm:"column:cnpj_fornecedor_contrato_acompanhamento_obra" json:"cnpj_fornecedor_contrato_acompanhamento_obra"`
	NumeroMedicaoAcompanhamentoObra           *int64  `gorm:"column:numero_medicao_acompanhamento_obra" json:"numero_medicao_acompanhamento_obra"`
	NrUltimaMedicaoAcompanhamentoObra         *int64  `gorm:"column:nr_ultima_medicao_acompanhamento_obra" json:"nr_ultima_medicao_acompanhamento_obra"`
	SituacaoMedicaoAcompanhamentoObra         *string `gorm:"column:situacao_medicao_acompanhamento_obra" json:"situacao_medicao_acompanhamento_obra"`
	DataInicioMedicaoObjetoAcompanhamentoObra Date    `gorm:"column:data_inicio_medicao_objeto_acompanhamento_obra" json:"data_inicio_medicao_objeto_acompanhamento_obra"`
	DataFimMedicaoObjetoAcompanhamentoObra    Date    `gorm:"column:data_fim_medicao_objeto_acompanhamento_obra" json:"data_fim_medicao_objeto_acompanhamento_obra"`
	QtdDiasSemMedicaoAcompanhamentoObra       *int64  `gorm:"column:qtd_dias_sem_medicao_acompanhamento_obra" json:"qtd_dias_sem_medicao_acompanhamento_obra"`
}

func (AcompObrasContratosMedicoesModuloEmpresas) TableName() string {
	return "acomp_obras_contratos_medicoes_modulo_empresas"
}

// AcompObrasValoresItensMedicaoModuloEmpresas maps acomp_obras_valores_itens_medicao_modulo_empresas.
type AcompObrasValoresItensMedicaoModuloEmpresas struct {
	IDSubmetaVRPL                                            *int64   `gorm:"column:id_submeta_vrpl;primaryKey" json:"id_submeta_vrpl"`
	IDContratoMedicaoAcompanhamentoObra                      *int64   `gorm:"column:id_contrato_medicao_acompanhamento_obra;primaryKey" json:"id_contrato_medicao_acompanhamento_obra" binding:"required"`
	ValorExecucaoFisicaAcumuladaTotalAcompanhamentoObra      *float64 `gorm:"column:valor_execucao_fisica_acumulada_total_acompanhamento_obra" json:"valor_execucao_fisica_acumulada_total_acompanhamento_obra"`
	ValorExecucaoFisicaAcumuladaConcedenteAcompanhamentoObra *float64 `gorm:"column:valor_execucao_fisica_acumulada_concedente_acompanhamento_obra" json:"valor_execucao_fisica_acumulada_concedente_acompanhamento_obra"`
	ValorExecucaoFisicaAcumuladaConvenenteAcompanhamentoObra *float64 `gorm:"column:valor_execucao_fisica_acumulada_convenente_acompanhamento_obra" json:"valor_execucao_fisica_acumulada_convenente_acompanhamento_obra"`
	ValorExecucaoFisicaAcumuladaEmpresaAcompanhamentoObra    *float64 `gorm:"column:valor_execucao_fisica_acumulada_empresa_acompanhamento_obra" json:"valor_execucao_fisica_acumulada_empresa_acompanhamento_obra"`
}

func (AcompObrasValoresItensMedicaoModuloEmpresas) TableName() string {
	return "acomp_obras_valores_itens_medicao_modulo_empresas"
}

// InstContContratosLotesEmpresasModuloEmpresas maps inst_cont_contratos_lotes_empresas_modulo_empresas.
type InstContContratosLotesEmpresasModuloEmpresas struct {
	IDContratoInstrumentoContratual                        *int64  `gorm:"column:id_contrato_instrumento_contratual;primaryKey" json:"id_contrato_instrumento_contratual" binding:"required"`
	IDPropostaInstrumentoContratual                        *int64  `gorm:"column:id_proposta_instrumento_contratual" json:"id_proposta_instrumento_contratual"`
	IDLoteInstrumentoContratual                            *int64  `gorm:"column:id_lote_instrumento_contratual;primaryKey" json:"id_lote_instrumento_contratual"`
	NumeroInstrumentoContratual                            *string `gorm:"column:numero_instrumento_contratual" json:"numero_instrumento_contratual"`
	SituacaoInstrumentoContratual                          *string `gorm:"column:situacao_instrumento_contratual" json:"situacao_instrumento_contratual"`
	DataAssinaturaInstrumentoContratual                    Date    `gorm:"column:data_assinatura_instrumento_contratual" json:"data_assinatura_instrumento_contratual"`
	DataInicioVigenciaInstrumentoContratual                Date    `gorm:"column:data_inicio_vigencia_instrumento_contratual" json:"data_inicio_vigencia_instrumento_contratual"`
	DataFimVigenciaInstrumentoContratual                   Date    `gorm:"column:data_fim_vigencia_instrumento_contratual" json:"data_fim_vigencia_instrumento_contratual"`
	NumeroLoteInstrumentoContratual                        *int64  `gorm:"column:numero_lote_instrumento_contratual" json:"numero_lote_instrumento_contratual"`
	RazaoSocialEmpresaExecutoraInstrumentoContratual       *string `gorm:"column:razao_social_empresa_executora_instrumento_contratual" json:"razao_social_empresa_executora_instrumento_contratual"`
	TipoIdentificacaoEmpresaExecutoraInstrumentoContratual *string `gorm:"column:tipo_identificacao_empresa_executora_instrumento_contratual" json:"tipo_identificacao_empresa_executora_instrumento_contratual"`
	IdentificacaoEmpresaExecutoraInstrumentoContratual     *string `gorm:"column:identificacao_empresa_executora_instrumento_contratual" json:"identificacao_empresa_executora_instrumento_contratual"`
}

func (InstContContratosLotesEmpresasModuloEmpresas) TableName() string {
	return "inst_cont_contratos_lotes_empresas_modulo_empresas"
}

// InstContMetasSubmetasPoModuloEmpresas maps inst_cont_metas_submetas_po_modulo_empresas.
type InstContMetasSubmetasPoModuloEmpresas struct {
	IDMetaInstrumentoContratual                 *int64   `gorm:"column:id_meta_instrumento_contratual" json:"id_meta_instrumento_contratual"`
	IDSubmetaInstrumentoContratual              *int64   `gorm:"column:id_submeta_instrumento_contratual" json:"id_submeta_instrumento_contratual"`
	IDPOInstrumentoContratual                   *int64   `gorm:"column:id_po_instrumento_contratual;primaryKey" json:"id_po_instrumento_contratual" binding:"required"`
	IDPropostaInstrumentoContratual             *int64   `gorm:"column:id_proposta_instrumento_contratual" json:"id_proposta_instrumento_contratual"`
	IDLoteInstrumentoContratual                 *int64   `gorm:"column:id_lote_instrumento_contratual" json:"id_lote_instrumento_contratual"`
	NumeroMetaInstrumentoContratual             *int64   `gorm:"column:numero_meta_instrumento_contratual" json:"numero_meta_instrumento_contratual"`
	DescricaoMetaInstrumentoContratual          *string  `gorm:"column:descricao_meta_instrumento_contratual" json:"descricao_meta_instrumento_contratual"`
	NumeroSubmetaInstrumentoContratual          *string  `gorm:"column:numero_submeta_instrumento_contratual" json:"numero_submeta_instrumento_contratual"`
	DescricaoSubmetaInstrumentoContratual       *string  `gorm:"column:descricao_submeta_instrumento_contratual" json:"descricao_submeta_instrumento_contratual"`
	SituacaoSubmetaInstrumentoContratual        *string  `gorm:"column:situacao_submeta_instrumento_contratual" json:"situacao_submeta_instrumento_contratual"`
	ValorTotalLicitadoInstrumentoContratual     *float64 `gorm:"column:valor_total_licitado_instrumento_contratual" json:"valor_total_licitado_instrumento_contratual"`
	DataPrevisaoInicioObraInstrumentoContratual Date     `gorm:"column:data_previsao_inicio_obra_instrumento_contratual" json:"data_previsao_inicio_obra_instrumento_contratual"`
	DatabasePOVRPLInstrumentoContratual         Date     `gorm:"column:database_po_vrpl_instrumento_contratual" json:"database_po_vrpl_instrumento_contratual"`
	SiglaLocalidadePOInstrumentoContratual      *string  `gorm:"column:sigla_localidade_po_instrumento_contratual" json:"sigla_localidade_po_instrumento_contratual"`
	AcompanhadoPorEventoPOInstrumentoContratual *int64   `gorm:"column:acompanhado_por_evento_po_instrumento_contratual" json:"acompanhado_por_evento_po_instrumento_contratual"`
}

func (InstContMetasSubmetasPoModuloEmpresas) TableName() string {
	return "inst_cont_metas_submetas_po_modulo_empresas"
}

// InstContPropostaAioModuloEmpresas maps inst_cont_proposta_aio_modulo_empresas.
type InstContPropostaAioModuloEmpresas struct {
	IDPropostaInstrumentoContratual     *int64  `gorm:"column:id_proposta_instrumento_contratual" json:"id_proposta_instrumento_contratual"`
	IDProposta                          *int64  `gorm:"column:id_proposta" json:"id_proposta"`
	IDAIOInstrumentoContratual          *int64  `gorm:"column:id_aio_instrumento_contratual;primaryKey" json:"id_aio_instrumento_contratual" binding:"required"`
	SituacaoAIOInstrumentoContratual    *string `gorm:"column:situacao_aio_instrumento_contratual" json:"situacao_aio_instrumento_contratual"`
	DataEmissaoAIOInstrumentoContratual Date    `gorm:"column:data_emissao_aio_instrumento_contratual" json:"data_emissao_aio_instrumento_contratual"`
}

func (InstContPropostaAioModuloEmpresas) TableName() string {
	return "inst_cont_proposta_aio_modulo_empresas"
}

// ProjetoBasicoAcffoModuloEmpresas maps projeto_basico_acffo_modulo_empresas.
type ProjetoBasicoAcffoModuloEmpresas struct {
	IDACFFO                            *int64  `gorm:"column:id_acffo;primaryKey" json:"id_acffo" binding:"required"`
	IDProposta                         *int64  `gorm:"column:id_proposta" json:"id_proposta"`
	UltimaVersaoProjetoBasico          *int64  `gorm:"column:ultima_versao_projeto_basico" json:"ultima_versao_projeto_basico"`
	ApelidoEmpreendimentoProjetoBasico *string `gorm:"column:apelido_empreendimento_projeto_basico" json:"apelido_empreendimento_projeto_basico"`
	SituacaoProjetoBasico              *string `gorm:"column:situacao_projeto_basico" json:"situacao_projeto_basico"`
	SituacaoSPA                        *string `gorm:"column:situacao_spa" json:"situacao_spa"`
	DataAceiteProjetoBasico            Date    `gorm:"column:data_aceite_projeto_basico" json:"data_aceite_projeto_basico"`
}

func (ProjetoBasicoAcffoModuloEmpresas) TableName() string {
	return "projeto_basico_acffo_modulo_empresas"
}

// ProjetoBasicoLaeModuloEmpresas maps projeto_basico_lae_modulo_empresas.
type ProjetoBasicoLaeModuloEmpresas struct {
	IDQCIACFFO                  *int64  `gorm:"column:id_qci_acffo;primaryKey" json:"id_qci_acffo" binding:"required"`
	IDACFFO                     *int64  `gorm:"column:id_acffo" json:"id_acffo"`
	IDProposta                  *int64  `gorm:"column:id_proposta" json:"id_proposta"`
	SituacaoLAEProjetoBasico    *string `gorm:"column:situacao_lae_projeto_basico" json:"situacao_lae_projeto_basico"`
	EmissaoLAEProjetoBasico     *string `gorm:"column:emissao_lae_projeto_basico" json:"emissao_lae_projeto_basico"`
	DataEmissaoLAEProjetoBasico Date    `gorm:"column:data_emissao_lae_projeto_basico" json:"data_emissao_lae_projeto_basico"`
}

func (ProjetoBasicoLaeModuloEmpresas) TableName() string { return "projeto_basico_lae_modulo_empresas" }

// ProjetoBasicoMetasModuloEmpresas maps projeto_basico_metas_modulo_empresas.
type ProjetoBasicoMetasModuloEmpresas struct {
	IDMetaProjetoBasico              *int64   `gorm:"column:id_meta_projeto_basico;primaryKey" json:"id_meta_projeto_basico" binding:"required"`
	IDQCIACFFO                       *int64   `gorm:"column:id_qci_acffo" json:"id_qci_acffo"`
	NumeroMetaProjetoBasico          *int64   `gorm:"column:numero_meta_projeto_basico" json:"numero_meta_projeto_basico"`
	DescricaoMetaProjetoBasico       *string  `gorm:"column:descricao_meta_projeto_basico" json:"descricao_meta_projeto_basico"`
	NomeItemInvestimentoMeta         *string  `gorm:"column:nome_item_investimento_meta" json:"nome_item_investimento_meta"`
	DescricaoSubitemInvestimentoMeta *string  `gorm:"column:descricao_subitem_investimento_meta" json:"descricao_subitem_investimento_meta"`
	QuantidadeItensMetaProjetoBasico *float64 `gorm:"column:quantidade_itens_meta_projeto_basico" json:"quantidade_itens_meta_projeto_basico"`
	UnidadeItemInvestimentoMeta      *string  `gorm:"column:unidade_item_investimento_meta" json:"unidade_item_investimento_meta"`
}

func (ProjetoBasicoMetasModuloEmpresas) TableName() string {
	return "projeto_basico_metas_modulo_empresas"
}

// ProjetoBasicoPropostaModuloEmpresas maps projeto_basico_proposta_modulo_empresas.
type ProjetoBasicoPropostaModuloEmpresas struct {
	IDPropostaACFFO                  *int64   `gorm:"column:id_proposta_acffo;primaryKey" json:"id_proposta_acffo" binding:"required"`
	IDProposta                       *int64   `gorm:"column:id_proposta" json:"id_proposta"`
	ValorGlobalPropostaProjetoBasico *float64 `gorm:"column:valor_global_proposta_projeto_basico" json:"valor_global_proposta_projeto_basico"`
}

func (ProjetoBasicoPropostaModuloEmpresas) TableName() string {
	return "projeto_basico_proposta_modulo_empresas"
}

// ProjetoBasicoSubmetasModuloEmpresas maps projeto_basico_submetas_modulo_empresas.
type ProjetoBasicoSubmetasModuloEmpresas struct {
	IDSubmetaProjetoBasico                  *int64   `gorm:"column:id_submeta_projeto_basico;primaryKey" json:"id_submeta_projeto_basico" binding:"required"`
	IDMetaProjetoBasico                     *int64   `gorm:"column:id_meta_projeto_basico" json:"id_meta_projeto_basico"`
	LoteSubmetaProjetoBasico                *int64   `gorm:"column:lote_submeta_projeto_basico" json:"lote_submeta_projeto_basico"`
	NumeroSubmetaProjetoBasico              *string  `gorm:"column:numero_submeta_projeto_basico" json:"numero_submeta_projeto_basico"`
	DescricaoSubmetaProjetoBasico           *string  `gorm:"column:descricao_submeta_projeto_basico" json:"descricao_submeta_projeto_basico"`
	SituacaoSubmetaProjetoBasico            *string  `gorm:"column:situacao_submeta_projeto_basico" json:"situacao_submeta_projeto_basico"`
	ValorRepasseSubmetaProjetoBasico        *float64 `gorm:"column:valor_repasse_submeta_projeto_basico" json:"valor_repasse_submeta_projeto_basico"`
	ValorContrapartidaSubmetaProjetoBasico  *float64 `gorm:"column:valor_contrapartida_submeta_projeto_basico" json:"valor_contrapartida_submeta_projeto_basico"`
	ValorOutrosSubmetaProjetoBasico         *float64 `gorm:"column:valor_outros_submeta_projeto_basico" json:"valor_outros_submeta_projeto_basico"`
	ValorTotalSubmetaProjetoBasico          *float64 `gorm:"column:valor_total_submeta_projeto_basico" json:"valor_total_submeta_projeto_basico"`
	DataPrevisaoInicioObraProjetoBasico     Date     `gorm:"column:data_previsao_inicio_obra_projeto_basico" json:"data_previsao_inicio_obra_projeto_basico"`
	QuantidadeMesesDuracaoObraProjetoBasico *int64   `gorm:"column:quantidade_meses_duracao_obra_projeto_basico" json:"quantidade_meses_duracao_obra_projeto_basico"`
	DatabaseObraProjetoBasico               Date     `gorm:"column:database_obra_projeto_basico" json:"database_obra_projeto_basico"`
	SiglaLocalidadeObraProjetoBasico        *string  `gorm:"column:sigla_localidade_obra_projeto_basico" json:"sigla_localidade_obra_projeto_basico"`
	ObraAcompanhadaPorEventoProjetoBasico   *string  `gorm:"column:obra_acompanhada_por_evento_projeto_basico" json:"obra_acompanhada_por_evento_projeto_basico"`
}

func (ProjetoBasicoSubmetasModuloEmpresas) TableName() string {
	return "projeto_basico_submetas_modulo_empresas"
}

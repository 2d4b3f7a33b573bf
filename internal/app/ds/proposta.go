package ds

// JustificativasProposta maps justificativas_proposta.
type JustificativasProposta struct {
	IDProposta                   *int64  `gorm:"column:id_proposta;primaryKey" json:"id_proposta" binding:"required"`
	CaracterizacaoInteressesReci *string `gorm:"column:caracterizacao_interesses_reci" json:"caracterizacao_interesses_reci"`
	PublicoAlvo                  *string `gorm:"column:publico_alvo" json:"publico_alvo"`
	ProblemaASerResolvido        *string `gorm:"column:problema_a_ser_resolvido" json:"problema_a_ser_resolvido"`
	ResultadosEsperados          *string `gorm:"column:resultados_esperados" json:"resultados_esperados"`
	RelacaoPropostaObjetivosPro  *string `gorm:"column:relacao_proposta_objetivos_pro" json:"relacao_proposta_objetivos_pro"`
	CapacidadeTecnica            *string `gorm:"column:capacidade_tecnica" json:"capacidade_tecnica"`
	Justificativa                *string `gorm:"column:justificativa" json:"justificativa"`
}

func (JustificativasProposta) TableName() string { return "justificativas_proposta" }

// Proposta maps proposta.
type Proposta struct {
	IDProposta               *int64   `gorm:"column:id_proposta;primaryKey" json:"id_proposta" binding:"required"`
	IDProponente             *int64   `gorm:"column:id_proponente" json:"id_proponente"`
	UFProponente             *string  `gorm:"column:uf_proponente" json:"uf_proponente"`
	MunicProponente          *string  `gorm:"column:munic_proponente" json:"munic_proponente"`
	CodMunicIBGE             *string  `gorm:"column:cod_munic_ibge" json:"cod_munic_ibge"`
	CodOrgaoSup              *string  `gorm:"column:cod_orgao_sup" json:"cod_orgao_sup"`
	DescOrgaoSup             *string  `gorm:"column:desc_orgao_sup" json:"desc_orgao_sup"`
	NaturezaJuridica         *string  `gorm:"column:natureza_juridica" json:"natureza_juridica"`
	NrProposta               *string  `gorm:"column:nr_proposta" json:"nr_proposta"`
	DiaProp                  *string  `gorm:"column:dia_prop" json:"dia_prop"`
	MesProp                  *string  `gorm:"column:mes_prop" json:"mes_prop"`
	AnoProp                  *string  `gorm:"column:ano_prop" json:"ano_prop"`
	DiaProposta              Date     `gorm:"column:dia_proposta" json:"dia_proposta"`
	CodOrgao                 *string  `gorm:"column:cod_orgao" json:"cod_orgao"`
	DescOrgao                *string  `gorm:"column:desc_orgao" json:"desc_orgao"`
	Modalidade               *string  `gorm:"column:modalidade" json:"modalidade"`
	IdentifProponente        *string  `gorm:"column:identif_proponente" json:"identif_proponente"`
	NmProponente             *string  `gorm:"column:nm_proponente" json:"nm_proponente"`
	CEPProponente            *string  `gorm:"column:cep_proponente" json:"cep_proponente"`
	EnderecoProponente       *string  `gorm:"column:endereco_proponente" json:"endereco_proponente"`
	BairroProponente         *string  `gorm:"column:bairro_proponente" json:"bairro_proponente"`
	NmBanco                  *string  `gorm:"column:nm_banco" json:"nm_banco"`
	SituacaoConta            *string  `gorm:"column:situacao_conta" json:"situacao_conta"`
	SituacaoProjetoBasico    *string  `gorm:"column:situacao_projeto_basico" json:"situacao_projeto_basico"`
	SitProposta              *string  `gorm:"column:sit_proposta" json:"sit_proposta"`
	DiaInicVigenciaProposta  Date     `gorm:"column:dia_inic_vigencia_proposta" json:"dia_inic_vigencia_proposta"`
	DiaFimVigenciaProposta   Date     `gorm:"column:dia_fim_vigencia_proposta" json:"dia_fim_vigencia_proposta"`
	ObjetoProposta           *string  `gorm:"column:objeto_proposta" json:"objeto_proposta"`
	ItemInvestimento         *string  `gorm:"column:item_investimento" json:"item_investimento"`
	EnviadaMandataria        *string  `gorm:"column:enviada_mandataria" json:"enviada_mandataria"`
	VlGlobalProp             *float64 `gorm:"column:vl_global_prop" json:"vl_global_prop"`
	VlRepasseProp            *float64 `gorm:"column:vl_repasse_prop" json:"vl_repasse_prop"`
	VlContrapartidaProp      *float64 `gorm:"column:vl_contrapartida_prop" json:"vl_contrapartida_prop"`
	NomeSubtipoProposta      *string  `gorm:"column:nome_subtipo_proposta" json:"nome_subtipo_proposta"`
	DescricaoSubtipoProposta *string  `gorm:"column:descricao_subtipo_proposta" json:"descricao_subtipo_proposta"`
	CdAgencia                *string  `gorm:"column:cd_agencia" json:"cd_agencia"`
	CdConta                  *string  `gorm:"column:cd_conta" json:"cd_conta"`
}

func (Proposta) TableName() string { return "proposta" }

// PropostaCancelada maps proposta_cancelada.
type PropostaCancelada struct {
	IDProposta               *int64   `gorm:"column:id_proposta;primaryKey" json:"id_proposta" binding:"required"`
	UFProponente             *string  `gorm:"column:uf_proponente" json:"uf_proponente"`
	MunicProponente          *string  `gorm:"column:munic_proponente" json:"munic_proponente"`
	CodMunicIBGE             *string  `gorm:"column:cod_munic_ibge" json:"cod_munic_ibge"`
	CodOrgaoSup              *string  `gorm:"column:cod_orgao_sup" json:"cod_orgao_sup"`
	DescOrgaoSup             *string  `gorm:"column:desc_orgao_sup" json:"desc_orgao_sup"`
	NaturezaJuridica         *string  `gorm:"column:natureza_juridica" json:"natureza_juridica"`
	NrProposta               *string  `gorm:"column:nr_proposta" json:"nr_proposta"`
	DiaProp                  *int64   `gorm:"column:dia_prop" json:"dia_prop"`
	MesProp                  *int64   `gorm:"column:mes_prop" json:"mes_prop"`
	AnoProp                  *int64   `gorm:"column:ano_prop" json:"ano_prop"`
	DiaProposta              Date     `gorm:"column:dia_proposta" json:"dia_proposta"`
	CodOrgao                 *string  `gorm:"column:cod_orgao" json:"cod_orgao"`
	DescOrgao                *string  `gorm:"column:desc_orgao" json:"desc_orgao"`
	Modalidade               *string  `gorm:"column:modalidade" json:"modalidade"`
	IdentifProponente        *string  `gorm:"column:identif_proponente" json:"identif_proponente"`
	NmProponente             *string  `gorm:"column:nm_proponente" json:"nm_proponente"`
	CEPProponente            *string  `gorm:"column:cep_proponente" json:"cep_proponente"`
	EnderecoProponente       *string  `gorm:"column:endereco_proponente" json:"endereco_proponente"`
	BairroProponente         *string  `gorm:"column:bairro_proponente" json:"bairro_proponente"`
	NmBanco                  *string  `gorm:"column:nm_banco" json:"nm_banco"`
	SituacaoConta            *string  `gorm:"column:situacao_conta" json:"situacao_conta"`
	SituacaoProjetoBasico    *string  `gorm:"column:situacao_projeto_basico" json:"situacao_projeto_basico"`
	SitProposta              *string  `gorm:"column:sit_proposta" json:"sit_proposta"`
	DiaInicVigenciaProposta  Date     `gorm:"column:dia_inic_vigencia_proposta" json:"dia_inic_vigencia_proposta"`
	DiaFimVigenciaProposta   Date     `gorm:"column:dia_fim_vigencia_proposta" json:"dia_fim_vigencia_proposta"`
	ObjetoProposta           *string  `gorm:"column:objeto_proposta" json:"objeto_proposta"`
	ItemInvestimento         *string  `gorm:"column:item_investimento" json:"item_investimento"`
	EnviadaMandataria        *string  `gorm:"column:enviada_mandataria" json:"enviada_mandataria"`
	VlGlobalProp             *float64 `gorm:"column:vl_global_prop" json:"vl_global_prop"`
	VlRepasseProp            *float64 `gorm:"column:vl_repasse_prop" json:"vl_repasse_prop"`
	VlContrapartidaProp      *float64 `gorm:"column:vl_contrapartida_prop" json:"vl_contrapartida_prop"`
	NomeSubtipoProposta      *string  `gorm:"column:nome_subtipo_proposta" json:"nome_subtipo_proposta"`
	DescricaoSubtipoProposta *string  `gorm:"column:descricao_subtipo_proposta" json:"descricao_subtipo_proposta"`
}

func (PropostaCancelada) TableName() string { return "proposta_cancelada" }

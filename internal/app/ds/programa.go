package ds

// Programa maps programa. Связи с proponentes и proposta грузятся из таблиц-связок.
type Programa struct {
	ID                       *int64  `gorm:"column:id" json:"-"`
	IDPrograma               *int64  `gorm:"column:id_programa;primaryKey" json:"id_programa" binding:"required"`
	CodOrgaoSupPrograma      *string `gorm:"column:cod_orgao_sup_programa" json:"cod_orgao_sup_programa"`
	DescOrgaoSupPrograma     *string `gorm:"column:desc_orgao_sup_programa" json:"desc_orgao_sup_programa"`
	CodPrograma              *string `gorm:"column:cod_programa" json:"cod_programa"`
	NomePrograma             *string `gorm:"column:nome_programa" json:"nome_programa"`
	SitPrograma              *string `gorm:"column:sit_programa" json:"sit_programa"`
	DataDisponibilizacao     Date    `gorm:"column:data_disponibilizacao" json:"data_disponibilizacao"`
	AnoDisponibilizacao      *string `gorm:"column:ano_disponibilizacao" json:"ano_disponibilizacao"`
	DtProgIniRecebProp       Date    `gorm:"column:dt_prog_ini_receb_prop" json:"dt_prog_ini_receb_prop"`
	DtProgFimRecebProp       Date    `gorm:"column:dt_prog_fim_receb_prop" json:"dt_prog_fim_receb_prop"`
	DtProgIniEmendaPar       Date    `gorm:"column:dt_prog_ini_emenda_par" json:"dt_prog_ini_emenda_par"`
	DtProgFimEmendaPar       Date    `gorm:"column:dt_prog_fim_emenda_par" json:"dt_prog_fim_emenda_par"`
	DtProgIniBenefEsp        Date    `gorm:"column:dt_prog_ini_benef_esp" json:"dt_prog_ini_benef_esp"`
	DtProgFimBenefEsp        Date    `gorm:"column:dt_prog_fim_benef_esp" json:"dt_prog_fim_benef_esp"`
	ModalidadePrograma       *string `gorm:"column:modalidade_programa" json:"modalidade_programa"`
	NaturezaJuridicaPrograma *string `gorm:"column:natureza_juridica_programa" json:"natureza_juridica_programa"`
	UFPrograma               *string `gorm:"column:uf_programa" json:"uf_programa"`
	AcaoOrcamentaria         *string `gorm:"column:acao_orcamentaria" json:"acao_orcamentaria"`
	NomeSubtipoPrograma      *string `gorm:"column:nome_subtipo_programa" json:"nome_subtipo_programa"`
	DescricaoSubtipoPrograma *string `gorm:"column:descricao_subtipo_programa" json:"descricao_subtipo_programa"`

	Proponentes []ProgramaProponente `gorm:"foreignKey:IDPrograma;references:IDPrograma" json:"-"`
	Propostas   []ProgramaProposta   `gorm:"foreignKey:IDPrograma;references:IDPrograma" json:"-"`
}

func (Programa) TableName() string { return "programa" }

// Proponente maps proponentes.
type Proponente struct {
	IDProponente        *int64  `gorm:"column:id_proponente;primaryKey" json:"id_proponente" binding:"required"`
	IdentifProponente   *string `gorm:"column:identif_proponente" json:"identif_proponente"`
	NmProponente        *string `gorm:"column:nm_proponente" json:"nm_proponente"`
	MunicipioProponente *string `gorm:"column:municipio_proponente" json:"municipio_proponente"`
	UFProponente        *string `gorm:"column:uf_proponente" json:"uf_proponente"`
	EnderecoProponente  *string `gorm:"column:endereco_proponente" json:"endereco_proponente"`
	BairroProponente    *string `gorm:"column:bairro_proponente" json:"bairro_proponente"`
	CEPProponente       *string `gorm:"column:cep_proponente" json:"cep_proponente"`
	EmailProponente     *string `gorm:"column:email_proponente" json:"email_proponente"`
	TelefoneProponente  *string `gorm:"column:telefone_proponente" json:"telefone_proponente"`
	FaxProponente       *string `gorm:"column:fax_proponente" json:"fax_proponente"`
}

func (Proponente) TableName() string { return "proponentes" }

// ProgramaProponente maps programa_proponentes.
type ProgramaProponente struct {
	IDPrograma   int64 `gorm:"column:id_programa;primaryKey;autoIncrement:false"`
	IDProponente int64 `gorm:"column:id_proponente;primaryKey;autoIncrement:false"`
}

func (ProgramaProponente) TableName() string { return "programa_proponentes" }

// ProgramaProposta maps programa_proposta.
type ProgramaProposta struct {
	IDPrograma int64 `gorm:"column:id_programa;primaryKey;autoIncrement:false"`
	IDProposta int64 `gorm:"column:id_proposta;primaryKey;autoIncrement:false"`
}

func (ProgramaProposta) TableName() string { return "programa_proposta" }

type ProponenteRef struct {
	IDProponente *int64 `json:"id_proponente"`
}

type PropostaRef struct {
	IDProposta *int64 `json:"id_proposta"`
}

// ProgramaResponse то, что отдает /programa: колонки программы плюс ссылки на связанные записи
type ProgramaResponse struct {
	IDPrograma               *int64          `json:"id_programa" binding:"required"`
	CodOrgaoSupPrograma      *string         `json:"cod_orgao_sup_programa"`
	DescOrgaoSupPrograma     *string         `json:"desc_orgao_sup_programa"`
	CodPrograma              *string         `json:"cod_programa"`
	NomePrograma             *string         `json:"nome_programa"`
	SitPrograma              *string         `json:"sit_programa"`
	DataDisponibilizacao     Date            `json:"data_disponibilizacao"`
	AnoDisponibilizacao      *string         `json:"ano_disponibilizacao"`
	DtProgIniRecebProp       Date            `json:"dt_prog_ini_receb_prop"`
	DtProgFimRecebProp       Date            `json:"dt_prog_fim_receb_prop"`
	DtProgIniEmendaPar       Date            `json:"dt_prog_ini_emenda_par"`
	DtProgFimEmendaPar       Date            `json:"dt_prog_fim_emenda_par"`
	DtProgIniBenefEsp        Date            `json:"dt_prog_ini_benef_esp"`
	DtProgFimBenefEsp        Date            `json:"dt_prog_fim_benef_esp"`
	ModalidadePrograma       *string         `json:"modalidade_programa"`
	NaturezaJuridicaPrograma *string         `json:"natureza_juridica_programa"`
	UFPrograma               *string         `json:"uf_programa"`
	AcaoOrcamentaria         *string         `json:"acao_orcamentaria"`
	NomeSubtipoPrograma      *string         `json:"nome_subtipo_programa"`
	DescricaoSubtipoPrograma *string         `json:"descricao_subtipo_programa"`
	Proponentes              []ProponenteRef `json:"proponentes"`
	Propostas                []PropostaRef   `json:"propostas"`
}

// ToResponse переводит строку programa в форму ответа
func (p Programa) ToResponse() ProgramaResponse {
	resp := ProgramaResponse{
		IDPrograma:               p.IDPrograma,
		CodOrgaoSupPrograma:      p.CodOrgaoSupPrograma,
		DescOrgaoSupPrograma:     p.DescOrgaoSupPrograma,
		CodPrograma:              p.CodPrograma,
		NomePrograma:             p.NomePrograma,
		SitPrograma:              p.SitPrograma,
		DataDisponibilizacao:     p.DataDisponibilizacao,
		AnoDisponibilizacao:      p.AnoDisponibilizacao,
		DtProgIniRecebProp:       p.DtProgIniRecebProp,
		DtProgFimRecebProp:       p.DtProgFimRecebProp,
		DtProgIniEmendaPar:       p.DtProgIniEmendaPar,
		DtProgFimEmendaPar:       p.DtProgFimEmendaPar,
		DtProgIniBenefEsp:        p.DtProgIniBenefEsp,
		DtProgFimBenefEsp:        p.DtProgFimBenefEsp,
		ModalidadePrograma:       p.ModalidadePrograma,
		NaturezaJuridicaPrograma: p.NaturezaJuridicaPrograma,
		UFPrograma:               p.UFPrograma,
		AcaoOrcamentaria:         p.AcaoOrcamentaria,
		NomeSubtipoPrograma:      p.NomeSubtipoPrograma,
		DescricaoSubtipoPrograma: p.DescricaoSubtipoPrograma,
		Proponentes:              make([]ProponenteRef, 0, len(p.Proponentes)),
		Propostas:                make([]PropostaRef, 0, len(p.Propostas)),
	}
	for _, link := range p.Proponentes {
		id := link.IDProponente
		resp.Proponentes = append(resp.Proponentes, ProponenteRef{IDProponente: &id})
	}
	for _, link := range p.Propostas {
		id := link.IDProposta
		resp.Propostas = append(resp.Propostas, PropostaRef{IDProposta: &id})
	}
	return resp
}

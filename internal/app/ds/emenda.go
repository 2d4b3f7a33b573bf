package ds

// Emenda maps emenda.
type Emenda struct {
	IDProposta                 *int64   `gorm:"column:id_proposta;primaryKey" json:"id_proposta" binding:"required"`
	QualifProponente           *string  `gorm:"column:qualif_proponente" json:"qualif_proponente"`
	CodProgramaEmenda          *string  `gorm:"column:cod_programa_emenda" json:"cod_programa_emenda"`
	NrEmenda                   *int64   `gorm:"column:nr_emenda;primaryKey" json:"nr_emenda"`
	NomeParlamentar            *string  `gorm:"column:nome_parlamentar" json:"nome_parlamentar"`
	BeneficiarioEmenda         *string  `gorm:"column:beneficiario_emenda" json:"beneficiario_emenda"`
	IndImpositivo              *string  `gorm:"column:ind_impositivo" json:"ind_impositivo"`
	TipoParlamentar            *string  `gorm:"column:tipo_parlamentar" json:"tipo_parlamentar"`
	ValorRepassePropostaEmenda *float64 `gorm:"column:valor_repasse_proposta_emenda" json:"valor_repasse_proposta_emenda"`
	ValorRepasseEmenda         *float64 `gorm:"column:valor_repasse_emenda" json:"valor_repasse_emenda"`
}

func (Emenda) TableName() string { return "emenda" }

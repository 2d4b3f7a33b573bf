package ds

import "time"

// PerguntaSelecaoPac maps pergunta_selecao_pac.
type PerguntaSelecaoPac struct {
	IDPerguntaSelecaoPAC *int64  `gorm:"column:id_pergunta_selecao_pac;primaryKey" json:"id_pergunta_selecao_pac" binding:"required"`
	IDPrograma           *int64  `gorm:"column:id_programa" json:"id_programa"`
	PerguntaSelecaoPAC   *string `gorm:"column:pergunta_selecao_pac" json:"pergunta_selecao_pac"`
}

func (PerguntaSelecaoPac) TableName() string { return "pergunta_selecao_pac" }

// PropostaFormalizacaoPac maps proposta_formalizacao_pac.
type PropostaFormalizacaoPac struct {
	IDPropostaSelecaoPAC *int64  `gorm:"column:id_proposta_selecao_pac;primaryKey" json:"id_proposta_selecao_pac" binding:"required"`
	IDProposta           *int64  `gorm:"column:id_proposta;primaryKey" json:"id_proposta"`
	NrReservadoPAC       *string `gorm:"column:nr_reservado_pac" json:"nr_reservado_pac"`
}

func (PropostaFormalizacaoPac) TableName() string { return "proposta_formalizacao_pac" }

// PropostaSelecaoPac maps proposta_selecao_pac.
type PropostaSelecaoPac struct {
	IDPropostaSelecaoPAC            *int64     `gorm:"column:id_proposta_selecao_pac;primaryKey" json:"id_proposta_selecao_pac" binding:"required"`
	IDPrograma                      *int64     `gorm:"column:id_programa" json:"id_programa"`
	IDProponente                    *int64     `gorm:"column:id_proponente" json:"id_proponente"`
	NrPropostaSelecaoPAC            *string    `gorm:"column:nr_proposta_selecao_pac" json:"nr_proposta_selecao_pac"`
	DataCadastroPropostaSelecaoPAC  *time.Time `gorm:"column:data_cadastro_proposta_selecao_pac" json:"data_cadastro_proposta_selecao_pac"`
	DataEnvioPropostaSelecaoPAC     *time.Time `gorm:"column:data_envio_proposta_selecao_pac" json:"data_envio_proposta_selecao_pac"`
	ObjetoPropostaSelecaoPAC        *string    `gorm:"column:objeto_proposta_selecao_pac" json:"objeto_proposta_selecao_pac"`
	SituacaoPropostaSelecaoPAC      *string    `gorm:"column:situacao_proposta_selecao_pac" json:"situacao_proposta_selecao_pac"`
	ValorTotalPropostaSelecaoPAC    *float64   `gorm:"column:valor_total_proposta_selecao_pac" json:"valor_total_proposta_selecao_pac"`
	JustificativaPropostaSelecaoPAC *string    `gorm:"column:justificativa_proposta_selecao_pac" json:"justificativa_proposta_selecao_pac"`
	TemAnexoPropostaSelecaoPAC      *string    `gorm:"column:tem_anexo_proposta_selecao_pac" json:"tem_anexo_proposta_selecao_pac"`
}

func (PropostaSelecaoPac) TableName() string { return "proposta_selecao_pac" }

// RespostaSelecaoPac maps resposta_selecao_pac.
type RespostaSelecaoPac struct {
	IDPerguntaSelecaoPAC *int64  `gorm:"column:id_pergunta_selecao_pac;primaryKey" json:"id_pergunta_selecao_pac" binding:"required"`
	IDPropostaSelecaoPAC *int64  `gorm:"column:id_proposta_selecao_pac;primaryKey" json:"id_proposta_selecao_pac"`
	RespostaSelecaoPAC   *string `gorm:"column:resposta_selecao_pac" json:"resposta_selecao_pac"`
}

func (RespostaSelecaoPac) TableName() string { return "resposta_selecao_pac" }

package handler

import (
	"api-transferegov/internal/app/ds"
	"api-transferegov/internal/app/filter"
)

func emendaRoutes() []Route {
	return []Route{
		Entity[ds.Emenda, ds.Emenda]{
			Path:        "/emenda",
			Tag:         "Emenda",
			Description: "Retorna uma Lista Paginada dos dados de Emendas.",
			Order:       "id_proposta, nr_emenda",
			Fields: []filter.Field{
				{Param: "id_proposta", Type: filter.Int, Match: filter.Exact, Description: "Código Sequencial do Sistema para uma Proposta"},
				{Param: "qualif_proponente", Type: filter.String, Match: filter.Contains, Description: "Qualificação do proponente"},
				{Param: "cod_programa_emenda", Type: filter.String, Match: filter.Exact, Description: "Chave que identifica o programa composta por: (Cód.Órgão+Ano+Cód.Sequencial do Sistema)"},
				{Param: "nr_emenda", Type: filter.Int, Match: filter.Exact, Description: "Número da Emenda Parlamentar"},
				{Param: "nome_parlamentar", Type: filter.String, Match: filter.Contains, Description: "Nome do Parlamentar"},
				{Param: "beneficiario_emenda", Type: filter.String, Match: filter.Exact, Description: "CNPJ do Proponente"},
				{Param: "ind_impositivo", Type: filter.String, Match: filter.Exact, Enum: simNao, Description: "Indicativo de Orçamento Impositivo (Tipo Parlamentar igual a INDIVIDUAL + Ano de Cadastro da Proposta >= 2014)"},
				{Param: "tipo_parlamentar", Type: filter.String, Match: filter.Exact, Enum: []string{"INDIVIDUAL", "COMISSAO", "BANCADA"}, Description: "Tipo do Parlamentar"},
				{Param: "valor_repasse_proposta_emenda", Type: filter.Float, Match: filter.Exact, Min: filter.GE(0), Description: "Valor da Emenda cadastrada na proposta"},
				{Param: "valor_repasse_emenda", Type: filter.Float, Match: filter.Exact, Min: filter.GE(0), Description: "Valor da Emenda assinada"},
			},
		},
	}
}

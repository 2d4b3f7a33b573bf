package handler

import (
	"api-transferegov/internal/app/ds"
	"api-transferegov/internal/app/filter"
)

func pacRoutes() []Route {
	return []Route{
		Entity[ds.PerguntaSelecaoPac, ds.PerguntaSelecaoPac]{
			Path:        "/pergunta_selecao_pac",
			Tag:         "PAC",
			Description: "Retorna uma Lista Paginada dos dados das Perguntas Selecionadas do PAC.",
			Order:       "id_pergunta_selecao_pac",
			Fields: []filter.Field{
				{Param: "id_pergunta_selecao_pac", Type: filter.Int, Match: filter.Exact, Min: filter.GT(0), Description: "Identificador único da pergunta do programa Novo PAC"},
				{Param: "id_programa", Type: filter.Int, Match: filter.Exact, Min: filter.GT(0), Description: "Código Sequencial do Sistema para um Programa"},
				{Param: "pergunta_selecao_pac", Type: filter.String, Match: filter.Contains, Description: "Campo para definição da pergunta do programa Novo PAC"},
			},
		},
		Entity[ds.PropostaFormalizacaoPac, ds.PropostaFormalizacaoPac]{
			Path:        "/proposta_formalizacao_pac",
			Tag:         "PAC",
			Description: "Retorna uma Lista Paginada dos dados das Propostas de Formalização do PAC.",
			Order:       "id_proposta_selecao_pac, id_proposta",
			Fields: []filter.Field{
				{Param: "id_proposta_selecao_pac", Type: filter.Int, Match: filter.Exact, Min: filter.GT(0), Description: "Identificador único da Proposta do Novo PAC"},
				{Param: "id_proposta", Type: filter.Int, Match: filter.Exact, Min: filter.GT(0), Description: "Identificador único da proposta"},
				{Param: "nr_reservado_pac", Type: filter.String, Match: filter.Contains, Description: "Número reservado do PAC"},
			},
		},
		Entity[ds.PropostaSelecaoPac, ds.PropostaSelecaoPac]{
			Path:        "/proposta_selecao_pac",
			Tag:         "PAC",
			Description: "Retorna uma Lista Paginada dos dados das Propostas Selecionadas do PAC.",
			Order:       "id_proposta_selecao_pac",
			Fields: []filter.Field{
				{Param: "id_proposta_selecao_pac", Type: filter.Int, Match: filter.Exact, Min: filter.GT(0), Description: "Identificador único da Proposta do Novo PAC"},
				{Param: "id_programa", Type: filter.Int, Match: filter.Exact, Min: filter.GT(0), Description: "Código Sequencial do Sistema para um Programa"},
				{Param: "id_proponente", Type: filter.Int, Match: filter.Exact, Min: filter.GT(0), Description: "Identificador único do proponente"},
				{Param: "nr_proposta_selecao_pac", Type: filter.String, Match: filter.Exact, Description: "Número da Proposta do Novo PAC"},
				{Param: "data_cadastro_proposta_selecao_pac", Type: filter.Date, Match: filter.OnDate, Description: "Data de Cadastro da Proposta do Novo PAC"},
				{Param: "data_envio_proposta_selecao_pac", Type: filter.Date, Match: filter.OnDate, Description: "Data de Envio da Proposta do Novo PAC"},
				{Param: "objeto_proposta_selecao_pac", Type: filter.String, Match: filter.Contains, Description: "Objeto da Proposta do Novo PAC"},
				{Param: "situacao_proposta_selecao_pac", Type: filter.String, Match: filter.Contains, Description: "Situação da Proposta do Novo PAC"},
				{Param: "valor_total_proposta_selecao_pac", Type: filter.Float, Match: filter.Exact, Description: "Valor Total da Proposta do Novo PAC"},
				{Param: "justificativa_proposta_selecao_pac", Type: filter.String, Match: filter.Contains, Description: "Justificativa da Proposta do Novo PAC"},
				{Param: "tem_anexo_proposta_selecao_pac", Type: filter.String, Match: filter.Exact, Enum: simNao, Description: "Indica se a Proposta do Novo PAC tem anexos"},
			},
		},
		Entity[ds.RespostaSelecaoPac, ds.RespostaSelecaoPac]{
			Path:        "/resposta_selecao_pac",
			Tag:         "PAC",
			Description: "Retorna uma Lista Paginada dos dados das Respostas Selecionadas do PAC.",
			Order:       "id_pergunta_selecao_pac, id_proposta_selecao_pac",
			Fields: []filter.Field{
				{Param: "id_pergunta_selecao_pac", Type: filter.Int, Match: filter.Exact, Description: "Identificador único da pergunta do programa Novo PAC"},
				{Param: "id_proposta_selecao_pac", Type: filter.Int, Match: filter.Exact, Description: "Identificador único da Proposta do Novo PAC"},
				{Param: "resposta_selecao_pac", Type: filter.String, Match: filter.Contains, Description: "Resposta da pergunta da Proposta do Novo PAC"},
			},
		},
	}
}

package handler

import (
	"api-transferegov/internal/app/ds"
	"api-transferegov/internal/app/filter"
)

func planoTrabalhoRoutes() []Route {
	return []Route{
		Entity[ds.EtapaCronoFisico, ds.EtapaCronoFisico]{
			Path:        "/etapa_crono_fisico",
			Tag:         "Plano de Trabalho",
			Description: "Retorna uma Lista Paginada dos dados do Cronograma Físico de Etapas.",
			Order:       "id_etapa",
			Fields: []filter.Field{
				{Param: "id_etapa", Type: filter.Int, Match: filter.Exact, Min: filter.GT(0), Description: "Código Sequencial do Sistema para uma Etapa"},
				{Param: "id_meta", Type: filter.Int, Match: filter.Exact, Min: filter.GT(0), Description: "Código Sequencial do Sistema para uma Meta"},
				{Param: "nr_etapa", Type: filter.Int, Match: filter.Exact, Min: filter.GT(0), Description: "Número da Etapa gerada pelo Sistema"},
				{Param: "desc_etapa", Type: filter.String, Match: filter.Contains, Description: "Especificação da etapa vinculada a meta do cronograma físico"},
				{Param: "data_inicio_etapa", Type: filter.Date, Match: filter.OnDate, Description: "Data de início prevista para execução da etapa"},
				{Param: "data_fim_etapa", Type: filter.Date, Match: filter.OnDate, Description: "Data fim prevista para execução da etapa"},
				{Param: "uf_etapa", Type: filter.String, Match: filter.Contains, Enum: ufs, Description: "UF cadastrada para a Etapa"},
				{Param: "municipio_etapa", Type: filter.String, Match: filter.Contains, Description: "Município cadastrado para a Etapa"},
			},
		},
		Entity[ds.MetaCronoFisico, ds.MetaCronoFisico]{
			Path:        "/meta_crono_fisico",
			Tag:         "Plano de Trabalho",
			Description: "Retorna uma Lista Paginada dos dados do Cronograma Físico de Metas.",
			Order:       "id_meta",
			Fields: []filter.Field{
				{Param: "id_meta", Type: filter.Int, Match: filter.Exact, Min: filter.GT(0), Description: "Código Sequencial do Sistema para uma Meta"},
				{Param: "id_proposta", Type: filter.Int, Match: filter.Exact, Min: filter.GT(0), Description: "Código Sequencial do Sistema para uma Proposta"},
				{Param: "nr_convenio", Type: filter.Int, Match: filter.Exact, Min: filter.GT(0), Description: "Número gerado pelo Siconv. Possui faixa de numeração reservada que vai de 700000 a 999999"},
				{Param: "cod_programa", Type: filter.String, Match: filter.Contains, Description: "Chave que identifica o programa composta por: (Cód.Órgão+Ano+Cód.Sequencial do Sistema)"},
				{Param: "nome_programa", Type: filter.String, Match: filter.Contains, Description: "Descrição do Programa de Governo"},
				{Param: "nr_meta", Type: filter.String, Match: filter.Contains, Description: "Número da Meta gerada pelo Sistema"},
				{Param: "tipo_meta", Type: filter.String, Match: filter.Exact, Enum: []string{"NORMAL", "APLICAÇÃO"}, Description: "Tipo da Meta"},
				{Param: "desc_meta", Type: filter.String, Match: filter.Contains, Description: "Especificação da Meta do Cronograma Físico"},
				{Param: "data_inicio_meta", Type: filter.Date, Match: filter.OnDate, Description: "Data de início da Meta"},
				{Param: "data_fim_meta", Type: filter.Date, Match: filter.OnDate, Description: "Data de término da Meta"},
				{Param: "uf_meta", Type: filter.String, Match: filter.Contains, Enum: ufs, Description: "UF cadastrada para a Meta"},
				{Param: "municipio_meta", Type: filter.String, Match: filter.Contains, Description: "Município cadastrado para a Meta"},
			},
		},
		Entity[ds.PlanoAplicacaoDetalhado, ds.PlanoAplicacaoDetalhado]{
			Path:        "/plano_aplicacao_detalhado",
			Tag:         "Plano de Trabalho",
			Description: "Retorna uma Lista Paginada dos dados do Plano de Aplicação Detalhado.",
			Order:       "id_item_pad",
			Fields: []filter.Field{
				{Param: "id_proposta", Type: filter.Int, Match: filter.Exact, Description: "Código Sequencial do Sistema para uma Proposta"},
				{Param: "sigla", Type: filter.String, Match: filter.Exact, Enum: ufs, Description: "UF cadastrada referente a localidade do item"},
				{Param: "municipio", Type: filter.String, Match: filter.Contains, Description: "Município cadastrado referente a localidade do item"},
				{Param: "natureza_aquisicao", Type: filter.Int, Match: filter.Exact, Min: filter.GE(1), Max: filter.LE(3), Description: "Código de natureza de aquisição"},
				{Param: "descricao_item", Type: filter.String, Match: filter.Contains, Description: "Descrição do Item"},
				{Param: "cep_item", Type: filter.String, Match: filter.Exact, Description: "CEP cadastrado referente a localidade do item"},
				{Param: "endereco_item", Type: filter.String, Match: filter.Contains, Description: "Endereço cadastrado referente a localidade do item"},
				{Param: "tipo_despesa_item", Type: filter.String, Match: filter.Exact, Enum: []string{"SERVICO", "BEM", "OUTROS", "TRIBUTO", "OBRA", "DESPESA_ADMINISTRATIVA"}, Description: "Tipo da Despesa"},
				{Param: "natureza_despesa", Type: filter.String, Match: filter.Exact, Description: "Natureza da Despesa referente ao item"},
				{Param: "sit_item", Type: filter.String, Match: filter.Exact, Enum: []string{"APROVADO", "EM_COMPLEMENTACAO", ""}, Description: "Situação atual do Item"},
				{Param: "cod_natureza_despesa", Type: filter.String, Match: filter.Exact, Description: "Código da natureza da despesa"},
				{Param: "qtd_item", Type: filter.Int, Match: filter.Exact, Description: "Quantidade de Itens"},
				{Param: "valor_unitario_item", Type: filter.Float, Match: filter.Exact, Min: filter.GE(0), Description: "Valor unitário do item"},
				{Param: "valor_total_item", Type: filter.Float, Match: filter.Exact, Min: filter.GE(0), Description: "Valor total do item"},
				{Param: "id_item_pad", Type: filter.Int, Match: filter.Exact, Description: "Identificador único do item do plano de aplicação"},
			},
		},
	}
}

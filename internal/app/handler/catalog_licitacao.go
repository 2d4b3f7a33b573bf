package handler

import (
	"api-transferegov/internal/app/ds"
	"api-transferegov/internal/app/filter"
)

func licitacaoRoutes() []Route {
	return []Route{
		Entity[ds.Contrato, ds.Contrato]{
			Path:        "/contrato",
			Tag:         "Licitação/Contrato",
			Description: "Retorna uma Lista Paginada dos dados de Contrato.",
			Order:       "id_licitacao, nr_contrato",
			Fields: []filter.Field{
				{Param: "id_licitacao", Type: filter.Int, Match: filter.Exact, Min: filter.GT(0), Description: "Identificador único da tabela licitação"},
				{Param: "nr_contrato", Type: filter.Int, Match: filter.Exact, Min: filter.GT(0), Description: "Número do contrato, gerado sequencialmente pelo Sistema"},
				{Param: "data_publicacao_contrato", Type: filter.String, Match: filter.Contains, Description: "Data da publicação do contrato"},
				{Param: "data_assinatura_contrato", Type: filter.Date, Match: filter.OnDate, Description: "Data da assinatura do contrato"},
				{Param: "data_inicio_vigencia_contrato", Type: filter.Date, Match: filter.OnDate, Description: "Data de início de vigência do contrato"},
				{Param: "data_fim_vigencia_contrato", Type: filter.Date, Match: filter.OnDate, Description: "Data fim de vigência do contrato"},
				{Param: "objeto_contrato", Type: filter.String, Match: filter.Contains, Description: "Objeto do contrato"},
				{Param: "tipo_aquisicao_contrato", Type: filter.String, Match: filter.Exact, Enum: []string{"SERVICO_DE_ENGENHARIA", "SERVICO", "MATERIAL_SERVICO", "OBRAS", "MATERIAL"}, Description: "Tipo da aquisição envolvida no contrato"},
				{Param: "valor_global_contrato", Type: filter.Float, Match: filter.Exact, Min: filter.GT(0), Description: "Valor global do contrato"},
				{Param: "id_fornecedor_contrato", Type: filter.String, Match: filter.Contains, Description: "Identificação do fornecedor, podendo ser o número do CNPJ, número do CPF ou número da Inscrição Genérica"},
				{Param: "nome_fornecedor_contrato", Type: filter.String, Match: filter.Contains, Description: "Razão Social do fornecedor"},
			},
		},
		Entity[ds.Licitacao, ds.Licitacao]{
			Path:        "/licitacao",
			Tag:         "Licitação/Contrato",
			Description: "Retorna uma Lista Paginada dos dados de Licitação.",
			Order:       "id_licitacao",
			Fields: []filter.Field{
				{Param: "id_licitacao", Type: filter.Int, Match: filter.Exact, Min: filter.GT(0), Description: "Identificador único da licitação"},
				{Param: "nr_convenio", Type: filter.Int, Match: filter.Exact, Min: filter.GT(0), Description: "Número gerado pelo Siconv. Possui faixa de numeração reservada que vai de 700000 a 999999"},
				{Param: "nr_licitacao", Type: filter.String, Match: filter.Contains, Description: "Número do Processo de Execução"},
				{Param: "modalidade_licitacao", Type: filter.String, Match: filter.Exact, Enum: []string{"Convite", "Tomada de Preços", "Concorrência", "Concurso", "Pregão"}, Description: "Modalidade da Licitação"},
				{Param: "tp_processo_compra", Type: filter.String, Match: filter.Exact, Enum: []string{"Dispensa de Licitação", "Inexigibilidade", "Licitação", "Cotação Prévia", "Pesquisa de Mercado"}, Description: "Processo de Compras"},
				{Param: "tipo_licitacao", Type: filter.String, Match: filter.Contains, Description: "Tipo da Licitação"},
				{Param: "nr_processo_licitacao", Type: filter.String, Match: filter.Contains, Description: "Número do Processo informado pelo usuário"},
				{Param: "data_publicacao_licitacao", Type: filter.Date, Match: filter.OnDate, Description: "Data de publicação do Processo de Execução"},
				{Param: "data_abertura_licitacao", Type: filter.Date, Match: filter.OnDate, Description: "Data de abertura do Processo de Execução"},
				{Param: "data_encerramento_licitacao", Type: filter.Date, Match: filter.OnDate, Description: "Data de encerramento do Processo de Execução"},
				{Param: "data_homologacao_licitacao", Type: filter.Date, Match: filter.OnDate, Description: "Data de homologação do Processo de Execução"},
				{Param: "status_licitacao", Type: filter.String, Match: filter.Exact, Enum: []string{"Concluído", "Em Elaboração"}, Description: "Status da Licitação"},
				{Param: "situacao_aceite_processo_execu", Type: filter.String, Match: filter.Contains, Description: "Situação do aceite do processo de execução"},
				{Param: "sistema_origem", Type: filter.String, Match: filter.Contains, Description: "Nome do Sistema de Origem da Licitação"},
				{Param: "situacao_sistema", Type: filter.String, Match: filter.Contains, Description: "Descrição da Situação da Licitação no Sistema de Compras Externo"},
				{Param: "valor_licitacao", Type: filter.Float, Match: filter.Exact, Min: filter.GT(0), Description: "Valor da Licitação"},
			},
		},
	}
}

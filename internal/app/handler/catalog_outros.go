package handler

import (
	"api-transferegov/internal/app/ds"
	"api-transferegov/internal/app/filter"
)

func outrosRoutes() []Route {
	return []Route{
		Entity[ds.CoordenadasObra, ds.CoordenadasObra]{
			Path:        "/coordenadas-obra",
			Tag:         "Outros",
			Description: "Retorna uma Lista Paginada das Coordenadas das Obras.",
			Order:       "id_proposta",
			Fields: []filter.Field{
				{Param: "id_proposta", Type: filter.Int, Match: filter.Exact, Min: filter.GE(1), Description: "Código do Sistema para uma Proposta"},
				{Param: "nome_projeto_cadastro_obra", Type: filter.String, Match: filter.Contains, Description: "Nome do projeto cadastrado"},
				{Param: "latitude_cadastro_obra", Type: filter.Float, Match: filter.Exact, Description: "Latitude do local da obra"},
				{Param: "longitude_cadastro_obra", Type: filter.Float, Match: filter.Exact, Description: "Longitude do local da obra"},
			},
		},
		Entity[ds.HistoricoProjetoBasico, ds.HistoricoProjetoBasico]{
			Path:        "/historico-projeto-basico",
			Tag:         "Outros",
			Description: "Retorna uma Lista Paginada dos dados do Histórico de Projeto Básico.",
			Order:       "id_proposta, data_hist_pb_tr",
			Fields: []filter.Field{
				{Param: "id_proposta", Type: filter.Int, Match: filter.Exact, Description: "Código da Proposta"},
				{Param: "data_hist_pb_tr", Type: filter.Date, Match: filter.OnDate, Description: "Data de registro (AAAA-MM-DD)"},
				{Param: "situacao_hist_pb_tr", Type: filter.String, Match: filter.Exact, Enum: []string{"Aceito / Fase de Análise", "Complementação Solicitada", "Em Análise", "Em Elaboracao", "Em Complementacao", "Enviada para Análise", "Homologada", "Rejeitada"}, Description: "Situação do acompanhamento"},
				{Param: "evento_hist_pb_tr", Type: filter.String, Match: filter.Contains, Description: "Indicador do Evento"},
				{Param: "versao_doc_pb_tr", Type: filter.Int, Match: filter.Exact, Min: filter.GE(0), Description: "Número da Versão usada no sistema de versionamento"},
			},
		},
		Entity[ds.ResumoFisicoFinanceiro, ds.ResumoFisicoFinanceiro]{
			Path:        "/resumo-fisico-financeiro",
			Tag:         "Outros",
			Description: "Retorna uma Lista Paginada dos dados do Resumo Físico e Financeiro.",
			Order:       "id_proposta",
			Fields: []filter.Field{
				{Param: "id_proposta", Type: filter.Int, Match: filter.Exact, Description: "Código da Proposta"},
				{Param: "valor_total_resumo_fisico_financeiro", Type: filter.Float, Match: filter.Exact, Min: filter.GE(0), Description: "Valor Total do Resumo Físico e Financeiro"},
				{Param: "valor_realizado_resumo_fisico_financeiro", Type: filter.Float, Match: filter.Exact, Min: filter.GE(0), Description: "Valor Realizado do Resumo Físico e Financeiro"},
				{Param: "percentual_execucao_resumo_fisico_financeiro", Type: filter.Float, Match: filter.Exact, Min: filter.GE(0), Max: filter.LE(100), Description: "Percentual de Execução do Resumo Físico e Financeiro"},
			},
		},
		Entity[ds.SolicitacaoAjustePt, ds.SolicitacaoAjustePt]{
			Path:        "/solicitacao-ajuste-pt",
			Tag:         "Outros",
			Description: "Retorna uma Lista Paginada dos dados de Solicitações de Ajuste do Plano de Trabalho.",
			Order:       "id_ajuste_pt",
			Fields: []filter.Field{
				{Param: "id_ajuste_pt", Type: filter.Int, Match: filter.Exact, Min: filter.GE(1), Description: "Identificador único do ajuste do plano de trabalho"},
				{Param: "id_proposta", Type: filter.Int, Match: filter.Exact, Min: filter.GE(1), Description: "Identificador da proposta associada ao ajuste"},
				{Param: "nr_ajuste_pt", Type: filter.String, Match: filter.Exact, Description: "Número do ajuste do plano de trabalho no formato sequencial/ano"},
				{Param: "data_solicitacao_ajuste_pt", Type: filter.Date, Match: filter.OnDate, Description: "Data da solicitação do ajuste do plano de trabalho (AAAA-MM-DD)"},
				{Param: "situacao_solicitacao_ajuste_pt", Type: filter.String, Match: filter.Exact, Enum: []string{"Ajustado (aguardando aprovação)", "Ajustado e Aprovado", "Autorizado (aguardando execução do ajuste)", "Cadastrado", "Em Análise (aguardando parecer)", "Não Autorizado", "Parecer Emitido"}, Description: "Situação atual da solicitação de ajuste"},
			},
		},
		Entity[ds.SolicitacaoRendimentoAplicacao, ds.SolicitacaoRendimentoAplicacao]{
			Path:        "/solicitacao-rendimento-aplicacao",
			Tag:         "Outros",
			Description: "Retorna uma Lista Paginada das Solicitações de Uso de Rendimento de Aplicação.",
			Order:       "id_solicitacao_rend_aplicacao",
			Fields: []filter.Field{
				{Param: "id_solicitacao_rend_aplicacao", Type: filter.Int, Match: filter.Exact, Min: filter.GE(1), Description: "Identificador único do registro de solicitação de uso de rendimento de aplicação."},
				{Param: "nr_convenio", Type: filter.Int, Match: filter.Exact, Min: filter.GE(1), Description: "Número gerado pelo Siconv. Faixa reservada: 700000 a 999999"},
				{Param: "nr_solicitacao_rend_aplicacao", Type: filter.Int, Match: filter.Exact, Description: "Número único da solicitação por instrumento."},
				{Param: "status_solicitacao_rend_aplicacao", Type: filter.String, Match: filter.Exact, Enum: []string{"Aguardando Análise do Concedente", "Autorizada (Aguardando ajuste PT)", "Cadastrado", "Cancelado pelo Convenente", "Em Análise pelo Concedente", "Em Complementação pelo Convenente", "Enviado para o SIAFI", "Pendente de Envio ao SIAFI", "PT Ajustado (aguardando aprovação do Concedente)", "PT Ajustado e Aprovado (Aguardando atualização Agendador)", "PT Ajustado e Aprovado", "PT Ajustado e Pendente de Envio ao SIAFI", "PT Reprovado e Cancelado", "Recusada pelo Concedente"}, Description: "Situação da solicitação de uso do rendimento de aplicação."},
				{Param: "data_solicitacao_rend_aplicacao", Type: filter.Date, Match: filter.OnDate, Description: "Data da solicitação de uso de rendimento de aplicação (AAAA-MM-DD)"},
				{Param: "valor_solicitacao_rend_aplicacao", Type: filter.Float, Match: filter.Exact, Description: "Valor da solicitação de uso de rendimento de aplicação."},
				{Param: "valor_aprovado_solicitacao_rend_aplicacao", Type: filter.Float, Match: filter.Exact, Description: "Valor aprovado pelo Concedente para uso do rendimento de aplicação."},
			},
		},
		Entity[ds.SolicitacaoAlteracao, ds.SolicitacaoAlteracao]{
			Path:        "/solicitacao-alteracao",
			Tag:         "Solicitação de Alteração",
			Description: "Retorna uma Lista Paginada dos dados de Solicitações de Alteração.",
			Order:       "id_solicitacao",
			Fields: []filter.Field{
				{Param: "id_solicitacao", Type: filter.Int, Match: filter.Exact, Min: filter.GT(0), Description: "Identificador único da Solicitação de Alteração"},
				{Param: "nr_convenio", Type: filter.Int, Match: filter.Exact, Min: filter.GT(0), Description: "Número do Instrumento gerado pelo Siconv"},
				{Param: "nr_solicitacao", Type: filter.String, Match: filter.Exact, Description: "Número da Solicitação de Alteração"},
				{Param: "situacao_solicitacao", Type: filter.String, Match: filter.Exact, Enum: []string{"ACEITA", "RECUSADA", "EM_ANALISE", "CADASTRADA"}, Description: "Situação da Solicitação de Alteração"},
				{Param: "objeto_solicitacao", Type: filter.String, Match: filter.Contains, Description: "Objeto da Solicitação de Alteração"},
				{Param: "data_solicitacao", Type: filter.Date, Match: filter.OnDate, Description: "Data da Solicitação de Alteração (AAAA-MM-DD)"},
			},
		},
	}
}

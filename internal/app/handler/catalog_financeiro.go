package handler

import (
	"api-transferegov/internal/app/ds"
	"api-transferegov/internal/app/filter"
)

func financeiroRoutes() []Route {
	return []Route{
		Entity[ds.CronogramaDesembolso, ds.CronogramaDesembolso]{
			Path:        "/cronograma_desembolso",
			Tag:         "Desembolso",
			Description: "Retorna uma Lista Paginada dos dados do Cronograma de Desembolso.",
			Order:       "id_proposta, nr_parcela_crono_desembolso",
			Fields: []filter.Field{
				{Param: "id_proposta", Type: filter.Int, Match: filter.Exact, Min: filter.GT(0), Description: "Código Sequencial do Sistema para uma Proposta"},
				{Param: "nr_convenio", Type: filter.Int, Match: filter.Exact, Min: filter.GT(0), Description: "Número gerado pelo Siconv. Possui faixa de numeração reservada que vai de 700000 a 999999"},
				{Param: "nr_parcela_crono_desembolso", Type: filter.Int, Match: filter.Exact, Min: filter.GT(0), Description: "Número da Parcela do Desembolso"},
				{Param: "mes_crono_desembolso", Type: filter.Int, Match: filter.Exact, Min: filter.GE(1), Max: filter.LE(12), Description: "Mês do Desembolso"},
				{Param: "ano_crono_desembolso", Type: filter.Int, Match: filter.Exact, Min: filter.GT(0), Description: "Ano do Desembolso"},
				{Param: "tipo_resp_crono_desembolso", Type: filter.String, Match: filter.Contains, Enum: []string{"Concedente", "Convenente", "Rendimento de Aplicação"}, Description: "Tipo do Responsável definido no Cronograma de Desembolsos."},
			},
		},
		Entity[ds.DesbloqueioCr, ds.DesbloqueioCr]{
			Path:        "/desbloqueio-cr",
			Tag:         "Desembolso",
			Description: "Retorna uma Lista Paginada dos dados de Desbloqueio de Contrato de Repasse.",
			Order:       "nr_convenio, nr_ob",
			Fields: []filter.Field{
				{Param: "nr_convenio", Type: filter.Int, Match: filter.Exact, Description: "Número do Convênio"},
				{Param: "nr_ob", Type: filter.String, Match: filter.Exact, Description: "Número da OB"},
				{Param: "data_cadastro", Type: filter.Date, Match: filter.OnDate, Description: "Data de Cadastro"},
				{Param: "data_envio", Type: filter.Date, Match: filter.OnDate, Description: "Data de envio da solicitação de desbloqueio do recurso"},
				{Param: "tipo_recurso_desbloqueio", Type: filter.String, Match: filter.Exact, Description: "Tipo do Recurso"},
				{Param: "vl_total_desbloqueio", Type: filter.Float, Match: filter.Exact, Description: "Valor total de desbloqueio para o Contrato de Repasse"},
				{Param: "vl_desbloqueado", Type: filter.Float, Match: filter.Exact, Description: "Valor desbloqueado para o Contrato de Repasse"},
				{Param: "vl_bloqueado", Type: filter.Float, Match: filter.Exact, Description: "Valor bloqueado para o Contrato de Repasse"},
			},
		},
		Entity[ds.Desembolso, ds.Desembolso]{
			Path:        "/desembolso",
			Tag:         "Desembolso",
			Description: "Retorna uma Lista Paginada dos dados de Desembolso.",
			Order:       "id_desembolso",
			Fields: []filter.Field{
				{Param: "id_desembolso", Type: filter.Int, Match: filter.Exact, Min: filter.GT(0), Description: "Identificador único gerado pelo Sistema para o Desembolso"},
				{Param: "nr_convenio", Type: filter.Int, Match: filter.Exact, Min: filter.GT(0), Description: "Número gerado pelo Siconv. Possui faixa de numeração reservada que vai de 700000 a 999999"},
				{Param: "dt_ult_desembolso", Type: filter.Date, Match: filter.OnDate, Description: "Data da última Ordem Bancária gerada (AAAA-MM-DD)"},
				{Param: "data_desembolso", Type: filter.Date, Match: filter.OnDate, Description: "Data da Ordem Bancária (AAAA-MM-DD)"},
				{Param: "ano_desembolso", Type: filter.Int, Match: filter.Exact, Min: filter.GT(1900), Max: filter.LT(2100), Description: "Ano da Ordem Bancária"},
				{Param: "mes_desembolso", Type: filter.Int, Match: filter.Exact, Min: filter.GE(1), Max: filter.LE(12), Description: "Mês da Ordem Bancária"},
				{Param: "nr_siafi", Type: filter.String, Match: filter.Contains, Description: "Número do Documento no SIAFI"},
				{Param: "ug_emitente_dh", Type: filter.String, Match: filter.Contains, Description: "Código da Unidade Gestora responsável pela emissão do documento."},
				{Param: "observacao_dh", Type: filter.String, Match: filter.Contains, Description: "Observação a respeito do documento hábil."},
				{Param: "vl_desembolsado", Type: filter.Float, Match: filter.Exact, Min: filter.GT(0), Description: "Valor disponibilizado pelo Governo Federal para a conta do instrumento"},
			},
		},
		Entity[ds.Empenho, ds.Empenho]{
			Path:        "/empenho",
			Tag:         "Empenho",
			Description: "Retorna uma Lista Paginada dos dados de Empenho.",
			Order:       "id_empenho",
			Preload:     []string{"Desembolsos"},
			Fields: []filter.Field{
				{Param: "id_empenho", Type: filter.Int, Match: filter.Exact, Min: filter.GT(0), Description: "Identificador único gerado pelo Sistema para o Empenho"},
				{Param: "nr_convenio", Type: filter.Int, Match: filter.Exact, Min: filter.GT(0), Description: "Número gerado pelo Siconv. Possui faixa de numeração reservada que vai de 700000 a 999999"},
				{Param: "nr_empenho", Type: filter.String, Match: filter.Contains, Description: "Número da Nota de Empenho"},
				{Param: "tipo_nota", Type: filter.String, Match: filter.Contains, Description: "Código do Tipo de Empenho"},
				{Param: "desc_tipo_nota", Type: filter.String, Match: filter.Contains, Description: "Descrição do Tipo de Empenho"},
				{Param: "data_emissao", Type: filter.Date, Match: filter.OnDate, Description: "Data de emissão do Empenho (AAAA-MM-DD)"},
				{Param: "cod_situacao_empenho", Type: filter.String, Match: filter.Contains, Description: "Código da Situação atual do empenho"},
				{Param: "desc_situacao_empenho", Type: filter.String, Match: filter.Contains, Description: "Descrição da Situação atual do empenho"},
				{Param: "ug_emitente", Type: filter.String, Match: filter.Contains, Description: "Unidade Gestora Emitente"},
				{Param: "ug_responsavel", Type: filter.String, Match: filter.Contains, Description: "Unidade Gestora Responsável"},
				{Param: "fonte_recurso", Type: filter.String, Match: filter.Contains, Description: "Fonte de Recurso da Nota de Empenho"},
				{Param: "natureza_despesa", Type: filter.String, Match: filter.Contains, Description: "Código da natureza de despesa"},
				{Param: "plano_interno", Type: filter.String, Match: filter.Contains, Description: "Plano Interno"},
				{Param: "ptres", Type: filter.String, Match: filter.Contains, Description: "Programa de Trabalho Resumido"},
				{Param: "valor_empenho", Type: filter.Float, Match: filter.Exact, Min: filter.GT(0), Description: "Valor empenhado"},
			},
		},
		Entity[ds.IngressoContrapartida, ds.IngressoContrapartida]{
			Path:        "/ingresso-contrapartida",
			Tag:         "Desembolso",
			Description: "Retorna uma Lista Paginada dos dados dos Ingressos de Contrapartida.",
			Order:       "nr_convenio, dt_ingresso_contrapartida",
			Fields: []filter.Field{
				{Param: "nr_convenio", Type: filter.Int, Match: filter.Exact, Description: "Número do Convênio"},
				{Param: "dt_ingresso_contrapartida", Type: filter.Date, Match: filter.OnDate, Description: "Data da disponibilização do recurso por parte do Convenente"},
				{Param: "vl_ingresso_contrapartida", Type: filter.Float, Match: filter.Exact, Description: "Valor disponibilizado pelo Convenente para a conta do instrumento"},
			},
		},
		Entity[ds.ObtvConvenente, ds.ObtvConvenente]{
			Path:        "/obtv-convenente",
			Tag:         "Movimentação Financeira",
			Description: "Retorna uma Lista Paginada dos dados dos OBTVs do Convenente.",
			Order:       "nr_mov_fin",
			Fields: []filter.Field{
				{Param: "nr_mov_fin", Type: filter.Int, Match: filter.Exact, Min: filter.GT(0), Description: "Número identificador da movimentação financeira"},
				{Param: "identif_favorecido_obtv_conv", Type: filter.String, Match: filter.Contains, Description: "CNPJ/CPF do Favorecido recebedor do pagamento"},
				{Param: "nm_favorecido_obtv_conv", Type: filter.String, Match: filter.Contains, Description: "Nome do Favorecido recebedor do pagamento"},
				{Param: "tp_aquisicao", Type: filter.String, Match: filter.Contains, Description: "Tipo de Aquisição"},
				{Param: "vl_pago_obtv_conv", Type: filter.Float, Match: filter.Exact, Min: filter.GT(0), Description: "Valor pago ao favorecido"},
			},
		},
		Entity[ds.Pagamento, ds.Pagamento]{
			Path:        "/pagamento",
			Tag:         "Movimentação Financeira",
			Description: "Retorna uma Lista Paginada dos dados dos Pagamentos.",
			Order:       "nr_mov_fin",
			Fields: []filter.Field{
				{Param: "nr_mov_fin", Type: filter.Int, Match: filter.Exact, Min: filter.GT(0), Description: "Número identificador da movimentação financeira"},
				{Param: "nr_convenio", Type: filter.Int, Match: filter.Exact, Min: filter.GT(0), Description: "Número gerado pelo Siconv. Possui faixa de numeração reservada que vai de 700000 a 999999"},
				{Param: "identif_fornecedor", Type: filter.String, Match: filter.Contains, Description: "CNPJ/CPF do Fornecedor"},
				{Param: "nome_fornecedor", Type: filter.String, Match: filter.Contains, Description: "Nome do Fornecedor"},
				{Param: "tp_mov_financeira", Type: filter.String, Match: filter.Exact, Enum: []string{"PAGAMENTO A FAVORECIDO", "PAGAMENTO A FAVORECIDO COM OBTV"}, Description: "Tipo da movimentação financeira realizada"},
				{Param: "data_pag", Type: filter.Date, Match: filter.OnDate, Description: "Data da realização do pagamento (AAAA-MM-DD)"},
				{Param: "nr_dl", Type: filter.String, Match: filter.Contains, Description: "Número identificador do Documento de Liquidação"},
				{Param: "desc_dl", Type: filter.String, Match: filter.Exact, Enum: []string{"DIÁRIAS", "DUPLICATA", "FATURA", "FOLHA DE PAGAMENTO", "NOTA FISCAL", "NOTA FISCAL / FATURA", "OBTV PARA EXECUTOR", "OBTV PARA O CONVENENTE"}, Description: "Descrição do Documento de Liquidação"},
				{Param: "vl_pago", Type: filter.Float, Match: filter.Exact, Min: filter.GT(0), Description: "Valor do pagamento"},
			},
		},
		Entity[ds.PagamentoTributo, ds.PagamentoTributo]{
			Path:        "/pagamento-tributo",
			Tag:         "Movimentação Financeira",
			Description: "Retorna uma Lista Paginada dos dados dos Pagamentos de Tributos.",
			Order:       "nr_convenio, data_tributo",
			Fields: []filter.Field{
				{Param: "nr_convenio", Type: filter.Int, Match: filter.Exact, Min: filter.GT(0), Description: "Número gerado pelo Siconv. Possui faixa de numeração reservada que vai de 700000 a 999999"},
				{Param: "data_tributo", Type: filter.Date, Match: filter.OnDate, Description: "Data da realização do pagamento do tributo (AAAA-MM-DD)"},
				{Param: "vl_pag_tributos", Type: filter.Float, Match: filter.Exact, Min: filter.GT(0), Description: "Valor do tributo"},
			},
		},
	}
}

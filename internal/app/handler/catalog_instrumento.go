package handler

import (
	"api-transferegov/internal/app/ds"
	"api-transferegov/internal/app/filter"
)

func instrumentoRoutes() []Route {
	return []Route{
		Entity[ds.Convenio, ds.Convenio]{
			Path:        "/convenio",
			Tag:         "Instrumento",
			Description: "Retorna uma Lista Paginada dos dados dos Convênios.",
			Order:       "nr_convenio",
			Fields: []filter.Field{
				{Param: "nr_convenio", Type: filter.Int, Match: filter.Exact, Min: filter.GT(0), Description: "Número gerado pelo Siconv. Possui faixa de numeração reservada que vai de 700000 a 999999"},
				{Param: "id_proposta", Type: filter.Int, Match: filter.Exact, Min: filter.GT(0), Description: "ID da Proposta associada ao Convênio"},
				{Param: "dia_assin_conv", Type: filter.Date, Match: filter.OnDate, Description: "Data de assinatura do Convênio (AAAA-MM-DD)"},
				{Param: "sit_convenio", Type: filter.String, Match: filter.Contains, Description: "Situação do Convênio"},
				{Param: "subsituacao_conv", Type: filter.String, Match: filter.Exact, Enum: []string{"Convênio", "Convênio Cancelado", "Convênio Encerrado", "Proposta", "Em aditivação"}, Description: "Subsituação do Convênio"},
				{Param: "situacao_publicacao", Type: filter.String, Match: filter.Exact, Enum: []string{"Publicado", "Transferido para IN"}, Description: "Situação atual da Publicação do instrumento"},
				{Param: "instrumento_ativo", Type: filter.String, Match: filter.Exact, Enum: simNao, Description: "Indica se o instrumento está ativo"},
				{Param: "ind_opera_obtv", Type: filter.String, Match: filter.Exact, Enum: simNao, Description: "Indicativo de que o Convênio opera com OBTV"},
				{Param: "nr_processo", Type: filter.String, Match: filter.Contains, Description: "Número interno do processo do instrumento"},
				{Param: "ug_emitente", Type: filter.String, Match: filter.Contains, Description: "Unidade Gestora Emitente"},
				{Param: "dia_publ_conv", Type: filter.Date, Match: filter.OnDate, Description: "Data de publicação do Convênio (AAAA-MM-DD)"},
				{Param: "dia_inic_vigenc_conv", Type: filter.Date, Match: filter.OnDate, Description: "Data de início da vigência do Convênio (AAAA-MM-DD)"},
				{Param: "dia_fim_vigenc_conv", Type: filter.Date, Match: filter.OnDate, Description: "Data de fim da vigência do Convênio (AAAA-MM-DD)"},
				{Param: "dia_fim_vigenc_original_conv", Type: filter.Date, Match: filter.OnDate, Description: "Data de fim da vigência original do Convênio (AAAA-MM-DD)"},
				{Param: "dia_limite_prest_contas", Type: filter.Date, Match: filter.OnDate, Description: "Data limite para Prestação de Contas (AAAA-MM-DD)"},
				{Param: "data_suspensiva", Type: filter.Date, Match: filter.OnDate, Description: "Data prevista para resolução da Cláusula Suspensiva (AAAA-MM-DD)"},
				{Param: "data_retirada_suspensiva", Type: filter.Date, Match: filter.OnDate, Description: "Data de retirada do instrumento da situação de Cláusula Suspensiva (AAAA-MM-DD)"},
				{Param: "situacao_contratacao", Type: filter.String, Match: filter.Exact, Enum: []string{"Cláusula Suspensiva", "Liminar Judicial", "Normal", "Sob Liminar Judicial e Cláusula Suspensiva"}, Description: "Situação atual da Contratação"},
				{Param: "ind_assinado", Type: filter.String, Match: filter.Exact, Enum: simNao, Description: "Indica se o convênio está assinado"},
				{Param: "motivo_suspensao", Type: filter.String, Match: filter.Contains, Description: "Descrição do motivo de suspensão referente a cláusula suspensiva"},
				{Param: "qtde_convenios", Type: filter.Int, Match: filter.Exact, Min: filter.GT(0), Description: "Quantidade de Instrumentos Assinados"},
				{Param: "qtd_ta", Type: filter.Int, Match: filter.Exact, Min: filter.GT(0), Description: "Quantidade de Termos Aditivos"},
				{Param: "qtd_proroga", Type: filter.Int, Match: filter.Exact, Min: filter.GT(0), Description: "Quantidade de Prorrogas de Ofício"},
				{Param: "ind_foto", Type: filter.String, Match: filter.Exact, Enum: simNao, Description: "Indicador se o Convênio possui Foto"},
				{Param: "vl_global_conv", Type: filter.Float, Match: filter.Exact, Min: filter.GT(0), Description: "Valor Global do Convênio"},
				{Param: "vl_repasse_conv", Type: filter.Float, Match: filter.Exact, Min: filter.GT(0), Description: "Valor de Repasse do Convênio"},
				{Param: "vl_contrapartida_conv", Type: filter.Float, Match: filter.Exact, Min: filter.GT(0), Description: "Valor da Contrapartida do Convênio"},
				{Param: "valor_global_original_conv", Type: filter.Float, Match: filter.Exact, Min: filter.GT(0), Description: "Valor Global Original do Instrumento"},
			},
		},
		Entity[ds.HistoricoSituacao, ds.HistoricoSituacao]{
			Path:        "/historico_situacao",
			Tag:         "Instrumento",
			Description: "Retorna uma Lista Paginada do Histórico de Situações das Propostas/Convênios.",
			Order:       "id_proposta, dia_historico_sit, cod_historico_sit",
			Fields: []filter.Field{
				{Param: "id_proposta", Type: filter.Int, Match: filter.Exact, Min: filter.GT(0), Description: "Código Sequencial do Sistema para uma Proposta"},
				{Param: "nr_convenio", Type: filter.Int, Match: filter.Exact, Min: filter.GT(0), Description: "Número gerado pelo Siconv. Possui faixa de numeração reservada que vai de 700000 a 999999"},
				{Param: "dia_historico_sit", Type: filter.Date, Match: filter.OnDate, Description: "Data de entrada da situação no sistema (AAAA-MM-DD)"},
				{Param: "historico_sit", Type: filter.String, Match: filter.Contains, Description: "Situação histórica da Proposta/Convênio"},
				{Param: "dias_historico_sit", Type: filter.Int, Match: filter.Exact, Min: filter.GT(0), Description: "Dias em que a Proposta/Convênio permaneceu na situação"},
				{Param: "cod_historico_sit", Type: filter.Int, Match: filter.Exact, Description: "Código da situação histórica da Proposta/Convênio"},
			},
		},
		Entity[ds.ProrrogaOficio, ds.ProrrogaOficio]{
			Path:        "/prorroga_oficio",
			Tag:         "Instrumento",
			Description: "Retorna uma Lista Paginada dos dados de Prorroga de Ofício.",
			Order:       "nr_convenio, nr_prorroga",
			Fields: []filter.Field{
				{Param: "nr_convenio", Type: filter.Int, Match: filter.Exact, Min: filter.GT(0), Description: "Número gerado pelo Siconv. Possui faixa de numeração reservada que vai de 700000 a 999999"},
				{Param: "nr_prorroga", Type: filter.String, Match: filter.Contains, Description: "Número do Prorroga de Ofício"},
				{Param: "dt_inicio_prorroga", Type: filter.Date, Match: filter.OnDate, Description: "Data Início de Vigência do Prorroga de Ofício (AAAA-MM-DD)"},
				{Param: "dt_fim_prorroga", Type: filter.Date, Match: filter.OnDate, Description: "Data Fim de Vigência do Prorroga de Ofício (AAAA-MM-DD)"},
				{Param: "dias_prorroga", Type: filter.Int, Match: filter.Exact, Min: filter.GT(0), Description: "Dias de prorrogação"},
				{Param: "dt_assinatura_prorroga", Type: filter.Date, Match: filter.OnDate, Description: "Data de assinatura do Prorroga de Ofício (AAAA-MM-DD)"},
				{Param: "sit_prorroga", Type: filter.String, Match: filter.Exact, Enum: []string{"DISPONIBILIZADA", "PUBLICADA"}, Description: "Situação atual do Prorroga de Ofício"},
			},
		},
		Entity[ds.TermoAditivo, ds.TermoAditivo]{
			Path:        "/termo_aditivo",
			Tag:         "Instrumento",
			Description: "Retorna uma Lista Paginada dos dados de Termo Aditivo.",
			Order:       "nr_convenio, numero_ta",
			Fields: []filter.Field{
				{Param: "nr_convenio", Type: filter.Int, Match: filter.Exact, Min: filter.GT(0), Description: "Número gerado pelo Siconv. Possui faixa de numeração reservada que vai de 700000 a 999999"},
				{Param: "id_solicitacao", Type: filter.Int, Match: filter.Exact, Min: filter.GT(0), Description: "Identificador único da solicitação de alteração"},
				{Param: "numero_ta", Type: filter.String, Match: filter.Contains, Description: "Número do Termo Aditivo"},
				{Param: "tipo_ta", Type: filter.String, Match: filter.Contains, Description: "Tipo do Termo Aditivo"},
				{Param: "dt_assinatura_ta", Type: filter.Date, Match: filter.OnDate, Description: "Data da assinatura do Termo Aditivo (AAAA-MM-DD)"},
				{Param: "dt_inicio_ta", Type: filter.Date, Match: filter.OnDate, Description: "Data Início de Vigência do Termo Aditivo (AAAA-MM-DD)"},
				{Param: "dt_fim_ta", Type: filter.Date, Match: filter.OnDate, Description: "Data Fim de Vigência do Termo Aditivo (AAAA-MM-DD)"},
				{Param: "justificativa_ta", Type: filter.String, Match: filter.Contains, Description: "Justificativa para a realização do Termo Aditivo"},
			},
		},
	}
}

package handler

import (
	"api-transferegov/internal/app/ds"
	"api-transferegov/internal/app/filter"
)

func propostaRoutes() []Route {
	return []Route{
		Entity[ds.JustificativasProposta, ds.JustificativasProposta]{
			Path:        "/justificativas_proposta",
			Tag:         "Proposta",
			Description: "Retorna uma Lista Paginada dos dados das Justificativas das Propostas.",
			Order:       "id_proposta",
			Fields: []filter.Field{
				{Param: "id_proposta", Type: filter.Int, Match: filter.Exact, Description: "Identificador único da Proposta"},
				{Param: "caracterizacao_interesses_reci", Type: filter.String, Match: filter.Contains, Description: "CCaracterização dos interesses recíprocos da proposta"},
				{Param: "publico_alvo", Type: filter.String, Match: filter.Contains, Description: "Público alvo da proposta"},
				{Param: "problema_a_ser_resolvido", Type: filter.String, Match: filter.Contains, Description: "Problema a ser resolvido pela proposta"},
				{Param: "resultados_esperados", Type: filter.String, Match: filter.Contains, Description: "Resultados esperados pela proposta"},
				{Param: "relacao_proposta_objetivos_pro", Type: filter.String, Match: filter.Contains, Description: "Relação entre a proposta e os objetivos e diretrizes do programa"},
				{Param: "capacidade_tecnica", Type: filter.String, Match: filter.Contains, Description: "Capacidade Técnica e Gerencial da proposta"},
				{Param: "justificativa", Type: filter.String, Match: filter.Contains, Description: "Justificativa da solicitação da proposta"},
			},
		},
		Entity[ds.Proposta, ds.Proposta]{
			Path:        "/proposta",
			Tag:         "Proposta",
			Description: "Retorna uma Lista Paginada dos dados das Propostas.",
			Order:       "id_proposta",
			Fields: []filter.Field{
				{Param: "id_proposta", Type: filter.Int, Match: filter.Exact, Description: "Código Sequencial do Sistema para uma Proposta"},
				{Param: "id_proponente", Type: filter.Int, Match: filter.Exact, Description: "Identificador único do proponente"},
				{Param: "uf_proponente", Type: filter.String, Match: filter.Exact, Enum: ufs, Description: "UF do Proponente."},
				{Param: "munic_proponente", Type: filter.String, Match: filter.Contains, Description: "Município do Proponente"},
				{Param: "cod_munic_ibge", Type: filter.String, Match: filter.Exact, Description: "Código IBGE do Município"},
				{Param: "cod_orgao_sup", Type: filter.String, Match: filter.Exact, Description: "Código do Órgão Superior do Concedente"},
				{Param: "desc_orgao_sup", Type: filter.String, Match: filter.Contains, Description: "Nome do Órgão Superior do Concedente"},
				{Param: "natureza_juridica", Type: filter.String, Match: filter.Exact, Enum: []string{"Administração Pública Estadual ou do Distrito Federal", "Administração Pública Municipal", "Consórcio Público", "Empresa pública/Sociedade de economia mista e Organização da Sociedade Civil"}, Description: "Natureza Jurídica do Proponente."},
				{Param: "nr_proposta", Type: filter.String, Match: filter.Exact, Description: "Número da Proposta gerado pelo Siconv"},
				{Param: "dia_prop", Type: filter.String, Match: filter.Exact, Description: "Dia do cadastro da Proposta"},
				{Param: "mes_prop", Type: filter.String, Match: filter.Exact, Description: "Mês do cadastro da Proposta"},
				{Param: "ano_prop", Type: filter.String, Match: filter.Exact, Description: "Ano do cadastro da Proposta"},
				{Param: "dia_proposta", Type: filter.Date, Match: filter.OnDate, Description: "Data do cadastro da Proposta"},
				{Param: "cod_orgao", Type: filter.String, Match: filter.Exact, Description: "Código do Órgão ou Entidade Concedente"},
				{Param: "desc_orgao", Type: filter.String, Match: filter.Contains, Description: "Nome do Órgão ou Entidade Concedente"},
				{Param: "modalidade", Type: filter.String, Match: filter.Exact, Enum: modalidades, Description: "Modalidade da Proposta"},
				{Param: "identif_proponente", Type: filter.String, Match: filter.Exact, Description: "CNPJ do Proponente"},
				{Param: "nm_proponente", Type: filter.String, Match: filter.Contains, Description: "Nome da Entidade Proponente"},
				{Param: "cep_proponente", Type: filter.String, Match: filter.Exact, Description: "CEP do Proponente"},
				{Param: "endereco_proponente", Type: filter.String, Match: filter.Contains, Description: "Endereço do Proponente"},
				{Param: "bairro_proponente", Type: filter.String, Match: filter.Contains, Description: "Bairro do Proponente"},
				{Param: "nm_banco", Type: filter.String, Match: filter.Contains, Description: "Nome do Banco para depósito do recurso da Transferência Voluntária"},
				{Param: "situacao_conta", Type: filter.String, Match: filter.Exact, Enum: []string{"Aguardando Retorno do Banco", "Enviada", "Cadastrada", "Registrada", "Erro na Abertura de Conta", "Regularizada", "A Verificar", "Aguardando Envio", "Pendente de Regularização"}, Description: "Situação atual da conta bancária do instrumento."},
				{Param: "situacao_projeto_basico", Type: filter.String, Match: filter.Exact, Enum: []string{"Aguardando Projeto Básico", "Não Cadastrado", "Projeto Básico Aprovado", "Projeto Básico em Análise", "Projeto Básico em Complementação", "Projeto Básico Rejeitado"}, Description: "Situação atual do Projeto Básico/Termo de Referência."},
				{Param: "sit_proposta", Type: filter.String, Match: filter.Exact, Enum: []string{"Proposta/Plano de Trabalho Cadastrados", "Proposta/Plano de Trabalho em Análise", "Proposta/Plano de Trabalho Rejeitados", "Proposta/Plano de Trabalho Aprovados"}, Description: "Situação atual da Proposta."},
				{Param: "dia_inic_vigencia_proposta", Type: filter.Date, Match: filter.OnDate, Description: "Data Início da Vigência da Proposta"},
				{Param: "dia_fim_vigencia_proposta", Type: filter.Date, Match: filter.OnDate, Description: "Data Fim da Vigência da Proposta"},
				{Param: "objeto_proposta", Type: filter.String, Match: filter.Contains, Description: "Descrição do Objeto da Proposta"},
				{Param: "item_investimento", Type: filter.String, Match: filter.Exact, Description: "Itens de Investimento da proposta"},
				{Param: "enviada_mandataria", Type: filter.String, Match: filter.Exact, Enum: []string{"SIM", "NÃO", "NÃO APLICÁVEL"}, Description: "Campo que indica se o Contrato de Repasse foi enviado para Instituição Mandatária."},
				{Param: "vl_global_prop", Type: filter.Float, Match: filter.Exact, Min: filter.GE(0), Description: "Valor Global da proposta cadastrada (Valor de Repasse Proposta + Valor Contrapartida Proposta)"},
				{Param: "vl_repasse_prop", Type: filter.Float, Match: filter.Exact, Min: filter.GE(0), Description: "Valor de Repasse do Governo Federal referente a proposta cadastrada"},
				{Param: "vl_contrapartida_prop", Type: filter.Float, Match: filter.Exact, Min: filter.GE(0), Description: "Valor da Contrapartida apresentada na proposta pelo convenente"},
				{Param: "nome_subtipo_proposta", Type: filter.String, Match: filter.Contains, Description: "Nome do subtipo de instrumento"},
				{Param: "descricao_subtipo_proposta", Type: filter.String, Match: filter.Contains, Description: "Descrição do subtipo do instrumento"},
				{Param: "cd_agencia", Type: filter.String, Match: filter.Exact, Description: "Código da Agência"},
				{Param: "cd_conta", Type: filter.String, Match: filter.Exact, Description: "Código da Conta"},
			},
		},
		Entity[ds.PropostaCancelada, ds.PropostaCancelada]{
			Path:        "/propostas_canceladas",
			Tag:         "Proposta",
			Description: "Retorna uma Lista Paginada dos dados das Propostas Canceladas.",
			Order:       "id_proposta",
			Fields: []filter.Field{
				{Param: "id_proposta", Type: filter.Int, Match: filter.Exact, Description: "Código Sequencial do Sistema para uma Proposta"},
				{Param: "uf_proponente", Type: filter.String, Match: filter.Exact, Enum: ufs, Description: "Unidade Federativa do Proponente"},
				{Param: "munic_proponente", Type: filter.String, Match: filter.Contains, Description: "Município do Proponente"},
				{Param: "cod_munic_ibge", Type: filter.String, Match: filter.Exact, Description: "Código IBGE do Município"},
				{Param: "cod_orgao_sup", Type: filter.String, Match: filter.Exact, Description: "Código do Órgão Superior do Concedente"},
				{Param: "desc_orgao_sup", Type: filter.String, Match: filter.Contains, Description: "Descrição do Órgão Superior do Concedente"},
				{Param: "natureza_juridica", Type: filter.String, Match: filter.Exact, Enum: []string{"Administração Pública Estadual ou do Distrito Federal", "Administração Pública Municipal", "Consórcio Público", "Empresa pública/Sociedade de economia mista", "Organização da Sociedade Civil"}, Description: "Natureza Jurídica do Proponente"},
				{Param: "nr_proposta", Type: filter.String, Match: filter.Exact, Description: "Número da Proposta gerado pelo Siconv"},
				{Param: "dia_prop", Type: filter.Int, Match: filter.Exact, Min: filter.GT(0), Max: filter.LE(31), Description: "Dia do cadastro da Proposta"},
				{Param: "mes_prop", Type: filter.Int, Match: filter.Exact, Min: filter.GT(0), Max: filter.LE(12), Description: "Mês do cadastro da Proposta"},
				{Param: "ano_prop", Type: filter.Int, Match: filter.Exact, Min: filter.GE(2000), Description: "Ano do cadastro da Proposta"},
				{Param: "dia_proposta", Type: filter.Date, Match: filter.OnDate, Description: "Data do cadastro da Proposta"},
				{Param: "cod_orgao", Type: filter.String, Match: filter.Exact, Description: "Código do Órgão ou Entidade Concedente"},
				{Param: "desc_orgao", Type: filter.String, Match: filter.Contains, Description: "Nome do Órgão ou Entidade Concedente"},
				{Param: "modalidade", Type: filter.String, Match: filter.Exact, Enum: modalidades, Description: "Modalidade da Proposta"},
				{Param: "identif_proponente", Type: filter.String, Match: filter.Exact, Description: "CNPJ do Proponente"},
				{Param: "nm_proponente", Type: filter.String, Match: filter.Contains, Description: "Nome da Entidade Proponente"},
				{Param: "cep_proponente", Type: filter.String, Match: filter.Exact, Description: "CEP do Proponente"},
				{Param: "endereco_proponente", Type: filter.String, Match: filter.Contains, Description: "Endereço do Proponente"},
				{Param: "bairro_proponente", Type: filter.String, Match: filter.Contains, Description: "Bairro do Proponente"},
				{Param: "nm_banco", Type: filter.String, Match: filter.Contains, Description: "Nome do Banco para depósito do recurso da Transferência Voluntária"},
				{Param: "situacao_conta", Type: filter.String, Match: filter.Exact, Enum: []string{"Aguardando Retorno do Banco, Enviada", "Cadastrada, Registrada", "Erro na Abertura de Conta", "Regularizada", "A Verificar", "Aguardando Envio e Pendente de Regularização"}, Description: "Situação atual da conta bancária do instrumento"},
				{Param: "situacao_projeto_basico", Type: filter.String, Match: filter.Exact, Enum: []string{"Aguardando Projeto Básico", "Não Cadastrado", "Projeto Básico Aprovado", "Projeto Básico em Análise", "Projeto Básico em Complementação", "Projeto Básico Rejeitado"}, Description: "Situação atual do Projeto Básico/Termo de Referência"},
				{Param: "sit_proposta", Type: filter.String, Match: filter.Exact, Enum: []string{"Proposta/Plano de Trabalho Cancelados"}, Description: "Situação atual da Proposta"},
				{Param: "dia_inic_vigencia_proposta", Type: filter.Date, Match: filter.OnDate, Description: "Data de início da vigência da proposta"},
				{Param: "dia_fim_vigencia_proposta", Type: filter.Date, Match: filter.OnDate, Description: "Data de fim da vigência da proposta"},
				{Param: "objeto_proposta", Type: filter.String, Match: filter.Contains, Description: "Descrição do Objeto da Proposta"},
				{Param: "item_investimento", Type: filter.String, Match: filter.Exact, Description: "Itens de Investimento da proposta"},
				{Param: "enviada_mandataria", Type: filter.String, Match: filter.Exact, Enum: []string{"SIM", "NÃO", "NÃO APLICÁVEL"}, Description: "Campo que indica se o Contrato de Repasse foi enviado para Instituição Mandatária"},
				{Param: "vl_global_prop", Type: filter.Float, Match: filter.Exact, Min: filter.GE(0), Description: "Valor Global da proposta cadastrada (Valor de Repasse Proposta + Valor Contrapartida Proposta)"},
				{Param: "vl_repasse_prop", Type: filter.Float, Match: filter.Exact, Min: filter.GE(0), Description: "Valor de Repasse do Governo Federal referente a proposta cadastrada"},
				{Param: "vl_contrapartida_prop", Type: filter.Float, Match: filter.Exact, Min: filter.GE(0), Description: "Valor da Contrapartida apresentada na proposta pelo convenente"},
				{Param: "nome_subtipo_proposta", Type: filter.String, Match: filter.Contains, Description: "Nome do subtipo de instrumento"},
				{Param: "descricao_subtipo_proposta", Type: filter.String, Match: filter.Contains, Description: "Descrição do subtipo do instrumento"},
			},
		},
	}
}

package handler

import (
	"api-transferegov/internal/app/ds"
	"api-transferegov/internal/app/filter"
	"api-transferegov/internal/app/repository"
)

func programaRoutes() []Route {
	return []Route{
		Entity[ds.Programa, ds.ProgramaResponse]{
			Path:        "/programa",
			Tag:         "Programa",
			Description: "Retorna uma Lista Paginada dos dados dos Programas - Discricionárias e Legais.",
			Order:       "id_programa",
			Preload:     []string{"Proponentes", "Propostas"},
			Map:         repository.Validated(ds.Programa.ToResponse),
			Fields: []filter.Field{
				{Param: "id_programa", Type: filter.Int, Match: filter.Exact, Description: "Código Sequencial do Sistema para um Programa"},
				{Param: "cod_orgao_sup_programa", Type: filter.String, Match: filter.Exact, Description: "Código do Órgão executor do Programa"},
				{Param: "desc_orgao_sup_programa", Type: filter.String, Match: filter.Contains, Description: "Nome do Órgão executor do Programa"},
				{Param: "cod_programa", Type: filter.String, Match: filter.Exact, Description: "Chave que identifica o programa composta por: (Cód.Órgão+Ano+Cód.Sequencial do Sistema)"},
				{Param: "nome_programa", Type: filter.String, Match: filter.Contains, Description: "Descrição do Programa de Governo"},
				{Param: "sit_programa", Type: filter.String, Match: filter.Contains, Enum: []string{"Cadastrado", "Disponibilizado", "Inativo"}, Description: "Situação atual do Programa."},
				{Param: "data_disponibilizacao", Type: filter.Date, Match: filter.OnDate, Description: "Data de disponibilização do Programa"},
				{Param: "ano_disponibilizacao", Type: filter.Int, Match: filter.Exact, Min: filter.GT(0), Text: true, Description: "Ano de disponibilização do Programa"},
				{Param: "dt_prog_ini_receb_prop", Type: filter.Date, Match: filter.OnDate, Description: "Data Início para o recebimento das propostas voluntárias para o Programa"},
				{Param: "dt_prog_fim_receb_prop", Type: filter.Date, Match: filter.OnDate, Description: "Data Fim para o recebimento das propostas voluntárias para o Programa"},
				{Param: "dt_prog_ini_emenda_par", Type: filter.Date, Match: filter.OnDate, Description: "Data Início para o recebimento das propostas de Emenda Parlamentar para o Programa"},
				{Param: "dt_prog_fim_emenda_par", Type: filter.Date, Match: filter.OnDate, Description: "Data Fim para o recebimento das propostas de Emenda Parlamentar para o Programa"},
				{Param: "dt_prog_ini_benef_esp", Type: filter.Date, Match: filter.OnDate, Description: "Data Início para o recebimento das propostas de beneficiário específico para o Programa"},
				{Param: "dt_prog_fim_benef_esp", Type: filter.Date, Match: filter.OnDate, Description: "Data Fim para o recebimento das propostas de beneficiário específico para o Programa"},
				{Param: "modalidade_programa", Type: filter.String, Match: filter.Exact, Enum: modalidades, Description: "Modalidade do Programa."},
				{Param: "natureza_juridica_programa", Type: filter.String, Match: filter.Exact, Description: "Natureza Jurídica Atendida pelo Programa. Domínio: Administração Pública Estadual ou do Distrito Federal, Administração Pública Municipal, Consórcio Público, Empresa pública/Sociedade de economia mista e Organização da Sociedade Civil"},
				{Param: "uf_programa", Type: filter.String, Match: filter.Exact, Enum: ufs, Description: "Ufs Habilitadas para o Programa. Quando o valor é nulo, o programa atende a todo o Brasil"},
				{Param: "acao_orcamentaria", Type: filter.String, Match: filter.Exact, Description: "Número da Ação Orçamentária"},
				{Param: "nome_subtipo_programa", Type: filter.String, Match: filter.Exact, Description: "Nome do subtipo de instrumento"},
				{Param: "descricao_subtipo_programa", Type: filter.String, Match: filter.Exact, Description: "Descrição do subtipo do instrumento"},
			},
		},
		Entity[ds.Proponente, ds.Proponente]{
			Path:        "/proponente",
			Tag:         "Proponente",
			Description: "Retorna uma Lista Paginada dos dados dos Proponentes.",
			Order:       "id_proponente",
			Fields: []filter.Field{
				{Param: "id_proponente", Type: filter.Int, Match: filter.Exact, Description: "Identificador único do proponente"},
				{Param: "identif_proponente", Type: filter.String, Match: filter.Exact, Description: "CNPJ do Proponente"},
				{Param: "nm_proponente", Type: filter.String, Match: filter.Contains, Description: "Nome da Entidade Proponente"},
				{Param: "municipio_proponente", Type: filter.String, Match: filter.Contains, Description: "Município do Proponente"},
				{Param: "uf_proponente", Type: filter.String, Match: filter.Exact, Enum: ufs, Description: " UF do Proponente."},
				{Param: "endereco_proponente", Type: filter.String, Match: filter.Contains, Description: "Endereço do Proponente"},
				{Param: "bairro_proponente", Type: filter.String, Match: filter.Contains, Description: "Bairro do Proponente"},
				{Param: "cep_proponente", Type: filter.String, Match: filter.Exact, Description: "CEP do Proponente"},
				{Param: "email_proponente", Type: filter.String, Match: filter.Contains, Description: "E-mail do Proponente"},
				{Param: "telefone_proponente", Type: filter.String, Match: filter.Exact, Description: "Telefone do Proponente"},
				{Param: "fax_proponente", Type: filter.String, Match: filter.Exact, Description: "Fax do Proponente"},
			},
		},
	}
}

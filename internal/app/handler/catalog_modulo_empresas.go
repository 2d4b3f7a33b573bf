package handler

import (
	"api-transferegov/internal/app/ds"
	"api-transferegov/internal/app/filter"
)

func moduloEmpresasRoutes() []Route {
	return []Route{
		Entity[ds.AcompObrasContratosMedicoesModuloEmpresas, ds.AcompObrasContratosMedicoesModuloEmpresas]{
			Path:        "/acomp-obras-contratos-medicoes-modulo-empresas",
			Tag:         "Módulo Empresas",
			Description: "Retorna uma Lista Paginada dos dados de Acompanhamento de Obras, Contratos e Medições (Módulo Empresas).",
			Order:       "id_medicao_acompanhamento_obra",
			Fields: []filter.Field{
				{Param: "id_proposta", Type: filter.Int, Match: filter.Exact, Min: filter.GE(1), Description: "Identificador único da proposta"},
				{Param: "id_contrato_medicao_acompanhamento_obra", Type: filter.Int, Match: filter.Exact, Min: filter.GE(1), Description: "Identificador único do contrato de medição"},
				{Param: "id_medicao_acompanhamento_obra", Type: filter.Int, Match: filter.Exact, Min: filter.GE(1), Description: "Identificador único da medição"},
				{Param: "data_inicio_obra_contrato_acompanhamento_obra", Type: filter.Date, Match: filter.OnDate, Description: "Data de Início da Obra do Contrato (AAAA-MM-DD)"},
				{Param: "cnpj_fornecedor_contrato_acompanhamento_obra", Type: filter.String, Match: filter.Exact, Description: "CNJP do Fornecedor"},
				{Param: "numero_medicao_acompanhamento_obra", Type: filter.Int, Match: filter.Exact, Min: filter.GE(1), Description: "Número Sequencial da Medição"},
				{Param: "nr_ultima_medicao_acompanhamento_obra", Type: filter.Int, Match: filter.Exact, Min: filter.GE(1), Description: "Número da última Medição"},
				{Param: "situacao_medicao_acompanhamento_obra", Type: filter.String, Match: filter.Contains, Description: "Situação da Medição"},
				{Param: "data_inicio_medicao_objeto_acompanhamento_obra", Type: filter.Date, Match: filter.OnDate, Description: "Data Inicial da Medição (AAAA-MM-DD)"},
				{Param: "data_fim_medicao_objeto_acompanhamento_obra", Type: filter.Date, Match: filter.OnDate, Description: "Data Final da Medição (AAAA-MM-DD)"},
				{Param: "qtd_dias_sem_medicao_acompanhamento_obra", Type: filter.Int, Match: filter.Exact, Min: filter.GE(1), Description: "Quantidade de Dias sem Medição no Acompanhamento da Obra"},
			},
		},
		Entity[ds.AcompObrasValoresItensMedicaoModuloEmpresas, ds.AcompObrasValoresItensMedicaoModuloEmpresas]{
			Path:        "/acomp-obras-valores-itens-medicao-modulo-empresas",
			Tag:         "Módulo Empresas",
			Description: "Retorna uma Lista Paginada dos valores dos itens de medição das obras (Módulo Empresas).",
			Order:       "id_contrato_medicao_acompanhamento_obra, id_submeta_vrpl",
			Fields: []filter.Field{
				{Param: "id_submeta_vrpl", Type: filter.Int, Match: filter.Exact, Min: filter.GE(1), Description: "Identificador único da submeta"},
				{Param: "id_contrato_medicao_acompanhamento_obra", Type: filter.Int, Match: filter.Exact, Min: filter.GE(1), Description: "Identificador único do contrato de medição"},
				{Param: "valor_execucao_fisica_acumulada_total_acompanhamento_obra", Type: filter.Float, Match: filter.Exact, Min: filter.GE(0), Description: "Somatório do Valor Total Acumulado da Execução Física da Obra"},
				{Param: "valor_execucao_fisica_acumulada_concedente_acompanhamento_obra", Type: filter.Float, Match: filter.Exact, Min: filter.GE(0), Description: "Somatório do Valor Acumulado da Execução Física por parte do Concedente da Obra"},
				{Param: "valor_execucao_fisica_acumulada_convenente_acompanhamento_obra", Type: filter.Float, Match: filter.Exact, Min: filter.GE(0), Description: "Somatório do Valor Acumulado da Execução Física por parte do Convenente da Obra"},
				{Param: "valor_execucao_fisica_acumulada_empresa_acompanhamento_obra", Type: filter.Float, Match: filter.Exact, Min: filter.GE(0), Description: "Somatório do Valor Acumulado da Execução Física por parte da Empresa da Obra"},
			},
		},
		Entity[ds.InstContContratosLotesEmpresasModuloEmpresas, ds.InstContContratosLotesEmpresasModuloEmpresas]{
			Path:        "/inst-cont-contratos-lotes-empresas-modulo-empresas",
			Tag:         "Módulo Empresas",
			Description: "Retorna uma Lista Paginada dos Contratos/Lotes dos Instrumentos Contratuais (Módulo Empresas).",
			Order:       "id_contrato_instrumento_contratual, id_lote_instrumento_contratual",
			Fields: []filter.Field{
				{Param: "id_contrato_instrumento_contratual", Type: filter.Int, Match: filter.Exact, Min: filter.GE(1), Description: "Identificador único do contrato"},
				{Param: "id_proposta_instrumento_contratual", Type: filter.Int, Match: filter.Exact, Min: filter.GE(1), Description: "Identificador único da proposta do instrumento contratual"},
				{Param: "id_lote_instrumento_contratual", Type: filter.Int, Match: filter.Exact, Min: filter.GE(1), Description: "Identificador único da tabela instrumentos_contratuais_VBL.lote"},
				{Param: "numero_instrumento_contratual", Type: filter.String, Match: filter.Contains, Description: "Número do Instrumento Contratual"},
				{Param: "situacao_instrumento_contratual", Type: filter.String, Match: filter.Exact, Enum: []string{"Concluído", "Outros", "Rascunho"}, Description: "Situação do Instrumento Contratual"},
				{Param: "data_assinatura_instrumento_contratual", Type: filter.Date, Match: filter.OnDate, Description: "Data de Assinatura do Instrumento Contratual"},
				{Param: "data_inicio_vigencia_instrumento_contratual", Type: filter.Date, Match: filter.OnDate, Description: "Data do Início da Vigência do Instrumento Contratual"},
				{Param: "data_fim_vigencia_instrumento_contratual", Type: filter.Date, Match: filter.OnDate, Description: "Data do Fim da Vigência do Instrumento Contratual"},
				{Param: "numero_lote_instrumento_contratual", Type: filter.Int, Match: filter.Exact, Min: filter.GE(1), Description: "Número do Lote do Instrumento Contratual"},
				{Param: "razao_social_empresa_executora_instrumento_contratual", Type: filter.String, Match: filter.Contains, Description: "Razão Social do Executor do Instrumento Contratual"},
				{Param: "tipo_identificacao_empresa_executora_instrumento_contratual", Type: filter.String, Match: filter.Exact, Enum: []string{"CNPJ", "CPF", "IG"}, Description: "Tipo de Identificação (CPF, CNPJ, IG) do Executor do Instrumento Contratual"},
				{Param: "identificacao_empresa_executora_instrumento_contratual", Type: filter.String, Match: filter.Contains, Description: "CPF ou CNPJ do Executor do Instrumento Contratual"},
			},
		},
		Entity[ds.InstContMetasSubmetasPoModuloEmpresas, ds.InstContMetasSubmetasPoModuloEmpresas]{
			Path:        "/inst-cont-metas-submetas-po-modulo-empresas",
			Tag:         "Módulo Empresas",
			Description: "Retorna uma Lista Paginada das Metas, Submetas e POs do Módulo Empresas.",
			Order:       "id_po_instrumento_contratual",
			Fields: []filter.Field{
				{Param: "id_meta_instrumento_contratual", Type: filter.Int, Match: filter.Exact, Min: filter.GE(1), Description: "Identificador único da meta do instrumento contratual"},
				{Param: "id_submeta_instrumento_contratual", Type: filter.Int, Match: filter.Exact, Min: filter.GE(1), Description: "Identificador único da submeta do instrumento contratual"},
				{Param: "id_po_instrumento_contratual", Type: filter.Int, Match: filter.Exact, Min: filter.GE(1), Description: "Identificador único do PO do instrumento contratual"},
				{Param: "id_proposta_instrumento_contratual", Type: filter.Int, Match: filter.Exact, Min: filter.GE(1), Description: "Identificador único da proposta do instrumento contratual"},
				{Param: "id_lote_instrumento_contratual", Type: filter.Int, Match: filter.Exact, Min: filter.GE(1), Description: "Identificador único do lote do instrumento contratual"},
				{Param: "numero_meta_instrumento_contratual", Type: filter.Int, Match: filter.Exact, Min: filter.GE(1), Description: "Número da Meta do Instrumento Contratual"},
				{Param: "descricao_meta_instrumento_contratual", Type: filter.String, Match: filter.Contains, Description: "Descrição da Meta do Instrumento Contratual"},
				{Param: "numero_submeta_instrumento_contratual", Type: filter.String, Match: filter.Exact, Description: "Número da Submeta do Instrumento Contratual"},
				{Param: "descricao_submeta_instrumento_contratual", Type: filter.String, Match: filter.Contains, Description: "Descrição da Submeta do Instrumento Contratual"},
				{Param: "situacao_submeta_instrumento_contratual", Type: filter.String, Match: filter.Exact, Enum: []string{"AAI", "ACT"}, Description: "Situação da Submeta do Instrumento Contratual"},
				{Param: "valor_total_licitado_instrumento_contratual", Type: filter.Float, Match: filter.Exact, Min: filter.GE(0), Description: "Valor Total Licitado do Instrumento Contratual"},
				{Param: "data_previsao_inicio_obra_instrumento_contratual", Type: filter.Date, Match: filter.OnDate, Description: "Data de Previsão do Início da Obra do Instrumento Contratual (AAAA-MM-DD)"},
				{Param: "database_po_vrpl_instrumento_contratual", Type: filter.Date, Match: filter.OnDate, Description: "Data-base do Instrumento Contratual (AAAA-MM-DD)"},
				{Param: "sigla_localidade_po_instrumento_contratual", Type: filter.String, Match: filter.Exact, Enum: ufs, Description: "Sigla da Localidade do Instrumento Contratual"},
				{Param: "acompanhado_por_evento_po_instrumento_contratual", Type: filter.Int, Match: filter.Exact, Min: filter.GE(0), Max: filter.LE(1), Description: "Indicador se o PO é acompanhado por eventos no Instrumento Contratual"},
			},
		},
		Entity[ds.InstContPropostaAioModuloEmpresas, ds.InstContPropostaAioModuloEmpresas]{
			Path:        "/inst-cont-proposta-aio-modulo-empresas",
			Tag:         "Módulo Empresas",
			Description: "Retorna uma Lista Paginada das Propostas AIO dos Instrumentos Contratuais (Módulo Empresas).",
			Order:       "id_aio_instrumento_contratual",
			Fields: []filter.Field{
				{Param: "id_proposta_instrumento_contratual", Type: filter.Int, Match: filter.Exact, Min: filter.GE(1), Description: "Identificador único da proposta do instrumento contratual"},
				{Param: "id_proposta", Type: filter.Int, Match: filter.Exact, Min: filter.GE(1), Description: "Identificador único da proposta"},
				{Param: "id_aio_instrumento_contratual", Type: filter.Int, Match: filter.Exact, Min: filter.GE(1), Description: "Identificador único do AIO"},
				{Param: "situacao_aio_instrumento_contratual", Type: filter.String, Match: filter.Exact, Enum: []string{"Emitida", "Não Emitida"}, Description: "Situação da Emissão do AIO"},
				{Param: "data_emissao_aio_instrumento_contratual", Type: filter.Date, Match: filter.OnDate, Description: "Data de Emissão do AIO"},
			},
		},
		Entity[ds.ProjetoBasicoAcffoModuloEmpresas, ds.ProjetoBasicoAcffoModuloEmpresas]{
			Path:        "/projeto-basico-acffo-modulo-empresas",
			Tag:         "Módulo Empresas",
			Description: "Retorna uma Lista Paginada dos Projetos Básicos ACFFO.",
			Order:       "id_acffo",
			Fields: []filter.Field{
				{Param: "id_acffo", Type: filter.Int, Match: filter.Exact, Min: filter.GE(1), Description: "Identificador único do acffo"},
				{Param: "id_proposta", Type: filter.Int, Match: filter.Exact, Min: filter.GE(1), Description: "Identificador único da proposta"},
				{Param: "ultima_versao_projeto_basico", Type: filter.Int, Match: filter.Exact, Min: filter.GE(0), Description: "Número da versão atual do Projeto Básico"},
				{Param: "apelido_empreendimento_projeto_basico", Type: filter.String, Match: filter.Contains, Description: "Apelido do empreendimento"},
				{Param: "situacao_projeto_basico", Type: filter.String, Match: filter.Exact, Description: "Situação do Projeto Básico"},
				{Param: "situacao_spa", Type: filter.String, Match: filter.Exact, Description: "Situação do SPA"},
				{Param: "data_aceite_projeto_basico", Type: filter.Date, Match: filter.OnDate, Description: "Data do aceite do Projeto Básico (AAAA-MM-DD)"},
			},
		},
		Entity[ds.ProjetoBasicoLaeModuloEmpresas, ds.ProjetoBasicoLaeModuloEmpresas]{
			Path:        "/projeto-basico-lae-modulo-empresas",
			Tag:         "Módulo Empresas",
			Description: "Retorna uma Lista Paginada das LAEs do Projeto Básico.",
			Order:       "id_qci_acffo",
			Fields: []filter.Field{
				{Param: "id_qci_acffo", Type: filter.Int, Match: filter.Exact, Min: filter.GE(1), Description: "Identificador único do qci - acffo"},
				{Param: "id_acffo", Type: filter.Int, Match: filter.Exact, Min: filter.GE(1), Description: "Identificador único do acffo"},
				{Param: "id_proposta", Type: filter.Int, Match: filter.Exact, Min: filter.GE(1), Description: "Identificador único da proposta"},
				{Param: "situacao_lae_projeto_basico", Type: filter.String, Match: filter.Exact, Description: "Situação da LAE do Projeto Básico"},
				{Param: "emissao_lae_projeto_basico", Type: filter.String, Match: filter.Exact, Description: "Emissão da LAE do Projeto Básico"},
				{Param: "data_emissao_lae_projeto_basico", Type: filter.Date, Match: filter.OnDate, Description: "Data de Emissão da LAE do Projeto Básico (AAAA-MM-DD)"},
			},
		},
		Entity[ds.ProjetoBasicoMetasModuloEmpresas, ds.ProjetoBasicoMetasModuloEmpresas]{
			Path:        "/projeto-basico-metas-modulo-empresas",
			Tag:         "Módulo Empresas",
			Description: "Retorna uma Lista Paginada das Metas do Projeto Básico.",
			Order:       "id_meta_projeto_basico",
			Fields: []filter.Field{
				{Param: "id_meta_projeto_basico", Type: filter.Int, Match: filter.Exact, Min: filter.GE(1), Description: "Identificador único da meta - accfo"},
				{Param: "id_qci_acffo", Type: filter.Int, Match: filter.Exact, Min: filter.GE(1), Description: "Identificador único do qci - accfo"},
				{Param: "numero_meta_projeto_basico", Type: filter.Int, Match: filter.Exact, Min: filter.GE(1), Description: "Número da Meta"},
				{Param: "descricao_meta_projeto_basico", Type: filter.String, Match: filter.Contains, Description: "Descrição da Meta"},
				{Param: "nome_item_investimento_meta", Type: filter.String, Match: filter.Contains, Description: "Nome do Item de Investimento"},
				{Param: "descricao_subitem_investimento_meta", Type: filter.String, Match: filter.Contains, Description: "Descrição do Subitem de Investimento"},
				{Param: "quantidade_itens_meta_projeto_basico", Type: filter.Float, Match: filter.Exact, Description: "Quantidade de itens da Meta"},
				{Param: "unidade_item_investimento_meta", Type: filter.String, Match: filter.Contains, Description: "Código da unidade de fornecimento"},
			},
		},
		Entity[ds.ProjetoBasicoPropostaModuloEmpresas, ds.ProjetoBasicoPropostaModuloEmpresas]{
			Path:        "/projeto-basico-proposta-modulo-empresas",
			Tag:         "Módulo Empresas",
			Description: "Retorna uma Lista Paginada das Propostas do Projeto Básico.",
			Order:       "id_proposta_acffo",
			Fields: []filter.Field{
				{Param: "id_proposta_acffo", Type: filter.Int, Match: filter.Exact, Min: filter.GE(1), Description: "Identificador único do acffo da proposta"},
				{Param: "id_proposta", Type: filter.Int, Match: filter.Exact, Min: filter.GE(1), Description: "Identificador único da proposta"},
				{Param: "valor_global_proposta_projeto_basico", Type: filter.Float, Match: filter.Exact, Description: "Valor Global da Proposta do Projeto Básico"},
			},
		},
		Entity[ds.ProjetoBasicoSubmetasModuloEmpresas, ds.ProjetoBasicoSubmetasModuloEmpresas]{
			Path:        "/projeto-basico-submetas-modulo-empresas",
			Tag:         "Módulo Empresas",
			Description: "Retorna uma Lista Paginada das Submetas do Projeto Básico.",
			Order:       "id_submeta_projeto_basico",
			Fields: []filter.Field{
				{Param: "id_submeta_projeto_basico", Type: filter.Int, Match: filter.Exact, Min: filter.GE(1), Description: "Identificador único da submeta do projeto básico"},
				{Param: "id_meta_projeto_basico", Type: filter.Int, Match: filter.Exact, Min: filter.GE(1), Description: "Identificador único da meta do projeto básico"},
				{Param: "lote_submeta_projeto_basico", Type: filter.Int, Match: filter.Exact, Description: "Número do Lote"},
				{Param: "numero_submeta_projeto_basico", Type: filter.String, Match: filter.Exact, Description: "Número da Submeta"},
				{Param: "descricao_submeta_projeto_basico", Type: filter.String, Match: filter.Contains, Description: "Descrição da Submeta"},
				{Param: "situacao_submeta_projeto_basico", Type: filter.String, Match: filter.Exact, Description: "Indicador da Situação"},
				{Param: "valor_repasse_submeta_projeto_basico", Type: filter.Float, Match: filter.Exact, Description: "Valor do Repasse"},
				{Param: "valor_contrapartida_submeta_projeto_basico", Type: filter.Float, Match: filter.Exact, Description: "Valor da Contrapartida"},
				{Param: "valor_outros_submeta_projeto_basico", Type: filter.Float, Match: filter.Exact, Description: "Valor Outros"},
				{Param: "valor_total_submeta_projeto_basico", Type: filter.Float, Match: filter.Exact, Description: "Valor Total"},
				{Param: "data_previsao_inicio_obra_projeto_basico", Type: filter.Date, Match: filter.OnDate, Description: "Data de previsão do início da obra (AAAA-MM-DD)"},
				{Param: "quantidade_meses_duracao_obra_projeto_basico", Type: filter.Int, Match: filter.Exact, Description: "Quantidade de meses de duração da obra"},
				{Param: "database_obra_projeto_basico", Type: filter.Date, Match: filter.OnDate, Description: "Data-base da PO (AAAA-MM-DD)"},
				{Param: "sigla_localidade_obra_projeto_basico", Type: filter.String, Match: filter.Exact, Enum: ufs, Description: "Sigla da localidade"},
				{Param: "obra_acompanhada_por_evento_projeto_basico", Type: filter.String, Match: filter.Exact, Description: "Indicador de acompanhamento de eventos"},
			},
		},
	}
}

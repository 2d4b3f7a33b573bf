package handler

// Общие перечисления значений фильтров
var (
	ufs = []string{
		"AC", "AL", "AM", "AP", "BA", "CE", "DF", "ES", "GO", "MA", "MG", "MS", "MT", "PA",
		"PB", "PE", "PI", "PR", "RJ", "RN", "RO", "RR", "RS", "SC", "SE", "SP", "TO",
	}

	simNao = []string{"SIM", "NÃO"}

	modalidades = []string{
		"CONTRATO DE REPASSE", "CONVENIO", "TERMO DE COLABORACAO", "TERMO DE FOMENTO", "TERMO DE PARCERIA",
	}
)

package handler

// Routes полный каталог списочных эндпоинтов
func Routes() []Route {
	groups := [][]Route{
		programaRoutes(),
		propostaRoutes(),
		pacRoutes(),
		planoTrabalhoRoutes(),
		instrumentoRoutes(),
		financeiroRoutes(),
		emendaRoutes(),
		licitacaoRoutes(),
		outrosRoutes(),
		moduloEmpresasRoutes(),
	}

	var routes []Route
	for _, g := range groups {
		routes = append(routes, g...)
	}
	return routes
}

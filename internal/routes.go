package internal

import (
	"net/http"

	"drd/internal/controllers"
	"drd/internal/providers"
)

func InitRoutes(apiController *controllers.ApiController) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()

	routers.Get("/upcoming", http.HandlerFunc(apiController.GetUpcoming))
	routers.Get("/result", http.HandlerFunc(apiController.GetLatestResult))
	return routers
}

package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/graphql-go/graphql"

	"github.com/jhoicas/crm-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Schema  graphql.Schema
	Receipt *usecase.ReceiptUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	gqlHandler := NewGraphQLHandler(deps.Schema)
	app.Post("/graphql", gqlHandler.Execute)
	app.Get("/graphql", gqlHandler.Playground)

	api := app.Group("/api")
	receiptHandler := NewReceiptHandler(deps.Receipt)
	api.Get("/orders/:id/receipt", receiptHandler.Download)
}

package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/graphql-go/graphql"

	"github.com/jhoicas/crm-api/internal/application/dto"
)

// GraphQLHandler ejecuta operaciones GraphQL sobre el esquema de la app.
type GraphQLHandler struct {
	schema graphql.Schema
}

// NewGraphQLHandler construye el handler.
func NewGraphQLHandler(schema graphql.Schema) *GraphQLHandler {
	return &GraphQLHandler{schema: schema}
}

type graphqlRequest struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// Execute POST /graphql
// Los fallos duros de las mutaciones llegan aquí ya convertidos en entradas
// del arreglo errors del resultado; el status HTTP sigue siendo 200, como
// dicta el transporte GraphQL.
func (h *GraphQLHandler) Execute(c *fiber.Ctx) error {
	var req graphqlRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	result := graphql.Do(graphql.Params{
		Schema:         h.schema,
		RequestString:  req.Query,
		OperationName:  req.OperationName,
		VariableValues: req.Variables,
		Context:        c.UserContext(),
	})
	return c.JSON(result)
}

// Playground GET /graphql
func (h *GraphQLHandler) Playground(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(playgroundHTML)
}

// GraphiQL servido desde CDN, mismo endpoint que la API (GET = UI, POST = exec).
const playgroundHTML = `<!DOCTYPE html>
<html>
<head>
  <title>CRM GraphQL</title>
  <link rel="stylesheet" href="https://unpkg.com/graphiql/graphiql.min.css" />
</head>
<body style="margin: 0;">
  <div id="graphiql" style="height: 100vh;"></div>
  <script src="https://unpkg.com/react/umd/react.production.min.js"></script>
  <script src="https://unpkg.com/react-dom/umd/react-dom.production.min.js"></script>
  <script src="https://unpkg.com/graphiql/graphiql.min.js"></script>
  <script>
    ReactDOM.render(
      React.createElement(GraphiQL, {
        fetcher: GraphiQL.createFetcher({ url: '/graphql' }),
      }),
      document.getElementById('graphiql')
    );
  </script>
</body>
</html>`

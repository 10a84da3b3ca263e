package graphql

import "strconv"

// Forma de conexión estilo Relay para los queries allCustomers/allProducts/
// allOrders. Los cursores son posiciones absolutas dentro del resultado
// filtrado; la paginación es first/offset, no por cursor opaco.

type pageInfo struct {
	HasNextPage     bool   `json:"hasNextPage"`
	HasPreviousPage bool   `json:"hasPreviousPage"`
	StartCursor     string `json:"startCursor"`
	EndCursor       string `json:"endCursor"`
}

type edge struct {
	Node   interface{} `json:"node"`
	Cursor string      `json:"cursor"`
}

type connection struct {
	Edges      []edge   `json:"edges"`
	PageInfo   pageInfo `json:"pageInfo"`
	TotalCount int      `json:"totalCount"`
}

// newConnection arma la conexión a partir de la página ya consultada.
// total es el conteo del resultado filtrado completo.
func newConnection[T any](items []T, offset, total int) *connection {
	edges := make([]edge, 0, len(items))
	for i, item := range items {
		edges = append(edges, edge{Node: item, Cursor: strconv.Itoa(offset + i)})
	}
	pi := pageInfo{
		HasNextPage:     offset+len(items) < total,
		HasPreviousPage: offset > 0,
	}
	if len(edges) > 0 {
		pi.StartCursor = edges[0].Cursor
		pi.EndCursor = edges[len(edges)-1].Cursor
	}
	return &connection{Edges: edges, PageInfo: pi, TotalCount: total}
}

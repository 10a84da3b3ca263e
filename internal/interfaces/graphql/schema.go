// Package graphql arma el esquema GraphQL de la API en runtime y resuelve
// cada campo contra los casos de uso de la aplicación.
//
// Taxonomía de errores del esquema:
//   - createCustomer y bulkCreateCustomers devuelven rechazos de validación
//     como datos del payload (message / errors): fallos suaves.
//   - createProduct y createOrder devuelven el error desde el resolver, y el
//     ejecutor lo expone en el arreglo errors de la respuesta: fallos duros.
package graphql

import (
	"github.com/graphql-go/graphql"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/application/usecase"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

// Resolver agrupa los casos de uso que alimentan el esquema.
type Resolver struct {
	Customers *usecase.CustomerUseCase
	Products  *usecase.ProductUseCase
	Orders    *usecase.OrderUseCase
}

type productPayload struct {
	Product *entity.Product `json:"product"`
}

type orderPayload struct {
	Order *entity.Order `json:"order"`
}

// NewSchema construye el esquema completo (queries, conexiones y mutaciones).
func NewSchema(r *Resolver) (graphql.Schema, error) {
	customerType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Customer",
		Fields: graphql.Fields{
			"id":    &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"name":  &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"email": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"phone": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					c, ok := p.Source.(*entity.Customer)
					if !ok || c.Phone == "" {
						return nil, nil
					}
					return c.Phone, nil
				},
			},
			"createdAt": &graphql.Field{Type: graphql.NewNonNull(graphql.DateTime)},
			"updatedAt": &graphql.Field{Type: graphql.NewNonNull(graphql.DateTime)},
		},
	})

	productType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Product",
		Fields: graphql.Fields{
			"id":    &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"name":  &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"price": &graphql.Field{Type: graphql.NewNonNull(decimalScalar)},
			"stock": &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		},
	})

	orderType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Order",
		Fields: graphql.Fields{
			"id": &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"customer": &graphql.Field{
				Type: graphql.NewNonNull(customerType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					o := p.Source.(*entity.Order)
					return r.Customers.GetByID(o.CustomerID)
				},
			},
			"products": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(productType))),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					o := p.Source.(*entity.Order)
					return r.Products.ListByOrder(o.ID)
				},
			},
			"orderDate":   &graphql.Field{Type: graphql.NewNonNull(graphql.DateTime)},
			"totalAmount": &graphql.Field{Type: graphql.NewNonNull(decimalScalar)},
		},
	})

	customerInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "CustomerInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"name":  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"email": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"phone": &graphql.InputObjectFieldConfig{Type: graphql.String},
		},
	})

	productInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "ProductInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"name":  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"price": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(decimalScalar)},
			"stock": &graphql.InputObjectFieldConfig{Type: graphql.Int},
		},
	})

	orderInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "OrderInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"customerId": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.ID)},
			"productIds": &graphql.InputObjectFieldConfig{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(graphql.ID))),
			},
			"orderDate": &graphql.InputObjectFieldConfig{Type: graphql.DateTime},
		},
	})

	customerFilterInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "CustomerFilterInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"nameContains":  &graphql.InputObjectFieldConfig{Type: graphql.String},
			"emailContains": &graphql.InputObjectFieldConfig{Type: graphql.String},
			"createdAtGte":  &graphql.InputObjectFieldConfig{Type: graphql.DateTime},
			"createdAtLte":  &graphql.InputObjectFieldConfig{Type: graphql.DateTime},
			"phonePattern":  &graphql.InputObjectFieldConfig{Type: graphql.String},
		},
	})

	productFilterInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "ProductFilterInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"nameContains": &graphql.InputObjectFieldConfig{Type: graphql.String},
			"priceGte":     &graphql.InputObjectFieldConfig{Type: decimalScalar},
			"priceLte":     &graphql.InputObjectFieldConfig{Type: decimalScalar},
			"stockGte":     &graphql.InputObjectFieldConfig{Type: graphql.Int},
			"stockLte":     &graphql.InputObjectFieldConfig{Type: graphql.Int},
			"lowStock":     &graphql.InputObjectFieldConfig{Type: graphql.Boolean},
		},
	})

	orderFilterInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "OrderFilterInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"totalAmountGte": &graphql.InputObjectFieldConfig{Type: decimalScalar},
			"totalAmountLte": &graphql.InputObjectFieldConfig{Type: decimalScalar},
			"orderDateGte":   &graphql.InputObjectFieldConfig{Type: graphql.DateTime},
			"orderDateLte":   &graphql.InputObjectFieldConfig{Type: graphql.DateTime},
			"customerName":   &graphql.InputObjectFieldConfig{Type: graphql.String},
			"productId":      &graphql.InputObjectFieldConfig{Type: graphql.ID},
		},
	})

	pageInfoType := graphql.NewObject(graphql.ObjectConfig{
		Name: "PageInfo",
		Fields: graphql.Fields{
			"hasNextPage":     &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
			"hasPreviousPage": &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
			"startCursor":     &graphql.Field{Type: graphql.String},
			"endCursor":       &graphql.Field{Type: graphql.String},
		},
	})

	customerConnection := connectionType("Customer", customerType, pageInfoType)
	productConnection := connectionType("Product", productType, pageInfoType)
	orderConnection := connectionType("Order", orderType, pageInfoType)

	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"hello": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return "Hello, GraphQL!", nil
				},
			},
			"customers": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(customerType))),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Customers.List(repository.CustomerFilter{}, 0, 0)
				},
			},
			"products": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(productType))),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Products.List(repository.ProductFilter{}, 0, 0)
				},
			},
			"orders": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(orderType))),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Orders.List(repository.OrderFilter{}, 0, 0)
				},
			},
			"allCustomers": &graphql.Field{
				Type: graphql.NewNonNull(customerConnection),
				Args: connectionArgs(customerFilterInput),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					filter := repository.CustomerFilter{}
					if m, ok := p.Args["filter"].(map[string]interface{}); ok {
						filter = decodeCustomerFilter(m)
					}
					first, offset := pageArgs(p.Args)
					total, err := r.Customers.Count(filter)
					if err != nil {
						return nil, err
					}
					items, err := r.Customers.List(filter, first, offset)
					if err != nil {
						return nil, err
					}
					return newConnection(items, offset, total), nil
				},
			},
			"allProducts": &graphql.Field{
				Type: graphql.NewNonNull(productConnection),
				Args: connectionArgs(productFilterInput),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					filter := repository.ProductFilter{}
					if m, ok := p.Args["filter"].(map[string]interface{}); ok {
						filter = decodeProductFilter(m)
					}
					first, offset := pageArgs(p.Args)
					total, err := r.Products.Count(filter)
					if err != nil {
						return nil, err
					}
					items, err := r.Products.List(filter, first, offset)
					if err != nil {
						return nil, err
					}
					return newConnection(items, offset, total), nil
				},
			},
			"allOrders": &graphql.Field{
				Type: graphql.NewNonNull(orderConnection),
				Args: connectionArgs(orderFilterInput),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					filter := repository.OrderFilter{}
					if m, ok := p.Args["filter"].(map[string]interface{}); ok {
						filter = decodeOrderFilter(m)
					}
					first, offset := pageArgs(p.Args)
					total, err := r.Orders.Count(filter)
					if err != nil {
						return nil, err
					}
					items, err := r.Orders.List(filter, first, offset)
					if err != nil {
						return nil, err
					}
					return newConnection(items, offset, total), nil
				},
			},
		},
	})

	createCustomerPayload := graphql.NewObject(graphql.ObjectConfig{
		Name: "CreateCustomerPayload",
		Fields: graphql.Fields{
			"customer": &graphql.Field{Type: customerType},
			"message":  &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	bulkCreateCustomersPayload := graphql.NewObject(graphql.ObjectConfig{
		Name: "BulkCreateCustomersPayload",
		Fields: graphql.Fields{
			"customers": &graphql.Field{Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(customerType)))},
			"errors":    &graphql.Field{Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(graphql.String)))},
		},
	})

	createProductPayload := graphql.NewObject(graphql.ObjectConfig{
		Name: "CreateProductPayload",
		Fields: graphql.Fields{
			"product": &graphql.Field{Type: productType},
		},
	})

	createOrderPayload := graphql.NewObject(graphql.ObjectConfig{
		Name: "CreateOrderPayload",
		Fields: graphql.Fields{
			"order": &graphql.Field{Type: orderType},
		},
	})

	mutationType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"createCustomer": &graphql.Field{
				Type: graphql.NewNonNull(createCustomerPayload),
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(customerInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					in := decodeCustomerInput(p.Args["input"].(map[string]interface{}))
					return r.Customers.Create(in)
				},
			},
			"bulkCreateCustomers": &graphql.Field{
				Type: graphql.NewNonNull(bulkCreateCustomersPayload),
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{
						Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(customerInput))),
					},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					raw := p.Args["input"].([]interface{})
					inputs := make([]dto.CreateCustomerInput, 0, len(raw))
					for _, item := range raw {
						inputs = append(inputs, decodeCustomerInput(item.(map[string]interface{})))
					}
					return r.Customers.BulkCreate(p.Context, inputs)
				},
			},
			"createProduct": &graphql.Field{
				Type: graphql.NewNonNull(createProductPayload),
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(productInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					m := p.Args["input"].(map[string]interface{})
					price, _ := m["price"].(decimal.Decimal)
					in := dto.CreateProductInput{
						Name:  m["name"].(string),
						Price: price,
						Stock: optInt(m, "stock"),
					}
					product, err := r.Products.Create(in)
					if err != nil {
						return nil, err
					}
					return &productPayload{Product: product}, nil
				},
			},
			"createOrder": &graphql.Field{
				Type: graphql.NewNonNull(createOrderPayload),
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(orderInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					m := p.Args["input"].(map[string]interface{})
					var productIDs []string
					if raw, ok := m["productIds"].([]interface{}); ok {
						for _, id := range raw {
							productIDs = append(productIDs, id.(string))
						}
					}
					in := dto.CreateOrderInput{
						CustomerID: m["customerId"].(string),
						ProductIDs: productIDs,
						OrderDate:  optTime(m, "orderDate"),
					}
					order, err := r.Orders.Create(p.Context, in)
					if err != nil {
						return nil, err
					}
					return &orderPayload{Order: order}, nil
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    queryType,
		Mutation: mutationType,
	})
}

func decodeCustomerInput(m map[string]interface{}) dto.CreateCustomerInput {
	in := dto.CreateCustomerInput{
		Name:  m["name"].(string),
		Email: m["email"].(string),
	}
	if phone, ok := m["phone"].(string); ok {
		in.Phone = phone
	}
	return in
}

// connectionType genera el par Edge/Connection para un tipo de nodo.
func connectionType(name string, nodeType *graphql.Object, pageInfoType *graphql.Object) *graphql.Object {
	edgeType := graphql.NewObject(graphql.ObjectConfig{
		Name: name + "Edge",
		Fields: graphql.Fields{
			"node":   &graphql.Field{Type: graphql.NewNonNull(nodeType)},
			"cursor": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		},
	})
	return graphql.NewObject(graphql.ObjectConfig{
		Name: name + "Connection",
		Fields: graphql.Fields{
			"edges":      &graphql.Field{Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(edgeType)))},
			"pageInfo":   &graphql.Field{Type: graphql.NewNonNull(pageInfoType)},
			"totalCount": &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		},
	})
}

func connectionArgs(filterInput *graphql.InputObject) graphql.FieldConfigArgument {
	return graphql.FieldConfigArgument{
		"filter": &graphql.ArgumentConfig{Type: filterInput},
		"first":  &graphql.ArgumentConfig{Type: graphql.Int},
		"offset": &graphql.ArgumentConfig{Type: graphql.Int},
	}
}

func pageArgs(args map[string]interface{}) (first, offset int) {
	if v, ok := args["first"].(int); ok && v > 0 {
		first = v
	}
	if v, ok := args["offset"].(int); ok && v > 0 {
		offset = v
	}
	return first, offset
}

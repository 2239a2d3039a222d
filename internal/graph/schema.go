// Package graph defines the query/mutation schema and binds each root
// field to a typed resolver method.
package graph

import (
	"github.com/graphql-go/graphql"
)

// NewSchema builds the executable schema. The binding between schema
// field and handler is established here, once, at startup:
//
//	events      -> Resolver.ListEvents
//	users       -> Resolver.ListUsers
//	createEvent -> Resolver.CreateEvent
//	createUser  -> Resolver.CreateUser
func NewSchema(r *Resolver) (graphql.Schema, error) {
	eventType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Event",
		Fields: graphql.Fields{
			"id":          &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"title":       &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"description": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"price":       &graphql.Field{Type: graphql.NewNonNull(graphql.Float)},
			"date":        &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	userType := graphql.NewObject(graphql.ObjectConfig{
		Name: "User",
		Fields: graphql.Fields{
			"id":    &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"name":  &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"email": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			// Nullable on purpose, and populated with the stored hash.
			"password": &graphql.Field{Type: graphql.String},
		},
	})

	eventInputType := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "EventInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"title":       &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"description": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"price":       &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Float)},
			"date":        &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	userInputType := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "UserInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"name":     &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"email":    &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"password": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "RootQuery",
		Fields: graphql.Fields{
			string(OpEvents): &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(eventType))),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					items, err := r.ListEvents(p.Context)
					if err != nil {
						return nil, err
					}
					return newEventPayloads(items), nil
				},
			},
			string(OpUsers): &graphql.Field{
				Type: graphql.NewList(graphql.NewNonNull(userType)),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					items, err := r.ListUsers(p.Context)
					if err != nil {
						return nil, err
					}
					return newUserPayloads(items), nil
				},
			},
		},
	})

	mutationType := graphql.NewObject(graphql.ObjectConfig{
		Name: "RootMutation",
		Fields: graphql.Fields{
			string(OpCreateEvent): &graphql.Field{
				Type: eventType,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: eventInputType},
				},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					created, err := r.CreateEvent(p.Context, decodeEventInput(p.Args["input"]))
					if err != nil {
						return nil, err
					}
					return newEventPayload(created), nil
				},
			},
			string(OpCreateUser): &graphql.Field{
				Type: userType,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: userInputType},
				},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					created, err := r.CreateUser(p.Context, decodeUserInput(p.Args["input"]))
					if err != nil {
						return nil, err
					}
					return newUserPayload(created), nil
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    queryType,
		Mutation: mutationType,
	})
}

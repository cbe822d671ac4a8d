// Package graph は映画カタログのGraphQLスキーマとリゾルバを定義する。
//
// 読み取り専用クエリ（movies, actors, movie）は匿名でも実行できる。
// カタログを変更するミューテーションはすべて認証ゲートを通過する必要があり、
// NotFound・バリデーション失敗は {ok, error, <entity>} 形式の
// 構造化ペイロードで返す（グラフ層のエラーにはしない）。
package graph

import (
	"context"
	"fmt"

	"github.com/graphql-go/graphql"

	"github.com/MEDLAO/graphql-project-1/internal/catalog"
	"github.com/MEDLAO/graphql-project-1/internal/model"
)

// CatalogService はリゾルバが必要とするカタログ操作のインターフェース。
type CatalogService interface {
	ListMovies(ctx context.Context) ([]*model.Movie, error)
	GetMovie(ctx context.Context, id int) (*model.Movie, error)
	ListActors(ctx context.Context) ([]*model.Actor, error)
	ActorsByMovie(ctx context.Context, movieID int) ([]*model.Actor, error)
	AddMovie(ctx context.Context, input catalog.AddMovieInput) (*model.Movie, error)
	UpdateMovie(ctx context.Context, input catalog.UpdateMovieInput) (*model.Movie, error)
	DeleteMovie(ctx context.Context, id int) (*model.Movie, error)
	AddActor(ctx context.Context, input catalog.AddActorInput) (*model.Actor, error)
	UpdateActor(ctx context.Context, input catalog.UpdateActorInput) (*model.Actor, error)
	DeleteActor(ctx context.Context, id int) (*model.Actor, error)
}

// OperationRecorder はGraphQL操作数の記録に必要なインターフェース。
// metrics.Collectorの部分集合として定義する。
type OperationRecorder interface {
	RecordGraphOperation(operation string)
}

// SchemaDeps はNewSchemaに必要な依存関係をまとめた構造体。
type SchemaDeps struct {
	Catalog CatalogService
	Metrics OperationRecorder // nilの場合は記録しない
}

// MoviePayload は映画ミューテーションの構造化ペイロード。
type MoviePayload struct {
	OK    bool         `json:"ok"`
	Error *string      `json:"error"`
	Movie *model.Movie `json:"movie"`
}

// ActorPayload は俳優ミューテーションの構造化ペイロード。
type ActorPayload struct {
	OK    bool         `json:"ok"`
	Error *string      `json:"error"`
	Actor *model.Actor `json:"actor"`
}

// NewSchema はカタログのGraphQLスキーマを構築する。
func NewSchema(deps SchemaDeps) (graphql.Schema, error) {
	record := func(operation string) {
		if deps.Metrics != nil {
			deps.Metrics.RecordGraphOperation(operation)
		}
	}

	actorType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Actor",
		Fields: graphql.Fields{
			"id":      &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"name":    &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"movieId": &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		},
	})

	movieType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Movie",
		Fields: graphql.Fields{
			"id":     &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"title":  &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"year":   &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"rating": &graphql.Field{Type: graphql.NewNonNull(graphql.Float)},
			"actors": &graphql.Field{
				Type: graphql.NewList(graphql.NewNonNull(actorType)),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					movie, ok := p.Source.(*model.Movie)
					if !ok {
						return nil, fmt.Errorf("unexpected source type %T for Movie.actors", p.Source)
					}
					return deps.Catalog.ActorsByMovie(p.Context, movie.ID)
				},
			},
		},
	})

	moviePayloadType := graphql.NewObject(graphql.ObjectConfig{
		Name: "MoviePayload",
		Fields: graphql.Fields{
			"ok":    &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
			"error": &graphql.Field{Type: graphql.String},
			"movie": &graphql.Field{Type: movieType},
		},
	})

	actorPayloadType := graphql.NewObject(graphql.ObjectConfig{
		Name: "ActorPayload",
		Fields: graphql.Fields{
			"ok":    &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
			"error": &graphql.Field{Type: graphql.String},
			"actor": &graphql.Field{Type: actorType},
		},
	})

	addMovieInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "AddMovieInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"title":  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"year":   &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Int)},
			"rating": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Float)},
		},
	})

	updateMovieInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "UpdateMovieInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"id":     &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Int)},
			"title":  &graphql.InputObjectFieldConfig{Type: graphql.String},
			"year":   &graphql.InputObjectFieldConfig{Type: graphql.Int},
			"rating": &graphql.InputObjectFieldConfig{Type: graphql.Float},
		},
	})

	deleteMovieInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "DeleteMovieInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"id": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Int)},
		},
	})

	addActorInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "AddActorInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"name":    &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"movieId": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Int)},
		},
	})

	updateActorInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "UpdateActorInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"id":      &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Int)},
			"name":    &graphql.InputObjectFieldConfig{Type: graphql.String},
			"movieId": &graphql.InputObjectFieldConfig{Type: graphql.Int},
		},
	})

	deleteActorInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "DeleteActorInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"id": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Int)},
		},
	})

	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"movies": &graphql.Field{
				Type: graphql.NewList(graphql.NewNonNull(movieType)),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					record("movies")
					return deps.Catalog.ListMovies(p.Context)
				},
			},
			"actors": &graphql.Field{
				Type: graphql.NewList(graphql.NewNonNull(actorType)),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					record("actors")
					return deps.Catalog.ListActors(p.Context)
				},
			},
			"movie": &graphql.Field{
				Type: movieType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					record("movie")
					id, ok := p.Args["id"].(int)
					if !ok {
						return nil, fmt.Errorf("id argument is required")
					}
					movie, err := deps.Catalog.GetMovie(p.Context, id)
					if err != nil {
						return nil, err
					}
					if movie == nil {
						return nil, nil
					}
					return movie, nil
				},
			},
		},
	})

	mutationType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"addMovie": &graphql.Field{
				Type: graphql.NewNonNull(moviePayloadType),
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(addMovieInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					record("addMovie")
					if _, err := requireUser(p.Context); err != nil {
						return nil, err
					}

					input, err := inputMap(p)
					if err != nil {
						return nil, err
					}

					movie, err := deps.Catalog.AddMovie(p.Context, catalog.AddMovieInput{
						Title:  stringArg(input, "title"),
						Year:   intArg(input, "year"),
						Rating: floatArg(input, "rating"),
					})
					return moviePayload(movie, err)
				},
			},
			"updateMovie": &graphql.Field{
				Type: graphql.NewNonNull(moviePayloadType),
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(updateMovieInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					record("updateMovie")
					if _, err := requireUser(p.Context); err != nil {
						return nil, err
					}

					input, err := inputMap(p)
					if err != nil {
						return nil, err
					}

					movie, err := deps.Catalog.UpdateMovie(p.Context, catalog.UpdateMovieInput{
						ID:     intArg(input, "id"),
						Title:  optStringArg(input, "title"),
						Year:   optIntArg(input, "year"),
						Rating: optFloatArg(input, "rating"),
					})
					return moviePayload(movie, err)
				},
			},
			"deleteMovie": &graphql.Field{
				Type: graphql.NewNonNull(moviePayloadType),
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(deleteMovieInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					record("deleteMovie")
					if _, err := requireUser(p.Context); err != nil {
						return nil, err
					}

					input, err := inputMap(p)
					if err != nil {
						return nil, err
					}

					movie, err := deps.Catalog.DeleteMovie(p.Context, intArg(input, "id"))
					return moviePayload(movie, err)
				},
			},
			"addActor": &graphql.Field{
				Type: graphql.NewNonNull(actorType),
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(addActorInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					record("addActor")
					if _, err := requireUser(p.Context); err != nil {
						return nil, err
					}

					input, err := inputMap(p)
					if err != nil {
						return nil, err
					}

					return deps.Catalog.AddActor(p.Context, catalog.AddActorInput{
						Name:    stringArg(input, "name"),
						MovieID: intArg(input, "movieId"),
					})
				},
			},
			"updateActor": &graphql.Field{
				Type: graphql.NewNonNull(actorPayloadType),
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(updateActorInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					record("updateActor")
					if _, err := requireUser(p.Context); err != nil {
						return nil, err
					}

					input, err := inputMap(p)
					if err != nil {
						return nil, err
					}

					actor, err := deps.Catalog.UpdateActor(p.Context, catalog.UpdateActorInput{
						ID:      intArg(input, "id"),
						Name:    optStringArg(input, "name"),
						MovieID: optIntArg(input, "movieId"),
					})
					return actorPayload(actor, err)
				},
			},
			"deleteActor": &graphql.Field{
				Type: graphql.NewNonNull(actorPayloadType),
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(deleteActorInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					record("deleteActor")
					if _, err := requireUser(p.Context); err != nil {
						return nil, err
					}

					input, err := inputMap(p)
					if err != nil {
						return nil, err
					}

					actor, err := deps.Catalog.DeleteActor(p.Context, intArg(input, "id"))
					return actorPayload(actor, err)
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    queryType,
		Mutation: mutationType,
	})
}

// moviePayload はサービスの結果を構造化ペイロードに変換する。
// NotFound・バリデーション失敗はok=falseのペイロードとして返し、
// それ以外のエラーはグラフ層のエラーとして伝搬させる。
func moviePayload(movie *model.Movie, err error) (interface{}, error) {
	if err != nil {
		if apiErr, ok := catalog.IsPayloadError(err); ok {
			msg := apiErr.Message
			return &MoviePayload{OK: false, Error: &msg}, nil
		}
		return nil, err
	}
	return &MoviePayload{OK: true, Movie: movie}, nil
}

// actorPayload はサービスの結果を構造化ペイロードに変換する。
func actorPayload(actor *model.Actor, err error) (interface{}, error) {
	if err != nil {
		if apiErr, ok := catalog.IsPayloadError(err); ok {
			msg := apiErr.Message
			return &ActorPayload{OK: false, Error: &msg}, nil
		}
		return nil, err
	}
	return &ActorPayload{OK: true, Actor: actor}, nil
}

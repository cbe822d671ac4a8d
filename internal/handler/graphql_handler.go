package handler

import (
	"encoding/json"
	"net/http"

	"github.com/graphql-go/graphql"

	"github.com/MEDLAO/graphql-project-1/internal/model"
)

// graphqlRequest はGraphQLリクエストのボディ。
type graphqlRequest struct {
	Query         string                 `json:"query"`
	Variables     map[string]interface{} `json:"variables"`
	OperationName string                 `json:"operationName"`
}

// GraphQLHandler は/graphqlエンドポイントのHTTPハンドラー。
// クエリとミューテーションの両方を受け付ける。
type GraphQLHandler struct {
	schema graphql.Schema
}

// NewGraphQLHandler はGraphQLHandlerを生成する。
func NewGraphQLHandler(schema graphql.Schema) *GraphQLHandler {
	return &GraphQLHandler{schema: schema}
}

// Query はGraphQLリクエストを実行する。
// リクエストコンテキスト（解決済みユーザーを含む）をそのままリゾルバに渡す。
// 実行エラーはGraphQLのレスポンス規約どおりHTTP 200のerrorsフィールドで返す。
// POST /graphql
func (h *GraphQLHandler) Query(w http.ResponseWriter, r *http.Request) {
	var req graphqlRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAPIErrorResponse(w, http.StatusBadRequest, &model.APIError{
			Code:     "INVALID_REQUEST",
			Message:  "Request body must be JSON with a query field",
			Category: "validation",
			Action:   "Send a JSON body like {\"query\": ...}.",
		})
		return
	}
	if req.Query == "" {
		writeAPIErrorResponse(w, http.StatusBadRequest, &model.APIError{
			Code:     "EMPTY_QUERY",
			Message:  "Query cannot be empty",
			Category: "validation",
			Action:   "Provide a GraphQL query or mutation.",
		})
		return
	}

	result := graphql.Do(graphql.Params{
		Schema:         h.schema,
		RequestString:  req.Query,
		VariableValues: req.Variables,
		OperationName:  req.OperationName,
		Context:        r.Context(),
	})

	writeJSON(w, http.StatusOK, result)
}

package graph

import (
	"context"

	"github.com/MEDLAO/graphql-project-1/internal/middleware"
	"github.com/MEDLAO/graphql-project-1/internal/model"
)

// requireUser はカタログを変更する全ミューテーションが副作用の前に通す認証ゲート。
// コンテキストに解決済みユーザーがいればそれを返し、
// 匿名の場合はUNAUTHENTICATEDエラーを返す。
// このエラーはペイロードではなくグラフ層のエラーとしてクライアントに届く。
func requireUser(ctx context.Context) (*model.User, error) {
	if user := middleware.UserFromContext(ctx); user != nil {
		return user, nil
	}
	return nil, model.NewUnauthenticatedError()
}

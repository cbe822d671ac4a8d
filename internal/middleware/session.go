// Package middleware はHTTPミドルウェアを提供する。
package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/MEDLAO/graphql-project-1/internal/model"
)

// contextKey はコンテキストに値を格納するための型安全なキー。
type contextKey string

var (
	// userContextKey はリクエストコンテキストに解決済みユーザーを格納するためのキー。
	userContextKey = contextKey("user")
	// sessionTokenContextKey はリクエストコンテキストに生のセッショントークンを格納するためのキー。
	sessionTokenContextKey = contextKey("session_token")
)

// SessionFinder はセッションの検索に必要なインターフェース。
// repository.SessionRepositoryの部分集合として定義する。
type SessionFinder interface {
	FindByID(ctx context.Context, id string) (*model.Session, error)
}

// UserFinder はユーザーの検索に必要なインターフェース。
// repository.UserRepositoryの部分集合として定義する。
type UserFinder interface {
	FindByID(ctx context.Context, id int) (*model.User, error)
}

// NewSessionMiddleware はHTTP Only Cookieからセッションを読み取り、
// 解決できたユーザーと生トークンをリクエストコンテキストに注入する
// ミドルウェアを返す。リゾルバ実行前にリクエストごとに1回だけ走る。
//
// Cookieがない・トークンが未知・期限切れの場合は匿名のまま通す。
// 読み取り専用クエリは匿名でも許可されるため、拒否は行わない。
// 変更操作の拒否はグラフ層の認証ゲートが担当する。
func NewSessionMiddleware(cookieName string, sessions SessionFinder, users UserFinder) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// 1. Cookieからセッショントークンを取得
			cookie, err := r.Cookie(cookieName)
			if err != nil || cookie.Value == "" {
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), sessionTokenContextKey, cookie.Value)

			// 2. セッションを解決（期限切れはストア側で遅延削除される）
			session, err := sessions.FindByID(ctx, cookie.Value)
			if err != nil {
				slog.Error("failed to find session",
					slog.String("error", err.Error()),
				)
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}
			if session == nil {
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			// 3. セッションの所有者を解決
			user, err := users.FindByID(ctx, session.UserID)
			if err != nil {
				slog.Error("failed to find session user",
					slog.String("error", err.Error()),
				)
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}
			if user == nil {
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			// 4. 解決済みユーザーをコンテキストに注入
			ctx = context.WithValue(ctx, userContextKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFromContext はリクエストコンテキストから解決済みユーザーを取得する。
// 匿名リクエストではnilを返す。
func UserFromContext(ctx context.Context) *model.User {
	user, ok := ctx.Value(userContextKey).(*model.User)
	if !ok {
		return nil
	}
	return user
}

// SessionTokenFromContext はリクエストコンテキストから生のセッショントークンを取得する。
// Cookieが送られていない場合は空文字列を返す。
func SessionTokenFromContext(ctx context.Context) string {
	token, ok := ctx.Value(sessionTokenContextKey).(string)
	if !ok {
		return ""
	}
	return token
}

// ContextWithUser はコンテキストに解決済みユーザーを注入する。
// テストやミドルウェア以外のコンテキスト生成で使用する。
func ContextWithUser(ctx context.Context, user *model.User) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

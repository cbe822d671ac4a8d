package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"
)

// リゾルバやハンドラがpanicした場合にクライアントへ返すボディ。
// handlerパッケージの統一エラーフォーマットと同じ形。middlewareは
// handlerをimportできないため定数で持つ。
const recoveryResponseBody = `{"code":"INTERNAL_ERROR","message":"An internal error occurred","category":"system","action":"Wait a moment and try again."}`

// NewRecoveryMiddleware はハンドラ内のpanicをプロセス停止にさせず、
// 統一フォーマットの500 JSONレスポンスに変換するミドルウェアを返す。
// panicの内容とスタックトレースはログにのみ記録し、クライアントには返さない。
func NewRecoveryMiddleware() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					slog.Error("panic recovered",
						slog.Any("panic", rec),
						slog.String("method", r.Method),
						slog.String("path", r.URL.Path),
						slog.String("stack", string(debug.Stack())),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					w.Write([]byte(recoveryResponseBody + "\n"))
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

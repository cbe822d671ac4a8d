package middleware

import "net/http"

// NewSecurityHeadersMiddleware は全レスポンスに防御的なHTTPヘッダーを付与する
// ミドルウェアを返す。このAPIはJSONのみを返すため、フレーム埋め込みと
// コンテンツタイプ推測は全面的に拒否する。セッションCookieで認証した
// レスポンスが共有キャッシュに残らないよう、キャッシュも無効にする。
func NewSecurityHeadersMiddleware() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			w.Header().Set("X-Frame-Options", "DENY")
			w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
			w.Header().Set("Permissions-Policy", "camera=(), microphone=(), geolocation=()")
			w.Header().Set("Cache-Control", "no-store")
			next.ServeHTTP(w, r)
		})
	}
}

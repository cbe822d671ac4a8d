package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/graphql-go/graphql"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/MEDLAO/graphql-project-1/internal/metrics"
	"github.com/MEDLAO/graphql-project-1/internal/middleware"
)

// RouterDeps はNewRouterに必要な依存関係をまとめた構造体。
type RouterDeps struct {
	// ミドルウェア依存
	SessionFinder     middleware.SessionFinder
	UserFinder        middleware.UserFinder
	CORSAllowedOrigin string
	Logger            *slog.Logger
	HTTPMetrics       middleware.HTTPMetricsRecorder // nilの場合は記録しない

	// 認証
	AuthService AuthServiceInterface
	AuthConfig  AuthHandlerConfig
	AuthMetrics LoginMetricsRecorder // nilの場合は記録しない

	// GraphQL
	Schema graphql.Schema

	// Prometheusスクレイプ（nilの場合は/metricsを公開しない）
	MetricsGatherer prometheus.Gatherer
}

// NewRouter は全APIエンドポイントのルーティングとミドルウェアチェーンを構成したchi.Routerを返す。
//
// ミドルウェアスタックの実行順序:
//
//	CORS → SecurityHeaders → Recovery → RequestID → Session → Logging → Metrics
//
// セッションミドルウェアは全ルートに適用されるが、匿名リクエストを
// 拒否しない。読み取り専用クエリは匿名のまま実行でき、変更操作の
// 拒否はグラフ層の認証ゲートが行う。
func NewRouter(deps *RouterDeps) http.Handler {
	r := chi.NewRouter()

	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	// CORS ミドルウェアを最上位に適用（全ルートに効く）
	r.Use(middleware.NewCORSMiddleware(deps.CORSAllowedOrigin))
	r.Use(middleware.NewSecurityHeadersMiddleware())
	r.Use(middleware.NewRecoveryMiddleware())
	r.Use(middleware.NewRequestIDMiddleware())
	// セッションはロギングより先に解決し、アクセスログにuser_idを載せる
	r.Use(middleware.NewSessionMiddleware(deps.AuthConfig.CookieName, deps.SessionFinder, deps.UserFinder))
	r.Use(middleware.NewLoggingMiddleware(logger))
	if deps.HTTPMetrics != nil {
		r.Use(middleware.NewMetricsMiddleware(deps.HTTPMetrics))
	}

	authHandler := NewAuthHandler(deps.AuthService, deps.AuthMetrics, deps.AuthConfig)
	graphqlHandler := NewGraphQLHandler(deps.Schema)

	// ヘルスチェック
	r.Get("/health", Health)

	// Prometheusスクレイプ
	if deps.MetricsGatherer != nil {
		r.Method(http.MethodGet, "/metrics", metrics.Handler(deps.MetricsGatherer))
	}

	// セッション管理
	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", authHandler.Login)
		r.Post("/logout", authHandler.Logout)
		r.Get("/me", authHandler.Me)
	})

	// カタログのクエリ・ミューテーション
	r.Post("/graphql", graphqlHandler.Query)

	return r
}

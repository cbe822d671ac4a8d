// Package repository はデータストアのインターフェースとインメモリ実装を定義する。
// 全ストア操作は操作単位でアトミックであり、並行リクエストから安全に呼び出せる。
// 永続バックエンドへの差し替えはこのインターフェース層で行う。
package repository

import (
	"context"

	"github.com/MEDLAO/graphql-project-1/internal/model"
)

// UserRepository はユーザーデータの検索インターフェース。
// ユーザーは起動時のシードリストで固定され、変更操作は持たない。
type UserRepository interface {
	// FindByID は指定IDのユーザーを取得する。見つからない場合はnilを返す。
	FindByID(ctx context.Context, id int) (*model.User, error)

	// FindByEmail はメールアドレス完全一致（大文字小文字を区別）でユーザーを検索する。
	// 見つからない場合はnilを返す。
	FindByEmail(ctx context.Context, email string) (*model.User, error)
}

// SessionRepository はセッションデータのストアインターフェース。
type SessionRepository interface {
	// Create はセッションを保存する。
	Create(ctx context.Context, session *model.Session) error

	// FindByID は指定トークンのセッションを取得する。
	// トークンが空・未知の場合はnilを返す。
	// 期限切れのエントリはその場で削除してからnilを返す（遅延失効）。
	// 有効なセッションのTTLは延長しない。
	FindByID(ctx context.Context, id string) (*model.Session, error)

	// DeleteByID は指定トークンのセッションを削除する。
	// トークンが空・未知でもエラーにしない（冪等）。
	DeleteByID(ctx context.Context, id string) error

	// DeleteByUserID は指定ユーザーの全セッションを削除する。
	DeleteByUserID(ctx context.Context, userID int) error
}

// MovieRepository は映画レコードのストアインターフェース。
type MovieRepository interface {
	// List は全映画をID昇順で返す。
	List(ctx context.Context) ([]*model.Movie, error)

	// FindByID は指定IDの映画を取得する。見つからない場合はnilを返す。
	FindByID(ctx context.Context, id int) (*model.Movie, error)

	// Create は新しいIDを採番して映画を保存し、保存したレコードを返す。
	Create(ctx context.Context, movie *model.Movie) (*model.Movie, error)

	// Update は同一IDの既存レコードを上書きする。
	// 対象が存在しない場合はfalseを返す。
	Update(ctx context.Context, movie *model.Movie) (bool, error)

	// DeleteByID は指定IDの映画を削除し、削除したレコードを返す。
	// 見つからない場合はnilを返す。
	DeleteByID(ctx context.Context, id int) (*model.Movie, error)
}

// ActorRepository は俳優レコードのストアインターフェース。
type ActorRepository interface {
	// List は全俳優をID昇順で返す。
	List(ctx context.Context) ([]*model.Actor, error)

	// FindByID は指定IDの俳優を取得する。見つからない場合はnilを返す。
	FindByID(ctx context.Context, id int) (*model.Actor, error)

	// ListByMovieID は指定映画に出演する俳優を返す。
	ListByMovieID(ctx context.Context, movieID int) ([]*model.Actor, error)

	// Create は新しいIDを採番して俳優を保存し、保存したレコードを返す。
	Create(ctx context.Context, actor *model.Actor) (*model.Actor, error)

	// Update は同一IDの既存レコードを上書きする。
	// 対象が存在しない場合はfalseを返す。
	Update(ctx context.Context, actor *model.Actor) (bool, error)

	// DeleteByID は指定IDの俳優を削除し、削除したレコードを返す。
	// 見つからない場合はnilを返す。
	DeleteByID(ctx context.Context, id int) (*model.Actor, error)
}

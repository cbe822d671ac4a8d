// Package model はドメインモデルを定義する。
package model

import "fmt"

// APIError は統一エラーフォーマットを表す。
// クライアントに表示する原因カテゴリと対処方法を含む。
type APIError struct {
	Code     string // エラーコード
	Message  string // エラーメッセージ
	Category string // カテゴリ: auth, validation, catalog, system
	Action   string // クライアント向け対処方法
}

// Error はerrorインターフェースを実装する。
func (e *APIError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// 定義済みエラーコード
const (
	ErrCodeInvalidCredentials = "INVALID_CREDENTIALS"
	ErrCodeUnauthenticated    = "UNAUTHENTICATED"
	ErrCodeMovieNotFound      = "MOVIE_NOT_FOUND"
	ErrCodeActorNotFound      = "ACTOR_NOT_FOUND"
	ErrCodeEmptyTitle         = "EMPTY_TITLE"
	ErrCodeRatingOutOfRange   = "RATING_OUT_OF_RANGE"
)

// NewInvalidCredentialsError はログイン失敗エラーを生成する。
// 未知のメールアドレス・無効化されたアカウント・パスワード不一致を
// 区別せず、同一のメッセージを返す。
func NewInvalidCredentialsError() *APIError {
	return &APIError{
		Code:     ErrCodeInvalidCredentials,
		Message:  "Invalid email or password",
		Category: "auth",
		Action:   "Check your email and password and try again.",
	}
}

// NewUnauthenticatedError は未認証のまま変更操作を試みた場合のエラーを生成する。
func NewUnauthenticatedError() *APIError {
	return &APIError{
		Code:     ErrCodeUnauthenticated,
		Message:  "Login required",
		Category: "auth",
		Action:   "Log in before performing this operation.",
	}
}

// NewMovieNotFoundError は対象の映画が存在しない場合のエラーを生成する。
func NewMovieNotFoundError() *APIError {
	return &APIError{
		Code:     ErrCodeMovieNotFound,
		Message:  "Movie not found",
		Category: "catalog",
		Action:   "Check the movie ID.",
	}
}

// NewActorNotFoundError は対象の俳優が存在しない場合のエラーを生成する。
func NewActorNotFoundError() *APIError {
	return &APIError{
		Code:     ErrCodeActorNotFound,
		Message:  "Actor not found",
		Category: "catalog",
		Action:   "Check the actor ID.",
	}
}

// NewEmptyTitleError はタイトルが空の場合のバリデーションエラーを生成する。
func NewEmptyTitleError() *APIError {
	return &APIError{
		Code:     ErrCodeEmptyTitle,
		Message:  "Title cannot be empty",
		Category: "validation",
		Action:   "Provide a non-empty title.",
	}
}

// NewRatingOutOfRangeError は評価値が範囲外の場合のバリデーションエラーを生成する。
func NewRatingOutOfRangeError() *APIError {
	return &APIError{
		Code:     ErrCodeRatingOutOfRange,
		Message:  "Rating must be between 0 and 5",
		Category: "validation",
		Action:   "Provide a rating between 0 and 5.",
	}
}

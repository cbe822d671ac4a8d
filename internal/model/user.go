// Package model はドメインモデルを定義する。
package model

import "time"

// User はログイン可能なアカウントを表す。
// 起動時にシードリストから生成され、以降イミュータブルとして扱う。
// PasswordHashはAPIレスポンスに含めてはならない。
type User struct {
	ID           int    `json:"id"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	IsActive     bool   `json:"isActive"`
}

// Session はユーザーのログインセッションを表す。
// IDは暗号的に安全な乱数から生成される不透明トークンで、
// ユーザー情報を一切埋め込まない。
// ExpiresAtは常にCreatedAt + TTL（スライディング延長なし）。
type Session struct {
	ID        string
	UserID    int
	ExpiresAt time.Time
	CreatedAt time.Time
}

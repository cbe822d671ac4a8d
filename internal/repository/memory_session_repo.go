package repository

import (
	"context"
	"sync"
	"time"

	"github.com/MEDLAO/graphql-project-1/internal/model"
)

// MemorySessionRepo はミューテックスで保護したインメモリのセッションリポジトリ。
// 期限切れエントリはバックグラウンド掃除を行わず、次回アクセス時に削除する。
type MemorySessionRepo struct {
	mu       sync.Mutex
	sessions map[string]model.Session
}

// NewMemorySessionRepo はMemorySessionRepoを生成する。
func NewMemorySessionRepo() *MemorySessionRepo {
	return &MemorySessionRepo{
		sessions: make(map[string]model.Session),
	}
}

// Create はセッションを保存する。
func (r *MemorySessionRepo) Create(ctx context.Context, session *model.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[session.ID] = *session
	return nil
}

// FindByID は指定トークンのセッションを取得する。
// 期限切れの場合はエントリを削除してからnilを返す。
// 失効判定と削除は同一ロック内で行い、並行するCreate/Deleteと干渉しない。
func (r *MemorySessionRepo) FindByID(ctx context.Context, id string) (*model.Session, error) {
	if id == "" {
		return nil, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[id]
	if !ok {
		return nil, nil
	}
	if !session.ExpiresAt.After(time.Now()) {
		delete(r.sessions, id)
		return nil, nil
	}

	found := session
	return &found, nil
}

// DeleteByID は指定トークンのセッションを削除する。未知のトークンでもエラーにしない。
func (r *MemorySessionRepo) DeleteByID(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, id)
	return nil
}

// DeleteByUserID は指定ユーザーの全セッションを削除する。
func (r *MemorySessionRepo) DeleteByUserID(ctx context.Context, userID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, session := range r.sessions {
		if session.UserID == userID {
			delete(r.sessions, id)
		}
	}
	return nil
}

// compile-time interface check
var _ SessionRepository = (*MemorySessionRepo)(nil)

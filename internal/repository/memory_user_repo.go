package repository

import (
	"context"

	"github.com/MEDLAO/graphql-project-1/internal/model"
)

// MemoryUserRepo は固定のアカウントリストを保持するインメモリのユーザーリポジトリ。
// リストは生成時に受け取ったまま変化しないため、ロックなしで読み取れる。
type MemoryUserRepo struct {
	users []model.User
}

// NewMemoryUserRepo はシードリストからMemoryUserRepoを生成する。
func NewMemoryUserRepo(users []model.User) *MemoryUserRepo {
	seeded := make([]model.User, len(users))
	copy(seeded, users)
	return &MemoryUserRepo{users: seeded}
}

// FindByID は指定IDのユーザーを線形探索で取得する。見つからない場合はnilを返す。
func (r *MemoryUserRepo) FindByID(ctx context.Context, id int) (*model.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			found := u
			return &found, nil
		}
	}
	return nil, nil
}

// FindByEmail はメールアドレス完全一致でユーザーを検索する。見つからない場合はnilを返す。
func (r *MemoryUserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			found := u
			return &found, nil
		}
	}
	return nil, nil
}

// compile-time interface check
var _ UserRepository = (*MemoryUserRepo)(nil)

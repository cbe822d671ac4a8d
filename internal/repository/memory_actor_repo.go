package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/MEDLAO/graphql-project-1/internal/model"
)

// MemoryActorRepo はミューテックスで保護したインメモリの俳優リポジトリ。
// 新規IDは採番時点の最大ID+1を使用する。
type MemoryActorRepo struct {
	mu     sync.Mutex
	actors map[int]model.Actor
}

// NewMemoryActorRepo はシードレコードからMemoryActorRepoを生成する。
func NewMemoryActorRepo(seed []model.Actor) *MemoryActorRepo {
	r := &MemoryActorRepo{
		actors: make(map[int]model.Actor, len(seed)),
	}
	for _, a := range seed {
		r.actors[a.ID] = a
	}
	return r
}

// List は全俳優をID昇順で返す。
func (r *MemoryActorRepo) List(ctx context.Context) ([]*model.Actor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	actors := make([]*model.Actor, 0, len(r.actors))
	for _, a := range r.actors {
		found := a
		actors = append(actors, &found)
	}
	sort.Slice(actors, func(i, j int) bool { return actors[i].ID < actors[j].ID })
	return actors, nil
}

// FindByID は指定IDの俳優を取得する。見つからない場合はnilを返す。
func (r *MemoryActorRepo) FindByID(ctx context.Context, id int) (*model.Actor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.actors[id]
	if !ok {
		return nil, nil
	}
	found := a
	return &found, nil
}

// ListByMovieID は指定映画に出演する俳優をID昇順で返す。
func (r *MemoryActorRepo) ListByMovieID(ctx context.Context, movieID int) ([]*model.Actor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	actors := make([]*model.Actor, 0)
	for _, a := range r.actors {
		if a.MovieID == movieID {
			found := a
			actors = append(actors, &found)
		}
	}
	sort.Slice(actors, func(i, j int) bool { return actors[i].ID < actors[j].ID })
	return actors, nil
}

// Create は最大ID+1を採番して俳優を保存し、保存したレコードを返す。
func (r *MemoryActorRepo) Create(ctx context.Context, actor *model.Actor) (*model.Actor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	maxID := 0
	for id := range r.actors {
		if id > maxID {
			maxID = id
		}
	}

	created := *actor
	created.ID = maxID + 1
	r.actors[created.ID] = created

	result := created
	return &result, nil
}

// Update は同一IDの既存レコードを上書きする。対象が存在しない場合はfalseを返す。
func (r *MemoryActorRepo) Update(ctx context.Context, actor *model.Actor) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.actors[actor.ID]; !ok {
		return false, nil
	}
	r.actors[actor.ID] = *actor
	return true, nil
}

// DeleteByID は指定IDの俳優を削除し、削除したレコードを返す。見つからない場合はnilを返す。
func (r *MemoryActorRepo) DeleteByID(ctx context.Context, id int) (*model.Actor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.actors[id]
	if !ok {
		return nil, nil
	}
	delete(r.actors, id)

	removed := a
	return &removed, nil
}

// compile-time interface check
var _ ActorRepository = (*MemoryActorRepo)(nil)

package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/MEDLAO/graphql-project-1/internal/model"
)

// MemoryMovieRepo はミューテックスで保護したインメモリの映画リポジトリ。
// 採番カウンタは削除後も巻き戻さない。
type MemoryMovieRepo struct {
	mu     sync.Mutex
	movies map[int]model.Movie
	nextID int
}

// NewMemoryMovieRepo はシードレコードからMemoryMovieRepoを生成する。
func NewMemoryMovieRepo(seed []model.Movie) *MemoryMovieRepo {
	r := &MemoryMovieRepo{
		movies: make(map[int]model.Movie, len(seed)),
		nextID: 1,
	}
	for _, m := range seed {
		r.movies[m.ID] = m
		if m.ID >= r.nextID {
			r.nextID = m.ID + 1
		}
	}
	return r
}

// List は全映画をID昇順で返す。
func (r *MemoryMovieRepo) List(ctx context.Context) ([]*model.Movie, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	movies := make([]*model.Movie, 0, len(r.movies))
	for _, m := range r.movies {
		found := m
		movies = append(movies, &found)
	}
	sort.Slice(movies, func(i, j int) bool { return movies[i].ID < movies[j].ID })
	return movies, nil
}

// FindByID は指定IDの映画を取得する。見つからない場合はnilを返す。
func (r *MemoryMovieRepo) FindByID(ctx context.Context, id int) (*model.Movie, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.movies[id]
	if !ok {
		return nil, nil
	}
	found := m
	return &found, nil
}

// Create は新しいIDを採番して映画を保存し、保存したレコードを返す。
func (r *MemoryMovieRepo) Create(ctx context.Context, movie *model.Movie) (*model.Movie, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := *movie
	created.ID = r.nextID
	r.nextID++
	r.movies[created.ID] = created

	result := created
	return &result, nil
}

// Update は同一IDの既存レコードを上書きする。対象が存在しない場合はfalseを返す。
func (r *MemoryMovieRepo) Update(ctx context.Context, movie *model.Movie) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.movies[movie.ID]; !ok {
		return false, nil
	}
	r.movies[movie.ID] = *movie
	return true, nil
}

// DeleteByID は指定IDの映画を削除し、削除したレコードを返す。見つからない場合はnilを返す。
func (r *MemoryMovieRepo) DeleteByID(ctx context.Context, id int) (*model.Movie, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.movies[id]
	if !ok {
		return nil, nil
	}
	delete(r.movies, id)

	removed := m
	return &removed, nil
}

// compile-time interface check
var _ MovieRepository = (*MemoryMovieRepo)(nil)

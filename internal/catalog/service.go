// Package catalog は映画・俳優カタログのドメインロジックを提供する。
package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/MEDLAO/graphql-project-1/internal/model"
	"github.com/MEDLAO/graphql-project-1/internal/repository"
)

// AddMovieInput は映画作成の入力。
type AddMovieInput struct {
	Title  string
	Year   int
	Rating float64
}

// UpdateMovieInput は映画の部分更新の入力。nilのフィールドは変更しない。
type UpdateMovieInput struct {
	ID     int
	Title  *string
	Year   *int
	Rating *float64
}

// AddActorInput は俳優作成の入力。
type AddActorInput struct {
	Name    string
	MovieID int
}

// UpdateActorInput は俳優の部分更新の入力。nilのフィールドは変更しない。
type UpdateActorInput struct {
	ID      int
	Name    *string
	MovieID *int
}

// Service はカタログ操作のサービス層。
// NotFound・バリデーション失敗は*model.APIErrorとして返し、
// 呼び出し側が構造化ペイロードに変換する。
type Service struct {
	movieRepo repository.MovieRepository
	actorRepo repository.ActorRepository
	sanitizer *bluemonday.Policy
}

// NewService はServiceを生成する。
// 保存するタイトル・俳優名はStrictPolicyでマークアップを除去する。
func NewService(movieRepo repository.MovieRepository, actorRepo repository.ActorRepository) *Service {
	return &Service{
		movieRepo: movieRepo,
		actorRepo: actorRepo,
		sanitizer: bluemonday.StrictPolicy(),
	}
}

// ListMovies は全映画を返す。
func (s *Service) ListMovies(ctx context.Context) ([]*model.Movie, error) {
	return s.movieRepo.List(ctx)
}

// GetMovie は指定IDの映画を返す。見つからない場合はnilを返す。
func (s *Service) GetMovie(ctx context.Context, id int) (*model.Movie, error) {
	return s.movieRepo.FindByID(ctx, id)
}

// ListActors は全俳優を返す。
func (s *Service) ListActors(ctx context.Context) ([]*model.Actor, error) {
	return s.actorRepo.List(ctx)
}

// ActorsByMovie は指定映画に出演する俳優を返す。
func (s *Service) ActorsByMovie(ctx context.Context, movieID int) ([]*model.Actor, error) {
	return s.actorRepo.ListByMovieID(ctx, movieID)
}

// AddMovie はバリデーションの上で映画を作成する。
func (s *Service) AddMovie(ctx context.Context, input AddMovieInput) (*model.Movie, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, model.NewEmptyTitleError()
	}
	if input.Rating < 0.0 || input.Rating > 5.0 {
		return nil, model.NewRatingOutOfRangeError()
	}

	movie, err := s.movieRepo.Create(ctx, &model.Movie{
		Title:  s.sanitizer.Sanitize(input.Title),
		Year:   input.Year,
		Rating: input.Rating,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create movie: %w", err)
	}

	slog.Info("movie created",
		slog.Int("movie_id", movie.ID),
		slog.String("title", movie.Title),
	)

	return movie, nil
}

// UpdateMovie は指定されたフィールドのみを適用して映画を更新する。
func (s *Service) UpdateMovie(ctx context.Context, input UpdateMovieInput) (*model.Movie, error) {
	movie, err := s.movieRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to find movie: %w", err)
	}
	if movie == nil {
		return nil, model.NewMovieNotFoundError()
	}

	if input.Rating != nil && (*input.Rating < 0.0 || *input.Rating > 5.0) {
		return nil, model.NewRatingOutOfRangeError()
	}

	if input.Title != nil {
		movie.Title = s.sanitizer.Sanitize(*input.Title)
	}
	if input.Year != nil {
		movie.Year = *input.Year
	}
	if input.Rating != nil {
		movie.Rating = *input.Rating
	}

	ok, err := s.movieRepo.Update(ctx, movie)
	if err != nil {
		return nil, fmt.Errorf("failed to update movie: %w", err)
	}
	if !ok {
		return nil, model.NewMovieNotFoundError()
	}

	return movie, nil
}

// DeleteMovie は指定IDの映画を削除し、削除したレコードを返す。
func (s *Service) DeleteMovie(ctx context.Context, id int) (*model.Movie, error) {
	movie, err := s.movieRepo.DeleteByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to delete movie: %w", err)
	}
	if movie == nil {
		return nil, model.NewMovieNotFoundError()
	}

	slog.Info("movie deleted",
		slog.Int("movie_id", movie.ID),
	)

	return movie, nil
}

// AddActor は俳優を作成し、映画に紐付ける。
func (s *Service) AddActor(ctx context.Context, input AddActorInput) (*model.Actor, error) {
	actor, err := s.actorRepo.Create(ctx, &model.Actor{
		Name:    s.sanitizer.Sanitize(input.Name),
		MovieID: input.MovieID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create actor: %w", err)
	}

	slog.Info("actor created",
		slog.Int("actor_id", actor.ID),
		slog.Int("movie_id", actor.MovieID),
	)

	return actor, nil
}

// UpdateActor は指定されたフィールドのみを適用して俳優を更新する。
func (s *Service) UpdateActor(ctx context.Context, input UpdateActorInput) (*model.Actor, error) {
	actor, err := s.actorRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to find actor: %w", err)
	}
	if actor == nil {
		return nil, model.NewActorNotFoundError()
	}

	if input.Name != nil {
		actor.Name = s.sanitizer.Sanitize(*input.Name)
	}
	if input.MovieID != nil {
		actor.MovieID = *input.MovieID
	}

	ok, err := s.actorRepo.Update(ctx, actor)
	if err != nil {
		return nil, fmt.Errorf("failed to update actor: %w", err)
	}
	if !ok {
		return nil, model.NewActorNotFoundError()
	}

	return actor, nil
}

// DeleteActor は指定IDの俳優を削除し、削除したレコードを返す。
func (s *Service) DeleteActor(ctx context.Context, id int) (*model.Actor, error) {
	actor, err := s.actorRepo.DeleteByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to delete actor: %w", err)
	}
	if actor == nil {
		return nil, model.NewActorNotFoundError()
	}

	slog.Info("actor deleted",
		slog.Int("actor_id", actor.ID),
	)

	return actor, nil
}

// IsPayloadError はNotFound・バリデーション失敗のように、
// 構造化ペイロードのok=falseとして返すべきエラーかどうかを判定する。
func IsPayloadError(err error) (*model.APIError, bool) {
	var apiErr *model.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Category {
		case "validation", "catalog":
			return apiErr, true
		}
	}
	return nil, false
}

package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/MEDLAO/graphql-project-1/internal/model"
	"github.com/MEDLAO/graphql-project-1/internal/repository"
)

func newTestService() *Service {
	movieRepo := repository.NewMemoryMovieRepo([]model.Movie{
		{ID: 1, Title: "Inception", Year: 2010, Rating: 4.8},
		{ID: 2, Title: "Interstellar", Year: 2014, Rating: 4.6},
	})
	actorRepo := repository.NewMemoryActorRepo([]model.Actor{
		{ID: 1, Name: "Leonardo DiCaprio", MovieID: 1},
		{ID: 2, Name: "Matthew McConaughey", MovieID: 2},
	})
	return NewService(movieRepo, actorRepo)
}

func ptrString(s string) *string  { return &s }
func ptrInt(i int) *int           { return &i }
func ptrFloat(f float64) *float64 { return &f }

// --- 映画 ---

func TestAddMovie_Success(t *testing.T) {
	svc := newTestService()

	movie, err := svc.AddMovie(context.Background(), AddMovieInput{
		Title:  "Dune",
		Year:   2021,
		Rating: 4.5,
	})
	if err != nil {
		t.Fatalf("AddMovie failed: %v", err)
	}
	if movie.ID != 3 {
		t.Errorf("ID = %d, want 3", movie.ID)
	}
	if movie.Title != "Dune" {
		t.Errorf("Title = %q, want %q", movie.Title, "Dune")
	}
}

func TestAddMovie_EmptyTitle(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	for _, title := range []string{"", "   ", "\t\n"} {
		_, err := svc.AddMovie(ctx, AddMovieInput{Title: title, Year: 2021, Rating: 4.0})
		apiErr, ok := IsPayloadError(err)
		if !ok {
			t.Fatalf("AddMovie(%q): expected payload error, got %v", title, err)
		}
		if apiErr.Code != model.ErrCodeEmptyTitle {
			t.Errorf("AddMovie(%q): Code = %q, want %q", title, apiErr.Code, model.ErrCodeEmptyTitle)
		}
	}
}

func TestAddMovie_RatingOutOfRange(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	for _, rating := range []float64{-0.1, 5.1, 6.0} {
		_, err := svc.AddMovie(ctx, AddMovieInput{Title: "Dune", Year: 2021, Rating: rating})
		apiErr, ok := IsPayloadError(err)
		if !ok {
			t.Fatalf("AddMovie(rating=%v): expected payload error, got %v", rating, err)
		}
		if apiErr.Message != "Rating must be between 0 and 5" {
			t.Errorf("Message = %q, want %q", apiErr.Message, "Rating must be between 0 and 5")
		}
	}
}

// 評価値の境界0と5はどちらも受け付けること。
func TestAddMovie_RatingBoundariesAccepted(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	for _, rating := range []float64{0.0, 5.0} {
		movie, err := svc.AddMovie(ctx, AddMovieInput{Title: "Boundary", Year: 2021, Rating: rating})
		if err != nil {
			t.Fatalf("AddMovie(rating=%v) failed: %v", rating, err)
		}
		if movie.Rating != rating {
			t.Errorf("Rating = %v, want %v", movie.Rating, rating)
		}
	}
}

// 保存するタイトルからマークアップが除去されること。
func TestAddMovie_SanitizesTitle(t *testing.T) {
	svc := newTestService()

	movie, err := svc.AddMovie(context.Background(), AddMovieInput{
		Title:  `Dune<script>alert("x")</script>`,
		Year:   2021,
		Rating: 4.5,
	})
	if err != nil {
		t.Fatalf("AddMovie failed: %v", err)
	}
	if movie.Title != "Dune" {
		t.Errorf("Title = %q, want %q", movie.Title, "Dune")
	}
}

func TestUpdateMovie_PartialUpdate(t *testing.T) {
	svc := newTestService()

	movie, err := svc.UpdateMovie(context.Background(), UpdateMovieInput{
		ID:     1,
		Rating: ptrFloat(4.9),
	})
	if err != nil {
		t.Fatalf("UpdateMovie failed: %v", err)
	}

	// 指定されていないフィールドは据え置き
	if movie.Title != "Inception" {
		t.Errorf("Title = %q, want %q", movie.Title, "Inception")
	}
	if movie.Year != 2010 {
		t.Errorf("Year = %d, want 2010", movie.Year)
	}
	if movie.Rating != 4.9 {
		t.Errorf("Rating = %v, want 4.9", movie.Rating)
	}
}

func TestUpdateMovie_AllFields(t *testing.T) {
	svc := newTestService()

	movie, err := svc.UpdateMovie(context.Background(), UpdateMovieInput{
		ID:     2,
		Title:  ptrString("Interstellar (IMAX)"),
		Year:   ptrInt(2015),
		Rating: ptrFloat(4.7),
	})
	if err != nil {
		t.Fatalf("UpdateMovie failed: %v", err)
	}
	if movie.Title != "Interstellar (IMAX)" || movie.Year != 2015 || movie.Rating != 4.7 {
		t.Errorf("unexpected movie after update: %+v", movie)
	}
}

func TestUpdateMovie_NotFound(t *testing.T) {
	svc := newTestService()

	_, err := svc.UpdateMovie(context.Background(), UpdateMovieInput{ID: 99, Title: ptrString("Ghost")})
	apiErr, ok := IsPayloadError(err)
	if !ok {
		t.Fatalf("expected payload error, got %v", err)
	}
	if apiErr.Message != "Movie not found" {
		t.Errorf("Message = %q, want %q", apiErr.Message, "Movie not found")
	}
}

func TestUpdateMovie_RatingOutOfRange(t *testing.T) {
	svc := newTestService()

	_, err := svc.UpdateMovie(context.Background(), UpdateMovieInput{ID: 1, Rating: ptrFloat(6.0)})
	apiErr, ok := IsPayloadError(err)
	if !ok {
		t.Fatalf("expected payload error, got %v", err)
	}
	if apiErr.Code != model.ErrCodeRatingOutOfRange {
		t.Errorf("Code = %q, want %q", apiErr.Code, model.ErrCodeRatingOutOfRange)
	}

	// バリデーション失敗時は既存レコードを変更しないこと
	movie, err := svc.GetMovie(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetMovie failed: %v", err)
	}
	if movie.Rating != 4.8 {
		t.Errorf("Rating = %v, want 4.8 (unchanged)", movie.Rating)
	}
}

func TestDeleteMovie_ReturnsRemovedRecord(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	movie, err := svc.DeleteMovie(ctx, 1)
	if err != nil {
		t.Fatalf("DeleteMovie failed: %v", err)
	}
	if movie.Title != "Inception" {
		t.Errorf("Title = %q, want %q", movie.Title, "Inception")
	}

	// 2回目の削除はNotFound
	_, err = svc.DeleteMovie(ctx, 1)
	apiErr, ok := IsPayloadError(err)
	if !ok {
		t.Fatalf("expected payload error, got %v", err)
	}
	if apiErr.Code != model.ErrCodeMovieNotFound {
		t.Errorf("Code = %q, want %q", apiErr.Code, model.ErrCodeMovieNotFound)
	}
}

func TestGetMovie_NotFoundReturnsNil(t *testing.T) {
	svc := newTestService()

	movie, err := svc.GetMovie(context.Background(), 99)
	if err != nil {
		t.Fatalf("GetMovie failed: %v", err)
	}
	if movie != nil {
		t.Errorf("expected nil, got %+v", movie)
	}
}

// --- 俳優 ---

func TestAddActor_Success(t *testing.T) {
	svc := newTestService()

	actor, err := svc.AddActor(context.Background(), AddActorInput{
		Name:    "Anne Hathaway",
		MovieID: 2,
	})
	if err != nil {
		t.Fatalf("AddActor failed: %v", err)
	}
	if actor.ID != 3 {
		t.Errorf("ID = %d, want 3", actor.ID)
	}
	if actor.MovieID != 2 {
		t.Errorf("MovieID = %d, want 2", actor.MovieID)
	}
}

func TestUpdateActor_PartialUpdate(t *testing.T) {
	svc := newTestService()

	actor, err := svc.UpdateActor(context.Background(), UpdateActorInput{
		ID:      2,
		MovieID: ptrInt(1),
	})
	if err != nil {
		t.Fatalf("UpdateActor failed: %v", err)
	}
	if actor.Name != "Matthew McConaughey" {
		t.Errorf("Name = %q, want unchanged", actor.Name)
	}
	if actor.MovieID != 1 {
		t.Errorf("MovieID = %d, want 1", actor.MovieID)
	}
}

func TestUpdateActor_NotFound(t *testing.T) {
	svc := newTestService()

	_, err := svc.UpdateActor(context.Background(), UpdateActorInput{ID: 99, Name: ptrString("Ghost")})
	apiErr, ok := IsPayloadError(err)
	if !ok {
		t.Fatalf("expected payload error, got %v", err)
	}
	if apiErr.Message != "Actor not found" {
		t.Errorf("Message = %q, want %q", apiErr.Message, "Actor not found")
	}
}

func TestDeleteActor_NotFound(t *testing.T) {
	svc := newTestService()

	_, err := svc.DeleteActor(context.Background(), 99)
	apiErr, ok := IsPayloadError(err)
	if !ok {
		t.Fatalf("expected payload error, got %v", err)
	}
	if apiErr.Code != model.ErrCodeActorNotFound {
		t.Errorf("Code = %q, want %q", apiErr.Code, model.ErrCodeActorNotFound)
	}
}

func TestActorsByMovie(t *testing.T) {
	svc := newTestService()

	actors, err := svc.ActorsByMovie(context.Background(), 1)
	if err != nil {
		t.Fatalf("ActorsByMovie failed: %v", err)
	}
	if len(actors) != 1 {
		t.Fatalf("len = %d, want 1", len(actors))
	}
	if actors[0].Name != "Leonardo DiCaprio" {
		t.Errorf("Name = %q, want %q", actors[0].Name, "Leonardo DiCaprio")
	}
}

// --- エラー分類 ---

func TestIsPayloadError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"movie not found", model.NewMovieNotFoundError(), true},
		{"actor not found", model.NewActorNotFoundError(), true},
		{"empty title", model.NewEmptyTitleError(), true},
		{"rating out of range", model.NewRatingOutOfRangeError(), true},
		{"unauthenticated is not a payload error", model.NewUnauthenticatedError(), false},
		{"invalid credentials is not a payload error", model.NewInvalidCredentialsError(), false},
		{"plain error", errors.New("boom"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, got := IsPayloadError(tt.err)
			if got != tt.want {
				t.Errorf("IsPayloadError = %v, want %v", got, tt.want)
			}
		})
	}
}

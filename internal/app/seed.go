package app

import "github.com/MEDLAO/graphql-project-1/internal/model"

// seedMovies は起動時にカタログへ投入する映画レコードを返す。
func seedMovies() []model.Movie {
	return []model.Movie{
		{ID: 1, Title: "Inception", Year: 2010, Rating: 4.8},
		{ID: 2, Title: "Interstellar", Year: 2014, Rating: 4.6},
	}
}

// seedActors は起動時にカタログへ投入する俳優レコードを返す。
func seedActors() []model.Actor {
	return []model.Actor{
		{ID: 1, Name: "Leonardo DiCaprio", MovieID: 1},
		{ID: 2, Name: "Joseph Gordon-Levitt", MovieID: 1},
		{ID: 3, Name: "Matthew McConaughey", MovieID: 2},
		{ID: 4, Name: "Anne Hathaway", MovieID: 2},
	}
}

// seedUsers は起動時に登録するアカウントリストを返す。
// パスワードはハッシュ化済みの値のみ保持する。
func seedUsers(email, passwordHash string) []model.User {
	return []model.User{
		{ID: 1, Email: email, PasswordHash: passwordHash, IsActive: true},
	}
}

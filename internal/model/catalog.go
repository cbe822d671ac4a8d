package model

// Movie はカタログ上の映画レコードを表す。
type Movie struct {
	ID     int     `json:"id"`
	Title  string  `json:"title"`
	Year   int     `json:"year"`
	Rating float64 `json:"rating"`
}

// Actor はカタログ上の俳優レコードを表す。
// MovieIDで出演映画に紐付く。
type Actor struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	MovieID int    `json:"movieId"`
}

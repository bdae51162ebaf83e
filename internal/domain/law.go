package domain

// Law is one document in the demo corpus.
type Law struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	Text  string `json:"text"`
}

// SearchHit is a scored law returned by the search stub.
type SearchHit struct {
	ID    int     `json:"id"`
	Title string  `json:"title"`
	Text  string  `json:"text"`
	Score float64 `json:"score"`
}

package responses

// Error is the single-line error body every failing endpoint replies with.
type Error struct {
	Error string `json:"error"`
}

type Message struct {
	Message string `json:"message"`
}

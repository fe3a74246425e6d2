package models

// SummarizeRequest представляет тело запроса POST /api/summarize
type SummarizeRequest struct {
	URL string `json:"url"`
}

// SummarizeResponse представляет успешный ответ с текстом резюме
type SummarizeResponse struct {
	Summary string `json:"summary"`
}

// ErrorResponse представляет ответ с сообщением об ошибке
type ErrorResponse struct {
	Error string `json:"error"`
}

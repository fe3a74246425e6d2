package models

// VideoMetadata содержит метаданные видео, полученные из YouTube Data API.
// Живет только в рамках одного запроса.
type VideoMetadata struct {
	ID              string
	Title           string
	Description     string
	RawDuration     string // Длительность в формате ISO-8601, например PT4M13S
	DurationSeconds int    // Заполняется после разбора RawDuration
}

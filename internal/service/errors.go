package service

import (
	"errors"
	"fmt"
)

// ErrorKind классифицирует ошибки конвейера. Набор значений закрыт.
type ErrorKind int

const (
	// KindUnexpected любая неклассифицированная ошибка, включая сбои генерации
	KindUnexpected ErrorKind = iota
	// KindMissingURL в запросе нет ссылки
	KindMissingURL
	// KindInvalidURL ссылка не содержит идентификатора видео
	KindInvalidURL
	// KindMetadataUnavailable метаданные не получены или видео не найдено
	KindMetadataUnavailable
	// KindVideoTooLong видео длиннее допустимого
	KindVideoTooLong
)

// String возвращает имя вида ошибки для логов
func (k ErrorKind) String() string {
	switch k {
	case KindMissingURL:
		return "missing_url"
	case KindInvalidURL:
		return "invalid_url"
	case KindMetadataUnavailable:
		return "metadata_unavailable"
	case KindVideoTooLong:
		return "video_too_long"
	default:
		return "unexpected"
	}
}

// Stage этап конвейера, на котором возникла ошибка
type Stage string

// Этапы конвейера
const (
	StageInput    Stage = "input"
	StageParse    Stage = "parse"
	StageMetadata Stage = "metadata"
	StageDuration Stage = "duration"
	StageGenerate Stage = "generate"
)

// Error ошибка конвейера с указанием вида и этапа.
type Error struct {
	Kind  ErrorKind
	Stage Stage
	Err   error
}

func newError(kind ErrorKind, stage Stage, err error) *Error {
	return &Error{Kind: kind, Stage: stage, Err: err}
}

// Error реализует интерфейс error
func (e *Error) Error() string {
	return fmt.Sprintf("%s stage: %s: %v", e.Stage, e.Kind, e.Err)
}

// Unwrap возвращает исходную ошибку
func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf возвращает вид ошибки. Ошибки, не созданные конвейером, считаются неожиданными.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnexpected
}

// Ошибки проверки входных данных
var (
	ErrEmptyURL     = errors.New("URL is required")
	ErrInvalidURL   = errors.New("invalid YouTube URL")
	ErrVideoTooLong = errors.New("video exceeds maximum duration")
)

// Package youtube содержит разбор ссылок и длительностей YouTube,
// а также клиент YouTube Data API для получения метаданных видео.
package youtube

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"unicode/utf8"
)

// VideoIDLength длина идентификатора видео YouTube.
const VideoIDLength = 11

var (
	// videoURLPattern распознает youtu.be/, /v/, /u/<x>/, /embed/, watch?v= и &v=.
	// Жадный префикс: при нескольких маркерах берется последний.
	videoURLPattern = regexp.MustCompile(`^.*(youtu.be/|v/|u/\w/|embed/|watch\?v=|&v=)([^#&?]*).*`)

	durationPattern = regexp.MustCompile(`PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?`)
)

// ExtractVideoID извлекает идентификатор видео из произвольной ссылки YouTube.
// Возвращает false, если маркер не найден или токен не равен 11 символам.
// Длина считается в символах, а не в байтах.
func ExtractVideoID(rawURL string) (string, bool) {
	match := videoURLPattern.FindStringSubmatch(rawURL)
	if match == nil || utf8.RuneCountInString(match[2]) != VideoIDLength {
		return "", false
	}
	return match[2], true
}

// ParseDuration переводит строку вида PT#H#M#S в секунды.
// Отсутствующие компоненты считаются нулем, строка без совпадений дает 0.
// Результат не бывает отрицательным: при переполнении возвращается math.MaxInt.
func ParseDuration(duration string) int {
	match := durationPattern.FindStringSubmatch(duration)
	if match == nil {
		return 0
	}
	total := mulAdd(0, atoi(match[1]), 3600)
	total = mulAdd(total, atoi(match[2]), 60)
	return mulAdd(total, atoi(match[3]), 1)
}

// mulAdd возвращает acc + n*k с насыщением до math.MaxInt. Аргументы неотрицательны.
func mulAdd(acc, n, k int) int {
	if n > (math.MaxInt-acc)/k {
		return math.MaxInt
	}
	return acc + n*k
}

// atoi разбирает группу из цифр. Пустая группа дает 0, слишком большое число math.MaxInt.
func atoi(s string) int {
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if errors.Is(err, strconv.ErrRange) {
		return math.MaxInt
	}
	if err != nil {
		return 0
	}
	return n
}

package config

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
)

// LoadEnvFile загружает переменные из .env-файла в окружение процесса.
// Уже заданные переменные не перезаписываются. Отсутствие файла не считается ошибкой;
// второй результат сообщает, был ли файл найден.
func LoadEnvFile(path string) (bool, error) {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Package buildinfo хранит сведения о сборке сервиса: версию, дату и commit hash.
// Значения задаются через -ldflags, недостающие берутся из метаданных модуля.
package buildinfo

import (
	"fmt"
	"io"
	"runtime/debug"

	"go.uber.org/zap"
)

// notAvailable значение поля, которое не удалось определить
const notAvailable = "N/A"

// Info содержит информацию о сборке приложения
type Info struct {
	Version string
	Date    string
	Commit  string
}

// DefaultInfo возвращает информацию о сборке по умолчанию
func DefaultInfo() *Info {
	return &Info{
		Version: notAvailable,
		Date:    notAvailable,
		Commit:  notAvailable,
	}
}

// NewInfo создает информацию о сборке. Пустые значения заменяются на N/A.
func NewInfo(version, date, commit string) *Info {
	return &Info{
		Version: orNA(version),
		Date:    orNA(date),
		Commit:  orNA(commit),
	}
}

// Resolve дополняет пустые значения данными из debug.ReadBuildInfo:
// версией модуля, временем и ревизией коммита VCS.
func Resolve(version, date, commit string) *Info {
	if bi, ok := debug.ReadBuildInfo(); ok {
		if version == "" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
			version = bi.Main.Version
		}
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs.revision":
				if commit == "" {
					commit = s.Value
				}
			case "vcs.time":
				if date == "" {
					date = s.Value
				}
			}
		}
	}
	return NewInfo(version, date, commit)
}

func orNA(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}

// Print выводит информацию о сборке в w
func (info *Info) Print(w io.Writer) {
	_, _ = fmt.Fprintf(w, "Build version: %s\n", info.Version)
	_, _ = fmt.Fprintf(w, "Build date: %s\n", info.Date)
	_, _ = fmt.Fprintf(w, "Build commit: %s\n", info.Commit)
}

// Fields возвращает поля для структурированного лога
func (info *Info) Fields() []zap.Field {
	return []zap.Field{
		zap.String("version", info.Version),
		zap.String("build_date", info.Date),
		zap.String("commit", info.Commit),
	}
}

// String возвращает строковое представление информации о сборке
func (info *Info) String() string {
	return fmt.Sprintf("Version: %s, Date: %s, Commit: %s", info.Version, info.Date, info.Commit)
}

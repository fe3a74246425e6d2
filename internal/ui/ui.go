// Package ui содержит клиентскую страницу сервиса: форму со ссылкой,
// панель ошибок с подсказками и поле с резюме.
package ui

import (
	"embed"
	"fmt"
	"html/template"
	"io"
)

//go:embed templates/index.html
var templatesFS embed.FS

// Hint подсказка, которая показывается, если сообщение об ошибке содержит Match
type Hint struct {
	Match string `json:"match"`
	Text  string `json:"text"`
}

// DefaultHints подсказки для известных сообщений об ошибках API
var DefaultHints = []Hint{
	{
		Match: "Invalid YouTube URL",
		Text:  "Please make sure you've entered a valid YouTube video URL.",
	},
	{
		Match: "Unable to fetch video information",
		Text:  "There was an issue accessing the video. Please check if the video is public and try again.",
	},
	{
		Match: "Video is too long",
		Text:  "Please choose a video that is less than 1 hour in duration.",
	},
}

// PageData данные для шаблона страницы
type PageData struct {
	Title    string
	Endpoint string // Адрес POST-эндпоинта, куда форма отправляет ссылку
	Hints    []Hint
}

// Page разобранный шаблон страницы
type Page struct {
	tmpl *template.Template
}

// NewPage разбирает встроенный шаблон страницы
func NewPage() (*Page, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/index.html")
	if err != nil {
		return nil, fmt.Errorf("error parsing page template: %w", err)
	}
	return &Page{tmpl: tmpl}, nil
}

// Render выводит страницу в w
func (p *Page) Render(w io.Writer, data PageData) error {
	if data.Hints == nil {
		data.Hints = DefaultHints
	}
	return p.tmpl.ExecuteTemplate(w, "index.html", data)
}

package api

import (
	"errors"
	"fmt"
	"strings"
)

// StatusError представляет ответ сервера с неуспешным HTTP статусом
type StatusError struct {
	Code    int    // HTTP статус
	Message string // сообщение из тела ответа (JSON message или сырой текст)
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("server error (%d): %s", e.Code, e.Message)
}

// ContentTypeError означает, что вместо ожидаемого JSON пришло что-то другое.
// Отдельная категория: туннель (ngrok и т.п.) может подсунуть HTML-заглушку,
// и пользователю нужна внятная диагностика, а не общая ошибка.
type ContentTypeError struct {
	ContentType string // фактический Content-Type ответа
	Head        string // первые байты тела для диагностики
}

func (e *ContentTypeError) Error() string {
	return fmt.Sprintf("expected JSON, got %s. Head: %s", e.ContentType, e.Head)
}

// Фразы, по которым сервер сообщает о протухшей админской авторизации
var authExpiredMarkers = []string{
	"Not admin",
	"Bad initData",
	"Bad password",
}

// IsAuthExpired распознает ответ сервера "авторизация недействительна":
// такие ошибки открывают форму логина заново вместо общего сообщения об ошибке
func IsAuthExpired(err error) bool {
	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		return false
	}
	for _, marker := range authExpiredMarkers {
		if strings.Contains(statusErr.Message, marker) {
			return true
		}
	}
	return false
}

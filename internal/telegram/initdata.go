// Package telegram разбирает initData мини-приложения и абстрагирует
// нативные возможности Telegram-клиента (main button, haptic).
package telegram

import (
	"encoding/json"
	"fmt"
	"net/url"
)

// User — пользователь Telegram из initData
type User struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name,omitempty"`
	Username  string `json:"username,omitempty"`
}

// DisplayName возвращает имя для приветствия
func (u *User) DisplayName() string {
	if u.FirstName != "" {
		return u.FirstName
	}
	if u.Username != "" {
		return "@" + u.Username
	}
	return fmt.Sprintf("id%d", u.ID)
}

// ParseInitDataUser извлекает пользователя из строки initData.
// initData — urlencoded query string Telegram WebApp; подпись проверяет
// сервер, клиент разбирает только поле user.
func ParseInitDataUser(initData string) (*User, error) {
	if initData == "" {
		return nil, fmt.Errorf("init data is empty")
	}

	values, err := url.ParseQuery(initData)
	if err != nil {
		return nil, fmt.Errorf("failed to parse init data: %w", err)
	}

	rawUser := values.Get("user")
	if rawUser == "" {
		return nil, fmt.Errorf("init data has no user field")
	}

	var user User
	if err := json.Unmarshal([]byte(rawUser), &user); err != nil {
		return nil, fmt.Errorf("failed to decode init data user: %w", err)
	}
	if user.ID == 0 {
		return nil, fmt.Errorf("init data user has no id")
	}

	return &user, nil
}

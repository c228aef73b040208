package cli

import (
	"context"
	"fmt"

	"github.com/solmax/tgshop/internal/telegram"
)

// runStatus показывает информацию о магазине и текущем пользователе
func (c *Cli) runStatus(ctx context.Context) error {
	info, err := c.apiClient.AppInfo(ctx)
	if err != nil {
		return fmt.Errorf("failed to get app info: %w", err)
	}

	c.io.Println()
	if info.BotUsername != "" {
		c.io.Printf("Бот:    @%s\n", info.BotUsername)
	}
	if info.WebappBaseURL != "" {
		c.io.Printf("Webapp: %s\n", info.WebappBaseURL)
	}

	initData := c.session.InitData()
	if initData == "" {
		c.io.Println("\nПользователь: не задан (--init-data)")
		return nil
	}

	if user, err := telegram.ParseInitDataUser(initData); err == nil {
		c.io.Printf("\nПользователь: %s\n", user.DisplayName())
	}

	me, err := c.apiClient.Me(ctx, initData)
	if err != nil {
		c.io.Printf("Сервер не подтвердил пользователя: %v\n", err)
		return nil
	}
	if me.Admin {
		if c.authService.LoggedIn(ctx) {
			c.io.Println("Админ: да (пароль закеширован)")
		} else {
			c.io.Println("Админ: да (нужен 'admin login')")
		}
	}
	return nil
}

package cli

import (
	"context"
	"fmt"
)

// runAdminLogin проверяет пароль и кеширует его на сессию
func (c *Cli) runAdminLogin(ctx context.Context) error {
	if c.authService.LoggedIn(ctx) {
		c.io.Println("Уже залогинен. 'admin logout' чтобы сменить пароль.")
		return nil
	}

	password, err := c.io.ReadPassword("Admin password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}
	if err := c.authService.Login(ctx, password); err != nil {
		return err
	}

	c.io.Println("Пароль принят и закеширован на время сессии.")
	return nil
}

// runAdminLogout стирает кешированный пароль
func (c *Cli) runAdminLogout(ctx context.Context) error {
	if err := c.authService.Logout(ctx); err != nil {
		return err
	}
	c.io.Println("Кеш пароля стерт.")
	return nil
}

// Package cli реализует команды терминального клиента магазина:
// витрину, корзину, оформление заказа и админку.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	httpClient "github.com/solmax/tgshop/internal/client/api"
	"github.com/solmax/tgshop/internal/client/auth"
	"github.com/solmax/tgshop/internal/client/iocli"
	"github.com/solmax/tgshop/internal/client/session"
)

type Cli struct {
	apiClient   *httpClient.Client
	authService auth.Service
	session     *session.Controller
	io          iocli.IO
	logger      *slog.Logger

	bootOnce sync.Once
	bootErr  error
}

func New(apiClient *httpClient.Client, authService auth.Service, sess *session.Controller, io iocli.IO, logger *slog.Logger) *Cli {
	return &Cli{
		apiClient:   apiClient,
		authService: authService,
		session:     sess,
		io:          io,
		logger:      logger,
	}
}

// bootSession лениво загружает каталог и корзину: админским командам
// витринная сессия не нужна, и они не должны падать из-за нее
func (c *Cli) bootSession(ctx context.Context) error {
	c.bootOnce.Do(func() {
		c.bootErr = c.session.Boot(ctx)
	})
	return c.bootErr
}

// adminAuth возвращает кешированные админские учетные данные,
// при их отсутствии запрашивает пароль и логинится
func (c *Cli) adminAuth(ctx context.Context) (httpClient.AdminAuth, error) {
	adminCreds, err := c.authService.Auth(ctx)
	if err == nil {
		return adminCreds, nil
	}
	if err != auth.ErrNotLoggedIn {
		return httpClient.AdminAuth{}, err
	}

	password, err := c.io.ReadPassword("Admin password: ")
	if err != nil {
		return httpClient.AdminAuth{}, fmt.Errorf("failed to read password: %w", err)
	}
	if err := c.authService.Login(ctx, password); err != nil {
		return httpClient.AdminAuth{}, err
	}
	return c.authService.Auth(ctx)
}

// adminErr обрабатывает ошибку админского запроса: протухшую сессию
// сбрасывает, чтобы следующая команда запросила пароль заново
func (c *Cli) adminErr(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	if httpClient.IsAuthExpired(err) {
		if logoutErr := c.authService.Logout(ctx); logoutErr != nil {
			c.logger.Warn("Failed to drop cached credential", "error", logoutErr)
		}
		return fmt.Errorf("admin session expired, run the command again to re-login: %w", err)
	}
	return err
}

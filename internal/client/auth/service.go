// Package auth управляет админским доступом клиента: проверяет пароль
// на сервере и кеширует его на время сессии в зашифрованном виде.
package auth

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"

	httpClient "github.com/solmax/tgshop/internal/client/api"
	"github.com/solmax/tgshop/internal/client/storage"
	"github.com/solmax/tgshop/internal/crypto"
)

// ErrNotLoggedIn возвращается, когда кешированного пароля нет
// и нужен повторный ввод
var ErrNotLoggedIn = errors.New("admin login required")

//go:generate moq -out loginapi_mock.go . LoginAPI
//go:generate moq -out service_mock.go . Service

// LoginAPI — часть REST-клиента, проверяющая админский пароль
type LoginAPI interface {
	AdminLogin(ctx context.Context, initData, password string) error
}

// Service определяет интерфейс админской аутентификации
type Service interface {
	// Login проверяет пароль на сервере и кеширует его на сессию
	Login(ctx context.Context, password string) error

	// Auth возвращает учетные данные для админских запросов
	Auth(ctx context.Context) (httpClient.AdminAuth, error)

	// Logout стирает кешированный пароль
	Logout(ctx context.Context) error

	// LoggedIn сообщает, есть ли рабочий кеш пароля
	LoggedIn(ctx context.Context) bool
}

type service struct {
	api      LoginAPI
	store    storage.CredentialStorage
	initData string
	logger   *slog.Logger
}

// NewService создает сервис админской аутентификации
func NewService(api LoginAPI, store storage.CredentialStorage, initData string, logger *slog.Logger) Service {
	return &service{
		api:      api,
		store:    store,
		initData: initData,
		logger:   logger,
	}
}

// Login проверяет пароль на сервере и, если он верен, шифрует его
// ключом текущей сессии и кеширует. Пароль никогда не пишется на диск
// открытым текстом.
func (s *service) Login(ctx context.Context, password string) error {
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}

	if err := s.api.AdminLogin(ctx, s.initData, password); err != nil {
		return err
	}

	salt, err := crypto.GenerateSalt()
	if err != nil {
		return fmt.Errorf("failed to generate salt: %w", err)
	}

	key, err := crypto.DeriveSessionKey(s.initData, salt)
	if err != nil {
		return fmt.Errorf("failed to derive session key: %w", err)
	}

	ciphertext, err := crypto.EncryptToBase64([]byte(password), key)
	if err != nil {
		return fmt.Errorf("failed to encrypt password: %w", err)
	}

	cred := &storage.Credential{
		Ciphertext: ciphertext,
		Salt:       base64.StdEncoding.EncodeToString(salt),
	}
	if err := s.store.SaveCredential(ctx, cred); err != nil {
		return fmt.Errorf("failed to cache credential: %w", err)
	}

	s.logger.Info("Admin login successful")
	return nil
}

// Auth расшифровывает кешированный пароль ключом текущей сессии.
// Кеш прошлой сессии не расшифруется: это считается отсутствием логина.
func (s *service) Auth(ctx context.Context) (httpClient.AdminAuth, error) {
	cred, err := s.store.GetCredential(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrCredentialNotFound) {
			return httpClient.AdminAuth{}, ErrNotLoggedIn
		}
		return httpClient.AdminAuth{}, fmt.Errorf("failed to load credential: %w", err)
	}

	salt, err := base64.StdEncoding.DecodeString(cred.Salt)
	if err != nil {
		return httpClient.AdminAuth{}, fmt.Errorf("corrupted credential salt: %w", err)
	}

	key, err := crypto.DeriveSessionKey(s.initData, salt)
	if err != nil {
		return httpClient.AdminAuth{}, fmt.Errorf("failed to derive session key: %w", err)
	}

	password, err := crypto.DecryptFromBase64(cred.Ciphertext, key)
	if err != nil {
		// кеш другой сессии: молча стираем и просим логин заново
		s.logger.Debug("Cached credential is from another session, dropping it")
		if delErr := s.store.DeleteCredential(ctx); delErr != nil {
			s.logger.Warn("Failed to delete stale credential", "error", delErr)
		}
		return httpClient.AdminAuth{}, ErrNotLoggedIn
	}

	return httpClient.AdminAuth{
		InitData: s.initData,
		Password: string(password),
	}, nil
}

// Logout стирает кешированный пароль
func (s *service) Logout(ctx context.Context) error {
	if err := s.store.DeleteCredential(ctx); err != nil && !errors.Is(err, storage.ErrCredentialNotFound) {
		return fmt.Errorf("failed to delete credential: %w", err)
	}
	return nil
}

// LoggedIn сообщает, есть ли рабочий кеш пароля
func (s *service) LoggedIn(ctx context.Context) bool {
	_, err := s.Auth(ctx)
	return err == nil
}

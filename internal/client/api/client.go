package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/solmax/tgshop/pkg/api"
)

// headLimit — сколько байт тела цитировать в ContentTypeError
const headLimit = 160

// Client представляет HTTP клиент для взаимодействия с сервером магазина
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient создает новый API клиент
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			// Настройка обработки редиректов
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Ограничиваем количество редиректов
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Копируем админский заголовок при редиректе
				if len(via) > 0 && via[0].Header.Get("X-Admin-Password") != "" {
					req.Header.Set("X-Admin-Password", via[0].Header.Get("X-Admin-Password"))
				}
				return nil
			},
		},
	}
}

// AdminAuth — учетные данные для админских запросов.
// InitData уходит query-параметром, Password — заголовком X-Admin-Password.
type AdminAuth struct {
	InitData string
	Password string
}

// Products возвращает публичный каталог (только видимые товары)
func (c *Client) Products(ctx context.Context) ([]api.Product, error) {
	var products []api.Product
	if err := c.doRequest(ctx, http.MethodGet, "/api/products", nil, nil, &products); err != nil {
		return nil, fmt.Errorf("products request failed: %w", err)
	}
	return products, nil
}

// Tags возвращает публичный список тегов
func (c *Client) Tags(ctx context.Context) ([]api.Tag, error) {
	var tags []api.Tag
	if err := c.doRequest(ctx, http.MethodGet, "/api/tags", nil, nil, &tags); err != nil {
		return nil, fmt.Errorf("tags request failed: %w", err)
	}
	return tags, nil
}

// Me возвращает профиль пользователя по initData из Telegram
func (c *Client) Me(ctx context.Context, initData string) (*api.MeResponse, error) {
	var resp api.MeResponse
	path := "/api/me?initData=" + url.QueryEscape(initData)
	if err := c.doRequest(ctx, http.MethodGet, path, nil, nil, &resp); err != nil {
		return nil, fmt.Errorf("me request failed: %w", err)
	}
	return &resp, nil
}

// AppInfo возвращает публичную конфигурацию приложения
func (c *Client) AppInfo(ctx context.Context) (*api.AppInfo, error) {
	var resp api.AppInfo
	if err := c.doRequest(ctx, http.MethodGet, "/api/app-info", nil, nil, &resp); err != nil {
		return nil, fmt.Errorf("app-info request failed: %w", err)
	}
	return &resp, nil
}

// CreateOrder оформляет заказ
func (c *Client) CreateOrder(ctx context.Context, req api.CreateOrderRequest) (*api.CreateOrderResponse, error) {
	var resp api.CreateOrderResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/orders", nil, req, &resp); err != nil {
		return nil, fmt.Errorf("create order request failed: %w", err)
	}
	return &resp, nil
}

// doRequest выполняет HTTP запрос
// auth добавляет админские учетные данные, result == nil пропускает декодирование
func (c *Client) doRequest(ctx context.Context, method, path string, auth *AdminAuth, body, result interface{}) error {
	reqURL := c.baseURL + path
	if auth != nil && auth.InitData != "" {
		sep := "?"
		if strings.Contains(path, "?") {
			sep = "&"
		}
		reqURL += sep + "initData=" + url.QueryEscape(auth.InitData)
	}

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if auth != nil && auth.Password != "" {
		req.Header.Set("X-Admin-Password", auth.Password)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Читаем тело ответа
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	// Проверяем статус код
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &StatusError{Code: resp.StatusCode, Message: errorMessage(respBody)}
	}

	if result == nil {
		return nil
	}

	// Ответ обязан быть JSON: туннель может подменить его HTML-страницей
	ct := resp.Header.Get("Content-Type")
	if !strings.Contains(ct, "application/json") {
		return &ContentTypeError{ContentType: ct, Head: bodyHead(respBody)}
	}

	if err := json.Unmarshal(respBody, result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// errorMessage извлекает сообщение из тела ошибки:
// JSON {"message":...}/{"error":...} или сырой текст как есть
func errorMessage(body []byte) string {
	var errResp api.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil {
		if errResp.Message != "" {
			return errResp.Message
		}
		if errResp.Error != "" {
			return errResp.Error
		}
	}
	return string(body)
}

func bodyHead(body []byte) string {
	if len(body) > headLimit {
		return string(body[:headLimit])
	}
	return string(body)
}

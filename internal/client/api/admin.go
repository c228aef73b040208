package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/solmax/tgshop/pkg/api"
)

// AdminLogin проверяет админский пароль на сервере.
// Успех — пароль валиден и может кешироваться на время сессии.
func (c *Client) AdminLogin(ctx context.Context, initData, password string) error {
	auth := AdminAuth{InitData: initData, Password: password}
	req := api.AdminLoginRequest{Password: password}
	if err := c.doRequest(ctx, http.MethodPost, "/api/admin/login", &auth, req, nil); err != nil {
		return fmt.Errorf("admin login failed: %w", err)
	}
	return nil
}

// AdminProducts возвращает полный каталог, включая скрытые товары
func (c *Client) AdminProducts(ctx context.Context, auth AdminAuth) ([]api.Product, error) {
	var products []api.Product
	if err := c.doRequest(ctx, http.MethodGet, "/api/admin/products", &auth, nil, &products); err != nil {
		return nil, fmt.Errorf("admin products request failed: %w", err)
	}
	return products, nil
}

// ArchivedProducts возвращает архив (мягко удаленные товары)
func (c *Client) ArchivedProducts(ctx context.Context, auth AdminAuth) ([]api.Product, error) {
	var products []api.Product
	if err := c.doRequest(ctx, http.MethodGet, "/api/admin/products/archived", &auth, nil, &products); err != nil {
		return nil, fmt.Errorf("archived products request failed: %w", err)
	}
	return products, nil
}

// CreateProduct создает товар
func (c *Client) CreateProduct(ctx context.Context, auth AdminAuth, req api.CreateProductRequest) (*api.Product, error) {
	var product api.Product
	if err := c.doRequest(ctx, http.MethodPost, "/api/admin/products", &auth, req, &product); err != nil {
		return nil, fmt.Errorf("create product request failed: %w", err)
	}
	return &product, nil
}

// UpdateProduct полностью обновляет поля товара
func (c *Client) UpdateProduct(ctx context.Context, auth AdminAuth, id uuid.UUID, req api.UpdateProductRequest) (*api.Product, error) {
	var product api.Product
	path := "/api/admin/products/" + id.String()
	if err := c.doRequest(ctx, http.MethodPatch, path, &auth, req, &product); err != nil {
		return nil, fmt.Errorf("update product request failed: %w", err)
	}
	return &product, nil
}

// SetProductActive переключает видимость товара на витрине
func (c *Client) SetProductActive(ctx context.Context, auth AdminAuth, id uuid.UUID, active bool) (*api.Product, error) {
	var product api.Product
	path := "/api/admin/products/" + id.String() + "/active"
	body := map[string]bool{"active": active}
	if err := c.doRequest(ctx, http.MethodPatch, path, &auth, body, &product); err != nil {
		return nil, fmt.Errorf("set product active request failed: %w", err)
	}
	return &product, nil
}

// SetProductArchived переносит товар в архив или возвращает из него
func (c *Client) SetProductArchived(ctx context.Context, auth AdminAuth, id uuid.UUID, archived bool) (*api.Product, error) {
	var product api.Product
	path := "/api/admin/products/" + id.String() + "/archived"
	body := map[string]bool{"archived": archived}
	if err := c.doRequest(ctx, http.MethodPatch, path, &auth, body, &product); err != nil {
		return nil, fmt.Errorf("set product archived request failed: %w", err)
	}
	return &product, nil
}

// AdminTags возвращает все теги
func (c *Client) AdminTags(ctx context.Context, auth AdminAuth) ([]api.Tag, error) {
	var tags []api.Tag
	if err := c.doRequest(ctx, http.MethodGet, "/api/admin/tags", &auth, nil, &tags); err != nil {
		return nil, fmt.Errorf("admin tags request failed: %w", err)
	}
	return tags, nil
}

// CreateTag создает тег
func (c *Client) CreateTag(ctx context.Context, auth AdminAuth, name string) (*api.Tag, error) {
	var tag api.Tag
	req := api.CreateTagRequest{Name: name}
	if err := c.doRequest(ctx, http.MethodPost, "/api/admin/tags", &auth, req, &tag); err != nil {
		return nil, fmt.Errorf("create tag request failed: %w", err)
	}
	return &tag, nil
}

// UpdateTag переименовывает тег
func (c *Client) UpdateTag(ctx context.Context, auth AdminAuth, id uuid.UUID, name string) (*api.Tag, error) {
	var tag api.Tag
	req := api.CreateTagRequest{Name: name}
	if err := c.doRequest(ctx, http.MethodPatch, "/api/admin/tags/"+id.String(), &auth, req, &tag); err != nil {
		return nil, fmt.Errorf("update tag request failed: %w", err)
	}
	return &tag, nil
}

// DeleteTag удаляет тег
func (c *Client) DeleteTag(ctx context.Context, auth AdminAuth, id uuid.UUID) error {
	if err := c.doRequest(ctx, http.MethodDelete, "/api/admin/tags/"+id.String(), &auth, nil, nil); err != nil {
		return fmt.Errorf("delete tag request failed: %w", err)
	}
	return nil
}

// PromoCodes возвращает все промокоды
func (c *Client) PromoCodes(ctx context.Context, auth AdminAuth) ([]api.PromoCode, error) {
	var codes []api.PromoCode
	if err := c.doRequest(ctx, http.MethodGet, "/api/admin/promocodes", &auth, nil, &codes); err != nil {
		return nil, fmt.Errorf("promocodes request failed: %w", err)
	}
	return codes, nil
}

// CreatePromoCode создает промокод
func (c *Client) CreatePromoCode(ctx context.Context, auth AdminAuth, req api.CreatePromoCodeRequest) (*api.PromoCode, error) {
	var code api.PromoCode
	if err := c.doRequest(ctx, http.MethodPost, "/api/admin/promocodes", &auth, req, &code); err != nil {
		return nil, fmt.Errorf("create promocode request failed: %w", err)
	}
	return &code, nil
}

// UpdatePromoCode обновляет промокод
func (c *Client) UpdatePromoCode(ctx context.Context, auth AdminAuth, id uuid.UUID, req api.UpdatePromoCodeRequest) (*api.PromoCode, error) {
	var code api.PromoCode
	path := "/api/admin/promocodes/" + id.String()
	if err := c.doRequest(ctx, http.MethodPatch, path, &auth, req, &code); err != nil {
		return nil, fmt.Errorf("update promocode request failed: %w", err)
	}
	return &code, nil
}

// DeletePromoCode удаляет промокод
func (c *Client) DeletePromoCode(ctx context.Context, auth AdminAuth, id uuid.UUID) error {
	if err := c.doRequest(ctx, http.MethodDelete, "/api/admin/promocodes/"+id.String(), &auth, nil, nil); err != nil {
		return fmt.Errorf("delete promocode request failed: %w", err)
	}
	return nil
}

// AdminOrders возвращает все заказы
func (c *Client) AdminOrders(ctx context.Context, auth AdminAuth) ([]api.Order, error) {
	var orders []api.Order
	if err := c.doRequest(ctx, http.MethodGet, "/api/admin/orders", &auth, nil, &orders); err != nil {
		return nil, fmt.Errorf("admin orders request failed: %w", err)
	}
	return orders, nil
}

// DeleteOrder удаляет заказ
func (c *Client) DeleteOrder(ctx context.Context, auth AdminAuth, id uuid.UUID) error {
	if err := c.doRequest(ctx, http.MethodDelete, "/api/admin/orders/"+id.String(), &auth, nil, nil); err != nil {
		return fmt.Errorf("delete order request failed: %w", err)
	}
	return nil
}

// PaymentTemplate возвращает шаблон платёжного сообщения
func (c *Client) PaymentTemplate(ctx context.Context, auth AdminAuth) (*api.PaymentTemplate, error) {
	var tpl api.PaymentTemplate
	if err := c.doRequest(ctx, http.MethodGet, "/api/admin/settings/payment-template", &auth, nil, &tpl); err != nil {
		return nil, fmt.Errorf("payment template request failed: %w", err)
	}
	return &tpl, nil
}

// UpdatePaymentTemplate заменяет шаблон платёжного сообщения
func (c *Client) UpdatePaymentTemplate(ctx context.Context, auth AdminAuth, html string) (*api.PaymentTemplate, error) {
	var tpl api.PaymentTemplate
	req := api.PaymentTemplate{HTML: html}
	if err := c.doRequest(ctx, http.MethodPut, "/api/admin/settings/payment-template", &auth, req, &tpl); err != nil {
		return nil, fmt.Errorf("update payment template request failed: %w", err)
	}
	return &tpl, nil
}

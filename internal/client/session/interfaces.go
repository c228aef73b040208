package session

import (
	"context"

	"github.com/solmax/tgshop/pkg/api"
)

//go:generate moq -out storeapi_mock.go . StoreAPI
//go:generate moq -out notifier_mock.go . Notifier

// StoreAPI — используемая сессией часть REST-клиента магазина
type StoreAPI interface {
	// Products возвращает витринный каталог
	Products(ctx context.Context) ([]api.Product, error)

	// Tags возвращает список тегов каталога
	Tags(ctx context.Context) ([]api.Tag, error)

	// CreateOrder оформляет заказ
	CreateOrder(ctx context.Context, req api.CreateOrderRequest) (*api.CreateOrderResponse, error)
}

// Notifier показывает пользователю всплывающие уведомления (тосты)
type Notifier interface {
	Notify(message string)
}

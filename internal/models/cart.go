package models

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/solmax/tgshop/pkg/api"
)

// CartKey — составной ключ позиции корзины: товар + выбранный вариант.
// "Вариант не выбран" — отдельное пространство ключей: запись без варианта
// никогда не совпадает с записью, где вариант выбран.
type CartKey struct {
	ProductID uuid.UUID
	VariantID uuid.UUID // uuid.Nil — вариант не выбран
}

// NewCartKey создает ключ позиции корзины
// variantID может быть nil для товара без вариантов
func NewCartKey(productID uuid.UUID, variantID *uuid.UUID) CartKey {
	key := CartKey{ProductID: productID}
	if variantID != nil {
		key.VariantID = *variantID
	}
	return key
}

// HasVariant сообщает, привязана ли позиция к варианту
func (k CartKey) HasVariant() bool {
	return k.VariantID != uuid.Nil
}

// String возвращает строковую форму ключа для durable storage:
// "<productId>" без варианта, "<productId>:<variantId>" с вариантом.
// UUID не бывает пустой строкой, поэтому пространства ключей не пересекаются.
func (k CartKey) String() string {
	if !k.HasVariant() {
		return k.ProductID.String()
	}
	return k.ProductID.String() + ":" + k.VariantID.String()
}

// ParseCartKey разбирает строковую форму ключа из durable storage
func ParseCartKey(s string) (CartKey, error) {
	pidPart, vidPart, withVariant := strings.Cut(s, ":")

	pid, err := uuid.Parse(pidPart)
	if err != nil {
		return CartKey{}, fmt.Errorf("invalid product id in cart key %q: %w", s, err)
	}

	key := CartKey{ProductID: pid}
	if withVariant {
		vid, err := uuid.Parse(vidPart)
		if err != nil {
			return CartKey{}, fmt.Errorf("invalid variant id in cart key %q: %w", s, err)
		}
		key.VariantID = vid
	}
	return key, nil
}

// CartEntry представляет позицию корзины.
// Product и Variant — back-reference'ы в текущий снапшот каталога: они не
// владеют объектами и перепривязываются на каждом обновлении каталога.
// После загрузки из durable storage оба nil до первого bind.
type CartEntry struct {
	Key      CartKey
	Quantity int // всегда >= 1: позиции с нулём не хранятся, а удаляются
	Product  *api.Product
	Variant  *api.Variant
}

// Bound сообщает, привязана ли позиция к живому объекту каталога
func (e *CartEntry) Bound() bool {
	return e.Product != nil
}

// Title возвращает название товара позиции, пустую строку до первого bind
func (e *CartEntry) Title() string {
	if e.Product == nil {
		return ""
	}
	return e.Product.Title
}

// StockLimit возвращает доступный остаток для позиции:
// остаток варианта, если он выбран, иначе остаток товара.
// Для непривязанной позиции возвращает 0.
func (e *CartEntry) StockLimit() int {
	if e.Variant != nil {
		return e.Variant.Stock
	}
	if e.Product != nil {
		return e.Product.Stock
	}
	return 0
}

// EvictReason объясняет, почему позиция выкинута из корзины при сверке
type EvictReason string

const (
	// EvictRemoved — товар исчез из снапшота каталога
	EvictRemoved EvictReason = "removed"
	// EvictHidden — товар скрыт с витрины (active=false)
	EvictHidden EvictReason = "hidden"
	// EvictVariantRemoved — выбранный вариант больше не существует
	EvictVariantRemoved EvictReason = "variant-removed"
	// EvictOutOfStock — остаток упал до нуля
	EvictOutOfStock EvictReason = "out-of-stock"
)

// CartEventKind — тип события сверки корзины
type CartEventKind string

const (
	CartEvicted CartEventKind = "evicted"
	CartClamped CartEventKind = "clamped"
)

// CartEvent описывает одно изменение корзины, сделанное сверкой.
// Ровно одно событие на затронутую позицию за проход.
type CartEvent struct {
	Kind   CartEventKind
	Reason EvictReason // заполнен для Kind == CartEvicted
	Key    CartKey
	Title  string // название товара для пользовательского сообщения
	NewQty int    // новое количество после clamp (Kind == CartClamped)
	Limit  int    // актуальный остаток, к которому привели количество
}

// Message возвращает готовый текст уведомления для пользователя
func (ev CartEvent) Message() string {
	switch ev.Kind {
	case CartClamped:
		return fmt.Sprintf("Корзина обновлена: %q доступно %d", ev.Title, ev.Limit)
	case CartEvicted:
		switch ev.Reason {
		case EvictHidden:
			return fmt.Sprintf("Товар скрыт: %q удален из корзины", ev.Title)
		case EvictVariantRemoved:
			return fmt.Sprintf("Вариант недоступен: %q удален из корзины", ev.Title)
		case EvictOutOfStock:
			return fmt.Sprintf("Нет в наличии: %q удален из корзины", ev.Title)
		default:
			return fmt.Sprintf("Товар недоступен: %q удален из корзины", ev.Title)
		}
	}
	return ""
}

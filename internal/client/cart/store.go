// Package cart хранит корзину покупателя и сверяет ее
// с каждым свежим снапшотом каталога.
package cart

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/solmax/tgshop/internal/client/storage"
	"github.com/solmax/tgshop/internal/models"
	"github.com/solmax/tgshop/pkg/api"
)

// Ошибки пользовательских операций с корзиной
var (
	// ErrProductHidden — товар скрыт с витрины
	ErrProductHidden = errors.New("product is hidden")

	// ErrOutOfStock — нет доступного остатка
	ErrOutOfStock = errors.New("product is out of stock")

	// ErrVariantRequired — у товара есть варианты, но вариант не выбран
	ErrVariantRequired = errors.New("variant selection is required")

	// ErrVariantNotAllowed — вариант выбран у товара без вариантов
	ErrVariantNotAllowed = errors.New("product has no variants")
)

// Store — корзина текущей сессии. Позиции держат back-reference'ы в живой
// снапшот каталога; durable storage видит только карту "ключ → количество".
// Каждая мутация количества синхронно сохраняется до возврата управления,
// чтобы перезагрузка не теряла корзину.
type Store struct {
	storage storage.CartStorage
	logger  *slog.Logger
	entries map[models.CartKey]*models.CartEntry
}

// NewStore создает корзину поверх durable storage
func NewStore(st storage.CartStorage, logger *slog.Logger) *Store {
	return &Store{
		storage: st,
		logger:  logger,
		entries: make(map[models.CartKey]*models.CartEntry),
	}
}

// Load восстанавливает корзину из durable storage.
// Позиции остаются непривязанными (product == nil) до первого bind.
// Отсутствующее или битое содержимое дает пустую корзину и никогда
// не является ошибкой для вызывающего.
func (s *Store) Load(ctx context.Context) {
	s.entries = make(map[models.CartKey]*models.CartEntry)

	quantities, err := s.storage.LoadCart(ctx)
	if err != nil {
		if !errors.Is(err, storage.ErrCartNotFound) {
			s.logger.Warn("Failed to load cart, starting empty", "error", err)
		}
		return
	}

	for raw, qty := range quantities {
		if qty <= 0 {
			continue
		}
		key, err := models.ParseCartKey(raw)
		if err != nil {
			s.logger.Warn("Skipping malformed cart key", "key", raw, "error", err)
			continue
		}
		s.entries[key] = &models.CartEntry{Key: key, Quantity: qty}
	}
}

// persist синхронно сохраняет карту количеств в durable storage
func (s *Store) persist(ctx context.Context) error {
	quantities := make(map[string]int, len(s.entries))
	for key, entry := range s.entries {
		quantities[key.String()] = entry.Quantity
	}
	if err := s.storage.SaveCart(ctx, quantities); err != nil {
		return fmt.Errorf("failed to persist cart: %w", err)
	}
	return nil
}

// Add изменяет количество позиции на delta (положительный — добавить,
// отрицательный — убавить). Количество ограничивается живым остатком;
// результат <= 0 удаляет позицию.
func (s *Store) Add(ctx context.Context, product *api.Product, variant *api.Variant, delta int) error {
	if product == nil {
		return fmt.Errorf("product is nil")
	}
	if !product.Active {
		return ErrProductHidden
	}

	// Товар с вариантами принимается только с вариантом, и наоборот
	if product.HasVariants() && variant == nil {
		return ErrVariantRequired
	}
	if !product.HasVariants() && variant != nil {
		return ErrVariantNotAllowed
	}

	limit := product.Stock
	if variant != nil {
		limit = variant.Stock
	}
	if limit <= 0 {
		return ErrOutOfStock
	}

	key := cartKey(product, variant)
	entry := s.entries[key]
	current := 0
	if entry != nil {
		current = entry.Quantity
	}

	next := current + delta
	switch {
	case next <= 0:
		delete(s.entries, key)
	case entry == nil:
		s.entries[key] = &models.CartEntry{
			Key:      key,
			Quantity: min(next, limit),
			Product:  product,
			Variant:  variant,
		}
	default:
		entry.Quantity = min(next, limit)
		entry.Product = product
		entry.Variant = variant
	}

	return s.persist(ctx)
}

// Remove удаляет позицию целиком
func (s *Store) Remove(ctx context.Context, key models.CartKey) error {
	if _, ok := s.entries[key]; !ok {
		return nil
	}
	delete(s.entries, key)
	return s.persist(ctx)
}

// Clear опустошает корзину
func (s *Store) Clear(ctx context.Context) error {
	s.entries = make(map[models.CartKey]*models.CartEntry)
	return s.persist(ctx)
}

// Get возвращает позицию по ключу или nil
func (s *Store) Get(key models.CartKey) *models.CartEntry {
	return s.entries[key]
}

// Items возвращает позиции в детерминированном порядке (по ключу)
func (s *Store) Items() []*models.CartEntry {
	items := make([]*models.CartEntry, 0, len(s.entries))
	for _, entry := range s.entries {
		items = append(items, entry)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].Key.String() < items[j].Key.String()
	})
	return items
}

// Len возвращает количество позиций
func (s *Store) Len() int {
	return len(s.entries)
}

// Count возвращает суммарное количество единиц товара в корзине
func (s *Store) Count() int {
	total := 0
	for _, entry := range s.entries {
		total += entry.Quantity
	}
	return total
}

// Total считает сумму корзины по привязанным позициям.
// Непривязанные позиции (до первого bind) в сумму не входят.
func (s *Store) Total() (int64, string) {
	var sum int64
	currency := "UAH"
	for _, entry := range s.entries {
		if entry.Product == nil {
			continue
		}
		sum += entry.Product.PriceMinor * int64(entry.Quantity)
		if entry.Product.Currency != "" {
			currency = entry.Product.Currency
		}
	}
	return sum, currency
}

// cartKey строит ключ позиции для пары товар/вариант
func cartKey(product *api.Product, variant *api.Variant) models.CartKey {
	if variant == nil {
		return models.NewCartKey(product.ID, nil)
	}
	return models.NewCartKey(product.ID, &variant.ID)
}

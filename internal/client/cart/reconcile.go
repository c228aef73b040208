package cart

import (
	"context"

	"github.com/solmax/tgshop/internal/client/catalog"
	"github.com/solmax/tgshop/internal/models"
)

// Reconcile сверяет каждую позицию корзины со свежим снапшотом каталога.
// Позиции без товара, скрытые, с удаленным вариантом или с нулевым
// остатком выселяются; количества зажимаются по живому остатку;
// уцелевшие позиции перепривязываются к объектам свежего снапшота.
//
// Количество никогда не растет, на позицию приходится не больше одного
// события, повторный вызов с тем же снапшотом ничего не меняет.
// Durable storage пишется один раз в конце и только если корзина изменилась.
func (s *Store) Reconcile(ctx context.Context, snap *catalog.Snapshot) []models.CartEvent {
	var events []models.CartEvent
	changed := false

	for key, entry := range s.entries {
		product := snap.ByID(key.ProductID)

		// Товар пропал из снапшота
		if product == nil {
			events = append(events, models.CartEvent{
				Kind:   models.CartEvicted,
				Reason: models.EvictRemoved,
				Key:    key,
				Title:  entry.Title(),
			})
			delete(s.entries, key)
			changed = true
			continue
		}

		// Товар скрыт с витрины
		if !product.Active {
			events = append(events, models.CartEvent{
				Kind:   models.CartEvicted,
				Reason: models.EvictHidden,
				Key:    key,
				Title:  product.Title,
			})
			delete(s.entries, key)
			changed = true
			continue
		}

		// У товара появились варианты, а позиция лежит без варианта:
		// такая запись больше не адресует конкретный остаток
		if product.HasVariants() && !key.HasVariant() {
			events = append(events, models.CartEvent{
				Kind:   models.CartEvicted,
				Reason: models.EvictVariantRemoved,
				Key:    key,
				Title:  product.Title,
			})
			delete(s.entries, key)
			changed = true
			continue
		}

		// Выбранный вариант исчез из товара
		limit := product.Stock
		if key.HasVariant() {
			v := product.VariantByID(key.VariantID)
			if v == nil {
				events = append(events, models.CartEvent{
					Kind:   models.CartEvicted,
					Reason: models.EvictVariantRemoved,
					Key:    key,
					Title:  product.Title,
				})
				delete(s.entries, key)
				changed = true
				continue
			}
			limit = v.Stock
			entry.Variant = v
		} else {
			entry.Variant = nil
		}

		// Количество зажимается по остатку; ноль остатка — выселение
		if limit <= 0 {
			events = append(events, models.CartEvent{
				Kind:   models.CartEvicted,
				Reason: models.EvictOutOfStock,
				Key:    key,
				Title:  product.Title,
			})
			delete(s.entries, key)
			changed = true
			continue
		}
		if entry.Quantity > limit {
			entry.Quantity = limit
			events = append(events, models.CartEvent{
				Kind:   models.CartClamped,
				Key:    key,
				Title:  product.Title,
				NewQty: limit,
				Limit:  limit,
			})
			changed = true
		}

		// Перепривязка к объекту свежего снапшота
		entry.Product = product
	}

	if changed {
		if err := s.persist(ctx); err != nil {
			s.logger.Error("Failed to persist cart after reconcile", "error", err)
		}
	}

	return events
}

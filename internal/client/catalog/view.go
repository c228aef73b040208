package catalog

import (
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/solmax/tgshop/pkg/api"
)

// SortMode — режим сортировки витрины
type SortMode string

const (
	// SortDefault — серверный порядок, но товары без остатка уходят в конец
	SortDefault SortMode = "default"
	// SortPriceAsc — по цене по возрастанию
	SortPriceAsc SortMode = "price-asc"
	// SortPriceDesc — по цене по убыванию
	SortPriceDesc SortMode = "price-desc"
	// SortPopular — по количеству продаж по убыванию
	SortPopular SortMode = "popular"
)

// Filter — активный фильтр витрины
type Filter struct {
	TagID uuid.UUID // uuid.Nil — все теги
	Query string    // подстрока названия, без учета регистра
}

// View вычисляет отображаемый срез каталога: фильтр + сортировка.
// Чистая функция от снапшота: всегда возвращает свежий слайс
// и никогда не мутирует канонический порядок.
func View(snap *Snapshot, filter Filter, mode SortMode) []*api.Product {
	query := strings.ToLower(strings.TrimSpace(filter.Query))

	result := make([]*api.Product, 0, snap.Len())
	for _, p := range snap.Products() {
		if p.Archived {
			continue
		}
		if filter.TagID != uuid.Nil && !p.HasTag(filter.TagID) {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(p.Title), query) {
			continue
		}
		result = append(result, p)
	}

	switch mode {
	case SortPriceAsc:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].PriceMinor < result[j].PriceMinor
		})
	case SortPriceDesc:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].PriceMinor > result[j].PriceMinor
		})
	case SortPopular:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].SoldCount > result[j].SoldCount
		})
	default:
		// Стабильное разбиение по доступности, НЕ сортировка компаратором:
		// внутри каждой группы относительный порядок каталога сохраняется
		result = partitionByAvailability(result)
	}

	return result
}

// partitionByAvailability переносит товары без остатка в конец,
// сохраняя исходный порядок внутри обеих групп
func partitionByAvailability(products []*api.Product) []*api.Product {
	inStock := make([]*api.Product, 0, len(products))
	outOfStock := make([]*api.Product, 0)

	for _, p := range products {
		if p.EffectiveStock() > 0 {
			inStock = append(inStock, p)
		} else {
			outOfStock = append(outOfStock, p)
		}
	}

	return append(inStock, outOfStock...)
}

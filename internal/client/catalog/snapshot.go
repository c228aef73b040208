// Package catalog хранит снапшот каталога — полный список товаров
// по состоянию на последнюю успешную загрузку с сервера.
package catalog

import (
	"github.com/google/uuid"

	"github.com/solmax/tgshop/pkg/api"
)

// Snapshot — упорядоченный список товаров, которым владеет сессия.
// Заменяется целиком на каждой успешной загрузке; полевого мержа нет —
// инкрементально патчится только проекция снапшота в карточки.
type Snapshot struct {
	products []*api.Product
	byID     map[uuid.UUID]*api.Product
}

// New создает пустой снапшот
func New() *Snapshot {
	return &Snapshot{
		byID: make(map[uuid.UUID]*api.Product),
	}
}

// Replace атомарно заменяет содержимое снапшота свежими данными сервера.
// Порядок: выжившие товары сохраняют прежние относительные позиции,
// новые добавляются в конец в серверном порядке — так карточки не
// перепрыгивают при фоновом обновлении.
// Возвращает предыдущее содержимое для вычисления диффа.
func (s *Snapshot) Replace(fresh []api.Product) *Snapshot {
	prev := &Snapshot{products: s.products, byID: s.byID}

	freshByID := make(map[uuid.UUID]*api.Product, len(fresh))
	for i := range fresh {
		freshByID[fresh[i].ID] = &fresh[i]
	}

	next := make([]*api.Product, 0, len(fresh))
	for _, old := range s.products {
		if fp, ok := freshByID[old.ID]; ok {
			next = append(next, fp)
		}
	}
	for i := range fresh {
		if _, existed := prev.byID[fresh[i].ID]; !existed {
			next = append(next, &fresh[i])
		}
	}

	s.products = next
	s.byID = freshByID
	return prev
}

// Products возвращает товары в каноническом порядке снапшота.
// Слайс принадлежит снапшоту: вызывающий не должен его мутировать.
func (s *Snapshot) Products() []*api.Product {
	return s.products
}

// ByID ищет товар в снапшоте
// Возвращает nil, если товара нет
func (s *Snapshot) ByID(id uuid.UUID) *api.Product {
	return s.byID[id]
}

// Len возвращает количество товаров в снапшоте
func (s *Snapshot) Len() int {
	return len(s.products)
}

package view

import (
	"github.com/google/uuid"

	"github.com/solmax/tgshop/pkg/api"
)

// Field называет поле карточки, затронутое патчем
type Field string

const (
	FieldTitle        Field = "title"
	FieldPrice        Field = "price"
	FieldStock        Field = "stock"
	FieldAvailability Field = "availability"
	FieldHidden       Field = "hidden"
	FieldThumb        Field = "thumb"
)

// PatchKind — тип операции над решеткой карточек
type PatchKind string

const (
	// PatchAdd — вставить новую карточку на позицию Index
	PatchAdd PatchKind = "add"
	// PatchRemove — убрать карточку из решетки
	PatchRemove PatchKind = "remove"
	// PatchMove — переставить существующую карточку на позицию Index
	PatchMove PatchKind = "move"
	// PatchSet — обновить одно поле существующей карточки
	PatchSet PatchKind = "set"
)

// Patch — одна минимальная операция приведения решетки к новому состоянию
type Patch struct {
	Kind      PatchKind
	ProductID uuid.UUID
	Index     int   // целевая позиция для PatchAdd и PatchMove
	Field     Field // затронутое поле для PatchSet
}

// Grid — решетка карточек витрины. Держит карточки между обновлениями
// и на каждом Apply выдает минимальный набор патчей: нетронутые
// карточки не перестраиваются.
type Grid struct {
	cards []*Card
	byID  map[uuid.UUID]*Card
}

// NewGrid создает пустую решетку
func NewGrid() *Grid {
	return &Grid{byID: make(map[uuid.UUID]*Card)}
}

// Apply приводит решетку к переданной проекции каталога.
// Порядок патчей: сначала удаления, затем обновления полей,
// затем вставки и перестановки в порядке целевых позиций.
func (g *Grid) Apply(products []*api.Product) []Patch {
	var patches []Patch

	desired := make(map[uuid.UUID]bool, len(products))
	for _, p := range products {
		desired[p.ID] = true
	}

	// Удаление карточек, выпавших из проекции
	survivors := g.cards[:0:0]
	for _, card := range g.cards {
		if !desired[card.ProductID] {
			patches = append(patches, Patch{Kind: PatchRemove, ProductID: card.ProductID})
			delete(g.byID, card.ProductID)
			continue
		}
		survivors = append(survivors, card)
	}

	// Обновление полей уцелевших карточек: объект переиспользуется,
	// патч выдается только на реально изменившиеся поля
	for _, p := range products {
		card, ok := g.byID[p.ID]
		if !ok {
			continue
		}
		for _, field := range card.applyProduct(p) {
			patches = append(patches, Patch{Kind: PatchSet, ProductID: p.ID, Field: field})
		}
	}

	// Вставки и перестановки до целевого порядка
	next := make([]*Card, 0, len(products))
	cursor := 0 // позиция в survivors, до которой порядок уже совпал
	for i, p := range products {
		card, ok := g.byID[p.ID]
		if !ok {
			card = newCard(p)
			g.byID[p.ID] = card
			patches = append(patches, Patch{Kind: PatchAdd, ProductID: p.ID, Index: i})
			next = append(next, card)
			continue
		}
		if cursor < len(survivors) && survivors[cursor] == card {
			cursor++
		} else {
			patches = append(patches, Patch{Kind: PatchMove, ProductID: p.ID, Index: i})
			survivors = removeCard(survivors, card)
		}
		next = append(next, card)
	}

	g.cards = next
	return patches
}

// AdvanceThumbs переключает изображения у карточек с несколькими
// картинками и возвращает патчи на поле thumb
func (g *Grid) AdvanceThumbs() []Patch {
	var patches []Patch
	for _, card := range g.cards {
		if card.advanceThumb() {
			patches = append(patches, Patch{Kind: PatchSet, ProductID: card.ProductID, Field: FieldThumb})
		}
	}
	return patches
}

// Cards возвращает карточки в текущем порядке решетки
func (g *Grid) Cards() []*Card {
	return g.cards
}

// Card ищет карточку по товару
func (g *Grid) Card(id uuid.UUID) *Card {
	return g.byID[id]
}

// Len возвращает количество карточек
func (g *Grid) Len() int {
	return len(g.cards)
}

func removeCard(cards []*Card, target *Card) []*Card {
	for i, c := range cards {
		if c == target {
			return append(cards[:i], cards[i+1:]...)
		}
	}
	return cards
}

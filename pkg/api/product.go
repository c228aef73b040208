package api

import "github.com/google/uuid"

// Tag представляет тег товара для фильтрации каталога
type Tag struct {
	ID   uuid.UUID `json:"id"`   // ID уникальный идентификатор тега
	Name string    `json:"name"` // Name название тега ("Одежда", "Аксессуары" и т.д.)
}

// Variant представляет вариант товара (размер, цвет и т.п.)
// Остатки варианта учитываются отдельно от товара
type Variant struct {
	ID    uuid.UUID `json:"id"`    // ID уникальный идентификатор варианта
	Name  string    `json:"name"`  // Name название варианта ("S", "M", "Красный")
	Stock int       `json:"stock"` // Stock остаток по этому варианту
}

// Product представляет товар витрины.
// Сервер — единственный источник правды: на каждом обновлении каталога
// объект заменяется целиком, полевого мержа на стороне сервера нет.
type Product struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	PriceMinor  int64     `json:"priceMinor"` // цена в минимальных единицах валюты
	Currency    string    `json:"currency"`
	Stock       int       `json:"stock"` // игнорируется при наличии вариантов (равен их сумме)
	ImageURLs   []string  `json:"imageUrls"`
	Active      bool      `json:"active"`   // видимость на витрине
	Archived    bool      `json:"archived"` // мягкое удаление (только админка)
	Tags        []Tag     `json:"tags"`
	Variants    []Variant `json:"variants"`
	SoldCount   int64     `json:"soldCount"` // для сортировки по популярности
}

// HasVariants сообщает, объявлены ли у товара варианты
func (p *Product) HasVariants() bool {
	return len(p.Variants) > 0
}

// EffectiveStock возвращает доступный остаток товара:
// сумму остатков вариантов, если они есть, иначе поле Stock
func (p *Product) EffectiveStock() int {
	if !p.HasVariants() {
		return p.Stock
	}
	total := 0
	for _, v := range p.Variants {
		total += v.Stock
	}
	return total
}

// VariantByID ищет вариант по идентификатору
// Возвращает nil, если вариант не найден
func (p *Product) VariantByID(id uuid.UUID) *Variant {
	for i := range p.Variants {
		if p.Variants[i].ID == id {
			return &p.Variants[i]
		}
	}
	return nil
}

// HasTag проверяет принадлежность товара к тегу
func (p *Product) HasTag(tagID uuid.UUID) bool {
	for _, t := range p.Tags {
		if t.ID == tagID {
			return true
		}
	}
	return false
}

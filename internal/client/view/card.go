// Package view проецирует товары каталога в карточки витрины и
// инкрементально патчит решетку карточек при обновлениях каталога.
package view

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/solmax/tgshop/pkg/api"
)

// Card — отображаемое состояние одной карточки товара.
// Карточка живет между обновлениями каталога: при диффе меняются
// только затронутые поля, сам объект переиспользуется.
type Card struct {
	ProductID uuid.UUID
	Title     string
	PriceText string
	StockText string
	Available bool
	Hidden    bool // active=false, видно только в режиме предпросмотра
	ThumbURL  string

	imageURLs  []string
	thumbIndex int
}

// newCard строит карточку из товара
func newCard(p *api.Product) *Card {
	c := &Card{ProductID: p.ID}
	c.applyProduct(p)
	return c
}

// applyProduct обновляет поля карточки из товара и возвращает
// список изменившихся полей
func (c *Card) applyProduct(p *api.Product) []Field {
	var changed []Field

	if title := p.Title; c.Title != title {
		c.Title = title
		changed = append(changed, FieldTitle)
	}
	if price := formatPrice(p.PriceMinor, p.Currency); c.PriceText != price {
		c.PriceText = price
		changed = append(changed, FieldPrice)
	}
	if stock := formatStock(p.EffectiveStock()); c.StockText != stock {
		c.StockText = stock
		changed = append(changed, FieldStock)
	}
	if available := p.EffectiveStock() > 0; c.Available != available {
		c.Available = available
		changed = append(changed, FieldAvailability)
	}
	if hidden := !p.Active; c.Hidden != hidden {
		c.Hidden = hidden
		changed = append(changed, FieldHidden)
	}

	if !equalURLs(c.imageURLs, p.ImageURLs) {
		c.imageURLs = p.ImageURLs
		if c.thumbIndex >= len(c.imageURLs) {
			c.thumbIndex = 0
		}
	}
	if thumb := c.currentThumb(); c.ThumbURL != thumb {
		c.ThumbURL = thumb
		changed = append(changed, FieldThumb)
	}

	return changed
}

// advanceThumb переключает карточку на следующее изображение.
// Возвращает false, если переключать нечего.
func (c *Card) advanceThumb() bool {
	if len(c.imageURLs) < 2 {
		return false
	}
	c.thumbIndex = (c.thumbIndex + 1) % len(c.imageURLs)
	c.ThumbURL = c.currentThumb()
	return true
}

func (c *Card) currentThumb() string {
	if len(c.imageURLs) == 0 {
		return ""
	}
	return c.imageURLs[c.thumbIndex]
}

// formatPrice печатает цену из минорных единиц: 1550 UAH -> "15.50 UAH"
func formatPrice(minor int64, currency string) string {
	if currency == "" {
		currency = "UAH"
	}
	return fmt.Sprintf("%d.%02d %s", minor/100, minor%100, currency)
}

// formatStock печатает остаток для карточки
func formatStock(stock int) string {
	if stock <= 0 {
		return "Нет в наличии"
	}
	return fmt.Sprintf("В наличии: %d", stock)
}

func equalURLs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

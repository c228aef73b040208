package cli

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/solmax/tgshop/internal/client/catalog"
)

// runCatalog показывает витрину с фильтром и сортировкой
func (c *Cli) runCatalog(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("catalog", flag.ContinueOnError)
	tagArg := fs.String("tag", "", "filter by tag name or id")
	search := fs.String("search", "", "filter by title substring")
	sortArg := fs.String("sort", "default", "sort mode: default, price-asc, price-desc, popular")
	if err := fs.Parse(args); err != nil {
		return err
	}

	mode, err := parseSortMode(*sortArg)
	if err != nil {
		return err
	}

	if err := c.bootSession(ctx); err != nil {
		return err
	}

	filter := catalog.Filter{Query: *search}
	if *tagArg != "" {
		tagID, err := c.resolveTag(*tagArg)
		if err != nil {
			return err
		}
		filter.TagID = tagID
	}

	c.session.SetFilter(filter)
	c.session.SetSort(mode)

	cards := c.session.Cards()
	if len(cards) == 0 {
		c.io.Println("Ничего не найдено.")
		return nil
	}

	c.io.Printf("Товаров: %d\n\n", len(cards))
	for _, card := range cards {
		marker := " "
		if !card.Available {
			marker = "✗"
		}
		c.io.Printf("%s %-30s %12s  %s", marker, card.Title, card.PriceText, card.StockText)
		if card.Hidden {
			c.io.Printf("  [скрыт]")
		}
		c.io.Printf("\n   id: %s\n", card.ProductID)
	}
	return nil
}

// parseSortMode разбирает режим сортировки из аргумента
func parseSortMode(s string) (catalog.SortMode, error) {
	switch catalog.SortMode(s) {
	case catalog.SortDefault, catalog.SortPriceAsc, catalog.SortPriceDesc, catalog.SortPopular:
		return catalog.SortMode(s), nil
	default:
		return "", fmt.Errorf("unknown sort mode %q: use default, price-asc, price-desc or popular", s)
	}
}

// resolveTag находит тег по имени или UUID
func (c *Cli) resolveTag(arg string) (uuid.UUID, error) {
	if id, err := uuid.Parse(arg); err == nil {
		return id, nil
	}
	for _, tag := range c.session.Tags() {
		if strings.EqualFold(tag.Name, arg) {
			return tag.ID, nil
		}
	}
	return uuid.Nil, fmt.Errorf("unknown tag %q", arg)
}

package cli

import (
	"context"
	"fmt"
	"strings"
)

// runProduct показывает карточку товара целиком
func (c *Cli) runProduct(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing product id. Usage: tgshop product <id>")
	}

	id, err := parseID(args[0], "product")
	if err != nil {
		return err
	}

	if err := c.bootSession(ctx); err != nil {
		return err
	}

	p := c.session.Product(id)
	if p == nil {
		return fmt.Errorf("product not found: %s", id)
	}

	c.io.Println()
	c.io.Printf("%s\n", p.Title)
	c.io.Printf("Цена:    %s\n", formatMoney(p.PriceMinor, p.Currency))
	if p.HasVariants() {
		c.io.Println("Варианты:")
		for _, v := range p.Variants {
			c.io.Printf("  %-12s остаток %d   id: %s\n", v.Name, v.Stock, v.ID)
		}
	} else {
		c.io.Printf("Остаток: %d\n", p.Stock)
	}
	if len(p.Tags) > 0 {
		names := make([]string, 0, len(p.Tags))
		for _, t := range p.Tags {
			names = append(names, t.Name)
		}
		c.io.Printf("Теги:    %s\n", strings.Join(names, ", "))
	}
	if p.Description != "" {
		c.io.Printf("\n%s\n", p.Description)
	}
	for _, u := range p.ImageURLs {
		c.io.Printf("Фото: %s\n", u)
	}
	if !p.Active {
		c.io.Println("\n[товар скрыт с витрины]")
	}
	c.io.Println()
	return nil
}

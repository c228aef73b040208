package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"github.com/solmax/tgshop/internal/models"
)

// runCart выполняет подкоманды корзины
func (c *Cli) runCart(ctx context.Context, args []string) error {
	if err := c.bootSession(ctx); err != nil {
		return err
	}

	if len(args) == 0 {
		return c.showCart()
	}

	switch args[0] {
	case "add":
		return c.runCartAdd(ctx, args[1:])
	case "remove":
		return c.runCartRemove(ctx, args[1:])
	case "clear":
		if err := c.session.ClearCart(ctx); err != nil {
			return err
		}
		c.io.Println("Корзина очищена.")
		return nil
	default:
		return fmt.Errorf("unknown cart subcommand: %s", args[0])
	}
}

func (c *Cli) showCart() error {
	items := c.session.CartItems()
	if len(items) == 0 {
		c.io.Println("Корзина пуста.")
		return nil
	}

	c.io.Println()
	for _, entry := range items {
		title := entry.Title()
		if title == "" {
			title = entry.Key.ProductID.String()
		}
		c.io.Printf("%-30s x%d", title, entry.Quantity)
		if entry.Variant != nil {
			c.io.Printf("  (%s)", entry.Variant.Name)
		}
		if entry.Product != nil {
			c.io.Printf("  %s", formatMoney(entry.Product.PriceMinor*int64(entry.Quantity), entry.Product.Currency))
		}
		c.io.Println()
	}

	total, currency := c.session.CartTotal()
	c.io.Printf("\nИтого: %s\n", formatMoney(total, currency))
	return nil
}

// runCartAdd добавляет товар: cart add <product-id> [variant-id] [qty]
func (c *Cli) runCartAdd(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing product id. Usage: tgshop cart add <product-id> [variant-id] [qty]")
	}

	productID, err := parseID(args[0], "product")
	if err != nil {
		return err
	}

	var variantID *uuid.UUID
	qty := 1
	for _, arg := range args[1:] {
		if id, err := uuid.Parse(arg); err == nil {
			variantID = &id
			continue
		}
		n, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("invalid argument %q: expected variant id or quantity", arg)
		}
		qty = n
	}

	if err := c.session.AddToCart(ctx, productID, variantID, qty); err != nil {
		return err
	}
	c.io.Println("Добавлено.")
	return c.showCart()
}

// runCartRemove удаляет позицию: cart remove <product-id> [variant-id]
func (c *Cli) runCartRemove(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing product id. Usage: tgshop cart remove <product-id> [variant-id]")
	}

	productID, err := parseID(args[0], "product")
	if err != nil {
		return err
	}

	var variantID *uuid.UUID
	if len(args) > 1 {
		id, err := parseID(args[1], "variant")
		if err != nil {
			return err
		}
		variantID = &id
	}

	if err := c.session.RemoveFromCart(ctx, models.NewCartKey(productID, variantID)); err != nil {
		return err
	}
	c.io.Println("Удалено.")
	return nil
}

package cli

import (
	"context"
	"fmt"
)

// runAdminOrders печатает заказы со снапшотами позиций на момент покупки
func (c *Cli) runAdminOrders(ctx context.Context) error {
	auth, err := c.adminAuth(ctx)
	if err != nil {
		return err
	}

	orders, err := c.apiClient.AdminOrders(ctx, auth)
	if err != nil {
		return c.adminErr(ctx, err)
	}

	if len(orders) == 0 {
		c.io.Println("Заказов нет.")
		return nil
	}

	c.io.Printf("Заказов: %d\n", len(orders))
	for _, o := range orders {
		c.io.Printf("\n%s  %s  %s\n", o.ID, o.CreatedAt.Format("2006-01-02 15:04"), o.Status)
		customer := o.CustomerName
		if o.TgUsername != "" {
			customer = fmt.Sprintf("%s (@%s)", customer, o.TgUsername)
		}
		c.io.Printf("  %s, %s\n", customer, o.Phone)
		c.io.Printf("  %s\n", o.Address)
		if o.Comment != "" {
			c.io.Printf("  Комментарий: %s\n", o.Comment)
		}
		for _, item := range o.Items {
			title := item.TitleSnapshot
			if item.VariantNameSnapshot != "" {
				title = fmt.Sprintf("%s (%s)", title, item.VariantNameSnapshot)
			}
			c.io.Printf("  - %s x%d  %s\n", title, item.Quantity,
				formatMoney(item.PriceMinorSnapshot*int64(item.Quantity), o.Currency))
		}
		if o.DiscountMinor > 0 {
			c.io.Printf("  Скидка (%s): -%s\n", o.PromoCode, formatMoney(o.DiscountMinor, o.Currency))
		}
		c.io.Printf("  Итого: %s\n", formatMoney(o.TotalMinor, o.Currency))
	}
	return nil
}

func (c *Cli) runAdminDeleteOrder(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: admin delete-order <id>")
	}
	id, err := parseID(args[0], "order id")
	if err != nil {
		return err
	}

	auth, err := c.adminAuth(ctx)
	if err != nil {
		return err
	}

	if err := c.apiClient.DeleteOrder(ctx, auth, id); err != nil {
		return c.adminErr(ctx, err)
	}

	c.io.Println("Заказ удален.")
	return nil
}

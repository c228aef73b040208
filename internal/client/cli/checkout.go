package cli

import (
	"context"
	"fmt"

	"github.com/solmax/tgshop/internal/client/session"
)

// runCheckout оформляет заказ из корзины в диалоговом режиме
func (c *Cli) runCheckout(ctx context.Context) error {
	if err := c.bootSession(ctx); err != nil {
		return err
	}

	if len(c.session.CartItems()) == 0 {
		return fmt.Errorf("cart is empty, nothing to order")
	}

	if err := c.showCart(); err != nil {
		return err
	}
	c.io.Println()

	name, err := c.io.ReadInput("Имя получателя: ")
	if err != nil {
		return err
	}
	phone, err := c.io.ReadInput("Телефон: ")
	if err != nil {
		return err
	}
	address, err := c.io.ReadInput("Адрес доставки: ")
	if err != nil {
		return err
	}
	comment, err := c.io.ReadInput("Комментарий (можно пусто): ")
	if err != nil {
		return err
	}
	promo, err := c.io.ReadInput("Промокод (можно пусто): ")
	if err != nil {
		return err
	}

	resp, err := c.session.Checkout(ctx, session.CheckoutForm{
		Name:      name,
		Phone:     phone,
		Address:   address,
		Comment:   comment,
		PromoCode: promo,
	})
	if err != nil {
		return err
	}

	c.io.Printf("\nЗаказ оформлен. Номер заказа: %s\n", resp.OrderID)
	c.io.Println("Инструкция по оплате придет сообщением от бота.")
	return nil
}

package cli

import (
	"context"
	"fmt"
	"os"
)

// runAdminTemplate печатает текущий шаблон платёжного сообщения
func (c *Cli) runAdminTemplate(ctx context.Context) error {
	auth, err := c.adminAuth(ctx)
	if err != nil {
		return err
	}

	tpl, err := c.apiClient.PaymentTemplate(ctx, auth)
	if err != nil {
		return c.adminErr(ctx, err)
	}

	c.io.Println(tpl.HTML)
	return nil
}

// runAdminTemplateSet загружает шаблон из файла и сохраняет его на сервере
func (c *Cli) runAdminTemplateSet(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: admin template-set <file>")
	}

	html, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read template file: %w", err)
	}
	if len(html) == 0 {
		return fmt.Errorf("template file is empty: %s", args[0])
	}

	auth, err := c.adminAuth(ctx)
	if err != nil {
		return err
	}

	if _, err := c.apiClient.UpdatePaymentTemplate(ctx, auth, string(html)); err != nil {
		return c.adminErr(ctx, err)
	}

	c.io.Println("Шаблон сохранен.")
	return nil
}

// runAdminTemplateReset возвращает встроенный шаблон по умолчанию
func (c *Cli) runAdminTemplateReset(ctx context.Context) error {
	auth, err := c.adminAuth(ctx)
	if err != nil {
		return err
	}

	if _, err := c.apiClient.UpdatePaymentTemplate(ctx, auth, defaultPaymentTemplate); err != nil {
		return c.adminErr(ctx, err)
	}

	c.io.Println("Шаблон сброшен к значению по умолчанию.")
	return nil
}

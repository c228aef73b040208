package cli

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/solmax/tgshop/pkg/api"
)

// runAdminProducts печатает полный каталог, включая скрытые товары
func (c *Cli) runAdminProducts(ctx context.Context, args []string) error {
	auth, err := c.adminAuth(ctx)
	if err != nil {
		return err
	}

	archived := len(args) > 0 && args[0] == "--archived"

	var products []api.Product
	if archived {
		products, err = c.apiClient.ArchivedProducts(ctx, auth)
	} else {
		products, err = c.apiClient.AdminProducts(ctx, auth)
	}
	if err != nil {
		return c.adminErr(ctx, err)
	}

	if len(products) == 0 {
		c.io.Println("Товаров нет.")
		return nil
	}

	c.io.Printf("Товаров: %d\n\n", len(products))
	for _, p := range products {
		state := "видим"
		if !p.Active {
			state = "скрыт"
		}
		if p.Archived {
			state = "архив"
		}
		c.io.Printf("%-30s %12s  остаток %-4d продано %-4d [%s]\n",
			p.Title, formatMoney(p.PriceMinor, p.Currency), p.EffectiveStock(), p.SoldCount, state)
		c.io.Printf("   id: %s\n", p.ID)
	}
	return nil
}

// runAdminAddProduct создает товар в диалоговом режиме
func (c *Cli) runAdminAddProduct(ctx context.Context) error {
	auth, err := c.adminAuth(ctx)
	if err != nil {
		return err
	}

	req, err := c.promptProduct(api.CreateProductRequest{Currency: "UAH", Active: true})
	if err != nil {
		return err
	}

	created, err := c.apiClient.CreateProduct(ctx, auth, *req)
	if err != nil {
		return c.adminErr(ctx, err)
	}

	c.io.Printf("Товар создан: %s (id: %s)\n", created.Title, created.ID)
	return nil
}

// runAdminEditProduct меняет товар; пустой ввод оставляет старое значение
func (c *Cli) runAdminEditProduct(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing product id. Usage: tgshop admin edit-product <id>")
	}
	id, err := parseID(args[0], "product")
	if err != nil {
		return err
	}

	auth, err := c.adminAuth(ctx)
	if err != nil {
		return err
	}

	products, err := c.apiClient.AdminProducts(ctx, auth)
	if err != nil {
		return c.adminErr(ctx, err)
	}
	var current *api.Product
	for i := range products {
		if products[i].ID == id {
			current = &products[i]
			break
		}
	}
	if current == nil {
		return fmt.Errorf("product not found: %s", id)
	}

	seed := api.CreateProductRequest{
		Title:       current.Title,
		Description: current.Description,
		PriceMinor:  current.PriceMinor,
		Currency:    current.Currency,
		Stock:       current.Stock,
		ImageURLs:   current.ImageURLs,
		Active:      current.Active,
	}
	filled, err := c.promptProduct(seed)
	if err != nil {
		return err
	}

	upd := api.UpdateProductRequest{
		Title:       filled.Title,
		Description: filled.Description,
		PriceMinor:  filled.PriceMinor,
		Currency:    filled.Currency,
		Stock:       filled.Stock,
		ImageURLs:   filled.ImageURLs,
	}
	// PATCH заменяет товар целиком: сохраняем текущие теги и варианты
	for _, t := range current.Tags {
		upd.TagIDs = append(upd.TagIDs, t.ID.String())
	}
	for _, v := range current.Variants {
		upd.Variants = append(upd.Variants, api.VariantRequest{ID: v.ID.String(), Name: v.Name, Stock: v.Stock})
	}
	updated, err := c.apiClient.UpdateProduct(ctx, auth, id, upd)
	if err != nil {
		return c.adminErr(ctx, err)
	}

	c.io.Printf("Товар обновлен: %s\n", updated.Title)
	return nil
}

// promptProduct заполняет поля товара с подсказками-умолчаниями
func (c *Cli) promptProduct(seed api.CreateProductRequest) (*api.CreateProductRequest, error) {
	var err error
	if seed.Title, err = c.promptString(fmt.Sprintf("Название [%s]: ", seed.Title), seed.Title); err != nil {
		return nil, err
	}
	if seed.Title == "" {
		return nil, fmt.Errorf("title cannot be empty")
	}
	if seed.Description, err = c.promptString("Описание: ", seed.Description); err != nil {
		return nil, err
	}

	priceStr, err := c.promptString(fmt.Sprintf("Цена [%s]: ", formatMoney(seed.PriceMinor, seed.Currency)), "")
	if err != nil {
		return nil, err
	}
	if priceStr != "" {
		if seed.PriceMinor, err = parseMinor(priceStr); err != nil {
			return nil, err
		}
	}
	if seed.Currency, err = c.promptString(fmt.Sprintf("Валюта [%s]: ", seed.Currency), seed.Currency); err != nil {
		return nil, err
	}
	if seed.Stock, err = c.promptInt(fmt.Sprintf("Остаток [%d]: ", seed.Stock), seed.Stock); err != nil {
		return nil, err
	}

	images, err := c.promptString("Фото (url через запятую): ", "")
	if err != nil {
		return nil, err
	}
	if images != "" {
		seed.ImageURLs = splitList(images)
	}
	return &seed, nil
}

// runAdminSetActive скрывает или показывает товар на витрине
func (c *Cli) runAdminSetActive(ctx context.Context, args []string, active bool) error {
	return c.setProductFlag(ctx, args, func(ctx context.Context, id uuid.UUID) error {
		auth, err := c.adminAuth(ctx)
		if err != nil {
			return err
		}
		p, err := c.apiClient.SetProductActive(ctx, auth, id, active)
		if err != nil {
			return c.adminErr(ctx, err)
		}
		if active {
			c.io.Printf("Товар %q снова на витрине.\n", p.Title)
		} else {
			c.io.Printf("Товар %q скрыт. Корзины покупателей обновятся при следующем опросе.\n", p.Title)
		}
		return nil
	})
}

// runAdminSetArchived перемещает товар в архив или из него
func (c *Cli) runAdminSetArchived(ctx context.Context, args []string, archived bool) error {
	return c.setProductFlag(ctx, args, func(ctx context.Context, id uuid.UUID) error {
		auth, err := c.adminAuth(ctx)
		if err != nil {
			return err
		}
		p, err := c.apiClient.SetProductArchived(ctx, auth, id, archived)
		if err != nil {
			return c.adminErr(ctx, err)
		}
		if archived {
			c.io.Printf("Товар %q в архиве.\n", p.Title)
		} else {
			c.io.Printf("Товар %q восстановлен из архива.\n", p.Title)
		}
		return nil
	})
}

func (c *Cli) setProductFlag(ctx context.Context, args []string, apply func(context.Context, uuid.UUID) error) error {
	if len(args) == 0 {
		return fmt.Errorf("missing product id")
	}
	id, err := parseID(args[0], "product")
	if err != nil {
		return err
	}
	return apply(ctx, id)
}

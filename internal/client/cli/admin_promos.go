package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/solmax/tgshop/internal/validation"
	"github.com/solmax/tgshop/pkg/api"
)

// runAdminPromos печатает список промокодов вместе со счетчиками использования
func (c *Cli) runAdminPromos(ctx context.Context) error {
	auth, err := c.adminAuth(ctx)
	if err != nil {
		return err
	}

	promos, err := c.apiClient.PromoCodes(ctx, auth)
	if err != nil {
		return c.adminErr(ctx, err)
	}

	if len(promos) == 0 {
		c.io.Println("Промокодов нет.")
		return nil
	}

	for _, p := range promos {
		discount := fmt.Sprintf("%d%%", p.DiscountPercent)
		if p.DiscountPercent == 0 {
			discount = formatMoney(p.DiscountAmountMinor, "UAH")
		}
		uses := fmt.Sprintf("%d", p.UsesCount)
		if p.MaxUses != nil {
			uses = fmt.Sprintf("%d/%d", p.UsesCount, *p.MaxUses)
		}
		state := ""
		if !p.Active {
			state = "  [выключен]"
		}
		c.io.Printf("%s  %-16s скидка %-10s использован %s%s\n", p.ID, p.Code, discount, uses, state)
	}
	return nil
}

func (c *Cli) runAdminAddPromo(ctx context.Context) error {
	auth, err := c.adminAuth(ctx)
	if err != nil {
		return err
	}

	code, err := c.promptString("Код: ", "")
	if err != nil {
		return err
	}
	code = validation.NormalizePromoCode(code)
	if code == "" {
		return fmt.Errorf("promo code is empty")
	}

	percent, err := c.promptInt("Скидка в процентах (0 — фиксированная сумма): ", 0)
	if err != nil {
		return err
	}

	var amount int64
	if percent == 0 {
		raw, err := c.promptString("Сумма скидки (например 50.00): ", "0")
		if err != nil {
			return err
		}
		amount, err = parseMinor(raw)
		if err != nil {
			return err
		}
	}

	req := api.CreatePromoCodeRequest{
		Code:                code,
		DiscountPercent:     percent,
		DiscountAmountMinor: amount,
		Active:              true,
	}

	rawMax, err := c.promptString("Лимит использований (пусто — без лимита): ", "")
	if err != nil {
		return err
	}
	if rawMax = strings.TrimSpace(rawMax); rawMax != "" {
		maxUses, err := strconv.Atoi(rawMax)
		if err != nil || maxUses <= 0 {
			return fmt.Errorf("invalid max uses: %q", rawMax)
		}
		req.MaxUses = &maxUses
	}

	promo, err := c.apiClient.CreatePromoCode(ctx, auth, req)
	if err != nil {
		return c.adminErr(ctx, err)
	}

	c.io.Printf("Промокод создан: %s (%s)\n", promo.Code, promo.ID)
	return nil
}

func (c *Cli) runAdminDeletePromo(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: admin delete-promo <id>")
	}
	id, err := parseID(args[0], "promo id")
	if err != nil {
		return err
	}

	auth, err := c.adminAuth(ctx)
	if err != nil {
		return err
	}

	if err := c.apiClient.DeletePromoCode(ctx, auth, id); err != nil {
		return c.adminErr(ctx, err)
	}

	c.io.Println("Промокод удален.")
	return nil
}

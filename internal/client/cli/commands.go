package cli

import (
	"context"
	"fmt"
)

// Run выполняет команду клиента
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "catalog":
		return c.runCatalog(ctx, args)
	case "product":
		return c.runProduct(ctx, args)
	case "cart":
		return c.runCart(ctx, args)
	case "checkout":
		return c.runCheckout(ctx)
	case "watch":
		return c.runWatch(ctx, args)
	case "status":
		return c.runStatus(ctx)
	case "admin":
		return c.runAdmin(ctx, args)
	default:
		PrintUsage()
		return fmt.Errorf("unknown command: %s", command)
	}
}

// runAdmin разбирает админскую подкоманду
func (c *Cli) runAdmin(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing admin subcommand. Usage: tgshop admin <subcommand>")
	}

	sub, rest := args[0], args[1:]
	switch sub {
	case "login":
		return c.runAdminLogin(ctx)
	case "logout":
		return c.runAdminLogout(ctx)
	case "products":
		return c.runAdminProducts(ctx, rest)
	case "add-product":
		return c.runAdminAddProduct(ctx)
	case "edit-product":
		return c.runAdminEditProduct(ctx, rest)
	case "hide", "show":
		return c.runAdminSetActive(ctx, rest, sub == "show")
	case "archive", "unarchive":
		return c.runAdminSetArchived(ctx, rest, sub == "archive")
	case "tags":
		return c.runAdminTags(ctx)
	case "add-tag":
		return c.runAdminAddTag(ctx, rest)
	case "rename-tag":
		return c.runAdminRenameTag(ctx, rest)
	case "delete-tag":
		return c.runAdminDeleteTag(ctx, rest)
	case "promos":
		return c.runAdminPromos(ctx)
	case "add-promo":
		return c.runAdminAddPromo(ctx)
	case "delete-promo":
		return c.runAdminDeletePromo(ctx, rest)
	case "orders":
		return c.runAdminOrders(ctx)
	case "delete-order":
		return c.runAdminDeleteOrder(ctx, rest)
	case "template":
		return c.runAdminTemplate(ctx)
	case "template-set":
		return c.runAdminTemplateSet(ctx, rest)
	case "template-reset":
		return c.runAdminTemplateReset(ctx)
	default:
		return fmt.Errorf("unknown admin subcommand: %s", sub)
	}
}

// PrintUsage выводит справку по командам
func PrintUsage() {
	fmt.Print(usageTemplate)
}

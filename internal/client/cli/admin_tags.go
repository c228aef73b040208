package cli

import (
	"context"
	"fmt"
	"strings"
)

// runAdminTags печатает список тегов каталога
func (c *Cli) runAdminTags(ctx context.Context) error {
	auth, err := c.adminAuth(ctx)
	if err != nil {
		return err
	}

	tags, err := c.apiClient.AdminTags(ctx, auth)
	if err != nil {
		return c.adminErr(ctx, err)
	}

	if len(tags) == 0 {
		c.io.Println("Тегов нет.")
		return nil
	}

	for _, t := range tags {
		c.io.Printf("%s  %s\n", t.ID, t.Name)
	}
	return nil
}

func (c *Cli) runAdminAddTag(ctx context.Context, args []string) error {
	name := strings.TrimSpace(strings.Join(args, " "))
	if name == "" {
		return fmt.Errorf("usage: admin add-tag <name>")
	}

	auth, err := c.adminAuth(ctx)
	if err != nil {
		return err
	}

	tag, err := c.apiClient.CreateTag(ctx, auth, name)
	if err != nil {
		return c.adminErr(ctx, err)
	}

	c.io.Printf("Тег создан: %s (%s)\n", tag.Name, tag.ID)
	return nil
}

func (c *Cli) runAdminRenameTag(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: admin rename-tag <id> <name>")
	}
	id, err := parseID(args[0], "tag id")
	if err != nil {
		return err
	}
	name := strings.TrimSpace(strings.Join(args[1:], " "))
	if name == "" {
		return fmt.Errorf("tag name is empty")
	}

	auth, err := c.adminAuth(ctx)
	if err != nil {
		return err
	}

	tag, err := c.apiClient.UpdateTag(ctx, auth, id, name)
	if err != nil {
		return c.adminErr(ctx, err)
	}

	c.io.Printf("Тег переименован: %s\n", tag.Name)
	return nil
}

func (c *Cli) runAdminDeleteTag(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: admin delete-tag <id>")
	}
	id, err := parseID(args[0], "tag id")
	if err != nil {
		return err
	}

	auth, err := c.adminAuth(ctx)
	if err != nil {
		return err
	}

	if err := c.apiClient.DeleteTag(ctx, auth, id); err != nil {
		return c.adminErr(ctx, err)
	}

	c.io.Println("Тег удален.")
	return nil
}

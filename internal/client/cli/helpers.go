package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// formatMoney печатает сумму из минорных единиц: 1550 UAH -> "15.50 UAH"
func formatMoney(minor int64, currency string) string {
	if currency == "" {
		currency = "UAH"
	}
	return fmt.Sprintf("%d.%02d %s", minor/100, minor%100, currency)
}

// parseID разбирает UUID из аргумента команды
func parseID(arg, what string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(arg))
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid %s id %q: %w", what, arg, err)
	}
	return id, nil
}

// parseMinor разбирает цену вида "15.50" в минорные единицы
func parseMinor(s string) (int64, error) {
	s = strings.TrimSpace(s)
	major, frac, hasFrac := strings.Cut(s, ".")

	minor, err := strconv.ParseInt(major, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid price %q", s)
	}
	minor *= 100

	if hasFrac {
		if len(frac) > 2 {
			return 0, fmt.Errorf("invalid price %q: at most two decimal places", s)
		}
		for len(frac) < 2 {
			frac += "0"
		}
		cents, err := strconv.ParseInt(frac, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid price %q", s)
		}
		minor += cents
	}
	return minor, nil
}

// promptInt читает целое число, пустой ввод дает значение по умолчанию
func (c *Cli) promptInt(prompt string, def int) (int, error) {
	input, err := c.io.ReadInput(prompt)
	if err != nil {
		return 0, err
	}
	if input == "" {
		return def, nil
	}
	n, err := strconv.Atoi(input)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", input)
	}
	return n, nil
}

// promptString читает строку, пустой ввод дает значение по умолчанию
func (c *Cli) promptString(prompt, def string) (string, error) {
	input, err := c.io.ReadInput(prompt)
	if err != nil {
		return "", err
	}
	if input == "" {
		return def, nil
	}
	return input, nil
}

// splitList разбирает список значений через запятую
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

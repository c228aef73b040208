// Package validation проверяет данные формы оформления заказа
// до отправки на сервер.
package validation

import (
	"fmt"
	"regexp"
	"strings"
)

// PhonePattern определяет допустимый формат телефона:
// опциональный +, затем 7-15 цифр; пробелы, скобки и дефисы
// вычищаются до проверки.
var PhonePattern = regexp.MustCompile(`^\+?[0-9]{7,15}$`)

const (
	// MaxNameLen максимальная длина имени получателя
	MaxNameLen = 120
	// MaxAddressLen максимальная длина адреса доставки
	MaxAddressLen = 500
	// MaxCommentLen максимальная длина комментария к заказу
	MaxCommentLen = 1000
)

// ValidateName проверяет имя получателя
func ValidateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("name cannot be empty")
	}
	if len(name) > MaxNameLen {
		return fmt.Errorf("name must not exceed %d characters", MaxNameLen)
	}
	return nil
}

// ValidatePhone проверяет телефон получателя.
// Разделители (пробелы, скобки, дефисы) допускаются и игнорируются.
func ValidatePhone(phone string) error {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '(', ')', '-':
			return -1
		}
		return r
	}, strings.TrimSpace(phone))

	if cleaned == "" {
		return fmt.Errorf("phone cannot be empty")
	}
	if !PhonePattern.MatchString(cleaned) {
		return fmt.Errorf("phone must contain 7-15 digits, optionally starting with +")
	}
	return nil
}

// ValidateAddress проверяет адрес доставки
func ValidateAddress(address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return fmt.Errorf("address cannot be empty")
	}
	if len(address) > MaxAddressLen {
		return fmt.Errorf("address must not exceed %d characters", MaxAddressLen)
	}
	return nil
}

// ValidateComment проверяет комментарий к заказу (может быть пустым)
func ValidateComment(comment string) error {
	if len(comment) > MaxCommentLen {
		return fmt.Errorf("comment must not exceed %d characters", MaxCommentLen)
	}
	return nil
}

// NormalizePromoCode приводит промокод к канонической форме:
// обрезанные пробелы, верхний регистр. Пустая строка — промокода нет.
func NormalizePromoCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// ValidateCheckout проверяет форму заказа целиком.
// Возвращает первую найденную ошибку.
func ValidateCheckout(name, phone, address, comment string) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	if err := ValidatePhone(phone); err != nil {
		return err
	}
	if err := ValidateAddress(address); err != nil {
		return err
	}
	return ValidateComment(comment)
}

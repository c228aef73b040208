package telegram

//go:generate moq -out bridge_mock.go . Bridge

// HapticKind — тип тактильного отклика
type HapticKind string

const (
	HapticSuccess   HapticKind = "success"
	HapticError     HapticKind = "error"
	HapticSelection HapticKind = "selection"
)

// Bridge — нативные возможности Telegram-клиента, доступные мини-приложению.
// Вне Telegram используется NoopBridge.
type Bridge interface {
	// SetMainButton показывает main button с текстом или прячет ее
	SetMainButton(text string, visible bool)

	// Haptic запрашивает тактильный отклик
	Haptic(kind HapticKind)
}

// NoopBridge — заглушка для запуска вне Telegram-клиента
type NoopBridge struct{}

func (NoopBridge) SetMainButton(text string, visible bool) {}

func (NoopBridge) Haptic(kind HapticKind) {}

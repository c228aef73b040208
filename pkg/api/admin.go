package api

// MeResponse представляет ответ /api/me — профиль пользователя Mini App
type MeResponse struct {
	UserID    int64  `json:"userId"`
	FirstName string `json:"firstName,omitempty"`
	Username  string `json:"username,omitempty"`
	Admin     bool   `json:"admin"` // доступ к админским операциям
}

// AppInfo представляет публичную конфигурацию приложения
type AppInfo struct {
	BotUsername   string `json:"botUsername,omitempty"`
	WebappBaseURL string `json:"webappBaseUrl,omitempty"`
}

// AdminLoginRequest представляет запрос проверки админского пароля
type AdminLoginRequest struct {
	Password string `json:"password"`
}

// PaymentTemplate представляет шаблон платёжного сообщения,
// которое бот отправляет покупателю после подтверждения заказа
type PaymentTemplate struct {
	HTML string `json:"html"`
}

// CreateProductRequest представляет запрос создания товара
type CreateProductRequest struct {
	Title       string           `json:"title"`
	Description string           `json:"description,omitempty"`
	PriceMinor  int64            `json:"priceMinor"`
	Currency    string           `json:"currency"`
	Stock       int              `json:"stock"`
	ImageURLs   []string         `json:"imageUrls"`
	Active      bool             `json:"active"`
	TagIDs      []string         `json:"tagIds,omitempty"`
	Variants    []VariantRequest `json:"variants,omitempty"`
}

// UpdateProductRequest представляет полный апдейт товара (PATCH по id)
type UpdateProductRequest struct {
	Title       string           `json:"title"`
	Description string           `json:"description,omitempty"`
	PriceMinor  int64            `json:"priceMinor"`
	Currency    string           `json:"currency"`
	Stock       int              `json:"stock"`
	ImageURLs   []string         `json:"imageUrls"`
	TagIDs      []string         `json:"tagIds,omitempty"`
	Variants    []VariantRequest `json:"variants,omitempty"`
}

// VariantRequest представляет вариант в запросах создания/обновления товара.
// ID пустой для новых вариантов
type VariantRequest struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name"`
	Stock int    `json:"stock"`
}

// CreateTagRequest представляет запрос создания тега
type CreateTagRequest struct {
	Name string `json:"name"`
}

// CreatePromoCodeRequest представляет запрос создания промокода
type CreatePromoCodeRequest struct {
	Code                string `json:"code"`
	DiscountPercent     int    `json:"discountPercent"`
	DiscountAmountMinor int64  `json:"discountAmountMinor"`
	MaxUses             *int   `json:"maxUses,omitempty"`
	Active              bool   `json:"active"`
}

// UpdatePromoCodeRequest представляет запрос обновления промокода
type UpdatePromoCodeRequest struct {
	DiscountPercent     int   `json:"discountPercent"`
	DiscountAmountMinor int64 `json:"discountAmountMinor"`
	MaxUses             *int  `json:"maxUses,omitempty"`
	Active              bool  `json:"active"`
}

// ErrorResponse представляет ответ сервера с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`             // описание ошибки
	Message string `json:"message,omitempty"` // дополнительное сообщение
}

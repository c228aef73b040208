// Package session связывает каталог, корзину, решетку карточек и
// фоновый опрос сервера в одну витринную сессию.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/solmax/tgshop/internal/client/cart"
	"github.com/solmax/tgshop/internal/client/catalog"
	"github.com/solmax/tgshop/internal/client/poll"
	"github.com/solmax/tgshop/internal/client/view"
	"github.com/solmax/tgshop/internal/models"
	"github.com/solmax/tgshop/internal/telegram"
	"github.com/solmax/tgshop/internal/validation"
	"github.com/solmax/tgshop/pkg/api"
)

// CheckoutForm — данные формы оформления заказа
type CheckoutForm struct {
	Name      string
	Phone     string
	Address   string
	Comment   string
	PromoCode string
}

// Config настраивает витринную сессию
type Config struct {
	InitData     string
	PollInterval time.Duration
	// PreviewHidden включает режим предпросмотра: скрытые товары
	// остаются на витрине с пометкой
	PreviewHidden bool
	// ProductSource подменяет источник каталога. Публичный эндпоинт
	// не отдает скрытые товары, поэтому предпросмотр читает каталог
	// через админский источник. nil — обычный публичный каталог.
	ProductSource func(ctx context.Context) ([]api.Product, error)
}

// Controller владеет состоянием витринной сессии: снапшотом каталога,
// корзиной, фильтром, решеткой карточек и планировщиком опроса.
// Все мутации состояния проходят через один мьютекс: обновление по
// таймеру и действия пользователя никогда не перемежаются.
type Controller struct {
	api      StoreAPI
	cart     *cart.Store
	notifier Notifier
	bridge   telegram.Bridge
	logger   *slog.Logger
	cfg      Config

	poller *poll.Scheduler

	mu        sync.Mutex
	snap      *catalog.Snapshot
	grid      *view.Grid
	filter    catalog.Filter
	sort      catalog.SortMode
	tags      []api.Tag
	patchSink func([]view.Patch)
}

// NewController создает витринную сессию
func NewController(storeAPI StoreAPI, cartStore *cart.Store, notifier Notifier, bridge telegram.Bridge, logger *slog.Logger, cfg Config) *Controller {
	c := &Controller{
		api:      storeAPI,
		cart:     cartStore,
		notifier: notifier,
		bridge:   bridge,
		logger:   logger,
		cfg:      cfg,
		snap:     catalog.New(),
		grid:     view.NewGrid(),
	}
	c.poller = poll.NewScheduler(c, cfg.PollInterval, logger)
	return c
}

// SetPatchSink подписывает получателя инкрементальных патчей решетки.
// Вызывается до Boot; sink получает патчи под мьютексом сессии.
func (c *Controller) SetPatchSink(sink func([]view.Patch)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.patchSink = sink
}

// Boot восстанавливает корзину, выполняет первичную загрузку каталога
// и запускает фоновый опрос. Ошибка первичной загрузки фатальна:
// без каталога витрине нечего показывать.
func (c *Controller) Boot(ctx context.Context) error {
	c.cart.Load(ctx)

	if err := c.Refresh(ctx); err != nil {
		return fmt.Errorf("initial catalog load failed: %w", err)
	}

	if tags, err := c.api.Tags(ctx); err != nil {
		c.logger.Warn("Failed to load tags", "error", err)
	} else {
		c.mu.Lock()
		c.tags = tags
		c.mu.Unlock()
	}

	c.poller.Start(ctx)
	return nil
}

// Close останавливает фоновый опрос
func (c *Controller) Close() {
	c.poller.Stop()
}

// SetVisible передает планировщику смену видимости витрины
func (c *Controller) SetVisible(visible bool) {
	c.poller.SetVisible(visible)
}

// Refresh загружает каталог с сервера и приводит к нему снапшот,
// корзину и решетку карточек. Реализует poll.Refresher.
func (c *Controller) Refresh(ctx context.Context) error {
	source := c.api.Products
	if c.cfg.ProductSource != nil {
		source = c.cfg.ProductSource
	}

	products, err := source(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch products: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.snap.Replace(products)

	events := c.cart.Reconcile(ctx, c.snap)
	for _, ev := range events {
		c.notifier.Notify(ev.Message())
	}
	if len(events) > 0 {
		c.bridge.Haptic(telegram.HapticError)
	}

	c.applyProjection()
	c.updateMainButton()
	return nil
}

// SetFilter меняет фильтр витрины и перестраивает решетку
func (c *Controller) SetFilter(filter catalog.Filter) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filter = filter
	c.applyProjection()
}

// SetSort меняет режим сортировки витрины
func (c *Controller) SetSort(mode catalog.SortMode) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sort = mode
	c.applyProjection()
}

// Filter возвращает текущий фильтр
func (c *Controller) Filter() catalog.Filter {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filter
}

// Tags возвращает теги каталога, загруженные при старте
func (c *Controller) Tags() []api.Tag {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tags
}

// InitData возвращает initData текущей сессии
func (c *Controller) InitData() string {
	return c.cfg.InitData
}

// Cards возвращает карточки витрины в текущем порядке
func (c *Controller) Cards() []*view.Card {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.grid.Cards()
}

// Product ищет товар в текущем снапшоте
func (c *Controller) Product(id uuid.UUID) *api.Product {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snap.ByID(id)
}

// CartItems возвращает позиции корзины
func (c *Controller) CartItems() []*models.CartEntry {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cart.Items()
}

// CartTotal возвращает сумму корзины
func (c *Controller) CartTotal() (int64, string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cart.Total()
}

// AddToCart изменяет количество товара в корзине на delta.
// Товар и вариант берутся из текущего снапшота.
func (c *Controller) AddToCart(ctx context.Context, productID uuid.UUID, variantID *uuid.UUID, delta int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	product := c.snap.ByID(productID)
	if product == nil {
		return fmt.Errorf("product %s is not in the catalog", productID)
	}

	var variant *api.Variant
	if variantID != nil {
		variant = product.VariantByID(*variantID)
		if variant == nil {
			return fmt.Errorf("variant %s is not in product %q", *variantID, product.Title)
		}
	}

	if err := c.cart.Add(ctx, product, variant, delta); err != nil {
		return err
	}

	c.bridge.Haptic(telegram.HapticSelection)
	c.updateMainButton()
	return nil
}

// RemoveFromCart удаляет позицию корзины
func (c *Controller) RemoveFromCart(ctx context.Context, key models.CartKey) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.cart.Remove(ctx, key); err != nil {
		return err
	}
	c.updateMainButton()
	return nil
}

// ClearCart опустошает корзину
func (c *Controller) ClearCart(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.cart.Clear(ctx); err != nil {
		return err
	}
	c.updateMainButton()
	return nil
}

// Checkout оформляет заказ из текущей корзины.
// Успех опустошает корзину и сразу запрашивает свежий каталог.
func (c *Controller) Checkout(ctx context.Context, form CheckoutForm) (*api.CreateOrderResponse, error) {
	if err := validation.ValidateCheckout(form.Name, form.Phone, form.Address, form.Comment); err != nil {
		return nil, err
	}

	c.mu.Lock()
	items := c.cart.Items()
	if len(items) == 0 {
		c.mu.Unlock()
		return nil, fmt.Errorf("cart is empty")
	}

	req := api.CreateOrderRequest{
		InitData:     c.cfg.InitData,
		CustomerName: form.Name,
		Phone:        form.Phone,
		Address:      form.Address,
		Comment:      form.Comment,
		PromoCode:    validation.NormalizePromoCode(form.PromoCode),
	}
	for _, entry := range items {
		item := api.OrderItemRequest{
			ProductID: entry.Key.ProductID,
			Quantity:  entry.Quantity,
		}
		if entry.Key.HasVariant() {
			vid := entry.Key.VariantID
			item.VariantID = &vid
		}
		req.Items = append(req.Items, item)
	}
	c.mu.Unlock()

	resp, err := c.api.CreateOrder(ctx, req)
	if err != nil {
		c.bridge.Haptic(telegram.HapticError)
		return nil, fmt.Errorf("order failed: %w", err)
	}

	c.mu.Lock()
	if err := c.cart.Clear(ctx); err != nil {
		c.logger.Warn("Failed to clear cart after checkout", "error", err)
	}
	c.updateMainButton()
	c.mu.Unlock()

	c.bridge.Haptic(telegram.HapticSuccess)
	c.notifier.Notify("Заказ оформлен")
	// остатки на сервере уже списались: показываем их сразу
	c.poller.Wake()

	return resp, nil
}

// AdvanceThumbs переключает карточки на следующее изображение
func (c *Controller) AdvanceThumbs() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if patches := c.grid.AdvanceThumbs(); len(patches) > 0 && c.patchSink != nil {
		c.patchSink(patches)
	}
}

// applyProjection перестраивает решетку из текущего снапшота.
// Вызывается под мьютексом.
func (c *Controller) applyProjection() {
	projection := catalog.View(c.snap, c.filter, c.sort)

	if !c.cfg.PreviewHidden {
		visible := projection[:0:0]
		for _, p := range projection {
			if p.Active {
				visible = append(visible, p)
			}
		}
		projection = visible
	}

	patches := c.grid.Apply(projection)
	if len(patches) > 0 && c.patchSink != nil {
		c.patchSink(patches)
	}
}

// updateMainButton синхронизирует main button с корзиной.
// Вызывается под мьютексом.
func (c *Controller) updateMainButton() {
	count := c.cart.Count()
	if count == 0 {
		c.bridge.SetMainButton("", false)
		return
	}
	c.bridge.SetMainButton(fmt.Sprintf("Корзина (%d)", count), true)
}

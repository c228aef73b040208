package session

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solmax/tgshop/internal/client/cart"
	"github.com/solmax/tgshop/internal/client/catalog"
	"github.com/solmax/tgshop/internal/client/storage"
	"github.com/solmax/tgshop/internal/client/view"
	"github.com/solmax/tgshop/internal/models"
	"github.com/solmax/tgshop/internal/telegram"
	"github.com/solmax/tgshop/pkg/api"
)

type fixture struct {
	api      *StoreAPIMock
	notifier *NotifierMock
	bridge   *telegram.BridgeMock
	ctrl     *Controller
}

// newFixture собирает сессию на моках поверх каталога products
func newFixture(t *testing.T, cfg Config, products func() []api.Product) *fixture {
	t.Helper()

	if cfg.PollInterval == 0 {
		cfg.PollInterval = time.Hour // тесты управляют обновлениями сами
	}

	storageMock := &storage.CartStorageMock{
		LoadCartFunc: func(ctx context.Context) (map[string]int, error) {
			return nil, storage.ErrCartNotFound
		},
		SaveCartFunc: func(ctx context.Context, quantities map[string]int) error {
			return nil
		},
	}

	f := &fixture{
		api: &StoreAPIMock{
			ProductsFunc: func(ctx context.Context) ([]api.Product, error) {
				return products(), nil
			},
			TagsFunc: func(ctx context.Context) ([]api.Tag, error) {
				return nil, nil
			},
		},
		notifier: &NotifierMock{NotifyFunc: func(message string) {}},
		bridge: &telegram.BridgeMock{
			HapticFunc:        func(kind telegram.HapticKind) {},
			SetMainButtonFunc: func(text string, visible bool) {},
		},
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cartStore := cart.NewStore(storageMock, logger)
	f.ctrl = NewController(f.api, cartStore, f.notifier, f.bridge, logger, cfg)
	t.Cleanup(f.ctrl.Close)
	return f
}

func sessionProduct(title string, stock int) api.Product {
	return api.Product{
		ID:         uuid.New(),
		Title:      title,
		PriceMinor: 1000,
		Currency:   "UAH",
		Active:     true,
		Stock:      stock,
	}
}

func TestController_BootLoadsCatalog(t *testing.T) {
	a := sessionProduct("A", 5)
	b := sessionProduct("B", 3)
	f := newFixture(t, Config{}, func() []api.Product { return []api.Product{a, b} })

	require.NoError(t, f.ctrl.Boot(context.Background()))

	cards := f.ctrl.Cards()
	require.Len(t, cards, 2)
	assert.Equal(t, "A", cards[0].Title)
	assert.Equal(t, "B", cards[1].Title)
}

func TestController_BootFailsWithoutCatalog(t *testing.T) {
	f := newFixture(t, Config{}, func() []api.Product { return nil })
	f.api.ProductsFunc = func(ctx context.Context) ([]api.Product, error) {
		return nil, errors.New("server down")
	}

	err := f.ctrl.Boot(context.Background())
	require.ErrorContains(t, err, "initial catalog load failed")
}

func TestController_HiddenProductsExcludedFromCustomerView(t *testing.T) {
	shown := sessionProduct("Shown", 5)
	hidden := sessionProduct("Hidden", 5)
	hidden.Active = false
	all := []api.Product{shown, hidden}

	f := newFixture(t, Config{}, func() []api.Product { return all })
	require.NoError(t, f.ctrl.Boot(context.Background()))

	cards := f.ctrl.Cards()
	require.Len(t, cards, 1)
	assert.Equal(t, "Shown", cards[0].Title)
}

func TestController_PreviewModeShowsHiddenWithBadge(t *testing.T) {
	hidden := sessionProduct("Hidden", 5)
	hidden.Active = false

	f := newFixture(t, Config{PreviewHidden: true}, func() []api.Product {
		return []api.Product{hidden}
	})
	require.NoError(t, f.ctrl.Boot(context.Background()))

	cards := f.ctrl.Cards()
	require.Len(t, cards, 1)
	assert.True(t, cards[0].Hidden)
}

func TestController_AddToCartUpdatesMainButton(t *testing.T) {
	p := sessionProduct("Shirt", 5)
	f := newFixture(t, Config{}, func() []api.Product { return []api.Product{p} })
	require.NoError(t, f.ctrl.Boot(context.Background()))

	require.NoError(t, f.ctrl.AddToCart(context.Background(), p.ID, nil, 2))

	calls := f.bridge.SetMainButtonCalls()
	require.NotEmpty(t, calls)
	last := calls[len(calls)-1]
	assert.Equal(t, "Корзина (2)", last.Text)
	assert.True(t, last.Visible)
}

func TestController_AddToCartUnknownProduct(t *testing.T) {
	f := newFixture(t, Config{}, func() []api.Product { return nil })
	require.NoError(t, f.ctrl.Boot(context.Background()))

	err := f.ctrl.AddToCart(context.Background(), uuid.New(), nil, 1)
	require.ErrorContains(t, err, "not in the catalog")
}

func TestController_RefreshEvictionNotifies(t *testing.T) {
	p := sessionProduct("Shirt", 5)
	current := []api.Product{p}
	f := newFixture(t, Config{}, func() []api.Product { return current })
	require.NoError(t, f.ctrl.Boot(context.Background()))
	require.NoError(t, f.ctrl.AddToCart(context.Background(), p.ID, nil, 1))

	// товар скрылся между обновлениями
	gone := p
	gone.Active = false
	current = []api.Product{gone}

	require.NoError(t, f.ctrl.Refresh(context.Background()))

	require.Empty(t, f.ctrl.CartItems())
	notifications := f.notifier.NotifyCalls()
	require.Len(t, notifications, 1)
	assert.Contains(t, notifications[0].Message, "Товар скрыт")

	// main button спрятана: корзина опустела
	calls := f.bridge.SetMainButtonCalls()
	assert.False(t, calls[len(calls)-1].Visible)
}

func TestController_FilterAndSort(t *testing.T) {
	cheap := sessionProduct("Cheap", 5)
	cheap.PriceMinor = 100
	pricey := sessionProduct("Pricey", 5)
	pricey.PriceMinor = 900

	f := newFixture(t, Config{}, func() []api.Product {
		return []api.Product{pricey, cheap}
	})
	require.NoError(t, f.ctrl.Boot(context.Background()))

	f.ctrl.SetSort(catalog.SortPriceAsc)
	cards := f.ctrl.Cards()
	require.Len(t, cards, 2)
	assert.Equal(t, "Cheap", cards[0].Title)

	f.ctrl.SetFilter(catalog.Filter{Query: "pricey"})
	cards = f.ctrl.Cards()
	require.Len(t, cards, 1)
	assert.Equal(t, "Pricey", cards[0].Title)
}

func TestController_CheckoutHappyPath(t *testing.T) {
	p := sessionProduct("Shirt", 5)
	v := api.Variant{ID: uuid.New(), Name: "M", Stock: 3}
	withVariant := sessionProduct("Hoodie", 0)
	withVariant.Variants = []api.Variant{v}

	f := newFixture(t, Config{InitData: "user=test"}, func() []api.Product {
		return []api.Product{p, withVariant}
	})
	f.api.CreateOrderFunc = func(ctx context.Context, req api.CreateOrderRequest) (*api.CreateOrderResponse, error) {
		return &api.CreateOrderResponse{OrderID: "ord-1"}, nil
	}

	ctx := context.Background()
	require.NoError(t, f.ctrl.Boot(ctx))
	require.NoError(t, f.ctrl.AddToCart(ctx, p.ID, nil, 2))
	require.NoError(t, f.ctrl.AddToCart(ctx, withVariant.ID, &v.ID, 1))

	resp, err := f.ctrl.Checkout(ctx, CheckoutForm{
		Name:      "Иван",
		Phone:     "+380671234567",
		Address:   "Киев",
		PromoCode: " sale10 ",
	})
	require.NoError(t, err)
	assert.Equal(t, "ord-1", resp.OrderID)

	// запрос собран из корзины, промокод нормализован
	orders := f.api.CreateOrderCalls()
	require.Len(t, orders, 1)
	req := orders[0].Req
	assert.Equal(t, "user=test", req.InitData)
	assert.Equal(t, "SALE10", req.PromoCode)
	require.Len(t, req.Items, 2)

	// корзина опустела после успеха
	assert.Empty(t, f.ctrl.CartItems())
}

func TestController_CheckoutValidation(t *testing.T) {
	f := newFixture(t, Config{}, func() []api.Product { return nil })

	_, err := f.ctrl.Checkout(context.Background(), CheckoutForm{Phone: "+380671234567", Address: "Киев"})
	require.ErrorContains(t, err, "name")
}

func TestController_CheckoutEmptyCart(t *testing.T) {
	f := newFixture(t, Config{}, func() []api.Product { return nil })
	require.NoError(t, f.ctrl.Boot(context.Background()))

	_, err := f.ctrl.Checkout(context.Background(), CheckoutForm{
		Name: "Иван", Phone: "+380671234567", Address: "Киев",
	})
	require.ErrorContains(t, err, "cart is empty")
}

func TestController_CheckoutServerErrorKeepsCart(t *testing.T) {
	p := sessionProduct("Shirt", 5)
	f := newFixture(t, Config{}, func() []api.Product { return []api.Product{p} })
	f.api.CreateOrderFunc = func(ctx context.Context, req api.CreateOrderRequest) (*api.CreateOrderResponse, error) {
		return nil, errors.New("insufficient stock")
	}

	ctx := context.Background()
	require.NoError(t, f.ctrl.Boot(ctx))
	require.NoError(t, f.ctrl.AddToCart(ctx, p.ID, nil, 1))

	_, err := f.ctrl.Checkout(ctx, CheckoutForm{
		Name: "Иван", Phone: "+380671234567", Address: "Киев",
	})
	require.Error(t, err)

	// корзина не тронута: пользователь может исправить и повторить
	assert.Len(t, f.ctrl.CartItems(), 1)
	hapticCalls := f.bridge.HapticCalls()
	assert.Equal(t, telegram.HapticError, hapticCalls[len(hapticCalls)-1].Kind)
}

func TestController_PatchSinkReceivesIncrementalUpdates(t *testing.T) {
	p := sessionProduct("Shirt", 3)
	current := []api.Product{p}
	f := newFixture(t, Config{}, func() []api.Product { return current })

	var patches [][]view.Patch
	f.ctrl.SetPatchSink(func(batch []view.Patch) {
		patches = append(patches, batch)
	})

	require.NoError(t, f.ctrl.Boot(context.Background()))
	require.Len(t, patches, 1) // первичная загрузка: add-патчи

	updated := p
	updated.Stock = 1
	current = []api.Product{updated}
	require.NoError(t, f.ctrl.Refresh(context.Background()))

	require.Len(t, patches, 2)
	last := patches[1]
	require.Len(t, last, 1)
	assert.Equal(t, view.PatchSet, last[0].Kind)
	assert.Equal(t, view.FieldStock, last[0].Field)
}

func TestController_RemoveFromCart(t *testing.T) {
	p := sessionProduct("Shirt", 5)
	f := newFixture(t, Config{}, func() []api.Product { return []api.Product{p} })
	ctx := context.Background()
	require.NoError(t, f.ctrl.Boot(ctx))
	require.NoError(t, f.ctrl.AddToCart(ctx, p.ID, nil, 1))

	require.NoError(t, f.ctrl.RemoveFromCart(ctx, models.NewCartKey(p.ID, nil)))
	assert.Empty(t, f.ctrl.CartItems())
}

func TestController_ProductSourceOverride(t *testing.T) {
	hidden := sessionProduct("Скрытый", 5)
	hidden.Active = false

	cfg := Config{
		PreviewHidden: true,
		ProductSource: func(ctx context.Context) ([]api.Product, error) {
			return []api.Product{hidden}, nil
		},
	}
	f := newFixture(t, cfg, func() []api.Product {
		t.Fatal("public catalog must not be used when a source override is set")
		return nil
	})

	require.NoError(t, f.ctrl.Boot(context.Background()))

	cards := f.ctrl.Cards()
	require.Len(t, cards, 1)
	assert.True(t, cards[0].Hidden)
	assert.Empty(t, f.api.ProductsCalls())
}

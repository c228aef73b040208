package cart

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solmax/tgshop/internal/client/storage"
	"github.com/solmax/tgshop/internal/models"
	"github.com/solmax/tgshop/pkg/api"
)

// memoryCart — мок durable storage, держащий карту количеств в памяти
func memoryCart(initial map[string]int) *storage.CartStorageMock {
	saved := initial
	mock := &storage.CartStorageMock{}
	mock.LoadCartFunc = func(ctx context.Context) (map[string]int, error) {
		if saved == nil {
			return nil, storage.ErrCartNotFound
		}
		return saved, nil
	}
	mock.SaveCartFunc = func(ctx context.Context, quantities map[string]int) error {
		saved = quantities
		return nil
	}
	return mock
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func plainProduct(title string, stock int) *api.Product {
	return &api.Product{
		ID:     uuid.New(),
		Title:  title,
		Active: true,
		Stock:  stock,
	}
}

func variantProduct(title string, stocks ...int) *api.Product {
	p := &api.Product{
		ID:     uuid.New(),
		Title:  title,
		Active: true,
	}
	for i, stock := range stocks {
		p.Variants = append(p.Variants, api.Variant{
			ID:    uuid.New(),
			Name:  "v" + string(rune('A'+i)),
			Stock: stock,
		})
	}
	return p
}

func TestStore_AddAndClamp(t *testing.T) {
	mock := memoryCart(nil)
	store := NewStore(mock, testLogger())
	ctx := context.Background()

	p := plainProduct("Blue Shirt", 3)

	require.NoError(t, store.Add(ctx, p, nil, 1))
	require.NoError(t, store.Add(ctx, p, nil, 10))

	entry := store.Get(models.NewCartKey(p.ID, nil))
	require.NotNil(t, entry)
	// количество зажато по остатку, а не по запросу
	assert.Equal(t, 3, entry.Quantity)
	assert.Equal(t, 1, store.Len())

	// каждая мутация синхронно сохранена
	assert.Len(t, mock.SaveCartCalls(), 2)
}

func TestStore_AddNegativeDeltaRemoves(t *testing.T) {
	store := NewStore(memoryCart(nil), testLogger())
	ctx := context.Background()

	p := plainProduct("Mug", 5)
	require.NoError(t, store.Add(ctx, p, nil, 2))
	require.NoError(t, store.Add(ctx, p, nil, -2))

	assert.Equal(t, 0, store.Len())
	assert.Nil(t, store.Get(models.NewCartKey(p.ID, nil)))
}

func TestStore_AddHiddenProduct(t *testing.T) {
	store := NewStore(memoryCart(nil), testLogger())

	p := plainProduct("Hidden", 5)
	p.Active = false

	err := store.Add(context.Background(), p, nil, 1)
	assert.ErrorIs(t, err, ErrProductHidden)
	assert.Equal(t, 0, store.Len())
}

func TestStore_AddOutOfStock(t *testing.T) {
	store := NewStore(memoryCart(nil), testLogger())

	err := store.Add(context.Background(), plainProduct("Empty", 0), nil, 1)
	assert.ErrorIs(t, err, ErrOutOfStock)
}

func TestStore_VariantExclusivity(t *testing.T) {
	store := NewStore(memoryCart(nil), testLogger())
	ctx := context.Background()

	withVariants := variantProduct("Hoodie", 4, 2)
	plain := plainProduct("Sticker", 10)

	// товар с вариантами требует вариант
	err := store.Add(ctx, withVariants, nil, 1)
	assert.ErrorIs(t, err, ErrVariantRequired)

	// товар без вариантов не принимает вариант
	err = store.Add(ctx, plain, &withVariants.Variants[0], 1)
	assert.ErrorIs(t, err, ErrVariantNotAllowed)

	// корректная пара проходит, остаток берется из варианта
	require.NoError(t, store.Add(ctx, withVariants, &withVariants.Variants[1], 5))
	entry := store.Get(models.NewCartKey(withVariants.ID, &withVariants.Variants[1].ID))
	require.NotNil(t, entry)
	assert.Equal(t, 2, entry.Quantity)
}

func TestStore_SeparateKeysPerVariant(t *testing.T) {
	store := NewStore(memoryCart(nil), testLogger())
	ctx := context.Background()

	p := variantProduct("Tee", 5, 5)
	require.NoError(t, store.Add(ctx, p, &p.Variants[0], 1))
	require.NoError(t, store.Add(ctx, p, &p.Variants[1], 2))

	assert.Equal(t, 2, store.Len())
	assert.Equal(t, 3, store.Count())
}

func TestStore_LoadMissingCart(t *testing.T) {
	store := NewStore(memoryCart(nil), testLogger())
	store.Load(context.Background())
	assert.Equal(t, 0, store.Len())
}

func TestStore_LoadRestoresUnbound(t *testing.T) {
	pid := uuid.New()
	vid := uuid.New()
	store := NewStore(memoryCart(map[string]int{
		pid.String():                    2,
		pid.String() + ":" + vid.String(): 1,
		"garbage":                       4, // битый ключ молча пропускается
		uuid.New().String():             0, // нулевое количество не восстанавливается
	}), testLogger())

	store.Load(context.Background())

	require.Equal(t, 2, store.Len())
	entry := store.Get(models.NewCartKey(pid, nil))
	require.NotNil(t, entry)
	assert.Equal(t, 2, entry.Quantity)
	assert.False(t, entry.Bound())
}

func TestStore_PersistRoundTrip(t *testing.T) {
	mock := memoryCart(nil)
	ctx := context.Background()

	first := NewStore(mock, testLogger())
	p := variantProduct("Cap", 7)
	require.NoError(t, first.Add(ctx, p, &p.Variants[0], 3))

	second := NewStore(mock, testLogger())
	second.Load(ctx)

	entry := second.Get(models.NewCartKey(p.ID, &p.Variants[0].ID))
	require.NotNil(t, entry)
	assert.Equal(t, 3, entry.Quantity)
}

func TestStore_Total(t *testing.T) {
	store := NewStore(memoryCart(nil), testLogger())
	ctx := context.Background()

	a := plainProduct("A", 10)
	a.PriceMinor = 1500
	a.Currency = "UAH"
	b := plainProduct("B", 10)
	b.PriceMinor = 250
	b.Currency = "UAH"

	require.NoError(t, store.Add(ctx, a, nil, 2))
	require.NoError(t, store.Add(ctx, b, nil, 1))

	sum, currency := store.Total()
	assert.Equal(t, int64(3250), sum)
	assert.Equal(t, "UAH", currency)
}

func TestStore_Clear(t *testing.T) {
	mock := memoryCart(nil)
	store := NewStore(mock, testLogger())
	ctx := context.Background()

	require.NoError(t, store.Add(ctx, plainProduct("X", 5), nil, 1))
	require.NoError(t, store.Clear(ctx))

	assert.Equal(t, 0, store.Len())
	last := mock.SaveCartCalls()[len(mock.SaveCartCalls())-1]
	assert.Empty(t, last.Quantities)
}

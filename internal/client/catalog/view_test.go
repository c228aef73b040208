package catalog

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solmax/tgshop/pkg/api"
)

func titles(products []*api.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.Title)
	}
	return out
}

func TestView_DefaultSort_StablePartition(t *testing.T) {
	// Из спецификации поведения: [A(0), B(5), C(0), D(3)] -> [B, D, A, C]
	snap := New()
	snap.Replace([]api.Product{
		product("A", 0),
		product("B", 5),
		product("C", 0),
		product("D", 3),
	})

	result := View(snap, Filter{}, SortDefault)
	assert.Equal(t, []string{"B", "D", "A", "C"}, titles(result))
}

func TestView_DefaultSort_VariantStocks(t *testing.T) {
	// Товар с вариантами доступен, если суммарный остаток вариантов > 0
	withVariants := product("V", 0)
	withVariants.Variants = []api.Variant{
		{ID: uuid.New(), Name: "S", Stock: 0},
		{ID: uuid.New(), Name: "M", Stock: 2},
	}
	soldOut := product("S", 0)
	soldOut.Variants = []api.Variant{
		{ID: uuid.New(), Name: "S", Stock: 0},
	}

	snap := New()
	snap.Replace([]api.Product{soldOut, withVariants})

	result := View(snap, Filter{}, SortDefault)
	assert.Equal(t, []string{"V", "S"}, titles(result))
}

func TestView_Search_CaseAndWhitespaceInsensitive(t *testing.T) {
	snap := New()
	snap.Replace([]api.Product{
		product("Blue Shirt XL", 1),
		product("Кепка", 1),
	})

	result := View(snap, Filter{Query: " shirt "}, SortDefault)
	require.Len(t, result, 1)
	assert.Equal(t, "Blue Shirt XL", result[0].Title)

	// Пустой и пробельный запрос матчит всё
	assert.Len(t, View(snap, Filter{Query: ""}, SortDefault), 2)
	assert.Len(t, View(snap, Filter{Query: "   "}, SortDefault), 2)
}

func TestView_TagFilter(t *testing.T) {
	clothes := api.Tag{ID: uuid.New(), Name: "Одежда"}
	caps := api.Tag{ID: uuid.New(), Name: "Кепки"}

	shirt := product("Shirt", 1)
	shirt.Tags = []api.Tag{clothes}
	hat := product("Cap", 1)
	hat.Tags = []api.Tag{caps}

	snap := New()
	snap.Replace([]api.Product{shirt, hat})

	result := View(snap, Filter{TagID: clothes.ID}, SortDefault)
	require.Len(t, result, 1)
	assert.Equal(t, "Shirt", result[0].Title)

	// Нулевой тег — все товары
	assert.Len(t, View(snap, Filter{}, SortDefault), 2)
}

func TestView_PriceSort_Stable(t *testing.T) {
	a := product("A", 1)
	a.PriceMinor = 300
	b := product("B", 1)
	b.PriceMinor = 100
	c := product("C", 1)
	c.PriceMinor = 300

	snap := New()
	snap.Replace([]api.Product{a, b, c})

	asc := View(snap, Filter{}, SortPriceAsc)
	assert.Equal(t, []string{"B", "A", "C"}, titles(asc))

	desc := View(snap, Filter{}, SortPriceDesc)
	assert.Equal(t, []string{"A", "C", "B"}, titles(desc))
}

func TestView_PopularSort(t *testing.T) {
	a := product("A", 1)
	a.SoldCount = 2
	b := product("B", 1)
	b.SoldCount = 10
	c := product("C", 1)
	c.SoldCount = 2

	snap := New()
	snap.Replace([]api.Product{a, b, c})

	result := View(snap, Filter{}, SortPopular)
	assert.Equal(t, []string{"B", "A", "C"}, titles(result))
}

func TestView_ExcludesArchived(t *testing.T) {
	archived := product("Old", 1)
	archived.Archived = true

	snap := New()
	snap.Replace([]api.Product{archived, product("New", 1)})

	result := View(snap, Filter{}, SortDefault)
	require.Len(t, result, 1)
	assert.Equal(t, "New", result[0].Title)
}

func TestView_DoesNotMutateSnapshot(t *testing.T) {
	a := product("A", 0)
	b := product("B", 5)

	snap := New()
	snap.Replace([]api.Product{a, b})

	_ = View(snap, Filter{}, SortDefault)
	_ = View(snap, Filter{}, SortPriceDesc)

	// Канонический порядок снапшота не тронут
	assert.Equal(t, []string{"A", "B"}, titles(snap.Products()))
}

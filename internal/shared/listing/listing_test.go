package listing

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		p := Params{}
		p.Normalize()
		assert.Equal(t, 1, p.Page)
		assert.Equal(t, DefaultPageSize, p.PageSize)
	})

	t.Run("clamps oversized page size", func(t *testing.T) {
		p := Params{Page: 3, PageSize: 5000}
		p.Normalize()
		assert.Equal(t, MaxPageSize, p.PageSize)
		assert.Equal(t, 3, p.Page)
	})

	t.Run("negative page becomes 1", func(t *testing.T) {
		p := Params{Page: -4, PageSize: 20}
		p.Normalize()
		assert.Equal(t, 1, p.Page)
	})

	t.Run("trims search", func(t *testing.T) {
		p := Params{Search: "  nova  "}
		p.Normalize()
		assert.Equal(t, "nova", p.Search)
	})
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, Params{Page: 1, PageSize: 10}.Offset())
	assert.Equal(t, 40, Params{Page: 5, PageSize: 10}.Offset())
	assert.Equal(t, 75, Params{Page: 4, PageSize: 25}.Offset())
}

func TestSortColumn(t *testing.T) {
	allowed := map[string]bool{"name": true, "created_at": true}

	assert.Equal(t, "name", Params{SortBy: "name"}.SortColumn(allowed, "created_at"))
	assert.Equal(t, "created_at", Params{SortBy: "password_hash"}.SortColumn(allowed, "created_at"))
	assert.Equal(t, "created_at", Params{}.SortColumn(allowed, "created_at"))
}

func TestSortOrder(t *testing.T) {
	assert.Equal(t, "ASC", Params{Order: "asc"}.SortOrder("DESC"))
	assert.Equal(t, "DESC", Params{Order: "DESC"}.SortOrder("ASC"))
	assert.Equal(t, "DESC", Params{Order: "sideways"}.SortOrder("DESC"))
}

func TestNewMeta(t *testing.T) {
	t.Run("exact multiple", func(t *testing.T) {
		m := NewMeta(Params{Page: 1, PageSize: 10}, 30)
		assert.Equal(t, 3, m.TotalPages)
		assert.Equal(t, int64(30), m.TotalItems)
	})

	t.Run("partial last page rounds up", func(t *testing.T) {
		m := NewMeta(Params{Page: 1, PageSize: 10}, 31)
		assert.Equal(t, 4, m.TotalPages)
	})

	t.Run("empty result", func(t *testing.T) {
		m := NewMeta(Params{Page: 1, PageSize: 10}, 0)
		assert.Equal(t, 0, m.TotalPages)
	})

	t.Run("seq echoed back", func(t *testing.T) {
		m := NewMeta(Params{Page: 1, PageSize: 10, Seq: 42}, 5)
		assert.Equal(t, int64(42), m.Seq)
	})
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `100\%`, EscapeLike("100%"))
	assert.Equal(t, `a\_b`, EscapeLike("a_b"))
	assert.Equal(t, `c\\d`, EscapeLike(`c\d`))
	assert.Equal(t, "plain", EscapeLike("plain"))
}

func TestFetchAfterDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("page still has rows", func(t *testing.T) {
		fetch := func(ctx context.Context, p Params) ([]string, int64, error) {
			return []string{"a", "b"}, 12, nil
		}

		rows, meta, err := FetchAfterDelete(ctx, Params{Page: 2, PageSize: 10}, fetch)
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, rows)
		assert.Equal(t, 2, meta.Page)
	})

	t.Run("emptied page falls back one", func(t *testing.T) {
		calls := []int{}
		fetch := func(ctx context.Context, p Params) ([]string, int64, error) {
			calls = append(calls, p.Page)
			if p.Page == 3 {
				return nil, 20, nil // the deletion emptied page 3
			}
			return []string{"x"}, 20, nil
		}

		rows, meta, err := FetchAfterDelete(ctx, Params{Page: 3, PageSize: 10}, fetch)
		require.NoError(t, err)
		assert.Equal(t, []int{3, 2}, calls)
		assert.Equal(t, []string{"x"}, rows)
		assert.Equal(t, 2, meta.Page)
	})

	t.Run("empty first page stays put", func(t *testing.T) {
		fetch := func(ctx context.Context, p Params) ([]string, int64, error) {
			return nil, 0, nil
		}

		rows, meta, err := FetchAfterDelete(ctx, Params{Page: 1, PageSize: 10}, fetch)
		require.NoError(t, err)
		assert.Empty(t, rows)
		assert.Equal(t, 1, meta.Page)
	})

	t.Run("fetch error propagates", func(t *testing.T) {
		boom := errors.New("boom")
		fetch := func(ctx context.Context, p Params) ([]string, int64, error) {
			return nil, 0, boom
		}

		_, _, err := FetchAfterDelete(ctx, Params{Page: 1, PageSize: 10}, fetch)
		assert.ErrorIs(t, err, boom)
	})
}

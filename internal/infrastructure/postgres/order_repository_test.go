package postgres

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/lunch-orders/internal/domain/repository"
)

func date(t *testing.T, s string) *time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return &d
}

// El SELECT se arma dinámicamente según los límites presentes; el orden
// (date, id) ascendente es parte del contrato del listado.
func TestBuildListQuery(t *testing.T) {
	base := `SELECT id, doc, leader, member, vendor, menu, date FROM orders`

	t.Run("sin límites", func(t *testing.T) {
		query, args := buildListQuery(repository.OrderFilter{})
		assert.Equal(t, base+" ORDER BY date ASC, id ASC", query)
		assert.Empty(t, args)
	})

	t.Run("solo start", func(t *testing.T) {
		start := date(t, "2024-01-01")
		query, args := buildListQuery(repository.OrderFilter{Start: start})
		assert.Equal(t, base+" WHERE date >= $1 ORDER BY date ASC, id ASC", query)
		require.Len(t, args, 1)
		assert.Equal(t, *start, args[0])
	})

	t.Run("solo end", func(t *testing.T) {
		end := date(t, "2024-01-31")
		query, args := buildListQuery(repository.OrderFilter{End: end})
		assert.Equal(t, base+" WHERE date <= $1 ORDER BY date ASC, id ASC", query)
		require.Len(t, args, 1)
		assert.Equal(t, *end, args[0])
	})

	t.Run("ambos límites", func(t *testing.T) {
		start, end := date(t, "2024-01-01"), date(t, "2024-01-31")
		query, args := buildListQuery(repository.OrderFilter{Start: start, End: end})
		assert.Equal(t, base+" WHERE date >= $1 AND date <= $2 ORDER BY date ASC, id ASC", query)
		require.Len(t, args, 2)
		assert.Equal(t, *start, args[0])
		assert.Equal(t, *end, args[1])
	})
}

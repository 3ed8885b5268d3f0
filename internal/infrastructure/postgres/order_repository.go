package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/tu-usuario/lunch-orders/internal/domain/entity"
	"github.com/tu-usuario/lunch-orders/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// schemaSQL esquema idempotente. UNIQUE(member, date) sostiene el upsert.
const schemaSQL = `
CREATE TABLE IF NOT EXISTS orders (
    id BIGSERIAL PRIMARY KEY,
    doc TEXT NOT NULL,
    leader TEXT NOT NULL,
    member TEXT NOT NULL,
    vendor TEXT NOT NULL,
    menu TEXT NOT NULL,
    date DATE NOT NULL,
    UNIQUE (member, date)
);`

// OrderRepo implementación del puerto OrderRepository sobre PostgreSQL (usable con pool o tx).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador de persistencia para pedidos. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Init crea la tabla orders si no existe. Se ejecuta en cada arranque.
func (r *OrderRepo) Init() error {
	if _, err := r.q.Exec(context.Background(), schemaSQL); err != nil {
		return fmt.Errorf("init orders schema: %w", err)
	}
	return nil
}

// Upsert inserta el pedido, o si ya existe uno para (member, date), reemplaza
// doc, leader, vendor y menu. Un solo statement: la atomicidad la da el engine,
// nunca se emula con read-then-write.
func (r *OrderRepo) Upsert(order *entity.Order) error {
	query := `
		INSERT INTO orders (doc, leader, member, vendor, menu, date)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (member, date) DO UPDATE SET
			doc = EXCLUDED.doc,
			leader = EXCLUDED.leader,
			vendor = EXCLUDED.vendor,
			menu = EXCLUDED.menu`
	_, err := r.q.Exec(context.Background(), query,
		order.Doc, order.Leader, order.Member, order.Vendor, order.Menu, order.Date,
	)
	if err != nil {
		return fmt.Errorf("upsert order: %w", err)
	}
	return nil
}

// List devuelve los pedidos dentro del rango inclusivo del filtro,
// ordenados por fecha y luego por id. Sin resultados no es error.
func (r *OrderRepo) List(filter repository.OrderFilter) ([]*entity.Order, error) {
	query, args := buildListQuery(filter)
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var list []*entity.Order
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(&o.ID, &o.Doc, &o.Leader, &o.Member, &o.Vendor, &o.Menu, &o.Date); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}

// buildListQuery arma el SELECT con cláusulas de fecha opcionales.
func buildListQuery(filter repository.OrderFilter) (string, []any) {
	var sb strings.Builder
	sb.WriteString(`SELECT id, doc, leader, member, vendor, menu, date FROM orders`)

	var clauses []string
	var args []any
	if filter.Start != nil {
		args = append(args, *filter.Start)
		clauses = append(clauses, fmt.Sprintf("date >= $%d", len(args)))
	}
	if filter.End != nil {
		args = append(args, *filter.End)
		clauses = append(clauses, fmt.Sprintf("date <= $%d", len(args)))
	}
	if len(clauses) > 0 {
		sb.WriteString(" WHERE " + strings.Join(clauses, " AND "))
	}
	sb.WriteString(" ORDER BY date ASC, id ASC")
	return sb.String(), args
}

// Delete elimina el pedido por id. No es error si no existe.
func (r *OrderRepo) Delete(id int64) error {
	if _, err := r.q.Exec(context.Background(), `DELETE FROM orders WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	return nil
}

// Clear elimina todos los pedidos.
func (r *OrderRepo) Clear() error {
	if _, err := r.q.Exec(context.Background(), `DELETE FROM orders`); err != nil {
		return fmt.Errorf("clear orders: %w", err)
	}
	return nil
}

package repository

import (
	"time"

	"github.com/tu-usuario/lunch-orders/internal/domain/entity"
)

// OrderFilter rango de fechas inclusivo para listados. Bounds nulos = abiertos.
type OrderFilter struct {
	Start *time.Time
	End   *time.Time
}

// OrderRepository puerto de persistencia de pedidos.
type OrderRepository interface {
	// Init garantiza de forma idempotente el esquema con UNIQUE(member, date).
	Init() error
	// Upsert inserta, o si ya existe un pedido para (member, date), reemplaza
	// doc, leader, vendor y menu conservando id y date. Atómico.
	Upsert(order *entity.Order) error
	// List devuelve los pedidos dentro del rango, orden ascendente por (date, id).
	List(filter OrderFilter) ([]*entity.Order, error)
	// Delete elimina por id; no es error si no existe.
	Delete(id int64) error
	// Clear elimina todos los pedidos.
	Clear() error
}

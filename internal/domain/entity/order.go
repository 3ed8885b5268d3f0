package entity

import "time"

// Order un pedido de almuerzo: un registro por (member, date).
// El id lo asigna la base de datos y nunca cambia; un reenvío para el mismo
// (member, date) reemplaza doc, leader, vendor y menu en el mismo registro.
type Order struct {
	ID     int64
	Doc    string // unidad organizacional (DOC)
	Leader string // líder dentro de la unidad
	Member string // nombre del miembro; con Date forma la llave natural
	Vendor string
	Menu   string
	Date   time.Time // solo fecha, sin componente horario
}

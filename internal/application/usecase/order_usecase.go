package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/tu-usuario/lunch-orders/internal/application/dto"
	"github.com/tu-usuario/lunch-orders/internal/domain"
	"github.com/tu-usuario/lunch-orders/internal/domain/entity"
	"github.com/tu-usuario/lunch-orders/internal/domain/repository"
	"github.com/tu-usuario/lunch-orders/pkg/logger"
)

// OrderUseCase casos de uso de pedidos: alta/actualización, listado, borrado.
type OrderUseCase struct {
	repo repository.OrderRepository
	log  *logger.Logger
}

// NewOrderUseCase construye el caso de uso de pedidos.
func NewOrderUseCase(repo repository.OrderRepository, log *logger.Logger) *OrderUseCase {
	return &OrderUseCase{repo: repo, log: log}
}

// Place registra o actualiza el pedido del día para (member, date).
//
// Política heredada del sistema original: si falta cualquiera de los seis
// campos, el envío se descarta en silencio (placed=false, sin error). Se
// registra un warning. Probablemente debería ser un error de validación
// hacia el caller; se conserva el comportamiento observado.
func (uc *OrderUseCase) Place(in dto.PlaceOrderRequest) (placed bool, err error) {
	if missing := missingFields(in); len(missing) > 0 {
		uc.log.Warn().
			Strs("missing", missing).
			Str("member", in.Member).
			Msg("envío de pedido incompleto, descartado")
		return false, nil
	}
	date, err := time.Parse(dto.DateLayout, in.Date)
	if err != nil {
		return false, fmt.Errorf("%w: date debe ser YYYY-MM-DD", domain.ErrInvalidInput)
	}
	order := &entity.Order{
		Doc:    in.Doc,
		Leader: in.Leader,
		Member: in.Member,
		Vendor: in.Vendor,
		Menu:   in.Menu,
		Date:   date,
	}
	if err := uc.repo.Upsert(order); err != nil {
		return false, err
	}
	return true, nil
}

// List devuelve los pedidos dentro del rango opcional [start, end] (YYYY-MM-DD).
func (uc *OrderUseCase) List(start, end string) (*dto.OrderListResponse, error) {
	filter, err := ParseFilter(start, end)
	if err != nil {
		return nil, err
	}
	orders, err := uc.repo.List(filter)
	if err != nil {
		return nil, err
	}
	out := &dto.OrderListResponse{
		Orders: make([]dto.OrderResponse, 0, len(orders)),
		Total:  len(orders),
	}
	for _, o := range orders {
		out.Orders = append(out.Orders, dto.OrderResponse{
			ID:     o.ID,
			Doc:    o.Doc,
			Leader: o.Leader,
			Member: o.Member,
			Vendor: o.Vendor,
			Menu:   o.Menu,
			Date:   o.Date.Format(dto.DateLayout),
		})
	}
	return out, nil
}

// Delete elimina un pedido por id (solo admin). Id inexistente no es error.
func (uc *OrderUseCase) Delete(id int64) error {
	return uc.repo.Delete(id)
}

// Clear elimina todos los pedidos (solo admin).
func (uc *OrderUseCase) Clear() error {
	return uc.repo.Clear()
}

// ParseFilter convierte los parámetros start/end (YYYY-MM-DD, vacío = abierto)
// en un filtro de repositorio. Fecha no parseable → ErrInvalidInput.
func ParseFilter(start, end string) (repository.OrderFilter, error) {
	var filter repository.OrderFilter
	if start != "" {
		t, err := time.Parse(dto.DateLayout, start)
		if err != nil {
			return repository.OrderFilter{}, fmt.Errorf("%w: start_date debe ser YYYY-MM-DD", domain.ErrInvalidInput)
		}
		filter.Start = &t
	}
	if end != "" {
		t, err := time.Parse(dto.DateLayout, end)
		if err != nil {
			return repository.OrderFilter{}, fmt.Errorf("%w: end_date debe ser YYYY-MM-DD", domain.ErrInvalidInput)
		}
		filter.End = &t
	}
	return filter, nil
}

// missingFields nombres de los campos requeridos ausentes o en blanco.
func missingFields(in dto.PlaceOrderRequest) []string {
	var missing []string
	check := func(name, value string) {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, name)
		}
	}
	check("doc", in.Doc)
	check("leader", in.Leader)
	check("member", in.Member)
	check("vendor", in.Vendor)
	check("menu", in.Menu)
	check("date", in.Date)
	return missing
}

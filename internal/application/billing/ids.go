// Package billing implementa los casos de uso del motor de facturación y
// pagos: generación de facturas, aplicación de pagos, entrega de medidores y
// los reportes agregados sobre el libro de facturas.
package billing

import (
	"time"

	"github.com/google/uuid"

	"github.com/Dimmsum/NWC-Simulation-System/internal/domain/entity"
	"github.com/Dimmsum/NWC-Simulation-System/internal/domain/repository"
)

// newID genera un identificador acotado: prefijo + fragmento corto de uuid.
func newID(prefix string) string {
	return prefix + uuid.NewString()[:8]
}

// appendActivity escribe el siguiente asiento del log de actividad del
// cliente: parte del asiento más reciente como base de arrastre (o de una
// base en cero si es el primero), aplica la mutación y lo agrega al almacén.
func appendActivity(repo repository.ActivityRepository, customerNumber string, at time.Time, mutate func(*entity.ActivityEntry)) error {
	next := &entity.ActivityEntry{
		ID:             newID("LOG-"),
		CustomerNumber: customerNumber,
		Date:           at,
	}
	prev, err := repo.LatestByCustomer(customerNumber)
	if err != nil {
		return err
	}
	if prev != nil {
		next.PaymentsCount = prev.PaymentsCount
		next.LastPaymentAmount = prev.LastPaymentAmount
		next.MetersSurrendered = prev.MetersSurrendered
	}
	mutate(next)
	return repo.Append(next)
}

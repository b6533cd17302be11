package repository

import "github.com/Dimmsum/NWC-Simulation-System/internal/domain/entity"

// ActivityRepository log de actividad solo-agregar. El estado lógico de un
// cliente es su asiento más reciente; el llamador lo lee como base de
// arrastre antes de agregar el siguiente.
type ActivityRepository interface {
	Append(entry *entity.ActivityEntry) error
	// LatestByCustomer devuelve el asiento más reciente del cliente (el último
	// en orden de almacenamiento) o nil si no hay ninguno.
	LatestByCustomer(customerNumber string) (*entity.ActivityEntry, error)
}

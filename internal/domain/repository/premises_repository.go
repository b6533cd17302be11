package repository

import "github.com/Dimmsum/NWC-Simulation-System/internal/domain/entity"

// PremisesRepository define el puerto de persistencia para predios.
type PremisesRepository interface {
	Create(premises *entity.Premises) error
	// GetByNumber devuelve el predio (activo o inactivo) o nil si no existe.
	GetByNumber(number string) (*entity.Premises, error)
	// ExistsActive indica si hay un predio activo con ese número.
	ExistsActive(number string) (bool, error)
	// Update reemplaza el registro con la misma clave natural y reescribe el almacén.
	Update(premises *entity.Premises) error
	// ListByCustomer devuelve todos los predios (activos e inactivos) de un cliente.
	ListByCustomer(customerNumber string) ([]*entity.Premises, error)
}

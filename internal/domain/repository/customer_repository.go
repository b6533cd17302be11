package repository

import "github.com/Dimmsum/NWC-Simulation-System/internal/domain/entity"

// CustomerRepository define el puerto de persistencia para clientes.
// El conjunto de trabajo vive en memoria (cargado al construir el adaptador)
// y cada mutación reescribe el almacén completo.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	// GetByNumber devuelve el cliente (activo o archivado) o nil si no existe.
	GetByNumber(number string) (*entity.Customer, error)
	// Update reemplaza el registro con la misma clave natural y reescribe el almacén.
	Update(customer *entity.Customer) error
	// ListArchived devuelve los clientes con borrado lógico (IsActive=false).
	ListArchived() ([]*entity.Customer, error)
}

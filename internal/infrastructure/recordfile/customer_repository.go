package recordfile

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/Dimmsum/NWC-Simulation-System/internal/domain"
	"github.com/Dimmsum/NWC-Simulation-System/internal/domain/entity"
	"github.com/Dimmsum/NWC-Simulation-System/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo adaptador de clientes: conjunto de trabajo en memoria (lista
// ordenada + índice por número de cliente) cargado una sola vez al construir,
// con reescritura completa del almacén en cada mutación.
type CustomerRepo struct {
	store *Store[entity.Customer]

	mu    sync.RWMutex
	list  []entity.Customer
	index map[string]int
}

// Orden de campos: número|nombre|apellido|clase|activo|tarjeta
const customerFields = 6

func encodeCustomer(c *entity.Customer) []string {
	return []string{
		c.CustomerNumber,
		c.FirstName,
		c.LastName,
		strconv.Itoa(int(c.IncomeClass)),
		encBool(c.IsActive),
		encBool(c.HasPaymentCard),
	}
}

func decodeCustomer(fields []string) (*entity.Customer, error) {
	if len(fields) != customerFields {
		return nil, arityError("cliente", customerFields, len(fields))
	}
	class, err := decInt(fields[3])
	if err != nil {
		return nil, err
	}
	active, err := decBool(fields[4])
	if err != nil {
		return nil, err
	}
	card, err := decBool(fields[5])
	if err != nil {
		return nil, err
	}
	return &entity.Customer{
		CustomerNumber: fields[0],
		FirstName:      fields[1],
		LastName:       fields[2],
		IncomeClass:    entity.IncomeClass(class),
		IsActive:       active,
		HasPaymentCard: card,
	}, nil
}

// NewCustomerRepository construye el adaptador y carga el conjunto de trabajo.
func NewCustomerRepository(path string) (*CustomerRepo, error) {
	r := &CustomerRepo{
		store: NewStore(path, encodeCustomer, decodeCustomer),
		index: make(map[string]int),
	}
	recs, err := r.store.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("cargar clientes: %w", err)
	}
	for _, c := range recs {
		r.index[c.CustomerNumber] = len(r.list)
		r.list = append(r.list, *c)
	}
	return r, nil
}

// Create persiste un nuevo cliente (append) y lo suma al conjunto de trabajo.
func (r *CustomerRepo) Create(customer *entity.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.store.Append(customer); err != nil {
		return err
	}
	r.index[customer.CustomerNumber] = len(r.list)
	r.list = append(r.list, *customer)
	return nil
}

// GetByNumber devuelve una copia del cliente o nil si no existe.
func (r *CustomerRepo) GetByNumber(number string) (*entity.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.index[number]
	if !ok {
		return nil, nil
	}
	c := r.list[idx]
	return &c, nil
}

// Update reemplaza el registro con la misma clave natural y reescribe el
// almacén completo (temporal + rename atómico). La memoria se actualiza solo
// después de que el disco quedó consistente.
func (r *CustomerRepo) Update(customer *entity.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx, ok := r.index[customer.CustomerNumber]
	if !ok {
		return domain.ErrCustomerNotFound
	}

	next := make([]*entity.Customer, len(r.list))
	for i := range r.list {
		if i == idx {
			c := *customer
			next[i] = &c
			continue
		}
		c := r.list[i]
		next[i] = &c
	}
	if err := r.store.RewriteAll(next); err != nil {
		return err
	}
	r.list[idx] = *customer
	return nil
}

// ListArchived devuelve copias de los clientes con borrado lógico.
func (r *CustomerRepo) ListArchived() ([]*entity.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*entity.Customer
	for i := range r.list {
		if !r.list[i].IsActive {
			c := r.list[i]
			out = append(out, &c)
		}
	}
	return out, nil
}

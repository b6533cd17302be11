package recordfile

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/Dimmsum/NWC-Simulation-System/internal/domain"
	"github.com/Dimmsum/NWC-Simulation-System/internal/domain/entity"
	"github.com/Dimmsum/NWC-Simulation-System/internal/domain/repository"
)

var _ repository.PremisesRepository = (*PremisesRepo)(nil)

// PremisesRepo adaptador de predios, mismo esquema que CustomerRepo: conjunto
// de trabajo en memoria y reescritura completa en cada mutación.
type PremisesRepo struct {
	store *Store[entity.Premises]

	mu    sync.RWMutex
	list  []entity.Premises
	index map[string]int
}

// Orden de campos: número|cliente|medidor|inicial|anterior|actual|activo
const premisesFields = 7

func encodePremises(p *entity.Premises) []string {
	return []string{
		p.PremisesNumber,
		p.CustomerNumber,
		strconv.Itoa(int(p.MeterSize)),
		strconv.Itoa(p.InitialReading),
		strconv.Itoa(p.PreviousReading),
		strconv.Itoa(p.CurrentReading),
		encBool(p.IsActive),
	}
}

func decodePremises(fields []string) (*entity.Premises, error) {
	if len(fields) != premisesFields {
		return nil, arityError("predio", premisesFields, len(fields))
	}
	meter, err := decInt(fields[2])
	if err != nil {
		return nil, err
	}
	initial, err := decInt(fields[3])
	if err != nil {
		return nil, err
	}
	previous, err := decInt(fields[4])
	if err != nil {
		return nil, err
	}
	current, err := decInt(fields[5])
	if err != nil {
		return nil, err
	}
	active, err := decBool(fields[6])
	if err != nil {
		return nil, err
	}
	return &entity.Premises{
		PremisesNumber:  fields[0],
		CustomerNumber:  fields[1],
		MeterSize:       entity.MeterSize(meter),
		InitialReading:  initial,
		PreviousReading: previous,
		CurrentReading:  current,
		IsActive:        active,
	}, nil
}

// NewPremisesRepository construye el adaptador y carga el conjunto de trabajo.
func NewPremisesRepository(path string) (*PremisesRepo, error) {
	r := &PremisesRepo{
		store: NewStore(path, encodePremises, decodePremises),
		index: make(map[string]int),
	}
	recs, err := r.store.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("cargar predios: %w", err)
	}
	for _, p := range recs {
		r.index[p.PremisesNumber] = len(r.list)
		r.list = append(r.list, *p)
	}
	return r, nil
}

// Create persiste un nuevo predio (append) y lo suma al conjunto de trabajo.
func (r *PremisesRepo) Create(premises *entity.Premises) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.store.Append(premises); err != nil {
		return err
	}
	r.index[premises.PremisesNumber] = len(r.list)
	r.list = append(r.list, *premises)
	return nil
}

// GetByNumber devuelve una copia del predio o nil si no existe.
func (r *PremisesRepo) GetByNumber(number string) (*entity.Premises, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.index[number]
	if !ok {
		return nil, nil
	}
	p := r.list[idx]
	return &p, nil
}

// ExistsActive indica si hay un predio activo con ese número.
func (r *PremisesRepo) ExistsActive(number string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.index[number]
	return ok && r.list[idx].IsActive, nil
}

// Update reemplaza el registro con la misma clave natural y reescribe el
// almacén completo. La memoria se actualiza solo después del swap en disco.
func (r *PremisesRepo) Update(premises *entity.Premises) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx, ok := r.index[premises.PremisesNumber]
	if !ok {
		return domain.ErrPremisesNotFound
	}

	next := make([]*entity.Premises, len(r.list))
	for i := range r.list {
		if i == idx {
			p := *premises
			next[i] = &p
			continue
		}
		p := r.list[i]
		next[i] = &p
	}
	if err := r.store.RewriteAll(next); err != nil {
		return err
	}
	r.list[idx] = *premises
	return nil
}

// ListByCustomer devuelve copias de todos los predios del cliente.
func (r *PremisesRepo) ListByCustomer(customerNumber string) ([]*entity.Premises, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*entity.Premises
	for i := range r.list {
		if r.list[i].CustomerNumber == customerNumber {
			p := r.list[i]
			out = append(out, &p)
		}
	}
	return out, nil
}

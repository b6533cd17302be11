package entity

// IncomeClass clase de ingresos del cliente; acota el consumo diario simulado.
type IncomeClass int

const (
	IncomeLow        IncomeClass = 1 // Hasta 125 L diarios
	IncomeLowMedium  IncomeClass = 2 // Hasta 175 L diarios
	IncomeMedium     IncomeClass = 3 // Hasta 220 L diarios
	IncomeMediumHigh IncomeClass = 4 // Hasta 250 L diarios
	IncomeHigh       IncomeClass = 5 // Hasta 300 L diarios
)

// Valid indica si la clase es una de las cinco definidas.
func (c IncomeClass) Valid() bool {
	return c >= IncomeLow && c <= IncomeHigh
}

// DailyUsageLimit devuelve el límite de consumo diario en litros.
// Una clase no reconocida usa 150 L como valor por defecto.
func (c IncomeClass) DailyUsageLimit() int {
	switch c {
	case IncomeLow:
		return 125
	case IncomeLowMedium:
		return 175
	case IncomeMedium:
		return 220
	case IncomeMediumHigh:
		return 250
	case IncomeHigh:
		return 300
	default:
		return 150
	}
}

// Customer representa un cliente doméstico del servicio de agua.
// El borrado es lógico: IsActive=false archiva el registro, nunca se elimina.
type Customer struct {
	CustomerNumber string // Número único de 7 dígitos (clave natural)
	FirstName      string
	LastName       string
	IncomeClass    IncomeClass
	IsActive       bool
	HasPaymentCard bool
}

// FullName nombre completo para reportes.
func (c *Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}

package entity

// MeterSize tamaño del medidor instalado en un predio.
type MeterSize int

const (
	Meter15mm  MeterSize = 1
	Meter30mm  MeterSize = 2
	Meter150mm MeterSize = 3
)

// Valid indica si el tamaño es uno de los tres definidos.
func (m MeterSize) Valid() bool {
	return m >= Meter15mm && m <= Meter150mm
}

// String etiqueta legible del tamaño de medidor.
func (m MeterSize) String() string {
	switch m {
	case Meter15mm:
		return "15mm"
	case Meter30mm:
		return "30mm"
	case Meter150mm:
		return "150mm"
	default:
		return "desconocido"
	}
}

// Premises representa un predio con medidor asociado a un cliente.
// Invariante de lecturas: CurrentReading >= PreviousReading >= InitialReading.
type Premises struct {
	PremisesNumber  string // Número único de 7 dígitos (único entre predios activos)
	CustomerNumber  string // Cliente propietario
	MeterSize       MeterSize
	InitialReading  int
	PreviousReading int
	CurrentReading  int
	IsActive        bool
}

// AdvanceReading avanza el par de lecturas con el consumo de un ciclo:
// la lectura actual pasa a ser la anterior y la actual crece en consumption.
func (p *Premises) AdvanceReading(consumption int) {
	p.PreviousReading = p.CurrentReading
	p.CurrentReading = p.PreviousReading + consumption
}

// Package metering simula la lectura mensual del medidor. El consumo de cada
// ciclo de facturación se sortea día a día según el límite de uso diario de la
// clase de ingreso del cliente.
package metering

import "math/rand/v2"

// DaysPerCycle días del ciclo de facturación simulado.
const DaysPerCycle = 30

// Source fuente de aleatoriedad inyectable. IntN devuelve un entero uniforme
// en [0, n). Las pruebas sustituyen la fuente por una determinista.
type Source interface {
	IntN(n int) int
}

type randSource struct{}

func (randSource) IntN(n int) int { return rand.IntN(n) }

// NewSource devuelve la fuente de aleatoriedad de producción, respaldada por
// math/rand/v2.
func NewSource() Source { return randSource{} }

// MonthlyConsumption sortea el consumo del ciclo en litros: una extracción
// uniforme en [0, límite diario] por cada día del ciclo, acumuladas.
func MonthlyConsumption(src Source, dailyLimit int) int {
	total := 0
	for day := 0; day < DaysPerCycle; day++ {
		total += src.IntN(dailyLimit + 1)
	}
	return total
}

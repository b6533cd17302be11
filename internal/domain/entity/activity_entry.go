package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ActivityEntry asiento del log de actividad por cliente: pagos acumulados y
// medidores entregados. El almacén es solo-agregar; el estado lógico de un
// cliente es su asiento más reciente, que sirve de base de arrastre al
// escribir el siguiente.
type ActivityEntry struct {
	ID                string // Identificador único generado (prefijo LOG-)
	CustomerNumber    string
	PaymentsCount     int             // Acumulado de pagos realizados
	LastPaymentAmount decimal.Decimal // Monto del último pago
	MetersSurrendered int             // Acumulado de medidores entregados
	Date              time.Time
}

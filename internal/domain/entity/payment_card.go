package entity

// PaymentCard tarjeta de pago registrada por un cliente.
// Se espera a lo más una tarjeta activa por cliente; la regla la impone el
// flag HasPaymentCard del cliente, no una restricción de unicidad del almacén.
type PaymentCard struct {
	CustomerNumber string
	CardIdentifier string // Identificador acotado (p. ej. últimos 4 dígitos)
	IsActive       bool
}

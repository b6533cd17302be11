package repository

import "github.com/Dimmsum/NWC-Simulation-System/internal/domain/entity"

// PaymentRepository libro de pagos solo-agregar; los asientos son inmutables.
type PaymentRepository interface {
	Append(payment *entity.Payment) error
}

// PaymentCardRepository almacén de tarjetas de pago solo-agregar. La unicidad
// por cliente la impone el flag HasPaymentCard del cliente, no este almacén.
type PaymentCardRepository interface {
	Append(card *entity.PaymentCard) error
}

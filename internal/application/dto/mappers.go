package dto

import "github.com/Dimmsum/NWC-Simulation-System/internal/domain/entity"

const dateLayout = "2006-01-02"

// NewCustomerResponse mapea la entidad cliente a su DTO.
func NewCustomerResponse(c *entity.Customer) CustomerResponse {
	return CustomerResponse{
		CustomerNumber: c.CustomerNumber,
		FirstName:      c.FirstName,
		LastName:       c.LastName,
		IncomeClass:    int(c.IncomeClass),
		IsActive:       c.IsActive,
		HasPaymentCard: c.HasPaymentCard,
	}
}

// NewPremisesResponse mapea la entidad predio a su DTO.
func NewPremisesResponse(p *entity.Premises) PremisesResponse {
	return PremisesResponse{
		PremisesNumber:  p.PremisesNumber,
		CustomerNumber:  p.CustomerNumber,
		MeterSize:       p.MeterSize.String(),
		InitialReading:  p.InitialReading,
		PreviousReading: p.PreviousReading,
		CurrentReading:  p.CurrentReading,
		IsActive:        p.IsActive,
	}
}

// NewBillResponse mapea la entidad factura a su DTO con fechas ISO.
func NewBillResponse(b *entity.Bill) BillResponse {
	return BillResponse{
		ID:                   b.ID,
		CustomerNumber:       b.CustomerNumber,
		PremisesNumber:       b.PremisesNumber,
		MonthNumber:          b.MonthNumber,
		Year:                 b.Year,
		PreviousReading:      b.PreviousReading,
		CurrentReading:       b.CurrentReading,
		Consumption:          b.Consumption,
		WaterCharge:          b.WaterCharge,
		SewerageCharge:       b.SewerageCharge,
		ServiceCharge:        b.ServiceCharge,
		PAM:                  b.PAM,
		XFactor:              b.XFactor,
		KFactor:              b.KFactor,
		TotalCurrentCharges:  b.TotalCurrentCharges,
		EarlyPaymentAmount:   b.EarlyPaymentAmount,
		OverdueAmount:        b.OverdueAmount,
		TotalAmountDue:       b.TotalAmountDue,
		AmountPaid:           b.AmountPaid,
		EarlyPaymentEligible: b.EarlyPaymentEligible,
		IsPaid:               b.IsPaid,
		BillDate:             b.BillDate.Format(dateLayout),
		DueDate:              b.DueDate.Format(dateLayout),
	}
}

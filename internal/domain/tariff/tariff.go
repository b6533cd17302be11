// Package tariff implementa el cálculo tarifario del servicio: cargos
// progresivos de agua y alcantarillado por tramos de consumo, cargo de
// servicio por tamaño de medidor y ajustes regulatorios (PAM, X-Factor,
// K-Factor). Todas las funciones son puras y deterministas.
package tariff

import (
	"github.com/shopspring/decimal"

	"github.com/Dimmsum/NWC-Simulation-System/internal/domain/entity"
)

// Tramos de consumo en litros. Cada tramo cobra su tarifa por metro cúbico
// solo sobre los litros que caen dentro del tramo (progresivo, no marginal
// sobre el total).
const (
	bracket1Limit = 14000
	bracket2Limit = 27000
	bracket3Limit = 41000
)

var (
	litresPerCubicMeter = decimal.NewFromInt(1000)

	waterRates = []decimal.Decimal{
		decimal.RequireFromString("149.55"),
		decimal.RequireFromString("266.15"),
		decimal.RequireFromString("290.10"),
		decimal.RequireFromString("494.87"),
	}

	sewerageRates = []decimal.Decimal{
		decimal.RequireFromString("172.72"),
		decimal.RequireFromString("307.42"),
		decimal.RequireFromString("335.06"),
		decimal.RequireFromString("571.56"),
	}

	serviceCharges = map[entity.MeterSize]decimal.Decimal{
		entity.Meter15mm:  decimal.RequireFromString("1155.92"),
		entity.Meter30mm:  decimal.RequireFromString("6217.03"),
		entity.Meter150mm: decimal.RequireFromString("39354.59"),
	}

	pamRate     = decimal.RequireFromString("0.0121") // 1.21%
	xFactorRate = decimal.RequireFromString("-0.05")  // -5%
	kFactorRate = decimal.RequireFromString("0.20")   // 20%
)

// WaterCharge calcula el cargo de agua para un consumo en litros.
func WaterCharge(consumptionLitres int) decimal.Decimal {
	return progressiveCharge(consumptionLitres, waterRates)
}

// SewerageCharge calcula el cargo de alcantarillado para un consumo en litros.
func SewerageCharge(consumptionLitres int) decimal.Decimal {
	return progressiveCharge(consumptionLitres, sewerageRates)
}

// ServiceCharge devuelve el cargo fijo de servicio según el tamaño del
// medidor. Un tamaño no reconocido devuelve 0 como valor defensivo.
func ServiceCharge(size entity.MeterSize) decimal.Decimal {
	if charge, ok := serviceCharges[size]; ok {
		return charge
	}
	return decimal.Zero
}

// progressiveCharge suma, tramo a tramo, los litros que caen en cada tramo
// multiplicados por su tarifa por metro cúbico (litros / 1000).
func progressiveCharge(litres int, rates []decimal.Decimal) decimal.Decimal {
	limits := []int{bracket1Limit, bracket2Limit, bracket3Limit}

	charge := decimal.Zero
	lower := 0
	for i, rate := range rates {
		upper := litres
		if i < len(limits) && limits[i] < upper {
			upper = limits[i]
		}
		if upper <= lower {
			break
		}
		span := decimal.NewFromInt(int64(upper - lower))
		charge = charge.Add(span.Mul(rate).Div(litresPerCubicMeter))
		lower = upper
	}
	return charge
}

// Charges desglose completo de los cargos corrientes de un ciclo.
type Charges struct {
	Water    decimal.Decimal
	Sewerage decimal.Decimal
	Service  decimal.Decimal
	PAM      decimal.Decimal
	XFactor  decimal.Decimal
	KFactor  decimal.Decimal
	Total    decimal.Decimal // Water + Sewerage + Service - XFactor + KFactor
}

// Calculate computa el desglose de cargos corrientes a partir del consumo y
// el tamaño de medidor:
//
//	PAM      = 1.21% * (agua + alcantarillado + servicio)
//	X-Factor = -5%   * (agua + alcantarillado + servicio)
//	K-Factor = 20%   * (agua + alcantarillado + servicio + PAM) - X-Factor
//	Total    = agua + alcantarillado + servicio - X-Factor + K-Factor
func Calculate(consumptionLitres int, size entity.MeterSize) Charges {
	water := WaterCharge(consumptionLitres)
	sewerage := SewerageCharge(consumptionLitres)
	service := ServiceCharge(size)
	base := water.Add(sewerage).Add(service)

	pam := base.Mul(pamRate)
	xFactor := base.Mul(xFactorRate)
	kFactor := base.Add(pam).Mul(kFactorRate).Sub(xFactor)

	return Charges{
		Water:    water,
		Sewerage: sewerage,
		Service:  service,
		PAM:      pam,
		XFactor:  xFactor,
		KFactor:  kFactor,
		Total:    base.Sub(xFactor).Add(kFactor),
	}
}

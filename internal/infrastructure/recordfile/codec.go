package recordfile

import (
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// Helpers de codificación de campos. Los consumidores de un almacén acuerdan
// el orden de campos de cada entidad; estos helpers fijan la representación
// de cada tipo primitivo.

const dateLayout = "2006-01-02"

func encBool(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func decBool(s string) (bool, error) {
	switch s {
	case "1":
		return true, nil
	case "0":
		return false, nil
	}
	return false, fmt.Errorf("booleano inválido %q", s)
}

func decInt(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("entero inválido %q", s)
	}
	return n, nil
}

func encDate(t time.Time) string {
	return t.Format(dateLayout)
}

func decDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("fecha inválida %q", s)
	}
	return t, nil
}

func decDecimal(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("monto inválido %q", s)
	}
	return d, nil
}

// arityError error uniforme cuando una línea no tiene los campos esperados.
func arityError(entity string, want, got int) error {
	return fmt.Errorf("registro de %s con %d campos, se esperaban %d", entity, got, want)
}

// internal/utils/moeda.go
package utils

import (
	"fmt"
	"math"
	"strings"
)

// FormatarMoeda formata um valor em reais no padrão pt-BR: "R$ 1.234,56".
// Valores negativos saem como "-R$ 1.234,56".
func FormatarMoeda(valor float64) string {
	negativo := valor < 0
	valor = math.Abs(valor)

	centavos := int64(math.Round(valor * 100))
	inteiro := centavos / 100
	resto := centavos % 100

	digitos := fmt.Sprintf("%d", inteiro)
	var b strings.Builder
	pre := len(digitos) % 3
	if pre > 0 {
		b.WriteString(digitos[:pre])
	}
	for i := pre; i < len(digitos); i += 3 {
		if b.Len() > 0 {
			b.WriteString(".")
		}
		b.WriteString(digitos[i : i+3])
	}

	s := fmt.Sprintf("R$ %s,%02d", b.String(), resto)
	if negativo {
		return "-" + s
	}
	return s
}

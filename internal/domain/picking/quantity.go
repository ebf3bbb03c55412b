package picking

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/unicode/norm"
)

var numberRe = regexp.MustCompile(`[-+]?\d+(?:\.\d+)?`)

// ParseQuantity interpreta una celda de cantidad posiblemente sucia:
// normaliza NFKC, descarta separadores de miles y, si el texto completo no es
// numérico, rescata el último token numérico presente (celdas tipo "2 cajas").
func ParseQuantity(raw string) (decimal.Decimal, bool) {
	text := strings.ReplaceAll(strings.TrimSpace(norm.NFKC.String(raw)), ",", "")
	if text == "" {
		return decimal.Zero, false
	}
	if d, err := decimal.NewFromString(text); err == nil {
		return d, true
	}
	matches := numberRe.FindAllString(text, -1)
	for i := len(matches) - 1; i >= 0; i-- {
		if d, err := decimal.NewFromString(matches[i]); err == nil {
			return d, true
		}
	}
	return decimal.Zero, false
}

// FormatQuantity representación para display: sin ceros finales ni punto colgante.
func FormatQuantity(d decimal.Decimal) string {
	s := d.String()
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimRight(s, ".")
	}
	return s
}

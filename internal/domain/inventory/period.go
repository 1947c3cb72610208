package inventory

import (
	"strings"
	"time"

	"github.com/jhoicas/estoque-api/internal/domain"
)

// DateLayout formato de las fechas "sueltas" que envía el usuario.
const DateLayout = "2006-01-02"

// Period rango de fechas a granularidad de día. Start y End son opcionales e inclusivos.
type Period struct {
	Start *time.Time
	End   *time.Time
}

// NewPeriod valida que start no sea posterior a end cuando ambos están presentes.
func NewPeriod(start, end *time.Time) (Period, error) {
	if start != nil && end != nil && start.After(*end) {
		return Period{}, domain.Invalid("start_date", "no puede ser posterior a end_date")
	}
	return Period{Start: start, End: end}, nil
}

// From cota inferior inclusiva (>=), o nil si el período no tiene inicio.
func (p Period) From() *time.Time {
	if p.Start == nil {
		return nil
	}
	t := midnightUTC(*p.Start)
	return &t
}

// Before cota superior exclusiva (<): End + 1 día, lo que hace End inclusivo.
func (p Period) Before() *time.Time {
	if p.End == nil {
		return nil
	}
	t := midnightUTC(*p.End).AddDate(0, 0, 1)
	return &t
}

// UpTo período sin inicio con el mismo fin; es el rango del saldo acumulado.
func (p Period) UpTo() Period {
	return Period{End: p.End}
}

// ParseDate interpreta "YYYY-MM-DD" como medianoche UTC. Cadena vacía = nil.
func ParseDate(field, s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return nil, domain.Invalid(field, "formato esperado YYYY-MM-DD")
	}
	return &t, nil
}

func midnightUTC(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

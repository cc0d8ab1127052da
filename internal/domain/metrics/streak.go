package metrics

import (
	"time"

	"dog-walk-tracker/internal/domain/logs"
)

// DefaultMinPoopsPerDay es el umbral para que un día "califique".
const DefaultMinPoopsPerDay = 3

// PoopStreak cuenta días calendario consecutivos con al menos
// minPerDay cacas, escaneando hacia atrás desde now. Si hoy todavía
// no califica, arranca desde ayer: el progreso parcial de hoy no
// rompe la racha, pero tampoco hace falta para empezar a contarla.
// Termina siempre: un día sin logs nunca califica.
func PoopStreak(ls []logs.Log, minPerDay int, now time.Time) int {
	if len(ls) == 0 || minPerDay < 1 {
		return 0
	}

	day := now
	if poopsOn(ls, day) < minPerDay {
		day = day.AddDate(0, 0, -1)
	}

	streak := 0
	for poopsOn(ls, day) >= minPerDay {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

// BestStreak es la variante histórica: dada la serie de días de una
// ventana (en orden cronológico), devuelve la corrida más larga de
// días que calificaron. A diferencia de PoopStreak no exige que la
// racha llegue hasta hoy.
func BestStreak(days []DayStats, minPerDay int) int {
	best := 0
	current := 0
	for _, d := range days {
		if d.PoopCount >= minPerDay {
			current++
			if current > best {
				best = current
			}
		} else {
			current = 0
		}
	}
	return best
}

func poopsOn(ls []logs.Log, day time.Time) int {
	count := 0
	for _, l := range ls {
		if l.Kind == logs.KindPoop && sameDay(l.CreatedAt, day) {
			count++
		}
	}
	return count
}

// sameDay compara día calendario en la zona horaria de la referencia,
// no ventanas de 24 horas: "día" acá es el día que ve el usuario.
func sameDay(t, ref time.Time) bool {
	y1, m1, d1 := t.In(ref.Location()).Date()
	y2, m2, d2 := ref.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

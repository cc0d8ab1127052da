package metrics

import (
	"time"

	"dog-walk-tracker/internal/domain/household"
	"dog-walk-tracker/internal/domain/logs"
)

// Distribution cuenta logs por franja horaria local:
// morning [5,12), afternoon [12,17), evening [17,21), night el resto
// (21:00 a 04:59, cruzando medianoche). Cada log cae en exactamente
// una franja, así que los buckets suman len(logs).
type Distribution struct {
	Morning   int
	Afternoon int
	Evening   int
	Night     int
}

// MemberStats son los conteos independientes por integrante.
// Pueden divergir de los conteos por log: un paseo multi-persona se
// atribuye a un solo member (el representativo del cluster).
type MemberStats struct {
	Walks int
	Poops int
	Pees  int
}

// DayStats resume un día calendario.
type DayStats struct {
	Date       time.Time
	PoopCount  int
	PeeCount   int
	WalksCount int
	Walks      []Walk
}

// Analytics es el resumen de una ventana para la vista de historial.
type Analytics struct {
	Last7Days  []DayStats
	Last30Days []DayStats

	WalkerStats map[household.Member]MemberStats
	BestStreak  int

	AverageWalksPerDay float64
	AveragePoopsPerDay float64

	TimeOfDay Distribution
}

func TimeOfDayDistribution(ls []logs.Log) Distribution {
	var d Distribution
	for _, l := range ls {
		hour := l.CreatedAt.Local().Hour()
		switch {
		case hour >= 5 && hour < 12:
			d.Morning++
		case hour >= 12 && hour < 17:
			d.Afternoon++
		case hour >= 17 && hour < 21:
			d.Evening++
		default:
			d.Night++
		}
	}
	return d
}

// WalkerStats tabula por integrante: cacas y pises directo de los
// logs, paseos desde la lista de Walks por su member representativo.
func WalkerStats(ls []logs.Log, walks []Walk) map[household.Member]MemberStats {
	stats := make(map[household.Member]MemberStats, len(household.Members()))
	for _, m := range household.Members() {
		stats[m] = MemberStats{}
	}

	for _, l := range ls {
		s := stats[l.Member]
		if l.Kind == logs.KindPoop {
			s.Poops++
		} else {
			s.Pees++
		}
		stats[l.Member] = s
	}

	for _, w := range walks {
		s := stats[w.Member]
		s.Walks++
		stats[w.Member] = s
	}

	return stats
}

// BuildDayStats filtra los logs del día calendario de date y agrupa
// los que quedan en paseos.
func BuildDayStats(ls []logs.Log, date time.Time) DayStats {
	dayLogs := make([]logs.Log, 0)
	for _, l := range ls {
		if sameDay(l.CreatedAt, date) {
			dayLogs = append(dayLogs, l)
		}
	}

	walks := GroupIntoWalks(dayLogs)

	stats := DayStats{
		Date:       date,
		WalksCount: len(walks),
		Walks:      walks,
	}
	for _, l := range dayLogs {
		if l.Kind == logs.KindPoop {
			stats.PoopCount++
		} else {
			stats.PeeCount++
		}
	}
	return stats
}

// BuildAnalytics arma el resumen de los últimos `days` días terminando
// en now (inclusive): serie diaria, promedios, tabla por integrante,
// mejor racha histórica y distribución horaria de toda la ventana.
func BuildAnalytics(ls []logs.Log, now time.Time, days int) Analytics {
	if days < 1 {
		days = 1
	}

	daily := make([]DayStats, 0, days)
	for i := days - 1; i >= 0; i-- {
		daily = append(daily, BuildDayStats(ls, now.AddDate(0, 0, -i)))
	}

	allWalks := make([]Walk, 0)
	totalWalks := 0
	totalPoops := 0
	for _, d := range daily {
		allWalks = append(allWalks, d.Walks...)
		totalWalks += d.WalksCount
		totalPoops += d.PoopCount
	}

	last7 := daily
	if len(last7) > 7 {
		last7 = last7[len(last7)-7:]
	}

	total := float64(len(daily))
	return Analytics{
		Last7Days:          last7,
		Last30Days:         daily,
		WalkerStats:        WalkerStats(ls, allWalks),
		BestStreak:         BestStreak(daily, DefaultMinPoopsPerDay),
		AverageWalksPerDay: float64(totalWalks) / total,
		AveragePoopsPerDay: float64(totalPoops) / total,
		TimeOfDay:          TimeOfDayDistribution(ls),
	}
}

// Package metrics es el núcleo de agregación: funciones puras que
// derivan paseos, rachas, puntos y distribuciones a partir de los
// registros crudos. No hace I/O; los handlers le pasan los datos ya
// traídos por los repos y un "ahora" explícito donde hace falta.
package metrics

import (
	"fmt"
	"sort"
	"time"

	"dog-walk-tracker/internal/domain/household"
	"dog-walk-tracker/internal/domain/logs"
)

// GroupingWindow es la tolerancia de agrupamiento: dos logs a 30
// minutos o menos del anterior pertenecen al mismo paseo.
const GroupingWindow = 30 * time.Minute

// Walk es un paseo derivado: un cluster de logs dentro de la ventana
// de tolerancia. No se persiste nunca; se recalcula en cada lectura.
type Walk struct {
	ID     string
	Time   time.Time
	Member household.Member

	HasPoop bool
	HasPee  bool

	// Logs miembros, en orden cronológico ascendente.
	Logs []logs.Log
}

// GroupIntoWalks agrupa logs en paseos. Acepta entrada desordenada:
// ordena ascendente por timestamp (orden estable para empates) y
// recorre encadenando: si el gap contra el log anterior del cluster
// supera la ventana, cierra el paseo y abre otro. Los paseos salen
// en orden cronológico ascendente.
func GroupIntoWalks(ls []logs.Log) []Walk {
	if len(ls) == 0 {
		return []Walk{}
	}

	sorted := make([]logs.Log, len(ls))
	copy(sorted, ls)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
	})

	walks := make([]Walk, 0)
	cluster := []logs.Log{sorted[0]}

	for i := 1; i < len(sorted); i++ {
		gap := sorted[i].CreatedAt.Sub(sorted[i-1].CreatedAt)
		if gap <= GroupingWindow {
			cluster = append(cluster, sorted[i])
			continue
		}
		walks = append(walks, newWalk(cluster))
		cluster = []logs.Log{sorted[i]}
	}

	walks = append(walks, newWalk(cluster))
	return walks
}

// LatestWalk devuelve el último paseo de la ventana (la tarjeta
// "último paseo" del dashboard). false si no hay logs.
func LatestWalk(ls []logs.Log) (Walk, bool) {
	walks := GroupIntoWalks(ls)
	if len(walks) == 0 {
		return Walk{}, false
	}
	return walks[len(walks)-1], true
}

// newWalk arma el paseo a partir de un cluster no vacío ya ordenado
// ascendente. El miembro representativo es el del último log: id,
// hora y atribución salen de ahí.
func newWalk(cluster []logs.Log) Walk {
	latest := cluster[len(cluster)-1]

	w := Walk{
		ID:     fmt.Sprintf("walk-%s", latest.ID),
		Time:   latest.CreatedAt,
		Member: latest.Member,
		Logs:   cluster,
	}
	for _, l := range cluster {
		switch l.Kind {
		case logs.KindPoop:
			w.HasPoop = true
		case logs.KindPee:
			w.HasPee = true
		}
	}
	return w
}

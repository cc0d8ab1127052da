package metrics

import (
	"dog-walk-tracker/internal/domain/activities"
	"dog-walk-tracker/internal/domain/household"
	"dog-walk-tracker/internal/domain/logs"
	"dog-walk-tracker/internal/domain/reminders"
)

// Points son los valores por evento de cada fuente. Va como config y
// no hardcodeado: el esquema histórico tuvo pesos asimétricos y el
// actual los iguala; si vuelve a cambiar, cambia acá.
type Points struct {
	WalkLog  int
	Activity int
	Reminder int
}

// DefaultPoints es el esquema vigente: peso parejo para las tres fuentes.
var DefaultPoints = Points{
	WalkLog:  5,
	Activity: 5,
	Reminder: 5,
}

// WeeklyPoints suma puntos por integrante sobre las tres fuentes:
// cada log acredita a su member, cada tarea a assigned_to, cada
// recordatorio completado a completed_by. El mapa incluye siempre a
// todos los integrantes, con 0 si no sumaron nada.
func WeeklyPoints(ls []logs.Log, acts []activities.Activity, rems []reminders.Reminder, p Points) map[household.Member]int {
	points := make(map[household.Member]int, len(household.Members()))
	for _, m := range household.Members() {
		points[m] = 0
	}

	for _, l := range ls {
		points[l.Member] += p.WalkLog
	}
	for _, a := range acts {
		points[a.AssignedTo] += p.Activity
	}
	for _, r := range rems {
		if r.CompletedBy != nil {
			points[*r.CompletedBy] += p.Reminder
		}
	}

	return points
}

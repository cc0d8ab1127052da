package household

import (
	"errors"
	"strings"
)

var ErrUnknownMember = errors.New("unknown household member")

// Member identifica a un integrante de la familia.
// La lista es fija: este sistema es de un solo hogar.
type Member string

const (
	MemberChris  Member = "Chris"
	MemberDebbie Member = "Debbie"
	MemberHaydn  Member = "Haydn"
)

// Members devuelve la lista completa, en orden estable.
// Las agregaciones la usan para incluir siempre a todos
// (un miembro sin actividad aparece con cero, nunca se omite).
func Members() []Member {
	return []Member{MemberChris, MemberDebbie, MemberHaydn}
}

// Parse valida un nombre recibido por la API.
func Parse(s string) (Member, error) {
	m := Member(strings.TrimSpace(s))
	for _, known := range Members() {
		if m == known {
			return m, nil
		}
	}
	return "", ErrUnknownMember
}

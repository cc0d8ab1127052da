package auth

// Claims representa la información extraída del token de escritura.
// Member es el nombre del integrante autenticado; la atribución de
// cada registro viaja en el body (se puede anotar el paseo de otro).
type Claims struct {
	Member string
}

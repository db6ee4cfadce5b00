package auth

// Claims es la identidad del cuidador autenticado.
// UserID es lo único que el dominio usa (created_by, administered_by).
type Claims struct {
	UserID string
	Email  string
	Name   string
}

package account

const (
	RoleAdmin   = "admin"
	RoleBarbero = "barbero"
	RoleCliente = "cliente"
)

// HomeFor is the landing page of a role.
func HomeFor(role string) string {
	switch role {
	case RoleAdmin:
		return "/admin"
	case RoleBarbero:
		return "/barbero"
	}
	return "/dashboard"
}

// RedirectFor picks the page to open right after login. Only clients are
// sent back to a stored return path.
func RedirectFor(role, stored string) string {
	if role == RoleCliente && stored != "" {
		return stored
	}
	return HomeFor(role)
}

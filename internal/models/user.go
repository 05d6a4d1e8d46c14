package models

// User is the account embedded in login responses and barber profiles.
type User struct {
	ID        int    `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Rol       string `json:"rol"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Telefono  string `json:"telefono"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
	User    User   `json:"user"`
}

// Registration is the body of POST /api/usuarios/. Self-service accounts
// are always clients.
type Registration struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Password        string `json:"password"`
	Telefono        string `json:"telefono"`
	FechaNacimiento string `json:"fecha_nacimiento"`
	Rol             string `json:"rol"`
}

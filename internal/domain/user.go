package domain

type User struct {
	ID     int64  `json:"id" db:"id"`
	Nombre string `json:"nombre" db:"nombre"`
	Email  string `json:"email" db:"email"`
	Rut    string `json:"rut" db:"rut"`
	Rol    *Role  `json:"rol" db:"-"`
}

// RoleID returns the id of the referenced role, or nil when the user has none.
func (u User) RoleID() *int64 {
	if u.Rol == nil || u.Rol.ID == 0 {
		return nil
	}
	id := u.Rol.ID
	return &id
}

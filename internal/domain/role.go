package domain

type Role struct {
	ID          int64   `json:"id" db:"id"`
	Nombre      string  `json:"nombre" db:"nombre"`
	Descripcion *string `json:"descripcion" db:"descripcion"`
}

package dto

// RolResponse rol.
type RolResponse struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
}

// PermisoResponse permiso.
type PermisoResponse struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
}

// AsignarPermisoRequest vincula un permiso a un rol.
type AsignarPermisoRequest struct {
	PermisoID int64 `json:"permiso_id" validate:"required,gt=0"`
}

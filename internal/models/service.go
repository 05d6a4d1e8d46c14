package models

type Service struct {
	ID          int     `json:"id"`
	Nombre      string  `json:"nombre"`
	Descripcion string  `json:"descripcion"`
	Precio      Decimal `json:"precio"`
	PrecioDesde bool    `json:"precio_desde"`
	Duracion    int     `json:"duracion"`
	Activo      bool    `json:"activo"`
	Imagen      string  `json:"imagen"`
}

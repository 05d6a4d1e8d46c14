package models

type GalleryItem struct {
	ID          int    `json:"id"`
	Titulo      string `json:"titulo"`
	Descripcion string `json:"descripcion"`
	Imagen      string `json:"imagen"`
	VideoURL    string `json:"video_url"`
	EsVideo     bool   `json:"es_video"`
	Orden       int    `json:"orden"`
	Activo      bool   `json:"activo"`
}

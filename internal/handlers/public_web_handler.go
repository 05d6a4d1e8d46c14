package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/BruksfildServices01/barberrock-web/internal/dto"
	"github.com/BruksfildServices01/barberrock-web/internal/httperr"
	"github.com/BruksfildServices01/barberrock-web/internal/usecase/catalog"
	ucGallery "github.com/BruksfildServices01/barberrock-web/internal/usecase/gallery"
)

type PublicWebHandler struct {
	services *catalog.ListServices
	gallery  *ucGallery.ListGallery
}

func NewPublicWebHandler(
	services *catalog.ListServices,
	gallery *ucGallery.ListGallery,
) *PublicWebHandler {
	return &PublicWebHandler{
		services: services,
		gallery:  gallery,
	}
}

func (h *PublicWebHandler) Home(c *gin.Context) {
	render(c, http.StatusOK, "home", nil)
}

// ======================================================
// GET /servicios
// ======================================================

func (h *PublicWebHandler) Services(c *gin.Context) {
	filter := catalog.NewFilter(c.Query("query"), c.Query("sort"))

	list, err := h.services.Execute(c.Request.Context())
	if err != nil {
		log.Warn().Err(err).Msg("list services")
		render(c, http.StatusOK, "services", gin.H{
			"Error":   httperr.MsgCouldNotLoad,
			"Filters": filter,
		})
		return
	}

	render(c, http.StatusOK, "services", gin.H{
		"Services": dto.NewServices(filter.Apply(list)),
		"Filters":  filter,
	})
}

// ======================================================
// GET /galeria?item=i
// ======================================================

func (h *PublicWebHandler) Gallery(c *gin.Context) {
	list, err := h.gallery.Execute(c.Request.Context())
	if err != nil {
		log.Warn().Err(err).Msg("list gallery")
		render(c, http.StatusOK, "gallery", gin.H{
			"Error": httperr.MsgCouldNotLoad,
		})
		return
	}

	items := dto.NewGalleryItems(list)
	data := gin.H{"Items": items}

	if raw, ok := c.GetQuery("item"); ok {
		idx, err := strconv.Atoi(raw)
		if err == nil {
			if lb, ok := dto.NewLightbox(items, idx); ok {
				data["Lightbox"] = lb
			}
		}
	}

	render(c, http.StatusOK, "gallery", data)
}

package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barberrock-web/internal/dto"
	"github.com/BruksfildServices01/barberrock-web/internal/httperr"
	"github.com/BruksfildServices01/barberrock-web/internal/httpresp"
	"github.com/BruksfildServices01/barberrock-web/internal/usecase/catalog"
	ucGallery "github.com/BruksfildServices01/barberrock-web/internal/usecase/gallery"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

// PublicHandler serves the JSON documents the public pages script against.
type PublicHandler struct {
	services *catalog.ListServices
	gallery  *ucGallery.ListGallery
}

func NewPublicHandler(
	services *catalog.ListServices,
	gallery *ucGallery.ListGallery,
) *PublicHandler {
	return &PublicHandler{
		services: services,
		gallery:  gallery,
	}
}

////////////////////////////////////////////////////////
// SERVICES
////////////////////////////////////////////////////////

func (h *PublicHandler) ListServices(c *gin.Context) {
	list, err := h.services.Execute(c.Request.Context())
	if err != nil {
		httperr.FromError(c, err, httperr.MsgCouldNotLoad)
		return
	}

	filter := catalog.NewFilter(c.Query("query"), c.Query("sort"))
	httpresp.List(c, dto.NewServices(filter.Apply(list)))
}

////////////////////////////////////////////////////////
// GALLERY
////////////////////////////////////////////////////////

func (h *PublicHandler) ListGallery(c *gin.Context) {
	list, err := h.gallery.Execute(c.Request.Context())
	if err != nil {
		httperr.FromError(c, err, httperr.MsgCouldNotLoad)
		return
	}
	httpresp.List(c, dto.NewGalleryItems(list))
}

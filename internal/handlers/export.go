package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/techpark-119/Todo-App/internal/auth"
	"github.com/techpark-119/Todo-App/internal/service"
)

type ExportHandler struct {
	svc *service.ExportService
}

func NewExportHandler(svc *service.ExportService) *ExportHandler {
	return &ExportHandler{svc: svc}
}

// Export godoc
// @Summary      Download everything the caller owns
// @Tags         export
// @Produce      json
// @Security     CookieAuth
// @Param        format  query  string  false  "json (default) or yaml"
// @Success      200
// @Failure      400  {object}  map[string]string
// @Router       /export [get]
func (h *ExportHandler) Export(c *gin.Context) {
	format := strings.ToLower(c.DefaultQuery("format", service.FormatJSON))
	e, err := h.svc.Export(c.Request.Context(), auth.UserIDFromContext(c))
	if err != nil {
		writeError(c, err)
		return
	}
	body, err := service.Encode(e, format)
	if err != nil {
		writeError(c, err)
		return
	}
	contentType := "application/json; charset=utf-8"
	if format == service.FormatYAML {
		contentType = "application/yaml; charset=utf-8"
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="todos-export.%s"`, format))
	c.Data(http.StatusOK, contentType, body)
}

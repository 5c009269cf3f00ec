package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rdyla/pfi-technologymatrix/internal/platform/logger"
	"github.com/rdyla/pfi-technologymatrix/internal/web"
)

// PageHandler serves the form page, rendered once at construction. Display
// variation (embed mode, locked customer) happens client-side off the query
// string, so the same bytes serve every request.
type PageHandler struct {
	log  *logger.Logger
	page []byte
}

func NewPageHandler(log *logger.Logger, data web.PageData) (*PageHandler, error) {
	page, err := web.Render(data)
	if err != nil {
		return nil, err
	}
	return &PageHandler{
		log:  log.With("handler", "PageHandler"),
		page: page,
	}, nil
}

func (h *PageHandler) GetPage(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", h.page)
}

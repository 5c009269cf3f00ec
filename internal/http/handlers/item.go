package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rdyla/pfi-technologymatrix/internal/http/response"
	"github.com/rdyla/pfi-technologymatrix/internal/matrix"
	"github.com/rdyla/pfi-technologymatrix/internal/platform/logger"
)

// ItemHandler serves the assessment-record CRUD routes. configErr is the
// store misconfiguration captured at startup; when set, every call answers
// 500 with the descriptive message instead of reaching a nil client.
type ItemHandler struct {
	log       *logger.Logger
	service   *matrix.Service
	configErr error
}

func NewItemHandler(log *logger.Logger, service *matrix.Service, configErr error) *ItemHandler {
	return &ItemHandler{
		log:       log.With("handler", "ItemHandler"),
		service:   service,
		configErr: configErr,
	}
}

func (h *ItemHandler) ListItems(c *gin.Context) {
	if h.configErr != nil {
		response.Error(c, http.StatusInternalServerError, h.configErr)
		return
	}
	items, err := h.service.List(c.Request.Context(), c.Query("customerName"), c.Query("category"))
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	response.OK(c, gin.H{"items": items})
}

func (h *ItemHandler) CreateItem(c *gin.Context) {
	if h.configErr != nil {
		response.Error(c, http.StatusInternalServerError, h.configErr)
		return
	}
	var input matrix.CreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.ErrorMessage(c, http.StatusBadRequest, "invalid JSON body")
		return
	}
	item, err := h.service.Create(c.Request.Context(), input)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	h.log.Info("record created",
		"customer_name", item.CustomerName,
		"category", item.Category,
		"time_code", item.TimeCode,
	)
	response.OK(c, gin.H{"item": item})
}

func (h *ItemHandler) DeleteItem(c *gin.Context) {
	if h.configErr != nil {
		response.Error(c, http.StatusInternalServerError, h.configErr)
		return
	}
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	response.OK(c, gin.H{})
}

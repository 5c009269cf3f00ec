package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rdyla/pfi-technologymatrix/internal/http/response"
	"github.com/rdyla/pfi-technologymatrix/internal/matrix"
	"github.com/rdyla/pfi-technologymatrix/internal/platform/logger"
)

type CustomerHandler struct {
	log       *logger.Logger
	service   *matrix.Service
	configErr error
}

func NewCustomerHandler(log *logger.Logger, service *matrix.Service, configErr error) *CustomerHandler {
	return &CustomerHandler{
		log:       log.With("handler", "CustomerHandler"),
		service:   service,
		configErr: configErr,
	}
}

func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	if h.configErr != nil {
		response.Error(c, http.StatusInternalServerError, h.configErr)
		return
	}
	customers, err := h.service.CustomerSummaries(c.Request.Context())
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	response.OK(c, gin.H{"customers": customers})
}

package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rdyla/pfi-technologymatrix/internal/http/response"
	"github.com/rdyla/pfi-technologymatrix/internal/matrix"
	"github.com/rdyla/pfi-technologymatrix/internal/platform/logger"
	"github.com/rdyla/pfi-technologymatrix/internal/platform/restdb"
)

// respondServiceError maps domain and store errors onto the envelope:
// validation errors become 400, upstream store errors pass their status and
// body through unchanged, transport-level store failures become 502, and
// anything else (config errors included) is a 500.
func respondServiceError(c *gin.Context, log *logger.Logger, err error) {
	var vErr *matrix.ValidationError
	if errors.As(err, &vErr) {
		response.ErrorMessage(c, http.StatusBadRequest, vErr.Message)
		return
	}

	var opErr *restdb.OperationError
	if errors.As(err, &opErr) {
		switch opErr.Code {
		case restdb.OperationErrorUpstream:
			response.ErrorPayload(c, opErr.StatusCode, opErr.Body)
		case restdb.OperationErrorTransportFailed, restdb.OperationErrorTimeout:
			log.Error("store unreachable", "error", err)
			response.Error(c, http.StatusBadGateway, err)
		default:
			log.Error("store call failed", "error", err)
			response.Error(c, http.StatusInternalServerError, err)
		}
		return
	}

	log.Error("request failed", "error", err)
	response.Error(c, http.StatusInternalServerError, err)
}

// Package response renders the API's uniform JSON envelope: every success is
// {ok:true, ...} and every failure is {ok:false, error:<message-or-object>}.
package response

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
)

func OK(c *gin.Context, fields gin.H) {
	payload := gin.H{"ok": true}
	for k, v := range fields {
		payload[k] = v
	}
	c.JSON(http.StatusOK, payload)
}

func Error(c *gin.Context, status int, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, gin.H{"ok": false, "error": msg})
}

func ErrorMessage(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"ok": false, "error": msg})
}

// ErrorPayload emits an error body that is already JSON (an upstream store
// error object or quoted text) without re-encoding it.
func ErrorPayload(c *gin.Context, status int, payload json.RawMessage) {
	if len(payload) == 0 {
		ErrorMessage(c, status, http.StatusText(status))
		return
	}
	c.JSON(status, gin.H{"ok": false, "error": payload})
}

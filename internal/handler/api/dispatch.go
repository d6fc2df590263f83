package api

import (
	"errors"
	"net/http"

	resdto "payping-dispatch/internal/handler/dto/response"
	"payping-dispatch/internal/handler/httperr"
	"payping-dispatch/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type DispatchHandler struct {
	cmds commands.DispatchCommands
}

func NewDispatchHandler(cmds commands.DispatchCommands) *DispatchHandler {
	return &DispatchHandler{cmds: cmds}
}

// @Summary Dispatch due reminders
// @Description Run one dispatch batch: notify owners of due reminders and optionally email clients
// @Tags jobs
// @Produce json
// @Param X-Cron-Secret header string false "Shared cron secret"
// @Success 200 {object} resdto.DispatchRunResponse
// @Failure 401 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /jobs/send-reminders [post]
func (h *DispatchHandler) Trigger(c *gin.Context) {
	summary, err := h.cmds.Run(c.Request.Context())
	if err != nil {
		if errors.Is(err, commands.ErrMailerNotConfigured) {
			httperr.AbortWithError(c, http.StatusInternalServerError, err,
				"Email service not configured", "Please configure RESEND_API_KEY")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err,
			"Dispatch run failed", "")
		return
	}
	c.JSON(http.StatusOK, resdto.FromRunSummary(summary))
}

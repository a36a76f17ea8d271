package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"revos/internal/service"
)

// CommandHandler exposes the command audit log.
type CommandHandler struct {
	commandService service.CommandService
}

// NewCommandHandler creates a new CommandHandler.
func NewCommandHandler(commandService service.CommandService) *CommandHandler {
	return &CommandHandler{commandService: commandService}
}

// List handles GET /api/v1/commands
func (h *CommandHandler) List(c *gin.Context) {
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	tool := c.Query("tool")

	entries, total, err := h.commandService.List(c.Request.Context(), tool, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, entries, PagMeta{Total: total, Offset: offset, Limit: limit})
}

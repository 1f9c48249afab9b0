package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/mithuncards/cardpos/internal/application/session"
	"github.com/mithuncards/cardpos/internal/presentation/http/dto/response"
)

// SessionHandler controls the cached working set pulled from the
// upstream backend.
type SessionHandler struct {
	store *session.Store
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(store *session.Store) *SessionHandler {
	return &SessionHandler{store: store}
}

// Refresh handles re-pulling all collections from the upstream
func (h *SessionHandler) Refresh(c *gin.Context) {
	if err := h.store.Refresh(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Session refreshed successfully", gin.H{
		"orders":    len(h.store.Orders()),
		"customers": len(h.store.Customers()),
		"inventory": len(h.store.Inventory()),
		"expenses":  len(h.store.Expenses()),
	})
}

// Clear handles dropping the cached working set
func (h *SessionHandler) Clear(c *gin.Context) {
	h.store.Clear()
	response.NoContent(c)
}

package handlers

import (
	"net/http"
	"strconv"

	"tempconv/internal/history"

	"github.com/gin-gonic/gin"
)

// parseID reads the :id path parameter, writing a 400 on failure.
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidID})
		return 0, false
	}
	return id, true
}

// queryConfirmer answers every confirmation with the ?confirm= flag and
// remembers the question it was asked.
type queryConfirmer struct {
	confirmed bool
	asked     string
}

func newQueryConfirmer(c *gin.Context) *queryConfirmer {
	ok, _ := strconv.ParseBool(c.Query("confirm"))
	return &queryConfirmer{confirmed: ok}
}

func (q *queryConfirmer) Confirm(message string) bool {
	q.asked = message
	return q.confirmed
}

var _ history.Confirmer = (*queryConfirmer)(nil)

// respondUnconfirmed tells the client which question needs ?confirm=true.
func respondUnconfirmed(c *gin.Context, q *queryConfirmer) {
	c.JSON(http.StatusPreconditionRequired, gin.H{
		"error":   "confirmation required: repeat with ?confirm=true",
		"confirm": q.asked,
	})
}

// @Summary      Get history
// @Description  Newest first; the row being edited is flagged
// @Tags         history
// @Produce      json
// @Success      200  {object}  models.HistoryView
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/history [get]
// @Security     BearerAuth
func (h *Handler) getHistory(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.View())
}

// @Summary      Start editing an entry
// @Tags         history
// @Produce      json
// @Param        id   path  int  true  "Entry id"
// @Success      200  {object}  models.HistoryView
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/history/{id}/edit [post]
// @Security     BearerAuth
func (h *Handler) startEdit(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if !h.services.Edit(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": errNotFound})
		return
	}
	c.JSON(http.StatusOK, h.services.View())
}

// @Summary      Cancel editing
// @Tags         history
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /api/v1/history/edit/cancel [post]
// @Security     BearerAuth
func (h *Handler) cancelEdit(c *gin.Context) {
	h.services.CancelEdit()
	c.JSON(http.StatusOK, gin.H{"status": statusCancelled})
}

// @Summary      Save an edited entry
// @Description  Recomputes the entry in place and closes the edit session
// @Tags         history
// @Accept       json
// @Produce      json
// @Param        id    path  int             true  "Entry id"
// @Param        body  body  ConvertRequest  true  "New values"
// @Success      200   {object}  models.HistoryRow
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/history/{id} [put]
// @Security     BearerAuth
func (h *Handler) saveEdit(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	p, ok := h.bindConvert(c)
	if !ok {
		return
	}
	rec, err := h.services.SaveEdit(c.Request.Context(), id, p)
	if err != nil {
		h.respondError(c, err, "history_save_edit_failed", "id", id)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// @Summary      Delete an entry
// @Tags         history
// @Produce      json
// @Param        id       path   int   true  "Entry id"
// @Param        confirm  query  bool  true  "Must be true"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Failure      428  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/history/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteEntry(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	q := newQueryConfirmer(c)
	done, err := h.services.Delete(c.Request.Context(), id, q)
	if err != nil {
		h.respondError(c, err, "history_delete_failed", "id", id)
		return
	}
	if !done {
		respondUnconfirmed(c, q)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": statusDeleted, "id": id})
}

// @Summary      Clear history
// @Tags         history
// @Produce      json
// @Param        confirm  query  bool  true  "Must be true"
// @Success      200  {object}  map[string]string
// @Failure      428  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/history [delete]
// @Security     BearerAuth
func (h *Handler) clearHistory(c *gin.Context) {
	q := newQueryConfirmer(c)
	done, err := h.services.ClearAll(c.Request.Context(), q)
	if err != nil {
		h.respondError(c, err, "history_clear_failed")
		return
	}
	if !done {
		respondUnconfirmed(c, q)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": statusCleared})
}

// @Summary      Active notifications
// @Tags         notifications
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "count, notifications"
// @Router       /api/v1/notifications [get]
// @Security     BearerAuth
func (h *Handler) listNotifications(c *gin.Context) {
	active := h.services.Active()
	c.JSON(http.StatusOK, gin.H{
		"count":         len(active),
		"notifications": active,
	})
}

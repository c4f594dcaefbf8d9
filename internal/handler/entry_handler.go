package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/LourceDev/3pages/internal/pkg/response"
	"github.com/LourceDev/3pages/internal/richtext"
	"github.com/LourceDev/3pages/internal/service"
)

type EntryHandler struct {
	entries *service.EntryService
}

func NewEntryHandler(entries *service.EntryService) *EntryHandler {
	return &EntryHandler{entries: entries}
}

type putEntryRequest struct {
	Text *richtext.Node `json:"text"`
}

func (h *EntryHandler) Put(c *gin.Context) {
	var req putEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Text == nil {
		response.Error(c, http.StatusBadRequest, "invalid", "invalid request")
		return
	}
	user := getUser(c)
	if _, err := h.entries.Put(c.Request.Context(), user.ID, c.Param("date"), req.Text); err != nil {
		handleError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

func (h *EntryHandler) Get(c *gin.Context) {
	user := getUser(c)
	entry, err := h.entries.Get(c.Request.Context(), user.ID, c.Param("date"))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (h *EntryHandler) Delete(c *gin.Context) {
	user := getUser(c)
	if err := h.entries.Delete(c.Request.Context(), user.ID, c.Param("date")); err != nil {
		handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *EntryHandler) ListDates(c *gin.Context) {
	user := getUser(c)
	dates, err := h.entries.ListDates(c.Request.Context(), user.ID)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dates)
}

package api

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lysyi3m/fda-feed/app/feed"
	"github.com/lysyi3m/fda-feed/app/source"
)

func NewHandler(store *feed.Store, sources []source.Source) *Handler {
	return &Handler{
		store:   store,
		sources: sources,
	}
}

func (h *Handler) GetFeed(c *gin.Context) {
	name := c.Param("name")
	if name == "" {
		c.Status(http.StatusBadRequest)
		return
	}

	result, ok := h.store.Get(name)
	if !ok {
		slog.Error("Feed not generated yet or unknown source", "feed", name)
		c.Status(http.StatusNotFound)
		return
	}

	c.Header("Content-Type", "application/xml; charset=utf-8")
	c.Header("X-Feed-Items", strconv.Itoa(result.ItemCount))
	c.Header("X-Feed-Name", name)
	c.Header("X-Generated-At", result.GeneratedAt.Format(time.RFC3339))

	c.String(http.StatusOK, result.XML)
}

func (h *Handler) GetHealth(c *gin.Context) {
	health := map[string]interface{}{
		"timestamp":          time.Now().UTC().Format(time.RFC3339),
		"configured_sources": len(h.sources),
		"generated_feeds":    h.store.Count(),
	}

	c.JSON(http.StatusOK, health)
}

func (h *Handler) GetSources(c *gin.Context) {
	sources := make([]map[string]interface{}, 0, len(h.sources))

	for _, src := range h.sources {
		info := map[string]interface{}{
			"name":      src.Name,
			"page_url":  src.PageURL,
			"title":     src.Title,
			"max_items": src.MaxItems,
		}

		if result, ok := h.store.Get(src.Name); ok {
			info["items"] = result.ItemCount
			info["generated_at"] = result.GeneratedAt
		}

		sources = append(sources, info)
	}

	c.JSON(http.StatusOK, map[string]interface{}{
		"sources": sources,
		"total":   len(sources),
	})
}

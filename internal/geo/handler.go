package geo

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	client *Client
	repo   Repository

	mu      sync.Mutex
	pickers map[string]*Picker
}

func NewHandler(client *Client, repo Repository) *Handler {
	return &Handler{
		client:  client,
		repo:    repo,
		pickers: make(map[string]*Picker),
	}
}

// pickerFor returns the per-user picker, creating it on first use.
func (h *Handler) pickerFor(userID string) *Picker {
	h.mu.Lock()
	defer h.mu.Unlock()
	p, ok := h.pickers[userID]
	if !ok {
		p = NewPicker(h.client)
		h.pickers[userID] = p
	}
	return p
}

// --------------------------------------------------
// GET /geo/config
// --------------------------------------------------
func (h *Handler) GetConfig(c *gin.Context) {
	c.JSON(http.StatusOK, DefaultMapConfig())
}

// --------------------------------------------------
// GET /geo/reverse?lat=..&lng=..
// --------------------------------------------------
func (h *Handler) Reverse(c *gin.Context) {
	userID := c.GetString("userID")

	lat, errLat := strconv.ParseFloat(c.Query("lat"), 64)
	lng, errLng := strconv.ParseFloat(c.Query("lng"), 64)
	if errLat != nil || errLng != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lat and lng are required"})
		return
	}

	res, err := h.pickerFor(userID).MoveEnd(c.Request.Context(), lat, lng)
	if err != nil {
		if errors.Is(err, ErrStaleLookup) {
			c.JSON(http.StatusConflict, gin.H{"error": "superseded by a newer lookup"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to resolve location"})
		return
	}
	c.JSON(http.StatusOK, res)
}

// --------------------------------------------------
// GET /geo/search?q=..
// --------------------------------------------------
func (h *Handler) Search(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "q is required"})
		return
	}

	places, err := h.client.Search(c.Request.Context(), query)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to search locations"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"places":     places,
		"no_results": len(places) == 0,
	})
}

// --------------------------------------------------
// GET /geo/location
// --------------------------------------------------
func (h *Handler) GetLocation(c *gin.Context) {
	userID := c.GetString("userID")

	loc, err := h.repo.LoadLocation(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load location"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"location": loc})
}

// --------------------------------------------------
// PUT /geo/location
// --------------------------------------------------
// Confirms a selection. Coordinates are optional so a hand-typed
// location can still be saved by name.
func (h *Handler) PutLocation(c *gin.Context) {
	userID := c.GetString("userID")

	var loc Location
	if err := c.ShouldBindJSON(&loc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	loc.Name = strings.TrimSpace(loc.Name)
	if loc.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	if err := h.repo.SaveLocation(c.Request.Context(), userID, loc); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save location"})
		return
	}
	h.pickerFor(userID).Select(loc)
	c.JSON(http.StatusOK, gin.H{"location": loc})
}

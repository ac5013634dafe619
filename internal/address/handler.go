package address

import (
	"errors"
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func writeServiceError(c *gin.Context, err error) {
	var ve *ValidationError
	switch {
	case errors.Is(err, ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, ErrStateRequired), errors.Is(err, ErrUnknownState), errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save address"})
	}
}

// --------------------------------------------------
// GET /addresses
// --------------------------------------------------
func (h *Handler) ListAddresses(c *gin.Context) {
	userID := c.GetString("userID")

	addrs, err := h.service.List(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list addresses"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"addresses": addrs})
}

// --------------------------------------------------
// POST /addresses
// --------------------------------------------------
func (h *Handler) CreateAddress(c *gin.Context) {
	userID := c.GetString("userID")

	var addr Address
	if err := c.ShouldBindJSON(&addr); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	addr.UserID = userID

	if err := h.service.Create(c.Request.Context(), &addr); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, addr)
}

// --------------------------------------------------
// PUT /addresses/:id
// --------------------------------------------------
func (h *Handler) UpdateAddress(c *gin.Context) {
	userID := c.GetString("userID")

	var addr Address
	if err := c.ShouldBindJSON(&addr); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	addr.ID = c.Param("id")
	addr.UserID = userID

	if err := h.service.Update(c.Request.Context(), addr); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, addr)
}

// --------------------------------------------------
// DELETE /addresses/:id
// --------------------------------------------------
func (h *Handler) DeleteAddress(c *gin.Context) {
	userID := c.GetString("userID")

	if err := h.service.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete address"})
		return
	}
	c.Status(http.StatusNoContent)
}

// --------------------------------------------------
// GET /addresses/governorates
// --------------------------------------------------
func (h *Handler) ListGovernorates(c *gin.Context) {
	states := make([]string, 0, len(Governorates))
	for state := range Governorates {
		states = append(states, state)
	}
	sort.Strings(states)

	c.JSON(http.StatusOK, gin.H{
		"states": states,
		"cities": Governorates,
	})
}

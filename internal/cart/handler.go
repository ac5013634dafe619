package cart

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"talabak/internal/events"
)

type Handler struct {
	store     *Store
	publisher events.Publisher
}

func NewHandler(store *Store, publisher events.Publisher) *Handler {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &Handler{store: store, publisher: publisher}
}

type itemRequest struct {
	ProductID  string          `json:"product_id"`
	Name       string          `json:"name"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	ShopID     string          `json:"shop_id"`
	ShopName   string          `json:"shop_name"`
	ShopAreaID string          `json:"shop_area_id"`
}

func (r itemRequest) toItem() Item {
	return Item{
		ProductID:  r.ProductID,
		Name:       r.Name,
		UnitPrice:  r.UnitPrice,
		Quantity:   1,
		ShopID:     r.ShopID,
		ShopName:   r.ShopName,
		ShopAreaID: r.ShopAreaID,
	}
}

func (r itemRequest) valid() bool {
	return r.ProductID != "" && r.Name != "" && r.ShopID != "" && !r.UnitPrice.IsNegative()
}

// --------------------------------------------------
// GET /cart
// --------------------------------------------------
func (h *Handler) GetCart(c *gin.Context) {
	userID := c.GetString("userID")

	items, err := h.store.Items(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load cart"})
		return
	}

	count := 0
	for _, it := range items {
		count += it.Quantity
	}

	c.JSON(http.StatusOK, gin.H{
		"items":  items,
		"groups": GroupByShop(items),
		"count":  count,
	})
}

// --------------------------------------------------
// POST /cart/items
// --------------------------------------------------
func (h *Handler) AddItem(c *gin.Context) {
	userID := c.GetString("userID")

	var req itemRequest
	if err := c.ShouldBindJSON(&req); err != nil || !req.valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item"})
		return
	}

	err := h.store.Add(c.Request.Context(), userID, req.toItem())
	if errors.Is(err, ErrShopConflict) {
		c.JSON(http.StatusConflict, gin.H{
			"error":       "cart holds items from another shop",
			"resolutions": []Resolution{ResolutionMerge, ResolutionReplace},
		})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add item"})
		return
	}

	firstAdd, err := h.store.FirstAdd(c.Request.Context(), userID, req.ProductID)
	if err != nil {
		// toast suppression only, the add itself succeeded
		log.Println("cart: first-add tracking failed:", err)
		firstAdd = false
	}

	c.JSON(http.StatusCreated, gin.H{"first_add": firstAdd})
}

// --------------------------------------------------
// POST /cart/items/resolve
// --------------------------------------------------
func (h *Handler) AddItemResolved(c *gin.Context) {
	userID := c.GetString("userID")

	var req struct {
		itemRequest
		Resolution Resolution `json:"resolution"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || !req.valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item"})
		return
	}

	if err := h.store.AddResolved(c.Request.Context(), userID, req.toItem(), req.Resolution); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"resolution": req.Resolution})
}

// --------------------------------------------------
// POST /cart/items/:productId/increase
// POST /cart/items/:productId/decrease
// DELETE /cart/items/:productId
// --------------------------------------------------
func (h *Handler) IncreaseItem(c *gin.Context) {
	h.mutate(c, h.store.Increase)
}

func (h *Handler) DecreaseItem(c *gin.Context) {
	h.mutate(c, h.store.Decrease)
}

func (h *Handler) RemoveItem(c *gin.Context) {
	userID := c.GetString("userID")
	productID := c.Param("productId")
	shopID := c.Query("shop_id")

	if err := h.store.Remove(c.Request.Context(), userID, productID, shopID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to remove item"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) mutate(c *gin.Context, op func(ctx context.Context, userID, productID, shopID string) error) {
	userID := c.GetString("userID")
	productID := c.Param("productId")
	shopID := c.Query("shop_id")

	err := op(c.Request.Context(), userID, productID, shopID)
	if errors.Is(err, ErrItemNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "item not in cart"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update item"})
		return
	}
	c.Status(http.StatusNoContent)
}

// --------------------------------------------------
// GET /cart/summary
// --------------------------------------------------
func (h *Handler) GetSummary(c *gin.Context) {
	userID := c.GetString("userID")

	summary, err := h.store.Summary(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute summary"})
		return
	}

	c.JSON(http.StatusOK, summary.Format())
}

// --------------------------------------------------
// POST /cart/checkout
// --------------------------------------------------
func (h *Handler) Checkout(c *gin.Context) {
	userID := c.GetString("userID")
	ctx := c.Request.Context()

	items, err := h.store.Items(ctx, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load cart"})
		return
	}
	if len(items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cart is empty"})
		return
	}

	summary, err := h.store.Summary(ctx, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute summary"})
		return
	}

	formatted := summary.Format()
	evt := events.CartCheckedOut{
		UserID:    userID,
		Subtotal:  formatted.Subtotal,
		Delivery:  formatted.Delivery,
		Discount:  formatted.Discount,
		Total:     formatted.Total,
		ShopCount: formatted.ShopCount,
	}
	for _, it := range items {
		evt.Items = append(evt.Items, events.CartItemEvent{
			ProductID: it.ProductID,
			ShopID:    it.ShopID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice.StringFixed(2),
		})
	}

	if err := h.publisher.PublishCartCheckedOut(ctx, evt); err != nil {
		// the checkout view still works, the event is best effort
		log.Println("cart: checkout event publish failed:", err)
	}

	c.JSON(http.StatusOK, gin.H{
		"groups":  GroupByShop(items),
		"summary": formatted,
	})
}

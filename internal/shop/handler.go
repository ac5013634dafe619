package shop

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// GET /shops
// --------------------------------------------------
// Query params: area_id, q, very_good, free_delivery, fast_delivery,
// sort, dir, page, per_page.
func (h *Handler) ListShops(c *gin.Context) {
	q := DirectoryQuery{
		AreaID: c.Query("area_id"),
		Filter: Filter{
			Query:        c.Query("q"),
			VeryGood:     c.Query("very_good") == "true",
			FreeDelivery: c.Query("free_delivery") == "true",
			FastDelivery: c.Query("fast_delivery") == "true",
		},
		SortKey: SortKey(c.Query("sort")),
	}

	if c.Query("dir") == string(Descending) {
		q.Dir = Descending
	} else {
		q.Dir = Ascending
	}
	if page, err := strconv.Atoi(c.Query("page")); err == nil {
		q.Page = page
	}
	if per, err := strconv.Atoi(c.Query("per_page")); err == nil {
		q.PerPage = per
	}

	page, err := h.service.Directory(c.Request.Context(), q)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list shops"})
		return
	}
	c.JSON(http.StatusOK, page)
}

// --------------------------------------------------
// POST /shops
// --------------------------------------------------
type createShopRequest struct {
	Name                string          `json:"name"`
	AreaID              string          `json:"area_id"`
	Rating              float64         `json:"rating"`
	RatingLabel         string          `json:"rating_label"`
	DeliveryFee         decimal.Decimal `json:"delivery_fee"`
	FreeDelivery        bool            `json:"free_delivery"`
	DeliveryTimeMinutes int             `json:"delivery_time_minutes"`
	MinOrderAmount      decimal.Decimal `json:"min_order_amount"`
	DiscountPercent     decimal.Decimal `json:"discount_percent"`
}

func (h *Handler) CreateShop(c *gin.Context) {
	userID := c.GetString("userID")

	var req createShopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	shop := Shop{
		Name:                req.Name,
		AreaID:              req.AreaID,
		OwnerID:             userID,
		Rating:              req.Rating,
		RatingLabel:         req.RatingLabel,
		DeliveryFee:         req.DeliveryFee,
		FreeDelivery:        req.FreeDelivery,
		DeliveryTimeMinutes: req.DeliveryTimeMinutes,
		MinOrderAmount:      req.MinOrderAmount,
		DiscountPercent:     req.DiscountPercent,
	}

	if err := h.service.Create(c.Request.Context(), &shop); err != nil {
		if errors.Is(err, ErrInvalidShop) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create shop"})
		return
	}
	c.JSON(http.StatusCreated, shop)
}

// --------------------------------------------------
// GET /shops/mine
// --------------------------------------------------
func (h *Handler) MyShops(c *gin.Context) {
	userID := c.GetString("userID")

	shops, err := h.service.ListByOwner(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list shops"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"shops": shops})
}

// --------------------------------------------------
// POST /shops/:id/images
// --------------------------------------------------
func (h *Handler) UploadImages(c *gin.Context) {
	userID := c.GetString("userID")
	shopID := c.Param("id")

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid multipart form"})
		return
	}

	var files []UploadFile
	for _, fh := range form.File["images"] {
		f, err := fh.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read file"})
			return
		}
		defer f.Close()
		files = append(files, UploadFile{
			ContentType: fh.Header.Get("Content-Type"),
			Body:        f,
		})
	}
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no files uploaded"})
		return
	}

	urls, err := h.service.UploadImages(c.Request.Context(), shopID, userID, files)
	if err != nil {
		if errors.Is(err, ErrNotOwner) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upload images"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"image_urls": urls})
}

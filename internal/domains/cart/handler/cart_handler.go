package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dacosta-backend/internal/domains/cart"
	"dacosta-backend/internal/shared/middleware"
	"dacosta-backend/internal/shared/response"
)

type CartHandler struct {
	service cart.Service
}

func NewCartHandler(svc cart.Service) *CartHandler {
	return &CartHandler{
		service: svc,
	}
}

func respondCartError(c *gin.Context, err error) {
	response.ErrorResponse(c, cart.ToHTTPStatus(err), "CART_ERROR", err.Error())
}

func sessionID(c *gin.Context) (string, bool) {
	id := middleware.GetSessionID(c)
	if id == "" {
		response.BadRequest(c, cart.ErrNoSession.Error())
		return "", false
	}
	return id, true
}

// ════════════════════════════════════════════════════════════════
// READ: Products - GET /api/v1/shop/products
// ════════════════════════════════════════════════════════════════

func (h *CartHandler) Products(c *gin.Context) {
	response.Success(c, http.StatusOK, "Get products successfully", h.service.Products(c.Request.Context()))
}

// ════════════════════════════════════════════════════════════════
// READ: Get - GET /api/v1/shop/cart
// ════════════════════════════════════════════════════════════════

func (h *CartHandler) Get(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}

	view, err := h.service.Get(c.Request.Context(), sid)
	if err != nil {
		respondCartError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Get cart successfully", view)
}

// ════════════════════════════════════════════════════════════════
// UPDATE: Add - POST /api/v1/shop/cart/items
// ════════════════════════════════════════════════════════════════

type addItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

func (h *CartHandler) Add(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}

	var req addItemRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	view, err := h.service.Add(c.Request.Context(), sid, req.ProductID, req.Quantity)
	if err != nil {
		respondCartError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Item added to cart", view)
}

// ════════════════════════════════════════════════════════════════
// UPDATE: SetQuantity - PUT /api/v1/shop/cart/items/:productId
// ════════════════════════════════════════════════════════════════

type setQuantityRequest struct {
	Quantity int `json:"quantity"`
}

func (h *CartHandler) SetQuantity(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}

	var req setQuantityRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	view, err := h.service.SetQuantity(c.Request.Context(), sid, c.Param("productId"), req.Quantity)
	if err != nil {
		respondCartError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Cart updated", view)
}

// ════════════════════════════════════════════════════════════════
// DELETE: Remove - DELETE /api/v1/shop/cart/items/:productId
// ════════════════════════════════════════════════════════════════

func (h *CartHandler) Remove(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}

	view, err := h.service.Remove(c.Request.Context(), sid, c.Param("productId"))
	if err != nil {
		respondCartError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Item removed from cart", view)
}

// ════════════════════════════════════════════════════════════════
// DELETE: Clear - DELETE /api/v1/shop/cart
// ════════════════════════════════════════════════════════════════

func (h *CartHandler) Clear(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}

	view, err := h.service.Clear(c.Request.Context(), sid)
	if err != nil {
		respondCartError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Cart cleared", view)
}

package api

import (
	"errors"
	"net/http"
	"strconv"

	"skillforge/internal/domain/coupon"
	reqdto "skillforge/internal/handler/dto/request"
	resdto "skillforge/internal/handler/dto/response"
	"skillforge/internal/handler/middleware"
	"skillforge/internal/usecase/commands"
	"skillforge/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CouponHandler struct {
	commands commands.CouponCommands
	queries  queries.CouponQueries
}

func NewCouponHandler(commands commands.CouponCommands, queries queries.CouponQueries) *CouponHandler {
	return &CouponHandler{
		commands: commands,
		queries:  queries,
	}
}

// @Summary Create coupon
// @Description Create a new discount coupon
// @Tags coupons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateCouponRequest true "Coupon request"
// @Success 201 {object} resdto.CouponResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /coupons [post]
func (h *CouponHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.CreateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	id, err := h.commands.Create(c.Request.Context(), req, userID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrCouponCodeTaken):
			c.JSON(http.StatusConflict, gin.H{"error": "Coupon code already exists"})
		case errors.Is(err, commands.ErrInvalidCouponInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCouponView(view))
}

// @Summary List coupons
// @Description List coupons with filtering and pagination
// @Tags coupons
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param kind query string false "Filter by kind"
// @Param status query string false "Filter by status (active|inactive|expired)"
// @Param search query string false "Search in code and description"
// @Success 200 {object} resdto.CouponListResponse
// @Router /coupons [get]
func (h *CouponHandler) List(c *gin.Context) {
	filters := queries.CouponFilters{
		Kind:   queryParam(c, "kind"),
		Status: queryParam(c, "status"),
		Search: queryParam(c, "search"),
	}
	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", queries.DefaultPageLimit)

	items, pageInfo, err := h.queries.List(c.Request.Context(), filters, page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, resdto.FromCouponList(items, pageInfo))
}

// @Summary Get coupon
// @Description Get a coupon by id
// @Tags coupons
// @Produce json
// @Security BearerAuth
// @Param id path string true "Coupon ID"
// @Success 200 {object} resdto.CouponResponse
// @Failure 404 {object} map[string]string
// @Router /coupons/{id} [get]
func (h *CouponHandler) Get(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrCouponNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Coupon not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, resdto.FromCouponView(view))
}

// @Summary Update coupon
// @Description Update coupon details (the code is immutable)
// @Tags coupons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Coupon ID"
// @Param request body reqdto.UpdateCouponRequest true "Coupon update request"
// @Success 200 {object} resdto.CouponResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /coupons/{id} [put]
func (h *CouponHandler) Update(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req reqdto.UpdateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.commands.Update(c.Request.Context(), id, req); err != nil {
		switch {
		case errors.Is(err, commands.ErrCouponNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Coupon not found"})
		case errors.Is(err, commands.ErrInvalidCouponInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, resdto.FromCouponView(view))
}

// @Summary Delete coupon
// @Description Delete a coupon
// @Tags coupons
// @Produce json
// @Security BearerAuth
// @Param id path string true "Coupon ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /coupons/{id} [delete]
func (h *CouponHandler) Delete(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := h.commands.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, commands.ErrCouponNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Coupon not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Coupon deleted successfully"})
}

// @Summary Toggle coupon status
// @Description Flip a coupon between active and inactive
// @Tags coupons
// @Produce json
// @Security BearerAuth
// @Param id path string true "Coupon ID"
// @Success 200 {object} map[string]any
// @Failure 404 {object} map[string]string
// @Router /coupons/{id}/toggle-status [patch]
func (h *CouponHandler) ToggleStatus(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	isActive, err := h.commands.ToggleStatus(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, commands.ErrCouponNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Coupon not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "isActive": isActive})
}

// @Summary Validate coupon
// @Description Dry-run a coupon against a course purchase without redeeming it
// @Tags coupons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ValidateCouponRequest true "Validation request"
// @Success 200 {object} resdto.CouponValidationResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /coupons/validate [post]
func (h *CouponHandler) Validate(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.ValidateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.queries.Validate(c.Request.Context(), req, userID)
	if err != nil {
		h.respondValidationError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCouponValidation(view))
}

// @Summary Apply coupon
// @Description Redeem a coupon against an order
// @Tags coupons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ApplyCouponRequest true "Apply request"
// @Success 200 {object} resdto.ApplyCouponResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /coupons/apply [post]
func (h *CouponHandler) Apply(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.ApplyCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	result, err := h.commands.Apply(c.Request.Context(), req, userID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrCouponNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Coupon not found"})
		case errors.Is(err, commands.ErrCourseNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
		case errors.Is(err, commands.ErrInvalidCouponInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, commands.ErrRedemptionConflict):
			c.JSON(http.StatusConflict, gin.H{"error": "Coupon is being redeemed concurrently, please retry"})
		default:
			if msg, ok := eligibilityMessage(err); ok {
				c.JSON(http.StatusBadRequest, gin.H{"valid": false, "error": msg})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromApplyCouponResult(result))
}

func (h *CouponHandler) respondValidationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, queries.ErrCouponNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Coupon not found"})
	case errors.Is(err, queries.ErrCourseNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
	case errors.Is(err, coupon.ErrInvalidCode):
		c.JSON(http.StatusBadRequest, gin.H{"valid": false, "error": "Invalid coupon code"})
	default:
		if msg, ok := eligibilityMessage(err); ok {
			c.JSON(http.StatusBadRequest, gin.H{"valid": false, "error": msg})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

func eligibilityMessage(err error) (string, bool) {
	switch {
	case errors.Is(err, coupon.ErrInactive):
		return "Coupon is not active", true
	case errors.Is(err, coupon.ErrNotYetActive):
		return "Coupon is not yet active", true
	case errors.Is(err, coupon.ErrExpired):
		return "Coupon has expired", true
	case errors.Is(err, coupon.ErrGlobalLimitReached):
		return "Coupon usage limit reached", true
	case errors.Is(err, coupon.ErrUserLimitReached):
		return "You have already used this coupon the maximum number of times", true
	case errors.Is(err, coupon.ErrNotApplicableToCourse):
		return "Coupon is not applicable to this course", true
	case errors.Is(err, coupon.ErrNotApplicableToCategory):
		return "Coupon is not applicable to this course category", true
	case errors.Is(err, coupon.ErrBelowMinimumAmount):
		return "Purchase amount is below the coupon minimum", true
	default:
		return "", false
	}
}

func queryParam(c *gin.Context, key string) *string {
	if v, ok := c.GetQuery(key); ok && v != "" {
		return &v
	}
	return nil
}

func queryInt(c *gin.Context, key string, fallback int) int {
	v, ok := c.GetQuery(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func pathUUID(c *gin.Context, key string) (uuid.UUID, bool) {
	return parseUUIDParam(c, c.Param(key))
}

func parseUUIDParam(c *gin.Context, raw string) (uuid.UUID, bool) {
	id, err := uuid.Parse(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id format"})
		return uuid.Nil, false
	}
	return id, true
}

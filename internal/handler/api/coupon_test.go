//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"skillforge/internal/domain/coupon"
	"skillforge/internal/domain/user"
	"skillforge/internal/handler/api"
	resdto "skillforge/internal/handler/dto/response"
	"skillforge/internal/usecase/commands"
	"skillforge/internal/usecase/queries"
	"skillforge/tests/common/builder"
	"skillforge/tests/common/httptest"
	"skillforge/tests/common/testutil"
	commandsmock "skillforge/tests/mock/commands"
	queriesmock "skillforge/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CouponHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCouponCommands
	mockQueries  *queriesmock.MockCouponQueries
	handler      *api.CouponHandler
}

func (s *CouponHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCouponCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCouponQueries(s.mockCtrl)
	s.handler = api.NewCouponHandler(s.mockCommands, s.mockQueries)

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("user_id", uuid.New())
		c.Set("user_role", user.RoleAdmin)
		c.Next()
	}

	s.router.POST("/coupons", authMiddleware, s.handler.Create)
	s.router.GET("/coupons", authMiddleware, s.handler.List)
	s.router.GET("/coupons/:id", authMiddleware, s.handler.Get)
	s.router.PUT("/coupons/:id", authMiddleware, s.handler.Update)
	s.router.DELETE("/coupons/:id", authMiddleware, s.handler.Delete)
	s.router.PATCH("/coupons/:id/toggle-status", authMiddleware, s.handler.ToggleStatus)
	s.router.POST("/coupons/validate", authMiddleware, s.handler.Validate)
	s.router.POST("/coupons/apply", authMiddleware, s.handler.Apply)
}

func (s *CouponHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCouponHandlerSuite(t *testing.T) {
	suite.Run(t, new(CouponHandlerTestSuite))
}

type testCaseCoupon struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *CouponHandlerTestSuite) TestCreate() {
	url := "/coupons"

	reqBody := builder.NewCouponBuilder().BuildCreateRequestDTO()
	returnView := builder.NewCouponBuilder().BuildView()

	s.Run("success: returns 201 Created for valid request", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(returnView.ID, nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), returnView.ID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.CouponResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(returnView.ID, response.ID)
		s.Equal(returnView.Code, response.Code)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		validationCases := []testCaseCoupon{
			{name: "missing field: code", mutate: testutil.Field("code", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: kind", mutate: testutil.Field("kind", nil), expectCode: http.StatusBadRequest},
			{name: "invalid kind", mutate: testutil.Field("kind", "bogus"), expectCode: http.StatusBadRequest},
			{name: "negative value", mutate: testutil.Field("value", -5), expectCode: http.StatusBadRequest},
			{name: "invalid scope", mutate: testutil.Field("applicable_to", "everything"), expectCode: http.StatusBadRequest},
		}

		for _, tc := range validationCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "duplicate code",
				commandsError:  commands.ErrCouponCodeTaken,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "already exists",
			},
			{
				name:           "invalid domain input",
				commandsError:  commands.ErrInvalidCouponInput,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(uuid.Nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestList
// ================================================================================

func (s *CouponHandlerTestSuite) TestList() {
	url := "/coupons"

	items := []queries.CouponListItem{
		builder.NewCouponBuilder().BuildListItem(),
		builder.NewCouponBuilder().WithCode("SUMMER10").BuildListItem(),
	}
	pageInfo := queries.NewPageInfo(1, queries.DefaultPageLimit, 2)

	s.Run("success: returns 200 OK with coupon list", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), queries.CouponFilters{}, 1, queries.DefaultPageLimit).
			Return(items, pageInfo, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.CouponListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Coupons, 2)
		s.Equal(int64(2), response.PageInfo.Total)
	})

	s.Run("success: forwards filters and paging", func() {
		status := "active"
		s.mockQueries.EXPECT().
			List(gomock.Any(), queries.CouponFilters{Status: &status}, 2, 5).
			Return(nil, queries.NewPageInfo(2, 5, 0), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?status=active&page=2&limit=5", nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *CouponHandlerTestSuite) TestGet() {
	returnView := builder.NewCouponBuilder().BuildView()
	url := "/coupons/" + returnView.ID.String()

	s.Run("success: returns 200 OK with CouponResponse", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), returnView.ID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.CouponResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(returnView.ID, response.ID)
		s.Equal(returnView.Code, response.Code)
	})

	s.Run("error: 404 Not Found for unknown coupon", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), returnView.ID).
			Return(nil, queries.ErrCouponNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Coupon not found")
	})

	s.Run("error: 400 Bad Request for malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/coupons/not-a-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id format")
	})
}

// ================================================================================
// TestDelete
// ================================================================================

func (s *CouponHandlerTestSuite) TestDelete() {
	couponID := uuid.New()
	url := "/coupons/" + couponID.String()

	s.Run("success: returns 200 OK", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), couponID).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")

		var body map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("Coupon deleted successfully", body["message"])
	})

	s.Run("error: 404 Not Found for unknown coupon", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), couponID).
			Return(commands.ErrCouponNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Coupon not found")
	})
}

// ================================================================================
// TestToggleStatus
// ================================================================================

func (s *CouponHandlerTestSuite) TestToggleStatus() {
	couponID := uuid.New()
	url := "/coupons/" + couponID.String() + "/toggle-status"

	s.Run("success: returns 200 OK with new state", func() {
		s.mockCommands.EXPECT().ToggleStatus(gomock.Any(), couponID).Return(false, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, nil, "bearer-token")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(false, body["isActive"])
	})
}

// ================================================================================
// TestValidate
// ================================================================================

func (s *CouponHandlerTestSuite) TestValidate() {
	url := "/coupons/validate"

	reqBody := map[string]any{
		"code":                "SPRING20",
		"course_id":           uuid.New().String(),
		"course_amount_cents": 10000,
		"currency":            "USD",
	}
	validationView := &queries.CouponValidationView{
		Code:          "SPRING20",
		Kind:          "percentage",
		Value:         20,
		Description:   "Spring sale discount",
		DiscountCents: 2000,
		FinalCents:    8000,
		Currency:      "USD",
	}

	s.Run("success: returns 200 OK with valid=true", func() {
		s.mockQueries.EXPECT().Validate(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(validationView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.CouponValidationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Valid)
		s.Equal(int64(2000), response.DiscountCents)
		s.Equal(int64(8000), response.FinalCents)
	})

	s.Run("error: 404 Not Found for unknown code", func() {
		s.mockQueries.EXPECT().Validate(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, queries.ErrCouponNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Coupon not found")
	})

	s.Run("error: 400 with valid=false for ineligible coupon", func() {
		testCases := []struct {
			name        string
			queriesErr  error
			expectedMsg string
		}{
			{name: "expired", queriesErr: coupon.ErrExpired, expectedMsg: "expired"},
			{name: "inactive", queriesErr: coupon.ErrInactive, expectedMsg: "not active"},
			{name: "usage limit reached", queriesErr: coupon.ErrGlobalLimitReached, expectedMsg: "usage limit"},
			{name: "below minimum", queriesErr: coupon.ErrBelowMinimumAmount, expectedMsg: "minimum"},
			{name: "wrong course", queriesErr: coupon.ErrNotApplicableToCourse, expectedMsg: "not applicable"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockQueries.EXPECT().Validate(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, tc.queriesErr).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, tc.expectedMsg)

				var body map[string]any
				s.NoError(httptest.DecodeResponseBody(s.T(), rec.Body, &body))
				s.Equal(false, body["valid"])
			})
		}
	})
}

// ================================================================================
// TestApply
// ================================================================================

func (s *CouponHandlerTestSuite) TestApply() {
	url := "/coupons/apply"

	reqBody := map[string]any{
		"code":               "SPRING20",
		"course_id":          uuid.New().String(),
		"order_id":           uuid.New().String(),
		"order_amount_cents": 10000,
		"currency":           "USD",
	}
	result := &commands.ApplyCouponResult{
		CouponID:      uuid.New(),
		Code:          "SPRING20",
		DiscountCents: 2000,
		FinalCents:    8000,
		Currency:      "USD",
	}

	s.Run("success: returns 200 OK with redemption result", func() {
		s.mockCommands.EXPECT().Apply(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.ApplyCouponResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(result.CouponID, response.CouponID)
		s.Equal(int64(2000), response.DiscountCents)
		s.Equal(int64(8000), response.FinalCents)
	})

	s.Run("error: 409 Conflict when redemption keeps losing the race", func() {
		s.mockCommands.EXPECT().Apply(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrRedemptionConflict).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "redeemed concurrently")
	})

	s.Run("error: 400 with valid=false for ineligible coupon", func() {
		s.mockCommands.EXPECT().Apply(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, coupon.ErrUserLimitReached).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "already used")
	})

	s.Run("error: 404 Not Found for unknown course", func() {
		s.mockCommands.EXPECT().Apply(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrCourseNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Course not found")
	})
}

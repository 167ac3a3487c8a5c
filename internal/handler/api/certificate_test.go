//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"skillforge/internal/domain/certificate"
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

type CertificateHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCertificateCommands
	mockQueries  *queriesmock.MockCertificateQueries
	handler      *api.CertificateHandler
}

func (s *CertificateHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCertificateCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCertificateQueries(s.mockCtrl)
	s.handler = api.NewCertificateHandler(s.mockCommands, s.mockQueries)

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("user_id", uuid.New())
		c.Set("user_role", user.RoleInstructor)
		c.Next()
	}

	s.router.POST("/certificates/generate", authMiddleware, s.handler.Generate)
	s.router.GET("/certificates", authMiddleware, s.handler.List)
	s.router.GET("/certificates/:id", authMiddleware, s.handler.Get)
	s.router.PUT("/certificates/:id/revoke", authMiddleware, s.handler.UpdateStatus)
	s.router.GET("/certificates/verify/:certificateId", s.handler.Verify)
}

func (s *CertificateHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCertificateHandlerSuite(t *testing.T) {
	suite.Run(t, new(CertificateHandlerTestSuite))
}

// ================================================================================
// TestGenerate
// ================================================================================

func (s *CertificateHandlerTestSuite) TestGenerate() {
	url := "/certificates/generate"

	b := builder.NewCertificateBuilder()
	reqBody := b.BuildGenerateRequestDTO()

	s.Run("success: returns 201 Created for a fresh issuance", func() {
		s.mockCommands.EXPECT().Issue(gomock.Any(), gomock.Any()).
			Return(&commands.IssueCertificateResult{Certificate: b.BuildDomain()}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.GenerateCertificateResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.False(response.AlreadyIssued)
		s.Equal(b.CertificateID, response.Certificate.CertificateID)
		s.Equal("active", response.Certificate.Status)
	})

	s.Run("success: returns 200 OK when already issued", func() {
		s.mockCommands.EXPECT().Issue(gomock.Any(), gomock.Any()).
			Return(&commands.IssueCertificateResult{Certificate: b.BuildDomain(), AlreadyIssued: true}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.GenerateCertificateResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.AlreadyIssued)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		validationCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: course_id", mutate: testutil.Field("course_id", nil)},
			{name: "missing field: student_id", mutate: testutil.Field("student_id", nil)},
			{name: "score above 100", mutate: testutil.Field("score", 101)},
			{name: "negative score", mutate: testutil.Field("score", -1)},
		}

		for _, tc := range validationCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
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
				name:           "enrollment not found",
				commandsError:  commands.ErrEnrollmentNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Enrollment not found",
			},
			{
				name:           "course or user not found",
				commandsError:  commands.ErrReferenceNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Course or user not found",
			},
			{
				name:           "course not completed",
				commandsError:  certificate.ErrCourseNotCompleted,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "not completed",
			},
			{
				name:           "completion in the future",
				commandsError:  certificate.ErrCompletionInFuture,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "in the future",
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
				s.mockCommands.EXPECT().Issue(gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestList
// ================================================================================

func (s *CertificateHandlerTestSuite) TestList() {
	url := "/certificates"

	items := []queries.CertificateView{
		*builder.NewCertificateBuilder().BuildView(),
		*builder.NewCertificateBuilder().WithGrade("B").BuildView(),
	}
	pageInfo := queries.NewPageInfo(1, queries.DefaultPageLimit, 2)

	s.Run("success: returns 200 OK with certificate list", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), queries.CertificateFilters{}, 1, queries.DefaultPageLimit).
			Return(items, pageInfo, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.CertificateListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Certificates, 2)
		s.Equal(int64(2), response.PageInfo.Total)
	})

	s.Run("success: forwards student filter", func() {
		studentID := uuid.New()
		s.mockQueries.EXPECT().
			List(gomock.Any(), queries.CertificateFilters{StudentID: &studentID}, 1, queries.DefaultPageLimit).
			Return(nil, queries.NewPageInfo(1, queries.DefaultPageLimit, 0), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?studentId="+studentID.String(), nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request for malformed course filter", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?courseId=not-a-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id format")
	})
}

// ================================================================================
// TestUpdateStatus
// ================================================================================

func (s *CertificateHandlerTestSuite) TestUpdateStatus() {
	certID := uuid.New()
	url := "/certificates/" + certID.String() + "/revoke"

	s.Run("success: returns 200 OK with revoked certificate", func() {
		revoked := builder.NewCertificateBuilder().
			Revoked("academic misconduct", builder.NewCertificateBuilder().IssuedAt).
			BuildDomain()
		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), certID, gomock.Any()).
			Return(revoked, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url,
			map[string]any{"reason": "academic misconduct"}, "bearer-token")

		var response resdto.CertificateResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("revoked", response.Status)
		s.NotNil(response.RevokedReason)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "certificate not found",
				commandsError:  commands.ErrCertificateNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Certificate not found",
			},
			{
				name:           "missing reason",
				commandsError:  commands.ErrInvalidReasonInput,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "reason is required",
			},
			{
				name:           "already revoked",
				commandsError:  certificate.ErrAlreadyRevoked,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "already revoked",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), certID, gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url,
					map[string]any{"reason": "x"}, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})

	s.Run("error: 400 Bad Request for unknown status value", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url,
			map[string]any{"status": "paused"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

// ================================================================================
// TestVerify
// ================================================================================

func (s *CertificateHandlerTestSuite) TestVerify() {
	certificateID := "CERT-LX2K9M4P-A3F7B"
	url := "/certificates/verify/" + certificateID

	s.Run("success: returns 200 OK with valid=true, no auth required", func() {
		view := builder.NewCertificateBuilder().BuildView()
		s.mockQueries.EXPECT().Verify(gomock.Any(), certificateID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.VerifyCertificateResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Valid)
		s.Equal(certificateID, response.Certificate.CertificateID)
	})

	s.Run("error: 404 with valid=false for unknown or revoked certificate", func() {
		s.mockQueries.EXPECT().Verify(gomock.Any(), certificateID).
			Return(nil, queries.ErrCertificateNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "not found or revoked")

		var body map[string]any
		s.NoError(httptest.DecodeResponseBody(s.T(), rec.Body, &body))
		s.Equal(false, body["valid"])
	})
}

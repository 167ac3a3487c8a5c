package api

import (
	"errors"
	"net/http"

	"skillforge/internal/domain/certificate"
	reqdto "skillforge/internal/handler/dto/request"
	resdto "skillforge/internal/handler/dto/response"
	"skillforge/internal/usecase/commands"
	"skillforge/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CertificateHandler struct {
	commands commands.CertificateCommands
	queries  queries.CertificateQueries
}

func NewCertificateHandler(commands commands.CertificateCommands, queries queries.CertificateQueries) *CertificateHandler {
	return &CertificateHandler{
		commands: commands,
		queries:  queries,
	}
}

// @Summary Generate certificate
// @Description Issue a certificate for a completed course. Returns the
// @Description existing certificate when one was already issued.
// @Tags certificates
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.GenerateCertificateRequest true "Generation request"
// @Success 200 {object} resdto.GenerateCertificateResponse
// @Success 201 {object} resdto.GenerateCertificateResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /certificates/generate [post]
func (h *CertificateHandler) Generate(c *gin.Context) {
	var req reqdto.GenerateCertificateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	result, err := h.commands.Issue(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrEnrollmentNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Enrollment not found"})
		case errors.Is(err, commands.ErrReferenceNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Course or user not found"})
		case errors.Is(err, certificate.ErrCourseNotCompleted):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Course is not completed yet"})
		case errors.Is(err, certificate.ErrCompletionInFuture):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Completion date is in the future"})
		case errors.Is(err, commands.ErrInvalidScoreInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Score must be between 0 and 100"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	status := http.StatusCreated
	if result.AlreadyIssued {
		status = http.StatusOK
	}
	c.JSON(status, resdto.GenerateCertificateResponse{
		Certificate:   resdto.FromCertificate(result.Certificate),
		AlreadyIssued: result.AlreadyIssued,
	})
}

// @Summary List certificates
// @Description List certificates with filtering and pagination
// @Tags certificates
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param courseId query string false "Filter by course"
// @Param studentId query string false "Filter by student"
// @Param status query string false "Filter by status"
// @Param search query string false "Search by student, course or certificate id"
// @Success 200 {object} resdto.CertificateListResponse
// @Router /certificates [get]
func (h *CertificateHandler) List(c *gin.Context) {
	filters := queries.CertificateFilters{
		Status: queryParam(c, "status"),
		Search: queryParam(c, "search"),
	}
	if v := queryParam(c, "courseId"); v != nil {
		id, ok := parseUUIDParam(c, *v)
		if !ok {
			return
		}
		filters.CourseID = &id
	}
	if v := queryParam(c, "studentId"); v != nil {
		id, ok := parseUUIDParam(c, *v)
		if !ok {
			return
		}
		filters.StudentID = &id
	}
	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", queries.DefaultPageLimit)

	items, pageInfo, err := h.queries.List(c.Request.Context(), filters, page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, resdto.FromCertificateList(items, pageInfo))
}

// @Summary Get certificate
// @Description Get a certificate by id
// @Tags certificates
// @Produce json
// @Security BearerAuth
// @Param id path string true "Certificate ID"
// @Success 200 {object} resdto.CertificateResponse
// @Failure 404 {object} map[string]string
// @Router /certificates/{id} [get]
func (h *CertificateHandler) Get(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrCertificateNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Certificate not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, resdto.FromCertificateView(view))
}

// @Summary Update certificate status
// @Description Revoke, reactivate or deactivate a certificate
// @Tags certificates
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Certificate ID"
// @Param request body reqdto.UpdateCertificateStatusRequest true "Status request"
// @Success 200 {object} resdto.CertificateResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /certificates/{id}/revoke [put]
func (h *CertificateHandler) UpdateStatus(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req reqdto.UpdateCertificateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	cert, err := h.commands.UpdateStatus(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrCertificateNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Certificate not found"})
		case errors.Is(err, commands.ErrInvalidReasonInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Revocation reason is required"})
		case errors.Is(err, commands.ErrInvalidStatusInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		case errors.Is(err, certificate.ErrAlreadyRevoked):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Certificate is already revoked"})
		case errors.Is(err, certificate.ErrAlreadyActive):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Certificate is already active"})
		case errors.Is(err, certificate.ErrAlreadyInactive):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Certificate is already inactive"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromCertificate(cert))
}

// @Summary Verify certificate
// @Description Publicly verify a certificate by its printed identifier
// @Tags certificates
// @Produce json
// @Param certificateId path string true "Printed certificate identifier"
// @Success 200 {object} resdto.VerifyCertificateResponse
// @Failure 404 {object} map[string]string
// @Router /certificates/verify/{certificateId} [get]
func (h *CertificateHandler) Verify(c *gin.Context) {
	view, err := h.queries.Verify(c.Request.Context(), c.Param("certificateId"))
	if err != nil {
		if errors.Is(err, queries.ErrCertificateNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"valid": false, "error": "Certificate not found or revoked"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, resdto.VerifyCertificateResponse{
		Valid:       true,
		Certificate: resdto.FromCertificateView(view),
	})
}

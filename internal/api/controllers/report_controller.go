package controllers

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"beacon/internal/config"
	"beacon/internal/models/request_models"
	"beacon/internal/models/response_models"
	"beacon/internal/services"
	"beacon/pkg/middleware"
	"beacon/pkg/utils"
)

// form fields consumed by the binding; everything else goes to Metadata.
var knownReportFields = map[string]bool{
	"title":         true,
	"description":   true,
	"type":          true,
	"location_link": true,
}

type ReportController struct {
	reportService services.ReportServiceInterface
	cfg           *config.Config
}

func NewReportController(reportService services.ReportServiceInterface, cfg *config.Config) *ReportController {
	return &ReportController{
		reportService: reportService,
		cfg:           cfg,
	}
}

// Submit godoc
// @Summary Submit an emergency report
// @Tags Reports
// @Accept mpfd
// @Produce json
// @Param title formData string true "Title"
// @Param description formData string true "Description"
// @Param type formData string true "Emergency type"
// @Param location_link formData string true "Map link to the location"
// @Param photo formData file false "Photo"
// @Success 201 {object} map[string]interface{}
// @Failure 422 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /report-emergency [post]
func (r *ReportController) Submit(c *gin.Context) {
	var req request_models.SubmitReportRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.RespondError(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	input := services.SubmitReportInput{
		Title:        req.Title,
		Description:  req.Description,
		Type:         req.Type,
		LocationLink: req.LocationLink,
		Metadata:     extraFormFields(c),
	}

	if file, err := c.FormFile("photo"); err == nil {
		imagePath := filepath.Join(r.cfg.UploadDir, uuid.New().String()+filepath.Ext(file.Filename))
		if err := c.SaveUploadedFile(file, imagePath); err != nil {
			utils.RespondError(c, http.StatusInternalServerError, "Failed to store uploaded photo")
			return
		}
		input.ImagePath = imagePath
	}

	report, err := r.reportService.Submit(c.Request.Context(), middleware.CurrentAccount(c), input)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"report": response_models.ToReportResponse(report)})
}

func extraFormFields(c *gin.Context) map[string]string {
	extras := map[string]string{}
	if c.Request.PostForm == nil {
		return extras
	}
	for key, values := range c.Request.PostForm {
		if !knownReportFields[key] && len(values) > 0 {
			extras[key] = values[0]
		}
	}
	return extras
}

// ListMine returns the authenticated reporter's own reports.
func (r *ReportController) ListMine(c *gin.Context) {
	reports, err := r.reportService.ListForRole(c.Request.Context(), middleware.CurrentAccount(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": response_models.ToReportResponses(reports)})
}

// ListForResponder returns all reports for moderation.
func (r *ReportController) ListForResponder(c *gin.Context) {
	reports, err := r.reportService.ListForRole(c.Request.Context(), middleware.CurrentAccount(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": response_models.ToReportResponses(reports)})
}

func (r *ReportController) Verify(c *gin.Context) {
	r.transition(c, r.reportService.Verify)
}

func (r *ReportController) Decline(c *gin.Context) {
	r.transition(c, r.reportService.Decline)
}

func (r *ReportController) Resolve(c *gin.Context) {
	r.transition(c, r.reportService.Resolve)
}

func (r *ReportController) transition(c *gin.Context, op services.ReportTransition) {
	reportID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid report ID")
		return
	}

	report, err := op(c.Request.Context(), middleware.CurrentAccount(c), reportID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"report": response_models.ToReportResponse(report)})
}

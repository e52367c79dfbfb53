package request_models

// SubmitReportRequest binds the multipart form posted by the dashboard.
// The photo part is read separately from the form file.
type SubmitReportRequest struct {
	Title        string `form:"title" binding:"required,min=2,max=255"`
	Description  string `form:"description" binding:"required"`
	Type         string `form:"type" binding:"required,oneof=accident fire medical security other"`
	LocationLink string `form:"location_link" binding:"required,url"`
}

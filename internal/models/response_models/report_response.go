package response_models

import "beacon/internal/models/db_models"

type ReportResponse struct {
	ID           string `json:"id"`
	ReporterID   string `json:"reporter_id"`
	ReporterName string `json:"reporter_name,omitempty"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Type         string `json:"type"`
	Status       string `json:"status"`
	LocationLink string `json:"location_link"`
	ImagePath    string `json:"image_path,omitempty"`
	VerifiedBy   string `json:"verified_by,omitempty"`
	ResolvedBy   string `json:"resolved_by,omitempty"`
	CreatedAt    int64  `json:"created_at"`
	UpdatedAt    int64  `json:"updated_at"`
}

func ToReportResponse(r *db_models.EmergencyReport) *ReportResponse {
	resp := &ReportResponse{
		ID:           r.ID.String(),
		ReporterID:   r.ReporterID.String(),
		ReporterName: r.Reporter.Name,
		Title:        r.Title,
		Description:  r.Description,
		Type:         string(r.Type),
		Status:       string(r.Status),
		LocationLink: r.LocationLink,
		ImagePath:    r.ImagePath,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
	if r.VerifiedBy != nil {
		resp.VerifiedBy = r.VerifiedBy.String()
	}
	if r.ResolvedBy != nil {
		resp.ResolvedBy = r.ResolvedBy.String()
	}
	return resp
}

func ToReportResponses(reports []*db_models.EmergencyReport) []*ReportResponse {
	out := make([]*ReportResponse, len(reports))
	for i, r := range reports {
		out[i] = ToReportResponse(r)
	}
	return out
}

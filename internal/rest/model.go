package rest

import "github.com/daniilsolovey/campus-reading/internal/reading"

// ItemResponse wraps a single record.
type ItemResponse[T any] struct {
	Success bool `json:"success"`
	Data    T    `json:"data"`
}

// StatusResponse is returned by deletes and by every failed request.
type StatusResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

type PageRequest struct {
	Page     *int `query:"page"`
	PageSize *int `query:"pageSize"`
}

func (r PageRequest) Pagination() reading.PageRequest {
	return reading.NewPageRequest(r.Page, r.PageSize)
}

type NoticesRequest struct {
	PageRequest
	Search string `query:"search"`
}

func (r *NoticesRequest) Filter() reading.NoticeFilter {
	return reading.NoticeFilter{Search: r.Search}
}

type ReviewsRequest struct {
	PageRequest
	Type      string `query:"type"`
	ProgramID *int   `query:"programId"`
	Search    string `query:"search"`
}

func (r *ReviewsRequest) Filter() reading.ReviewFilter {
	return reading.ReviewFilter{
		Type:      reading.ReviewType(r.Type),
		ProgramID: r.ProgramID,
		Search:    r.Search,
	}
}

type ClassicsRequest struct {
	PageRequest
	Category string `query:"category"`
	Year     *int   `query:"year"`
	Search   string `query:"search"`
}

func (r *ClassicsRequest) Filter() reading.ClassicFilter {
	return reading.ClassicFilter{
		Category: r.Category,
		Year:     r.Year,
		Search:   r.Search,
	}
}

type ProgramsRequest struct {
	PageRequest
	Category string `query:"category"`
	Status   string `query:"status"`
	Search   string `query:"search"`
}

func (r *ProgramsRequest) Filter() reading.ProgramFilter {
	return reading.ProgramFilter{
		Category: r.Category,
		Status:   r.Status,
		Search:   r.Search,
	}
}

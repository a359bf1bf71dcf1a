package rpc

import "github.com/daniilsolovey/campus-reading/internal/reading"

type PageQuery struct {
	//page=1 page number (1-based)
	Page *int `json:"page,omitempty"`
	//pageSize=10 items per page
	PageSize *int `json:"pageSize,omitempty"`
}

func (q PageQuery) ToModel() (reading.PageRequest, error) {
	req := reading.NewPageRequest(q.Page, q.PageSize)
	return req, req.Validate()
}

type NoticesQuery struct {
	PageQuery
	Search string `json:"search,omitempty"`
}

func (q NoticesQuery) Filter() reading.NoticeFilter {
	return reading.NoticeFilter{Search: q.Search}
}

type ReviewsQuery struct {
	PageQuery
	//type program or ogeoseo
	Type      string `json:"type,omitempty"`
	ProgramID *int   `json:"programId,omitempty"`
	Search    string `json:"search,omitempty"`
}

func (q ReviewsQuery) Filter() reading.ReviewFilter {
	return reading.ReviewFilter{
		Type:      reading.ReviewType(q.Type),
		ProgramID: q.ProgramID,
		Search:    q.Search,
	}
}

type ClassicsQuery struct {
	PageQuery
	Category string `json:"category,omitempty"`
	Year     *int   `json:"year,omitempty"`
	Search   string `json:"search,omitempty"`
}

func (q ClassicsQuery) Filter() reading.ClassicFilter {
	return reading.ClassicFilter{
		Category: q.Category,
		Year:     q.Year,
		Search:   q.Search,
	}
}

type ProgramsQuery struct {
	PageQuery
	Category string `json:"category,omitempty"`
	//status recruiting, ongoing or closed
	Status string `json:"status,omitempty"`
	Search string `json:"search,omitempty"`
}

func (q ProgramsQuery) Filter() reading.ProgramFilter {
	return reading.ProgramFilter{
		Category: q.Category,
		Status:   q.Status,
		Search:   q.Search,
	}
}

type (
	NoticesPage  = reading.Page[reading.Notice]
	ReviewsPage  = reading.Page[reading.Review]
	ClassicsPage = reading.Page[reading.Classic]
	ProgramsPage = reading.Page[reading.Program]
)

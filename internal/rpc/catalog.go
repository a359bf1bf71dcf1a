package rpc

import (
	"context"

	"github.com/vmkteam/zenrpc/v2"

	"github.com/daniilsolovey/campus-reading/internal/reading"
)

//go:generate zenrpc

// CatalogService provides read-only RPC access to the collections.
type CatalogService struct {
	zenrpc.Service
	manager *reading.Manager
}

func NewCatalogService(manager *reading.Manager) *CatalogService {
	return &CatalogService{manager: manager}
}

// Notices lists notices, important ones first, then newest first.
//
//zenrpc:query optional filter and pagination
//zenrpc:return page of notices
//zenrpc:400 invalid pagination
//zenrpc:500 internal server error
func (s CatalogService) Notices(ctx context.Context, query NoticesQuery) (*NoticesPage, error) {
	req, err := query.ToModel()
	if err != nil {
		return nil, zenrpc.NewStringError(400, err.Error())
	}

	page, err := s.manager.Notices.List(ctx, query.Filter(), req)
	if err != nil {
		return nil, err
	}

	return &page, nil
}

// Reviews lists reviews in store order.
//
//zenrpc:query optional filter and pagination
//zenrpc:return page of reviews
//zenrpc:400 invalid pagination
//zenrpc:500 internal server error
func (s CatalogService) Reviews(ctx context.Context, query ReviewsQuery) (*ReviewsPage, error) {
	req, err := query.ToModel()
	if err != nil {
		return nil, zenrpc.NewStringError(400, err.Error())
	}

	page, err := s.manager.Reviews.List(ctx, query.Filter(), req)
	if err != nil {
		return nil, err
	}

	return &page, nil
}

// Classics lists the classics catalog.
//
//zenrpc:query optional filter and pagination
//zenrpc:return page of classics
//zenrpc:400 invalid pagination
//zenrpc:500 internal server error
func (s CatalogService) Classics(ctx context.Context, query ClassicsQuery) (*ClassicsPage, error) {
	req, err := query.ToModel()
	if err != nil {
		return nil, zenrpc.NewStringError(400, err.Error())
	}

	page, err := s.manager.Classics.List(ctx, query.Filter(), req)
	if err != nil {
		return nil, err
	}

	return &page, nil
}

// Programs lists reading programs.
//
//zenrpc:query optional filter and pagination
//zenrpc:return page of programs
//zenrpc:400 invalid pagination
//zenrpc:500 internal server error
func (s CatalogService) Programs(ctx context.Context, query ProgramsQuery) (*ProgramsPage, error) {
	req, err := query.ToModel()
	if err != nil {
		return nil, zenrpc.NewStringError(400, err.Error())
	}

	page, err := s.manager.Programs.List(ctx, query.Filter(), req)
	if err != nil {
		return nil, err
	}

	return &page, nil
}

// Stats returns the size of every collection.
//
//zenrpc:return collection sizes
//zenrpc:500 internal server error
func (s CatalogService) Stats(ctx context.Context) (*reading.Stats, error) {
	stats, err := s.manager.Stats(ctx)
	if err != nil {
		return nil, err
	}

	return &stats, nil
}

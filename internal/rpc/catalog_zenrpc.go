package rpc

import (
	"context"
	"encoding/json"

	"github.com/vmkteam/zenrpc/v2"
	"github.com/vmkteam/zenrpc/v2/smd"
)

// RPC holds the method names of the registered services.
var RPC = struct {
	CatalogService struct{ Notices, Reviews, Classics, Programs, Stats string }
}{
	CatalogService: struct{ Notices, Reviews, Classics, Programs, Stats string }{
		Notices:  "notices",
		Reviews:  "reviews",
		Classics: "classics",
		Programs: "programs",
		Stats:    "stats",
	},
}

func (CatalogService) SMD() smd.ServiceInfo {
	return smd.ServiceInfo{
		Methods: map[string]smd.Service{
			"Notices": {
				Description: `Notices lists notices, important ones first, then newest first.`,
				Parameters: []smd.JSONSchema{
					{
						Name:        "query",
						Optional:    true,
						Description: `optional filter and pagination`,
						Type:        smd.Object,
					},
				},
				Returns: smd.JSONSchema{
					Description: `page of notices`,
					Optional:    true,
					Type:        smd.Object,
				},
				Errors: map[int]string{
					400: "invalid pagination",
					500: "internal server error",
				},
			},
			"Reviews": {
				Description: `Reviews lists reviews in store order.`,
				Parameters: []smd.JSONSchema{
					{
						Name:        "query",
						Optional:    true,
						Description: `optional filter and pagination`,
						Type:        smd.Object,
					},
				},
				Returns: smd.JSONSchema{
					Description: `page of reviews`,
					Optional:    true,
					Type:        smd.Object,
				},
				Errors: map[int]string{
					400: "invalid pagination",
					500: "internal server error",
				},
			},
			"Classics": {
				Description: `Classics lists the classics catalog.`,
				Parameters: []smd.JSONSchema{
					{
						Name:        "query",
						Optional:    true,
						Description: `optional filter and pagination`,
						Type:        smd.Object,
					},
				},
				Returns: smd.JSONSchema{
					Description: `page of classics`,
					Optional:    true,
					Type:        smd.Object,
				},
				Errors: map[int]string{
					400: "invalid pagination",
					500: "internal server error",
				},
			},
			"Programs": {
				Description: `Programs lists reading programs.`,
				Parameters: []smd.JSONSchema{
					{
						Name:        "query",
						Optional:    true,
						Description: `optional filter and pagination`,
						Type:        smd.Object,
					},
				},
				Returns: smd.JSONSchema{
					Description: `page of programs`,
					Optional:    true,
					Type:        smd.Object,
				},
				Errors: map[int]string{
					400: "invalid pagination",
					500: "internal server error",
				},
			},
			"Stats": {
				Description: `Stats returns the size of every collection.`,
				Parameters:  []smd.JSONSchema{},
				Returns: smd.JSONSchema{
					Description: `collection sizes`,
					Optional:    true,
					Type:        smd.Object,
				},
				Errors: map[int]string{
					500: "internal server error",
				},
			},
		},
	}
}

// Invoke dispatches a call of the catalog namespace to its method.
func (s CatalogService) Invoke(ctx context.Context, method string, params json.RawMessage) zenrpc.Response {
	resp := zenrpc.Response{}
	var err error

	switch method {
	case RPC.CatalogService.Notices:
		var args = struct {
			Query NoticesQuery `json:"query"`
		}{}

		if zenrpc.IsArray(params) {
			if params, err = zenrpc.ConvertToObject([]string{"query"}, params); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		if len(params) > 0 {
			if err := json.Unmarshal(params, &args); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		resp.Set(s.Notices(ctx, args.Query))

	case RPC.CatalogService.Reviews:
		var args = struct {
			Query ReviewsQuery `json:"query"`
		}{}

		if zenrpc.IsArray(params) {
			if params, err = zenrpc.ConvertToObject([]string{"query"}, params); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		if len(params) > 0 {
			if err := json.Unmarshal(params, &args); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		resp.Set(s.Reviews(ctx, args.Query))

	case RPC.CatalogService.Classics:
		var args = struct {
			Query ClassicsQuery `json:"query"`
		}{}

		if zenrpc.IsArray(params) {
			if params, err = zenrpc.ConvertToObject([]string{"query"}, params); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		if len(params) > 0 {
			if err := json.Unmarshal(params, &args); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		resp.Set(s.Classics(ctx, args.Query))

	case RPC.CatalogService.Programs:
		var args = struct {
			Query ProgramsQuery `json:"query"`
		}{}

		if zenrpc.IsArray(params) {
			if params, err = zenrpc.ConvertToObject([]string{"query"}, params); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		if len(params) > 0 {
			if err := json.Unmarshal(params, &args); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		resp.Set(s.Programs(ctx, args.Query))

	case RPC.CatalogService.Stats:
		resp.Set(s.Stats(ctx))

	default:
		resp = zenrpc.NewResponseError(nil, zenrpc.MethodNotFound, "", nil)
	}

	return resp
}

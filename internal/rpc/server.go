package rpc

import (
	"log/slog"
	"net/http"

	middleware "github.com/vmkteam/zenrpc-middleware"
	"github.com/vmkteam/zenrpc/v2"

	"github.com/daniilsolovey/campus-reading/internal/reading"
)

// New returns the JSON-RPC 2.0 server with the catalog namespace registered.
func New(logger *slog.Logger, manager *reading.Manager) http.Handler {
	rpcService := NewCatalogService(manager)
	rpcServer := zenrpc.NewServer(zenrpc.Options{ExposeSMD: true})
	rpcServer.Register("catalog", rpcService)
	rpcServer.Use(middleware.WithSLog(logger.InfoContext, "campus-reading", nil))

	return rpcServer
}

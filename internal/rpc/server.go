package rpc

import (
	"log/slog"

	middleware "github.com/vmkteam/zenrpc-middleware"
	"github.com/vmkteam/zenrpc/v2"

	"github.com/daniilsolovey/cms/internal/cms"
)

func New(logger *slog.Logger, manager cms.IManager) *zenrpc.Server {
	rpcService := NewArticleService(manager)
	rpcServer := zenrpc.NewServer(zenrpc.Options{ExposeSMD: true})
	rpcServer.Register("articles", rpcService)
	rpcServer.Use(middleware.WithSLog(logger.InfoContext, "cms", nil))

	return rpcServer
}

package server

import (
	"context"
	"fmt"

	"github.com/NeuralTrust/ToolFinder/pkg/config"
	"github.com/NeuralTrust/ToolFinder/pkg/server/router"
	"github.com/sirupsen/logrus"
)

type (
	APIServerDI struct {
		Config  *config.Config
		Logger  *logrus.Logger
		Routers []router.ServerRouter
	}
	APIServer struct {
		*BaseServer
	}
)

func NewAPIServer(di APIServerDI) *APIServer {
	s := &APIServer{
		BaseServer: NewBaseServer(di.Config, di.Logger),
	}
	s.setupHealthCheck()
	s.WithRouters(di.Routers...)
	return s
}

func (s *APIServer) Run() error {
	s.setupMetricsEndpoint()

	addr := fmt.Sprintf("%s:%d", s.Config.Server.Host, s.Config.Server.Port)
	s.Logger.WithField("addr", addr).Info("starting toolfinder server")
	return s.Router.Listen(addr)
}

func (s *APIServer) Shutdown(ctx context.Context) error {
	s.Logger.Info("shutting down toolfinder server")
	return s.shutdown(ctx)
}

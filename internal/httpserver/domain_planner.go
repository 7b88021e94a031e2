package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"smart-day-planner/internal/middleware"
	plannerHTTP "smart-day-planner/internal/planner/delivery/http"
)

// setupPlannerDomain registers the planner domain routes.
func (srv *HTTPServer) setupPlannerDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	h := plannerHTTP.New(srv.l, srv.plannerUC)

	// Registers /api/v1/planner/...
	plannerHTTP.RegisterRoutes(api.Group("/planner"), h, mw)

	srv.l.Infof(ctx, "Planner domain registered")
	return nil
}

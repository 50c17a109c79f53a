package server

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/oaksmart/pos-ledger/internal/analytics"
	"github.com/oaksmart/pos-ledger/internal/product"
	"github.com/oaksmart/pos-ledger/internal/sale"
	"github.com/oaksmart/pos-ledger/internal/syncer"
	"github.com/oaksmart/pos-ledger/internal/user"
)

// Server is the command/query boundary of the terminal: the UI calls these
// endpoints and renders the results; it never reaches into the ledger
// directly.
type Server struct {
	echo      *echo.Echo
	sales     sale.UseCase
	syncUC    syncer.UseCase
	analytics analytics.UseCase
	products  product.UseCase
	users     user.UseCase
	logger    *zap.Logger
}

func NewServer(
	sales sale.UseCase,
	syncUC syncer.UseCase,
	analyticsUC analytics.UseCase,
	products product.UseCase,
	users user.UseCase,
	logger *zap.Logger,
) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	s := &Server{
		echo:      e,
		sales:     sales,
		syncUC:    syncUC,
		analytics: analyticsUC,
		products:  products,
		users:     users,
		logger:    logger,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	api := s.echo.Group("/api")

	api.GET("/health", s.health)

	api.POST("/auth/login", s.login)
	api.POST("/auth/users", s.createUser)
	api.POST("/auth/change_pin", s.changePin)
	api.GET("/users", s.listUsers)

	api.GET("/products", s.listProducts)
	api.POST("/products", s.upsertProduct)
	api.GET("/products/:barcode/movements", s.listMovements)

	api.POST("/sales", s.recordSale)
	api.POST("/sync", s.sync)

	api.GET("/analytics/summary", s.analyticsSummary)
	api.POST("/analytics/suggest", s.suggestReorder)
}

func (s *Server) Start(addr string) error {
	return s.echo.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/relaycrm/relay/internal/config"
	dealdomain "github.com/relaycrm/relay/internal/deal/domain"
	revenuedomain "github.com/relaycrm/relay/internal/revenue/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var Module = fx.Module("server",
	fx.Provide(NewEngine),
	fx.Provide(NewServer),
	fx.Invoke(func(s *Server, e *gin.Engine) {
		s.RegisterRoutes(e)
	}),
	fx.Invoke(RunHTTP),
)

type Params struct {
	fx.In

	Cfg        config.Config
	Log        *zap.Logger
	DB         *gorm.DB
	DealSvc    dealdomain.Service
	RevenueSvc revenuedomain.Service
}

type Server struct {
	cfg        config.Config
	log        *zap.Logger
	db         *gorm.DB
	dealSvc    dealdomain.Service
	revenueSvc revenuedomain.Service
}

func NewServer(p Params) *Server {
	return &Server{
		cfg:        p.Cfg,
		log:        p.Log.Named("server"),
		db:         p.DB,
		dealSvc:    p.DealSvc,
		revenueSvc: p.RevenueSvc,
	}
}

func NewEngine(cfg config.Config, log *zap.Logger) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	e := gin.New()
	e.Use(gin.Recovery())
	e.Use(requestMetrics())
	if cfg.Clock.AllowSimulated {
		e.Use(simulatedClock(log))
	}

	corsCfg := cors.DefaultConfig()
	if len(cfg.HTTP.AllowedOrigins) > 0 {
		corsCfg.AllowOrigins = cfg.HTTP.AllowedOrigins
	} else {
		corsCfg.AllowAllOrigins = true
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "X-Simulated-Time")
	e.Use(cors.New(corsCfg))

	return e
}

func (s *Server) RegisterRoutes(e *gin.Engine) {
	e.GET("/readyz", s.Readiness)
	e.GET("/metrics", metricsHandler())

	v1 := e.Group("/v1")
	{
		deals := v1.Group("/deals")
		deals.POST("", s.CreateDeal)
		deals.GET("", s.ListDeals)
		deals.GET("/:id", s.GetDealByID)
		deals.PATCH("/:id", s.UpdateDeal)
		deals.DELETE("/:id", s.DeleteDeal)

		deals.GET("/:id/revenue-schedule", s.GetDealRevenueSchedule)
		deals.PUT("/:id/revenue-items", s.UpsertRevenueItem)
		deals.DELETE("/:id/revenue-items/:month/:item_type", s.DeleteRevenueItem)
	}
}

func RunHTTP(lc fx.Lifecycle, e *gin.Engine, cfg config.Config, log *zap.Logger) {
	srv := &http.Server{
		Addr:    cfg.HTTP.Addr,
		Handler: e,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("http server starting", zap.String("addr", cfg.HTTP.Addr))
			go func() {
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("http server failed", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

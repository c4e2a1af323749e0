package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"

	"github.com/districtclose/districtclose/internal/assistant"
	"github.com/districtclose/districtclose/internal/auth"
	authdomain "github.com/districtclose/districtclose/internal/auth/domain"
	"github.com/districtclose/districtclose/internal/config"
	"github.com/districtclose/districtclose/internal/document"
	documentdomain "github.com/districtclose/districtclose/internal/document/domain"
	"github.com/districtclose/districtclose/internal/financials"
	financialsdomain "github.com/districtclose/districtclose/internal/financials/domain"
	"github.com/districtclose/districtclose/internal/invite"
	invitedomain "github.com/districtclose/districtclose/internal/invite/domain"
	"github.com/districtclose/districtclose/internal/milestone"
	milestonedomain "github.com/districtclose/districtclose/internal/milestone/domain"
	"github.com/districtclose/districtclose/internal/observability"
	obslogger "github.com/districtclose/districtclose/internal/observability/logger"
	obsmetrics "github.com/districtclose/districtclose/internal/observability/metrics"
	obstracing "github.com/districtclose/districtclose/internal/observability/tracing"
	"github.com/districtclose/districtclose/internal/onboarding"
	onboardingdomain "github.com/districtclose/districtclose/internal/onboarding/domain"
	"github.com/districtclose/districtclose/internal/providers/email"
	"github.com/districtclose/districtclose/internal/ratelimit"
	"github.com/districtclose/districtclose/internal/transaction"
	txdomain "github.com/districtclose/districtclose/internal/transaction/domain"
)

var Module = fx.Module("http.server",
	auth.Module,
	transaction.Module,
	milestone.Module,
	document.Module,
	financials.Module,
	invite.Module,
	email.Module,
	assistant.Module,
	onboarding.Module,
	ratelimit.Module,
	fx.Provide(registerGin),
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine(obsCfg observability.Config, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(obslogger.GinMiddleware(obslogger.MiddlewareConfig{
		Debug: obsCfg.Debug(),
	}))
	r.Use(obstracing.GinMiddleware())
	r.Use(obsmetrics.GinMiddleware(httpMetrics))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func registerGin(obsCfg observability.Config, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	return NewEngine(obsCfg, httpMetrics)
}

func run(lc fx.Lifecycle, cfg config.Config, r *gin.Engine) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					panic(err)
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

type Server struct {
	engine        *gin.Engine
	cfg           config.Config
	authsvc       authdomain.Service
	txsvc         txdomain.Service
	milestonesvc  milestonedomain.Service
	documentsvc   documentdomain.Service
	financialssvc financialsdomain.Service
	invitesvc     invitedomain.Service
	assistantsvc  *assistant.Service
	onboardingsvc onboardingdomain.Service
	chatLimiter   *ratelimit.ChatLimiter
}

type ServerParams struct {
	fx.In

	Gin           *gin.Engine
	Cfg           config.Config
	Authsvc       authdomain.Service
	Txsvc         txdomain.Service
	Milestonesvc  milestonedomain.Service
	Documentsvc   documentdomain.Service
	Financialssvc financialsdomain.Service
	Invitesvc     invitedomain.Service
	Assistantsvc  *assistant.Service
	Onboardingsvc onboardingdomain.Service
	ChatLimiter   *ratelimit.ChatLimiter `optional:"true"`
}

func NewServer(p ServerParams) *Server {
	svc := &Server{
		engine:        p.Gin,
		cfg:           p.Cfg,
		authsvc:       p.Authsvc,
		txsvc:         p.Txsvc,
		milestonesvc:  p.Milestonesvc,
		documentsvc:   p.Documentsvc,
		financialssvc: p.Financialssvc,
		invitesvc:     p.Invitesvc,
		assistantsvc:  p.Assistantsvc,
		onboardingsvc: p.Onboardingsvc,
		chatLimiter:   p.ChatLimiter,
	}

	svc.registerAuthRoutes()
	svc.registerJoinRoutes()
	svc.registerAPIRoutes()

	return svc
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerAuthRoutes() {
	auth := s.engine.Group("/auth")

	auth.POST("/signup", s.SignUp)
	auth.POST("/login", s.Login)
	auth.POST("/logout", s.Logout)
	auth.GET("/me", s.AuthRequired(), s.Me)
}

// Join routes live outside /api: the resolution page is reachable from an
// email link before the invitee has an account.
func (s *Server) registerJoinRoutes() {
	s.engine.GET("/join", s.ResolveInvite)
	s.engine.POST("/join", s.AuthRequired(), s.JoinTransaction)
}

func (s *Server) registerAPIRoutes() {
	api := s.engine.Group("/api")

	// Taxes are public: the calculator works without an account.
	api.POST("/taxes/calculate", s.CalculateTaxes)

	api.Use(s.AuthRequired())

	// -------- Transactions --------
	api.GET("/transactions", s.ListTransactions)
	api.POST("/transactions", s.CreateTransaction)
	api.GET("/transactions/:id", s.GetTransaction)
	api.PATCH("/transactions/:id", s.UpdateTransaction)
	api.POST("/transactions/:id/close", s.CloseTransaction)

	// -------- Invites --------
	api.POST("/transactions/:id/invite", s.SendInvite)
	api.GET("/transactions/:id/invites", s.ListInvites)

	// -------- Milestones --------
	api.GET("/transactions/:id/milestones", s.ListMilestones)
	api.GET("/transactions/:id/milestones/progress", s.MilestoneProgress)
	api.PATCH("/transactions/:id/milestones/:milestoneID", s.UpdateMilestoneStatus)

	// -------- Documents --------
	api.GET("/transactions/:id/documents", s.ListDocuments)
	api.POST("/transactions/:id/documents/:documentID/link", s.LinkDocument)
	api.DELETE("/transactions/:id/documents/:documentID/link", s.UnlinkDocument)
	api.PATCH("/transactions/:id/documents/:documentID", s.SetDocumentStatus)

	// -------- Financials --------
	api.GET("/transactions/:id/financials", s.GetFinancials)
	api.PUT("/transactions/:id/financials", s.UpsertFinancials)

	// -------- Assistant --------
	api.POST("/chat", s.ChatRateLimit(), s.Chat)

	// -------- Onboarding --------
	api.GET("/onboarding", s.GetOnboarding)
	api.PATCH("/onboarding", s.UpdateOnboarding)
	api.POST("/onboarding/next", s.AdvanceOnboarding)
	api.POST("/onboarding/back", s.RewindOnboarding)
}

package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
	"github.com/robfig/cron/v3"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/noah-isme/scholarship-portal-api/api/swagger"
	"github.com/noah-isme/scholarship-portal-api/internal/handler"
	internalmiddleware "github.com/noah-isme/scholarship-portal-api/internal/middleware"
	"github.com/noah-isme/scholarship-portal-api/internal/models"
	"github.com/noah-isme/scholarship-portal-api/internal/repository"
	"github.com/noah-isme/scholarship-portal-api/internal/service"
	"github.com/noah-isme/scholarship-portal-api/pkg/apiclient"
	"github.com/noah-isme/scholarship-portal-api/pkg/cache"
	"github.com/noah-isme/scholarship-portal-api/pkg/config"
	"github.com/noah-isme/scholarship-portal-api/pkg/database"
	"github.com/noah-isme/scholarship-portal-api/pkg/jobs"
	"github.com/noah-isme/scholarship-portal-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/scholarship-portal-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/scholarship-portal-api/pkg/middleware/requestid"
	"github.com/noah-isme/scholarship-portal-api/pkg/notify"
	"github.com/noah-isme/scholarship-portal-api/pkg/storage"
)

// @title Scholarship Portal Gateway
// @version 1.0.0
// @description Backend-for-frontend gateway in front of the scholarship API
// @BasePath /api/v1
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	validate := validator.New()
	metricsSvc := service.NewMetricsService()
	checks := map[string]handler.Pinger{}

	client := apiclient.New(apiclient.Config{
		BaseURL:  cfg.Backend.InternalURL + cfg.APIPrefix,
		Timeout:  cfg.Backend.Timeout,
		Logger:   logr,
		Recorder: metricsSvc,
	})

	// Sessions and the reference cache share Redis; without it the gateway
	// falls back to process memory and an uncached reference service.
	var kv repository.KeyValueStore
	var cacheRepo service.CacheRepository
	redisClient, err := cache.NewRedis(ctx, cfg.Redis)
	if err != nil {
		logr.Warn("redis unavailable, using in-memory session store", zap.Error(err))
		kv = repository.NewMemoryStore()
	} else {
		defer redisClient.Close() //nolint:errcheck
		kv = repository.NewSessionRepository(redisClient)
		cacheRepo = repository.NewCacheRepository(redisClient, logr)
		checks["redis"] = func(ctx context.Context) error { return redisClient.Ping(ctx).Err() }
	}
	cacheSvc := service.NewCacheService(cacheRepo, metricsSvc, cfg.Reference.CacheTTL, logr, cfg.Reference.CacheEnabled && cacheRepo != nil)

	var auditRepo *repository.AuditLogRepository
	if cfg.Audit.Enabled {
		db, err := database.NewPostgres(ctx, cfg.Database)
		if err != nil {
			logr.Fatal("failed to connect audit database", zap.Error(err))
		}
		defer db.Close() //nolint:errcheck
		if err := database.Migrate(ctx, db); err != nil {
			logr.Fatal("failed to migrate audit schema", zap.Error(err))
		}
		auditRepo = repository.NewAuditLogRepository(db)
		checks["postgres"] = pingDB(db)
	}

	// repositories
	applicationRepo := repository.NewApplicationRepository(client)
	rankingRepo := repository.NewRankingRepository(client)
	rosterRepo := repository.NewRosterRepository(client)
	referenceRepo := repository.NewReferenceRepository(client)
	userRepo := repository.NewUserRepository(client)
	trailRepo := repository.NewAuditTrailRepository(client)
	relationshipRepo := repository.NewRelationshipRepository(client)
	emailRepo := repository.NewEmailRepository(client)
	profileRepo := repository.NewProfileRepository(client)

	// services
	authSvc := service.NewAuthService(service.AuthConfig{Secret: cfg.JWT.Secret}, logr)
	profileSvc := service.NewProfileService(profileRepo, validate)
	sessionStore := service.NewKVSessionStore(kv, cfg.Session.KeyPrefix, cfg.Session.TTL)
	sessionSvc := service.NewSessionService(sessionStore, authSvc, profileSvc, cfg.Session, cfg.Env, validate, logr)
	referenceSvc := service.NewReferenceDataService(referenceRepo, cacheSvc, cfg.Reference.CacheTTL, logr)
	collegeSvc := service.NewCollegeReviewService(applicationRepo, rankingRepo, referenceSvc, validate, logr)
	professorSvc := service.NewProfessorReviewService(applicationRepo, validate, logr)
	rosterSvc := service.NewRosterService(rosterRepo, validate, logr)
	trailSvc := service.NewAuditTrailService(trailRepo)
	userSvc := service.NewUserManagementService(userRepo, referenceSvc, validate, logr)
	relationshipSvc := service.NewRelationshipService(relationshipRepo, validate)
	emailSvc := service.NewEmailScheduleService(emailRepo, logr)
	uploadSvc := service.NewUploadProxyService(client, cfg.Upload.MaxFileSizeBytes, logr)

	fileStore, err := storage.NewLocalStorage(cfg.Exports.StorageDir)
	if err != nil {
		logr.Fatal("failed to prepare export storage", zap.Error(err))
	}
	signer := storage.NewSignedURLSigner(cfg.Exports.SignedURLSecret, cfg.Exports.SignedURLTTL)
	exportSvc := service.NewExportService(rankingRepo, rosterRepo, fileStore, signer, service.ExportConfig{
		APIPrefix: cfg.APIPrefix,
		ResultTTL: cfg.Exports.SignedURLTTL,
	}, logr)

	workers := cfg.Notifications.Workers
	if workers <= 0 {
		workers = 1
	}
	queue := jobs.NewQueue("notifications", jobs.QueueConfig{
		Workers:    workers,
		MaxRetries: cfg.Notifications.MaxRetries,
		Logger:     logr,
	})
	notificationSvc := service.NewNotificationService(queue, notify.NewMailer(cfg.Notifications, logr), service.NotificationConfig{
		Enabled:    cfg.Notifications.Enabled,
		Recipients: cfg.Notifications.Recipients,
	}, metricsSvc, logr)
	queue.Start(ctx)
	defer queue.Stop()

	if cfg.Roster.Enabled {
		scheduler, err := service.NewRosterScheduler(rosterSvc, notificationSvc, service.RosterScheduleConfig{
			Spec:            cfg.Roster.Cron,
			ServiceToken:    cfg.Roster.ServiceToken,
			ScholarshipCode: cfg.Roster.ScholarshipCode,
		}, logr)
		if err != nil {
			logr.Fatal("invalid roster schedule", zap.Error(err))
		}
		scheduler.Start()
		defer scheduler.Stop()
		logr.Info("roster schedule enabled", zap.Time("next_run", scheduler.NextRun()))
	}

	housekeeping := cron.New()
	if _, err := housekeeping.AddFunc("@hourly", func() {
		removed, err := exportSvc.Cleanup(0)
		if err != nil {
			logr.Warn("export cleanup failed", zap.Error(err))
			return
		}
		if len(removed) > 0 {
			logr.Info("expired exports removed", zap.Int("count", len(removed)))
		}
	}); err != nil {
		logr.Fatal("failed to schedule export cleanup", zap.Error(err))
	}
	if auditRepo != nil && cfg.Audit.Retention > 0 {
		if _, err := housekeeping.AddFunc("@daily", func() {
			pruned, err := auditRepo.DeleteOlderThan(context.Background(), time.Now().Add(-cfg.Audit.Retention))
			if err != nil {
				logr.Warn("audit log pruning failed", zap.Error(err))
				return
			}
			logr.Info("audit log pruned", zap.Int64("rows", pruned))
		}); err != nil {
			logr.Fatal("failed to schedule audit pruning", zap.Error(err))
		}
	}
	housekeeping.Start()
	defer housekeeping.Stop()

	// handlers
	sessionHandler := handler.NewSessionHandler(sessionSvc, handler.SessionCookie{
		Name:   cfg.Session.CookieName,
		MaxAge: int(cfg.Session.TTL.Seconds()),
		Secure: cfg.Env == config.EnvProduction,
	})
	metricsHandler := handler.NewMetricsHandler(metricsSvc, handler.PublicConfig{
		Env:        cfg.Env,
		APIBaseURL: cfg.Backend.PublicBaseURL(cfg.Env, cfg.APIPrefix),
		LoginURL:   sessionSvc.LoginRedirect(),
	}, checks)
	referenceHandler := handler.NewReferenceHandler(referenceSvc)
	collegeHandler := handler.NewCollegeReviewHandler(collegeSvc, exportSvc)
	professorHandler := handler.NewProfessorReviewHandler(professorSvc)
	rosterHandler := handler.NewRosterHandler(rosterSvc, exportSvc)
	userHandler := handler.NewUserHandler(userSvc)
	profileHandler := handler.NewProfileHandler(profileSvc)
	uploadHandler := handler.NewUploadHandler(uploadSvc)
	exportHandler := handler.NewExportHandler(exportSvc)
	var auditWriter internalmiddleware.AuditWriter
	if auditRepo != nil {
		auditWriter = auditRepo
	}
	adminHandler := newAdminHandler(relationshipSvc, emailSvc, trailSvc, auditRepo)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(internalmiddleware.Metrics(metricsSvc))
	r.Use(internalmiddleware.WithResponseMeta())

	r.GET("/health", metricsHandler.Health)
	r.GET("/metrics", metricsHandler.Prometheus)
	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	cookie := cfg.Session.CookieName
	if cookie == "" {
		cookie = "portal_session"
	}
	authRequired := internalmiddleware.JWT(authSvc, sessionSvc, cookie)
	// attribution only: the session endpoints must work without a live session
	actor := internalmiddleware.OptionalJWT(authSvc, sessionSvc, cookie)
	audit := func(action, resource string) gin.HandlerFunc {
		return internalmiddleware.Audit(auditWriter, logr, action, resource)
	}
	can := internalmiddleware.RequireCapability

	api := r.Group(cfg.APIPrefix)
	api.GET("/config", metricsHandler.Config)

	api.POST("/auth/session", audit(models.AuditActionLogin, "session"), sessionHandler.Login)
	api.GET("/auth/session", sessionHandler.Restore)
	api.DELETE("/auth/session", actor, audit(models.AuditActionLogout, "session"), sessionHandler.Logout)
	api.PATCH("/auth/session/user", actor, audit(models.AuditActionUpdate, "session_user"), sessionHandler.UpdateUser)

	// Authorization is checked by the upload proxy itself so its error
	// messages reach the browser unchanged.
	api.POST("/scholarships/:type/upload-terms", audit(models.AuditActionUpload, "scholarship_terms"), uploadHandler.UploadTerms)
	api.GET("/exports/:token", exportHandler.Download)

	secured := api.Group("")
	secured.Use(authRequired)

	reference := secured.Group("/reference")
	reference.GET("/scholarships", referenceHandler.Scholarships)
	reference.GET("/sub-type-translations", referenceHandler.SubTypeTranslations)
	reference.GET("/permissions", referenceHandler.Permissions)
	reference.GET("/my-scholarships", referenceHandler.MyScholarships)
	reference.POST("/invalidate", can(models.CapConfigManage), referenceHandler.Invalidate)

	secured.GET("/user-profiles/me", profileHandler.Get)
	secured.PATCH("/user-profiles/me", audit(models.AuditActionUpdate, "profile"), profileHandler.Update)

	college := secured.Group("/college-review")
	college.GET("/applications", can(models.CapCollegeReview), collegeHandler.ListApplications)
	college.POST("/applications/:id/approve", can(models.CapCollegeReview), audit(models.AuditActionUpdate, "application"), collegeHandler.Approve)
	college.POST("/applications/:id/reject", can(models.CapCollegeReview), audit(models.AuditActionUpdate, "application"), collegeHandler.Reject)
	college.POST("/applications/:id/request-documents", can(models.CapCollegeReview), audit(models.AuditActionUpdate, "application"), collegeHandler.RequestDocuments)
	college.GET("/rankings", can(models.CapRanking), collegeHandler.ListRankings)
	college.POST("/rankings", can(models.CapRanking), audit(models.AuditActionCreate, "ranking"), collegeHandler.CreateRanking)
	college.GET("/rankings/:id", can(models.CapRanking), collegeHandler.GetRanking)
	college.PUT("/rankings/:id/order", can(models.CapRanking), audit(models.AuditActionUpdate, "ranking"), collegeHandler.UpdateRankingOrder)
	college.POST("/rankings/:id/distribute", can(models.CapDistribution), audit(models.AuditActionExecute, "ranking"), collegeHandler.ExecuteDistribution)
	college.POST("/rankings/:id/finalize", can(models.CapDistribution), audit(models.AuditActionExecute, "ranking"), collegeHandler.FinalizeRanking)
	college.POST("/rankings/:id/export", can(models.CapRanking), audit(models.AuditActionExport, "ranking"), collegeHandler.ExportRanking)
	college.GET("/quota-status", can(models.CapRanking), collegeHandler.QuotaStatus)
	college.GET("/available-periods", can(models.CapRanking), collegeHandler.AvailablePeriods)
	college.POST("/workflow-snapshot", can(models.CapRanking), audit(models.AuditActionExport, "workflow"), collegeHandler.ExportSnapshot)

	professor := secured.Group("/professor", can(models.CapRecommend))
	professor.GET("/applications", professorHandler.ListApplications)
	professor.GET("/applications/:id/sub-types", professorHandler.SubTypes)
	professor.POST("/applications/:id/review", audit(models.AuditActionCreate, "professor_review"), professorHandler.Submit)

	rosters := secured.Group("/rosters", can(models.CapRosterManage))
	rosters.GET("", rosterHandler.List)
	rosters.GET("/periods", rosterHandler.Periods)
	rosters.GET("/configurations", rosterHandler.Configurations)
	rosters.POST("/generate", audit(models.AuditActionCreate, "roster"), rosterHandler.Generate)
	rosters.GET("/:id", rosterHandler.Get)
	rosters.POST("/:id/lock", audit(models.AuditActionUpdate, "roster"), rosterHandler.Lock)
	rosters.POST("/:id/unlock", audit(models.AuditActionUpdate, "roster"), rosterHandler.Unlock)
	rosters.GET("/:id/download", rosterHandler.Download)
	rosters.POST("/:id/export", audit(models.AuditActionExport, "roster"), rosterHandler.Export)

	secured.GET("/applications/:id/audit-trail", can(models.CapAuditView), adminHandler.ApplicationTrail)

	users := secured.Group("/users", can(models.CapUserManage))
	users.GET("", userHandler.List)
	users.POST("", audit(models.AuditActionCreate, "user"), userHandler.Create)
	users.GET("/:id", userHandler.Get)
	users.PUT("/:id", audit(models.AuditActionUpdate, "user"), userHandler.Update)
	users.DELETE("/:id", audit(models.AuditActionDelete, "user"), userHandler.Delete)
	users.GET("/:id/scholarship-permissions", userHandler.Permissions)
	users.PUT("/:id/scholarship-permissions", audit(models.AuditActionUpdate, "scholarship_permission"), userHandler.UpdatePermissions)

	admin := secured.Group("/admin")
	admin.GET("/professor-student", can(models.CapRelationManage), adminHandler.ListRelationships)
	admin.POST("/professor-student", can(models.CapRelationManage), audit(models.AuditActionCreate, "relationship"), adminHandler.CreateRelationship)
	admin.PUT("/professor-student/:id", can(models.CapRelationManage), audit(models.AuditActionUpdate, "relationship"), adminHandler.UpdateRelationship)
	admin.DELETE("/professor-student/:id", can(models.CapRelationManage), audit(models.AuditActionDelete, "relationship"), adminHandler.DeleteRelationship)
	admin.GET("/scheduled-emails", can(models.CapEmailManage), adminHandler.ListScheduledEmails)
	admin.PATCH("/scheduled-emails/:id/approve", can(models.CapEmailManage), audit(models.AuditActionUpdate, "scheduled_email"), adminHandler.ApproveScheduledEmail)
	admin.PATCH("/scheduled-emails/:id/cancel", can(models.CapEmailManage), audit(models.AuditActionUpdate, "scheduled_email"), adminHandler.CancelScheduledEmail)
	admin.GET("/audit-logs", can(models.CapAuditView), adminHandler.AuditLogs)
	// gateway rows expose every caller's address and agent
	admin.GET("/gateway-audit", internalmiddleware.RequireRoles(models.RoleSuperAdmin), adminHandler.GatewayAuditLogs)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		logr.Sugar().Infow("server starting", "addr", srv.Addr, "env", cfg.Env, "backend", cfg.Backend.InternalURL)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Sugar().Fatalw("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Warn("graceful shutdown failed", zap.Error(err))
	}
	logr.Info("server stopped")
}

func pingDB(db *sqlx.DB) handler.Pinger {
	return func(ctx context.Context) error { return db.PingContext(ctx) }
}

// newAdminHandler keeps a nil repository from becoming a non-nil interface.
func newAdminHandler(relationships *service.RelationshipService, emails *service.EmailScheduleService, trail *service.AuditTrailService, gatewayAudit *repository.AuditLogRepository) *handler.AdminHandler {
	if gatewayAudit == nil {
		return handler.NewAdminHandler(relationships, emails, trail, nil)
	}
	return handler.NewAdminHandler(relationships, emails, trail, gatewayAudit)
}

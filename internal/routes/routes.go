package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/profile-catalog/internal/audit"
	"github.com/BruksfildServices01/profile-catalog/internal/config"
	"github.com/BruksfildServices01/profile-catalog/internal/handlers"
	infraRepo "github.com/BruksfildServices01/profile-catalog/internal/infra/repository"
	"github.com/BruksfildServices01/profile-catalog/internal/middleware"
	"github.com/BruksfildServices01/profile-catalog/internal/storage"
	ucProfile "github.com/BruksfildServices01/profile-catalog/internal/usecase/profile"
	ucService "github.com/BruksfildServices01/profile-catalog/internal/usecase/service"
)

type Deps struct {
	DB     *gorm.DB
	Config *config.Config
	Store  storage.Store
	// Cache may be nil.
	Cache ucService.Cache
}

func RegisterRoutes(r *gin.Engine, deps Deps) {
	cfg := deps.Config

	// ======================================================
	// INFRA
	// ======================================================
	repo := infraRepo.NewCatalogGormRepository(deps.DB)
	auditLogger := audit.New(deps.DB)

	// ======================================================
	// USE CASES: PROFILES
	// ======================================================
	listProfilesUC := ucProfile.NewListProfiles(repo, cfg.Timezone)
	getProfileUC := ucProfile.NewGetProfile(repo, cfg.Timezone)

	adminProfileUC := handlers.AdminProfileUseCases{
		Create:        ucProfile.NewCreateProfile(repo, auditLogger, cfg.Timezone),
		Update:        ucProfile.NewUpdateProfile(repo, auditLogger, cfg.Timezone),
		Delete:        ucProfile.NewDeleteProfile(repo, deps.Store, auditLogger),
		AddPhoto:      ucProfile.NewAddPhoto(repo, deps.Store, auditLogger),
		DeletePhoto:   ucProfile.NewDeletePhoto(repo, deps.Store, auditLogger),
		AddPrice:      ucProfile.NewAddPrice(repo, auditLogger),
		UpdatePrice:   ucProfile.NewUpdatePrice(repo, auditLogger),
		DeletePrice:   ucProfile.NewDeletePrice(repo, auditLogger),
		LinkService:   ucProfile.NewLinkService(repo, auditLogger),
		UnlinkService: ucProfile.NewUnlinkService(repo, auditLogger),
	}

	// ======================================================
	// USE CASES: SERVICES
	// ======================================================
	listServicesUC := ucService.NewListServices(repo, deps.Cache)
	getServiceUC := ucService.NewGetService(repo)
	createServiceUC := ucService.NewCreateService(repo, deps.Cache, auditLogger)
	updateServiceUC := ucService.NewUpdateService(repo, deps.Cache, auditLogger)
	deleteServiceUC := ucService.NewDeleteService(repo, deps.Cache, auditLogger)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(cfg)
	profileHandler := handlers.NewProfileHandler(listProfilesUC, getProfileUC)
	serviceHandler := handlers.NewServiceHandler(listServicesUC, getServiceUC)
	vocabularyHandler := handlers.NewVocabularyHandler()

	adminProfileHandler := handlers.NewAdminProfileHandler(adminProfileUC)
	adminServiceHandler := handlers.NewAdminServiceHandler(createServiceUC, updateServiceUC, deleteServiceUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(auditLogger)

	// ======================================================
	// STATIC PHOTOS
	// ======================================================
	if cfg.StorageDriver == "local" {
		r.Static("/photos", cfg.PhotoDir)
	}

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.GET("/profiles", profileHandler.List)
		api.GET("/profiles/:id", profileHandler.Get)

		api.GET("/services", serviceHandler.List)
		api.GET("/services/:id", serviceHandler.Get)

		api.GET("/vocabularies", vocabularyHandler.List)

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// ADMIN
		// ------------------------------
		admin := api.Group("/admin")
		admin.Use(middleware.AdminAuth(cfg))
		{
			admin.POST("/profiles", adminProfileHandler.Create)
			admin.PUT("/profiles/:id", adminProfileHandler.Update)
			admin.DELETE("/profiles/:id", adminProfileHandler.Delete)

			admin.POST("/profiles/:id/photos", adminProfileHandler.AddPhoto)
			admin.DELETE("/photos/:id", adminProfileHandler.DeletePhoto)

			admin.POST("/profiles/:id/prices", adminProfileHandler.AddPrice)
			admin.PUT("/prices/:id", adminProfileHandler.UpdatePrice)
			admin.DELETE("/prices/:id", adminProfileHandler.DeletePrice)

			admin.PUT("/profiles/:id/services/:service_id", adminProfileHandler.LinkService)
			admin.DELETE("/profiles/:id/services/:service_id", adminProfileHandler.UnlinkService)

			admin.POST("/services", adminServiceHandler.Create)
			admin.PUT("/services/:id", adminServiceHandler.Update)
			admin.DELETE("/services/:id", adminServiceHandler.Delete)

			admin.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}

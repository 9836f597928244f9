package router

import (
	"github.com/changhyeonkim/tutor-board/go-api-server/internal/admin"
	"github.com/changhyeonkim/tutor-board/go-api-server/internal/board"
	"github.com/changhyeonkim/tutor-board/go-api-server/internal/config"
	"github.com/changhyeonkim/tutor-board/go-api-server/internal/housekeeping"
	"github.com/changhyeonkim/tutor-board/go-api-server/internal/listing"
	"github.com/changhyeonkim/tutor-board/go-api-server/internal/meta"
	"github.com/changhyeonkim/tutor-board/go-api-server/internal/shared/database"
	"github.com/changhyeonkim/tutor-board/go-api-server/internal/shared/mail"
	"github.com/changhyeonkim/tutor-board/go-api-server/internal/shared/middleware"
	"github.com/changhyeonkim/tutor-board/go-api-server/internal/shared/token"
	"github.com/changhyeonkim/tutor-board/go-api-server/internal/wizard"
	"github.com/gin-gonic/gin"
)

// Deps are built once in main and shared with background jobs.
type Deps struct {
	DB                *database.DB
	Boards            *board.Registry
	ListingRepository *listing.ListingRepository
	Purger            *housekeeping.Purger
}

// Setup configures all application-specific routes using dependency injection
func Setup(router *gin.Engine, cfg *config.Config, deps Deps) {
	metaHandler := meta.NewHandler(cfg, deps.DB, deps.Boards)
	router.GET("/health", metaHandler.Health)

	// shared services
	tokenManager := token.NewJWTManager(cfg)
	mailer := mail.New(cfg)

	// service
	listingService := listing.NewListingService(deps.DB.DB, deps.ListingRepository, deps.Boards, tokenManager, mailer, cfg)
	adminService := admin.NewAdminService(deps.DB.DB, deps.ListingRepository, deps.Boards, deps.Purger)

	// handler
	boardHandler := board.NewBoardHandler(deps.Boards)
	wizardHandler := wizard.NewWizardHandler(deps.Boards)
	listingHandler := listing.NewListingHandler(listingService)
	adminHandler := admin.NewAdminHandler(adminService)

	v1 := router.Group("/api/v1")

	boardsV1 := v1.Group("/boards")
	{
		boardsV1.GET("", boardHandler.List)
		boardsV1.GET("/:board", boardHandler.Get)
		boardsV1.POST("/:board/wizard/steps", wizardHandler.Steps)
		boardsV1.POST("/:board/wizard/advance", wizardHandler.Advance)
		boardsV1.GET("/:board/listings", listingHandler.Search)
		boardsV1.POST("/:board/listings", listingHandler.Create)
	}

	listingsV1 := v1.Group("/listings")
	{
		listingsV1.GET("/:id", listingHandler.Get)
		listingsV1.POST("/:id/verify", listingHandler.Verify)
	}

	// mutations need the edit session opened by /verify
	editV1 := v1.Group("/listings/:id")
	editV1.Use(middleware.EditSession(tokenManager))
	{
		editV1.PATCH("", listingHandler.Update)
		editV1.PUT("/status", listingHandler.ChangeStatus)
		editV1.PUT("/feedback", listingHandler.SubmitFeedback)
	}

	adminV1 := v1.Group("/admin")
	adminV1.Use(middleware.Admin(tokenManager))
	{
		adminV1.GET("/stats", adminHandler.Stats)
		adminV1.POST("/housekeeping/purge", adminHandler.Purge)
	}
}

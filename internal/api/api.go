package api

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/viper"

	"github.com/shutterclub/photocontest/internal/api/controller"
	"github.com/shutterclub/photocontest/internal/domain"
	"github.com/shutterclub/photocontest/internal/pkg/constants"
	"github.com/shutterclub/photocontest/internal/pkg/logger"
	"github.com/shutterclub/photocontest/internal/pkg/storage"
	"github.com/shutterclub/photocontest/internal/pkg/store"
	"github.com/shutterclub/photocontest/internal/service/auth"
	"github.com/shutterclub/photocontest/internal/service/contest"
	"github.com/shutterclub/photocontest/internal/service/entry"
	"github.com/shutterclub/photocontest/internal/service/export"
	"github.com/shutterclub/photocontest/internal/service/gallery"
	"github.com/shutterclub/photocontest/internal/service/judge"
)

type APIService struct {
	router *echo.Echo
	store  store.Store
}

func (svc *APIService) Serve(addr string) {
	logger.Fatal(context.Background(), svc.router.Start(addr))
}

func (svc *APIService) Shutdown(ctx context.Context) error {
	return svc.router.Shutdown(ctx)
}

func NewAPIService(store store.Store, blobs storage.Store, mediaDir string) (*APIService, error) {
	svc := &APIService{router: echo.New(), store: store}

	svc.router.Validator = NewValidator()
	svc.router.Binder = NewBinder()
	svc.router.JSONSerializer = NewSerializer()
	svc.router.Use(middleware.Logger())
	svc.router.HTTPErrorHandler = httpErrorHandler
	svc.router.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{viper.GetString(constants.ViperKeyCORSOrigin)},
		AllowMethods:     []string{echo.GET, echo.PUT, echo.POST, echo.DELETE},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	cntrl := controller.NewController(
		auth.NewAuthService(store),
		contest.NewContestService(store),
		entry.NewEntryService(store, blobs),
		gallery.NewGalleryService(store),
		judge.NewJudgeService(store),
		export.NewExportService(store),
		store,
	)

	svc.router.Static("/media", mediaDir)

	api := svc.router.Group("/api/v1")

	authGroup := api.Group("/auth")
	authGroup.POST("/signup", cntrl.Signup)
	authGroup.POST("/login", cntrl.Login)
	authGroup.DELETE("/logout", cntrl.Logout)
	authGroup.GET("/me", cntrl.Me, svc.AuthMiddleware)

	contests := api.Group("/contests")
	contests.GET("/list", cntrl.ListContests)
	contests.GET("/current", cntrl.CurrentContest)

	api.GET("/categories/list", cntrl.ListCategories)

	api.GET("/gallery", cntrl.Gallery)

	entries := api.Group("/entries")
	entries.POST("/photo", cntrl.UploadPhoto, svc.AuthMiddleware)
	entries.POST("/series", cntrl.UploadSeries, svc.AuthMiddleware)
	entries.GET("/mine", cntrl.MyWorks, svc.AuthMiddleware)
	entries.GET("/:id", cntrl.EntryDetail, svc.OptionalAuthMiddleware)
	entries.DELETE("/:id", cntrl.DeleteEntry, svc.AuthMiddleware)
	entries.POST("/:id/like", cntrl.Like, svc.AuthMiddleware)
	entries.DELETE("/:id/like", cntrl.Unlike, svc.AuthMiddleware)
	entries.GET("/:id/comments", cntrl.ListComments)
	entries.POST("/:id/comments", cntrl.AddComment, svc.AuthMiddleware)

	judgeGroup := api.Group("/judge", svc.AuthMiddleware, svc.RequireRole(domain.RoleJudge, domain.RoleAdmin))
	judgeGroup.GET("/entries", cntrl.JudgeEntries)
	judgeGroup.POST("/scores", cntrl.SubmitScore)

	admin := api.Group("/admin", svc.AuthMiddleware, svc.RequireRole(domain.RoleAdmin))
	admin.GET("/users", cntrl.ListUsers)
	admin.POST("/users/role", cntrl.SetUserRole)
	admin.GET("/export/rows", cntrl.ExportRows)
	admin.GET("/export/csv", cntrl.ExportCSV)

	return svc, nil
}

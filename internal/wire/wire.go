package wire

import (
	"Chronicle/internal/api"
	"Chronicle/internal/api/handler"
	"Chronicle/internal/job"
	"Chronicle/internal/pkg/cron"
	"Chronicle/internal/repository"
	"Chronicle/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationContainer holds every top level component the app runs on.
type ApplicationContainer struct {
	Router  *gin.Engine
	DB      *gorm.DB
	CronMgr *cron.Manager
}

func BuildApplication(db *gorm.DB) (*ApplicationContainer, error) {
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	locationRepo := repository.NewLocationRepository(db)
	userRepo := repository.NewUserRepo(db)

	postService := service.NewPostService(postRepo, categoryRepo, locationRepo, userRepo)
	commentService := service.NewCommentService(commentRepo, postRepo)
	categoryService := service.NewCategoryService(categoryRepo)
	locationService := service.NewLocationService(locationRepo)
	userService := service.NewUserService(userRepo)

	handlers := &api.HandlersGroup{
		PostHandler:     handler.NewPostHandler(postService),
		CommentHandler:  handler.NewCommentHandler(commentService),
		CategoryHandler: handler.NewCategoryHandler(categoryService),
		LocationHandler: handler.NewLocationHandler(locationService),
		UserHandler:     handler.NewUserHandler(userService),
		MediaHandler:    handler.NewMediaHandler(),
	}

	router := api.SetupRouter(handlers)

	purgeJob := job.NewPostPurgeJob(postRepo)
	cronMgr := cron.NewCronManager(purgeJob)

	return &ApplicationContainer{
		Router:  router,
		DB:      db,
		CronMgr: cronMgr,
	}, nil
}

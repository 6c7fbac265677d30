package main

import (
	"log"

	"github.com/pressfeedhq/pressfeed/config"
	"github.com/pressfeedhq/pressfeed/db"
	"github.com/pressfeedhq/pressfeed/server"
	"github.com/pressfeedhq/pressfeed/services"
)

func main() {
	conf, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	gormDB := db.GetDB(conf)
	if err := db.SeedGroups(gormDB.DB); err != nil {
		log.Fatalf("error seeding groups: %v", err)
	}

	authRepo := db.NewAuthRepo(gormDB)
	postRepo := db.NewPostRepo(gormDB)
	groupRepo := db.NewGroupRepo(gormDB)
	commentRepo := db.NewCommentRepo(gormDB)
	followRepo := db.NewFollowRepo(gormDB)

	authService := services.NewAuthService(authRepo, conf)
	feedService := services.NewFeedService(postRepo, groupRepo, authRepo, followRepo, conf)
	postService := services.NewPostService(postRepo, groupRepo, commentRepo, conf)
	followService := services.NewFollowService(followRepo, authRepo, conf)
	commentService := services.NewCommentService(commentRepo, postRepo, conf)
	mediaService := services.NewMediaService(conf)

	s := &server.Server{
		Config:          conf,
		AuthRepository:  authRepo,
		GroupRepository: groupRepo,
		AuthService:     authService,
		FeedService:     feedService,
		PostService:     postService,
		FollowService:   followService,
		CommentService:  commentService,
		MediaService:    mediaService,
	}

	s.Start()
}

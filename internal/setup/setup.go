// Package setup builds the dependency graph of the api server.
package setup

import (
	"github.com/talkboard-dev/talkboard/internal/config"
	"github.com/talkboard-dev/talkboard/internal/handler"
	"github.com/talkboard-dev/talkboard/internal/jwt"
	mw "github.com/talkboard-dev/talkboard/internal/middleware"
	"github.com/talkboard-dev/talkboard/internal/service"
	"github.com/talkboard-dev/talkboard/internal/storage/pg"
	"github.com/talkboard-dev/talkboard/internal/utils"
)

type Dependencies struct {
	Storage        *pg.Storage
	Handler        *handler.Handler
	AuthMiddleware *mw.Auth
}

func Setup(cfg *config.Config) (*Dependencies, error) {
	storage, err := pg.New(cfg)
	if err != nil {
		return nil, err
	}

	jwtService := jwt.New(cfg.JwtKey(), cfg.JwtTTL())
	cascade := service.NewCascade(storage)

	userValidator := &utils.UserValidator{}
	threadValidator := &utils.ThreadValidator{MaxTitleLen: cfg.Public.MaxTitleLen, MaxTextLen: cfg.Public.MaxTextLen}
	postValidator := &utils.PostValidator{MaxTextLen: cfg.Public.MaxTextLen}

	authService := service.NewAuth(storage, jwtService, userValidator)
	userService := service.NewUser(storage, cascade, userValidator, cfg.Public.PageSize)
	threadService := service.NewThread(storage, cascade, threadValidator, cfg.Public.PageSize)
	postService := service.NewPost(storage, cascade, postValidator, cfg.Public.PageSize)

	h := handler.New(authService, userService, threadService, postService, cfg, storage)
	authMw := mw.NewAuth(jwtService, storage)

	return &Dependencies{
		Storage:        storage,
		Handler:        h,
		AuthMiddleware: authMw,
	}, nil
}

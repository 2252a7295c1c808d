package app

import (
	"github.com/blogicum/blogicum/internal/middleware"
	"github.com/blogicum/blogicum/internal/modules/admin"
	"github.com/blogicum/blogicum/internal/modules/auth/user"
	"github.com/blogicum/blogicum/internal/modules/content/category"
	"github.com/blogicum/blogicum/internal/modules/content/location"
	"github.com/blogicum/blogicum/internal/modules/content/post"
)

func (a *App) registerRoutes(site *admin.Site) error {
	postSvc := post.NewService(a.db)
	postH := post.NewHandler(postSvc)
	categoryH := category.NewHandler(category.NewService(a.db))
	locationH := location.NewHandler(location.NewService(a.db))
	userH := user.NewHandler(user.NewService(a.db, a.cfg.Admin.TokenTTL), a.logger)

	postH.RegisterPublicRoutes(a.router)

	api := a.router.Group(AdminPrefix)
	userH.RegisterLoginRoute(api)

	authed := api.Group("", middleware.Auth(a.db))
	site.Configure(a.cfg.Admin)
	if err := site.Mount(authed, a.db, a.logger); err != nil {
		return err
	}
	postH.RegisterAdminRoutes(authed)
	categoryH.RegisterAdminRoutes(authed)
	locationH.RegisterAdminRoutes(authed)
	userH.RegisterAdminRoutes(authed)

	a.router.NoRoute(notFound)
	a.router.NoMethod(methodNotAllowed)
	return nil
}

package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/anyrite/pixelblog-be/internal/api/handlers"
	"github.com/anyrite/pixelblog-be/internal/auth"
	"github.com/anyrite/pixelblog-be/internal/services"
	"github.com/anyrite/pixelblog-be/internal/store"
)

// NewRouter creates and configures a new Chi router.
func NewRouter(
	corsOrigins []string,
	tokens *auth.TokenService,
	users store.UserStore,
	userService services.UserServiceProvider,
	articleService services.ArticleServiceProvider,
	commentService services.CommentServiceProvider,
	likeService services.LikeServiceProvider,
) *chi.Mux {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   corsOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Initialize handlers
	userHandler := handlers.NewUserHandler(userService, tokens)
	articleHandler := handlers.NewArticleHandler(articleService)
	commentHandler := handlers.NewCommentHandler(commentService)
	likeHandler := handlers.NewLikeHandler(likeService)

	requireAuth := auth.Middleware(tokens, users)

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", userHandler.Register)
			r.Post("/login", userHandler.Login)
			r.With(requireAuth).Get("/me", userHandler.GetMe)
		})

		r.Route("/articles", func(r chi.Router) {
			r.Get("/", articleHandler.List)
			r.With(requireAuth).Post("/", articleHandler.Create)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", articleHandler.Get)
				r.With(requireAuth).Put("/", articleHandler.Update)
				r.With(requireAuth).Delete("/", articleHandler.Delete)

				r.Get("/comments", commentHandler.List)
				r.With(requireAuth).Post("/comments", commentHandler.Create)

				r.With(requireAuth).Post("/like", likeHandler.Like)
				r.With(requireAuth).Delete("/like", likeHandler.Unlike)
				r.With(requireAuth).Get("/is-liked", likeHandler.IsLiked)
			})
		})

		r.Get("/users/{username}", userHandler.GetProfile)
	})

	return r
}

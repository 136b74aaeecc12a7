package routes

import (
	"net/http"

	"socialapp/auth"
	"socialapp/handlers"
	"socialapp/monitoring"
	"socialapp/repositories"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handlers bundles everything SetupRoutes wires into the router.
type Handlers struct {
	Auth   *handlers.AuthHandler
	User   *handlers.UserHandler
	Post   *handlers.PostHandler
	Follow *handlers.FollowHandler
	Like   *handlers.LikeHandler
	System *handlers.SystemHandler
}

// SetupRoutes initializes all the application routes
// The routing logic is isolated here
func SetupRoutes(h Handlers, tokens *auth.Manager, users repositories.UserRepository) http.Handler {
	router := mux.NewRouter()

	// Public routes
	router.HandleFunc("/api/auth/register", h.Auth.Register).Methods("POST")
	router.HandleFunc("/api/auth/login", h.Auth.Login).Methods("POST")
	router.HandleFunc("/healthz", h.System.Healthz).Methods("GET")
	router.Handle("/metrics", promhttp.Handler()).Methods("GET")

	// Authenticated API
	api := router.PathPrefix("/api").Subrouter()
	api.Use(auth.RequireAuth(tokens, users))

	api.HandleFunc("/users/{id:[0-9]+}", h.User.GetByID).Methods("GET")
	api.HandleFunc("/users/by-username/{username}", h.User.GetByUsername).Methods("GET")

	api.HandleFunc("/posts", h.Post.Create).Methods("POST")
	api.HandleFunc("/posts/{id:[0-9]+}", h.Post.GetByID).Methods("GET")
	api.HandleFunc("/posts/by-author/{authorId:[0-9]+}", h.Post.ListByAuthor).Methods("GET")
	api.HandleFunc("/posts/feed/{userId:[0-9]+}", h.Post.Feed).Methods("GET")

	api.HandleFunc("/follows", h.Follow.Follow).Methods("POST")
	api.HandleFunc("/follows", h.Follow.Unfollow).Methods("DELETE")
	api.HandleFunc("/follows/following/{userId:[0-9]+}", h.Follow.ListFollowing).Methods("GET")
	api.HandleFunc("/follows/followers/{userId:[0-9]+}", h.Follow.ListFollowers).Methods("GET")

	api.HandleFunc("/likes", h.Like.Like).Methods("POST")
	api.HandleFunc("/likes", h.Like.Unlike).Methods("DELETE")
	api.HandleFunc("/likes/count/{postId:[0-9]+}", h.Like.Count).Methods("GET")
	api.HandleFunc("/likes/check", h.Like.Check).Methods("GET")

	return monitoring.InstrumentHandler(router)
}

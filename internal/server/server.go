/*
Package server implements the application's network transport layer.
It initializes the HTTP server, configures timeouts, and wires the
recommendation handlers into the router.
*/
package server

import (
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"nutricoach/internal/recommend"

	_ "github.com/joho/godotenv/autoload"
	"github.com/labstack/echo/v4"
)

// Server defines the configuration and dependencies for the HTTP service.
type Server struct {
	// port specifies the TCP port the server will listen on.
	port int

	// recommender serves the recommendation flow.
	recommender *recommend.Handler

	// Echo is the underlying web framework instance.
	*echo.Echo
}

// NewServer initializes a new Server instance and returns a configured
// *http.Server. It reads the port from the environment and sets
// production-ready network timeouts.
func NewServer(recommender *recommend.Handler) *http.Server {
	// Attempt to parse port from environment; fallback to 10000 if not set or invalid.
	port, err := strconv.Atoi(os.Getenv("PORT"))
	if err != nil || port == 0 {
		port = 10000
	}

	newApp := &Server{
		port:        port,
		recommender: recommender,
	}

	// WriteTimeout must exceed the provider's 30s request timeout, or slow
	// completions get cut off mid-response.
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", newApp.port),
		Handler:      newApp.RegisterRoutes(), // Injected from routes.go
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	return server
}

package httpkit

import (
	"compress/flate"
	"net/http"

	"backr/internal/platform/net/middleware"
)

// CommonStack returns a baseline per scope middleware slice.
// Compose with auth middleware as needed in main
func CommonStack() []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		middleware.RequestID(),
		middleware.RealIP(),
		middleware.RecoverJSON,
		middleware.NoCache(),
		middleware.Logger(),
		middleware.CORS(middleware.CORSOptions{}),
		middleware.Compress(flate.BestSpeed),
	}
}

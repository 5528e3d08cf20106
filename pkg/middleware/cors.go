package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// Cors libera as origens configuradas em ALLOWED_ORIGINS
func Cors(allowedOrigins []string) func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins:       allowedOrigins,
		AllowedMethods:       []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:       []string{"Accept", "Authorization", "Content-Type", "X-Correlation-ID", "X-Solcast-Api-Key"},
		ExposedHeaders:       []string{"X-Correlation-ID"},
		AllowCredentials:     true,
		MaxAge:               86400, // Cache do CORS por 24 horas
		OptionsSuccessStatus: http.StatusOK,
	})

	return c.Handler
}

// Package middleware provides HTTP middleware for the presentation layer.
package middleware

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORSMiddleware provides CORS configuration for the site frontend and the
// visual authoring tool dev servers
func CORSMiddleware() gin.HandlerFunc {
	config := cors.Config{
		AllowOrigins: []string{
			"http://localhost:3000",
			"http://localhost:4321",
			"http://127.0.0.1:3000",
			"http://127.0.0.1:4321",
			"http://[::1]:3000", // IPv6 localhost
			"http://[::1]:4321", // IPv6 localhost
		},
		AllowMethods: []string{
			"GET", "POST", "OPTIONS",
		},
		AllowHeaders: []string{
			"Origin", "Content-Type", "Accept", "Authorization",
			"X-Requested-With", "X-Quillstack-Edit-Session",
		},
		AllowCredentials: true,
		ExposeHeaders: []string{
			"Content-Type",
		},
	}

	return cors.New(config)
}

package api

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Router struct {
	Engine *gin.Engine
}

func NewRouter(
	aiHandler *AIHandler,
	emailHandler *EmailHandler,
) *Router {
	r := gin.Default()

	// Allow all origins in development
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowOriginFunc = func(origin string) bool { return true }
	corsCfg.AllowCredentials = true
	r.Use(cors.New(corsCfg))
	r.Use(MetricsMiddleware())

	r.GET("/ping", emailHandler.Ping)
	r.POST("/api/ai/generate/stream", aiHandler.StreamGenerate)
	r.POST("/api/email/send", emailHandler.Send)
	r.GET("/api/email/get-all", emailHandler.GetAll)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return &Router{Engine: r}
}

func (r *Router) Run(port string) error {
	return r.Engine.Run(port)
}

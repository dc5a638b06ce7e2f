package main

import (
	"github.com/gin-gonic/gin"

	"github.com/OmmMalhotra02/Vision-Stream-Backend/internal/app"
	"github.com/OmmMalhotra02/Vision-Stream-Backend/internal/config"
)

func main() {
	gin.SetMode(gin.ReleaseMode)
	cfg := config.MustLoad()
	app.Run(cfg)
}

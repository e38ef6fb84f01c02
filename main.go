package main

import (
	"fmt"
	"log"
	"os"

	"github.com/beka-birhanu/vinom-maze-engine/api"
	api_i "github.com/beka-birhanu/vinom-maze-engine/api/i"
	mazeapi "github.com/beka-birhanu/vinom-maze-engine/api/maze"
	"github.com/beka-birhanu/vinom-maze-engine/config"
	"github.com/beka-birhanu/vinom-maze-engine/service"
	"github.com/beka-birhanu/vinom-maze-engine/service/i"
	"github.com/gin-gonic/gin"
)

// Global variables for dependencies
var (
	mazeSessionManager i.MazeSessionManager
	mazeController     api_i.Controller
	router             *api.Router
	appLogger          *log.Logger
)

func initSessionManager() {
	sessionLogger := log.New(os.Stdout, fmt.Sprintf("%s[MAZE-SESSIONS] %s", config.ColorCyan, config.ColorReset), log.LstdFlags)

	var err error
	mazeSessionManager, err = service.NewMazeSessionManager(&service.Config{Logger: sessionLogger})
	if err != nil {
		appLogger.Printf("%s[ERROR]%s creating maze session manager: %v", config.LogErrorColor, config.LogColorReset, err)
		os.Exit(1)
	}

	appLogger.Printf("%s[INFO]%s maze session manager initialized", config.LogInfoColor, config.LogColorReset)
}

func initMazeController() {
	var err error
	mazeController, err = mazeapi.NewMazeController(mazeSessionManager)
	if err != nil {
		appLogger.Printf("%s[ERROR]%s creating maze controller: %v", config.LogErrorColor, config.LogColorReset, err)
		os.Exit(1)
	}

	appLogger.Printf("%s[INFO]%s maze controller initialized", config.LogInfoColor, config.LogColorReset)
}

func initRouter() {
	router = api.NewRouter(api.Config{
		Addr:        fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:     "/api",
		Controllers: []api_i.Controller{mazeController},
	})
	appLogger.Printf("%s[INFO]%s router initialized", config.LogInfoColor, config.LogColorReset)
}

func main() {
	appLogger = log.New(os.Stdout, fmt.Sprintf("%s[APP] %s", config.ColorGreen, config.ColorReset), log.LstdFlags)
	gin.SetMode(config.Envs.GinMode)

	initSessionManager()
	initMazeController()
	initRouter()

	// Run HTTP server
	if err := router.Run(); err != nil {
		appLogger.Printf("%s[ERROR]%s starting server: %v", config.LogErrorColor, config.LogColorReset, err)
		os.Exit(1)
	}
}

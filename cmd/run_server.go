package cmd

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	internalApp "github.com/haierkeys/simple-notes-service/internal/app"
	"github.com/haierkeys/simple-notes-service/internal/routers"
	"github.com/haierkeys/simple-notes-service/pkg/code"
	"github.com/haierkeys/simple-notes-service/pkg/logger"
	"github.com/haierkeys/simple-notes-service/pkg/safe_close"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// defaultSecretKeys lists signing keys that must not reach production.
var defaultSecretKeys = []string{
	"simple-notes-Auth-Token",
	"",
}

// DefaultShutdownTimeout default shutdown timeout duration
const DefaultShutdownTimeout = 30 * time.Second

type Server struct {
	logger     *zap.Logger
	config     *internalApp.AppConfig
	httpServer *http.Server
	sc         *safe_close.SafeClose
	app        *internalApp.App
}

// checkSecurityConfigWithConfig warns when the default signing key is used.
func checkSecurityConfigWithConfig(cfg *internalApp.AppConfig, lg *zap.Logger) {
	isDefault := false
	for _, key := range defaultSecretKeys {
		if cfg.Security.AuthTokenKey == key {
			isDefault = true
			break
		}
	}

	if isDefault {
		fmt.Println()
		fmt.Println(strings.Repeat("=", 60))
		fmt.Println("⚠️  SECURITY WARNING: Using default secret key!")
		fmt.Println()
		fmt.Println("Please modify 'security.auth-token-key' in config.yaml")
		fmt.Println("Generate a secure key with:")
		fmt.Println("  openssl rand -base64 32")
		fmt.Println(strings.Repeat("=", 60))
		fmt.Println()

		if lg != nil {
			lg.Warn("Using default secret key - please change security.auth-token-key in config.yaml")
		}
	}
}

func NewServer(runEnv *runFlags) (*Server, error) {

	appConfig, configRealpath, err := internalApp.LoadConfig(runEnv.config)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if len(runEnv.port) > 0 {
		appConfig.Server.HttpPort = ":" + strings.TrimPrefix(runEnv.port, ":")
	}

	runMode := runEnv.runMode
	if len(runMode) <= 0 {
		runMode = appConfig.Server.RunMode
	}

	if len(runMode) > 0 {
		gin.SetMode(runMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		config: appConfig,
		sc:     safe_close.NewSafeClose(),
	}

	if err := initLoggerWithConfig(s, appConfig); err != nil {
		return nil, fmt.Errorf("initLogger: %w", err)
	}

	checkSecurityConfigWithConfig(appConfig, s.logger)

	// Select the client-facing message language.
	if err := code.SetGlobalDefaultLang(appConfig.App.Lang); err != nil {
		s.logger.Warn("config app.lang invalid", zap.Error(err))
	}

	app, err := internalApp.NewApp(appConfig, s.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create app container: %w", err)
	}
	s.app = app

	s.logger.Warn(fmt.Sprintf("%s v%s\nGit: %s\nBuildTime: %s\n",
		internalApp.Name, internalApp.Version, internalApp.GitTag, internalApp.BuildTime))

	s.logger.Warn("config loaded", zap.String("path", configRealpath))

	if httpAddr := appConfig.Server.HttpPort; len(httpAddr) > 0 {
		s.logger.Warn("api_router", zap.String("config.server.HttpPort", appConfig.Server.HttpPort))
		s.httpServer = &http.Server{
			Addr:           appConfig.Server.HttpPort,
			Handler:        routers.NewRouter(s.app),
			ReadTimeout:    time.Duration(appConfig.Server.ReadTimeout) * time.Second,
			WriteTimeout:   time.Duration(appConfig.Server.WriteTimeout) * time.Second,
			MaxHeaderBytes: 1 << 20,
		}
		s.sc.Attach(func(done func(), closeSignal <-chan struct{}) {
			defer done()
			errChan := make(chan error, 1)
			go func() {
				errChan <- s.httpServer.ListenAndServe()
			}()
			select {
			case err := <-errChan:
				s.logger.Error("api service err", zap.Error(err))
				s.sc.SendCloseSignal(err)
			case <-closeSignal:

				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()

				if err := s.httpServer.Shutdown(ctx); err != nil {
					s.logger.Error("api service shutdown error", zap.Error(err))
				}
			}
		})
	}

	s.sc.Attach(func(done func(), closeSignal <-chan struct{}) {
		defer done()
		<-closeSignal
		if s.app != nil {
			ctx, cancel := context.WithTimeout(context.Background(), DefaultShutdownTimeout)
			defer cancel()

			if err := s.app.Shutdown(ctx); err != nil {
				s.logger.Error("failed to shutdown app container", zap.Error(err))
			}
		}
	})

	return s, nil
}

// initLoggerWithConfig initializes the main logger from the config.
func initLoggerWithConfig(s *Server, cfg *internalApp.AppConfig) error {
	lg, err := logger.NewLogger(logger.Config{
		Level:      cfg.Log.Level,
		File:       cfg.Log.File,
		Production: cfg.Log.Production,
	})
	if err != nil {
		return fmt.Errorf("failed to init logger: %w", err)
	}
	s.logger = lg

	return nil
}

// GetApp gets the App container.
func (s *Server) GetApp() *internalApp.App {
	return s.app
}

// GetConfig gets the app configuration.
func (s *Server) GetConfig() *internalApp.AppConfig {
	return s.config
}

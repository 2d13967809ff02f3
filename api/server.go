package api

import (
	"context"
	"crypto/rsa"
	"net/http"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/jfertaj/t1d-centers-app/external/geocoder"
	"github.com/jfertaj/t1d-centers-app/logmodule"
	"github.com/jfertaj/t1d-centers-app/store"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// Stores
	store store.CentersData

	// External services
	geocoder geocoder.Geocoder

	// OIDC relying-party state
	authGate *AuthGate

	// JWT private key for session cookies
	jwtPrivateKey *rsa.PrivateKey
}

// NewServer new instance of server
func NewServer(
	ormDB *gorm.DB,
	geo geocoder.Geocoder,
	authGate *AuthGate,
	jwtKey *rsa.PrivateKey) *Server {
	return &Server{
		store:         store.NewCentersStore(ormDB),
		geocoder:      geo,
		authGate:      authGate,
		jwtPrivateKey: jwtKey,
	}
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	return s.server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))

	r.Use(cors.New(cors.Config{
		AllowOrigins:     viper.GetStringSlice("server.origins"),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Admin-Token"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	authRoute := r.Group("/auth")
	authRoute.Use(logmodule.Ginrus("Auth"))
	{
		authRoute.GET("/login", s.loginRedirect)
		authRoute.GET("/callback", s.authCallback)
		authRoute.GET("/logout", s.logout)
		authRoute.GET("/me", s.authMe)
	}

	apiRoute := r.Group("/")
	apiRoute.Use(logmodule.Ginrus("API"))

	apiRoute.GET("/centers", s.listCenters)
	apiRoute.GET("/program-rules", s.listProgramRules)
	apiRoute.GET("/program-rules/match", s.matchProgram)
	apiRoute.POST("/geocoding/verify", s.verifyGeocoding)

	// every write goes through the session gate and requires the admin group
	editRoute := apiRoute.Group("/")
	editRoute.Use(s.authMiddleware())
	editRoute.Use(s.adminOnlyMiddleware())
	{
		editRoute.POST("/centers", s.createCenter)
		editRoute.PUT("/centers/:id", s.updateCenter)
		editRoute.DELETE("/centers/:id", s.deleteCenter)

		editRoute.POST("/program-rules", s.createProgramRule)
		editRoute.PUT("/program-rules/:id", s.updateProgramRule)
		editRoute.DELETE("/program-rules/:id", s.deleteProgramRule)
	}

	adminRoute := r.Group("/admin")
	adminRoute.Use(logmodule.Ginrus("Admin"))

	adminRoute.GET("/columns", s.listColumns)
	adminRoute.GET("/stats", s.adminStats)

	// schema mutation and bulk operations are gated by the shared admin token
	secretRoute := adminRoute.Group("/")
	secretRoute.Use(s.apikeyAuthentication(viper.GetString("server.apikey.admin")))
	{
		secretRoute.POST("/add-column", s.addColumns)
		secretRoute.POST("/add-columns", s.addColumns)
		secretRoute.POST("/add-schema", s.addSchema)
		secretRoute.POST("/recreate", s.recreateCenters)
		secretRoute.POST("/regeo-missing", s.regeoMissing)
	}

	debugRoute := r.Group("/debug")
	debugRoute.Use(logmodule.Ginrus("Debug"))
	debugRoute.Use(s.apikeyAuthentication(viper.GetString("server.apikey.admin")))
	{
		debugRoute.GET("/db-info", s.dbInfo)
	}

	r.GET("/healthz", s.healthz)

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// shouldInterupt sends error message and determine if it should interupt the current flow
func shouldInterupt(err error, c *gin.Context) bool {
	if err == nil {
		return false
	}

	log.Error(err)
	abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
	return true
}

func (s *Server) healthz(c *gin.Context) {
	// Ping db
	err := s.store.Ping()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
	})
}

func (s *Server) dbInfo(c *gin.Context) {
	info, err := s.store.DBInfo()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, info)
}

// apikeyAuthentication guards schema-mutation endpoints with the shared
// X-Admin-Token header credential.
func (s *Server) apikeyAuthentication(key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if key == "" {
			abortWithEncoding(c, http.StatusInternalServerError,
				withDetail(errorConfigMissing, "CENTERS_SERVER_APIKEY_ADMIN is not set"))
			return
		}

		apiToken := c.GetHeader("X-Admin-Token")
		if apiToken == "" || apiToken != key {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}
		c.Next()
	}
}

func responseWithEncoding(c *gin.Context, code int, obj ErrorResponse) {
	c.JSON(code, obj)
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}

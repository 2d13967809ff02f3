package main

import (
	"context"
	"crypto/rsa"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/getsentry/sentry-go"
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"

	"github.com/jfertaj/t1d-centers-app/api"
	"github.com/jfertaj/t1d-centers-app/external/geocoder"
)

var (
	server *api.Server
	ormDB  *gorm.DB
)

func initLog() {
	logLevel, err := log.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(logLevel)
	}

	log.SetOutput(os.Stdout)

	log.SetFormatter(&prefixed.TextFormatter{
		ForceFormatting: true,
		FullTimestamp:   true,
	})
}

func loadConfig(file string) {
	// Config from file
	viper.SetConfigType("yaml")
	if file != "" {
		viper.SetConfigFile(file)
	}

	viper.AddConfigPath("/.config/")
	viper.AddConfigPath(".")
	err := viper.ReadInConfig()
	if err != nil {
		fmt.Println("No config file. Read config from env.")
		viper.AllowEmptyEnv(false)
	}

	// Config from env if possible
	viper.AutomaticEnv()
	viper.SetEnvPrefix("centers")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

// readSessionKey reads the RSA key that signs session cookies. A missing
// key is not fatal: the auth endpoints answer with a descriptive 500
// until it is configured.
func readSessionKey() (*rsa.PrivateKey, error) {
	keyfile := viper.GetString("jwt.keyfile")
	if keyfile == "" {
		return nil, fmt.Errorf("CENTERS_JWT_KEYFILE is not set")
	}

	raw, err := os.ReadFile(keyfile)
	if err != nil {
		return nil, err
	}

	if password := viper.GetString("jwt.password"); password != "" {
		return jwt.ParseRSAPrivateKeyFromPEMWithPassword(raw, password)
	}
	return jwt.ParseRSAPrivateKeyFromPEM(raw)
}

func main() {
	var configFile string

	initialCtx, cancelInitialization := context.WithCancel(context.Background())

	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Info("Server is preparing to shutdown")

		if initialCtx != nil && cancelInitialization != nil {
			log.Info("Cancelling initialization")
			cancelInitialization()
			<-initialCtx.Done()
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if server != nil {
			log.Info("Shutdown centers api server")
			if err := server.Shutdown(ctx); err != nil {
				log.Error("Server Shutdown:", err)
			}
		}

		if ormDB != nil {
			log.Info("Shutting down db store")
			if err := ormDB.Close(); err != nil {
				log.Error(err)
			}
		}

		os.Exit(1)
	}()

	flag.StringVar(&configFile, "c", "./config.yaml", "[optional] path of configuration file")
	flag.Parse()

	loadConfig(configFile)

	initLog()

	// Sentry
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              viper.GetString("sentry.dsn"),
		AttachStacktrace: true,
		Environment:      viper.GetString("sentry.environment"),
		Dist:             viper.GetString("sentry.dist"),
	}); err != nil {
		log.Error(err)
	}
	log.WithField("prefix", "init").Info("Initialized sentry")

	// Load session signing key
	jwtPrivateKey, err := readSessionKey()
	if err != nil {
		log.WithField("prefix", "init").WithError(err).
			Warn("Session key not loaded; auth endpoints will report the missing configuration")
	} else {
		log.WithField("prefix", "init").Info("Loaded session signing key")
	}

	// Geocoder
	var geo geocoder.Geocoder
	if apiKey := viper.GetString("geocoder.key"); apiKey != "" {
		geo, err = geocoder.New(apiKey)
		if err != nil {
			log.Panic(err)
		}
		log.WithField("prefix", "init").Info("Initialized geocoder")
	} else {
		log.WithField("prefix", "init").
			Warn("CENTERS_GEOCODER_KEY is not set; geocoding endpoints will report the missing configuration")
	}

	// OIDC relying party
	var authGate *api.AuthGate
	if issuer := viper.GetString("oidc.issuer"); issuer != "" {
		authGate, err = api.NewAuthGate(initialCtx,
			issuer,
			viper.GetString("oidc.client.id"),
			viper.GetString("oidc.client.secret"),
			viper.GetString("oidc.redirect.uri"),
			viper.GetString("oidc.admin.group"),
			viper.GetString("oidc.domain"),
			viper.GetString("oidc.logout.uri"),
		)
		if err != nil {
			log.Panic(err)
		}
		log.WithField("prefix", "init").Info("Initialized auth gate")
	} else {
		log.WithField("prefix", "init").
			Warn("CENTERS_OIDC_ISSUER is not set; auth endpoints will report the missing configuration")
	}

	ormDB, err = gorm.Open("postgres", viper.GetString("orm.conn"))
	if err != nil {
		log.Panic(err)
	}
	if pool := viper.GetInt("orm.pool"); pool > 0 {
		ormDB.DB().SetMaxOpenConns(pool)
	}

	// Init http server
	server = api.NewServer(
		ormDB,
		geo,
		authGate,
		jwtPrivateKey)
	log.WithField("prefix", "init").Info("Initialized http server")

	// Remove initial context
	initialCtx = nil
	cancelInitialization = nil

	log.Fatal(server.Run(":" + viper.GetString("server.port")))
}

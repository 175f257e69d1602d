package main

import (
	"embed"
	"errors"
	"flag"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-jose/go-jose/v3"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"

	"github.com/solidground/facade/internal/log"
	"github.com/solidground/facade/internal/ver"
	"github.com/solidground/facade/server"
	"github.com/solidground/facade/server/store"
)

//go:embed web
var Web embed.FS

func main() {
	_ = godotenv.Load()

	cfgPath := flag.String("config", "", "path to facade.json")
	flag.Parse()

	viper.SetDefault("listen_addr", ":80")
	viper.SetDefault("dev_mode", false)
	viper.SetDefault("http_timeout", "30s")
	viper.SetDefault("jwt_secret", "your-secret-key-change-in-production")
	viper.SetDefault("token_ttl", "24h")
	viper.SetDefault("data_dir", "data")
	viper.SetDefault("uploads_dir", "uploads")
	viper.SetDefault("max_upload_size", 10*1024*1024)
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "text")
	viper.SetDefault("rate_limit.enabled", false)
	viper.SetDefault("rate_limit.requests", 10)
	viper.SetDefault("rate_limit.duration", "1m")
	viper.SetDefault("otel.enabled", false)

	if *cfgPath != "" {
		viper.SetConfigFile(*cfgPath)
	} else {
		viper.SetConfigName("facade")
		viper.SetConfigType("json")
		viper.AddConfigPath(".")
		viper.AddConfigPath("/etc/facade/")
	}
	if err := viper.ReadInConfig(); err != nil {
		var notFoundErr viper.ConfigFileNotFoundError
		if !errors.As(err, &notFoundErr) {
			slog.Error("error while reading config", tint.Err(err))
			os.Exit(1)
		}
	}
	viper.SetEnvPrefix("facade")
	viper.AutomaticEnv()

	var cfg server.Config
	if err := viper.Unmarshal(&cfg, func(config *mapstructure.DecoderConfig) {
		config.TagName = "cfg"
	}); err != nil {
		slog.Error("error while unmarshalling config", tint.Err(err))
		os.Exit(1)
	}

	log.Setup(cfg.Log)
	version := ver.Load()
	slog.Info("starting facade...", slog.String("version", version.Short()))
	slog.Info("config:\n" + cfg.String())

	documents, err := store.New(cfg.DataDir)
	if err != nil {
		slog.Error("error while opening document store", tint.Err(err))
		os.Exit(1)
	}
	if err = documents.Initialize(time.Now()); err != nil {
		slog.Error("error while seeding document store", tint.Err(err))
		os.Exit(1)
	}

	signer, err := jose.NewSigner(jose.SigningKey{
		Algorithm: jose.HS512,
		Key:       []byte(cfg.JWTSecret),
	}, nil)
	if err != nil {
		slog.Error("error while creating signer", tint.Err(err))
		os.Exit(1)
	}

	if cfg.Otel.Enabled {
		if err = newTracer(cfg.Otel, version); err != nil {
			slog.Error("error while setting up tracing", tint.Err(err))
			os.Exit(1)
		}
		if err = newMeter(cfg.Otel, version); err != nil {
			slog.Error("error while setting up metrics", tint.Err(err))
			os.Exit(1)
		}
	}

	var assets http.FileSystem
	if cfg.DevMode {
		slog.Info("development mode enabled, serving web assets from disk")
		assets = http.Dir("web")
	} else {
		sub, subErr := fs.Sub(Web, "web")
		if subErr != nil {
			slog.Error("error while mounting embedded web assets", tint.Err(subErr))
			os.Exit(1)
		}
		assets = http.FS(sub)
	}

	s := server.NewServer(version, cfg, documents, signer, assets)
	slog.Info("facade listening", slog.String("addr", cfg.ListenAddr))
	go s.Start()
	defer s.Close()

	si := make(chan os.Signal, 1)
	signal.Notify(si, syscall.SIGINT, syscall.SIGTERM)
	<-si
	slog.Info("shutting down facade...")
}

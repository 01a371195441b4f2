package main

import (
	"embed"
	"flag"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/YongjaeKwon0629/first-deploy/internal/config"
	"github.com/YongjaeKwon0629/first-deploy/internal/resume"
	"github.com/YongjaeKwon0629/first-deploy/server"
)

var (
	version = "dev"
)

//go:embed templates/*.html
var templatesFiles embed.FS

//go:embed static/*
var staticFiles embed.FS

func parseTemplates() (*template.Template, error) {
	return template.New("").ParseFS(templatesFiles, "templates/*.html")
}

func main() {
	showVersion := flag.Bool("version", false, "Print build information and exit.")
	flag.Parse()
	if *showVersion {
		fmt.Println(server.FormatBuildVersion(version))
		return
	}

	var (
		tmplFunc server.ExecuteTemplateFunc
		assets   http.FileSystem
	)

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Errorf("failed to load config: %w", err))
	}

	tmpl, err := parseTemplates()
	if err != nil {
		panic(fmt.Errorf("failed to parse templates: %w", err))
	}
	tmplFunc = tmpl.ExecuteTemplate
	assets = http.FS(staticFiles)

	src, err := resume.NewSource(cfg.GeneralURL, cfg.PortfolioURL, cfg.FetchTimeout)
	if err != nil {
		panic(fmt.Errorf("failed to initialize resume source: %w", err))
	}

	srv := server.NewServer(version, cfg.Port, assets, tmplFunc, cfg.Variant.Template(), src)

	go srv.Start()
	defer srv.Close()

	slog.Info("Started server",
		slog.String("listen_addr", ":"+cfg.Port),
		slog.String("variant", string(cfg.Variant)),
		slog.String("version", version),
	)
	si := make(chan os.Signal, 1)
	signal.Notify(si, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-si
	slog.Info("Shutting down server")
}

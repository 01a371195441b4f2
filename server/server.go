package server

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"runtime"
	"time"

	"github.com/YongjaeKwon0629/first-deploy/internal/resume"
)

type ExecuteTemplateFunc func(wr io.Writer, name string, data any) error

type Server struct {
	version  string
	port     string
	server   *http.Server
	assets   http.FileSystem
	tmplFunc ExecuteTemplateFunc
	page     string
	source   resume.Source
	now      func() time.Time
}

// NewServer wires the resume page. page names the template used for "/".
func NewServer(version string, port string, assets http.FileSystem, tmplFunc ExecuteTemplateFunc, page string, source resume.Source) *Server {

	s := &Server{
		version:  version,
		port:     port,
		assets:   assets,
		tmplFunc: tmplFunc,
		page:     page,
		source:   source,
		now:      time.Now,
	}

	s.server = &http.Server{
		Addr:              ":" + port,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	return s
}

func (s *Server) Start() {
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		panic(err)
	}
}

func (s *Server) Close() {
	if err := s.server.Close(); err != nil {
		panic(err)
	}
}

func FormatBuildVersion(version string) string {
	return fmt.Sprintf("Go Version: %s\nVersion: %s\nOS/Arch: %s/%s", runtime.Version(), version, runtime.GOOS, runtime.GOARCH)
}

// Package webserver owns the HTTP engine: echo setup, JSON serialization,
// request validation, request logging and the /api route registration
// helpers used by webapi and adminapi.
package webserver

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/coachdesk/coachdesk/config"
)

type WebServer struct {
	cfg  *config.AppConfig
	root *echo.Echo
}

func NewWebServer(cfg *config.AppConfig) *WebServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.JSONSerializer = &jsoniterSerializer{}
	e.Validator = &payloadValidator{validate: validator.New()}
	e.HTTPErrorHandler = errorHandler
	e.Use(middleware.Recover())
	e.Use(requestLogger)
	return &WebServer{cfg: cfg, root: e}
}

// Echo exposes the underlying engine for tests.
func (ws *WebServer) Echo() *echo.Echo {
	return ws.root
}

func (ws *WebServer) Start() error {
	addr := fmt.Sprintf("%s:%d", ws.cfg.Web.Host, ws.cfg.Web.Port)
	zap.S().Infof("http server listening on %s", addr)
	return ws.root.Start(addr)
}

func (ws *WebServer) Shutdown(ctx context.Context) error {
	return ws.root.Shutdown(ctx)
}

// ApiGET and friends register handlers under the /api prefix.
func (ws *WebServer) ApiGET(path string, h echo.HandlerFunc) {
	ws.root.GET("/api"+path, h)
}

func (ws *WebServer) ApiPOST(path string, h echo.HandlerFunc) {
	ws.root.POST("/api"+path, h)
}

func (ws *WebServer) ApiPATCH(path string, h echo.HandlerFunc) {
	ws.root.PATCH("/api"+path, h)
}

func (ws *WebServer) ApiDELETE(path string, h echo.HandlerFunc) {
	ws.root.DELETE("/api"+path, h)
}

type jsoniterSerializer struct{}

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func (s *jsoniterSerializer) Serialize(c echo.Context, i interface{}, indent string) error {
	enc := json.NewEncoder(c.Response())
	if indent != "" {
		enc.SetIndent("", indent)
	}
	return enc.Encode(i)
}

func (s *jsoniterSerializer) Deserialize(c echo.Context, i interface{}) error {
	err := json.NewDecoder(c.Request().Body).Decode(i)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error()).SetInternal(err)
	}
	return nil
}

type payloadValidator struct {
	validate *validator.Validate
}

func (v *payloadValidator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error()).SetInternal(err)
	}
	return nil
}

// errorHandler keeps the error envelope flat: {"error": "..."}.
func errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	code := http.StatusInternalServerError
	msg := "internal server error"
	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		msg = fmt.Sprint(he.Message)
	}
	if err := c.JSON(code, echo.Map{"error": msg}); err != nil {
		zap.S().Errorf("error response failed: %v", err)
	}
}

func requestLogger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		if err != nil {
			c.Error(err)
		}
		zap.L().Debug("http request",
			zap.String("method", c.Request().Method),
			zap.String("path", c.Request().URL.Path),
			zap.Int("status", c.Response().Status),
			zap.Duration("latency", time.Since(start)),
		)
		return nil
	}
}

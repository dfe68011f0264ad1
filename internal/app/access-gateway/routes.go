// Package accessgateway собирает HTTP-шлюз контроля доступа: хранилище,
// кеш, брокер событий, контроллер шлагбаума, сервисы и маршруты.
package accessgateway

import (
	"log/slog"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
	"golang.org/x/time/rate"

	"github.com/magabrotheeeer/access-gateway/internal/http/handlers/accesslog/complete"
	"github.com/magabrotheeeer/access-gateway/internal/http/handlers/accesslog/fare"
	"github.com/magabrotheeeer/access-gateway/internal/http/handlers/accesslog/finalize"
	"github.com/magabrotheeeer/access-gateway/internal/http/handlers/accesslog/latest"
	"github.com/magabrotheeeer/access-gateway/internal/http/handlers/accesslog/list"
	"github.com/magabrotheeeer/access-gateway/internal/http/handlers/accesslog/register"
	devicecreate "github.com/magabrotheeeer/access-gateway/internal/http/handlers/device/create"
	devicelist "github.com/magabrotheeeer/access-gateway/internal/http/handlers/device/list"
	"github.com/magabrotheeeer/access-gateway/internal/http/handlers/health"
	platecreate "github.com/magabrotheeeer/access-gateway/internal/http/handlers/plate/create"
	"github.com/magabrotheeeer/access-gateway/internal/http/handlers/plate/report"
	"github.com/magabrotheeeer/access-gateway/internal/http/handlers/plate/reportstatus"
	tariffcreate "github.com/magabrotheeeer/access-gateway/internal/http/handlers/tariff/create"
	tariffread "github.com/magabrotheeeer/access-gateway/internal/http/handlers/tariff/read"
	tariffupdate "github.com/magabrotheeeer/access-gateway/internal/http/handlers/tariff/update"
	tollcreate "github.com/magabrotheeeer/access-gateway/internal/http/handlers/toll/create"
	clipcreate "github.com/magabrotheeeer/access-gateway/internal/http/handlers/videoclip/create"
	"github.com/magabrotheeeer/access-gateway/internal/http/middlewarectx"
	"github.com/magabrotheeeer/access-gateway/internal/http/response"
)

// EntryService операции над сессиями въезда, нужные маршрутам /access-logs.
type EntryService interface {
	register.Service
	finalize.Service
	complete.Service
	list.Service
	latest.Service
	fare.Service
}

// DeviceService операции над реестром устройств.
type DeviceService interface {
	devicecreate.Service
	devicelist.Service
}

// TariffService операции над тарифами и пунктами оплаты.
type TariffService interface {
	tariffread.Service
	tariffcreate.Service
	tariffupdate.Service
	tollcreate.Service
}

// ObservationService операции над номерами, отметками и видеофрагментами.
type ObservationService interface {
	platecreate.Service
	report.Service
	reportstatus.Service
	clipcreate.Service
}

// Deps зависимости маршрутов. Admin == nil отключает проверку admin-токена.
type Deps struct {
	Log           *slog.Logger
	Entries       EntryService
	Devices       DeviceService
	Tariffs       TariffService
	Observations  ObservationService
	Health        health.Pinger
	HealthTimeout time.Duration
	Limiter       *rate.Limiter
	Admin         middlewarectx.TokenParser
	ExposeErrors  bool
}

// RegisterRoutes регистрирует все маршруты шлюза.
func RegisterRoutes(r chi.Router, d Deps) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
		response.ExposeErrors(d.ExposeErrors),
	)

	r.Group(func(r chi.Router) {
		if d.Limiter != nil {
			r.Use(middlewarectx.RateLimitMiddleware(d.Log, d.Limiter))
		}

		r.Route("/access-logs", func(r chi.Router) {
			r.Post("/registrar-ingreso", register.New(d.Log, d.Entries).ServeHTTP)
			r.Post("/finalizar-ingreso", finalize.New(d.Log, d.Entries).ServeHTTP)
			r.Put("/", complete.New(d.Log, d.Entries).ServeHTTP)
			r.Get("/", list.New(d.Log, d.Entries).ServeHTTP)
			r.Get("/latest", latest.New(d.Log, d.Entries).ServeHTTP)
			r.Post("/{id}/fare", fare.New(d.Log, d.Entries).ServeHTTP)
		})

		r.Get("/devices/", devicelist.New(d.Log, d.Devices).ServeHTTP)
		r.Get("/tariffs/", tariffread.New(d.Log, d.Tariffs).ServeHTTP)

		r.Post("/license_plates/", platecreate.New(d.Log, d.Observations).ServeHTTP)
		r.Post("/license_plates/report", report.New(d.Log, d.Observations).ServeHTTP)
		r.Patch("/license_plates/report/{id}", reportstatus.New(d.Log, d.Observations).ServeHTTP)
		r.Post("/videoclips/", clipcreate.New(d.Log, d.Observations).ServeHTTP)

		// Изменение справочников
		r.Group(func(r chi.Router) {
			if d.Admin != nil {
				r.Use(middlewarectx.AdminOnly(d.Admin, d.Log))
			}
			r.Post("/devices/", devicecreate.New(d.Log, d.Devices).ServeHTTP)
			r.Post("/tariffs/", tariffcreate.New(d.Log, d.Tariffs).ServeHTTP)
			r.Put("/tariffs/", tariffupdate.New(d.Log, d.Tariffs).ServeHTTP)
			r.Post("/tolls/", tollcreate.New(d.Log, d.Tariffs).ServeHTTP)
		})
	})

	r.Get("/health", health.New(d.Log, d.Health, d.HealthTimeout).ServeHTTP)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/docs/*", httpSwagger.WrapHandler)
}

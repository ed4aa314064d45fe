package router

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"

	"github.com/heal-clinic/heal_backend/config"
	"github.com/heal-clinic/heal_backend/internal/api/http/handler"
	"github.com/heal-clinic/heal_backend/internal/service/appointment"
	"github.com/heal-clinic/heal_backend/internal/service/availability"
	"github.com/heal-clinic/heal_backend/internal/service/patient"
	"github.com/heal-clinic/heal_backend/internal/service/registration"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg             *config.Config
	RegistrationSvc *registration.Service
	PatientSvc      *patient.Service
	AvailabilitySvc *availability.Service
	AppointmentSvc  *appointment.Service
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

// Register wires every route. The web client consumes these paths as-is,
// so they stay at the root without an /api prefix.
func (r *Router) Register(app *fiber.App) {
	r.registerSystemRoutes(app)

	registrationH := handler.NewRegistrationHandler(r.p.RegistrationSvc)
	patientH := handler.NewPatientHandler(r.p.PatientSvc)
	doctorH := handler.NewDoctorHandler(r.p.AvailabilitySvc, r.p.AppointmentSvc)
	appointmentH := handler.NewAppointmentHandler(r.p.AppointmentSvc)

	r.registerRegistrationRoutes(app, registrationH)
	r.registerPatientRoutes(app, patientH)
	r.registerDoctorRoutes(app, doctorH)
	r.registerAppointmentRoutes(app, appointmentH)
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	app.Get(healthcheck.ReadinessEndpoint, healthcheck.New())
	app.Get(healthcheck.StartupEndpoint, healthcheck.New())

	if r.p.Cfg.Observability.Enabled && r.p.Cfg.Observability.Metrics.Enabled {
		path := r.p.Cfg.Observability.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(promhttp.Handler()))
	}
}

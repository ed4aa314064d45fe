package app

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/heal-clinic/heal_backend/internal/service/appointment"
	"github.com/heal-clinic/heal_backend/internal/service/availability"
	"github.com/heal-clinic/heal_backend/internal/service/patient"
	"github.com/heal-clinic/heal_backend/internal/service/registration"
	"github.com/heal-clinic/heal_backend/internal/store"
	"github.com/heal-clinic/heal_backend/pkg/email"
	"github.com/heal-clinic/heal_backend/pkg/okta"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideRegistrationService,
		ProvidePatientService,
		ProvideAvailabilityService,
		ProvideAppointmentService,
	),
)

func ProvideRegistrationService(stores *store.Stores, idp *okta.Client, mailer *email.Client, logger *slog.Logger) *registration.Service {
	return registration.NewService(stores, idp, mailer, logger)
}

func ProvidePatientService(stores *store.Stores, logger *slog.Logger) *patient.Service {
	return patient.NewService(stores, logger)
}

func ProvideAvailabilityService(stores *store.Stores, logger *slog.Logger) *availability.Service {
	return availability.NewService(stores.Doctors, logger)
}

func ProvideAppointmentService(stores *store.Stores, mailer *email.Client, logger *slog.Logger) *appointment.Service {
	return appointment.NewService(stores, mailer, logger)
}

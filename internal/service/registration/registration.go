// Package registration performs patient self-registration against the
// identity provider and mirrors the new account into a local profile
// document.
package registration

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heal-clinic/heal_backend/internal/model"
	"github.com/heal-clinic/heal_backend/internal/store"
	"github.com/heal-clinic/heal_backend/pkg/email"
	"github.com/heal-clinic/heal_backend/pkg/okta"
)

// IdentityProvider is the subset of the Okta client the service needs.
type IdentityProvider interface {
	UserExists(ctx context.Context, email string) (bool, error)
	CreateUser(ctx context.Context, req okta.CreateUserRequest) (string, error)
}

// Request is a self-registration submission. The password goes only to the
// identity provider and is never stored locally.
type Request struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Contact   string `json:"contact"`
	DOB       string `json:"dob"`
}

// Result carries the provider-assigned subject id of the new account.
type Result struct {
	SubjectID string `json:"subjectId"`
}

type Service struct {
	patients store.PatientStore
	idp      IdentityProvider
	mailer   *email.Client
	logger   *slog.Logger
}

func NewService(stores *store.Stores, idp IdentityProvider, mailer *email.Client, logger *slog.Logger) *Service {
	return &Service{
		patients: stores.Patients,
		idp:      idp,
		mailer:   mailer,
		logger:   logger.With("service", "registration"),
	}
}

// Register creates an activated identity-provider account and a local
// patient document carrying the subject id. The existence probe and the
// create are two separate provider calls; a concurrent registration of the
// same email between them is resolved by the provider rejecting the second
// create as a duplicate.
func (s *Service) Register(ctx context.Context, req Request) (*Result, error) {
	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
	req.Email = strings.TrimSpace(req.Email)
	if req.FirstName == "" || req.LastName == "" || req.Email == "" || req.Password == "" {
		return nil, ErrMissingFields
	}

	exists, err := s.idp.UserExists(ctx, req.Email)
	if err != nil {
		s.logger.ErrorContext(ctx, "identity provider lookup failed", "error", err)
		return nil, fmt.Errorf("%w: %w", ErrIdentityProvider, err)
	}
	if exists {
		return nil, ErrEmailTaken
	}

	subjectID, err := s.idp.CreateUser(ctx, okta.CreateUserRequest{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		if errors.Is(err, okta.ErrUserAlreadyExists) {
			// Lost the race between probe and create.
			return nil, ErrEmailTaken
		}
		s.logger.ErrorContext(ctx, "identity provider create failed", "error", err)
		return nil, fmt.Errorf("%w: %w", ErrIdentityProvider, err)
	}

	patient := &model.Patient{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Contact:   req.Contact,
		DOB:       req.DOB,
		SubjectID: subjectID,
	}
	if _, err := s.patients.Insert(ctx, patient); err != nil {
		// The provider account exists but the local mirror failed; the
		// subject id in the log is enough to reconcile by hand.
		s.logger.ErrorContext(ctx, "local profile insert failed",
			"subject_id", subjectID, "error", err)
		return nil, err
	}

	s.logger.InfoContext(ctx, "patient registered", "subject_id", subjectID)

	if s.mailer != nil && s.mailer.IsEnabled() {
		msg := email.BuildWelcomeEmail(email.WelcomeEmailData{
			FirstName: req.FirstName,
			Email:     req.Email,
		})
		if err := s.mailer.Send(ctx, msg); err != nil {
			s.logger.WarnContext(ctx, "welcome email failed",
				"subject_id", subjectID, "error", err)
		}
	}

	return &Result{SubjectID: subjectID}, nil
}

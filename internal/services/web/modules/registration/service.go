package registration

import (
	"context"
	"errors"
	"net/url"

	apperrors "github.com/SethChishakwe/cyntas-wealth-tech/internal/services/web/platform/errors"
	"github.com/SethChishakwe/cyntas-wealth-tech/internal/services/web/platform/formvalidate"
	"github.com/SethChishakwe/cyntas-wealth-tech/internal/services/web/storage"
)

const (
	keyMissingField = "flash.registration.missing_field"
	keyFailed       = "flash.registration.failed"
)

// RegistrantForm is the decoded general registration form.
type RegistrantForm struct {
	FirstName       string `form:"first_name" validate:"required"`
	LastName        string `form:"last_name" validate:"required"`
	Email           string `form:"email" validate:"required"`
	Phone           string `form:"phone" validate:"required"`
	Location        string `form:"location" validate:"required"`
	InterestArea    string `form:"interest_area" validate:"required"`
	InvestmentLevel string `form:"investment_level" validate:"required"`
}

// WorkshopForm is the decoded workshop registration form.
type WorkshopForm struct {
	FirstName     string `form:"first_name" validate:"required"`
	LastName      string `form:"last_name" validate:"required"`
	Email         string `form:"email" validate:"required"`
	Phone         string `form:"phone" validate:"required"`
	WorkshopType  string `form:"workshop_type" validate:"required"`
	PaymentMethod string `form:"payment_method" validate:"required"`
}

func decodeRegistrantForm(values url.Values) RegistrantForm {
	return RegistrantForm{
		FirstName:       values.Get("first_name"),
		LastName:        values.Get("last_name"),
		Email:           values.Get("email"),
		Phone:           values.Get("phone"),
		Location:        values.Get("location"),
		InterestArea:    values.Get("interest_area"),
		InvestmentLevel: values.Get("investment_level"),
	}
}

func decodeWorkshopForm(values url.Values) WorkshopForm {
	return WorkshopForm{
		FirstName:     values.Get("first_name"),
		LastName:      values.Get("last_name"),
		Email:         values.Get("email"),
		Phone:         values.Get("phone"),
		WorkshopType:  values.Get("workshop_type"),
		PaymentMethod: values.Get("payment_method"),
	}
}

type service struct {
	registrants storage.RegistrantStore
	workshops   storage.WorkshopRegistrantStore
	validator   *formvalidate.Validator
}

func newService(registrants storage.RegistrantStore, workshops storage.WorkshopRegistrantStore) service {
	return service{registrants: registrants, workshops: workshops, validator: formvalidate.New()}
}

// registerInterest validates form and appends exactly one registrant. Values
// are stored as submitted.
func (s service) registerInterest(ctx context.Context, form RegistrantForm) (int64, error) {
	if err := s.validate(ctx, form); err != nil {
		return 0, err
	}
	if s.registrants == nil {
		return 0, apperrors.EK(apperrors.KindUnavailable, keyFailed, "registrant storage is not configured")
	}
	id, err := s.registrants.PutRegistrant(ctx, storage.Registrant{
		FirstName:       form.FirstName,
		LastName:        form.LastName,
		Email:           form.Email,
		Phone:           form.Phone,
		Location:        form.Location,
		InterestArea:    form.InterestArea,
		InvestmentLevel: form.InvestmentLevel,
	})
	if err != nil {
		return 0, apperrors.Wrap(apperrors.KindUnavailable, keyFailed, err)
	}
	return id, nil
}

// registerWorkshop validates form and appends exactly one workshop sign-up.
func (s service) registerWorkshop(ctx context.Context, form WorkshopForm) (int64, error) {
	if err := s.validate(ctx, form); err != nil {
		return 0, err
	}
	if s.workshops == nil {
		return 0, apperrors.EK(apperrors.KindUnavailable, keyFailed, "workshop storage is not configured")
	}
	id, err := s.workshops.PutWorkshopRegistrant(ctx, storage.WorkshopRegistrant{
		FirstName:     form.FirstName,
		LastName:      form.LastName,
		Email:         form.Email,
		Phone:         form.Phone,
		WorkshopType:  form.WorkshopType,
		PaymentMethod: form.PaymentMethod,
	})
	if err != nil {
		return 0, apperrors.Wrap(apperrors.KindUnavailable, keyFailed, err)
	}
	return id, nil
}

func (s service) validate(ctx context.Context, form any) error {
	err := s.validator.Validate(ctx, form)
	if err == nil {
		return nil
	}
	var fieldErr *formvalidate.FieldError
	if errors.As(err, &fieldErr) {
		return apperrors.Error{
			Kind:    apperrors.KindInvalidInput,
			Key:     keyMissingField,
			Args:    []any{fieldErr.Field},
			Message: fieldErr.Error(),
			Err:     fieldErr,
		}
	}
	return apperrors.Wrap(apperrors.KindInvalidInput, keyFailed, err)
}

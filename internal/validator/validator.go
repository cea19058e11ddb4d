// Package validator performs shape validation for the domain entities.
// Each entity gets its own validator type returning a domain.FieldErrors map
// keyed by the wire field name, so handlers can pass it straight through as
// the 400 response body.
package validator

import (
	"errors"
	"regexp"

	"github.com/go-playground/validator/v10"

	"github.com/dlevchenko/airagency/internal/domain"
)

var (
	flightNumberRX = regexp.MustCompile(`^[A-Za-z0-9]{5}$`)
	airportCodeRX  = regexp.MustCompile(`^[A-Z]{3}$`)
	phoneNumberRX  = regexp.MustCompile(`^0[0-9]{10}$`)
	personNameRX   = regexp.MustCompile(`^[A-Za-z-' ]+$`)
)

func newValidate() *validator.Validate {
	v := validator.New()
	mustRegister(v, "flightnumber", flightNumberRX)
	mustRegister(v, "airportcode", airportCodeRX)
	mustRegister(v, "phonenumber", phoneNumberRX)
	mustRegister(v, "personname", personNameRX)
	return v
}

func mustRegister(v *validator.Validate, tag string, rx *regexp.Regexp) {
	err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		return rx.MatchString(fl.Field().String())
	})
	if err != nil {
		panic(err)
	}
}

// translate turns validator.ValidationErrors into a FieldErrors map using the
// per-field wire names and messages. The first failing rule per field wins.
func translate(err error, wireNames, messages map[string]string) domain.FieldErrors {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return domain.FieldErrors{"body": err.Error()}
	}

	fieldErrs := make(domain.FieldErrors)
	for _, fe := range verrs {
		name, ok := wireNames[fe.StructField()]
		if !ok {
			name = fe.StructField()
		}
		if _, seen := fieldErrs[name]; seen {
			continue
		}
		msg, ok := messages[fe.StructField()+"."+fe.Tag()]
		if !ok {
			msg = messages[fe.StructField()]
		}
		fieldErrs[name] = msg
	}
	return fieldErrs
}

type FlightValidator struct {
	validate *validator.Validate
}

func NewFlightValidator() *FlightValidator {
	return &FlightValidator{validate: newValidate()}
}

var flightWireNames = map[string]string{
	"Number":           "number",
	"PointOfDeparture": "pointOfDeparture",
	"Destination":      "destination",
}

var flightMessages = map[string]string{
	"Number.required":           "Flight Number could not be empty",
	"Number":                    "Please use a non-empty alpha-numerical string which is 5 characters in length",
	"PointOfDeparture.required": "Point Of Departure could not be empty",
	"PointOfDeparture":          "Please use a non-empty alphabetical string, which is upper case and 3 characters in length",
	"Destination.required":      "Destination could not be empty",
	"Destination":               "Please use a non-empty alphabetical string, which is upper case, 3 characters in length and different from its point of departure",
}

// Validate returns nil when f is well-formed. It does not check the
// destination/departure self-conflict; that is a business rule owned by the
// flight service.
func (v *FlightValidator) Validate(f *domain.Flight) domain.FieldErrors {
	if err := v.validate.Struct(f); err != nil {
		return translate(err, flightWireNames, flightMessages)
	}
	return nil
}

type CustomerValidator struct {
	validate *validator.Validate
}

func NewCustomerValidator() *CustomerValidator {
	return &CustomerValidator{validate: newValidate()}
}

var customerWireNames = map[string]string{
	"Name":        "name",
	"Email":       "email",
	"PhoneNumber": "phoneNumber",
}

var customerMessages = map[string]string{
	"Name.required":        "Name could not be empty",
	"Name":                 "Please use a name containing only letters, spaces, hyphens and apostrophes, at most 50 characters",
	"Email.required":       "Email could not be empty",
	"Email":                "The email address is invalid",
	"PhoneNumber.required": "Phone Number could not be empty",
	"PhoneNumber":          "Please use a non-empty string, starting with 0 and 11 digits in length",
}

func (v *CustomerValidator) Validate(c *domain.Customer) domain.FieldErrors {
	if err := v.validate.Struct(c); err != nil {
		return translate(err, customerWireNames, customerMessages)
	}
	return nil
}

type BookingValidator struct {
	validate *validator.Validate
}

func NewBookingValidator() *BookingValidator {
	return &BookingValidator{validate: newValidate()}
}

var bookingWireNames = map[string]string{
	"CustomerID": "customerId",
	"FlightID":   "flightId",
	"Date":       "date",
}

var bookingMessages = map[string]string{
	"CustomerID": "Customer id must be a positive number",
	"FlightID":   "Flight id must be a positive number",
	"Date":       "Date could not be empty",
}

func (v *BookingValidator) Validate(b *domain.Booking) domain.FieldErrors {
	if err := v.validate.Struct(b); err != nil {
		return translate(err, bookingWireNames, bookingMessages)
	}
	return nil
}

package service

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DefaultMinBirthYear es el primer año aceptado por defecto.
const DefaultMinBirthYear = 1920

var (
	ErrInvalidYear    = errors.New("invalid year")
	ErrYearMissing    = errors.New("year missing")
	ErrYearNotNumeric = errors.New("year not numeric")
	ErrYearTooEarly   = errors.New("year too early")
	ErrYearInFuture   = errors.New("year in the future")
)

// InvalidYearError describe un año rechazado, con un mensaje apto para mostrar.
type InvalidYearError struct {
	Field   string
	Value   string
	Reason  error
	Message string
}

func (e *InvalidYearError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

func (e *InvalidYearError) Unwrap() []error {
	return []error{ErrInvalidYear, e.Reason}
}

// YearPairError junta los errores de ambos lados para reportarlos a la vez.
type YearPairError struct {
	Errors []*InvalidYearError
}

func (e *YearPairError) Error() string {
	msgs := make([]string, 0, len(e.Errors))
	for _, err := range e.Errors {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

func (e *YearPairError) Unwrap() []error {
	out := make([]error, 0, len(e.Errors))
	for _, err := range e.Errors {
		out = append(out, err)
	}
	return out
}

// Fields devuelve campo -> mensaje.
func (e *YearPairError) Fields() map[string]string {
	out := make(map[string]string, len(e.Errors))
	for _, err := range e.Errors {
		out[err.Field] = err.Message
	}
	return out
}

// YearValidator valida años de nacimiento contra [minYear, año actual].
type YearValidator struct {
	minYear int
	now     func() time.Time
}

func NewYearValidator(minYear int, now func() time.Time) *YearValidator {
	if minYear == 0 {
		minYear = DefaultMinBirthYear
	}
	if now == nil {
		now = time.Now
	}
	return &YearValidator{minYear: minYear, now: now}
}

// MinYear devuelve el primer año aceptado.
func (v *YearValidator) MinYear() int { return v.minYear }

// MaxYear devuelve el año calendario actual.
func (v *YearValidator) MaxYear() int { return v.now().Year() }

// Validate parsea y valida un año recibido como texto.
func (v *YearValidator) Validate(raw string) (int, error) {
	return v.validateField("", raw)
}

// ValidateYear valida un año ya numérico.
func (v *YearValidator) ValidateYear(year int) error {
	_, err := v.validateField("", strconv.Itoa(year))
	return err
}

// ValidatePair valida ambos años de forma independiente. Si alguno falla
// devuelve un *YearPairError con un mensaje por cada lado inválido.
func (v *YearValidator) ValidatePair(raw1, raw2 string) (int, int, error) {
	var pairErr YearPairError
	y1, err1 := v.validateField("year1", raw1)
	y2, err2 := v.validateField("year2", raw2)
	for _, err := range []error{err1, err2} {
		var yerr *InvalidYearError
		if errors.As(err, &yerr) {
			pairErr.Errors = append(pairErr.Errors, yerr)
		}
	}
	if len(pairErr.Errors) > 0 {
		return 0, 0, &pairErr
	}
	return y1, y2, nil
}

func (v *YearValidator) validateField(field, raw string) (int, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return 0, &InvalidYearError{Field: field, Value: raw, Reason: ErrYearMissing, Message: "Please enter a valid year"}
	}
	year, err := strconv.Atoi(value)
	if err != nil {
		return 0, &InvalidYearError{Field: field, Value: raw, Reason: ErrYearNotNumeric, Message: "Please enter a valid year"}
	}
	if year < v.minYear {
		return 0, &InvalidYearError{
			Field:   field,
			Value:   raw,
			Reason:  ErrYearTooEarly,
			Message: fmt.Sprintf("Year must be %d or later", v.minYear),
		}
	}
	if year > v.MaxYear() {
		return 0, &InvalidYearError{Field: field, Value: raw, Reason: ErrYearInFuture, Message: "Year cannot be in the future"}
	}
	return year, nil
}

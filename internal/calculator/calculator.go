// Package calculator is the boundary between user-entered forms and the
// amortization engine. It parses and validates form text, computes the
// schedule and prepares localized, display-ready views for the HTML and
// terminal interfaces.
package calculator

import (
	"errors"
	"math"

	"github.com/iwvelando/loan-amortization/internal/logging"
	"github.com/iwvelando/loan-amortization/pkg/amortization"
	"github.com/iwvelando/loan-amortization/pkg/input"
	"github.com/iwvelando/loan-amortization/pkg/locale"
	"github.com/iwvelando/loan-amortization/pkg/output"
	"github.com/iwvelando/loan-amortization/pkg/validation"
	"go.uber.org/zap"
)

// EmptyValue is shown for summary values before a schedule is calculated.
const EmptyValue = "—"

// State tells whether a view shows a schedule.
type State int

const (
	// Placeholder is shown before any calculation, after a reset and after
	// a validation failure.
	Placeholder State = iota
	// Ready holds a calculated schedule.
	Ready
)

// Form holds the raw text of the four inputs.
type Form struct {
	Principal string `json:"principal"`
	Rate      string `json:"rate"` // percent per period
	Periods   string `json:"periods"`
	System    string `json:"system"`
}

// RowView is a schedule row formatted for display.
type RowView struct {
	Period         int
	OpeningBalance string
	Amortization   string
	Interest       string
	Payment        string
	ClosingBalance string
}

// Summary holds the formatted schedule totals.
type Summary struct {
	System        string `json:"system"`
	BaseValue     string `json:"baseValue"`
	BaseLabel     string `json:"baseLabel"`
	TotalPayment  string `json:"totalPayment"`
	TotalInterest string `json:"totalInterest"`
	FinalBalance  string `json:"finalBalance"`
}

// View is everything an interface needs to render the calculator.
type View struct {
	State State
	Form  Form

	// Message is the localized validation message of a rejected form and
	// Field the input it refers to.
	Message string
	Field   string
	Err     error

	Placeholder string
	Subtitle    string
	Rows        []RowView
	Summary     Summary

	// Request and Result are set in the Ready state.
	Request amortization.Request
	Result  *amortization.Result
}

// Calculator turns forms into views. It holds no per-submission state and is
// safe for concurrent use.
type Calculator struct {
	logger        *zap.Logger
	renderer      *output.Renderer
	maxPeriods    int
	defaultSystem amortization.System
}

// Option configures a Calculator.
type Option func(*Calculator)

// WithMaxPeriods rejects period counts above limit. Zero means unlimited.
func WithMaxPeriods(limit int) Option {
	return func(c *Calculator) {
		c.maxPeriods = limit
	}
}

// WithDefaultSystem sets the system preselected in empty forms.
func WithDefaultSystem(system amortization.System) Option {
	return func(c *Calculator) {
		if system.Valid() {
			c.defaultSystem = system
		}
	}
}

// New returns a Calculator that formats views with renderer.
func New(logger *zap.Logger, renderer *output.Renderer, opts ...Option) *Calculator {
	c := &Calculator{
		logger:        logging.OrNop(logger),
		renderer:      renderer,
		defaultSystem: amortization.SAC,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Locale returns the locale views are translated to.
func (c *Calculator) Locale() *locale.Locale {
	return c.renderer.Locale
}

// DefaultForm returns an empty form with the default system selected.
func (c *Calculator) DefaultForm() Form {
	return Form{System: c.defaultSystem.String()}
}

// Reset returns the placeholder view with an empty form.
func (c *Calculator) Reset() View {
	return c.placeholder(c.DefaultForm())
}

// Submit validates form, computes its schedule and returns the view. A
// rejected form yields the placeholder view carrying the message of the first
// failing input, checked in the order principal, rate, periods, system.
func (c *Calculator) Submit(form Form) View {
	req, err := c.Parse(form)
	if err != nil {
		var fieldErr *validation.FieldError
		field := ""
		if errors.As(err, &fieldErr) {
			field = fieldErr.Field
		}
		c.logger.Debug("rejected schedule request",
			zap.String("op", "calculator.Submit"),
			zap.String("field", field),
			zap.Error(err),
		)

		view := c.placeholder(form)
		view.Message = c.renderer.Locale.ErrorMessage(err)
		view.Field = field
		view.Err = err
		return view
	}

	result := amortization.ComputeSchedule(req)
	c.logger.Debug("computed schedule",
		zap.String("op", "calculator.Submit"),
		zap.String("system", req.System.String()),
		zap.Float64("principal", req.Principal),
		zap.Float64("periodicRate", req.PeriodicRate),
		zap.Int("periods", req.PeriodCount),
	)

	return c.ready(form, req, result)
}

// Parse converts form text into a validated request.
func (c *Calculator) Parse(form Form) (amortization.Request, error) {
	req, err := validation.ValidateInputs(validation.Inputs{
		Principal:   parseOrNaN(form.Principal),
		RatePercent: parseOrNaN(form.Rate),
		Periods:     parseOrNaN(form.Periods),
		System:      form.System,
	})
	if err != nil {
		return amortization.Request{}, err
	}
	if err := validation.ValidatePeriodLimit(req.PeriodCount, c.maxPeriods); err != nil {
		return amortization.Request{}, err
	}
	return req, nil
}

func parseOrNaN(text string) float64 {
	v, err := input.ParseNumber(text)
	if err != nil {
		return math.NaN()
	}
	return v
}

func (c *Calculator) placeholder(form Form) View {
	l := c.renderer.Locale
	return View{
		State:       Placeholder,
		Form:        form,
		Placeholder: l.T(locale.MsgPlaceholder),
		Subtitle:    l.T(locale.MsgSubtitleEmpty),
		Summary: Summary{
			System:        EmptyValue,
			BaseValue:     EmptyValue,
			TotalPayment:  EmptyValue,
			TotalInterest: EmptyValue,
			FinalBalance:  EmptyValue,
		},
	}
}

func (c *Calculator) ready(form Form, req amortization.Request, result amortization.Result) View {
	l, f := c.renderer.Locale, c.renderer.Formatter

	rows := make([]RowView, len(result.Rows))
	for i, row := range result.Rows {
		rows[i] = RowView{
			Period:         row.Period,
			OpeningBalance: f.Currency(row.OpeningBalance),
			Amortization:   f.Currency(row.Amortization),
			Interest:       f.Currency(row.Interest),
			Payment:        f.Currency(row.Payment),
			ClosingBalance: f.Currency(row.ClosingBalance),
		}
	}

	return View{
		State:    Ready,
		Form:     form,
		Subtitle: c.renderer.Subtitle(req),
		Rows:     rows,
		Summary: Summary{
			System:        req.System.Label(),
			BaseValue:     f.Currency(result.BaseValue),
			BaseLabel:     l.BaseLabel(result.System),
			TotalPayment:  f.Currency(result.TotalPayment),
			TotalInterest: f.Currency(result.TotalInterest),
			FinalBalance:  f.Currency(result.FinalBalance),
		},
		Request: req,
		Result:  &result,
	}
}

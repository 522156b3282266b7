// Package output provides utilities for formatting and displaying amortization schedules.
package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/iwvelando/loan-amortization/pkg/amortization"
	"github.com/iwvelando/loan-amortization/pkg/constants"
	"github.com/iwvelando/loan-amortization/pkg/format"
	"github.com/iwvelando/loan-amortization/pkg/locale"
	"github.com/iwvelando/loan-amortization/pkg/mathutil"
)

// Renderer writes schedules in the configured language and currency.
type Renderer struct {
	Locale    *locale.Locale
	Formatter *format.Formatter
}

// NewRenderer returns a Renderer for loc, formatting currency with symbol.
func NewRenderer(loc *locale.Locale, symbol string) *Renderer {
	return &Renderer{Locale: loc, Formatter: format.New(loc.Tag, symbol)}
}

// Subtitle describes the request in one line, e.g.
// "Sistema Price · PV R$ 1.000,00 · i 1,0000% · n 2".
func (r *Renderer) Subtitle(req amortization.Request) string {
	return r.Locale.T(locale.MsgSubtitle,
		req.System.Label(),
		r.Formatter.Currency(req.Principal),
		r.Formatter.Percent(req.PeriodicRate),
		req.PeriodCount,
	)
}

// Write renders the schedule in the named output format.
func (r *Renderer) Write(w io.Writer, outputFormat string, req amortization.Request, result amortization.Result) error {
	switch outputFormat {
	case constants.OutputFormatPretty, "":
		return r.Pretty(w, req, result)
	case constants.OutputFormatCSV:
		return CSV(w, result)
	case constants.OutputFormatJSON:
		return JSON(w, req, result)
	default:
		return fmt.Errorf("unsupported output format %q", outputFormat)
	}
}

// Pretty outputs a human-readable table followed by the schedule summary.
func (r *Renderer) Pretty(w io.Writer, req amortization.Request, result amortization.Result) error {
	l, f := r.Locale, r.Formatter

	if _, err := fmt.Fprintf(w, "--- %s ---\n%s\n\n", l.T(locale.LabelTitle), r.Subtitle(req)); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t\n",
		l.T(locale.LabelPeriod),
		l.T(locale.LabelOpeningBalance),
		l.T(locale.LabelAmortization),
		l.T(locale.LabelInterest),
		l.T(locale.LabelPayment),
		l.T(locale.LabelClosingBalance),
	)
	for _, row := range result.Rows {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t\n",
			row.Period,
			f.Currency(row.OpeningBalance),
			f.Currency(row.Amortization),
			f.Currency(row.Interest),
			f.Currency(row.Payment),
			f.Currency(row.ClosingBalance),
		)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "\n%s (%s): %s\n%s: %s\n%s: %s\n%s: %s\n",
		l.T(locale.LabelBaseValue), l.BaseLabel(result.System), f.Currency(result.BaseValue),
		l.T(locale.LabelTotalPayment), f.Currency(result.TotalPayment),
		l.T(locale.LabelTotalInterest), f.Currency(result.TotalInterest),
		l.T(locale.LabelFinalBalance), f.Currency(result.FinalBalance),
	)
	return err
}

// CSV outputs the rows in comma-separated value format with plain numbers.
func CSV(w io.Writer, result amortization.Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"period", "opening_balance", "amortization", "interest", "payment", "closing_balance"}); err != nil {
		return err
	}
	for _, row := range result.Rows {
		record := []string{
			strconv.Itoa(row.Period),
			csvAmount(row.OpeningBalance),
			csvAmount(row.Amortization),
			csvAmount(row.Interest),
			csvAmount(row.Payment),
			csvAmount(row.ClosingBalance),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func csvAmount(v float64) string {
	v = mathutil.ZeroIfNegligible(mathutil.Round(v), constants.DisplayTolerance)
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// Document is the JSON representation of a calculated schedule.
type Document struct {
	Request amortization.Request `json:"request"`
	Result  amortization.Result  `json:"result"`
}

// JSON outputs the request and full-precision result as indented JSON.
func JSON(w io.Writer, req amortization.Request, result amortization.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(Document{Request: req, Result: result})
}

// Chart plots the closing balance and the payment of every period.
func (r *Renderer) Chart(w io.Writer, result amortization.Result) error {
	if len(result.Rows) == 0 {
		return fmt.Errorf("no rows to plot")
	}

	balances := make([]float64, len(result.Rows))
	payments := make([]float64, len(result.Rows))
	for i, row := range result.Rows {
		balances[i] = row.ClosingBalance
		payments[i] = row.Payment
	}

	series := []struct {
		data    []float64
		caption string
	}{
		{balances, r.Locale.T(locale.LabelClosingBalance)},
		{payments, r.Locale.T(locale.LabelPayment)},
	}
	for _, s := range series {
		graph := asciigraph.Plot(s.data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(s.caption),
		)
		if _, err := fmt.Fprintf(w, "%s\n\n", graph); err != nil {
			return err
		}
	}
	return nil
}

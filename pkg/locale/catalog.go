package locale

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Message keys. The key is the English text; English printers fall back to
// it, other languages are registered in init.
const (
	MsgInvalidPrincipal   = "Enter a valid financed amount."
	MsgInvalidRate        = "Enter a valid interest rate."
	MsgInvalidPeriodCount = "Enter the number of periods."
	MsgInvalidSystem      = "Choose SAC or Price."
	MsgPlaceholder        = "Fill in the fields above and click “Calculate table”."
	MsgSubtitleEmpty      = "Fill in the fields to generate the installments."
	MsgSubtitle           = "System %s · PV %s · i %s · n %d"

	LabelTitle            = "Loan amortization"
	LabelPrincipal        = "Financed amount"
	LabelRate             = "Interest rate per period (%%)"
	LabelPeriods          = "Number of periods"
	LabelSystem           = "System"
	LabelCalculate        = "Calculate table"
	LabelClear            = "Clear"
	LabelPeriod           = "Period"
	LabelOpeningBalance   = "Opening balance"
	LabelAmortization     = "Amortization"
	LabelInterest         = "Interest"
	LabelPayment          = "Payment"
	LabelClosingBalance   = "Closing balance"
	LabelBaseValue        = "Base value"
	LabelTotalPayment     = "Total paid"
	LabelTotalInterest    = "Total interest"
	LabelFinalBalance     = "Final balance"
	LabelBaseAmortization = "amortization"
	LabelBasePayment      = "payment"
)

var portuguese = map[string]string{
	MsgInvalidPrincipal:   "Informe um valor financiado válido.",
	MsgInvalidRate:        "Informe uma taxa de juros válida.",
	MsgInvalidPeriodCount: "Informe o número de períodos.",
	MsgInvalidSystem:      "Escolha SAC ou Price.",
	MsgPlaceholder:        "Preencha os dados acima e clique em “Calcular tabela”.",
	MsgSubtitleEmpty:      "Preencha os campos para gerar as parcelas.",
	MsgSubtitle:           "Sistema %s · PV %s · i %s · n %d",

	LabelTitle:            "Tabela de amortização",
	LabelPrincipal:        "Valor financiado",
	LabelRate:             "Taxa de juros por período (%%)",
	LabelPeriods:          "Número de períodos",
	LabelSystem:           "Sistema",
	LabelCalculate:        "Calcular tabela",
	LabelClear:            "Limpar",
	LabelPeriod:           "Período",
	LabelOpeningBalance:   "Saldo inicial",
	LabelAmortization:     "Amortização",
	LabelInterest:         "Juros",
	LabelPayment:          "Prestação",
	LabelClosingBalance:   "Saldo final",
	LabelBaseValue:        "Valor base",
	LabelTotalPayment:     "Total pago",
	LabelTotalInterest:    "Total de juros",
	LabelFinalBalance:     "Saldo final",
	LabelBaseAmortization: "amortização",
	LabelBasePayment:      "prestação",
}

func init() {
	for _, tag := range []language.Tag{language.Portuguese, language.BrazilianPortuguese} {
		for key, msg := range portuguese {
			if err := message.SetString(tag, key, msg); err != nil {
				panic(err)
			}
		}
	}
}

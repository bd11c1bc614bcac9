package format

import (
	"github.com/leekchan/accounting"
	"github.com/shopspring/decimal"
)

var rupee = accounting.Accounting{Symbol: "₹", Precision: 2, Thousand: ",", Decimal: "."}

func Price(amount interface{}) string {
	switch v := amount.(type) {
	case decimal.Decimal:
		return rupee.FormatMoneyDecimal(v)
	case float64:
		return rupee.FormatMoney(v)
	case string:
		parsed, err := decimal.NewFromString(v)
		if err != nil {
			return rupee.FormatMoneyDecimal(decimal.Zero)
		}
		return rupee.FormatMoneyDecimal(parsed)
	default:
		return rupee.FormatMoney(v)
	}
}

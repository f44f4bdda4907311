package format

import (
	"math/big"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/viant/tally-mcp/tally/model"
)

const (
	// DefaultDecimals applies when no token is known.
	DefaultDecimals = 18
	// MaxDecimals bounds token decimals to the digit count of a uint256.
	MaxDecimals    = 77
	fractionDigits = 3
)

var fractionScale = new(big.Int).Exp(big.NewInt(10), big.NewInt(fractionDigits), nil)

// Amount scales a base-unit integer by the token decimals and renders it with
// comma grouping, at most three fraction digits (rounded half up) and the token
// symbol when known. A missing amount renders as N/A and out of range decimals
// fall back to DefaultDecimals.
func Amount(raw model.BigInt, token *model.Token) string {
	if !raw.IsSet() {
		return NotAvailable
	}
	decimals := DefaultDecimals
	symbol := ""
	if token != nil {
		if token.Decimals >= 0 && token.Decimals <= MaxDecimals {
			decimals = token.Decimals
		}
		symbol = token.Symbol
	}
	ret := scale(raw.Int(), decimals)
	if symbol != "" {
		ret += " " + symbol
	}
	return ret
}

func scale(value *big.Int, decimals int) string {
	negative := value.Sign() < 0
	abs := new(big.Int).Abs(value)
	denominator := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil)

	// thousandths = round(abs * 1000 / 10^decimals)
	quotient, remainder := new(big.Int).QuoRem(new(big.Int).Mul(abs, fractionScale), denominator, new(big.Int))
	if new(big.Int).Lsh(remainder, 1).Cmp(denominator) >= 0 {
		quotient.Add(quotient, big.NewInt(1))
	}
	whole, fraction := new(big.Int).QuoRem(quotient, fractionScale, new(big.Int))

	var builder strings.Builder
	if negative && quotient.Sign() != 0 {
		builder.WriteByte('-')
	}
	builder.WriteString(humanize.BigComma(whole))
	if fraction.Sign() != 0 {
		digits := fraction.String()
		digits = strings.Repeat("0", fractionDigits-len(digits)) + digits
		builder.WriteByte('.')
		builder.WriteString(strings.TrimRight(digits, "0"))
	}
	return builder.String()
}

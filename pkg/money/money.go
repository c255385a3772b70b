// Package money parses free-form monetary text into a currency symbol and a
// decimal amount.
package money

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Money is a parsed monetary value. The currency is kept as the literal
// symbol found in the text ("$", "€", "C$", "NT$", ...), never mapped to an
// ISO code, so unrecognized symbols lose no information.
type Money struct {
	Currency string
	Amount   decimal.Decimal
}

// amountRe matches a run of symbol characters immediately followed by a
// numeric run. The symbol run excludes digits, whitespace and the separator
// characters, which keeps multi-character symbols like "NT$" intact while
// rejecting bare numbers.
var amountRe = regexp.MustCompile(`([^\s\d.,+\-]+)([0-9][0-9,]*(?:\.[0-9]+)?)`)

// Parse extracts the first symbol+amount pair from text. Thousands commas are
// stripped and "." is the decimal point. The second return value is false
// when no pair is found or the numeric run does not convert; Parse never
// panics on malformed input.
func Parse(text string) (Money, bool) {
	m, _, ok := Find(text)
	return m, ok
}

// Find is Parse plus the remainder of the text after the match, which callers
// use to pick up "+"-joined amount groups.
func Find(text string) (Money, string, bool) {
	text = strings.ReplaceAll(text, "\u00a0", " ")

	loc := amountRe.FindStringSubmatchIndex(text)
	if loc == nil {
		return Money{}, "", false
	}

	symbol := text[loc[2]:loc[3]]
	number := strings.ReplaceAll(text[loc[4]:loc[5]], ",", "")

	amount, err := decimal.NewFromString(number)
	if err != nil {
		return Money{}, "", false
	}

	return Money{Currency: symbol, Amount: amount}, text[loc[1]:], true
}

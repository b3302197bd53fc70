package exmini

import (
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// Operation is how a rate applies to an amount.
type Operation string

const (
	Multiply Operation = "multiply" // payable = amount * rate
	Divide   Operation = "divide"   // payable = amount / rate
)

// Apply computes the payable for amount at rate.
func (op Operation) Apply(amount, rate decimal.Decimal) decimal.Decimal {
	if op == Divide {
		return amount.Div(rate)
	}
	return amount.Mul(rate)
}

// anyCurrency matches any currency in a pair rule.
const anyCurrency = "*"

// PairRule tells how to convert from Base to Target. Base or Target can be "*".
type PairRule struct {
	Base      string
	Target    string
	Operation Operation
}

// Key returns the "BASE>TARGET" key of the rule.
func (r PairRule) Key() string { return r.Base + ">" + r.Target }

// DefaultOperation applies to pairs absent from the rule table.
const DefaultOperation = Multiply

// pairRules is the domain policy of how rates are quoted. Rates to IRR and from
// USD to AED are quoted in target units per base unit, rates from RMB are
// quoted in RMB per target unit.
var pairRules = map[string]Operation{
	"*>IRR":   Multiply,
	"USD>AED": Multiply,
	"RMB>AED": Divide,
	"RMB>USD": Divide,
	"CNY>AED": Divide,
	"CNY>USD": Divide,
}

// Rules returns the rule table sorted by key.
func Rules() []PairRule {
	rules := make([]PairRule, 0, len(pairRules))
	for key, op := range pairRules {
		base, target, _ := strings.Cut(key, ">")
		rules = append(rules, PairRule{Base: base, Target: target, Operation: op})
	}
	slices.SortFunc(rules, func(a, b PairRule) int { return strings.Compare(a.Key(), b.Key()) })
	return rules
}

// Rule returns the operation for converting base into target, and whether it
// was found in the table. An exact pair wins over a wildcard one.
func Rule(base, target string) (Operation, bool) {
	base, target = strings.ToUpper(strings.TrimSpace(base)), strings.ToUpper(strings.TrimSpace(target))
	for _, key := range []string{
		base + ">" + target,
		anyCurrency + ">" + target,
		base + ">" + anyCurrency,
	} {
		if op, ok := pairRules[key]; ok {
			return op, true
		}
	}
	return DefaultOperation, false
}

// ComputePayable returns the target currency amount of a conversion, or null
// when any of the inputs is missing or zero.
func ComputePayable(base, target string, amount, rate decimal.Decimal) decimal.NullDecimal {
	if strings.TrimSpace(base) == "" || strings.TrimSpace(target) == "" || amount.IsZero() || rate.IsZero() {
		return decimal.NullDecimal{}
	}
	op, _ := Rule(base, target)
	return decimal.NewNullDecimal(op.Apply(amount, rate))
}

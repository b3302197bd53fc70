package renderer

import (
	"bytes"
	"io"
	"strings"
	"text/template"

	"github.com/etnz/exmini"
)

// funcs are the helpers available to every template.
var funcs = template.FuncMap{
	"amount":     exmini.FormatAmount,
	"nullAmount": exmini.FormatNullAmount,
	"rate":       exmini.FormatRate,
	"cell":       cell,
	"date":       orNoDate,
	"join":       strings.Join,
}

// cell escapes a value for a markdown table cell, "-" when empty.
func cell(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "-"
	}
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}

// orNoDate returns s, or the missing date placeholder.
func orNoDate(s string) string {
	if s == "" {
		return exmini.NoDate
	}
	return s
}

// ConditionalBlock let you fully write a block and decide at the end to print it or not.
// If the block function returns true, the content is printed to w, otherwise it is discarded.
func ConditionalBlock(w io.Writer, block func(io.Writer) bool) {
	bw := &bytes.Buffer{}
	if block(bw) {
		io.Copy(w, bw)
	}
}

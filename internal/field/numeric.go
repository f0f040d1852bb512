package field

import (
	"math"
	"strconv"
)

// translateDecimal rewrites a typed comma into a point before the grammar
// check, so locales that type "3,7" still produce "3.7". Integer mode then
// rejects the point like any other.
func translateDecimal(runes []rune) []rune {
	for i, r := range runes {
		if r == ',' {
			runes[i] = '.'
		}
	}
	return runes
}

// acceptPartial is the keystroke gate: an optional leading minus, digits and
// at most one decimal point (float mode only). It deliberately accepts
// half-typed numbers like "-", "." and "-." that do not parse yet.
func acceptPartial(s string, integer bool) bool {
	seenDot := false
	for i, r := range s {
		switch {
		case r == '-':
			if i != 0 {
				return false
			}
		case r >= '0' && r <= '9':
		case r == '.':
			if integer || seenDot {
				return false
			}
			seenDot = true
		default:
			return false
		}
	}
	return true
}

// candidate builds the full text an edit would produce, for the gate to
// judge before anything reaches the buffer.
func (f *Field) candidate(start, end int, ins []rune) string {
	runes := f.buf.Runes()
	out := make([]rune, 0, len(runes)-(end-start)+len(ins))
	out = append(out, runes[:start]...)
	out = append(out, ins...)
	out = append(out, runes[end:]...)
	return string(out)
}

// commitNumeric turns the partial text into a final value on blur: parse,
// round (integer mode), clamp to bounds, rewrite the buffer to the canonical
// form and push the result to the bound cell.
func (f *Field) commitNumeric() {
	text := f.buf.String()
	v, err := strconv.ParseFloat(text, 64)
	if text == "" || err != nil {
		if f.opts.EmptyPolicy == EmptyAbsent {
			f.value = 0
			f.hasValue = false
			f.setText("")
			if f.binding != nil {
				f.binding.Set("")
			}
			f.emit(Event{Kind: ValueCommitted})
			return
		}
		v = 0
	}
	if f.opts.Integer {
		v = math.Round(v)
	}
	if f.opts.Min != nil && v < *f.opts.Min {
		v = *f.opts.Min
	}
	if f.opts.Max != nil && v > *f.opts.Max {
		v = *f.opts.Max
	}
	canon := formatNumber(v, f.opts.Integer)
	f.value = v
	f.hasValue = true
	f.setText(canon)
	if f.binding != nil {
		f.binding.Set(canon)
	}
	f.emit(Event{Kind: ValueCommitted, Text: canon, Value: v, HasValue: true})
}

// formatNumber renders the canonical, locale-agnostic text of a committed
// value: no exponent, no trailing zeros.
func formatNumber(v float64, integer bool) string {
	if integer {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

package field

import "github.com/mattn/go-runewidth"

// MeasureFunc reports the rendered width of a single codepoint in pixels.
// The host supplies one matching its font; DefaultMeasure assumes a
// monospace grid with one pixel per terminal cell.
type MeasureFunc func(r rune) float64

// DefaultMeasure measures codepoints on a monospace cell grid. Wide
// (CJK, emoji) codepoints count as two cells.
func DefaultMeasure(r rune) float64 {
	return float64(runewidth.RuneWidth(r))
}

// EmptyNumericPolicy decides what committing an empty or unparsable numeric
// field produces when no bound forces a default.
type EmptyNumericPolicy int

const (
	// EmptyZero commits empty text as the value 0, clamped to any bounds.
	EmptyZero EmptyNumericPolicy = iota
	// EmptyAbsent commits empty text as no value at all; the buffer and the
	// bound cell are cleared.
	EmptyAbsent
)

// Options is the immutable per-field configuration. Every behavior switch is
// fixed at construction; nothing is read from shared mutable state later.
type Options struct {
	// Width is the wrap limit in pixels. Zero or negative disables wrapping
	// except at explicit newlines.
	Width float64
	// LineHeight is the pixel height of one visual line, used to map pointer
	// coordinates to lines. Zero defaults to 1.
	LineHeight float64
	// Measure reports codepoint widths. Nil defaults to DefaultMeasure.
	Measure MeasureFunc

	// WrapIndent prefixes continuation lines produced by word wrap. It is
	// display-only and never enters the buffer.
	WrapIndent string
	// NewLineIndent prefixes lines that follow an explicit newline.
	NewLineIndent string

	// SingleLine rejects newline codepoints on insertion.
	SingleLine bool

	// MinLines and MaxLines clamp the visible-line window. MaxLines zero
	// means the window grows with the content.
	MinLines int
	MaxLines int

	// Numeric enables the numeric validation gate. Integer additionally
	// rejects the decimal point and rounds on commit.
	Numeric bool
	Integer bool
	// Min and Max clamp the committed value. Either may be nil.
	Min *float64
	Max *float64
	// EmptyPolicy decides what an empty numeric field commits as.
	EmptyPolicy EmptyNumericPolicy

	// BlinkRate is the caret phase length in seconds.
	BlinkRate float64
	// HintDelay is how long the pointer must hover before a hint is due.
	HintDelay float64
}

const (
	defaultBlinkRate = 0.5
	defaultHintDelay = 0.7
)

// withDefaults fills unset options. The huge fallback width makes an
// unconfigured field behave as "never wrap" without a special case in the
// layout loop.
func (o Options) withDefaults() Options {
	if o.Measure == nil {
		o.Measure = DefaultMeasure
	}
	if o.Width <= 0 {
		o.Width = 1 << 30
	}
	if o.LineHeight <= 0 {
		o.LineHeight = 1
	}
	if o.MinLines < 1 {
		o.MinLines = 1
	}
	if o.MaxLines != 0 && o.MaxLines < o.MinLines {
		o.MaxLines = o.MinLines
	}
	if o.Numeric {
		o.SingleLine = true
	}
	if o.BlinkRate <= 0 {
		o.BlinkRate = defaultBlinkRate
	}
	if o.HintDelay <= 0 {
		o.HintDelay = defaultHintDelay
	}
	return o
}

func (o Options) measureString(s string) float64 {
	w := 0.0
	for _, r := range s {
		w += o.Measure(r)
	}
	return w
}

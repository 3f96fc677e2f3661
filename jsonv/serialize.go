package jsonv

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Compact serializes v without insignificant whitespace.
func Compact(v *Value) string { return Indent(v, "") }

// Indent serializes v with one indent unit per nesting level. An empty
// indent produces compact output. Empty containers print as [] and {}.
func Indent(v *Value, indent string) string {
	var sb strings.Builder
	writeValue(&sb, v, indent, 0)
	return sb.String()
}

func writeValue(sb *strings.Builder, v *Value, indent string, depth int) {
	switch v.kind {
	case Null:
		sb.WriteString("null")
	case Bool:
		sb.WriteString(v.text)
	case Number:
		sb.WriteString(formatNumber(v.text))
	case String:
		writeQuoted(sb, v.text)
	case Array:
		if len(v.items) == 0 {
			sb.WriteString("[]")
			return
		}
		sb.WriteByte('[')
		for i, item := range v.items {
			if i > 0 {
				sb.WriteByte(',')
			}
			newline(sb, indent, depth+1)
			writeValue(sb, item, indent, depth+1)
		}
		newline(sb, indent, depth)
		sb.WriteByte(']')
	case Object:
		if len(v.members) == 0 {
			sb.WriteString("{}")
			return
		}
		sb.WriteByte('{')
		for i, m := range v.members {
			if i > 0 {
				sb.WriteByte(',')
			}
			newline(sb, indent, depth+1)
			writeQuoted(sb, m.Key)
			sb.WriteByte(':')
			if indent != "" {
				sb.WriteByte(' ')
			}
			writeValue(sb, m.Value, indent, depth+1)
		}
		newline(sb, indent, depth)
		sb.WriteByte('}')
	}
}

func newline(sb *strings.Builder, indent string, depth int) {
	if indent == "" {
		return
	}
	sb.WriteByte('\n')
	for range depth {
		sb.WriteString(indent)
	}
}

// Quote returns s as a JSON string literal.
func Quote(s string) string {
	var sb strings.Builder
	writeQuoted(&sb, s)
	return sb.String()
}

const hexDigits = "0123456789abcdef"

// Escape returns s with the escapes Quote applies, without the surrounding
// quotes, and additionally escapes DEL and C1 controls. The result is safe
// to write to a terminal and always occupies one line.
func Escape(s string) string {
	var sb strings.Builder
	writeEscaped(&sb, s, true)
	return sb.String()
}

// writeQuoted escapes only what JSON requires: quote, backslash, and C0
// controls. Other characters, including U+2028 and U+2029, pass through.
func writeQuoted(sb *strings.Builder, s string) {
	sb.WriteByte('"')
	writeEscaped(sb, s, false)
	sb.WriteByte('"')
}

func writeEscaped(sb *strings.Builder, s string, terminal bool) {
	for i := 0; i < len(s); {
		c := s[i]
		if c >= utf8.RuneSelf {
			r, n := utf8.DecodeRuneInString(s[i:])
			switch {
			case r == utf8.RuneError && n == 1:
				sb.WriteString(`�`)
			case terminal && r >= 0x80 && r <= 0x9f:
				writeUnicodeEscape(sb, byte(r))
			default:
				sb.WriteString(s[i : i+n])
			}
			i += n
			continue
		}
		switch c {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\b':
			sb.WriteString(`\b`)
		case '\f':
			sb.WriteString(`\f`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			if c < 0x20 || (terminal && c == 0x7f) {
				writeUnicodeEscape(sb, c)
			} else {
				sb.WriteByte(c)
			}
		}
		i++
	}
}

func writeUnicodeEscape(sb *strings.Builder, c byte) {
	sb.WriteString(`\u00`)
	sb.WriteByte(hexDigits[c>>4])
	sb.WriteByte(hexDigits[c&0xf])
}

// formatNumber prints a number literal in the shortest form that
// round-trips through float64, using exponent notation outside
// [1e-6, 1e21). Literals that overflow float64 print as null.
func formatNumber(literal string) string {
	f, err := strconv.ParseFloat(literal, 64)
	if err != nil && !math.IsInf(f, 0) {
		return literal
	}
	return FormatFloat(f)
}

// FormatFloat formats f the way Number.prototype.toString does, except that
// non-finite values print as null.
func FormatFloat(f float64) string {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return "null"
	}
	if f == 0 {
		return "0" // also -0
	}

	sign := ""
	if f < 0 {
		sign = "-"
		f = -f
	}

	// Shortest digits d1.d2d3...e±x
	e := strconv.FormatFloat(f, 'e', -1, 64)
	mant, expPart, _ := strings.Cut(e, "e")
	digits := strings.Replace(mant, ".", "", 1)
	exp, _ := strconv.Atoi(expPart)
	k := len(digits)
	n := exp + 1 // position of the decimal point relative to digits

	var out string
	switch {
	case k <= n && n <= 21:
		out = digits + strings.Repeat("0", n-k)
	case 0 < n && n <= 21:
		out = digits[:n] + "." + digits[n:]
	case -6 < n && n <= 0:
		out = "0." + strings.Repeat("0", -n) + digits
	default:
		es := "+"
		if n-1 < 0 {
			es = "-"
		}
		x := strconv.Itoa(abs(n - 1))
		if k == 1 {
			out = digits + "e" + es + x
		} else {
			out = digits[:1] + "." + digits[1:] + "e" + es + x
		}
	}
	return sign + out
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

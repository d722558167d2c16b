package motion

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// mixer returns the value at progress p between two endpoints. p may
// overshoot [0, 1] for back and spring curves.
type mixer func(p float64) Value

// newMixer picks how to blend a into b: numerically, as numbers sharing a
// unit suffix, as colors, or, when none of those fit, by switching to b as
// soon as progress leaves zero.
func newMixer(a, b Value) mixer {
	if af, ok := a.Float(); ok {
		if bf, ok := b.Float(); ok {
			return func(p float64) Value { return Num(lerp(af, bf, p)) }
		}
	}
	if an, au, ok := splitUnit(a); ok {
		if bn, bu, ok := splitUnit(b); ok && (au == bu || au == "" || bu == "") {
			unit := au
			if unit == "" {
				unit = bu
			}
			return func(p float64) Value { return Str(formatNumber(lerp(an, bn, p)) + unit) }
		}
	}
	if ac, aa, ok := parseColor(a); ok {
		if bc, ba, ok := parseColor(b); ok {
			return func(p float64) Value {
				return Str(formatColor(ac.BlendRgb(bc, p).Clamped(), clamp01(lerp(aa, ba, p))))
			}
		}
	}
	return func(p float64) Value {
		if p <= 0 {
			return a
		}
		return b
	}
}

func lerp(a, b, p float64) float64 {
	return a + (b-a)*p
}

func clamp01(f float64) float64 {
	return math.Max(0, math.Min(1, f))
}

var unitRe = regexp.MustCompile(`^([+-]?(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?)([a-zA-Z%]*)$`)

// splitUnit splits "12.5px" into 12.5 and "px". Plain numbers have no unit.
func splitUnit(v Value) (float64, string, bool) {
	if f, ok := v.Float(); ok {
		return f, "", true
	}
	if !v.IsString() {
		return 0, "", false
	}
	m := unitRe.FindStringSubmatch(strings.TrimSpace(v.String()))
	if m == nil {
		return 0, "", false
	}
	f, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, "", false
	}
	return f, m[2], true
}

// parseColor understands #rgb, #rrggbb, rgb(), rgba() and transparent.
func parseColor(v Value) (colorful.Color, float64, bool) {
	if !v.IsString() {
		return colorful.Color{}, 0, false
	}
	s := strings.TrimSpace(v.String())
	switch {
	case s == "transparent":
		return colorful.Color{}, 0, true
	case strings.HasPrefix(s, "#"):
		c, err := colorful.Hex(s)
		if err != nil {
			return colorful.Color{}, 0, false
		}
		return c, 1, true
	case strings.HasPrefix(s, "rgba("), strings.HasPrefix(s, "rgb("):
		body := s[strings.IndexByte(s, '(')+1:]
		if !strings.HasSuffix(body, ")") {
			return colorful.Color{}, 0, false
		}
		parts := strings.Split(strings.TrimSuffix(body, ")"), ",")
		if len(parts) != 3 && len(parts) != 4 {
			return colorful.Color{}, 0, false
		}
		var ch [4]float64
		ch[3] = 1
		for i, part := range parts {
			f, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
			if err != nil {
				return colorful.Color{}, 0, false
			}
			ch[i] = f
		}
		return colorful.Color{R: ch[0] / 255, G: ch[1] / 255, B: ch[2] / 255}, ch[3], true
	}
	return colorful.Color{}, 0, false
}

func formatColor(c colorful.Color, alpha float64) string {
	r, g, b := c.RGB255()
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", r, g, b, formatNumber(math.Round(alpha*1000)/1000))
}

package main

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// piExprRegex matches expressions like: pi, 2pi, 2*pi, pi/2, 3pi/4, 3*pi/4, -pi, -pi/2, -3*pi/4
var piExprRegex = regexp.MustCompile(`^(-?)(\d*\.?\d*)\s*\*?\s*pi(?:\s*/\s*(\d+\.?\d*))?$`)

// parseAngle parses a rotation angle given as a plain number or a pi
// expression.
//
// Supported formats:
//   - Plain numbers: "1.5707", "3.14", "-0.5", "1e-3"
//   - Pi constant: "pi"
//   - Pi fractions: "pi/2", "pi/4", "pi/3"
//   - Coefficients: "2pi", "2*pi", "3pi/4", "3*pi/4"
//   - Negative: "-pi", "-pi/2", "-3*pi/4"
func parseAngle(s string) (float64, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return 0, fmt.Errorf("empty angle")
	}

	if val, err := strconv.ParseFloat(s, 64); err == nil {
		if math.IsInf(val, 0) || math.IsNaN(val) {
			return 0, fmt.Errorf("angle %q is not finite", s)
		}
		return val, nil
	}

	m := piExprRegex.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("cannot parse angle %q", s)
	}

	coeff := 1.0
	if m[2] != "" {
		var err error
		if coeff, err = strconv.ParseFloat(m[2], 64); err != nil {
			return 0, fmt.Errorf("bad coefficient in %q", s)
		}
	}

	result := coeff * math.Pi
	if m[3] != "" {
		denom, err := strconv.ParseFloat(m[3], 64)
		if err != nil || denom == 0 {
			return 0, fmt.Errorf("bad denominator in %q", s)
		}
		result /= denom
	}

	if m[1] == "-" {
		result = -result
	}
	return result, nil
}

// formatAngle formats an angle, using pi notation for common fractions.
func formatAngle(val float64) string {
	piForms := []struct {
		value   float64
		display string
	}{
		{2 * math.Pi, "2*pi"},
		{math.Pi, "pi"},
		{math.Pi / 2, "pi/2"},
		{math.Pi / 3, "pi/3"},
		{math.Pi / 4, "pi/4"},
		{math.Pi / 6, "pi/6"},
		{math.Pi / 8, "pi/8"},
		{3 * math.Pi / 4, "3*pi/4"},
		{3 * math.Pi / 2, "3*pi/2"},
		{2 * math.Pi / 3, "2*pi/3"},
	}

	for _, pf := range piForms {
		if math.Abs(val-pf.value) < 1e-10 {
			return pf.display
		}
		if math.Abs(val+pf.value) < 1e-10 {
			return "-" + pf.display
		}
	}
	return fmt.Sprintf("%.4g", val)
}

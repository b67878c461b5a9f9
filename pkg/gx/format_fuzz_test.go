package gx

import (
	"math"
	"strconv"
	"strings"
	"testing"
)

func FuzzIntRoundTrip(f *testing.F) {
	f.Add(0)
	f.Add(-7)
	f.Add(math.MaxInt)
	f.Add(math.MinInt)

	f.Fuzz(func(t *testing.T, n int) {
		text := Format(Int(n))
		parsed, err := strconv.Atoi(text)
		if err != nil {
			t.Fatalf("parse %q: %v", text, err)
		}
		if parsed != n {
			t.Fatalf("round trip %d -> %q -> %d", n, text, parsed)
		}
		if len(text) > 1 && (text[0] == '0' || strings.HasPrefix(text, "-0")) {
			t.Fatalf("leading zero in %q", text)
		}
	})
}

func FuzzFloat64Fixed(f *testing.F) {
	f.Add(3.5)
	f.Add(-0.0)
	f.Add(1e300)
	f.Add(-1e-300)

	f.Fuzz(func(t *testing.T, v float64) {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return
		}
		checkFixed(t, Format(Float64(v)), math.Signbit(v))
	})
}

func FuzzFloat32Fixed(f *testing.F) {
	f.Add(float32(3.5))
	f.Add(float32(-1.25))
	f.Add(float32(math.MaxFloat32))

	f.Fuzz(func(t *testing.T, v float32) {
		wide := float64(v)
		if math.IsNaN(wide) || math.IsInf(wide, 0) {
			return
		}
		text := Format(Float32(v))
		checkFixed(t, text, math.Signbit(wide))
		if text != Format(Float64(wide)) {
			t.Fatalf("float32 %q differs from float64 rendering", text)
		}
	})
}

func checkFixed(t *testing.T, text string, negative bool) {
	t.Helper()
	if strings.ContainsAny(text, "eE") {
		t.Fatalf("exponent in %q", text)
	}
	if strings.Count(text, ".") != 1 {
		t.Fatalf("expected one decimal point in %q", text)
	}
	frac := text[strings.IndexByte(text, '.')+1:]
	if len(frac) != floatDigits {
		t.Fatalf("expected %d fractional digits in %q", floatDigits, text)
	}
	if strings.HasPrefix(text, "-") != negative {
		t.Fatalf("unexpected sign in %q", text)
	}
}

package idgen

import (
	"strings"
	"testing"
)

func TestClientID(t *testing.T) {
	a := ClientID("gx")
	b := ClientID("gx")
	if !strings.HasPrefix(a, "gx-") || len(a) != len("gx-")+12 {
		t.Fatalf("unexpected id %q", a)
	}
	if a == b {
		t.Fatalf("expected distinct ids")
	}
}

package player

import (
	"fmt"
	"testing"
)

func TestIsIP(t *testing.T) {
	valid := []string{"0.0.0.0", "127.0.0.1", "192.168.1.254", "255.255.255.255"}
	for _, s := range valid {
		if !IsIP(s) {
			t.Errorf("expected %q to be accepted", s)
		}
	}
	invalid := []string{"", "1.2.3", "1.2.3.4.5", "256.0.0.1", "1.2.3.-1", "a.b.c.d", "1..2.3", "localhost", "+1.2.3.4", "-0.0.0.0", "+1.+2.3.4", " 1.2.3.4"}
	for _, s := range invalid {
		if IsIP(s) {
			t.Errorf("expected %q to be rejected", s)
		}
	}
}

func TestIsIPEveryOctet(t *testing.T) {
	for n := 0; n <= 255; n++ {
		s := fmt.Sprintf("10.%d.0.%d", n, n)
		if !IsIP(s) {
			t.Fatalf("expected %q to be accepted", s)
		}
	}
	if IsIP("10.0.0.256") {
		t.Fatal("expected octet 256 to be rejected")
	}
}

func TestIsPort(t *testing.T) {
	for _, s := range []string{"0", "80", "9000", "65535"} {
		if !IsPort(s) {
			t.Errorf("expected %q to be accepted", s)
		}
	}
	for _, s := range []string{"", "-1", "65536", "port", "80.5", "+80", "-0"} {
		if IsPort(s) {
			t.Errorf("expected %q to be rejected", s)
		}
	}
}

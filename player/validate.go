package player

import (
	"regexp"
	"strconv"
	"strings"
)

const maxPort = 65535

var digits = regexp.MustCompile(`^\d+$`)

// IsIP reports whether s is a dotted IPv4 address with four parts in [0,255].
func IsIP(s string) bool {
	parts := strings.Split(s, ".")
	if len(parts) != 4 {
		return false
	}
	for _, p := range parts {
		if !digits.MatchString(p) {
			return false
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return false
		}
		if n < 0 || n > 255 {
			return false
		}
	}
	return true
}

// IsPort reports whether s is a decimal port in [0,65535].
func IsPort(s string) bool {
	if !digits.MatchString(s) {
		return false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return false
	}
	return n >= 0 && n <= maxPort
}

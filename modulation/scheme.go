package modulation

import (
	"fmt"
	"strings"
)

// Scheme identifies a modulation type.
type Scheme int

const (
	AM Scheme = iota
	FM
	PM
	DSBSC
	SSB
	ASK
	FSK
	BPSK
	QPSK

	numSchemes
)

var schemeNames = [numSchemes]string{
	AM:    "AM",
	FM:    "FM",
	PM:    "PM",
	DSBSC: "DSBSC",
	SSB:   "SSB",
	ASK:   "ASK",
	FSK:   "FSK",
	BPSK:  "BPSK",
	QPSK:  "QPSK",
}

var schemeDescriptions = [numSchemes]string{
	AM:    "Amplitude modulation with carrier",
	FM:    "Frequency modulation",
	PM:    "Phase modulation",
	DSBSC: "Double-sideband suppressed-carrier",
	SSB:   "Single sideband (upper)",
	ASK:   "Amplitude-shift keying (on-off)",
	FSK:   "Binary frequency-shift keying",
	BPSK:  "Binary phase-shift keying",
	QPSK:  "Quadrature phase-shift keying, Gray coded",
}

// Schemes returns all supported schemes in display order.
func Schemes() []Scheme {
	out := make([]Scheme, numSchemes)
	for i := range out {
		out[i] = Scheme(i)
	}
	return out
}

// ParseScheme resolves a scheme name such as "QPSK". Matching ignores case
// and surrounding white space.
func ParseScheme(name string) (Scheme, error) {
	key := strings.ToUpper(strings.TrimSpace(name))
	for i, n := range schemeNames {
		if n == key {
			return Scheme(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedScheme, name)
}

// Valid reports whether s is one of the supported schemes.
func (s Scheme) Valid() bool {
	return s >= 0 && s < numSchemes
}

// String returns the canonical scheme name.
func (s Scheme) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Scheme(%d)", int(s))
	}
	return schemeNames[s]
}

// Description returns a one-line human readable description.
func (s Scheme) Description() string {
	if !s.Valid() {
		return ""
	}
	return schemeDescriptions[s]
}

// Digital reports whether s maps bits to symbols.
func (s Scheme) Digital() bool {
	return s.BitsPerSymbol() > 0
}

// BitsPerSymbol returns 0 for analog schemes, 2 for QPSK and 1 for the
// other digital schemes.
func (s Scheme) BitsPerSymbol() int {
	switch s {
	case ASK, FSK, BPSK:
		return 1
	case QPSK:
		return 2
	default:
		return 0
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Scheme) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedScheme, s)
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Scheme) UnmarshalText(text []byte) error {
	v, err := ParseScheme(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

package validator

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/net/idna"
)

// ErrDomainTooLong is returned by a DomainCodec when the ASCII form of a
// domain exceeds 253 octets.
var ErrDomainTooLong = errors.New("domain too long")

// DomainCodec converts internationalized domain names. The email address
// validator only depends on this interface.
type DomainCodec interface {
	// Remap applies UTS #46 mapping: case folding, NFC normalization and
	// conversion of every label separator to ".". Empty labels are kept.
	Remap(domain string) (string, error)
	// ToASCII encodes a remapped domain with IDNA 2008. The error must match
	// ErrDomainTooLong when the result is too long.
	ToASCII(domain string) (string, error)
	// ToUnicode decodes an ASCII domain to its canonical Unicode form.
	ToUnicode(ascii string) (string, error)
}

const (
	maxDomainLength = 253
	maxLabelLength  = 63
)

// idnaCodec implements DomainCodec on top of golang.org/x/net/idna.
type idnaCodec struct {
	lookup   *idna.Profile
	register *idna.Profile
}

// NewIDNACodec returns the default DomainCodec.
func NewIDNACodec() DomainCodec {
	return &idnaCodec{
		lookup: idna.New(
			idna.MapForLookup(),
			idna.Transitional(false),
			idna.StrictDomainName(false),
			idna.VerifyDNSLength(false),
		),
		// Lengths are checked by ToASCII so that an overlong domain can be
		// told apart from other failures.
		register: idna.New(
			idna.ValidateForRegistration(),
			idna.VerifyDNSLength(false),
		),
	}
}

var defaultDomainCodec = NewIDNACodec()

func (c *idnaCodec) Remap(domain string) (string, error) {
	return c.lookup.ToUnicode(domain)
}

func (c *idnaCodec) ToASCII(domain string) (string, error) {
	ascii, err := c.register.ToASCII(domain)
	if err != nil {
		return "", err
	}
	if len(strings.TrimSuffix(ascii, ".")) > maxDomainLength {
		return "", ErrDomainTooLong
	}
	for label := range strings.SplitSeq(ascii, ".") {
		if len(label) > maxLabelLength {
			return "", fmt.Errorf("label %q is longer than %d octets", label, maxLabelLength)
		}
	}
	return ascii, nil
}

func (c *idnaCodec) ToUnicode(ascii string) (string, error) {
	return c.register.ToUnicode(ascii)
}

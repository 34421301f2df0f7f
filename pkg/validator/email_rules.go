package validator

import (
	"errors"
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

const (
	emailMaxLocalLength = 64
	emailMaxLength      = 254
)

// Character classes follow RFC 5322 atext, extended with every non-ASCII
// code point for SMTPUTF8 local parts.
const (
	emailAText     = "a-zA-Z0-9_!#$%&'*+\\-/=?^`{|}~"
	emailATextUTF8 = emailAText + `\x{0080}-\x{10FFFF}`
	emailHostLabel = `(?:(?:[a-zA-Z0-9][a-zA-Z0-9\-]*)?[a-zA-Z0-9])`
)

var (
	emailLocalASCII = regexp.MustCompile(`^[` + emailAText + `]+(?:\.[` + emailAText + `]+)*$`)
	emailLocalUTF8  = regexp.MustCompile(`^[` + emailATextUTF8 + `]+(?:\.[` + emailATextUTF8 + `]+)*$`)
	emailCharASCII  = regexp.MustCompile(`^[` + emailAText + `]$`)
	emailCharUTF8   = regexp.MustCompile(`^[` + emailATextUTF8 + `]$`)
	emailHostname   = regexp.MustCompile(`^` + emailHostLabel + `(?:\.` + emailHostLabel + `)*$`)
	emailTLD        = regexp.MustCompile(`[a-zA-Z]$`)
)

// EmailAddressValidator checks that strings are deliverable email addresses
// in normalized form: NFC local part, lower case IDNA decoded domain.
type EmailAddressValidator struct {
	allowUnnormalized bool
	allowSMTPUTF8     bool
	codec             DomainCodec
	required          bool
}

// EmailAddress builds an email address validator. Quoted local parts and
// address literals are not supported.
//
// Accepted options: AllowUnnormalized, AllowSMTPUTF8, WithDomainCodec,
// Required.
func EmailAddress(opts ...Option) (*EmailAddressValidator, error) {
	p, err := newParams("email_address", paramAllowUnnormalized|paramAllowSMTPUTF8|paramDomainCodec, opts)
	if err != nil {
		return nil, err
	}
	v := &EmailAddressValidator{
		allowUnnormalized: p.allowUnnormalized,
		allowSMTPUTF8:     p.allowSMTPUTF8,
		codec:             p.domainCodec,
		required:          p.required,
	}
	if v.codec == nil {
		v.codec = defaultDomainCodec
	}
	return v, nil
}

// MustEmailAddress is like EmailAddress but panics on invalid options.
func MustEmailAddress(opts ...Option) *EmailAddressValidator {
	return must(EmailAddress(opts...))
}

func (v *EmailAddressValidator) Check(value any) error {
	if value == nil {
		return missing(v.required)
	}
	address, ok := value.(string)
	if !ok {
		return typeMismatch("email address", value)
	}
	if !utf8.ValidString(address) {
		return NewConstraintError("expected text, but value is not valid utf-8")
	}

	parts := strings.Split(address, "@")
	switch {
	case len(parts) < 2:
		return NewConstraintError("email address is missing an '@' sign")
	case len(parts) > 2:
		return NewConstraintError("email address contains multiple '@' signs")
	}

	local, err := v.normalizeLocal(parts[0])
	if err != nil {
		return err
	}
	domain, asciiDomain, err := v.normalizeDomain(parts[1])
	if err != nil {
		return err
	}

	normalized := local.unicode + "@" + domain
	if local.ascii != "" {
		if len(local.ascii)+1+len(asciiDomain) > emailMaxLength {
			return NewConstraintError("email address is too long when idna encoded")
		}
	} else {
		if utf8.RuneCountInString(normalized) > emailMaxLength {
			return NewConstraintError("email address is too long")
		}
		if len(normalized) > emailMaxLength {
			return NewConstraintError("email address is too long when utf-8 encoded")
		}
	}

	if !v.allowUnnormalized && normalized != address {
		return NewConstraintError("email address is not normalized")
	}
	return nil
}

type emailLocal struct {
	unicode string
	ascii   string // empty unless the local part is plain ASCII
}

func (v *EmailAddressValidator) normalizeLocal(local string) (emailLocal, error) {
	if local == "" {
		return emailLocal{}, NewConstraintError("expected local part before '@', but found nothing")
	}
	if n := utf8.RuneCountInString(local); n > emailMaxLocalLength {
		return emailLocal{}, constraintErrorf("expected at most %d characters, but local part contains %d", emailMaxLocalLength, n)
	}

	if emailLocalASCII.MatchString(local) {
		return emailLocal{unicode: local, ascii: local}, nil
	}

	if !emailLocalUTF8.MatchString(local) {
		charset := emailCharASCII
		if v.allowSMTPUTF8 {
			charset = emailCharUTF8
		}
		return emailLocal{}, constraintErrorf("local part contains invalid characters: %q", invalidChars(local, charset))
	}
	if !v.allowSMTPUTF8 {
		return emailLocal{}, NewConstraintError("invalid non-ascii characters in local part")
	}
	return emailLocal{unicode: norm.NFC.String(local)}, nil
}

// invalidChars lists the distinct characters of s that charset does not
// match, sorted and comma separated. Periods are outside every charset, so a
// misplaced period is reported as well.
func invalidChars(s string, charset *regexp.Regexp) string {
	var bad []string
	for _, r := range s {
		c := string(r)
		if !charset.MatchString(c) && !slices.Contains(bad, c) {
			bad = append(bad, c)
		}
	}
	slices.Sort(bad)
	return strings.Join(bad, ", ")
}

func (v *EmailAddressValidator) normalizeDomain(domain string) (unicode, ascii string, err error) {
	if domain == "" {
		return "", "", NewConstraintError("expected domain name after '@', but found nothing")
	}

	remapped, err := v.codec.Remap(domain)
	if err != nil {
		return "", "", constraintErrorf("domain name contains invalid characters: %v", err)
	}
	if strings.HasSuffix(remapped, ".") {
		return "", "", NewConstraintError("unexpected period at end of domain name")
	}
	if strings.HasPrefix(remapped, ".") {
		return "", "", NewConstraintError("unexpected period at start of domain name")
	}
	if strings.Contains(remapped, "..") {
		return "", "", NewConstraintError("unexpected consecutive periods in domain name")
	}

	ascii, err = v.codec.ToASCII(remapped)
	if errors.Is(err, ErrDomainTooLong) {
		return "", "", NewConstraintError("domain name is too long")
	}
	if err != nil {
		return "", "", constraintErrorf("domain name contains invalid characters: %v", err)
	}

	if !emailHostname.MatchString(ascii) {
		return "", "", NewConstraintError("unexpected characters in address domain")
	}
	if !strings.Contains(ascii, ".") {
		return "", "", NewConstraintError("expected a subdomain of a tld, but domain is missing a period")
	}
	if !emailTLD.MatchString(ascii) {
		return "", "", NewConstraintError("expected a subdomain of a tld, but tld does not match pattern")
	}

	unicode, err = v.codec.ToUnicode(ascii)
	if err != nil {
		return "", "", constraintErrorf("domain name is not valid idna: %v", err)
	}
	return unicode, ascii, nil
}

func (v *EmailAddressValidator) Describe() string {
	d := describe("email_address")
	if v.allowUnnormalized {
		d.add("allow_unnormalized", formatBool(true))
	}
	if !v.allowSMTPUTF8 {
		d.add("allow_smtputf8", formatBool(false))
	}
	return d.required(v.required).String()
}

func (v *EmailAddressValidator) String() string { return v.Describe() }

package faker

import (
	"fmt"
	mathrand "math/rand/v2"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Faker produces pseudo-random values for fixtures. It is safe for
// sequential use within a single build pipeline; builds never invoke a Faker
// concurrently.
type Faker struct {
	rng    *mathrand.Rand
	seeded bool
}

// New creates a Faker with a randomly seeded PRNG. UUIDs come from
// crypto/rand via google/uuid.
func New() *Faker {
	return &Faker{
		rng: mathrand.New(mathrand.NewPCG(mathrand.Uint64(), mathrand.Uint64())),
	}
}

// NewSeeded creates a fully deterministic Faker. Identical seeds yield
// identical value streams, including UUIDs.
func NewSeeded(seed uint64) *Faker {
	return &Faker{
		rng:    mathrand.New(mathrand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		seeded: true,
	}
}

// Rand exposes the underlying PRNG for callers that need raw draws.
func (f *Faker) Rand() *mathrand.Rand {
	return f.rng
}

// IntN returns a random int in [0, n). Returns 0 for n <= 0.
func (f *Faker) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return f.rng.IntN(n)
}

// IntRange returns a random int in [lo, hi]. Bounds are swapped if reversed.
func (f *Faker) IntRange(lo, hi int) int {
	if lo > hi {
		lo, hi = hi, lo
	}
	if lo == hi {
		return lo
	}
	return lo + f.rng.IntN(hi-lo+1)
}

// Float64 returns a random float64 in [0, 1).
func (f *Faker) Float64() float64 {
	return f.rng.Float64()
}

// FloatRange returns a random float64 in [lo, hi).
func (f *Faker) FloatRange(lo, hi float64) float64 {
	if lo > hi {
		lo, hi = hi, lo
	}
	if lo == hi {
		return lo
	}
	return lo + f.rng.Float64()*(hi-lo)
}

// Bool returns true or false with equal probability.
func (f *Faker) Bool() bool {
	return f.rng.IntN(2) == 0
}

// Chance returns true with probability p (clamped to [0, 1]).
func (f *Faker) Chance(p float64) bool {
	return f.rng.Float64() < p
}

// pick returns a random element of a non-empty string slice.
func (f *Faker) pick(list []string) string {
	return list[f.rng.IntN(len(list))]
}

// =============================================================================
// Strings
// =============================================================================

const (
	lowerChars    = "abcdefghijklmnopqrstuvwxyz"
	upperChars    = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitChars    = "0123456789"
	hexChars      = "0123456789abcdef"
	alphaNumChars = lowerChars + upperChars + digitChars
)

func (f *Faker) fromCharset(charset string, n int) string {
	if n <= 0 {
		return ""
	}
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = charset[f.rng.IntN(len(charset))]
	}
	return string(buf)
}

// Letters returns n random lowercase letters.
func (f *Faker) Letters(n int) string { return f.fromCharset(lowerChars, n) }

// UpperLetters returns n random uppercase letters.
func (f *Faker) UpperLetters(n int) string { return f.fromCharset(upperChars, n) }

// Digits returns n random decimal digits.
func (f *Faker) Digits(n int) string { return f.fromCharset(digitChars, n) }

// Hex returns n random lowercase hex digits.
func (f *Faker) Hex(n int) string { return f.fromCharset(hexChars, n) }

// AlphaNum returns n random alphanumeric characters.
func (f *Faker) AlphaNum(n int) string { return f.fromCharset(alphaNumChars, n) }

// Word returns a random filler word.
func (f *Faker) Word() string { return f.pick(words) }

// Sentence returns a short sentence of 5-10 filler words.
func (f *Faker) Sentence() string {
	n := 5 + f.rng.IntN(6)
	parts := make([]string, n)
	for i := range parts {
		parts[i] = f.pick(words)
	}
	s := strings.Join(parts, " ") + "."
	return strings.ToUpper(s[:1]) + s[1:]
}

// Slug returns a random hyphenated slug of 2-3 words.
func (f *Faker) Slug() string {
	n := 2 + f.rng.IntN(2)
	parts := make([]string, n)
	for i := range parts {
		parts[i] = f.pick(words)
	}
	return strings.Join(parts, "-")
}

// =============================================================================
// IDs
// =============================================================================

// UUID returns a UUID v4 string. Seeded fakers derive the bytes from the
// PRNG for deterministic output.
func (f *Faker) UUID() string {
	if !f.seeded {
		return uuid.New().String()
	}
	var b [16]byte
	for i := range b {
		b[i] = byte(f.rng.IntN(256))
	}
	// Set version 4 and variant bits per RFC 4122.
	b[6] = (b[6] & 0x0f) | 0x40
	b[8] = (b[8] & 0x3f) | 0x80
	return fmt.Sprintf("%x-%x-%x-%x-%x", b[0:4], b[4:6], b[6:8], b[8:10], b[10:])
}

// ulidEncoding uses Crockford's Base32 (excludes I, L, O, U).
const ulidEncoding = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

// ULID returns a 26-character time-sortable identifier: 10 characters of
// millisecond timestamp plus 16 characters of randomness.
func (f *Faker) ULID() string {
	ms := time.Now().UnixMilli()
	buf := make([]byte, 26)
	for i := 9; i >= 0; i-- {
		buf[i] = ulidEncoding[ms&0x1f]
		ms >>= 5
	}
	for i := 10; i < 26; i++ {
		buf[i] = ulidEncoding[f.rng.IntN(32)]
	}
	return string(buf)
}

// =============================================================================
// Identity
// =============================================================================

// FirstName returns a random given name.
func (f *Faker) FirstName() string { return f.pick(firstNames) }

// LastName returns a random family name.
func (f *Faker) LastName() string { return f.pick(lastNames) }

// Name returns a random full name.
func (f *Faker) Name() string { return f.FirstName() + " " + f.LastName() }

// Username returns a lowercase username with a numeric suffix.
func (f *Faker) Username() string {
	return strings.ToLower(f.FirstName()) + f.Digits(2)
}

// Email returns a plausible address on a reserved example domain.
func (f *Faker) Email() string {
	return strings.ToLower(f.FirstName()) + "." + strings.ToLower(f.LastName()) + "@" + f.pick(emailDomains)
}

// Phone returns a US-format phone number in the reserved 555 block.
func (f *Faker) Phone() string {
	return "+1-555-" + f.Digits(3) + "-" + f.Digits(4)
}

// SSN returns a format-shaped social security number.
func (f *Faker) SSN() string {
	return f.Digits(3) + "-" + f.Digits(2) + "-" + f.Digits(4)
}

// JobTitle returns a random job title.
func (f *Faker) JobTitle() string {
	return f.pick(jobLevels) + " " + f.pick(jobFields) + " " + f.pick(jobRoles)
}

// =============================================================================
// Internet
// =============================================================================

// IPv4 returns a random dotted-quad address.
func (f *Faker) IPv4() string {
	return fmt.Sprintf("%d.%d.%d.%d",
		f.rng.IntN(256), f.rng.IntN(256), f.rng.IntN(256), f.rng.IntN(256))
}

// IPv6 returns a random address in the 2001:db8 documentation prefix.
func (f *Faker) IPv6() string {
	return "2001:0db8:" + f.Hex(4) + ":" + f.Hex(4) + ":" +
		f.Hex(4) + ":" + f.Hex(4) + ":" + f.Hex(4) + ":" + f.Hex(4)
}

// URL returns a random https URL on example.com.
func (f *Faker) URL() string {
	return "https://example.com/" + f.Slug()
}

// Hostname returns a random hostname under example.com.
func (f *Faker) Hostname() string {
	return f.Word() + ".example.com"
}

// UserAgent returns a realistic browser user agent string.
func (f *Faker) UserAgent() string { return f.pick(userAgents) }

// =============================================================================
// Geography
// =============================================================================

// City returns a random city name.
func (f *Faker) City() string { return f.pick(cities) }

// State returns a random state or province name.
func (f *Faker) State() string { return f.pick(states) }

// CountryCode returns a random ISO 3166-1 alpha-2 country code.
func (f *Faker) CountryCode() string { return f.pick(countryCodes) }

// Zip returns a five-digit postal code.
func (f *Faker) Zip() string { return f.Digits(5) }

// Street returns a street address line.
func (f *Faker) Street() string {
	return f.Digits(3) + " " + f.pick(streets)
}

// Address returns a full single-line address.
func (f *Faker) Address() string {
	return f.Street() + ", " + f.City() + ", " + f.Zip()
}

// Latitude returns a latitude in [-90, 90).
func (f *Faker) Latitude() float64 {
	return -90.0 + f.rng.Float64()*180.0
}

// Longitude returns a longitude in [-180, 180).
func (f *Faker) Longitude() float64 {
	return -180.0 + f.rng.Float64()*360.0
}

// =============================================================================
// Commerce and finance
// =============================================================================

// ProductName returns an adjective-material-noun product name.
func (f *Faker) ProductName() string {
	return f.pick(productAdjectives) + " " + f.pick(productMaterials) + " " + f.pick(productNouns)
}

// Color returns a random color name.
func (f *Faker) Color() string { return f.pick(colors) }

// Company returns a random company name.
func (f *Faker) Company() string {
	return f.pick(companyNames) + " " + f.pick(companySuffixes)
}

// Price returns a price in [1, 1000) with two decimal places.
func (f *Faker) Price() float64 {
	p := 1.0 + f.rng.Float64()*999.0
	return float64(int(p*100)) / 100
}

// CurrencyCode returns a random ISO 4217 currency code.
func (f *Faker) CurrencyCode() string { return f.pick(currencyCodes) }

// IBAN returns a format-shaped IBAN for a random supported country.
func (f *Faker) IBAN() string {
	p := ibanPrefixes[f.rng.IntN(len(ibanPrefixes))]
	body := p.country + f.Digits(2) + p.bankPrefix
	return body + f.Digits(p.length-len(body))
}

// =============================================================================
// Time
// =============================================================================

// DateTimeRFC3339 returns the current UTC time in RFC 3339 format.
func (f *Faker) DateTimeRFC3339() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// Date returns the current UTC date as YYYY-MM-DD.
func (f *Faker) Date() string {
	return time.Now().UTC().Format("2006-01-02")
}

// TimeOfDay returns the current UTC time as HH:MM:SSZ.
func (f *Faker) TimeOfDay() string {
	return time.Now().UTC().Format("15:04:05Z")
}

// PastDate returns an RFC 3339 timestamp up to a year in the past.
func (f *Faker) PastDate() string {
	d := time.Duration(f.rng.Int64N(int64(365 * 24 * time.Hour)))
	return time.Now().UTC().Add(-d).Format(time.RFC3339)
}

// Duration returns an ISO 8601 duration up to a day, e.g. "PT3H12M".
func (f *Faker) Duration() string {
	return fmt.Sprintf("PT%dH%dM", f.rng.IntN(24), f.rng.IntN(60))
}

package schemagen

import (
	"fmt"
	"strings"
)

// formatValue maps a declared string format to a faker value.
func (g *Generator) formatValue(format string) (string, bool) {
	switch format {
	case "email", "idn-email":
		return g.faker.Email(), true
	case "uuid":
		return g.faker.UUID(), true
	case "ulid":
		return g.faker.ULID(), true
	case "uri", "url", "uri-reference":
		return g.faker.URL(), true
	case "hostname", "idn-hostname":
		return g.faker.Hostname(), true
	case "ipv4":
		return g.faker.IPv4(), true
	case "ipv6":
		return g.faker.IPv6(), true
	case "date-time":
		return g.faker.DateTimeRFC3339(), true
	case "date":
		return g.faker.Date(), true
	case "time":
		return g.faker.TimeOfDay(), true
	case "duration":
		return g.faker.Duration(), true
	case "phone":
		return g.faker.Phone(), true
	case "password":
		return "P@ss" + g.faker.Word() + g.faker.Digits(2) + "!", true
	case "byte":
		return "dGVzdA==", true // base64("test")
	case "binary":
		return "48656c6c6f", true // hex("Hello")
	default:
		return "", false
	}
}

// patternValue recognizes common character-class patterns and produces a
// matching string. Arbitrary regular expressions are not synthesized; an
// unrecognized pattern falls through to the caller's next strategy.
func (g *Generator) patternValue(pattern string, minBound, maxBound *int) (string, bool) {
	n := g.stringLength(minBound, maxBound)
	if n < 1 {
		n = 1
	}
	switch pattern {
	case `^[0-9]+$`, `^\d+$`:
		return g.faker.Digits(n), true
	case `^[0-9a-f]+$`, `^[a-f0-9]+$`:
		return g.faker.Hex(n), true
	case `^[A-Z]+$`:
		return g.faker.UpperLetters(n), true
	case `^[a-z]+$`:
		return g.faker.Letters(n), true
	case `^[a-zA-Z0-9]+$`, `^[A-Za-z0-9]+$`:
		return g.faker.AlphaNum(n), true
	case `^[a-z0-9]+(?:-[a-z0-9]+)*$`:
		return g.faker.Slug(), true
	}
	if strings.Contains(pattern, "@") {
		return g.faker.Email(), true
	}
	if strings.Contains(pattern, "[0-9a-fA-F]{12}") || strings.Contains(strings.ToLower(pattern), "uuid") {
		return g.faker.UUID(), true
	}
	return "", false
}

// fieldNameValue maps common property names to realistic values, mirroring
// what API payloads usually carry under those names.
//
//nolint:gocyclo // Large switch for heuristic mapping is clearer than splitting.
func (g *Generator) fieldNameValue(name string) (string, bool) {
	lower := strings.ToLower(name)

	switch {
	case lower == "email" || strings.HasSuffix(lower, "email"):
		return g.faker.Email(), true
	case lower == "phone" || lower == "mobile" || lower == "tel" || strings.HasSuffix(lower, "phone"):
		return g.faker.Phone(), true
	case lower == "name" || lower == "full_name" || lower == "fullname":
		return g.faker.Name(), true
	case lower == "first_name" || lower == "firstname" || lower == "given_name":
		return g.faker.FirstName(), true
	case lower == "last_name" || lower == "lastname" || lower == "surname" || lower == "family_name":
		return g.faker.LastName(), true
	case lower == "username" || lower == "user_name" || lower == "login":
		return g.faker.Username(), true
	case lower == "address" || lower == "street" || lower == "street_address":
		return g.faker.Address(), true
	case lower == "company" || lower == "organization" || lower == "org":
		return g.faker.Company(), true
	case lower == "url" || lower == "uri" || lower == "href" || lower == "link" || lower == "website":
		return g.faker.URL(), true
	case lower == "ip" || lower == "ip_address" || lower == "ipaddress":
		return g.faker.IPv4(), true
	case lower == "id" || lower == "uuid" || strings.HasSuffix(lower, "_id"):
		return g.faker.UUID(), true
	case lower == "ssn":
		return g.faker.SSN(), true
	case lower == "slug":
		return g.faker.Slug(), true
	case lower == "title" || lower == "job_title" || lower == "jobtitle":
		return g.faker.JobTitle(), true
	case lower == "description" || lower == "bio" || lower == "summary" || lower == "about":
		return g.faker.Sentence(), true
	case lower == "city":
		return g.faker.City(), true
	case lower == "state" || lower == "province":
		return g.faker.State(), true
	case lower == "country" || lower == "country_code":
		return g.faker.CountryCode(), true
	case lower == "zip" || lower == "zipcode" || lower == "zip_code" || lower == "postal_code" || lower == "postalcode":
		return g.faker.Zip(), true
	case lower == "currency" || lower == "currency_code":
		return g.faker.CurrencyCode(), true
	case lower == "color" || lower == "colour":
		return g.faker.Color(), true
	case lower == "latitude" || lower == "lat":
		return fmt.Sprintf("%.6f", g.faker.Latitude()), true
	case lower == "longitude" || lower == "lng" || lower == "lon":
		return fmt.Sprintf("%.6f", g.faker.Longitude()), true
	case strings.HasSuffix(lower, "_at") || lower == "created" || lower == "updated" ||
		strings.HasSuffix(lower, "date") || lower == "timestamp":
		return g.faker.DateTimeRFC3339(), true
	}
	return "", false
}

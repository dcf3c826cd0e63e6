package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

type LookupKind string

const (
	LookupKindPostalCode LookupKind = "cep"
	LookupKindCity       LookupKind = "city"
	LookupKindCoordinate LookupKind = "coordinate"

	postalCodeLength = 8
)

// Lookup is exactly one of PostalCodeLookup, CityLookup or CoordinateLookup.
type Lookup interface {
	Kind() LookupKind
	isLookup()
}

// PostalCodeLookup holds a CEP normalised to eight digits.
type PostalCodeLookup struct {
	Code string
}

type CityLookup struct {
	StateCode string
	CityName  string
}

type CoordinateLookup struct {
	Latitude  float64
	Longitude float64
}

func (PostalCodeLookup) Kind() LookupKind { return LookupKindPostalCode }
func (PostalCodeLookup) isLookup()        {}

func (CityLookup) Kind() LookupKind { return LookupKindCity }
func (CityLookup) isLookup()        {}

func (CoordinateLookup) Kind() LookupKind { return LookupKindCoordinate }
func (CoordinateLookup) isLookup()        {}

// LookupParams are the raw resolve query parameters.
type LookupParams struct {
	CEP       string
	StateCode string
	City      string
	Latitude  string
	Longitude string
}

// ParseLookup turns raw parameters into a single lookup shape.
// No parameter at all yields ErrMissingParams; partial or mixed shapes yield ErrMalformedLookup.
func ParseLookup(p LookupParams) (Lookup, error) {
	cep := strings.TrimSpace(p.CEP)
	uf := strings.TrimSpace(p.StateCode)
	city := strings.TrimSpace(p.City)
	lat := strings.TrimSpace(p.Latitude)
	lng := strings.TrimSpace(p.Longitude)

	hasPostal := cep != ""
	hasCity := uf != "" || city != ""
	hasPoint := lat != "" || lng != ""

	shapes := 0
	for _, present := range []bool{hasPostal, hasCity, hasPoint} {
		if present {
			shapes++
		}
	}

	switch {
	case shapes == 0:
		return nil, ErrMissingParams
	case shapes > 1:
		return nil, fmt.Errorf("%w: only one of cep, uf+city or lat+lng is allowed", ErrMalformedLookup)
	}

	var (
		lookup Lookup
		err    error
	)
	switch {
	case hasPostal:
		lookup, err = NewPostalCodeLookup(cep)
	case hasCity:
		lookup, err = NewCityLookup(uf, city)
	default:
		lookup, err = NewCoordinateLookup(lat, lng)
	}
	if err != nil {
		return nil, err
	}

	return lookup, nil
}

func NewPostalCodeLookup(raw string) (PostalCodeLookup, error) {
	code, ok := NormalizePostalCode(raw)
	if !ok {
		return PostalCodeLookup{}, fmt.Errorf("%w: cep must have %d digits", ErrMalformedLookup, postalCodeLength)
	}

	return PostalCodeLookup{Code: code}, nil
}

func NewCityLookup(uf, city string) (CityLookup, error) {
	if uf == "" || city == "" {
		return CityLookup{}, fmt.Errorf("%w: uf and city must be sent together", ErrMalformedLookup)
	}

	stateCode, ok := NormalizeStateCode(uf)
	if !ok {
		return CityLookup{}, fmt.Errorf("%w: uf must be two letters", ErrMalformedLookup)
	}

	return CityLookup{StateCode: stateCode, CityName: strings.Join(strings.Fields(city), " ")}, nil
}

func NewCoordinateLookup(lat, lng string) (CoordinateLookup, error) {
	if lat == "" || lng == "" {
		return CoordinateLookup{}, fmt.Errorf("%w: lat and lng must be sent together", ErrMalformedLookup)
	}

	latitude, err := strconv.ParseFloat(lat, 64)
	if err != nil || !isFinite(latitude) || latitude < -90 || latitude > 90 {
		return CoordinateLookup{}, fmt.Errorf("%w: lat must be a number in [-90, 90]", ErrMalformedLookup)
	}

	longitude, err := strconv.ParseFloat(lng, 64)
	if err != nil || !isFinite(longitude) || longitude < -180 || longitude > 180 {
		return CoordinateLookup{}, fmt.Errorf("%w: lng must be a number in [-180, 180]", ErrMalformedLookup)
	}

	return CoordinateLookup{Latitude: latitude, Longitude: longitude}, nil
}

// isFinite rejects NaN and infinities, which compare false against any range bound.
func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// NormalizePostalCode strips punctuation such as "13010-111" and checks for eight digits.
func NormalizePostalCode(raw string) (string, bool) {
	var b strings.Builder
	for _, r := range raw {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '-' || r == '.' || unicode.IsSpace(r):
		default:
			return "", false
		}
	}

	code := b.String()
	return code, len(code) == postalCodeLength
}

func NormalizeStateCode(raw string) (string, bool) {
	uf := strings.ToUpper(strings.TrimSpace(raw))
	if len(uf) != 2 {
		return "", false
	}
	for _, r := range uf {
		if r < 'A' || r > 'Z' {
			return "", false
		}
	}

	return uf, true
}

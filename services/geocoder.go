package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"civicreport-be/apperrors"

	"github.com/tidwall/gjson"
)

// Sri Lanka bounding box
const (
	sriLankaNorth = 9.8
	sriLankaSouth = 5.9
	sriLankaEast  = 81.9
	sriLankaWest  = 79.6
)

const maxResponseBytes = 1 << 20

type AddressComponents struct {
	Road     string `json:"road"`
	Suburb   string `json:"suburb"`
	City     string `json:"city"`
	District string `json:"district"`
	Province string `json:"province"`
	Postcode string `json:"postcode"`
	Country  string `json:"country"`
}

type Location struct {
	Latitude         float64           `json:"latitude"`
	Longitude        float64           `json:"longitude"`
	FormattedAddress string            `json:"formatted_address"`
	Components       AddressComponents `json:"address_components"`
	Confidence       float64           `json:"confidence"`
	Type             string            `json:"type"`
}

type Address struct {
	FormattedAddress string            `json:"formatted_address"`
	Components       AddressComponents `json:"address_components"`
	Type             string            `json:"type"`
}

type Suggestion struct {
	FormattedAddress string  `json:"formatted_address"`
	Latitude         float64 `json:"latitude"`
	Longitude        float64 `json:"longitude"`
	Type             string  `json:"type"`
	Importance       float64 `json:"importance"`
}

type District struct {
	Name     string `json:"name"`
	Province string `json:"province"`
}

type Validation struct {
	Valid       bool         `json:"valid"`
	Location    *Location    `json:"location_data"`
	Warning     string       `json:"warning,omitempty"`
	Error       string       `json:"error,omitempty"`
	Confidence  float64      `json:"confidence"`
	Suggestions []Suggestion `json:"suggestions,omitempty"`
}

// Geocoder talks to a Nominatim instance, restricted to Sri Lanka.
type Geocoder struct {
	baseURL   string
	userAgent string
	client    *http.Client
}

func NewGeocoder(baseURL, userAgent string, timeout time.Duration) *Geocoder {
	return &Geocoder{
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: userAgent,
		client:    &http.Client{Timeout: timeout},
	}
}

// Geocode resolves a free-text address to its best match.
func (g *Geocoder) Geocode(ctx context.Context, address string) (*Location, error) {
	if strings.TrimSpace(address) == "" {
		return nil, fmt.Errorf("%w: address is required", apperrors.ErrInvalidArgument)
	}

	results, err := g.get(ctx, "/search", url.Values{
		"q":              {enhanceAddress(address)},
		"format":         {"json"},
		"limit":          {"1"},
		"countrycodes":   {"lk"},
		"addressdetails": {"1"},
	})
	if err != nil {
		return nil, err
	}

	first := results.Get("0")
	if !first.Exists() {
		return nil, fmt.Errorf("%w: no match for %q", apperrors.ErrNotFound, address)
	}
	return &Location{
		Latitude:         first.Get("lat").Float(),
		Longitude:        first.Get("lon").Float(),
		FormattedAddress: first.Get("display_name").String(),
		Components:       addressComponents(first.Get("address")),
		Confidence:       floatOr(first.Get("importance"), 0.5),
		Type:             stringOr(first.Get("type"), "unknown"),
	}, nil
}

func (g *Geocoder) ReverseGeocode(ctx context.Context, lat, lon float64) (*Address, error) {
	result, err := g.get(ctx, "/reverse", url.Values{
		"lat":            {strconv.FormatFloat(lat, 'f', -1, 64)},
		"lon":            {strconv.FormatFloat(lon, 'f', -1, 64)},
		"format":         {"json"},
		"addressdetails": {"1"},
		"zoom":           {"18"},
	})
	if err != nil {
		return nil, err
	}

	if result.Get("error").Exists() || !result.Get("display_name").Exists() {
		return nil, fmt.Errorf("%w: no address at %.6f, %.6f", apperrors.ErrNotFound, lat, lon)
	}
	return &Address{
		FormattedAddress: result.Get("display_name").String(),
		Components:       addressComponents(result.Get("address")),
		Type:             stringOr(result.Get("type"), "unknown"),
	}, nil
}

// Suggestions returns up to limit candidate places for autocomplete.
func (g *Geocoder) Suggestions(ctx context.Context, query string, limit int) ([]Suggestion, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("%w: query is required", apperrors.ErrInvalidArgument)
	}
	if limit <= 0 {
		limit = 5
	}

	results, err := g.get(ctx, "/search", url.Values{
		"q":              {enhanceAddress(query)},
		"format":         {"json"},
		"limit":          {strconv.Itoa(limit)},
		"countrycodes":   {"lk"},
		"addressdetails": {"1"},
	})
	if err != nil {
		return nil, err
	}

	suggestions := make([]Suggestion, 0, limit)
	for _, r := range results.Array() {
		suggestions = append(suggestions, Suggestion{
			FormattedAddress: r.Get("display_name").String(),
			Latitude:         r.Get("lat").Float(),
			Longitude:        r.Get("lon").Float(),
			Type:             stringOr(r.Get("type"), "unknown"),
			Importance:       floatOr(r.Get("importance"), 0.5),
		})
	}
	return suggestions, nil
}

// ValidateSriLankan geocodes address and checks it falls inside Sri Lanka.
func (g *Geocoder) ValidateSriLankan(ctx context.Context, address string) (*Validation, error) {
	location, err := g.Geocode(ctx, address)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		suggestions, sugErr := g.Suggestions(ctx, address, 3)
		if sugErr != nil {
			log.Printf("Location suggestions for %q: %v", address, sugErr)
		}
		return &Validation{Valid: false, Error: "Could not find this location", Suggestions: suggestions}, nil
	}

	v := &Validation{Confidence: location.Confidence}
	if InSriLanka(location.Latitude, location.Longitude) {
		v.Valid = true
		v.Location = location
	} else {
		v.Warning = "Location appears to be outside Sri Lanka"
	}
	return v, nil
}

func InSriLanka(lat, lon float64) bool {
	return lat >= sriLankaSouth && lat <= sriLankaNorth && lon >= sriLankaWest && lon <= sriLankaEast
}

func (g *Geocoder) get(ctx context.Context, path string, params url.Values) (gjson.Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("build geocoder request: %w", err)
	}
	req.Header.Set("User-Agent", g.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("%w: geocoder request: %v", apperrors.ErrDataUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return gjson.Result{}, fmt.Errorf("%w: read geocoder response: %v", apperrors.ErrDataUnavailable, err)
	}
	if resp.StatusCode != http.StatusOK {
		return gjson.Result{}, fmt.Errorf("%w: geocoder returned %d", apperrors.ErrDataUnavailable, resp.StatusCode)
	}
	if !gjson.ValidBytes(body) {
		return gjson.Result{}, fmt.Errorf("%w: geocoder returned invalid JSON", apperrors.ErrDataUnavailable)
	}
	return gjson.ParseBytes(body), nil
}

func addressComponents(a gjson.Result) AddressComponents {
	city := a.Get("city").String()
	if city == "" {
		city = a.Get("town").String()
	}
	return AddressComponents{
		Road:     a.Get("road").String(),
		Suburb:   a.Get("suburb").String(),
		City:     city,
		District: a.Get("state_district").String(),
		Province: a.Get("state").String(),
		Postcode: a.Get("postcode").String(),
		Country:  stringOr(a.Get("country"), "Sri Lanka"),
	}
}

func stringOr(r gjson.Result, fallback string) string {
	if !r.Exists() || r.String() == "" {
		return fallback
	}
	return r.String()
}

func floatOr(r gjson.Result, fallback float64) float64 {
	if !r.Exists() {
		return fallback
	}
	return r.Float()
}

// addressEnhancements rewrite well-known local names into queries Nominatim
// resolves reliably. First match wins.
var addressEnhancements = []struct{ key, query string }{
	{"colombo main street", "Main Street, Colombo, Sri Lanka"},
	{"galle road", "Galle Road, Colombo, Sri Lanka"},
	{"kandy road", "Kandy Road, Sri Lanka"},
	{"negombo", "Negombo, Western Province, Sri Lanka"},
	{"gampaha", "Gampaha, Western Province, Sri Lanka"},
	{"mount lavinia", "Mount Lavinia, Colombo, Sri Lanka"},
	{"dehiwala", "Dehiwala, Colombo, Sri Lanka"},
	{"moratuwa", "Moratuwa, Western Province, Sri Lanka"},
	{"kelaniya", "Kelaniya, Western Province, Sri Lanka"},
	{"maharagama", "Maharagama, Western Province, Sri Lanka"},
	{"kotte", "Sri Jayawardenepura Kotte, Western Province, Sri Lanka"},
	{"battaramulla", "Battaramulla, Western Province, Sri Lanka"},
}

func enhanceAddress(address string) string {
	address = strings.TrimSpace(address)
	lower := strings.ToLower(address)
	for _, e := range addressEnhancements {
		if strings.Contains(lower, e.key) {
			return e.query
		}
	}
	if !strings.Contains(lower, "sri lanka") {
		address += ", Sri Lanka"
	}
	return address
}

var sriLankanDistricts = []District{
	{"Colombo", "Western"}, {"Gampaha", "Western"}, {"Kalutara", "Western"},
	{"Kandy", "Central"}, {"Matale", "Central"}, {"Nuwara Eliya", "Central"},
	{"Galle", "Southern"}, {"Matara", "Southern"}, {"Hambantota", "Southern"},
	{"Jaffna", "Northern"}, {"Kilinochchi", "Northern"}, {"Mannar", "Northern"},
	{"Vavuniya", "Northern"}, {"Mullaitivu", "Northern"},
	{"Batticaloa", "Eastern"}, {"Ampara", "Eastern"}, {"Trincomalee", "Eastern"},
	{"Kurunegala", "North Western"}, {"Puttalam", "North Western"},
	{"Anuradhapura", "North Central"}, {"Polonnaruwa", "North Central"},
	{"Badulla", "Uva"}, {"Moneragala", "Uva"},
	{"Ratnapura", "Sabaragamuwa"}, {"Kegalle", "Sabaragamuwa"},
}

// Districts lists the 25 administrative districts.
func Districts() []District {
	districts := make([]District, len(sriLankanDistricts))
	copy(districts, sriLankanDistricts)
	return districts
}

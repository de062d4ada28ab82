// Package jobsites recommends region-appropriate job boards: the
// user's coordinates are reverse-geocoded via Nominatim, then the
// model returns a cleaned JSON list of job search websites.
package jobsites

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/alnah/go-cv2pdf/internal/httputil"
)

// nominatimURL is the OpenStreetMap reverse geocoding endpoint.
const nominatimURL = "https://nominatim.openstreetmap.org/reverse"

// userAgent identifies the module to Nominatim, which rejects
// anonymous clients.
const userAgent = "go-cv2pdf/1.0"

// ErrNoLocation is returned when neither coordinates nor a country
// code are provided.
var ErrNoLocation = errors.New("location not provided")

// systemPrompt drives the job-board recommendation.
const systemPrompt = `You are an expert career advisor and job-market analyst.

Given the user's location, recommend the most relevant, popular and trustworthy ONLINE JOB SEARCH WEBSITES for that region.

Rules:
- Suggest 3-7 websites.
- Prefer local or region-specific sites; include global platforms (like LinkedIn, Indeed) only if they are actually widely used in that region.
- Include only job boards, career portals, or official employment services. No generic forums, Telegram channels, or unrelated sites.
- Be up to date and realistic, but do NOT invent obviously fake brands.
- Output MUST be valid JSON only, with no extra text.

Use this JSON schema:
[
  {
    "name": "string",
    "url": "string",
    "description": "short string (1-2 sentences)",
    "country_or_region": "string",
    "primary_language": "string"
  }
]`

// Site is one recommended job board.
type Site struct {
	Name        string `json:"name"`
	URL         string `json:"url"`
	Description string `json:"description"`
	Region      string `json:"country_or_region"`
	Language    string `json:"primary_language"`
}

// Location identifies where the user is searching from. Coordinates
// take precedence over the country code.
type Location struct {
	Latitude    *float64
	Longitude   *float64
	CountryCode string
	Language    string // UI language for descriptions
}

// Result is the resolved location plus the recommended sites.
type Result struct {
	CountryCode string `json:"country_code"`
	CountryName string `json:"country_name"`
	City        string `json:"city"`
	Sites       []Site `json:"sites"`
}

// completer matches the root package's Completer without importing it.
type completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// Client resolves locations and asks the model for recommendations.
type Client struct {
	completer  completer
	httpClient *http.Client
	geocodeURL string // overridable in tests
}

// New creates a Client using the given completion backend.
func New(c completer) *Client {
	return &Client{
		completer:  c,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		geocodeURL: nominatimURL,
	}
}

// Recommend resolves the location and returns job-board suggestions.
// Geocoding failures degrade to an unknown country rather than failing
// the request; an unparsable model response yields an empty site list.
func (c *Client) Recommend(ctx context.Context, loc Location) (*Result, error) {
	res := &Result{}

	switch {
	case loc.Latitude != nil && loc.Longitude != nil:
		geo := c.reverseGeocode(ctx, *loc.Latitude, *loc.Longitude)
		res.CountryCode = geo.countryCode
		res.CountryName = geo.countryName
		res.City = geo.city
	case loc.CountryCode != "":
		res.CountryCode = strings.ToLower(loc.CountryCode)
		res.CountryName = strings.ToUpper(loc.CountryCode)
	default:
		return nil, ErrNoLocation
	}

	language := loc.Language
	if language == "" {
		language = "en"
	}

	locationText := fmt.Sprintf("%s (%s)", res.CountryName, strings.ToUpper(res.CountryCode))
	if res.City != "" {
		locationText = fmt.Sprintf("%s, %s", res.City, locationText)
	}

	user := fmt.Sprintf(
		"User interface language: %s.\nUser location: %s.\n\n"+
			"Return ONLY a JSON array following the schema.\n"+
			"Descriptions can be in English if you are unsure.",
		language, locationText)

	content, err := c.completer.Complete(ctx, systemPrompt, user)
	if err != nil {
		return nil, fmt.Errorf("recommending job sites: %w", err)
	}

	res.Sites = parseSites(content)
	if res.CountryCode == "" {
		res.CountryCode = "unknown"
	}
	if res.CountryName == "" {
		res.CountryName = "Unknown"
	}
	return res, nil
}

// geoResult holds a reverse-geocoding answer.
type geoResult struct {
	countryCode string
	countryName string
	city        string
}

// reverseGeocode resolves coordinates via Nominatim. Any failure
// returns an unknown location; the recommendation still proceeds.
func (c *Client) reverseGeocode(ctx context.Context, lat, lon float64) geoResult {
	unknown := geoResult{countryName: "Unknown"}

	q := url.Values{}
	q.Set("lat", fmt.Sprintf("%g", lat))
	q.Set("lon", fmt.Sprintf("%g", lon))
	q.Set("format", "json")
	q.Set("addressdetails", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.geocodeURL+"?"+q.Encode(), nil)
	if err != nil {
		return unknown
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := httputil.DoWithRetry(ctx, c.httpClient, req, 0)
	if err != nil {
		return unknown
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return unknown
	}

	var payload struct {
		Address struct {
			CountryCode string `json:"country_code"`
			Country     string `json:"country"`
			City        string `json:"city"`
			Town        string `json:"town"`
			Village     string `json:"village"`
			State       string `json:"state"`
		} `json:"address"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return unknown
	}

	addr := payload.Address
	city := addr.City
	for _, fallback := range []string{addr.Town, addr.Village, addr.State} {
		if city != "" {
			break
		}
		city = fallback
	}

	name := addr.Country
	if name == "" {
		name = "Unknown"
	}
	return geoResult{
		countryCode: strings.ToLower(addr.CountryCode),
		countryName: name,
		city:        city,
	}
}

// parseSites decodes the model's JSON array and drops entries without
// a name or URL. Bad JSON yields nil rather than an error: the caller
// degrades to an empty recommendation list.
func parseSites(content string) []Site {
	content = strings.TrimSpace(content)
	// Some models wrap the array in a code fence despite instructions.
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	var raw []Site
	if err := json.Unmarshal([]byte(content), &raw); err != nil {
		return nil
	}

	cleaned := make([]Site, 0, len(raw))
	for _, s := range raw {
		s.Name = strings.TrimSpace(s.Name)
		s.URL = strings.TrimSpace(s.URL)
		if s.Name == "" || s.URL == "" {
			continue
		}
		s.Description = strings.TrimSpace(s.Description)
		s.Region = strings.TrimSpace(s.Region)
		s.Language = strings.TrimSpace(s.Language)
		cleaned = append(cleaned, s)
	}
	return cleaned
}

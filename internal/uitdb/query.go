package uitdb

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Endpoint names one of the UiTdatabank search collections.
type Endpoint string

const (
	EndpointEvents     Endpoint = "events"
	EndpointPlaces     Endpoint = "places"
	EndpointOrganizers Endpoint = "organizers"
)

const (
	DefaultLimit = 10
	DefaultPage  = 1

	// Caps keep start = (page-1)*limit well inside int range.
	MaxLimit = 2000
	MaxPage  = 100000
)

func Endpoints() []Endpoint {
	return []Endpoint{EndpointEvents, EndpointPlaces, EndpointOrganizers}
}

func ParseEndpoint(s string) (Endpoint, error) {
	switch ep := Endpoint(strings.ToLower(strings.TrimSpace(s))); ep {
	case EndpointEvents, EndpointPlaces, EndpointOrganizers:
		return ep, nil
	default:
		return "", fmt.Errorf("unknown endpoint %q (want events, places or organizers)", s)
	}
}

// Params holds the typed search arguments exposed to callers. Extra carries
// raw query parameters that are copied verbatim and win over typed fields.
type Params struct {
	Q     string
	Start string // ISO-8601 date, sent as dateFrom
	End   string // sent as dateTo
	City  string // sent as addressLocality
	Limit int
	Page  int
	Embed *bool
	Extra url.Values
}

func (p Params) limit() int {
	if p.Limit <= 0 {
		return DefaultLimit
	}
	return min(p.Limit, MaxLimit)
}

func (p Params) page() int {
	if p.Page <= 0 {
		return DefaultPage
	}
	return min(p.Page, MaxPage)
}

// Query translates p into upstream query parameters.
func (p Params) Query() url.Values {
	q := url.Values{}
	setIf(q, "q", p.Q)
	setIf(q, "dateFrom", p.Start)
	setIf(q, "dateTo", p.End)
	setIf(q, "addressLocality", p.City)

	embed := true
	if p.Embed != nil {
		embed = *p.Embed
	}
	q.Set("embed", strconv.FormatBool(embed))

	limit := p.limit()
	q.Set("limit", strconv.Itoa(limit))
	if page := p.page(); page > 1 {
		q.Set("start", strconv.Itoa((page-1)*limit))
	}

	for key, values := range p.Extra {
		q[key] = append([]string(nil), values...)
	}
	return q
}

func setIf(q url.Values, key, value string) {
	if value = strings.TrimSpace(value); value != "" {
		q.Set(key, value)
	}
}

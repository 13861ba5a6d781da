// Package credentials resolves the UiTdatabank client identifier and attaches
// it to outbound search requests.
package credentials

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/roivaz/uitdb-mcp/internal/config"
)

const (
	HeaderClientID = "x-client-id"
	ParamClientID  = "clientId"
)

// Credential is an optional opaque client identifier. The zero value is the
// absent credential.
type Credential struct {
	id string
}

// Resolve reads the client identifier from configuration. It is meant to be
// called once at start-up; the result is reused for the process lifetime.
func Resolve() Credential {
	return New(config.ClientID())
}

func New(id string) Credential {
	return Credential{id: strings.TrimSpace(id)}
}

func (c Credential) Present() bool { return c.id != "" }

// Value returns the raw identifier, or "" when absent.
func (c Credential) Value() string { return c.id }

// Apply sets the x-client-id header and clientId query parameter on req. An
// absent credential leaves the request untouched.
func (c Credential) Apply(req *http.Request) {
	if !c.Present() {
		return
	}
	req.Header.Set(HeaderClientID, c.id)
	q := req.URL.Query()
	q.Set(ParamClientID, c.id)
	req.URL.RawQuery = q.Encode()
}

// String never reveals the identifier so the credential is safe to log.
func (c Credential) String() string {
	if !c.Present() {
		return "<none>"
	}
	return "<redacted>"
}

// RedactURL returns rawURL with any clientId query parameter removed. Values
// that do not parse are replaced wholesale.
func RedactURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "<redacted url>"
	}
	q := u.Query()
	if !q.Has(ParamClientID) {
		return rawURL
	}
	q.Del(ParamClientID)
	u.RawQuery = q.Encode()
	return u.String()
}

package uitdb

import (
	"encoding/json"
	"errors"

	"github.com/tidwall/gjson"
)

var errNotObject = errors.New("upstream response is not a JSON object")

// collectionKeys are probed in order; the first non-empty array is the page data.
var collectionKeys = []string{"items", "member", "results"}

// Summary is a compact view of a search response.
type Summary struct {
	Endpoint Endpoint                   `json:"endpoint"`
	Count    int                        `json:"count"`
	Page     int                        `json:"page"`
	Data     []json.RawMessage          `json:"data"`
	RawMeta  map[string]json.RawMessage `json:"raw_meta"`
}

// CompactEvent keeps the fields of an embedded event that matter to a reader.
type CompactEvent struct {
	ID        json.RawMessage `json:"id"`
	Name      json.RawMessage `json:"name"`
	StartDate json.RawMessage `json:"startDate"`
	EndDate   json.RawMessage `json:"endDate"`
	Status    json.RawMessage `json:"status"`
	URL       json.RawMessage `json:"url"`
	Location  json.RawMessage `json:"location"`
	Organizer json.RawMessage `json:"organizer"`
}

// Summarize builds a Summary from a raw response. Events are compacted; other
// endpoints keep their items as returned.
func Summarize(endpoint Endpoint, page int, raw json.RawMessage) (Summary, error) {
	if !gjson.ValidBytes(raw) {
		return Summary{}, errNotObject
	}
	doc := gjson.ParseBytes(raw)
	if !doc.IsObject() {
		return Summary{}, errNotObject
	}

	// Only non-empty arrays count; an object or scalar under a collection key
	// is treated as absent and the next key is tried.
	items := []gjson.Result{}
	for _, key := range collectionKeys {
		if v := doc.Get(key); v.IsArray() && len(v.Array()) > 0 {
			items = v.Array()
			break
		}
	}

	data := make([]json.RawMessage, 0, len(items))
	for _, item := range items {
		if endpoint == EndpointEvents {
			compact, err := json.Marshal(compactEvent(item))
			if err != nil {
				return Summary{}, err
			}
			data = append(data, compact)
			continue
		}
		data = append(data, json.RawMessage(item.Raw))
	}

	meta := map[string]json.RawMessage{}
	doc.ForEach(func(key, value gjson.Result) bool {
		switch key.String() {
		case "items", "member", "results":
		default:
			meta[key.String()] = json.RawMessage(value.Raw)
		}
		return true
	})

	if page <= 0 {
		page = DefaultPage
	}
	return Summary{
		Endpoint: endpoint,
		Count:    len(data),
		Page:     page,
		Data:     data,
		RawMeta:  meta,
	}, nil
}

func compactEvent(e gjson.Result) CompactEvent {
	id := raw(e.Get(`\@id`))
	return CompactEvent{
		ID:        id,
		Name:      raw(localized(e, "name", e.Get("name"))),
		StartDate: raw(e.Get("startDate")),
		EndDate:   raw(e.Get("endDate")),
		Status:    raw(e.Get("status.type")),
		URL:       id,
		Location:  localizedOr(e, "location.name", "Geen locatie"),
		Organizer: localizedOr(e, "organizer.name", "Geen organizer"),
	}
}

// localized returns path.nl, then path.en, then fallback.
func localized(e gjson.Result, path string, fallback gjson.Result) gjson.Result {
	for _, lang := range []string{"nl", "en"} {
		if v := e.Get(path + "." + lang); v.Exists() {
			return v
		}
	}
	return fallback
}

func localizedOr(e gjson.Result, path, fallback string) json.RawMessage {
	if v := localized(e, path, gjson.Result{}); v.Exists() {
		return raw(v)
	}
	b, _ := json.Marshal(fallback)
	return b
}

func raw(v gjson.Result) json.RawMessage {
	if !v.Exists() {
		return json.RawMessage("null")
	}
	return json.RawMessage(v.Raw)
}

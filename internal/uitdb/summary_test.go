package uitdb

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

const eventsResponse = `{
  "@context": "http://www.w3.org/ns/hydra/context.jsonld",
  "@type": "PagedCollection",
  "itemsPerPage": 30,
  "totalItems": 2,
  "member": [
    {
      "@id": "https://io.uitdatabank.be/event/1",
      "name": {"nl": "Jazz in het park", "en": "Jazz in the park"},
      "startDate": "2025-09-01T20:00:00+02:00",
      "endDate": "2025-09-01T23:00:00+02:00",
      "status": {"type": "Available"},
      "location": {"name": {"en": "City Park"}},
      "organizer": {"name": {"nl": "Vzw Jazz"}}
    },
    {
      "@id": "https://io.uitdatabank.be/event/2",
      "name": {"fr": "Concert"}
    }
  ]
}`

func TestSummarizeCompactsEvents(t *testing.T) {
	s, err := Summarize(EndpointEvents, 2, json.RawMessage(eventsResponse))
	require.NoError(t, err)

	assert.Equal(t, EndpointEvents, s.Endpoint)
	assert.Equal(t, 2, s.Count)
	assert.Equal(t, 2, s.Page)
	require.Len(t, s.Data, 2)

	first := gjson.ParseBytes(s.Data[0])
	assert.Equal(t, "https://io.uitdatabank.be/event/1", first.Get("id").String())
	assert.Equal(t, first.Get("id").String(), first.Get("url").String())
	assert.Equal(t, "Jazz in het park", first.Get("name").String())
	assert.Equal(t, "Available", first.Get("status").String())
	assert.Equal(t, "City Park", first.Get("location").String())
	assert.Equal(t, "Vzw Jazz", first.Get("organizer").String())
	assert.Equal(t, "2025-09-01T20:00:00+02:00", first.Get("startDate").String())

	second := gjson.ParseBytes(s.Data[1])
	assert.JSONEq(t, `{"fr":"Concert"}`, second.Get("name").Raw)
	assert.Equal(t, gjson.Null, second.Get("status").Type)
	assert.Equal(t, "Geen locatie", second.Get("location").String())
	assert.Equal(t, "Geen organizer", second.Get("organizer").String())

	assert.Contains(t, s.RawMeta, "totalItems")
	assert.Contains(t, s.RawMeta, "@context")
	assert.NotContains(t, s.RawMeta, "member")
	assert.JSONEq(t, `2`, string(s.RawMeta["totalItems"]))
}

func TestSummarizeKeepsNonEventItems(t *testing.T) {
	raw := `{"items":[],"results":[{"@id":"p1","extra":true}],"totalItems":1}`
	s, err := Summarize(EndpointPlaces, 0, json.RawMessage(raw))
	require.NoError(t, err)

	assert.Equal(t, DefaultPage, s.Page)
	require.Len(t, s.Data, 1)
	assert.JSONEq(t, `{"@id":"p1","extra":true}`, string(s.Data[0]))
	assert.NotContains(t, s.RawMeta, "items")
	assert.NotContains(t, s.RawMeta, "results")
}

func TestSummarizeEmpty(t *testing.T) {
	s, err := Summarize(EndpointOrganizers, 1, json.RawMessage(`{"totalItems":0}`))
	require.NoError(t, err)
	assert.Zero(t, s.Count)

	out, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `{"endpoint":"organizers","count":0,"page":1,"data":[],"raw_meta":{"totalItems":0}}`, string(out))
}

func TestSummarizeRejectsNonObject(t *testing.T) {
	_, err := Summarize(EndpointEvents, 1, json.RawMessage(`[1,2]`))
	assert.ErrorIs(t, err, errNotObject)

	_, err = Summarize(EndpointEvents, 1, json.RawMessage(`{"broken":`))
	assert.ErrorIs(t, err, errNotObject)
}

func TestSummarizeSkipsNonArrayCollections(t *testing.T) {
	raw := `{"items":{"@id":"not-a-list"},"member":"x","results":[{"@id":"o1"}]}`
	s, err := Summarize(EndpointOrganizers, 1, json.RawMessage(raw))
	require.NoError(t, err)

	require.Len(t, s.Data, 1)
	assert.JSONEq(t, `{"@id":"o1"}`, string(s.Data[0]))
	assert.Empty(t, s.RawMeta)
}

package uitdb

import (
	"math"
	"net/url"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEndpoint(t *testing.T) {
	for _, in := range []string{"events", " Places ", "ORGANIZERS"} {
		_, err := ParseEndpoint(in)
		require.NoError(t, err, in)
	}
	_, err := ParseEndpoint("offers")
	assert.ErrorContains(t, err, "offers")
}

func TestParamsQueryDefaults(t *testing.T) {
	q := Params{}.Query()
	assert.Equal(t, url.Values{
		"embed": {"true"},
		"limit": {"10"},
	}, q)
}

func TestParamsQueryTranslatesFields(t *testing.T) {
	embed := false
	q := Params{
		Q:     "jazz",
		Start: "2025-09-01",
		End:   "2025-09-30",
		City:  "Gent",
		Limit: 5,
		Page:  3,
		Embed: &embed,
	}.Query()

	assert.Equal(t, "jazz", q.Get("q"))
	assert.Equal(t, "2025-09-01", q.Get("dateFrom"))
	assert.Equal(t, "2025-09-30", q.Get("dateTo"))
	assert.Equal(t, "Gent", q.Get("addressLocality"))
	assert.Equal(t, "false", q.Get("embed"))
	assert.Equal(t, "5", q.Get("limit"))
	assert.Equal(t, "10", q.Get("start"))
}

func TestParamsQueryOmitsBlankStrings(t *testing.T) {
	q := Params{Q: "  ", City: ""}.Query()
	assert.False(t, q.Has("q"))
	assert.False(t, q.Has("addressLocality"))
	assert.False(t, q.Has("start"))
}

func TestParamsQueryExtraWins(t *testing.T) {
	q := Params{
		Q:     "jazz",
		Extra: url.Values{"q": {"blues"}, "labels": {"a", "b"}},
	}.Query()
	assert.Equal(t, []string{"blues"}, q["q"])
	assert.Equal(t, []string{"a", "b"}, q["labels"])
}

func TestParamsQueryCapsPaging(t *testing.T) {
	q := Params{Limit: math.MaxInt, Page: math.MaxInt}.Query()
	assert.Equal(t, strconv.Itoa(MaxLimit), q.Get("limit"))
	assert.Equal(t, strconv.Itoa((MaxPage-1)*MaxLimit), q.Get("start"))
}

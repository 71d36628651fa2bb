package configstore

import (
	stdjson "encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDocumentDefaults(t *testing.T) {
	var d Document

	assert.Equal(t, "", d.Token())
	assert.False(t, d.HasToken())
	assert.Equal(t, "", d.LastUpdated())
	assert.Equal(t, "!", d.Prefix())
	assert.Equal(t, 50, d.MaxScripts())
}

func TestDocumentStoredValues(t *testing.T) {
	d := Document{
		KeyDiscordToken: "a.b.c",
		KeyLastUpdated:  "1700000000",
		KeyPrefix:       "?",
		KeyMaxScripts:   stdjson.Number("75"),
	}

	assert.Equal(t, "a.b.c", d.Token())
	assert.True(t, d.HasToken())
	assert.Equal(t, "1700000000", d.LastUpdated())
	assert.Equal(t, "?", d.Prefix())
	assert.Equal(t, 75, d.MaxScripts())
}

func TestDocumentWrongTypes(t *testing.T) {
	d := Document{
		KeyDiscordToken: 12,
		KeyLastUpdated:  12,
		KeyPrefix:       false,
		KeyMaxScripts:   "many",
	}

	assert.False(t, d.HasToken())
	assert.Equal(t, "", d.LastUpdated())
	assert.Equal(t, "!", d.Prefix())
	assert.Equal(t, 50, d.MaxScripts())

	assert.Equal(t, 50, Document{KeyMaxScripts: 2.5}.MaxScripts())
	assert.Equal(t, 3, Document{KeyMaxScripts: 3.0}.MaxScripts())
	assert.Equal(t, 50, Document{KeyMaxScripts: stdjson.Number("2.5")}.MaxScripts())
}

func TestDocumentEmptyTokenIsNoToken(t *testing.T) {
	assert.False(t, Document{KeyDiscordToken: ""}.HasToken())
	assert.False(t, Document{KeyDiscordToken: true}.HasToken())
	assert.Equal(t, 50, Document{KeyMaxScripts: "12"}.MaxScripts())
}

func TestSetToken(t *testing.T) {
	d := Document{"other": "kept"}
	d.SetToken("x.y.z", time.Unix(1700000123, 0))

	assert.Equal(t, "x.y.z", d[KeyDiscordToken])
	assert.Equal(t, "1700000123", d[KeyLastUpdated])
	assert.Equal(t, "kept", d["other"])
}

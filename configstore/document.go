package configstore

import (
	"strconv"
	"time"
)

// Keys recognized in the persisted document
const (
	KeyDiscordToken = "discord_token"
	KeyLastUpdated  = "last_updated"
	KeyPrefix       = "prefix"
	KeyMaxScripts   = "max_scripts"
)

const (
	DefaultPrefix     = "!"
	DefaultMaxScripts = 50
)

// Document is the full JSON object persisted to the config file.
//
// Values are kept as decoded so that keys this service does not know about
// survive a rewrite untouched.
type Document map[string]any

func (d Document) str(key string) string {
	s, _ := d[key].(string)
	return s
}

// Token returns the stored bot token, or "" if unset or not a string. A
// non-string value such as true is treated as no token at all.
func (d Document) Token() string {
	return d.str(KeyDiscordToken)
}

func (d Document) HasToken() bool {
	return d.Token() != ""
}

func (d Document) LastUpdated() string {
	return d.str(KeyLastUpdated)
}

func (d Document) Prefix() string {
	if v, ok := d[KeyPrefix].(string); ok {
		return v
	}

	return DefaultPrefix
}

// MaxScripts returns max_scripts if it holds an integer, otherwise DefaultMaxScripts.
// Non-integer values (strings, fractions) are replaced by the default rather
// than passed through, so the response field is always an int.
func (d Document) MaxScripts() int {
	switch v := d[KeyMaxScripts].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		if v == float64(int(v)) {
			return int(v)
		}
	case interface{ Int64() (int64, error) }: // json.Number
		if n, err := v.Int64(); err == nil {
			return int(n)
		}
	}

	return DefaultMaxScripts
}

// SetToken stores the token and stamps last_updated with at as Unix seconds.
func (d Document) SetToken(token string, at time.Time) {
	d[KeyDiscordToken] = token
	d[KeyLastUpdated] = strconv.FormatInt(at.Unix(), 10)
}

func (d Document) Clone() Document {
	c := make(Document, len(d))
	for k, v := range d {
		c[k] = v
	}
	return c
}

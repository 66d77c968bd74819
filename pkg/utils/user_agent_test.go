package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUserAgent(t *testing.T) {
	ua := "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

	info := ParseUserAgent(ua, "en-US,en;q=0.9")
	require.NotNil(t, info)
	assert.Equal(t, "Computer", info.Device)
	assert.Contains(t, info.OS, "OSMacOSX")
	assert.Contains(t, info.Browser, "BrowserChrome")
	assert.Equal(t, "en-US", info.Locale)
}

func TestParseUserAgent_Unknown(t *testing.T) {
	assert.Nil(t, ParseUserAgent("", ""))
}

func TestPrimaryLocale(t *testing.T) {
	assert.Equal(t, "fr-FR", primaryLocale("fr-FR;q=0.8, en;q=0.5"))
	assert.Equal(t, "", primaryLocale(""))
	assert.Equal(t, "de", primaryLocale("de"))
}

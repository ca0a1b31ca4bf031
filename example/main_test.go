package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	inspect "github.com/0xAozora/cs2-inspect-link"
	"github.com/0xAozora/cs2-inspect-link/types"
	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
	"gopkg.in/yaml.v3"
)

const catalogYAML = `items:
  - {id: 1, name: "AK-47 | Aquamarine Revenge", type: weapon, def: 7, index: 474, rarity: ancient}
  - {id: 10, name: "Sticker | Crown (Foil)", type: sticker, def: 1209, index: 76, rarity: legendary}
  - {id: 40, name: "Music Kit | Noisia, Sharpened", type: musickit, def: 1314, index: 4, rarity: rare}
`

const exampleLink = inspect.PreviewURL + "00180720DA03280638AAF488F90340B202C9E301CE"

func noEnv(string) (string, bool) { return "", false }

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	args = append([]string{"--env-file", filepath.Join(t.TempDir(), "missing.env"), "--log-level", "disabled"}, args...)
	err := run(args, strings.NewReader(stdin), &out, noEnv)
	return out.String(), err
}

func TestEncode(t *testing.T) {
	catalog := writeFile(t, "catalog.yaml", catalogYAML)

	out, err := runCLI(t, `{"i": 1, "e": 306, "f": 0.6337}`, "--catalog", catalog, "encode")
	require.NoError(t, err)
	assert.Equal(t, exampleLink+"\n", out)

	item := writeFile(t, "item.yaml", "i: 1\ne: 306\nf: 0.6337\n")
	out, err = runCLI(t, "", "--catalog", catalog, "encode", item)
	require.NoError(t, err)
	assert.Equal(t, exampleLink+"\n", out)

	_, err = runCLI(t, `{"i": 2}`, "--catalog", catalog, "encode")
	assert.ErrorIs(t, err, inspect.ErrUnknownItem)
}

func TestDecodeFormats(t *testing.T) {
	catalog := writeFile(t, "catalog.yaml", catalogYAML)
	want := types.Item{ID: 1, Seed: proto.Uint32(306), Wear: proto.Float32(0.6337)}

	out, err := runCLI(t, "", "--catalog", catalog, "decode", exampleLink)
	require.NoError(t, err)
	assert.JSONEq(t, `{"i": 1, "e": 306, "f": 0.6337}`, out)

	out, err = runCLI(t, "", "--catalog", catalog, "-o", "yaml", "decode", exampleLink)
	require.NoError(t, err)
	var fromYAML types.Item
	require.NoError(t, yaml.Unmarshal([]byte(out), &fromYAML))
	assert.Equal(t, want, fromYAML)

	out, err = runCLI(t, "", "--catalog", catalog, "-o", "msgpack", "decode", exampleLink)
	require.NoError(t, err)
	var fromMsgp types.Item
	_, err = fromMsgp.UnmarshalMsg([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, want, fromMsgp)

	out, err = runCLI(t, "", "--catalog", catalog, "-o", "cbor", "decode", exampleLink)
	require.NoError(t, err)
	var fromCBOR types.Item
	require.NoError(t, cbor.Unmarshal([]byte(out), &fromCBOR))
	assert.Equal(t, want, fromCBOR)
}

func TestDecodeCommandForm(t *testing.T) {
	catalog := writeFile(t, "catalog.yaml", catalogYAML)

	// The command form arrives split across arguments.
	out, err := runCLI(t, "", "--catalog", catalog, "decode", inspect.PreviewCommand, "00180720DA03280638AAF488F90340B202C9E301CE")
	require.NoError(t, err)
	assert.JSONEq(t, `{"i": 1, "e": 306, "f": 0.6337}`, out)
}

func TestCatalogAndBlock(t *testing.T) {
	catalog := writeFile(t, "catalog.yaml", catalogYAML)

	out, err := runCLI(t, "", "--catalog", catalog, "catalog", "40")
	require.NoError(t, err)
	link := strings.TrimSpace(out)
	assert.True(t, strings.HasPrefix(link, inspect.PreviewURL))

	out, err = runCLI(t, "", "--catalog", catalog, "block", link)
	require.NoError(t, err)
	assert.Contains(t, out, `"musicindex": 4`)

	_, err = runCLI(t, "", "--catalog", catalog, "catalog", "99")
	assert.ErrorIs(t, err, inspect.ErrUnknownItem)

	_, err = runCLI(t, "", "--catalog", catalog, "-o", "msgpack", "block", link)
	assert.Error(t, err)
}

func TestRunErrors(t *testing.T) {
	catalog := writeFile(t, "catalog.yaml", catalogYAML)

	_, err := runCLI(t, "")
	assert.Error(t, err)

	_, err = runCLI(t, "", "--catalog", catalog)
	assert.Error(t, err)

	_, err = runCLI(t, "", "--catalog", catalog, "frobnicate")
	assert.Error(t, err)

	_, err = runCLI(t, "", "--catalog", catalog, "-o", "xml", "decode", exampleLink)
	assert.Error(t, err)

	_, err = runCLI(t, "", "--catalog", catalog, "decode", "https://example.com")
	assert.ErrorIs(t, err, inspect.ErrMalformedLink)
}

func TestLoadConfig(t *testing.T) {
	path := writeFile(t, "config.toml", `
catalog = "items.yaml"
format = "yaml"
log_level = "debug"

[influxdb]
host = "localhost:8086"
org = "cs2"
`)

	env := map[string]string{
		"CS2INSPECT_FORMAT":        "cbor",
		"CS2INSPECT_INFLUXDB_KEY":  "secret",
		"CS2INSPECT_UNRELATED_KEY": "x",
	}
	lookup := func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}

	cfg, err := loadConfig(path, lookup)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "items.yaml", cfg.Catalog)
	assert.Equal(t, "cbor", cfg.Format)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, InfluxConfig{Host: "localhost:8086", Key: "secret", Org: "cs2", Bucket: "inspect"}, cfg.InfluxDB)

	defaults, err := loadConfig("", noEnv)
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), defaults)
	assert.Error(t, defaults.Validate())

	_, err = loadConfig(filepath.Join(t.TempDir(), "missing.toml"), noEnv)
	assert.Error(t, err)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name string
		edit func(*Config)
		ok   bool
	}{
		{"valid", func(*Config) {}, true},
		{"upper case format", func(c *Config) { c.Format = "YAML" }, true},
		{"no catalog", func(c *Config) { c.Catalog = "" }, false},
		{"bad format", func(c *Config) { c.Format = "xml" }, false},
		{"bad level", func(c *Config) { c.LogLevel = "loud" }, false},
		{"influx without org", func(c *Config) { c.InfluxDB.Host = "localhost:8086" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			cfg.Catalog = "items.yaml"
			tt.edit(&cfg)
			if tt.ok {
				assert.NoError(t, cfg.Validate())
			} else {
				assert.Error(t, cfg.Validate())
			}
		})
	}
}

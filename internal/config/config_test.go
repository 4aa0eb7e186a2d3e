package config

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gstoney/mcpeproto/packet"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nostalgia.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate(): %v", err)
	}
	// 19132 belongs to the game's RakNet listener, which this server is not.
	if cfg.Addr != ":19140" {
		t.Errorf("default addr = %q, want :19140", cfg.Addr)
	}

	enc, err := cfg.Wire.StringEncoding()
	if err != nil {
		t.Fatalf("StringEncoding: %v", err)
	}
	if enc.PrefixWidth != packet.DefaultStringEncoding.PrefixWidth ||
		enc.PrefixOrder != packet.DefaultStringEncoding.PrefixOrder ||
		enc.Charset != packet.DefaultStringEncoding.Charset ||
		enc.MaxLength != packet.DefaultStringEncoding.MaxLength {
		t.Errorf("default wire %+v, want %+v", enc, packet.DefaultStringEncoding)
	}
}

func TestLoad(t *testing.T) {
	path := writeFile(t, `
addr = "0.0.0.0:19133"
protocol = 13
log_level = "debug"

[wire]
string_prefix_width = 2
string_prefix_order = "big"
string_charset = "ISO-8859-1"
max_string_length = 1024

[transport]
compression_threshold = 256

[world]
seed = 12345
gamemode = 0
spawn = [0.5, 70.0, 0.5]
motd = "Welcome"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Addr != "0.0.0.0:19133" || cfg.Protocol != 13 || cfg.LogLevel != "debug" {
		t.Errorf("top level keys not applied: %+v", cfg)
	}
	if cfg.WSPath != "/mcpe" {
		t.Errorf("ws_path default lost: %q", cfg.WSPath)
	}
	if cfg.Transport.CompressionThreshold != 256 || cfg.Transport.MaxPacketLen != Default().Transport.MaxPacketLen {
		t.Errorf("transport %+v", cfg.Transport)
	}
	if cfg.World.Seed != 12345 || cfg.World.Gamemode != 0 || cfg.World.Spawn != [3]float32{0.5, 70, 0.5} {
		t.Errorf("world %+v", cfg.World)
	}

	enc, err := cfg.Wire.StringEncoding()
	if err != nil {
		t.Fatalf("StringEncoding: %v", err)
	}
	if enc.PrefixOrder != binary.BigEndian || enc.Charset != packet.CharsetLatin1 || enc.MaxLength != 1024 {
		t.Errorf("wire %+v", enc)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := writeFile(t, "adress = \":1\"\n")
	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "adress") {
		t.Errorf("Load: got %v, want an unknown key error", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("Load of a missing file succeeded")
	}
}

func TestLoadEnv(t *testing.T) {
	path := writeFile(t, "addr = \":1000\"\n")
	t.Setenv(EnvConfig, path)
	t.Setenv(EnvAddr, ":2000")
	t.Setenv(EnvWSAddr, "127.0.0.1:8080")
	t.Setenv(EnvLogLevel, "warn")

	cfg, err := LoadEnv("")
	if err != nil {
		t.Fatalf("LoadEnv: %v", err)
	}
	if cfg.Addr != ":2000" || cfg.WSAddr != "127.0.0.1:8080" || cfg.LogLevel != "warn" {
		t.Errorf("environment not applied: %+v", cfg)
	}
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		desc   string
		mutate func(*Config)
	}{
		{desc: "No listener", mutate: func(c *Config) { c.Addr = "" }},
		{desc: "Bad ws path", mutate: func(c *Config) { c.WSAddr = ":8080"; c.WSPath = "mcpe" }},
		{desc: "Zero protocol", mutate: func(c *Config) { c.Protocol = 0 }},
		{desc: "Prefix width", mutate: func(c *Config) { c.Wire.StringPrefixWidth = 3 }},
		{desc: "Prefix order", mutate: func(c *Config) { c.Wire.StringPrefixOrder = "middle" }},
		{desc: "Charset", mutate: func(c *Config) { c.Wire.StringCharset = "utf-16" }},
		{desc: "Max length over prefix", mutate: func(c *Config) { c.Wire.StringPrefixWidth = 1 }},
		{desc: "Transport limit", mutate: func(c *Config) { c.Transport.MaxPacketLen = 0 }},
		{desc: "Gamemode", mutate: func(c *Config) { c.World.Gamemode = 2 }},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			cfg := Default()
			tC.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate accepted an invalid config")
			}
		})
	}
}

func TestTransportConfig(t *testing.T) {
	tc := Transport{MaxPacketLen: 10, MaxDecompressedLen: 20}.TransportConfig()
	if tc.MaxPacketLen != 10 || tc.MaxDecompressedLen != 20 {
		t.Errorf("TransportConfig %+v", tc)
	}
}

// Package config loads the server configuration from TOML, a .env file and
// the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/gstoney/mcpeproto"
	"github.com/gstoney/mcpeproto/packet"
)

const (
	EnvConfig   = "NOSTALGIA_CONFIG"
	EnvAddr     = "NOSTALGIA_ADDR"
	EnvWSAddr   = "NOSTALGIA_WS_ADDR"
	EnvLogLevel = "NOSTALGIA_LOG_LEVEL"
)

type Config struct {
	Addr     string `toml:"addr"`
	WSAddr   string `toml:"ws_addr"`
	WSPath   string `toml:"ws_path"`
	Protocol int32  `toml:"protocol"`
	LogLevel string `toml:"log_level"`

	Wire      Wire      `toml:"wire"`
	Transport Transport `toml:"transport"`
	World     World     `toml:"world"`
}

// Wire selects the String field layout. Both peers must agree on it.
type Wire struct {
	StringPrefixWidth int    `toml:"string_prefix_width"`
	StringPrefixOrder string `toml:"string_prefix_order"`
	StringCharset     string `toml:"string_charset"`
	MaxStringLength   int    `toml:"max_string_length"`
}

type Transport struct {
	MaxPacketLen         int32 `toml:"max_packet_len"`
	MaxDecompressedLen   int32 `toml:"max_decompressed_len"`
	CompressionThreshold int   `toml:"compression_threshold"`
}

type World struct {
	Name     string     `toml:"name"`
	Seed     int32      `toml:"seed"`
	Gamemode int32      `toml:"gamemode"`
	Spawn    [3]float32 `toml:"spawn"`
	Time     int32      `toml:"time"`
	Motd     string     `toml:"motd"`
}

func Default() Config {
	tc := mcpeproto.DefaultTransportConfig()
	return Config{
		Addr:     ":19140",
		WSPath:   "/mcpe",
		Protocol: 14,
		LogLevel: "info",
		Wire: Wire{
			StringPrefixWidth: 2,
			StringPrefixOrder: "little",
			StringCharset:     string(packet.CharsetUTF8),
			MaxStringLength:   math.MaxUint16,
		},
		Transport: Transport{
			MaxPacketLen:         tc.MaxPacketLen,
			MaxDecompressedLen:   tc.MaxDecompressedLen,
			CompressionThreshold: -1,
		},
		World: World{
			Name:     "world",
			Gamemode: 1,
			Spawn:    [3]float32{128, 64, 128},
		},
	}
}

// Load decodes the TOML file at path over Default. An empty path returns the
// defaults. Unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("load config %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	return cfg, nil
}

// LoadEnv reads an optional .env file, then loads the config file named by
// path or $NOSTALGIA_CONFIG, applies the environment overrides and validates
// the result.
func LoadEnv(path string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	cfg, err := Load(path)
	if err != nil {
		return Config{}, err
	}

	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ApplyEnv overrides fields from the NOSTALGIA_* variables that are set.
func (c *Config) ApplyEnv() {
	if v, ok := os.LookupEnv(EnvAddr); ok {
		c.Addr = strings.TrimSpace(v)
	}
	if v, ok := os.LookupEnv(EnvWSAddr); ok {
		c.WSAddr = strings.TrimSpace(v)
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok {
		c.LogLevel = strings.TrimSpace(v)
	}
}

func (c Config) Validate() error {
	if c.Addr == "" && c.WSAddr == "" {
		return errors.New("config: neither addr nor ws_addr is set")
	}
	if c.WSAddr != "" && !strings.HasPrefix(c.WSPath, "/") {
		return fmt.Errorf("config: ws_path %q must start with /", c.WSPath)
	}
	if c.Protocol <= 0 {
		return fmt.Errorf("config: protocol must be positive, got %d", c.Protocol)
	}
	if _, err := c.Wire.StringEncoding(); err != nil {
		return fmt.Errorf("config: wire: %w", err)
	}
	if c.Transport.MaxPacketLen <= 0 || c.Transport.MaxDecompressedLen <= 0 {
		return errors.New("config: transport limits must be positive")
	}
	if c.World.Gamemode != 0 && c.World.Gamemode != 1 {
		return fmt.Errorf("config: world gamemode must be 0 or 1, got %d", c.World.Gamemode)
	}
	return nil
}

// StringEncoding converts the [wire] table for the packet codec.
func (w Wire) StringEncoding() (packet.StringEncoding, error) {
	order, err := packet.ParseByteOrder(w.StringPrefixOrder)
	if err != nil {
		return packet.StringEncoding{}, err
	}
	enc := packet.StringEncoding{
		PrefixWidth: w.StringPrefixWidth,
		PrefixOrder: order,
		Charset:     packet.Charset(strings.ToLower(w.StringCharset)),
		MaxLength:   w.MaxStringLength,
	}
	if err := enc.Validate(); err != nil {
		return packet.StringEncoding{}, err
	}
	return enc, nil
}

// Codec returns a codec for the [wire] table.
func (w Wire) Codec() (packet.Codec, error) {
	enc, err := w.StringEncoding()
	if err != nil {
		return packet.Codec{}, err
	}
	return packet.NewCodec(enc)
}

func (t Transport) TransportConfig() mcpeproto.TransportConfig {
	return mcpeproto.TransportConfig{
		MaxPacketLen:       t.MaxPacketLen,
		MaxDecompressedLen: t.MaxDecompressedLen,
	}
}

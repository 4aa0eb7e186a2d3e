// Pktdump decodes MCPE 0.x messages and prints their fields.
//
// Messages are given as hex arguments, one hex message per line on stdin, or
// with --raw as a binary stream of back to back messages on stdin.
//
//	pktdump 8605000000
//	pktdump --format yaml < capture.hex
//	pktdump --raw < capture.bin
//	pktdump --list
package main

import (
	"bufio"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/gstoney/mcpeproto"
	"github.com/gstoney/mcpeproto/internal/config"
	"github.com/gstoney/mcpeproto/packet"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		pterm.Error.Println(err)
		os.Exit(1)
	}
}

type options struct {
	format      string
	list        bool
	raw         bool
	configPath  string
	prefixWidth int
	prefixOrder string
	charset     string
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	var opts options
	flagSet := pflag.NewFlagSet("pktdump", pflag.ContinueOnError)
	flagSet.StringVarP(&opts.format, "format", "f", "text", "output format: text or yaml")
	flagSet.BoolVar(&opts.list, "list", false, "print the registered packet kinds and exit")
	flagSet.BoolVar(&opts.raw, "raw", false, "read a binary message stream from stdin")
	flagSet.StringVarP(&opts.configPath, "config", "c", "", "take the string encoding from this config file")
	flagSet.IntVar(&opts.prefixWidth, "prefix-width", 0, "string length prefix width: 1, 2 or 4")
	flagSet.StringVar(&opts.prefixOrder, "prefix-order", "", "string length prefix byte order: little or big")
	flagSet.StringVar(&opts.charset, "charset", "", "string charset: utf-8 or iso-8859-1")
	if err := flagSet.Parse(args); err != nil {
		return err
	}

	if opts.format != "text" && opts.format != "yaml" {
		return fmt.Errorf("unknown format %q", opts.format)
	}

	if opts.list {
		return printKinds(stdout, opts.format, packet.Kinds())
	}

	enc, err := encoding(opts, flagSet)
	if err != nil {
		return err
	}

	var records []record
	if opts.raw {
		records, err = decodeStream(stdin, enc)
	} else {
		records, err = decodeHex(flagSet.Args(), stdin, enc)
	}
	if err != nil {
		return err
	}
	return printRecords(stdout, opts.format, records)
}

func encoding(opts options, flagSet *pflag.FlagSet) (packet.StringEncoding, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return packet.StringEncoding{}, err
	}
	if flagSet.Changed("prefix-width") {
		cfg.Wire.StringPrefixWidth = opts.prefixWidth
		if cfg.Wire.StringPrefixWidth == 1 && cfg.Wire.MaxStringLength > 0xff {
			cfg.Wire.MaxStringLength = 0xff
		}
	}
	if flagSet.Changed("prefix-order") {
		cfg.Wire.StringPrefixOrder = opts.prefixOrder
	}
	if flagSet.Changed("charset") {
		cfg.Wire.StringCharset = opts.charset
	}
	return cfg.Wire.StringEncoding()
}

// record is one decoded message, or the reason it could not be decoded.
type record struct {
	Index  int           `yaml:"index"`
	Opcode string        `yaml:"opcode"`
	Kind   string        `yaml:"kind,omitempty"`
	Fields []fieldRecord `yaml:"fields,omitempty"`
	Error  string        `yaml:"error,omitempty"`
}

type fieldRecord struct {
	Name  string `yaml:"name"`
	Type  string `yaml:"type"`
	Value string `yaml:"value"`
}

func decodeHex(args []string, stdin io.Reader, enc packet.StringEncoding) ([]record, error) {
	inputs := args
	if len(inputs) == 0 {
		sc := bufio.NewScanner(stdin)
		sc.Buffer(make([]byte, 0, 64*1024), 4<<20)
		for sc.Scan() {
			if line := strings.TrimSpace(sc.Text()); line != "" && !strings.HasPrefix(line, "#") {
				inputs = append(inputs, line)
			}
		}
		if err := sc.Err(); err != nil {
			return nil, err
		}
	}

	codec, err := packet.NewCodec(enc)
	if err != nil {
		return nil, err
	}

	records := make([]record, 0, len(inputs))
	for i, in := range inputs {
		b, err := hex.DecodeString(strings.NewReplacer(" ", "", ":", "").Replace(in))
		if err != nil {
			records = append(records, record{Index: i, Error: err.Error()})
			continue
		}
		if len(b) == 0 {
			records = append(records, record{Index: i, Error: "empty message"})
			continue
		}

		p, ok, err := codec.Unmarshal(b)
		records = append(records, newRecord(i, packet.Opcode(b[0]), p, ok, err))
	}
	return records, nil
}

func decodeStream(stdin io.Reader, enc packet.StringEncoding) ([]record, error) {
	sr := mcpeproto.NewStreamReader(stdin, enc)

	var records []record
	for i := 0; ; i++ {
		p, err := sr.ReadPacket()
		if err == io.EOF {
			return records, nil
		}
		if err != nil {
			// Nothing after a bad message can be located.
			var uerr *mcpeproto.UnrecognizedOpcodeError
			if errors.As(err, &uerr) {
				return append(records, newRecord(i, uerr.Opcode, nil, false, nil)), nil
			}
			return append(records, record{Index: i, Error: err.Error()}), nil
		}
		records = append(records, newRecord(i, p.ID(), p, true, nil))
	}
}

func newRecord(i int, op packet.Opcode, p packet.Packet, ok bool, err error) record {
	r := record{Index: i, Opcode: fmt.Sprintf("0x%02X", byte(op))}
	switch {
	case err != nil:
		r.Error = err.Error()
	case !ok:
		r.Error = "unrecognized opcode"
	default:
		kind, values := packet.Describe(p)
		r.Kind = kind.Name
		for _, v := range values {
			r.Fields = append(r.Fields, fieldRecord{
				Name:  v.Name,
				Type:  v.Type.String(),
				Value: formatValue(v.Value),
			})
		}
	}
	return r
}

func formatValue(v any) string {
	switch v := v.(type) {
	case string:
		return fmt.Sprintf("%q", v)
	case packet.Vector3:
		return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
	case float32:
		return fmt.Sprintf("%g", v)
	}
	return fmt.Sprint(v)
}

func printRecords(w io.Writer, format string, records []record) error {
	if format == "yaml" {
		return writeYAML(w, records)
	}

	data := pterm.TableData{{"#", "Kind", "Opcode", "Field", "Type", "Value"}}
	for _, r := range records {
		index := fmt.Sprint(r.Index)
		if r.Error != "" {
			data = append(data, []string{index, r.Kind, r.Opcode, "", "", "error: " + r.Error})
			continue
		}
		if len(r.Fields) == 0 {
			data = append(data, []string{index, r.Kind, r.Opcode, "", "", ""})
		}
		for j, f := range r.Fields {
			if j > 0 {
				index, r.Kind, r.Opcode = "", "", ""
			}
			data = append(data, []string{index, r.Kind, r.Opcode, f.Name, f.Type, f.Value})
		}
	}
	return writeTable(w, data)
}

type kindRecord struct {
	Opcode string   `yaml:"opcode"`
	Name   string   `yaml:"name"`
	Fields []string `yaml:"fields,flow"`
}

func printKinds(w io.Writer, format string, kinds []packet.Kind) error {
	records := make([]kindRecord, len(kinds))
	for i, k := range kinds {
		fields := make([]string, len(k.Fields))
		for j, f := range k.Fields {
			fields[j] = f.Name + " " + f.Type.String()
		}
		records[i] = kindRecord{Opcode: fmt.Sprintf("0x%02X", byte(k.Opcode)), Name: k.Name, Fields: fields}
	}

	if format == "yaml" {
		return writeYAML(w, records)
	}

	data := pterm.TableData{{"Opcode", "Kind", "Fields"}}
	for _, r := range records {
		data = append(data, []string{r.Opcode, r.Name, strings.Join(r.Fields, ", ")})
	}
	return writeTable(w, data)
}

func writeTable(w io.Writer, data pterm.TableData) error {
	out, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, out)
	return err
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

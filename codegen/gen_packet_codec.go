//go:build ignore
// +build ignore

package main

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"text/template"
)

// fieldTypes lists the accepted `field` tags. Each tag T maps to the WriteT/ReadT
// pair and the TypeT descriptor constant in package packet.
var fieldTypes = map[string]bool{
	"Byte":          true,
	"UnsignedShort": true,
	"UnsignedInt":   true,
	"Int":           true,
	"UnsignedLong":  true,
	"Float":         true,
	"String":        true,
	"Vector3":       true,
}

// Field represents a single wire field of a packet struct
type Field struct {
	Name      string // The Struct field name (e.g., "ProtocolMajor")
	FieldType string // The wire type tag (e.g., "Int", "Vector3")
}

// GeneratedStruct is a struct marked with @gen
type GeneratedStruct struct {
	Name   string
	Source string
	Fields []Field
	Opcode uint8
}

func (s GeneratedStruct) OpcodeLit() string {
	return fmt.Sprintf("0x%02X", s.Opcode)
}

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: go run gen_packet_codec.go -- path/to/dir")
		os.Exit(1)
	}

	targetDir := os.Args[len(os.Args)-1] // Take the last argument as the directory
	if err := run(targetDir); err != nil {
		fmt.Fprintln(os.Stderr, "gen_packet_codec:", err)
		os.Exit(1)
	}
}

func run(targetDir string) error {
	fset := token.NewFileSet()
	var structs []GeneratedStruct
	var pkgName string

	filePaths, err := filepath.Glob(filepath.Join(targetDir, "*.go"))
	if err != nil {
		return err
	}

	for _, filePath := range filePaths {
		base := filepath.Base(filePath)
		// Skip generated files to avoid double parsing
		if strings.HasPrefix(base, "zz_generated") || strings.HasSuffix(base, "_test.go") {
			continue
		}

		node, err := parser.ParseFile(fset, filePath, nil, parser.ParseComments)
		if err != nil {
			return err
		}

		if pkgName == "" {
			pkgName = node.Name.Name
		}

		opcodes, err := scanOpcodes(node)
		if err != nil {
			return fmt.Errorf("%s: %w", base, err)
		}

		for _, decl := range node.Decls {
			gen, ok := decl.(*ast.GenDecl)
			if !ok || gen.Tok != token.TYPE || gen.Doc == nil || !hasGenMarker(gen.Doc) {
				continue
			}

			for _, spec := range gen.Specs {
				tspec, ok := spec.(*ast.TypeSpec)
				if !ok {
					continue
				}
				structType, ok := tspec.Type.(*ast.StructType)
				if !ok {
					continue
				}

				name := tspec.Name.Name
				op, ok := opcodes[name]
				if !ok {
					return fmt.Errorf("%s: %s is marked @gen but has no ID() literal", base, name)
				}

				fields, err := structFields(name, structType)
				if err != nil {
					return fmt.Errorf("%s: %w", base, err)
				}

				structs = append(structs, GeneratedStruct{
					Name:   name,
					Source: base,
					Fields: fields,
					Opcode: op,
				})
			}
		}
	}

	sort.Slice(structs, func(i, j int) bool { return structs[i].Opcode < structs[j].Opcode })
	for i := 1; i < len(structs); i++ {
		if structs[i].Opcode == structs[i-1].Opcode {
			return fmt.Errorf("opcode %s used by both %s and %s",
				structs[i].OpcodeLit(), structs[i-1].Name, structs[i].Name)
		}
	}

	var src bytes.Buffer
	t := template.Must(template.New("code").Parse(tmpl))
	data := struct {
		PkgName string
		Structs []GeneratedStruct
	}{
		PkgName: pkgName,
		Structs: structs,
	}
	if err := t.Execute(&src, data); err != nil {
		return err
	}

	out, err := format.Source(src.Bytes())
	if err != nil {
		return fmt.Errorf("formatting generated code: %w", err)
	}

	// Output next to the source files
	outFile := filepath.Join(targetDir, "zz_generated_codec.go")
	if err := os.WriteFile(outFile, out, 0o644); err != nil {
		return err
	}

	fmt.Printf("Generated %s for package %s (%d packets)\n", outFile, pkgName, len(structs))
	return nil
}

func hasGenMarker(doc *ast.CommentGroup) bool {
	for _, comment := range doc.List {
		if strings.TrimSpace(strings.TrimPrefix(comment.Text, "//")) == "@gen" {
			return true
		}
	}
	return false
}

// scanOpcodes maps StructName -> opcode from methods of the form
// func (Receiver) ID() Opcode { return 0x82 }
func scanOpcodes(node *ast.File) (map[string]uint8, error) {
	opcodes := make(map[string]uint8)
	for _, decl := range node.Decls {
		fn, ok := decl.(*ast.FuncDecl)
		if !ok || fn.Name.Name != "ID" || fn.Recv == nil || len(fn.Recv.List) == 0 || fn.Body == nil {
			continue
		}

		var recvName string
		recvType := fn.Recv.List[0].Type
		if star, ok := recvType.(*ast.StarExpr); ok {
			recvType = star.X
		}
		if ident, ok := recvType.(*ast.Ident); ok {
			recvName = ident.Name
		}
		if recvName == "" {
			continue
		}

		for _, stmt := range fn.Body.List {
			ret, ok := stmt.(*ast.ReturnStmt)
			if !ok || len(ret.Results) == 0 {
				continue
			}
			lit, ok := ret.Results[0].(*ast.BasicLit)
			if !ok || lit.Kind != token.INT {
				continue
			}
			v, err := strconv.ParseUint(lit.Value, 0, 8)
			if err != nil {
				return nil, fmt.Errorf("%s.ID(): %w", recvName, err)
			}
			opcodes[recvName] = uint8(v)
		}
	}
	return opcodes, nil
}

func structFields(name string, st *ast.StructType) ([]Field, error) {
	var fields []Field
	for _, field := range st.Fields.List {
		rawTag := ""
		if field.Tag != nil {
			unquoted, err := strconv.Unquote(field.Tag.Value)
			if err != nil {
				return nil, fmt.Errorf("%s: bad tag %s", name, field.Tag.Value)
			}
			rawTag = unquoted
		}

		fieldType := reflect.StructTag(rawTag).Get("field")
		if fieldType == "" {
			continue // Skip fields without the "field" tag
		}
		if !fieldTypes[fieldType] {
			return nil, fmt.Errorf("%s: unknown field type %q", name, fieldType)
		}

		for _, n := range field.Names {
			fields = append(fields, Field{Name: n.Name, FieldType: fieldType})
		}
	}
	return fields, nil
}

const tmpl = `// Code generated by gen_packet_codec.go; DO NOT EDIT.

package {{.PkgName}}

import (
	"io"
)

// Registry maps every registered opcode to a constructor for its packet kind.
var Registry = map[Opcode]func() Packet{
{{- range .Structs}}
	{{.OpcodeLit}}: func() Packet { return &{{.Name}}{} },
{{- end}}
}

// schema lists the descriptor of every registered packet kind in opcode order.
var schema = []Kind{
{{- range .Structs}}
	{Name: "{{.Name}}", Opcode: {{.OpcodeLit}}, Fields: []Field{
	{{- range .Fields}}
		{Name: "{{.Name}}", Type: Type{{.FieldType}}},
	{{- end}}
	}},
{{- end}}
}
{{range .Structs}}
// Source: {{.Source}}

func (*{{.Name}}) isPacket() {}

func (p {{.Name}}) Encode(w io.Writer) (err error) {
{{- range .Fields}}
	if err = Write{{.FieldType}}(w, p.{{.Name}}); err != nil {
		return
	}
{{- end}}
	return
}

func (p *{{.Name}}) Decode(r Reader) (err error) {
{{- range .Fields}}
	if p.{{.Name}}, err = Read{{.FieldType}}(r); err != nil {
		return
	}
{{- end}}
	return nil
}
{{end -}}
`

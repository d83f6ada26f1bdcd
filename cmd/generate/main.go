// Command generate writes the tuple and query types for all supported arities.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"log"
	"os"
	"path/filepath"
	"strings"
	"text/template"
)

const maxArity = 4

type Arity struct {
	N int
}

// Idx returns the indices 1 to N.
func (a Arity) Idx() []int {
	var indices []int
	for idx := 1; idx <= a.N; idx++ {
		indices = append(indices, idx)
	}

	return indices
}

// List formats every index using format and joins the results with a comma.
func (a Arity) List(format string) string {
	var parts []string
	for _, idx := range a.Idx() {
		parts = append(parts, fmt.Sprintf(format, idx))
	}

	return strings.Join(parts, ", ")
}

const header = `// Code generated by cmd/generate; DO NOT EDIT.

package soa
`

var tupleTemplate = template.Must(template.New("tuple").Parse(header + `
import (
	"github.com/oliverbestmann/soa/internal/storage"
)
{{ range . }}
// Tuple{{ .N }} holds the component values of a single entity.
type Tuple{{ .N }}[{{ .List "C%d" }} any] struct {
{{- range .Idx }}
	V{{ . }} C{{ . }}
{{- end }}
}

// MakeTuple{{ .N }} creates a Tuple{{ .N }} from its values.
func MakeTuple{{ .N }}[{{ .List "C%d" }} any]({{ .List "v%[1]d C%[1]d" }}) Tuple{{ .N }}[{{ .List "C%d" }}] {
	return Tuple{{ .N }}[{{ .List "C%d" }}]{ {{- .List "V%[1]d: v%[1]d" }} }
}

func (Tuple{{ .N }}[{{ .List "C%d" }}]) Arity() int {
	return {{ .N }}
}

func (Tuple{{ .N }}[{{ .List "C%d" }}]) componentTypes() []*storage.ComponentType {
	return []*storage.ComponentType{
{{- range .Idx }}
		storage.ComponentTypeOf[C{{ . }}](),
{{- end }}
	}
}

func (Tuple{{ .N }}[{{ .List "C%d" }}]) buildStorage() storage.Builder {
	builder := storage.Empty()
{{- range .Idx }}
	builder = storage.Register[C{{ . }}](builder)
{{- end }}
	return builder
}

func (t Tuple{{ .N }}[{{ .List "C%d" }}]) appendTo(block *storage.Block) {
{{- range .Idx }}
	storage.Push(block, t.V{{ . }})
{{- end }}
}
{{ end -}}
`))

var queryTemplate = template.Must(template.New("query").Parse(header + `
import (
	"iter"

	"github.com/oliverbestmann/soa/internal/storage"
)
{{ range . }}
// Query{{ .N }} iterates over all entities of the matching blocks and
// yields one Tuple{{ .N }} per entity.
type Query{{ .N }}[{{ .List "I%d" }} any] struct {
	matcher matcher
{{- range .Idx }}
	f{{ . }} Fetch[I{{ . }}]
{{- end }}
}

// All{{ .N }} creates a query visiting every block that contains the fetched component types.
func All{{ .N }}[{{ .List "I%d" }} any]({{ .List "f%[1]d Fetch[I%[1]d]" }}) Query{{ .N }}[{{ .List "I%d" }}] {
	return newQuery{{ .N }}(MatchAll, {{ .List "f%d" }})
}

// Exact{{ .N }} creates a query visiting only blocks that contain exactly the fetched component types.
func Exact{{ .N }}[{{ .List "I%d" }} any]({{ .List "f%[1]d Fetch[I%[1]d]" }}) Query{{ .N }}[{{ .List "I%d" }}] {
	return newQuery{{ .N }}(MatchExact, {{ .List "f%d" }})
}

func newQuery{{ .N }}[{{ .List "I%d" }} any](flavor Flavor, {{ .List "f%[1]d Fetch[I%[1]d]" }}) Query{{ .N }}[{{ .List "I%d" }}] {
	return Query{{ .N }}[{{ .List "I%d" }}]{
		matcher: newMatcher(flavor, {{ .List "f%d.componentType" }}),
{{- range .Idx }}
		f{{ . }}: f{{ . }},
{{- end }}
	}
}

// Flavor returns the matching rule of the query.
func (q Query{{ .N }}[{{ .List "I%d" }}]) Flavor() Flavor {
	return q.matcher.flavor
}

// Iter returns a single pass over all matching entities, block by block in creation order.
// The columns of a block stay borrowed while its entities are being yielded.
func (q Query{{ .N }}[{{ .List "I%d" }}]) Iter(w *World) iter.Seq[Tuple{{ .N }}[{{ .List "I%d" }}]] {
	return concat(w.matching(q.matcher), q.query)
}

// Count returns the number of entities Iter would yield.
func (q Query{{ .N }}[{{ .List "I%d" }}]) Count(w *World) int {
	return count(w, q.matcher)
}

func (q Query{{ .N }}[{{ .List "I%d" }}]) String() string {
	return "Query" + q.matcher.String()
}

// query zips the fetched columns of a single block. It returns false
// if the block lacks one of the fetched component types.
func (q Query{{ .N }}[{{ .List "I%d" }}]) query(block *storage.Block) (iter.Seq[Tuple{{ .N }}[{{ .List "I%d" }}]], bool) {
	if !q.matcher.contained(block) {
		return nil, false
	}

	items := func(yield func(Tuple{{ .N }}[{{ .List "I%d" }}]) bool) {
{{- range .Idx }}
		next{{ . }}, release{{ . }}, _ := q.f{{ . }}.open(block)
		defer release{{ . }}()
{{ end }}
		for {
{{- range .Idx }}
			v{{ . }}, ok := next{{ . }}()
			if !ok {
				return
			}
{{ end }}
			if !yield(Tuple{{ .N }}[{{ .List "I%d" }}]{ {{- .List "V%[1]d: v%[1]d" }} }) {
				return
			}
		}
	}

	return items, true
}
{{ end -}}
`))

func main() {
	out := flag.String("out", ".", "Output directory")
	flag.Parse()

	var arities []Arity
	for n := 1; n <= maxArity; n++ {
		arities = append(arities, Arity{N: n})
	}

	write(filepath.Join(*out, "tuple_generated.go"), tupleTemplate, arities)
	write(filepath.Join(*out, "query_generated.go"), queryTemplate, arities)
}

func write(path string, tmpl *template.Template, arities []Arity) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, arities); err != nil {
		log.Fatalf("execute template %q: %s", tmpl.Name(), err)
	}

	source, err := format.Source(buf.Bytes())
	if err != nil {
		log.Fatalf("format %s: %s", path, err)
	}

	if err := os.WriteFile(path, source, 0o644); err != nil {
		log.Fatalf("write %s: %s", path, err)
	}
}

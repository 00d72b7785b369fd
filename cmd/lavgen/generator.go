// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bytes"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"
	"text/template"

	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/tools/imports"

	"github.com/ajroetker/go-lav/lav"
)

// knownKinds are the lane kinds defined by package lav.
var knownKinds = []string{"F32", "F64"}

// Generator renders the generated declarations of package lav.
type Generator struct {
	Package string
	Kinds   []string // lane kind type names, e.g. "F32"
	Lanes   []int    // supported lane counts, ascending
	Output  string
}

// Alias is one vector alias, e.g. F32x4 for Simd[F32, [4]F32].
type Alias struct {
	Name  string
	Kind  string
	Lanes int
}

// Edge is one peel conversion and the function performing it.
type Edge struct {
	From, To, Func string
	// Target is the alias produced by a generated vector peel function.
	Target Alias
}

func parseKinds(s string) []string {
	title := cases.Title(language.English)
	parts := lo.Map(strings.Split(s, ","), func(p string, _ int) string {
		return title.String(strings.TrimSpace(p))
	})
	return lo.Uniq(lo.Compact(parts))
}

func parseLanes(s string) ([]int, error) {
	if strings.TrimSpace(s) == "all" {
		return slices.Clone(lav.SupportedLanes[:]), nil
	}
	var lanes []int
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("invalid lane count %q: %w", p, err)
		}
		if !lav.IsSupportedLanes(n) {
			return nil, fmt.Errorf("unsupported lane count %d (want one of %v)", n, lav.SupportedLanes)
		}
		lanes = append(lanes, n)
	}
	if len(lanes) == 0 {
		return nil, fmt.Errorf("no lane counts given")
	}
	slices.Sort(lanes)
	return slices.Compact(lanes), nil
}

func (g *Generator) validate() error {
	if len(g.Kinds) == 0 {
		return fmt.Errorf("no lane kinds given")
	}
	for _, k := range g.Kinds {
		if !slices.Contains(knownKinds, k) {
			return fmt.Errorf("unknown lane kind %q (want one of %v)", k, knownKinds)
		}
	}
	if len(g.Lanes) == 0 {
		return fmt.Errorf("no lane counts given")
	}
	return nil
}

// Aliases returns the vector aliases of every kind and lane count.
func (g *Generator) Aliases() []Alias {
	return lo.FlatMap(g.Kinds, func(kind string, _ int) []Alias {
		return lo.Map(g.Lanes, func(n int, _ int) Alias {
			return Alias{Name: fmt.Sprintf("%sx%d", kind, n), Kind: kind, Lanes: n}
		})
	})
}

// Edges returns the peel table: scalar peels between distinct kinds, the
// one-lane lift and unlift, and one generated vector peel per distinct kind
// pair and lane count. No edge is reflexive.
func (g *Generator) Edges() []Edge {
	var edges []Edge
	for _, from := range g.Kinds {
		for _, to := range lo.Without(g.Kinds, from) {
			edges = append(edges, Edge{From: from, To: to, Func: from + ".Peel"})
		}
	}
	if slices.Contains(g.Lanes, 1) {
		for _, kind := range g.Kinds {
			one := kind + "x1"
			edges = append(edges,
				Edge{From: kind, To: one, Func: "Lift"},
				Edge{From: one, To: kind, Func: "Unlift"},
			)
		}
	}
	for _, a := range g.Aliases() {
		for _, to := range lo.Without(g.Kinds, a.Kind) {
			target := Alias{Name: fmt.Sprintf("%sx%d", to, a.Lanes), Kind: to, Lanes: a.Lanes}
			name := "Peel" + a.Name
			if len(g.Kinds) > 2 {
				// One source peels into several kinds.
				name += "To" + to
			}
			edges = append(edges, Edge{From: a.Name, To: target.Name, Func: name, Target: target})
		}
	}
	return edges
}

// Source returns the formatted generated file.
func (g *Generator) Source() ([]byte, error) {
	if err := g.validate(); err != nil {
		return nil, err
	}
	data := struct {
		Package string
		Aliases []Alias
		Edges   []Edge
	}{g.Package, g.Aliases(), g.Edges()}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	out, err := imports.Process(g.Output, buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("format generated code: %w", err)
	}
	return out, nil
}

// Run writes Source to the output file.
func (g *Generator) Run() error {
	src, err := g.Source()
	if err != nil {
		return err
	}
	if err := os.WriteFile(g.Output, src, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", g.Output, err)
	}
	return nil
}

var fileTemplate = template.Must(template.New("aliases").Parse(`// Code generated by lavgen. DO NOT EDIT.

package {{.Package}}

// Vector aliases, one per lane kind and supported lane count.
{{range .Aliases}}
type {{.Name}} = Simd[{{.Kind}}, [{{.Lanes}}]{{.Kind}}]
{{- end}}

// Every alias implements the vector capability.
{{range .Aliases}}
var _ Vector[{{.Name}}, {{.Kind}}, [{{.Lanes}}]{{.Kind}}] = {{.Name}}{}
{{- end}}
{{range .Edges}}{{if .Target.Name}}
// {{.Func}} converts every lane of v to {{.Target.Kind}}.
func {{.Func}}(v {{.From}}) {{.Target.Name}} {
	return peel[{{.Target.Kind}}, [{{.Target.Lanes}}]{{.Target.Kind}}](v)
}
{{end}}{{end}}
// PeelEdges lists every peel conversion and the function performing it.
var PeelEdges = []PeelEdge{
{{- range .Edges}}
	{From: "{{.From}}", To: "{{.To}}", Func: "{{.Func}}"},
{{- end}}
}
`))

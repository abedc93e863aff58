/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package generate

import (
	"fmt"
	"path"
	"strings"

	"bennypowers.dev/tokenclass/internal/logger"
	"bennypowers.dev/tokenclass/render"
	"bennypowers.dev/tokenclass/token"
	"bennypowers.dev/tokenclass/tree"
)

// Colors generates the color files. In unified mode the per-group classes
// get public constructors and a master file is appended.
func (g *Generator) Colors(t tree.Tree) ([]File, error) {
	return g.Category(t, token.Color)
}

// Typography generates the typography files.
func (g *Generator) Typography(t tree.Tree) ([]File, error) {
	return g.Category(t, token.Typography)
}

// Shadows generates the shadow files.
func (g *Generator) Shadows(t tree.Tree) ([]File, error) {
	return g.Category(t, token.Shadow)
}

// Category generates the files of one category. Each immediate child of a
// category root becomes a file whose outermost class holds static members.
func (g *Generator) Category(t tree.Tree, typ token.Type) ([]File, error) {
	starts := g.startNodes(t, typ)
	if typ.Equal(token.Color) && g.opts.Unified {
		return g.unified(starts)
	}
	return g.perGroup(starts, typ, true, render.Private)
}

// startNodes returns the children of every root of the category.
func (g *Generator) startNodes(t tree.Tree, typ token.Type) []*tree.Node {
	filtered := tree.FilterByType(t, typ)
	if g.opts.Prune {
		filtered = tree.Prune(filtered)
	}
	var starts []*tree.Node
	for _, root := range filtered.Roots {
		starts = append(starts, root.Children.Nodes()...)
	}
	return starts
}

func (g *Generator) perGroup(starts []*tree.Node, typ token.Type, static bool, ctor render.Constructor) ([]File, error) {
	imports := g.syntax.Imports(typ)
	dir := g.dir(typ)

	files := make([]File, 0, len(starts))
	for _, start := range starts {
		body, err := FileContent(start, g.renderer, g.namer, static, "", 0, ctor)
		if err != nil {
			return nil, fmt.Errorf("generating %s group %q: %w", typ, start.Name(), err)
		}
		files = append(files, File{
			Name:    g.namer.File(start.Name()),
			Path:    dir,
			Content: g.assemble(imports, body),
		})
	}
	logger.Debug("generated %d %s files", len(files), typ)
	return files, nil
}

// unified emits the per-group color files with public constructors and
// instance members, followed by the master file.
func (g *Generator) unified(starts []*tree.Node) ([]File, error) {
	files, err := g.perGroup(starts, token.Color, false, render.Public)
	if err != nil {
		return nil, err
	}
	return append(files, g.master(starts)), nil
}

// master emits the class holding one static instance of every
// per-group color class.
func (g *Generator) master(starts []*tree.Node) File {
	className := g.namer.Class(g.opts.UnifiedClassName, "")
	dir := g.dir(token.Color)
	imports := g.syntax.Imports(token.Color)

	var body strings.Builder
	body.WriteString(g.renderer.OpenClass(className, 0, render.Private))
	for _, start := range starts {
		file := g.namer.File(start.Name()) + g.syntax.Extension()
		imports = append(imports, g.syntax.Import(g.importURI(dir, file)))
		body.WriteString(g.renderer.RenderFieldReference(
			g.namer.Field(start.Name()),
			g.namer.Class(start.Name(), ""),
			true, 0, render.Public,
		))
	}
	body.WriteString(g.renderer.CloseClass(0))

	return File{
		Name:    g.namer.File(g.opts.UnifiedClassName),
		Path:    dir,
		Content: g.assemble(imports, body.String()),
	}
}

// importURI addresses a sibling file from the master file: through the
// package when one is configured, relatively otherwise.
func (g *Generator) importURI(dir, file string) string {
	if g.opts.PackageName == "" {
		return file
	}
	return "package:" + g.opts.PackageName + "/" + path.Join(dir, file)
}

/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package generate

import (
	"context"

	"golang.org/x/sync/errgroup"

	"bennypowers.dev/tokenclass/tree"
)

// All generates every configured category concurrently. Files are
// returned in category order. The first failing category cancels the rest.
func (g *Generator) All(ctx context.Context, t tree.Tree) ([]File, error) {
	categories := g.Categories()
	results := make([][]File, len(categories))

	eg, ctx := errgroup.WithContext(ctx)
	for i, typ := range categories {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			files, err := g.Category(t, typ)
			if err != nil {
				return err
			}
			results[i] = files
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	var files []File
	for _, r := range results {
		files = append(files, r...)
	}
	return files, nil
}

package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/combispec/assignment"
	"github.com/katalvlaran/combispec/sampling"
	"github.com/katalvlaran/combispec/valuemap"
	"github.com/katalvlaran/combispec/variables"
)

// loadFeatureModel reads the reduced feature model: one variable name per
// line, blank lines and '#' comments ignored. Failure is fatal to a run.
func loadFeatureModel(path string) (*assignment.List, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("feature model: %w", err)
	}
	defer f.Close()

	space := variables.NewSpace()
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		name := strings.TrimSpace(sc.Text())
		if name == "" || strings.HasPrefix(name, "#") {
			continue
		}
		space.Add(name)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("feature model %s: %w", path, err)
	}
	if space.Size() == 0 {
		return nil, fmt.Errorf("feature model %s: no variables", path)
	}

	return assignment.NewList(space), nil
}

// loadMaps loads the value maps named in cfg concurrently. Unset, missing
// or malformed maps degrade to empty maps with a warning.
func loadMaps(ctx context.Context, cfg Config, logger *slog.Logger) (sampling.Maps, error) {
	paths := [...]string{cfg.CardinalityMap, cfg.ClusterInteractionMap, cfg.WeightMap, cfg.PriorityMap}
	var loaded [len(paths)]*valuemap.Map

	g, ctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			loaded[i] = valuemap.LoadOrEmpty(path, logger)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return sampling.Maps{}, fmt.Errorf("load value maps: %w", err)
	}

	return sampling.Maps{
		Cardinality:        loaded[0],
		ClusterInteraction: loaded[1],
		Weight:             loaded[2],
		Priority:           loaded[3],
	}, nil
}

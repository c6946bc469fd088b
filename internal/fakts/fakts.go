// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package fakts

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/MKhiriev/go-fakts/internal/logger"
	"github.com/MKhiriev/go-fakts/models"
)

// Fakts is the client facade: it resolves named configuration groups by
// running discovery and the claim protocol, and caches each group's mapping
// as a completed snapshot.
//
// Concurrent resolves of the same group are collapsed into one
// discovery+claim cycle; all callers share its outcome.
type Fakts struct {
	discovery Discoverer
	runner    Runner
	clientID  string
	logger    *logger.Logger

	single singleflight.Group

	mu    sync.Mutex
	cache map[string]models.ConfigMapping
}

// New wires a discoverer and a protocol runner into a facade for clientID.
func New(d Discoverer, r Runner, clientID string, log *logger.Logger) *Fakts {
	return &Fakts{
		discovery: d,
		runner:    r,
		clientID:  clientID,
		logger:    log,
		cache:     make(map[string]models.ConfigMapping),
	}
}

// Resolve returns the configuration mapping for group.
//
// A cached snapshot is returned unless bypassCache is set, in which case a
// fresh discovery+claim cycle runs and replaces the cached snapshot
// wholesale. The returned mapping is a copy; mutating it does not affect
// the cache.
func (f *Fakts) Resolve(ctx context.Context, group string, bypassCache bool) (models.ConfigMapping, error) {
	if group == "" {
		return nil, errors.New("empty configuration group")
	}

	if !bypassCache {
		f.mu.Lock()
		cached, ok := f.cache[group]
		f.mu.Unlock()
		if ok {
			f.logger.Debug().Str("group", group).Msg("configuration served from cache")
			return cached.Clone(), nil
		}
	}

	v, err, shared := f.single.Do(group, func() (any, error) {
		mapping, err := f.claim(ctx, group)
		if err != nil {
			return nil, err
		}

		f.mu.Lock()
		f.cache[group] = mapping
		f.mu.Unlock()

		return mapping, nil
	})
	if err != nil {
		return nil, err
	}
	if shared {
		f.logger.Debug().Str("group", group).Msg("configuration shared with concurrent resolve")
	}

	return v.(models.ConfigMapping).Clone(), nil
}

// Value resolves a dotted path of the form "group.key[.key...]" through the
// cached mapping for its leading group.
func (f *Fakts) Value(ctx context.Context, path string) (any, error) {
	parts := strings.Split(path, ".")
	if len(parts) == 0 || parts[0] == "" {
		return nil, fmt.Errorf("invalid configuration path %q", path)
	}

	mapping, err := f.Resolve(ctx, parts[0], false)
	if err != nil {
		return nil, err
	}

	var current any = map[string]any(mapping)
	for _, key := range parts[1:] {
		nested, ok := current.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("configuration path %q: %q is not a mapping", path, key)
		}
		current, ok = nested[key]
		if !ok {
			return nil, fmt.Errorf("configuration path %q: key %q not found", path, key)
		}
	}

	return current, nil
}

// Invalidate drops the cached snapshot for group, forcing the next Resolve
// to run a fresh cycle.
func (f *Fakts) Invalidate(group string) {
	f.mu.Lock()
	delete(f.cache, group)
	f.mu.Unlock()
}

func (f *Fakts) claim(ctx context.Context, group string) (models.ConfigMapping, error) {
	req := &models.ClaimRequest{
		ClientID: f.clientID,
		Scopes:   []string{group},
	}

	endpoint, err := f.discovery.Discover(ctx, req)
	if err != nil {
		return nil, err
	}

	f.logger.Debug().
		Str("group", group).
		Str("endpoint", endpoint.BaseURL).
		Msg("endpoint resolved")

	claimed, err := f.runner.Run(ctx, endpoint, req)
	if err != nil {
		return nil, err
	}

	// the claimed mapping is keyed by scope; extract our group's subtree
	sub, ok := claimed[group].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("group %q missing from claimed configuration", group)
	}

	return models.ConfigMapping(sub), nil
}

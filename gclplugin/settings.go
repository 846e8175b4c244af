// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
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
//
// SPDX-License-Identifier: Apache-2.0

package gclplugin

import (
	writeguard "fillmore-labs.com/writeguard/analyzer"
	"fillmore-labs.com/writeguard/internal/source"
)

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	// Fix enables suggested fixes adding IsEnabled guards.
	Fix *bool `json:"suggest-fix,omitzero"`
	// Sources replaces the recognized tracing-source types, given as "package.Type".
	Sources []string `json:"sources,omitzero"`
}

// Validate checks the settings for invalid values.
func (s Settings) Validate() error {
	if s.Sources == nil {
		return nil
	}

	_, err := source.NewTypes(s.Sources...)

	return err
}

// Options converts [Settings] into a list of [writeguard.Option] for the writeguard analyzer.
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() []writeguard.Option {
	var opts []writeguard.Option

	opts = appendOption(opts, s.Fix, writeguard.WithFix)

	if s.Sources != nil {
		opts = append(opts, writeguard.WithSources(s.Sources...))
	}

	return opts
}

// appendOption appends a non-nil setting to a [writeguard.Option] list.
func appendOption[T any](opts []writeguard.Option, value *T, constructor func(T) writeguard.Option) []writeguard.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}

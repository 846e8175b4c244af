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

package analyzer

import (
	"log/slog"

	"fillmore-labs.com/writeguard/internal/config"
	"fillmore-labs.com/writeguard/internal/run"
	"fillmore-labs.com/writeguard/internal/source"
)

// Option configures specific behavior of a [New] writeguard analyzer.
type Option interface {
	apply(r *run.Options)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *run.Options) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithGenerated is an [Option] to configure diagnostics in generated files.
func WithGenerated(generated bool) Option { return generatedOption{generated: generated} }

type generatedOption struct{ generated bool }

func (o generatedOption) apply(r *run.Options) {
	r.Behavior.Set(config.IncludeGenerated, o.generated)
}

func (o generatedOption) LogAttr() slog.Attr {
	return slog.Bool("generated", o.generated)
}

// WithFix is an [Option] to configure whether reported writes get a suggested fix.
func WithFix(fix bool) Option { return fixOption{fix: fix} }

type fixOption struct{ fix bool }

func (o fixOption) apply(r *run.Options) {
	r.Behavior.Set(config.SuggestFixes, o.fix)
}

func (o fixOption) LogAttr() slog.Attr {
	return slog.Bool("suggest-fix", o.fix)
}

// WithSources is an [Option] to replace the recognized tracing-source types.
//
// Types are given as "package/path.TypeName", where the package path may be
// shortened to its trailing elements, like "diagnostics.DiagnosticSource".
// An invalid type or an empty list makes the analyzer fail when it runs.
func WithSources(sources ...string) Option { return sourcesOption{sources: sources} }

type sourcesOption struct{ sources []string }

func (o sourcesOption) apply(r *run.Options) {
	ts, err := source.NewTypes(o.sources...)
	if err != nil {
		r.Err = err

		return
	}

	r.Sources = ts
}

func (o sourcesOption) LogAttr() slog.Attr {
	return slog.Any("sources", o.sources)
}

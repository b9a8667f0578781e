/*
 * Copyright 2025 VTIL Project Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package vtil

import (
    `go.uber.org/zap`
)

type options struct {
    log *zap.Logger
}

// Option is a property setter for Optimize.
type Option func(*options)

// WithProfiler wraps every pipeline pass in a profiling wrapper that
// reports pass name, elapsed time and applied count to log.
func WithProfiler(log *zap.Logger) Option {
    return func(o *options) {
        o.log = log
    }
}

func newOptions(oo []Option) options {
    var ret options
    for _, o := range oo {
        o(&ret)
    }
    return ret
}

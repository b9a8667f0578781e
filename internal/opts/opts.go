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

// Package opts holds process-wide tunables, resolved from the environment
// once at startup.
package opts

import (
    `runtime`

    `github.com/klauspost/cpuid/v2`
    `github.com/xyproto/env/v2`
)

var (
    // MaxWorkers caps the worker pool used by parallel execution orders.
    MaxWorkers = env.Int("VTIL_MAX_WORKERS", defaultWorkers())

    // NoParallel degrades every parallel order to its serial equivalent,
    // for debugging non-deterministic pass interactions.
    NoParallel = env.Bool("VTIL_NO_PARALLEL")
)

func defaultWorkers() int {
    if n := cpuid.CPU.LogicalCores; n > 0 {
        return n
    }
    return runtime.NumCPU()
}

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

package arch

import (
    `sync`
)

// Analysis is per-block derived state stored in the block's context slots,
// keyed by name. Instances are lazily constructed, independently
// invalidated, and refreshed on demand. Update is assumed not to fail.
type Analysis interface {
    Updated(bb *BasicBlock) bool
    Update(bb *BasicBlock)
}

type analysisSlots struct {
    mu sync.Mutex
    m  map[string]Analysis
}

func (self *analysisSlots) get(key string, mk func() Analysis) Analysis {
    self.mu.Lock()
    defer self.mu.Unlock()
    if self.m == nil {
        self.m = make(map[string]Analysis, 1)
    }
    if v, ok := self.m[key]; ok {
        return v
    }
    v := mk()
    self.m[key] = v
    return v
}

// Analysis returns the keyed analysis slot, creating it with mk if absent
// and refreshing it if stale.
func (self *BasicBlock) Analysis(key string, mk func() Analysis) Analysis {
    v := self.ctx.get(key, mk)
    if !v.Updated(self) {
        v.Update(self)
    }
    return v
}

// RawAnalysis returns the keyed analysis slot without refreshing it,
// creating it with mk if absent.
func (self *BasicBlock) RawAnalysis(key string, mk func() Analysis) Analysis {
    return self.ctx.get(key, mk)
}

// InvalidateAnalysis drops the keyed slot so the next access rebuilds it.
func (self *BasicBlock) InvalidateAnalysis(key string) {
    self.ctx.mu.Lock()
    delete(self.ctx.m, key)
    self.ctx.mu.Unlock()
}

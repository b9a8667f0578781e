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

package optimizer

import (
    `github.com/Mellonyt/VTIL-Core/arch`
)

type analysisRefresh struct {
    key string
    mk  func() arch.Analysis
}

// UpdateAnalysis forces (re)computation of the named analysis on every
// block that reports itself stale, refreshing in parallel. It performs
// no rewrite and always reports zero.
func UpdateAnalysis(key string, mk func() arch.Analysis) Pass {
    return &analysisRefresh{key: key, mk: mk}
}

func (self *analysisRefresh) Name() string {
    return "update{" + self.key + "}"
}

func (self *analysisRefresh) Order() ExecutionOrder {
    return Custom
}

func (self *analysisRefresh) Apply(bb *arch.BasicBlock, xblock bool) uint64 {
    bb.Analysis(self.key, self.mk)
    return 0
}

func (self *analysisRefresh) ApplyRoutine(rtn *arch.Routine) uint64 {
    var stale []*arch.BasicBlock

    /* enumerate first, the refresh itself runs in parallel */
    rtn.ForEach(func(bb *arch.BasicBlock) {
        if !bb.RawAnalysis(self.key, self.mk).Updated(bb) {
            stale = append(stale, bb)
        }
    })

    transform(stale, func(bb *arch.BasicBlock) {
        if v := bb.RawAnalysis(self.key, self.mk); !v.Updated(bb) {
            v.Update(bb)
        }
    })
    return 0
}

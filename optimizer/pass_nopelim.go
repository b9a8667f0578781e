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

// NopElim removes no-op instructions from a block.
type NopElim struct{}

func (self NopElim) Name() string {
    return TypeName(self)
}

func (NopElim) Order() ExecutionOrder {
    return Parallel
}

func (NopElim) Apply(bb *arch.BasicBlock, xblock bool) uint64 {
    n := uint64(0)
    ins := bb.Ins[:0]

    for _, v := range bb.Ins {
        if v.IsNop() {
            n++
        } else {
            ins = append(ins, v)
        }
    }

    bb.Ins = ins
    return n
}

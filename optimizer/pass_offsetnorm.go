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
    `github.com/Mellonyt/VTIL-Core/symex`
    `github.com/Mellonyt/VTIL-Core/symex/directive`
)

// OffsetNormalize rewrites operand arithmetic into canonical base+offset
// form: constants migrate to the right of an addition and subtraction of
// a constant becomes addition of its negation. Idempotent, block-local.
type OffsetNormalize struct{}

func (self OffsetNormalize) Name() string {
    return TypeName(self)
}

func (OffsetNormalize) Order() ExecutionOrder {
    return Parallel
}

func (OffsetNormalize) Apply(bb *arch.BasicBlock, xblock bool) uint64 {
    n := uint64(0)
    for i := range bb.Ins {
        for j, op := range bb.Ins[i].Operands {
            base, off := directive.SplitOffset(op)

            /* rebuild in canonical form, count only real rewrites */
            canon := base
            if off != 0 {
                canon = symex.Add(base, symex.Consti(off, symex.Width(base)))
            }
            if !symex.Equal(canon, op) {
                bb.Ins[i].Operands[j] = canon
                n++
            }
        }
    }
    return n
}

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
    `testing`

    `github.com/Mellonyt/VTIL-Core/arch`
    `github.com/Mellonyt/VTIL-Core/symex`
    `github.com/stretchr/testify/require`
    `go.uber.org/zap/zaptest`
)

func TestOptimize_Pipeline(t *testing.T) {
    x := symex.Symbol("x", 64)
    rtn := arch.CreateRoutine(0x1000)
    bb := rtn.CreateBlock(0x1008)
    rtn.Entry.LinkTo(bb)

    rtn.Entry.Append(
        arch.Ins("load", symex.Add(symex.Const(8, 64), x)),
        arch.Ins("nop"),
    )
    bb.Append(
        arch.Ins("store", symex.Sub(x, symex.Const(8, 64))),
    )

    /* one canonicalization and one nop removal per round one, one more
     * rewrite in the second block, then the block merge */
    n := Optimize(rtn, WithProfiler(zaptest.NewLogger(t)))
    require.Equal(t, uint64(4), n)

    require.Equal(t, 1, rtn.NumBlocks())
    require.Len(t, rtn.Entry.Ins, 2)
    require.True(t, symex.Equal(symex.Add(x, symex.Const(8, 64)), rtn.Entry.Ins[0].Operands[0]))
    require.True(t, symex.Equal(symex.Add(x, symex.Consti(-8, 64)), rtn.Entry.Ins[1].Operands[0]))
}

func TestOptimize_IdempotentAtFixpoint(t *testing.T) {
    rtn := arch.CreateRoutine(0x1000)
    rtn.Entry.Append(arch.Ins("mov", symex.Symbol("x", 64)))

    require.Equal(t, uint64(0), Optimize(rtn))
    require.Equal(t, uint64(0), Optimize(rtn))
}

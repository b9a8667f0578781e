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
    `testing`

    `github.com/Mellonyt/VTIL-Core/arch`
    `github.com/Mellonyt/VTIL-Core/symex`
    `github.com/davecgh/go-spew/spew`
    `github.com/stretchr/testify/require`
)

func TestOffsetNormalize_Canonicalizes(t *testing.T) {
    x := symex.Symbol("x", 64)
    y := symex.Symbol("y", 64)
    rtn := arch.CreateRoutine(1)
    rtn.Entry.Append(
        arch.Ins("load", symex.Add(symex.Const(4, 64), x)),
        arch.Ins("store", symex.Sub(x, symex.Const(4, 64))),
        arch.Ins("load", symex.Add(x, symex.Const(4, 64))),
        arch.Ins("mov", y),
    )

    require.Equal(t, uint64(2), Run(rtn, OffsetNormalize{}))
    spew.Dump(rtn.Entry.Ins)

    require.True(t, symex.Equal(symex.Add(x, symex.Const(4, 64)), rtn.Entry.Ins[0].Operands[0]))
    require.True(t, symex.Equal(symex.Add(x, symex.Consti(-4, 64)), rtn.Entry.Ins[1].Operands[0]))
    require.True(t, symex.Equal(symex.Add(x, symex.Const(4, 64)), rtn.Entry.Ins[2].Operands[0]))
    require.True(t, symex.Equal(y, rtn.Entry.Ins[3].Operands[0]))

    /* second application finds nothing left to rewrite */
    require.Equal(t, uint64(0), Run(rtn, OffsetNormalize{}))
}

func TestNopElim_Counts(t *testing.T) {
    rtn := arch.CreateRoutine(1)
    rtn.Entry.Append(
        arch.Ins("nop"),
        arch.Ins("mov", symex.Symbol("x", 64)),
        arch.Ins("nop"),
    )

    require.Equal(t, uint64(2), Run(rtn, NopElim{}))
    require.Len(t, rtn.Entry.Ins, 1)
    require.Equal(t, "mov", rtn.Entry.Ins[0].Op)
}

func TestBlockMerge_Chain(t *testing.T) {
    rtn := chain(t)
    rtn.Entry.Append(arch.Ins("a"))
    rtn.Block(2).Append(arch.Ins("b"))
    rtn.Block(3).Append(arch.Ins("c"))

    require.Equal(t, uint64(2), Run(rtn, BlockMerge{}))
    require.Equal(t, 1, rtn.NumBlocks())
    require.Empty(t, rtn.Entry.Next)

    ops := make([]string, 0, 3)
    for _, v := range rtn.Entry.Ins {
        ops = append(ops, v.Op)
    }
    require.Equal(t, []string{"a", "b", "c"}, ops)
}

func TestBlockMerge_BehindFork(t *testing.T) {
    rtn := arch.CreateRoutine(1)
    b := rtn.CreateBlock(2)
    c := rtn.CreateBlock(3)
    d := rtn.CreateBlock(4)
    e := rtn.CreateBlock(5)
    rtn.Entry.LinkTo(b)
    b.LinkTo(c)
    b.LinkTo(d)
    c.LinkTo(e)

    /* merging B rewires the fork onto the entry mid-walk, the C→E pair
     * behind it must still collapse in the same run */
    require.Equal(t, uint64(2), Run(rtn, BlockMerge{}))
    require.Equal(t, 3, rtn.NumBlocks())
    require.Nil(t, rtn.Block(2))
    require.Nil(t, rtn.Block(5))
    require.Len(t, rtn.Entry.Next, 2)
    require.Empty(t, rtn.Block(3).Next)
}

func TestBlockMerge_KeepsJoinPoints(t *testing.T) {
    rtn := loopy(t)
    require.Equal(t, uint64(0), Run(rtn, BlockMerge{}))
    require.Equal(t, 5, rtn.NumBlocks())
}

func TestBlockMerge_LocalIsNop(t *testing.T) {
    rtn := chain(t)
    require.Equal(t, uint64(0), BlockMerge{}.Apply(rtn.Entry, false))
    require.Equal(t, 3, rtn.NumBlocks())
}

func TestTypeName_NeverEmpty(t *testing.T) {
    require.Equal(t, "NopElim", TypeName(NopElim{}))
    require.Equal(t, "NopElim", TypeName(&NopElim{}))

    /* anonymous pass types fall back to the full type string */
    anon := struct{ NopElim }{}
    require.NotEmpty(t, TypeName(anon))
}

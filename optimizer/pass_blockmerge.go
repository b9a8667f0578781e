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

// BlockMerge folds a block into its sole predecessor when that
// predecessor has it as its sole successor. Requires cross-block
// exploration, a local invocation is a no-op.
type BlockMerge struct{}

func (self BlockMerge) Name() string {
    return TypeName(self)
}

func (BlockMerge) Order() ExecutionOrder {
    return SerialDF
}

func (BlockMerge) Apply(bb *arch.BasicBlock, xblock bool) uint64 {
    n := uint64(0)

    /* needs sibling access, and the walk may still yield blocks that an
     * earlier merge already unowned */
    if !xblock || bb.Owner == nil {
        return 0
    }

    /* keep absorbing down the chain */
    for len(bb.Next) == 1 {
        nx := bb.Next[0]
        if nx == bb || nx == bb.Owner.Entry || len(nx.Pred) != 1 {
            break
        }

        /* move instructions and take over the outgoing edges */
        bb.Ins = append(bb.Ins, nx.Ins...)
        bb.Next = nx.Next
        for _, s := range nx.Next {
            blockReplacePred(s, nx, bb)
        }

        /* detach and unown the merged block */
        nx.Next = nil
        nx.Pred = nil
        bb.Owner.RemoveBlock(nx)
        n++
    }
    return n
}

func (self BlockMerge) ApplyRoutine(rtn *arch.Routine) uint64 {
    n := uint64(0)

    /* a merge rewires edges under the walk, so blocks behind a merged
     * fork are not reached in the same round, rewalk until stable */
    for {
        m := dispatch(rtn, self, true)
        if m == 0 {
            return n
        }

        /* cached traversal state is stale after a merge */
        rtn.Rebuild()
        n += m
    }
}

func blockReplacePred(bb *arch.BasicBlock, from *arch.BasicBlock, to *arch.BasicBlock) {
    for i, p := range bb.Pred {
        if p == from {
            bb.Pred[i] = to
        }
    }
}

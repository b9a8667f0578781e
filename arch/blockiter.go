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
    `github.com/oleiade/lane`
)

// BlockIter walks the routine graph depth-first from a start set, each
// block yielded exactly once. The direction parameterizes the edges
// followed: forward walks successor edges from the entry, backward walks
// predecessor edges from every exit. Cycles are cut by the visited set.
type BlockIter struct {
    s   *lane.Stack
    v   map[Vip]struct{}
    b   *BasicBlock
    fwd bool
}

// ForwardIter iterates depth-first from the entry block along successor
// edges: on a chain A→B→C the order is A, B, C.
func (self *Routine) ForwardIter() *BlockIter {
    it := &BlockIter{s: lane.NewStack(), v: make(map[Vip]struct{}, len(self.Blocks)), fwd: true}
    it.push(self.Entry)
    return it
}

// BackwardIter iterates depth-first from every exit block along
// predecessor edges: on a chain A→B→C the order is C, B, A. This is the
// deliberate mirror of ForwardIter, not a fixed-up breadth-first order,
// passes depend on the exact visitation.
func (self *Routine) BackwardIter() *BlockIter {
    it := &BlockIter{s: lane.NewStack(), v: make(map[Vip]struct{}, len(self.Blocks))}
    ee := self.Exits()

    /* queue in reverse so the first exit pops first */
    for i := len(ee) - 1; i >= 0; i-- {
        it.push(ee[i])
    }
    return it
}

func (self *BlockIter) push(bb *BasicBlock) {
    if _, ok := self.v[bb.Vip]; !ok {
        self.v[bb.Vip] = struct{}{}
        self.s.Push(bb)
    }
}

func (self *BlockIter) Next() bool {
    if self.s.Empty() {
        self.b = nil
        return false
    }

    /* pop the next block, then queue its unvisited links */
    self.b = self.s.Pop().(*BasicBlock)
    ln := self.b.Next
    if !self.fwd {
        ln = self.b.Pred
    }

    /* reversed so the first link is explored first */
    for i := len(ln) - 1; i >= 0; i-- {
        self.push(ln[i])
    }
    return true
}

func (self *BlockIter) Block() *BasicBlock {
    return self.b
}

func (self *BlockIter) ForEach(action func(bb *BasicBlock)) {
    for self.Next() {
        action(self.b)
    }
}

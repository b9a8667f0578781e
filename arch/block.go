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
    `fmt`
)

// Vip is the virtual instruction pointer of a block's entry, unique within
// a routine.
type Vip uint64

// BasicBlock is a node of the routine graph: an ordered instruction
// sequence with predecessor and successor edges. Edges are references,
// the owning routine holds the blocks themselves.
type BasicBlock struct {
    Vip   Vip
    Owner *Routine
    Ins   []Instruction
    Pred  []*BasicBlock
    Next  []*BasicBlock
    ctx   analysisSlots
}

// Append adds instructions at the end of the block.
func (self *BasicBlock) Append(ins ...Instruction) *BasicBlock {
    self.Ins = append(self.Ins, ins...)
    return self
}

// LinkTo adds an edge from self to bb, updating both sides. Duplicate
// edges are ignored.
func (self *BasicBlock) LinkTo(bb *BasicBlock) *BasicBlock {
    for _, p := range self.Next {
        if p == bb {
            return self
        }
    }
    self.Next = append(self.Next, bb)
    bb.Pred = append(bb.Pred, self)
    return self
}

func (self *BasicBlock) String() string {
    return fmt.Sprintf("bb_%x", uint64(self.Vip))
}

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
    `sort`
)

// Routine is the full control-flow graph of one compiled unit. It owns
// every block, keyed by entry Vip, and designates a single entry block.
// Passes mutate the graph in place, it is never copied during
// optimization. Structural edits must be serialized against in-flight
// parallel passes by the caller.
type Routine struct {
    Entry  *BasicBlock
    Blocks map[Vip]*BasicBlock
    depth  [2][]DepthPlacement
}

// CreateRoutine builds an empty routine with an entry block at vip.
func CreateRoutine(vip Vip) *Routine {
    rtn := &Routine{Blocks: make(map[Vip]*BasicBlock)}
    rtn.Entry = rtn.CreateBlock(vip)
    return rtn
}

// CreateBlock adds a new empty block. Vips are unique, redefinition is a
// programming error.
func (self *Routine) CreateBlock(vip Vip) *BasicBlock {
    if _, ok := self.Blocks[vip]; ok {
        panic(fmt.Sprintf("vtil: duplicate basic block: %x", uint64(vip)))
    }
    bb := &BasicBlock{Vip: vip, Owner: self}
    self.Blocks[vip] = bb
    return bb
}

func (self *Routine) Block(vip Vip) *BasicBlock {
    return self.Blocks[vip]
}

func (self *Routine) NumBlocks() int {
    return len(self.Blocks)
}

// RemoveBlock unowns bb. Edge fixups are the caller's responsibility, the
// entry block is never removable.
func (self *Routine) RemoveBlock(bb *BasicBlock) {
    if bb == self.Entry {
        panic("vtil: cannot remove the entry block")
    }
    delete(self.Blocks, bb.Vip)
    bb.Owner = nil
}

// ForEach visits every block once in stable (ascending Vip) order.
func (self *Routine) ForEach(action func(bb *BasicBlock)) {
    for _, bb := range self.sorted() {
        action(bb)
    }
}

// Exits returns the blocks with no successors, in stable order.
func (self *Routine) Exits() []*BasicBlock {
    var ret []*BasicBlock
    for _, bb := range self.sorted() {
        if len(bb.Next) == 0 {
            ret = append(ret, bb)
        }
    }
    return ret
}

// Rebuild drops cached traversal state after a structural edit to the
// graph (blocks added, merged or removed, edges rewritten).
func (self *Routine) Rebuild() {
    self.depth[0] = nil
    self.depth[1] = nil
}

func (self *Routine) sorted() []*BasicBlock {
    ret := make([]*BasicBlock, 0, len(self.Blocks))
    for _, bb := range self.Blocks {
        ret = append(ret, bb)
    }
    sort.Slice(ret, func(i int, j int) bool { return ret[i].Vip < ret[j].Vip })
    return ret
}

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
    `sort`

    `gonum.org/v1/gonum/graph/simple`
    `gonum.org/v1/gonum/graph/topo`
)

// DepthPlacement positions a block at its dependency level. Blocks of one
// level are mutually independent for scheduling, blocks of a later level
// depend (directly or through a cycle) on earlier levels.
type DepthPlacement struct {
    Block *BasicBlock
    Level int
}

// DepthOrderedList returns every block tagged with its dependency level,
// sorted by level then Vip. With bf set, levels are measured backward
// from the exits along predecessor edges, otherwise forward from the
// entry side. Cycles collapse into a single level via strongly connected
// components. The result is cached until Rebuild.
func (self *Routine) DepthOrderedList(bf bool) []DepthPlacement {
    idx := 0
    if bf {
        idx = 1
    }
    if self.depth[idx] == nil {
        self.depth[idx] = self.depthorder(bf)
    }
    return self.depth[idx]
}

func (self *Routine) depthorder(bf bool) []DepthPlacement {
    g := simple.NewDirectedGraph()

    /* mirror the routine into a gonum graph, self-loops carry no
     * scheduling constraint and are dropped */
    for vip := range self.Blocks {
        g.AddNode(simple.Node(int64(vip)))
    }
    for _, bb := range self.Blocks {
        for _, nx := range bb.Next {
            if nx != bb {
                g.SetEdge(simple.Edge{F: simple.Node(int64(bb.Vip)), T: simple.Node(int64(nx.Vip))})
            }
        }
    }

    /* condense cycles, TarjanSCC yields components in reverse
     * topological order (sinks first) */
    sccs := topo.TarjanSCC(g)
    comp := make(map[Vip]int, len(self.Blocks))
    for i, cc := range sccs {
        for _, n := range cc {
            comp[Vip(n.ID())] = i
        }
    }

    /* cross-component edges */
    into := make([][]int, len(sccs))
    from := make([][]int, len(sccs))
    seen := make(map[[2]int]bool)
    for _, bb := range self.Blocks {
        for _, nx := range bb.Next {
            u, v := comp[bb.Vip], comp[nx.Vip]
            if u != v && !seen[[2]int{u, v}] {
                seen[[2]int{u, v}] = true
                into[v] = append(into[v], u)
                from[u] = append(from[u], v)
            }
        }
    }

    /* level = longest dependency chain; forward counts from the entry
     * side (sources), backward from the exit side (sinks) */
    level := make([]int, len(sccs))
    if !bf {
        for i := len(sccs) - 1; i >= 0; i-- {
            for _, p := range into[i] {
                if level[p] + 1 > level[i] {
                    level[i] = level[p] + 1
                }
            }
        }
    } else {
        for i := 0; i < len(sccs); i++ {
            for _, s := range from[i] {
                if level[s] + 1 > level[i] {
                    level[i] = level[s] + 1
                }
            }
        }
    }

    /* stable placement order: level first, then Vip */
    ret := make([]DepthPlacement, 0, len(self.Blocks))
    for _, bb := range self.Blocks {
        ret = append(ret, DepthPlacement{Block: bb, Level: level[comp[bb.Vip]]})
    }
    sort.Slice(ret, func(i int, j int) bool {
        if ret[i].Level != ret[j].Level {
            return ret[i].Level < ret[j].Level
        }
        return ret[i].Block.Vip < ret[j].Block.Vip
    })
    return ret
}

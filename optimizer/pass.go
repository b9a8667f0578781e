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

// Package optimizer drives rewrite passes over a routine graph: the pass
// contract, the traversal and parallelism policies, and the combinators
// that compose passes into pipelines.
package optimizer

import (
    `fmt`
    `reflect`

    `github.com/Mellonyt/VTIL-Core/arch`
)

// ExecutionOrder is the traversal and parallelism policy a pass declares
// for routine-level application.
//
// Note that while the serial orders guarantee all links of a block are
// processed in the documented sequence, the parallel orders only order
// across dependency levels, and neither asserts a whole path is
// processed.
type ExecutionOrder uint8

const (
    // Custom passes implement RoutinePass themselves, routing one
    // through the generic dispatcher is a programming error.
    Custom ExecutionOrder = iota

    // Serial visits every block once in the routine's natural order.
    Serial

    // SerialBF walks depth-first backward from every exit along
    // predecessor edges.
    SerialBF

    // SerialDF walks depth-first forward from the entry along successor
    // edges.
    SerialDF

    // Parallel dispatches every block concurrently, no ordering.
    Parallel

    // ParallelBF and ParallelDF process dependency levels in order,
    // blocks within one level concurrently.
    ParallelBF
    ParallelDF
)

var _OrderNames = [...]string {
    Custom     : "custom",
    Serial     : "serial",
    SerialBF   : "serial-bf",
    SerialDF   : "serial-df",
    Parallel   : "parallel",
    ParallelBF : "parallel-bf",
    ParallelDF : "parallel-df",
}

func (self ExecutionOrder) String() string {
    if int(self) < len(_OrderNames) {
        return _OrderNames[self]
    } else {
        return fmt.Sprintf("ExecutionOrder(%d)", self)
    }
}

// Pass is a stateless transformation strategy. Its identity is its type,
// the same pass value may be applied any number of times, all state lives
// in the graph's per-block analysis slots.
type Pass interface {
    // Name returns the human readable identifier of the pass.
    Name() string

    // Order declares how Run schedules the pass over a routine.
    Order() ExecutionOrder

    // Apply transforms one block and returns the number of rewrites it
    // performed. With xblock set, the pass may follow and modify sibling
    // block references, otherwise it must confine itself to bb.
    Apply(bb *arch.BasicBlock, xblock bool) uint64
}

// RoutinePass is the optional upgrade for passes that hand-roll their
// routine-level application instead of using the generic dispatcher.
type RoutinePass interface {
    Pass
    ApplyRoutine(rtn *arch.Routine) uint64
}

// TypeName derives the default pass name from the concrete type.
// Anonymous types fall back to the full type string so the name is never
// empty.
func TypeName(p Pass) string {
    t := reflect.TypeOf(p)
    for t.Kind() == reflect.Ptr {
        t = t.Elem()
    }
    if name := t.Name(); name != "" {
        return name
    }
    return t.String()
}

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

// Package vtil is the optimization core of a virtual-machine IL compiler:
// it mutates a routine's control-flow graph through composable rewrite
// passes and simplifies symbolic expressions through directive-driven
// pattern matching.
package vtil

import (
    `github.com/Mellonyt/VTIL-Core/arch`
    `github.com/Mellonyt/VTIL-Core/optimizer`
)

// PassDescriptor names one step of the standard pipeline.
type PassDescriptor struct {
    Name string
    Pass optimizer.Pass
}

// Passes returns the standard optimization pipeline.
func Passes() []PassDescriptor {
    return []PassDescriptor {
        { Name: "Operand Canonicalization"   , Pass: optimizer.Exhaust(optimizer.OffsetNormalize{}, optimizer.NopElim{}) },
        { Name: "Intermediate Block Merging" , Pass: optimizer.BlockMerge{} },
    }
}

// Optimize runs the standard pipeline over rtn and returns the total
// number of rewrites applied.
func Optimize(rtn *arch.Routine, options ...Option) uint64 {
    o := newOptions(options)
    n := uint64(0)

    for _, d := range Passes() {
        p := d.Pass
        if o.log != nil {
            p = optimizer.Profile(p, o.log)
        }
        n += optimizer.Run(rtn, p)
    }
    return n
}

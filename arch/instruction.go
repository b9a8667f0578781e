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
    `strings`

    `github.com/Mellonyt/VTIL-Core/symex`
)

// Instruction is one IL instruction. The optimizer core treats the opcode
// as opaque, it only ever inspects and rewrites operand expressions.
type Instruction struct {
    Op       string
    Operands []symex.Expr
}

func Ins(op string, operands ...symex.Expr) Instruction {
    return Instruction{Op: op, Operands: operands}
}

func (self Instruction) IsNop() bool {
    return self.Op == "nop"
}

func (self Instruction) String() string {
    ss := make([]string, 0, len(self.Operands))
    for _, v := range self.Operands {
        ss = append(ss, v.String())
    }
    return fmt.Sprintf("%s %s", self.Op, strings.Join(ss, ", "))
}

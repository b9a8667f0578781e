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

package directive

import (
    `github.com/benbjohnson/immutable`
    `github.com/Mellonyt/VTIL-Core/symex`
)

// SymbolTable maps pattern variables to the sub-expressions they bound
// during a successful match. It is produced fresh per match attempt and
// read-only afterwards.
//
// Bindings are kept in a persistent map so a failed unification branch
// (e.g. the second operand order of a commutative operator) discards its
// partial bindings by simply dropping the derived map.
type SymbolTable struct {
    m *immutable.Map[string, symex.Expr]
}

func emptytab() *immutable.Map[string, symex.Expr] {
    return immutable.NewMap[string, symex.Expr](nil)
}

// Translate returns the expression bound to v, or nil if v never occurred
// in the matched pattern.
func (self *SymbolTable) Translate(v Var) symex.Expr {
    e, _ := self.m.Get(v.Id)
    return e
}

// Len returns the number of distinct variables bound.
func (self *SymbolTable) Len() int {
    return self.m.Len()
}

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

// Rule pairs a pattern with a caller-defined tag, used to identify which
// directive of an ordered family matched.
type Rule struct {
    Tag     int
    Pattern Node
}

// Match unifies e against pat. On success it returns the populated symbol
// table, on failure (nil, false). Matching is pure, neither tree is
// modified, and failure is a normal outcome rather than an error.
func Match(pat Node, e symex.Expr) (*SymbolTable, bool) {
    if m, ok := unify(emptytab(), pat, e); ok {
        return &SymbolTable{m: m}, true
    } else {
        return nil, false
    }
}

// MatchFirst attempts each rule in list order and short-circuits on the
// first success, returning its symbol table and tag. Precedence is the
// list order, not best fit.
func MatchFirst(rules []Rule, e symex.Expr) (*SymbolTable, int, bool) {
    for _, r := range rules {
        if st, ok := Match(r.Pattern, e); ok {
            return st, r.Tag, true
        }
    }
    return nil, 0, false
}

func unify(m *immutable.Map[string, symex.Expr], pat Node, e symex.Expr) (*immutable.Map[string, symex.Expr], bool) {
    switch p := pat.(type) {
        default: {
            panic("vtil: invalid pattern node")
        }

        /* free variable: filter, then bind or check consistency */
        case Var: {
            if !p.Filter.accepts(e) {
                return nil, false
            } else if prev, ok := m.Get(p.Id); !ok {
                return m.Set(p.Id, e), true
            } else if symex.Equal(prev, e) {
                return m, true
            } else {
                return nil, false
            }
        }

        /* literal constant: value comparison, width-insensitive */
        case Num: {
            if v, ok := symex.Value(e); ok && v == p.Value {
                return m, true
            } else {
                return nil, false
            }
        }

        /* unary operator: same operator, recurse */
        case *UnOp: {
            if v, ok := e.(*symex.UnaryExpr); ok && v.Op == p.Op {
                return unify(m, p.X, v.X)
            } else {
                return nil, false
            }
        }

        /* binary operator: same operator, retry swapped if commutative */
        case *BinOp: {
            v, ok := e.(*symex.BinaryExpr)

            /* operator mismatch fails the whole branch */
            if !ok || v.Op != p.Op {
                return nil, false
            }

            /* left-to-right attempt, always valid */
            if mx, ok := unify(m, p.X, v.X); ok {
                if my, ok := unify(mx, p.Y, v.Y); ok {
                    return my, true
                }
            }

            /* commutative operators also try the operands swapped, restarting
             * from the bindings as they were before this node */
            if !p.Op.Commutative() {
                return nil, false
            } else if mx, ok := unify(m, p.X, v.Y); !ok {
                return nil, false
            } else {
                return unify(mx, p.Y, v.X)
            }
        }
    }
}

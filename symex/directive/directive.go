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

// Package directive implements declarative rewrite patterns over symbolic
// expressions and the matcher that unifies them with concrete trees.
package directive

import (
    `fmt`

    `github.com/Mellonyt/VTIL-Core/symex`
)

// Node is one node of a pattern tree. It mirrors the expression shape,
// except that leaves may be free variables instead of concrete symbols.
type Node interface {
    fmt.Stringer
    node()
}

func (Var)    node() {}
func (Num)    node() {}
func (*UnOp)  node() {}
func (*BinOp) node() {}

// Filter gates what a variable may bind to.
type Filter uint8

const (
    // MatchAny binds any sub-expression.
    MatchAny Filter = iota

    // MatchConstant binds constant leaves only.
    MatchConstant

    // MatchVariable binds symbolic leaves only.
    MatchVariable
)

func (self Filter) accepts(e symex.Expr) bool {
    switch self {
        case MatchConstant : _, ok := e.(*symex.ConstExpr); return ok
        case MatchVariable : _, ok := e.(*symex.SymbolExpr); return ok
        default            : return true
    }
}

// Var is a unification variable. Two occurrences of the same identifier
// within one pattern must bind structurally equal sub-expressions.
type Var struct {
    Id     string
    Filter Filter
}

// Canonical pattern variables: A through C bind anything, U and V bind
// constants.
var (
    A = Var{Id: "A"}
    B = Var{Id: "B"}
    C = Var{Id: "C"}
    U = Var{Id: "U", Filter: MatchConstant}
    V = Var{Id: "V", Filter: MatchConstant}
)

// Num is a literal constant inside a pattern, matching any constant leaf
// of equal value regardless of width.
type Num struct {
    Value int64
}

type UnOp struct {
    Op symex.UnaryOp
    X  Node
}

type BinOp struct {
    Op symex.BinaryOp
    X  Node
    Y  Node
}

func Add(x Node, y Node) *BinOp { return &BinOp{Op: symex.OpAdd, X: x, Y: y} }
func Sub(x Node, y Node) *BinOp { return &BinOp{Op: symex.OpSub, X: x, Y: y} }
func Mul(x Node, y Node) *BinOp { return &BinOp{Op: symex.OpMul, X: x, Y: y} }
func And(x Node, y Node) *BinOp { return &BinOp{Op: symex.OpAnd, X: x, Y: y} }
func Or (x Node, y Node) *BinOp { return &BinOp{Op: symex.OpOr , X: x, Y: y} }
func Xor(x Node, y Node) *BinOp { return &BinOp{Op: symex.OpXor, X: x, Y: y} }
func Neg(x Node)         *UnOp  { return &UnOp{Op: symex.OpNeg, X: x} }
func Not(x Node)         *UnOp  { return &UnOp{Op: symex.OpNot, X: x} }

func (self Var) String() string {
    switch self.Filter {
        case MatchConstant : return self.Id + "#const"
        case MatchVariable : return self.Id + "#var"
        default            : return self.Id
    }
}

func (self Num) String() string {
    return fmt.Sprintf("%d", self.Value)
}

func (self *UnOp) String() string {
    return fmt.Sprintf("(%s %s)", self.Op, self.X)
}

func (self *BinOp) String() string {
    return fmt.Sprintf("(%s %s %s)", self.Op, self.X, self.Y)
}

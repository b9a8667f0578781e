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

package symex

import (
    `fmt`
)

// Expr represents an immutable symbolic expression tree. Sub-trees are
// shared by pointer, a node is never modified after construction.
type Expr interface {
    fmt.Stringer
    expr()
}

func (*ConstExpr)  expr() {}
func (*SymbolExpr) expr() {}
func (*UnaryExpr)  expr() {}
func (*BinaryExpr) expr() {}

type UnaryOp uint8

const (
    OpNeg UnaryOp = iota
    OpNot
    OpBswap
)

var _UnaryNames = [...]string {
    OpNeg   : "neg",
    OpNot   : "not",
    OpBswap : "bswap",
}

func (self UnaryOp) String() string {
    if int(self) < len(_UnaryNames) {
        return _UnaryNames[self]
    } else {
        return fmt.Sprintf("UnaryOp(%d)", self)
    }
}

type BinaryOp uint8

const (
    OpAdd BinaryOp = iota
    OpSub
    OpMul
    OpAnd
    OpOr
    OpXor
    OpShl
    OpShr
)

var _BinaryNames = [...]string {
    OpAdd : "add",
    OpSub : "sub",
    OpMul : "mul",
    OpAnd : "and",
    OpOr  : "or",
    OpXor : "xor",
    OpShl : "shl",
    OpShr : "shr",
}

func (self BinaryOp) String() string {
    if int(self) < len(_BinaryNames) {
        return _BinaryNames[self]
    } else {
        return fmt.Sprintf("BinaryOp(%d)", self)
    }
}

// Commutative returns true if the operands of self may be swapped without
// changing the value of the expression.
func (self BinaryOp) Commutative() bool {
    switch self {
        case OpAdd, OpMul, OpAnd, OpOr, OpXor : return true
        default                               : return false
    }
}

// ConstExpr is a constant leaf with an explicit bit width. The value is
// stored zero-extended, Value() sign-extends on extraction.
type ConstExpr struct {
    Value uint64
    Width uint8
}

// SymbolExpr is an opaque symbolic leaf, identified by name.
type SymbolExpr struct {
    Name  string
    Width uint8
}

// UnaryExpr applies an operator to a single sub-expression.
type UnaryExpr struct {
    Op UnaryOp
    X  Expr
}

// BinaryExpr applies an operator to two sub-expressions.
type BinaryExpr struct {
    Op BinaryOp
    X  Expr
    Y  Expr
}

func Const(v uint64, w uint8) *ConstExpr {
    checkwidth(w)
    return &ConstExpr{Value: v & mask(w), Width: w}
}

// Consti builds a constant from a signed value, truncating to width.
func Consti(v int64, w uint8) *ConstExpr {
    return Const(uint64(v), w)
}

func Symbol(name string, w uint8) *SymbolExpr {
    checkwidth(w)
    return &SymbolExpr{Name: name, Width: w}
}

func Unary(op UnaryOp, x Expr) *UnaryExpr {
    return &UnaryExpr{Op: op, X: x}
}

// Binary builds an operator node. Operand widths must agree except for
// shifts, where the shift amount carries its own width.
func Binary(op BinaryOp, x Expr, y Expr) *BinaryExpr {
    if op != OpShl && op != OpShr && Width(x) != Width(y) {
        panic(fmt.Sprintf("vtil: operand width mismatch: %s(%s:%d, %s:%d)", op, x, Width(x), y, Width(y)))
    }
    return &BinaryExpr{Op: op, X: x, Y: y}
}

func Add(x Expr, y Expr) *BinaryExpr { return Binary(OpAdd, x, y) }
func Sub(x Expr, y Expr) *BinaryExpr { return Binary(OpSub, x, y) }
func Mul(x Expr, y Expr) *BinaryExpr { return Binary(OpMul, x, y) }
func And(x Expr, y Expr) *BinaryExpr { return Binary(OpAnd, x, y) }
func Or (x Expr, y Expr) *BinaryExpr { return Binary(OpOr , x, y) }
func Xor(x Expr, y Expr) *BinaryExpr { return Binary(OpXor, x, y) }

// Width returns the bit width of e.
func Width(e Expr) uint8 {
    switch v := e.(type) {
        case *ConstExpr  : return v.Width
        case *SymbolExpr : return v.Width
        case *UnaryExpr  : return Width(v.X)
        case *BinaryExpr : return Width(v.X)
        default          : panic("vtil: invalid expression node")
    }
}

// Value extracts the constant value of e, sign-extended from its declared
// width to 64 bits. The second return is false if e is not a constant.
func Value(e Expr) (int64, bool) {
    if v, ok := e.(*ConstExpr); ok {
        return signextend(v.Value, v.Width), true
    } else {
        return 0, false
    }
}

// Equal reports structural equality of two expression trees. Constants
// compare by value and width, the matcher relies on this to enforce
// binding consistency.
func Equal(a Expr, b Expr) bool {
    switch x := a.(type) {
        case *ConstExpr: {
            y, ok := b.(*ConstExpr)
            return ok && x.Value == y.Value && x.Width == y.Width
        }
        case *SymbolExpr: {
            y, ok := b.(*SymbolExpr)
            return ok && x.Name == y.Name && x.Width == y.Width
        }
        case *UnaryExpr: {
            y, ok := b.(*UnaryExpr)
            return ok && x.Op == y.Op && Equal(x.X, y.X)
        }
        case *BinaryExpr: {
            y, ok := b.(*BinaryExpr)
            return ok && x.Op == y.Op && Equal(x.X, y.X) && Equal(x.Y, y.Y)
        }
        default: {
            panic("vtil: invalid expression node")
        }
    }
}

func (self *ConstExpr) String() string {
    return fmt.Sprintf("0x%x:%d", self.Value, self.Width)
}

func (self *SymbolExpr) String() string {
    return self.Name
}

func (self *UnaryExpr) String() string {
    return fmt.Sprintf("(%s %s)", self.Op, self.X)
}

func (self *BinaryExpr) String() string {
    return fmt.Sprintf("(%s %s %s)", self.Op, self.X, self.Y)
}

func mask(w uint8) uint64 {
    if w == 64 {
        return ^uint64(0)
    } else {
        return (uint64(1) << w) - 1
    }
}

func signextend(v uint64, w uint8) int64 {
    sh := 64 - uint(w)
    return int64(v << sh) >> sh
}

func checkwidth(w uint8) {
    switch w {
        case 1, 8, 16, 32, 64 : break
        default               : panic(fmt.Sprintf("vtil: invalid bit width: %d", w))
    }
}

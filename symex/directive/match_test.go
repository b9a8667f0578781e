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
    `testing`

    `github.com/Mellonyt/VTIL-Core/symex`
    `github.com/stretchr/testify/require`
)

func TestMatch_Wildcard(t *testing.T) {
    x := symex.Symbol("x", 64)
    e := symex.Add(x, symex.Const(4, 64))

    st, ok := Match(Add(A, U), e)
    require.True(t, ok)
    require.Equal(t, 2, st.Len())
    require.True(t, symex.Equal(x, st.Translate(A)))
    require.True(t, symex.Equal(symex.Const(4, 64), st.Translate(U)))
    require.Nil(t, st.Translate(B))
}

func TestMatch_Commutative(t *testing.T) {
    x := symex.Symbol("x", 64)

    /* add retries with operands swapped */
    st, ok := Match(Add(A, U), symex.Add(symex.Const(4, 64), x))
    require.True(t, ok)
    require.True(t, symex.Equal(x, st.Translate(A)))

    /* sub binds left-to-right only */
    _, ok = Match(Sub(A, U), symex.Sub(symex.Const(4, 64), x))
    require.False(t, ok)
    _, ok = Match(Sub(A, U), symex.Sub(x, symex.Const(4, 64)))
    require.True(t, ok)
}

func TestMatch_Filter(t *testing.T) {
    x := symex.Symbol("x", 64)
    y := symex.Symbol("y", 64)

    /* U only binds constants */
    _, ok := Match(Add(A, U), symex.Add(x, y))
    require.False(t, ok)

    /* the constant may be an arbitrary sub-tree for unfiltered variables */
    st, ok := Match(Add(A, B), symex.Add(x, y))
    require.True(t, ok)
    require.True(t, symex.Equal(x, st.Translate(A)))
    require.True(t, symex.Equal(y, st.Translate(B)))
}

func TestMatch_BindingConsistency(t *testing.T) {
    x := symex.Symbol("x", 64)
    y := symex.Symbol("y", 64)

    /* A xor A matches only equal operands */
    _, ok := Match(Xor(A, A), symex.Xor(x, y))
    require.False(t, ok)

    st, ok := Match(Xor(A, A), symex.Xor(x, symex.Symbol("x", 64)))
    require.True(t, ok)
    require.Equal(t, 1, st.Len())
    require.True(t, symex.Equal(x, st.Translate(A)))
}

func TestMatch_ConsistencyAcrossSwap(t *testing.T) {
    x := symex.Symbol("x", 64)
    c := symex.Const(7, 64)

    /* (A + U) * A: the swap retry inside the add must not leak bindings
     * from the failed branch */
    pat := Mul(Add(A, U), A)
    e := symex.Mul(symex.Add(c, x), x)
    st, ok := Match(pat, e)
    require.True(t, ok)
    require.True(t, symex.Equal(x, st.Translate(A)))
    require.True(t, symex.Equal(c, st.Translate(U)))
}

func TestMatch_Num(t *testing.T) {
    x := symex.Symbol("x", 32)

    _, ok := Match(Xor(A, Num{Value: -1}), symex.Xor(x, symex.Consti(-1, 32)))
    require.True(t, ok)

    _, ok = Match(Xor(A, Num{Value: -1}), symex.Xor(x, symex.Const(1, 32)))
    require.False(t, ok)
}

func TestMatch_Unary(t *testing.T) {
    x := symex.Symbol("x", 64)

    st, ok := Match(Neg(A), symex.Unary(symex.OpNeg, x))
    require.True(t, ok)
    require.True(t, symex.Equal(x, st.Translate(A)))

    _, ok = Match(Not(A), symex.Unary(symex.OpNeg, x))
    require.False(t, ok)
}

func TestMatch_Pure(t *testing.T) {
    x := symex.Symbol("x", 64)
    e := symex.Add(x, symex.Const(4, 64))
    orig := symex.Add(symex.Symbol("x", 64), symex.Const(4, 64))

    _, _ = Match(Sub(A, U), e)
    _, _ = Match(Add(A, U), e)
    require.True(t, symex.Equal(orig, e))
}

func TestMatchFirst_Priority(t *testing.T) {
    x := symex.Symbol("x", 64)

    /* both rules bind A: first in list order wins */
    rules := []Rule {
        { Pattern: Add(A, B), Tag: 1 },
        { Pattern: Add(B, A), Tag: 2 },
    }
    _, tag, ok := MatchFirst(rules, symex.Add(x, x))
    require.True(t, ok)
    require.Equal(t, 1, tag)

    _, _, ok = MatchFirst(rules, symex.Sub(x, x))
    require.False(t, ok)
}

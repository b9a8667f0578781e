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
    `github.com/Mellonyt/VTIL-Core/symex`
)

// Auxiliary rewriters: each declares a small ordered rule list, delegates
// to the matcher, and falls back to identity when nothing applies.

var _SplitOffsetRules = []Rule {
    { Pattern: Add(A, U), Tag: +1 },
    { Pattern: Sub(A, U), Tag: -1 },
}

// SplitOffset splits the arithmetic offset off of an expression.
//   - 512+(A+B) => (A+B, 512)
//   - A-4       => (A,   -4)
//   - A         => (A,    0)
//
// The sign is taken from the matched directive, the magnitude from the
// bound constant. Expressions with no splittable offset are returned
// unchanged with a zero offset, never an error.
func SplitOffset(e symex.Expr) (symex.Expr, int64) {
    st, sign, ok := MatchFirst(_SplitOffsetRules, e)

    /* universal fallback */
    if !ok {
        return e, 0
    }

    /* U is constant-filtered, extraction cannot fail */
    off, _ := symex.Value(st.Translate(U))
    return st.Translate(A), off * int64(sign)
}

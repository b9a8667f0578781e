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

package optimizer

import (
    `strings`
    `time`

    `github.com/Mellonyt/VTIL-Core/arch`
    `go.uber.org/zap`
)

// Combinators wrap passes into new passes with the same contract. Each
// declares Custom order and implements RoutinePass, composition happens
// at the routine level through Run.

type combined struct {
    pp []Pass
}

// Combine runs each pass in order and sums the applied counts.
func Combine(pp ...Pass) Pass {
    return &combined{pp: pp}
}

func (self *combined) Name() string {
    ss := make([]string, 0, len(self.pp))
    for _, p := range self.pp {
        ss = append(ss, p.Name())
    }
    return "(" + strings.Join(ss, " + ") + ")"
}

func (self *combined) Order() ExecutionOrder {
    return Custom
}

func (self *combined) Apply(bb *arch.BasicBlock, xblock bool) (n uint64) {
    for _, p := range self.pp {
        n += p.Apply(bb, xblock)
    }
    return
}

func (self *combined) ApplyRoutine(rtn *arch.Routine) (n uint64) {
    for _, p := range self.pp {
        n += Run(rtn, p)
    }
    return
}

type conditional struct {
    lead Pass
    rest Pass
}

// Conditional runs lead, and only if it reported any application also
// runs the remaining passes.
func Conditional(lead Pass, rest ...Pass) Pass {
    return &conditional{lead: lead, rest: Combine(rest...)}
}

func (self *conditional) Name() string {
    return "conditional{" + self.lead.Name() + " => " + self.rest.Name() + "}"
}

func (self *conditional) Order() ExecutionOrder {
    return Custom
}

func (self *conditional) Apply(bb *arch.BasicBlock, xblock bool) uint64 {
    if xblock {
        return self.lead.Apply(bb, true)
    }
    n := self.lead.Apply(bb, false)
    if n != 0 {
        n += self.rest.Apply(bb, false)
    }
    return n
}

func (self *conditional) ApplyRoutine(rtn *arch.Routine) uint64 {
    n := Run(rtn, self.lead)
    if n != 0 {
        n += Run(rtn, self.rest)
    }
    return n
}

type exhausted struct {
    p Pass
}

// Exhaust loops the passes until a full round reports zero applications,
// returning the sum over all rounds.
func Exhaust(pp ...Pass) Pass {
    return &exhausted{p: Combine(pp...)}
}

func (self *exhausted) Name() string {
    return "exhaust{" + self.p.Name() + "}"
}

func (self *exhausted) Order() ExecutionOrder {
    return Custom
}

func (self *exhausted) Apply(bb *arch.BasicBlock, xblock bool) (cnt uint64) {
    for {
        n := self.p.Apply(bb, xblock)
        if n == 0 {
            return
        }
        cnt += n
    }
}

func (self *exhausted) ApplyRoutine(rtn *arch.Routine) (cnt uint64) {
    for {
        n := Run(rtn, self.p)
        if n == 0 {
            return
        }
        cnt += n
    }
}

type specialized struct {
    lblock Pass
    xblock Pass
}

// Specialize picks lblock when the pass is restricted to a single block
// and xblock when cross-block exploration is allowed.
func Specialize(lblock Pass, xblock Pass) Pass {
    return &specialized{lblock: lblock, xblock: xblock}
}

func (self *specialized) Name() string {
    return "specialize{local=" + self.lblock.Name() + ", cross=" + self.xblock.Name() + "}"
}

func (self *specialized) Order() ExecutionOrder {
    return Custom
}

func (self *specialized) Apply(bb *arch.BasicBlock, xblock bool) uint64 {
    if xblock {
        return self.xblock.Apply(bb, true)
    }
    return self.lblock.Apply(bb, false)
}

func (self *specialized) ApplyRoutine(rtn *arch.Routine) uint64 {
    return Run(rtn, self.xblock)
}

type localized struct {
    p Pass
}

// Local forces a pass to always run with cross-block exploration
// disabled. The wrapped pass keeps its execution order but is driven by
// the generic dispatcher, any ApplyRoutine it defines is bypassed. It
// must not declare Custom.
func Local(p Pass) Pass {
    return &localized{p: p}
}

func (self *localized) Name() string {
    return self.p.Name()
}

func (self *localized) Order() ExecutionOrder {
    return self.p.Order()
}

func (self *localized) Apply(bb *arch.BasicBlock, xblock bool) uint64 {
    return self.p.Apply(bb, false)
}

func (self *localized) ApplyRoutine(rtn *arch.Routine) uint64 {
    return dispatch(rtn, self.p, false)
}

type zeroed struct {
    p Pass
}

// Zero runs a pass for its side effects but always reports zero, which
// suppresses fixpoint triggering inside Exhaust or Conditional.
func Zero(p Pass) Pass {
    return &zeroed{p: p}
}

func (self *zeroed) Name() string {
    return self.p.Name()
}

func (self *zeroed) Order() ExecutionOrder {
    return self.p.Order()
}

func (self *zeroed) Apply(bb *arch.BasicBlock, xblock bool) uint64 {
    self.p.Apply(bb, xblock)
    return 0
}

func (self *zeroed) ApplyRoutine(rtn *arch.Routine) uint64 {
    Run(rtn, self.p)
    return 0
}

type nop struct{}

// Nop applies nothing and always reports zero.
func Nop() Pass {
    return nop{}
}

func (nop) Name() string                              { return "no-op" }
func (nop) Order() ExecutionOrder                     { return Custom }
func (nop) Apply(*arch.BasicBlock, bool) uint64       { return 0 }
func (nop) ApplyRoutine(*arch.Routine) uint64         { return 0 }

type profiled struct {
    p   Pass
    log *zap.Logger
}

// Profile runs a pass unchanged and reports its name, elapsed time and
// applied count to the given logger. Telemetry is a pure sink, it never
// feeds back into pass behavior.
func Profile(p Pass, log *zap.Logger) Pass {
    return &profiled{p: p, log: log}
}

func (self *profiled) Name() string {
    return self.p.Name()
}

func (self *profiled) Order() ExecutionOrder {
    return self.p.Order()
}

func (self *profiled) Apply(bb *arch.BasicBlock, xblock bool) uint64 {
    start := time.Now()
    n := self.p.Apply(bb, xblock)

    /* per-block telemetry only when running block-local, the routine
     * level entry covers the cross-block case */
    if !xblock {
        self.log.Info("pass applied to block",
            zap.Stringer("block", bb),
            zap.String("pass", self.p.Name()),
            zap.Duration("elapsed", time.Since(start)),
            zap.Uint64("applied", n))
    }
    return n
}

func (self *profiled) ApplyRoutine(rtn *arch.Routine) uint64 {
    start := time.Now()
    n := Run(rtn, self.p)
    self.log.Info("pass applied to routine",
        zap.String("pass", self.p.Name()),
        zap.Duration("elapsed", time.Since(start)),
        zap.Uint64("applied", n))
    return n
}

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
    `sync`

    `github.com/Mellonyt/VTIL-Core/arch`
    `github.com/Mellonyt/VTIL-Core/internal/opts`
    `github.com/bytedance/gopkg/util/gopool`
    `go.uber.org/atomic`
)

var pool = gopool.NewPool("vtil-optimizer", int32(opts.MaxWorkers), gopool.NewConfig())

// Run applies p over rtn according to its declared execution order and
// returns the total applied count. Passes that implement RoutinePass are
// handed the routine directly.
func Run(rtn *arch.Routine, p Pass) uint64 {
    if rp, ok := p.(RoutinePass); ok {
        return rp.ApplyRoutine(rtn)
    }
    return dispatch(rtn, p, true)
}

func dispatch(rtn *arch.Routine, p Pass, xblock bool) uint64 {
    n := atomic.NewUint64(0)

    /* the accumulator is the only resource shared between workers, each
     * worker exclusively owns the block it was dispatched with */
    worker := func(bb *arch.BasicBlock) {
        n.Add(p.Apply(bb, xblock))
    }

    /* dispatch on the declared order */
    switch p.Order() {
        default: {
            panic("vtil: invalid execution order: " + p.Order().String())
        }

        /* declaring custom order and still routing through the generic
         * dispatcher is a programming error, fail loudly */
        case Custom: {
            panic("vtil: custom-order pass routed through the generic dispatcher: " + p.Name())
        }

        case Serial   : rtn.ForEach(worker)
        case SerialDF : rtn.ForwardIter().ForEach(worker)
        case SerialBF : rtn.BackwardIter().ForEach(worker)

        /* unordered, every block at once */
        case Parallel: {
            var bbs []*arch.BasicBlock
            rtn.ForEach(func(bb *arch.BasicBlock) { bbs = append(bbs, bb) })
            transform(bbs, worker)
        }

        /* one dependency level at a time, the level boundary is a
         * barrier, blocks within a level run concurrently */
        case ParallelDF, ParallelBF: {
            pp := rtn.DepthOrderedList(p.Order() == ParallelBF)
            for i := 0; i < len(pp); {
                j := i
                for j < len(pp) && pp[j].Level == pp[i].Level {
                    j++
                }
                seg := make([]*arch.BasicBlock, 0, j - i)
                for _, v := range pp[i:j] {
                    seg = append(seg, v.Block)
                }
                transform(seg, worker)
                i = j
            }
        }
    }
    return n.Load()
}

// transform fans bbs out over the worker pool and waits for the batch.
func transform(bbs []*arch.BasicBlock, worker func(bb *arch.BasicBlock)) {
    if opts.NoParallel || len(bbs) <= 1 {
        for _, bb := range bbs {
            worker(bb)
        }
        return
    }

    var wg sync.WaitGroup
    wg.Add(len(bbs))

    for _, bb := range bbs {
        bb := bb
        pool.Go(func() {
            defer wg.Done()
            worker(bb)
        })
    }
    wg.Wait()
}

// SPDX-License-Identifier: MIT

package matrix

// Panic message exports to avoid "magic strings" in tests.
const (
	PanicCutoffInvalid      = panicCutoffInvalid
	PanicParallelismInvalid = panicParallelismInvalid
	PanicAllocatorNil       = panicAllocatorNil
	PanicLoggerNil          = panicLoggerNil
)

// OptionsSnapshot is a read-only copy of resolved options.
type OptionsSnapshot struct {
	Cutoff      int
	Parallelism int
	HasRegistry bool
}

// GatherOptionsSnapshot resolves opts the way NewEngine does.
func GatherOptionsSnapshot(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{
		Cutoff:      o.cutoff,
		Parallelism: o.parallelism,
		HasRegistry: o.registerer != nil,
	}
}

/*
File    : l/backend/backend.go
Author  : adapted from go-mix by Akash Maji
*/

// Package backend turns an optimized ir.Program into a byte sequence.
// Only NativeC actually generates anything; the rest are typed stubs
// that return an error, and the LLVM and Cranelift stubs name the
// toolchain they would need.
package backend

import (
	"github.com/l-lang/l/ir"
	"github.com/l-lang/l/lerr"
)

// Kind enumerates the backends the build command can target.
type Kind int

const (
	Interpreter Kind = iota
	NativeC
	LLVM
	Cranelift
	JIT
	GPU
)

// Backend turns a program into bytes and reports whether it honors the
// optimizer's output (every backend but the interpreter claims to,
// matching the original's placeholders, since none of the stubs ever
// runs far enough to disagree).
type Backend interface {
	Name() string
	Generate(prog *ir.Program) ([]byte, error)
	SupportsOptimization() bool
}

// New constructs the backend for kind.
func New(kind Kind) Backend {
	switch kind {
	case Interpreter:
		return interpreterBackend{}
	case NativeC:
		return nativeCBackend{}
	case LLVM:
		return llvmBackend{}
	case Cranelift:
		return craneliftBackend{}
	case JIT:
		return jitBackend{}
	case GPU:
		return gpuBackend{}
	default:
		return interpreterBackend{}
	}
}

type interpreterBackend struct{}

func (interpreterBackend) Name() string { return "interpreter" }
func (interpreterBackend) Generate(*ir.Program) ([]byte, error) {
	return nil, lerr.New(lerr.Runtime, "interpreter backend executes directly, doesn't generate code")
}
func (interpreterBackend) SupportsOptimization() bool { return false }

type llvmBackend struct{}

func (llvmBackend) Name() string { return "llvm" }
func (llvmBackend) Generate(*ir.Program) ([]byte, error) {
	return nil, lerr.New(lerr.Runtime, "llvm backend not yet implemented: requires an LLVM binding toolchain")
}
func (llvmBackend) SupportsOptimization() bool { return true }

type craneliftBackend struct{}

func (craneliftBackend) Name() string { return "cranelift" }
func (craneliftBackend) Generate(*ir.Program) ([]byte, error) {
	return nil, lerr.New(lerr.Runtime, "cranelift backend not yet implemented: requires the cranelift toolchain")
}
func (craneliftBackend) SupportsOptimization() bool { return true }

type jitBackend struct{}

func (jitBackend) Name() string { return "jit" }
func (jitBackend) Generate(*ir.Program) ([]byte, error) {
	return nil, lerr.New(lerr.Runtime, "jit backend not yet implemented")
}
func (jitBackend) SupportsOptimization() bool { return true }

type gpuBackend struct{}

func (gpuBackend) Name() string { return "gpu" }
func (gpuBackend) Generate(*ir.Program) ([]byte, error) {
	return nil, lerr.New(lerr.Runtime, "gpu backend not yet implemented")
}
func (gpuBackend) SupportsOptimization() bool { return true }

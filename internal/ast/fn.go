package ast

// ABIKind describes the calling convention requested by function attributes.
type ABIKind uint8

const (
	ABINone ABIKind = iota
	// ABIEntryPoint marks the program entry point (abiStart).
	ABIEntryPoint
	// ABIRawSyscall marks a raw syscall stub (abiSyscall N).
	ABIRawSyscall
)

func (k ABIKind) String() string {
	switch k {
	case ABIEntryPoint:
		return "start"
	case ABIRawSyscall:
		return "syscall"
	default:
		return "none"
	}
}

// FnAttrs is the attribute record of a function definition.
// SyscallArgs is meaningful only when HasSyscallArgs is set, which happens
// exactly when ABI == ABIRawSyscall.
type FnAttrs struct {
	Link           bool
	ABI            ABIKind
	SyscallArgs    uint64
	HasSyscallArgs bool
}

// SetEntryPoint switches to the entry-point ABI, dropping any syscall count.
func (a *FnAttrs) SetEntryPoint() {
	a.ABI = ABIEntryPoint
	a.SyscallArgs, a.HasSyscallArgs = 0, false
}

// SetRawSyscall switches to the raw syscall ABI with n operands.
func (a *FnAttrs) SetRawSyscall(n uint64) {
	a.ABI = ABIRawSyscall
	a.SyscallArgs, a.HasSyscallArgs = n, true
}

// Consistent reports whether the syscall count is present iff the ABI is RawSyscall.
func (a FnAttrs) Consistent() bool {
	return a.HasSyscallArgs == (a.ABI == ABIRawSyscall)
}

// FnData is the payload of KindFn. A linked function has no body: HasBody is false
// and Body is nil. A defined function always has HasBody set, even for "{ }".
type FnData struct {
	Attrs   FnAttrs
	Body    []NodeID
	HasBody bool
}

package ir

// BuiltinFn identifies one VM primitive
type BuiltinFn byte

const (
	// List primitives
	B_HEAD_LIST BuiltinFn = iota // First element of a list
	B_TAIL_LIST                  // List minus its first element

	// Pair primitives
	B_FST_PAIR // First component of a pair
	B_SND_PAIR // Second component of a pair

	// Data decoding
	B_UNCONSTR_DATA // Constructor data -> (Pair Int (List Data))
)

// String returns the primitive's name as the VM assembler spells it
func (f BuiltinFn) String() string {
	switch f {
	case B_HEAD_LIST:
		return "headList"
	case B_TAIL_LIST:
		return "tailList"
	case B_FST_PAIR:
		return "fstPair"
	case B_SND_PAIR:
		return "sndPair"
	case B_UNCONSTR_DATA:
		return "unConstrData"
	default:
		return "unknown"
	}
}

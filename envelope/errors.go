package envelope

import "errors"

var (
	// ErrInvalidArgument reports a caller passing a value outside the
	// codec's contract, such as a nil entity or nil element.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidStructure reports an envelope that does not match the
	// required XML/post shape.
	ErrInvalidStructure = errors.New("invalid envelope structure")

	// ErrUnknownEntity reports a payload tag that resolves to no
	// registered entity type.
	ErrUnknownEntity = errors.New("unknown entity type")

	// ErrSchemaCycle reports nested reconstruction exceeding the depth
	// bound, which indicates a cycle in the entity type graph.
	ErrSchemaCycle = errors.New("entity schema cycle")
)

package expr

import "errors"

// Construction errors. Evaluation and transformation never fail.
var (
	ErrInvalidFunctionName = errors.New("invalid function name")
	ErrMissingOperand      = errors.New("missing operand")
	ErrInvalidOperator     = errors.New("invalid binary operator")
	ErrInvalidVariableName = errors.New("variable name must not be empty")
)

package eval

import "strconv"

// DomainError is an error returned when an operator or function has no result
// for its operands, e.g. division by zero. It unwraps to the cause, usually
// one of the errors in package num.
type DomainError struct {
	// Expr is the subexpression that failed.
	Expr string
	// Func is the operator or function name, if known.
	Func string
	// Err is the cause.
	Err error
}

func (err *DomainError) Error() string {
	return strconv.Quote(err.Expr) + ": " + err.Err.Error()
}

func (err *DomainError) Unwrap() error {
	return err.Err
}

// FuncError is an error indicating a call to a function that is not in the
// evaluation context.
type FuncError struct {
	// Name is the function name that was missing.
	Name string
}

func (err *FuncError) Error() string {
	return "undefined function: " + strconv.Quote(err.Name)
}

// CallError is an error indicating a function call with the wrong number of
// arguments.
type CallError struct {
	// Func is the function name that was called.
	Func string
	// Len is the number of arguments in the call.
	Len int
}

func (err *CallError) Error() string {
	return "cannot call " + err.Func + " with " + strconv.Itoa(err.Len) + " arguments"
}

package qtable

import "errors"

// Error implements errors unique to value-table construction and use.
type Error struct {
	Op  string
	Err error
}

// Error satisfies the error interface
func (e *Error) Error() string {
	return e.Op + ": " + e.Err.Error()
}

var errUnsupportedActions = errors.New("fixed templates support only 2 or " +
	"3 actions")

var errNonPositiveNeighborhood = errors.New("neighborhood must be positive")

var errBadShape = errors.New("initializer is not broadcastable to the " +
	"table shape")

// IsConfiguration returns whether or not an error reports an invalid
// table configuration, such as requesting a fixed template for an
// unsupported number of actions.
func IsConfiguration(err error) bool {
	if tableErr, ok := err.(*Error); ok {
		err = tableErr.Err
	}
	return err == errUnsupportedActions || err == errNonPositiveNeighborhood
}

// IsBadShape returns whether or not an error reports that an
// initializer or table does not match the required
// (agents, states, actions) shape.
func IsBadShape(err error) bool {
	if tableErr, ok := err.(*Error); ok {
		err = tableErr.Err
	}
	return err == errBadShape
}

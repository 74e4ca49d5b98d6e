package geometry

import "github.com/pkg/errors"

// Construction of a malformed shape (a line whose normal is the zero vector,
// a circle with a negative radius) is a programming error, not a geometric
// result, so the constructors panic rather than threading error returns
// through code that is otherwise total. The public facade recovers these and
// converts them to errors.

type GeometryError error

// Panic with a GeometryError.
func fatalf(format string, args ...interface{}) {
	panic(errors.Errorf(format, args...))
}

func HandleGeometryPanicRecover(r interface{}) error {
	if r != nil {
		if geometryError, ok := r.(GeometryError); ok {
			return geometryError
		}
		panic(r)
	}
	return nil
}

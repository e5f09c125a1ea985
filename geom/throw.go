package geom

import "github.com/pkg/errors"

// Contract violations (index out of range, too many constructor values) can
// surface deep inside the hull builder, and threading error returns through
// every accessor would swamp the code. Instead, misuse panics with a
// GeometryError, and the public API in the root package recovers to convert
// it to an error.

type GeometryError error

// Panic with a GeometryError.
func fatalf(format string, args ...interface{}) {
	panic(errors.Errorf(format, args...))
}

func HandleGeomPanicRecover(r interface{}) error {
	if r != nil {
		if geometryError, ok := r.(GeometryError); ok {
			return geometryError
		}
		panic(r)
	}
	return nil
}

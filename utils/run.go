package utils

// Runnable is a step which may fail.
type Runnable func() error

// ToRunnable1 binds the argument of f so that it can be sequenced with Run.
func ToRunnable1[T any](f func(T) error, a T) Runnable {
	return func() error {
		return f(a)
	}
}

// Run runs rs in order and stops at the first error.
func Run(rs ...Runnable) error {
	for _, r := range rs {
		if err := r(); err != nil {
			return err
		}
	}
	return nil
}

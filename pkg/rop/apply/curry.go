package apply

func Curry2[A, B, C any](fn func(A, B) C) func(A) func(B) C {
	return func(a A) func(B) C {
		return func(b B) C {
			return fn(a, b)
		}
	}
}

// Curry3 converts a three argument function into a chain of single argument
// functions. Each returned function closes over the arguments seen so far.
func Curry3[A, B, C, D any](fn func(A, B, C) D) func(A) func(B) func(C) D {
	return func(a A) func(B) func(C) D {
		return func(b B) func(C) D {
			return func(c C) D {
				return fn(a, b, c)
			}
		}
	}
}

func Uncurry3[A, B, C, D any](fn func(A) func(B) func(C) D) func(A, B, C) D {
	return func(a A, b B, c C) D {
		return fn(a)(b)(c)
	}
}

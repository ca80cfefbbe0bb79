package parsers

import "fmt"

// Optional returns def when p fails recoverably.
func Optional[T any](p Parser[T], def T) Parser[T] {
	return Parser[T]{
		label: p.label,
		apply: func(in *Input, at int) (T, int, *Failure) {
			v, next, f := p.Apply(in, at)
			if f == nil {
				return v, next, nil
			}
			if f.Committed {
				return def, at, f
			}
			return def, at, nil
		},
	}
}

// Many runs p zero or more times, stopping at the first recoverable failure.
// An iteration that succeeds without consuming a token is reported as ErrNoProgress.
func Many[T any](p Parser[T]) Parser[[]T] {
	return Parser[[]T]{
		label: p.label,
		apply: func(in *Input, at int) ([]T, int, *Failure) {
			var ret []T
			cur := at
			for {
				v, next, f := p.Apply(in, cur)
				if f != nil {
					if f.Committed {
						return nil, at, f
					}
					return ret, cur, nil
				}
				if next == cur {
					return nil, at, &Failure{
						At:        cur,
						Pos:       in.Tokens.PosAt(cur),
						Found:     in.Tokens.Describe(cur),
						Committed: true,
						Err:       fmt.Errorf("%w: %s", ErrNoProgress, p.label),
					}
				}
				ret = append(ret, v)
				cur = next
			}
		},
	}
}

func Many1[T any](p Parser[T]) Parser[[]T] {
	return Seq2(p, Many(p), func(first T, rest []T) []T {
		return append([]T{first}, rest...)
	})
}

// SepBy1 matches p { sep p }.
func SepBy1[T, S any](p Parser[T], sep Parser[S]) Parser[[]T] {
	return Seq2(p, Many(Right(sep, p)), func(first T, rest []T) []T {
		return append([]T{first}, rest...)
	})
}

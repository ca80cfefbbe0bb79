package parsers

// sequence threads a cursor through sub-parsers. Once the cursor has moved past start,
// any failure is committed.
type sequence struct {
	in    *Input
	start int
	at    int
	fail  *Failure
}

func step[T any](s *sequence, p Parser[T]) (v T) {
	if s.fail != nil {
		return
	}
	v, next, f := p.Apply(s.in, s.at)
	if f != nil {
		if s.at > s.start {
			f = f.committed()
		}
		s.fail = f
		return
	}
	s.at = next
	return
}

func Seq2[A, B, R any](
	pa Parser[A],
	pb Parser[B],
	fn func(A, B) R,
) Parser[R] {
	return Parser[R]{
		label: pa.label,
		apply: func(in *Input, at int) (ret R, _ int, _ *Failure) {
			s := &sequence{in: in, start: at, at: at}
			a := step(s, pa)
			b := step(s, pb)
			if s.fail != nil {
				return ret, at, s.fail
			}
			return fn(a, b), s.at, nil
		},
	}
}

func Seq3[A, B, C, R any](
	pa Parser[A],
	pb Parser[B],
	pc Parser[C],
	fn func(A, B, C) R,
) Parser[R] {
	return Parser[R]{
		label: pa.label,
		apply: func(in *Input, at int) (ret R, _ int, _ *Failure) {
			s := &sequence{in: in, start: at, at: at}
			a := step(s, pa)
			b := step(s, pb)
			c := step(s, pc)
			if s.fail != nil {
				return ret, at, s.fail
			}
			return fn(a, b, c), s.at, nil
		},
	}
}

func Seq4[A, B, C, D, R any](
	pa Parser[A],
	pb Parser[B],
	pc Parser[C],
	pd Parser[D],
	fn func(A, B, C, D) R,
) Parser[R] {
	return Parser[R]{
		label: pa.label,
		apply: func(in *Input, at int) (ret R, _ int, _ *Failure) {
			s := &sequence{in: in, start: at, at: at}
			a := step(s, pa)
			b := step(s, pb)
			c := step(s, pc)
			d := step(s, pd)
			if s.fail != nil {
				return ret, at, s.fail
			}
			return fn(a, b, c, d), s.at, nil
		},
	}
}

func Seq5[A, B, C, D, E, R any](
	pa Parser[A],
	pb Parser[B],
	pc Parser[C],
	pd Parser[D],
	pe Parser[E],
	fn func(A, B, C, D, E) R,
) Parser[R] {
	return Parser[R]{
		label: pa.label,
		apply: func(in *Input, at int) (ret R, _ int, _ *Failure) {
			s := &sequence{in: in, start: at, at: at}
			a := step(s, pa)
			b := step(s, pb)
			c := step(s, pc)
			d := step(s, pd)
			e := step(s, pe)
			if s.fail != nil {
				return ret, at, s.fail
			}
			return fn(a, b, c, d, e), s.at, nil
		},
	}
}

// SeqAll runs ps in order and collects their values.
func SeqAll[T any](ps ...Parser[T]) Parser[[]T] {
	label := ""
	if len(ps) > 0 {
		label = ps[0].label
	}
	return Parser[[]T]{
		label: label,
		apply: func(in *Input, at int) ([]T, int, *Failure) {
			s := &sequence{in: in, start: at, at: at}
			ret := make([]T, 0, len(ps))
			for _, p := range ps {
				v := step(s, p)
				if s.fail != nil {
					return nil, at, s.fail
				}
				ret = append(ret, v)
			}
			return ret, s.at, nil
		},
	}
}

// Left runs both and keeps the value of the first.
func Left[T, U any](p Parser[T], q Parser[U]) Parser[T] {
	return Seq2(p, q, func(v T, _ U) T {
		return v
	})
}

// Right runs both and keeps the value of the second.
func Right[T, U any](p Parser[T], q Parser[U]) Parser[U] {
	return Seq2(p, q, func(_ T, v U) U {
		return v
	})
}

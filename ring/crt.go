package ring

// CRT is implemented by coefficient-form elements that can be mapped to their
// evaluation (Chinese Remainder) form E.
type CRT[E any] interface {
	CRT() E
}

// ICRT is implemented by evaluation-form elements that can be mapped back to their
// coefficient form P.
type ICRT[P any] interface {
	ICRT() P
}

// CRTVec maps CRT over v, preserving order and length.
func CRTVec[P CRT[E], E any](v []P) (out []E) {
	out = make([]E, len(v))
	for i := range v {
		out[i] = v[i].CRT()
	}
	return
}

// ICRTVec maps ICRT over v, preserving order and length.
func ICRTVec[E ICRT[P], P any](v []E) (out []P) {
	out = make([]P, len(v))
	for i := range v {
		out[i] = v[i].ICRT()
	}
	return
}

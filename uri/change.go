package uri

// ChangeScheme sets the scheme of the URI value v and returns the rendered string.
//
// The value v is converted with [From], the scheme is applied with [URI.SetScheme].
// A nil scheme leaves v alone: it is returned as is, with its original type,
// so ChangeScheme(1234, nil) returns the int 1234, not a string.
func ChangeScheme(v, scheme any) any {
	if scheme == nil {
		return v
	}
	return From(v).SetScheme(scheme).String()
}

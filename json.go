package arrayvec

import "github.com/hupe1980/arrayvec/codec"

// MarshalJSON encodes the live elements as a JSON array, delegating to
// codec.Default.
func (v *Vec[T]) MarshalJSON() ([]byte, error) {
	return codec.Default.Marshal(v.Slice())
}

// UnmarshalJSON replaces the vector's contents with the decoded JSON array.
// Previous elements go through the release hook. If the payload holds more
// elements than the fixed capacity it returns a *SliceCapacityError and the
// vector is not modified.
func (v *Vec[T]) UnmarshalJSON(data []byte) error {
	var items []T
	if err := codec.Default.Unmarshal(data, &items); err != nil {
		return err
	}
	if len(items) > v.buf.Cap() {
		return &SliceCapacityError{Needed: len(items), Remaining: v.buf.Cap()}
	}
	v.Clear()
	copy(v.buf.Raw(), items)
	v.buf.SetLen(len(items))
	return nil
}

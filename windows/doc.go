/*
Package windows produces overlapping or spaced sub-slices ("windows") of a
fixed size from an indexable source, advancing a fixed step between the
start of one window and the next.

It differs from the fixed-size windowing helpers in the standard library and
elsewhere in one important way: the trailing partial window is never dropped.
If the tail of the source is shorter than the requested size, that shorter
tail is still emitted as the final window, so every source element belongs to
at least one window.

  - **Lazy iteration**: [Iter.Next] pulls one [Window] at a time; [Iter.All]
    bridges to iter.Seq for range-over-func consumption.
  - **Exact length**: [Iter.Len] computes the remaining window count in
    constant time, before and after partial consumption.
  - **Random access**: [Iter.Nth] seeks directly to a window position and
    [Iter.Last] projects the final window, neither walking the windows in
    between.
  - **Positioned payloads**: every [Window] carries its half-open [start, end)
    range in the source, and [Map] transforms the payload while keeping that
    range, so derived results stay addressable back to where they came from.

# Borrowing

An [Iter] holds a sub-slice of the source for its whole lifetime; it never
copies elements. The source must not be mutated while an Iter over it is
alive, and emitted windows alias the source backing array.

# Errors

Constructors panic on invalid arguments (zero size, zero step, step larger
than size, inverted range); these are caller programming errors, not runtime
conditions. Running off the end of the sequence is not an error: Next, Nth
and Last report it with a comma-ok false, and once an Iter is exhausted it
stays exhausted.
*/
package windows

package field

import "testing"

func TestBufferInsertDelete(t *testing.T) {
	b := newBuffer("hello", false)
	b.Insert(5, " world")
	if got := b.String(); got != "hello world" {
		t.Fatalf("content = %q, want %q", got, "hello world")
	}
	b.DeleteRange(0, 6)
	if got := b.String(); got != "world" {
		t.Fatalf("content = %q, want %q", got, "world")
	}
	b.ReplaceRange(0, 5, "w")
	if got := b.String(); got != "w" {
		t.Fatalf("content = %q, want %q", got, "w")
	}
}

func TestBufferCodepointIndexing(t *testing.T) {
	b := newBuffer("héllo", false)
	if got := b.Len(); got != 5 {
		t.Fatalf("len = %d, want 5", got)
	}
	b.Insert(2, "×")
	if got := b.String(); got != "hé×llo" {
		t.Fatalf("content = %q, want %q", got, "hé×llo")
	}
	if got := b.Slice(1, 3); got != "é×" {
		t.Fatalf("slice = %q, want %q", got, "é×")
	}
}

func TestBufferClampsOutOfRange(t *testing.T) {
	b := newBuffer("abc", false)
	b.Insert(99, "!")
	if got := b.String(); got != "abc!" {
		t.Fatalf("content = %q, want %q", got, "abc!")
	}
	b.DeleteRange(-5, 1)
	if got := b.String(); got != "bc!" {
		t.Fatalf("content = %q, want %q", got, "bc!")
	}
	// Inverted ranges are normalized, not rejected.
	b.DeleteRange(2, 1)
	if got := b.String(); got != "b!" {
		t.Fatalf("content = %q, want %q", got, "b!")
	}
}

func TestBufferSingleLineStripsNewlines(t *testing.T) {
	b := newBuffer("a\nb", true)
	if got := b.String(); got != "ab" {
		t.Fatalf("content = %q, want %q", got, "ab")
	}
	b.Insert(2, "c\r\nd\ne")
	if got := b.String(); got != "abcde" {
		t.Fatalf("content = %q, want %q", got, "abcde")
	}
}

func TestBufferSanitizesMalformedInput(t *testing.T) {
	b := newBuffer("ok"+string([]byte{0xff, 0xfe}), false)
	if got := b.String(); got != "ok�" {
		t.Fatalf("content = %q, want %q", got, "ok�")
	}
}

func TestInsertDeleteRoundTrip(t *testing.T) {
	const original = "päws and claws"
	const chunk = "«mid»"
	for p := 0; p <= Count(original); p++ {
		b := newBuffer(original, false)
		b.Insert(p, chunk)
		b.DeleteRange(p, p+Count(chunk))
		if got := b.String(); got != original {
			t.Fatalf("round trip at %d = %q, want %q", p, got, original)
		}
	}
}

func TestByteOffsetNeverSplitsCodepoint(t *testing.T) {
	s := "aé日🂡z"
	n := Count(s)
	for i := 0; i <= n; i++ {
		off := ByteOffset(s, i)
		head := s[:off]
		if Count(head) != i {
			t.Fatalf("ByteOffset(%d) = %d, head has %d codepoints", i, off, Count(head))
		}
	}
	if got := ByteOffset(s, -3); got != 0 {
		t.Fatalf("ByteOffset(-3) = %d, want 0", got)
	}
	if got := ByteOffset(s, 99); got != len(s) {
		t.Fatalf("ByteOffset(99) = %d, want %d", got, len(s))
	}
}

package model

import (
	"errors"
	"testing"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		policy  DecodePolicy
		want    []rune
		wantErr error
	}{
		{name: "ascii", in: "abc", policy: DecodeStrict, want: []rune{'a', 'b', 'c'}},
		{name: "non-bmp", in: "😀", policy: DecodeStrict, want: []rune{0x1F600}},
		{name: "literal replacement char", in: "�", policy: DecodeStrict, want: []rune{0xFFFD}},
		{name: "strict invalid", in: "a\x80", policy: DecodeStrict, wantErr: ErrInvalidUTF8},
		{name: "strict encoded surrogate", in: "\xed\xa0\x80", policy: DecodeStrict, wantErr: ErrInvalidUTF8},
		{name: "replace invalid", in: "a\x80b", policy: DecodeReplace, want: []rune{'a', 0xFFFD, 'b'}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.in, tt.policy)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err=%v, want %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				return
			}
			if string(got) != string(tt.want) {
				t.Fatalf("runes=%U, want %U", got, tt.want)
			}
		})
	}
}

func TestEncode_NonBMP(t *testing.T) {
	got := Encode([]rune{0x1F600, 'x', 0x1D11E})
	want := "\xf0\x9f\x98\x80x\xf0\x9d\x84\x9e"
	if got != want {
		t.Fatalf("encoded=%x, want %x", got, want)
	}
}

func TestInvalidOffset(t *testing.T) {
	if got, want := invalidOffset("ab\xffc"), 2; got != want {
		t.Fatalf("offset=%d, want %d", got, want)
	}
	if got, want := invalidOffset("é\xff"), 2; got != want {
		t.Fatalf("offset=%d, want %d", got, want)
	}
}

func TestParseDecodePolicy(t *testing.T) {
	for in, want := range map[string]DecodePolicy{"": DecodeStrict, "strict": DecodeStrict, "replace": DecodeReplace} {
		got, ok := ParseDecodePolicy(in)
		if !ok || got != want {
			t.Fatalf("ParseDecodePolicy(%q)=(%v,%v), want (%v,true)", in, got, ok, want)
		}
	}
	if _, ok := ParseDecodePolicy("lossy"); ok {
		t.Fatalf("expected unknown policy to be rejected")
	}
	if got, want := DecodeReplace.String(), "replace"; got != want {
		t.Fatalf("String()=%q, want %q", got, want)
	}
}

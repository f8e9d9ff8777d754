package enums_test

import (
	"bytes"
	"fmt"
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/marcodamonte/fundamentals/internal/enums"
	"github.com/marcodamonte/fundamentals/internal/tour"
)

func ExampleWalkthrough() {
	enums.Walkthrough(os.Stdout, tour.Discard())
	// Output:
	// ━━━ iota enums and variants that carry data ━━━
	//   home: kind=V4 address=127.0.0.1
	//   loopback: kind=V6 address=::1
	//   IPAddrKind(7) prints as IPAddrKind(7)
	//   V4 127.0.0.1, first octet 127
	//   V6 ::1
	//   netip ::1: Is4=false Is6=true
	//
	// ━━━ Sealed interfaces — one type per variant ━━━
	//   quit: no data
	//   move to (10, -3)
	//   write "hello"
	//   change color to rgb(0, 160, 255)
	//   no message
	//
	// ━━━ Option — a value or nothing ━━━
	//   x + y = 10
	//   plusOne(Some(5)) = Some(6)
	//   plusOne(None) = None
	//   Map(Some("gopher"), len) = Some(6)
	//   None[int]().OrElse(42) = 42
	//   ages["bob"] -> 0, false
	//   nil pointer as absence: true
	//
	// ━━━ switch as match ━━━
	//   State quarter from Alaska!
	//   total: 61 cents
	//   roll 3: add fancy hat
	//   roll 7: remove fancy hat
	//   roll 9: move player
	//
	// ━━━ if with comma-ok — match one case, ignore the rest ━━━
	//   The maximum is configured to be 3
	//   something else
	//   the message writes "hi"
	//   the message is not Quit
}

func ExampleMatch() {
	describe := func(o enums.Option[string]) string {
		return enums.Match(o,
			func(s string) string { return "got " + s },
			func() string { return "got nothing" },
		)
	}
	fmt.Println(describe(enums.Some("gopher")))
	fmt.Println(describe(enums.None[string]()))
	// Output:
	// got gopher
	// got nothing
}

func TestOptionZeroValueIsNone(t *testing.T) {
	var o enums.Option[int]
	if o.IsSome() || !o.IsNone() {
		t.Fatalf("zero Option: IsSome=%v IsNone=%v", o.IsSome(), o.IsNone())
	}
	if v, ok := o.Get(); ok || v != 0 {
		t.Errorf("Get() = %d, %v; want 0, false", v, ok)
	}
	if got := o.String(); got != "None" {
		t.Errorf("String() = %q, want None", got)
	}
}

func TestOption(t *testing.T) {
	tests := []struct {
		name       string
		opt        enums.Option[int]
		wantOK     bool
		wantOrElse int
		wantString string
		wantDouble enums.Option[int]
	}{
		{"some", enums.Some(21), true, 21, "Some(21)", enums.Some(42)},
		{"some zero", enums.Some(0), true, 0, "Some(0)", enums.Some(0)},
		{"none", enums.None[int](), false, -1, "None", enums.None[int]()},
	}
	double := func(i int) int { return i * 2 }
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := tt.opt.Get(); ok != tt.wantOK {
				t.Errorf("Get ok = %v, want %v", ok, tt.wantOK)
			}
			if got := tt.opt.OrElse(-1); got != tt.wantOrElse {
				t.Errorf("OrElse(-1) = %d, want %d", got, tt.wantOrElse)
			}
			if got := tt.opt.String(); got != tt.wantString {
				t.Errorf("String() = %q, want %q", got, tt.wantString)
			}
			got := enums.Map(tt.opt, double)
			if diff := cmp.Diff(tt.wantDouble.String(), got.String()); diff != "" {
				t.Errorf("Map(double) (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCall(t *testing.T) {
	tests := []struct {
		msg  enums.Message
		want string
	}{
		{enums.Quit{}, "quit: no data"},
		{enums.Move{X: 1, Y: 2}, "move to (1, 2)"},
		{enums.Write("a \"quoted\" text"), `write "a \"quoted\" text"`},
		{enums.ChangeColor{R: 1, G: 2, B: 3}, "change color to rgb(1, 2, 3)"},
		{nil, "no message"},
	}
	for _, tt := range tests {
		if got := enums.Call(tt.msg); got != tt.want {
			t.Errorf("Call(%#v) = %q, want %q", tt.msg, got, tt.want)
		}
	}
}

func TestValueInCents(t *testing.T) {
	tests := []struct {
		coin      enums.Coin
		want      int
		wantPrint string
	}{
		{enums.Coin{Denomination: enums.Penny}, 1, ""},
		{enums.Coin{Denomination: enums.Nickel}, 5, ""},
		{enums.Coin{Denomination: enums.Dime}, 10, ""},
		{enums.Coin{Denomination: enums.Quarter}, 25, ""},
		{enums.Coin{Denomination: enums.Quarter, State: enums.Some(enums.Alabama)}, 25, "  State quarter from Alabama!\n"},
		{enums.Coin{Denomination: enums.Denomination(-1)}, 0, ""},
	}
	for _, tt := range tests {
		var out bytes.Buffer
		if got := enums.ValueInCents(&out, tt.coin); got != tt.want {
			t.Errorf("ValueInCents(%+v) = %d, want %d", tt.coin, got, tt.want)
		}
		if diff := cmp.Diff(tt.wantPrint, out.String()); diff != "" {
			t.Errorf("ValueInCents(%+v) output (-want +got):\n%s", tt.coin, diff)
		}
	}
}

func TestKindStrings(t *testing.T) {
	got := []string{
		enums.KindV4.String(),
		enums.KindV6.String(),
		enums.IPAddrKind(-2).String(),
		enums.Alaska.String(),
		enums.USState(5).String(),
	}
	want := []string{"V4", "V6", "IPAddrKind(-2)", "Alaska", "USState(5)"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("String() (-want +got):\n%s", diff)
	}
}

package enums

import (
	"fmt"
	"io"
	"net/netip"
)

// IPAddrKind is a plain enumeration. Go has no enum keyword: a named integer
// type plus iota constants gives the same thing, minus exhaustiveness checks,
// and any int converts into it.
type IPAddrKind int

const (
	KindV4 IPAddrKind = iota
	KindV6
)

func (k IPAddrKind) String() string {
	switch k {
	case KindV4:
		return "V4"
	case KindV6:
		return "V6"
	default:
		return fmt.Sprintf("IPAddrKind(%d)", int(k))
	}
}

// IPAddrRecord pairs a kind with its textual address: the long way round.
type IPAddrRecord struct {
	Kind    IPAddrKind
	Address string
}

// IPAddr is the shorter form: each variant is its own type holding exactly
// the data it needs. The unexported method closes the set to this package.
type IPAddr interface {
	isIPAddr()
	String() string
}

type V4 [4]uint8

type V6 string

func (V4) isIPAddr() {}
func (V6) isIPAddr() {}

func (a V4) String() string { return fmt.Sprintf("%d.%d.%d.%d", a[0], a[1], a[2], a[3]) }
func (a V6) String() string { return string(a) }

func demoIPAddr(w io.Writer) {
	home := IPAddrRecord{Kind: KindV4, Address: "127.0.0.1"}
	loopback := IPAddrRecord{Kind: KindV6, Address: "::1"}
	fmt.Fprintf(w, "  home: kind=%v address=%s\n", home.Kind, home.Address)
	fmt.Fprintf(w, "  loopback: kind=%v address=%s\n", loopback.Kind, loopback.Address)
	fmt.Fprintf(w, "  IPAddrKind(7) prints as %v\n", IPAddrKind(7))

	for _, addr := range []IPAddr{V4{127, 0, 0, 1}, V6("::1")} {
		switch a := addr.(type) {
		case V4:
			fmt.Fprintf(w, "  V4 %v, first octet %d\n", a, a[0])
		case V6:
			fmt.Fprintf(w, "  V6 %v\n", a)
		}
	}

	// The standard library already models this properly.
	ip := netip.MustParseAddr("::1")
	fmt.Fprintf(w, "  netip %v: Is4=%v Is6=%v\n", ip, ip.Is4(), ip.Is6())
}

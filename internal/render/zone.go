package render

import (
	"fmt"
	"sort"
	"strings"
)

// Zone is the page area a price is rendered in.
type Zone string

const (
	ZoneDefault    Zone = ""
	ZoneItemView   Zone = "item_view"
	ZoneItemList   Zone = "item_list"
	ZoneItemOption Zone = "item_option"
	ZoneSales      Zone = "sales"
	ZoneEmail      Zone = "email"
	ZoneCart       Zone = "cart"
)

var knownZones = map[Zone]bool{
	ZoneDefault:    true,
	ZoneItemView:   true,
	ZoneItemList:   true,
	ZoneItemOption: true,
	ZoneSales:      true,
	ZoneEmail:      true,
	ZoneCart:       true,
}

// ParseZone resolves a zone name; "" and "default" give ZoneDefault.
func ParseZone(s string) (Zone, error) {
	n := strings.ToLower(strings.TrimSpace(s))
	if n == "default" {
		return ZoneDefault, nil
	}
	z := Zone(n)
	if !knownZones[z] {
		return "", fmt.Errorf("unknown zone %q (known: %s)", s, strings.Join(ZoneNames(), ", "))
	}
	return z, nil
}

// ZoneNames lists the named zones in sorted order.
func ZoneNames() []string {
	names := make([]string, 0, len(knownZones))
	for z := range knownZones {
		if z != ZoneDefault {
			names = append(names, string(z))
		}
	}
	sort.Strings(names)
	return names
}

func (z Zone) String() string {
	if z == ZoneDefault {
		return "default"
	}
	return string(z)
}

// Package dashboard describes the admin console shell: the tab selector and
// the overview panel shown on the default tab.
package dashboard

import (
	"errors"
	"fmt"
)

type Tab string

const (
	TabDashboard       Tab = "dashboard"
	TabProducts        Tab = "products"
	TabCategories      Tab = "categories"
	TabOrders          Tab = "orders"
	TabUsers           Tab = "users"
	TabImages          Tab = "images"
	TabFlavour         Tab = "flavour"
	TabProductOfTheDay Tab = "product-of-the-day"
)

const DefaultTab = TabDashboard

var ErrUnknownTab = errors.New("unknown tab")

// TabInfo is one entry of the tab bar together with the heading of its panel.
type TabInfo struct {
	Value   Tab      `json:"value"`
	Label   string   `json:"label"`
	Badge   string   `json:"badge,omitempty"`
	Heading string   `json:"heading"`
	Tags    []string `json:"tags,omitempty"`
}

// в порядке отображения
var tabs = []TabInfo{
	{Value: TabDashboard, Label: "Dashboard", Heading: "Dashboard"},
	{Value: TabProducts, Label: "Products", Badge: "156", Heading: "Products Management", Tags: []string{"156 Total"}},
	{Value: TabCategories, Label: "Categories", Badge: "12", Heading: "Categories Management", Tags: []string{"12 Total"}},
	{Value: TabOrders, Label: "Orders", Badge: "23", Heading: "Orders Management", Tags: []string{"5 Pending", "23 Total"}},
	{Value: TabUsers, Label: "Users", Badge: "89", Heading: "Users Management", Tags: []string{"89 Total"}},
	{Value: TabImages, Label: "Images", Heading: "Images Management", Tags: []string{"Media Library"}},
	{Value: TabFlavour, Label: "Flavours", Heading: "Flavours Management", Tags: []string{"Variants"}},
	{Value: TabProductOfTheDay, Label: "Featured", Heading: "Featured Products", Tags: []string{"Featured"}},
}

// Tabs returns the tab bar in display order.
func Tabs() []TabInfo {
	out := make([]TabInfo, len(tabs))
	copy(out, tabs)
	return out
}

// ParseTab returns the tab named by value; an empty value selects the default tab.
func ParseTab(value string) (Tab, error) {
	if value == "" {
		return DefaultTab, nil
	}
	for _, t := range tabs {
		if string(t.Value) == value {
			return t.Value, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTab, value)
}

func (t Tab) Info() TabInfo {
	for _, info := range tabs {
		if info.Value == t {
			return info
		}
	}
	return TabInfo{}
}

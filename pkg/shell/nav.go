package shell

// NavItem is one entry of the main navigation.
type NavItem struct {
	Key   string `json:"key" yaml:"key"`
	Label string `json:"label" yaml:"label"`
	Href  string `json:"href" yaml:"href"`
	Icon  string `json:"icon" yaml:"icon"`
}

// DefaultActive is the key highlighted when none is given.
const DefaultActive = "dashboard"

var navItems = []NavItem{
	{Key: "dashboard", Label: "ダッシュボード", Href: "index.html", Icon: "layout-dashboard"},
	{Key: "employees", Label: "従業員", Href: "employees.html", Icon: "users"},
	{Key: "companies", Label: "派遣先", Href: "haken-saki.html", Icon: "factory"},
	{Key: "imports", Label: "インポート", Href: "import.html", Icon: "upload-cloud"},
	{Key: "ocr", Label: "OCRスキャナー", Href: "ocr-scanner.html", Icon: "scan"},
	{Key: "renewal", Label: "更新申請", Href: "visa-renewal.html", Icon: "refresh-ccw"},
	{Key: "coe", Label: "認定申請", Href: "visa-coe.html", Icon: "file-badge"},
	{Key: "reports", Label: "レポート", Href: "reports.html", Icon: "bar-chart-3"},
}

// Items returns a copy of the navigation entries in display order.
func Items() []NavItem {
	out := make([]NavItem, len(navItems))
	copy(out, navItems)
	return out
}

// ItemByKey finds a navigation entry by key.
func ItemByKey(key string) (NavItem, bool) {
	for _, item := range navItems {
		if item.Key == key {
			return item, true
		}
	}
	return NavItem{}, false
}

// ItemByHref finds the navigation entry that links to href, e.g. "employees.html".
func ItemByHref(href string) (NavItem, bool) {
	for _, item := range navItems {
		if item.Href == href {
			return item, true
		}
	}
	return NavItem{}, false
}

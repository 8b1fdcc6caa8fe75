package dashboard

type ChangeType string

const (
	ChangeIncrease ChangeType = "increase"
	ChangeDecrease ChangeType = "decrease"
	ChangeNeutral  ChangeType = "neutral"
)

type StatCard struct {
	Title       string     `json:"title"`
	Value       string     `json:"value"`
	Change      string     `json:"change"`
	ChangeType  ChangeType `json:"change_type"`
	Description string     `json:"description"`
}

type Activity struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Time        string `json:"time"`
	Status      string `json:"status"`
}

type TopProduct struct {
	Name    string `json:"name"`
	Sales   int    `json:"sales"`
	Revenue string `json:"revenue"`
	Trend   string `json:"trend"`
}

type HealthIndicator struct {
	Name     string  `json:"name"`
	Label    string  `json:"label"`
	Progress float64 `json:"progress"`
}

type SystemStatus struct {
	Indicators []HealthIndicator `json:"indicators"`
	Summary    string            `json:"summary"`
}

type SalesOverview struct {
	DailyTarget   string `json:"daily_target"`
	TodaySales    string `json:"today_sales"`
	TargetPercent int    `json:"target_percent"`
	OrdersToday   int    `json:"orders_today"`
	NewCustomers  int    `json:"new_customers"`
}

type Alert struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Action      string `json:"action"`
}

// OverviewPanel is the content of the dashboard tab.
type OverviewPanel struct {
	Greeting      string        `json:"greeting"`
	Stats         []StatCard    `json:"stats"`
	Activities    []Activity    `json:"recent_activities"`
	TopProducts   []TopProduct  `json:"top_products"`
	QuickActions  []string      `json:"quick_actions"`
	SystemStatus  SystemStatus  `json:"system_status"`
	SalesOverview SalesOverview `json:"sales_overview"`
	Alerts        []Alert       `json:"alerts"`
}

// Overview returns the sample figures shown until a metrics pipeline exists.
func Overview() OverviewPanel {
	return OverviewPanel{
		Greeting: "Welcome back, Admin!",
		Stats: []StatCard{
			{Title: "Total Revenue", Value: "$45,231", Change: "+20.1%", ChangeType: ChangeIncrease, Description: "from last month"},
			{Title: "Total Orders", Value: "2,350", Change: "+180", ChangeType: ChangeIncrease, Description: "this month"},
			{Title: "Total Users", Value: "1,429", Change: "+19%", ChangeType: ChangeIncrease, Description: "active users"},
			{Title: "Total Products", Value: "156", Change: "+5", ChangeType: ChangeIncrease, Description: "in inventory"},
		},
		Activities: []Activity{
			{ID: "1", Type: "order", Description: "New order #ORD-001 received from John Doe", Time: "2 minutes ago", Status: "success"},
			{ID: "2", Type: "user", Description: "New user registration: jane@example.com", Time: "5 minutes ago", Status: "info"},
			{ID: "3", Type: "product", Description: "Product 'Chocolate Cake' is running low on stock", Time: "10 minutes ago", Status: "warning"},
			{ID: "4", Type: "order", Description: "Order #ORD-002 has been completed and shipped", Time: "15 minutes ago", Status: "success"},
			{ID: "5", Type: "review", Description: "New 5-star review received for 'Vanilla Cupcake'", Time: "20 minutes ago", Status: "success"},
		},
		TopProducts: []TopProduct{
			{Name: "Chocolate Cake", Sales: 234, Revenue: "$2,340", Trend: "up"},
			{Name: "Vanilla Cupcake", Sales: 189, Revenue: "$1,890", Trend: "up"},
			{Name: "Red Velvet", Sales: 156, Revenue: "$1,560", Trend: "down"},
			{Name: "Strawberry Pie", Sales: 98, Revenue: "$980", Trend: "up"},
		},
		QuickActions: []string{"Add New Product", "View All Users", "Process Orders", "Marketing Tools"},
		SystemStatus: SystemStatus{
			Indicators: []HealthIndicator{
				{Name: "Server Uptime", Label: "99.9%", Progress: 99.9},
				{Name: "Database Health", Label: "Excellent", Progress: 95},
				{Name: "API Response", Label: "Good", Progress: 78},
			},
			Summary: "All systems operational",
		},
		SalesOverview: SalesOverview{
			DailyTarget:   "$1,200",
			TodaySales:    "$980",
			TargetPercent: 82,
			OrdersToday:   15,
			NewCustomers:  8,
		},
		Alerts: []Alert{
			{Title: "Low Stock Alert", Description: "5 products are running low on inventory", Action: "View"},
			{Title: "Pending Orders", Description: "8 orders waiting for processing", Action: "Process"},
			{Title: "System Update", Description: "Platform updated successfully to v2.1.0", Action: "Complete"},
		},
	}
}

package dto

// UserActivityEntry actividad de un usuario para el ranking.
type UserActivityEntry struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// UsageStatisticsResponse respuesta de GET /api/stats/usage.
type UsageStatisticsResponse struct {
	TotalProducts    int                 `json:"total_products"`
	TotalQuantity    int                 `json:"total_quantity"`
	ExpiredProducts  int                 `json:"expired_products"`
	ExpiringProducts int                 `json:"expiring_products"` // ventana 0-7 días
	TotalEntries     int                 `json:"total_entries"`
	TotalExits       int                 `json:"total_exits"`
	ProductsByType   map[string]int      `json:"products_by_type"`
	UserActivity     map[string]int      `json:"user_activity"`
	TopUserActivity  []UserActivityEntry `json:"top_user_activity"` // desc por count, top 10
}

// ExpiryAlertItem un producto en las alertas de vencimiento.
type ExpiryAlertItem struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	// DaysElapsed para vencidos (días desde el vencimiento, positivo);
	// DaysLeft para los por vencer. Solo uno aplica según la lista.
	DaysElapsed int `json:"days_elapsed,omitempty"`
	DaysLeft    int `json:"days_left"`
}

// ExpiryAlertsResponse respuesta de GET /api/stats/alerts.
type ExpiryAlertsResponse struct {
	Expired  []ExpiryAlertItem `json:"expired"`  // ya vencidos, más antiguos primero
	Expiring []ExpiryAlertItem `json:"expiring"` // vencen en 0-7 días, más urgentes primero
}

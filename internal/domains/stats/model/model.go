package model

import "github.com/shopspring/decimal"

// Dashboard is the back-office landing page payload.
type Dashboard struct {
	TotalBooks      int64           `json:"totalBooks"`
	ActiveBooks     int64           `json:"activeBooks"`
	TotalCustomers  int64           `json:"totalCustomers"`
	ActiveCustomers int64           `json:"activeCustomers"`
	TotalOrders     int64           `json:"totalOrders"`
	PendingOrders   int64           `json:"pendingOrders"`
	TotalPacks      int64           `json:"totalPacks"`
	ActivePacks     int64           `json:"activePacks"`
	TotalOffers     int64           `json:"totalOffers"`
	ActiveOffers    int64           `json:"activeOffers"`
	TotalRevenue    decimal.Decimal `json:"totalRevenue"`
}

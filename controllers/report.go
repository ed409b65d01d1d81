package controllers

import (
	"context"
	"fmt"
	"net/http"
	"sort"

	"burgerpos/config"
	"burgerpos/data"
	"burgerpos/models"

	"github.com/gin-gonic/gin"
	"github.com/jung-kurt/gofpdf"
	"go.mongodb.org/mongo-driver/bson"
)

// CategoryTotal accumulates sold quantity and revenue for one menu category.
type CategoryTotal struct {
	Qty   int     `json:"qty"`
	Total float64 `json:"total"`
}

// DailySummary aggregates one day's trade.
type DailySummary struct {
	SessionDay     string                       `json:"sessionDay"`
	HasData        bool                         `json:"hasData"`
	TotalRevenue   float64                      `json:"totalRevenue"`
	OrderCount     int                          `json:"orderCount"`
	CategoryTotals map[string]CategoryTotal     `json:"categoryTotals"`
	PaymentTotals  map[string]float64           `json:"paymentTotals"`
	OrderList      []SummaryOrder               `json:"orderList"`
	InventoryUsage []ReconciliationRow          `json:"inventoryUsage"`
	Consumption    []models.EmployeeConsumption `json:"consumption"`
}

// SummaryOrder is the report view of one order.
type SummaryOrder struct {
	OrderNumber   int                `json:"orderNumber"`
	OrderType     string             `json:"orderType"`
	PaymentMethod string             `json:"paymentMethod"`
	Status        string             `json:"status"`
	Total         float64            `json:"total"`
	Items         []models.OrderItem `json:"items"`
}

func orderTotal(order models.Order) float64 {
	return ComputeTotal(order.Items, order.Discount, order.TakeawayPackages, order.OrderType, order.DeliveryFee)
}

// paymentBucket maps an order to a payment totals key. Split payments go
// to their own bucket rather than being spread across methods.
func paymentBucket(order models.Order) string {
	if len(order.SplitPayment) > 0 {
		return models.PaymentSplitKey
	}
	return order.PaymentMethod
}

// buildDailySummary aggregates all orders landing on a day, archived or
// not, paid or pending. HasData is false when the day saw no orders.
func buildDailySummary(ctx context.Context, date string) (*DailySummary, error) {
	cursor, err := config.OrderCollection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	summary := &DailySummary{
		SessionDay:     date,
		CategoryTotals: map[string]CategoryTotal{},
		PaymentTotals:  map[string]float64{},
		OrderList:      []SummaryOrder{},
		InventoryUsage: []ReconciliationRow{},
		Consumption:    []models.EmployeeConsumption{},
	}

	for cursor.Next(ctx) {
		var order models.Order
		if err := cursor.Decode(&order); err != nil {
			continue
		}
		if !OrderOnDay(order, date) {
			continue
		}

		total := orderTotal(order)
		summary.OrderCount++
		summary.TotalRevenue += total
		summary.PaymentTotals[paymentBucket(order)] += total
		for _, item := range order.Items {
			category := data.ItemCategory(item.Name)
			entry := summary.CategoryTotals[category]
			entry.Qty += item.Qty
			entry.Total += float64(item.Qty) * item.Price
			summary.CategoryTotals[category] = entry
		}
		summary.OrderList = append(summary.OrderList, SummaryOrder{
			OrderNumber:   order.OrderNumber,
			OrderType:     order.OrderType,
			PaymentMethod: paymentBucket(order),
			Status:        order.Status,
			Total:         total,
			Items:         order.Items,
		})
	}

	summary.HasData = summary.OrderCount > 0
	sort.Slice(summary.OrderList, func(i, j int) bool {
		return summary.OrderList[i].OrderNumber < summary.OrderList[j].OrderNumber
	})

	start, err := latestSnapshot(ctx, date, models.SnapshotStart)
	if err != nil {
		return nil, err
	}
	end, err := latestSnapshot(ctx, date, models.SnapshotEnd)
	if err != nil {
		return nil, err
	}
	if start != nil || end != nil {
		summary.InventoryUsage = BuildReconciliation(start, end)
	}

	consCursor, err := config.ConsumptionCollection.Find(ctx, bson.M{"sessionDay": date})
	if err != nil {
		return nil, err
	}
	defer consCursor.Close(ctx)
	if err = consCursor.All(ctx, &summary.Consumption); err != nil {
		return nil, err
	}

	return summary, nil
}

// GetDailySummary returns the aggregated day report as JSON.
func GetDailySummary(c *gin.Context) {
	date := c.Param("date")
	if !validDate(date) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
		return
	}

	summary, err := buildDailySummary(context.TODO(), date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build summary"})
		return
	}

	c.JSON(http.StatusOK, summary)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ExportDailySummaryPDF renders the day report as a PDF download.
func ExportDailySummaryPDF(c *gin.Context) {
	date := c.Param("date")
	if !validDate(date) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
		return
	}

	summary, err := buildDailySummary(context.TODO(), date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build summary"})
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Daily report "+date)
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Orders: %d", summary.OrderCount))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Revenue: %.2f PLN", summary.TotalRevenue))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "By payment method")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	for _, method := range sortedKeys(summary.PaymentTotals) {
		pdf.Cell(60, 6, method)
		pdf.Cell(40, 6, fmt.Sprintf("%.2f PLN", summary.PaymentTotals[method]))
		pdf.Ln(6)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "By category")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	for _, category := range sortedKeys(summary.CategoryTotals) {
		entry := summary.CategoryTotals[category]
		pdf.Cell(60, 6, category)
		pdf.Cell(20, 6, fmt.Sprintf("x%d", entry.Qty))
		pdf.Cell(40, 6, fmt.Sprintf("%.2f PLN", entry.Total))
		pdf.Ln(6)
	}
	pdf.Ln(4)

	if len(summary.InventoryUsage) > 0 {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, "Inventory usage")
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 10)
		pdf.Cell(60, 6, "Product")
		pdf.Cell(25, 6, "Start")
		pdf.Cell(25, 6, "End")
		pdf.Cell(25, 6, "Used")
		pdf.Ln(6)
		for _, row := range summary.InventoryUsage {
			pdf.Cell(60, 6, row.Name)
			pdf.Cell(25, 6, fmt.Sprintf("%.2f", row.StartQty))
			pdf.Cell(25, 6, fmt.Sprintf("%.2f", row.EndQty))
			pdf.Cell(25, 6, fmt.Sprintf("%.2f", row.Used))
			pdf.Ln(6)
		}
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=report-%s.pdf", date))
	if err := pdf.Output(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render PDF"})
		return
	}
}
